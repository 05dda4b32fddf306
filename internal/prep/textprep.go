//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package prep

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/e-gun/LitMineGoServer/internal/lnch"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// CLEANING
//

// Stripper - delete each in a list of patterns from a string
func Stripper(item string, purge []string) string {
	for i := 0; i < len(purge); i++ {
		re := regexp.MustCompile(purge[i])
		item = re.ReplaceAllString(item, "")
	}
	return item
}

// MakeSubstitutions - de-abbreviate before splitting on punctuation or "et al." will end your sentence early
func MakeSubstitutions(thetext string) string {
	// https://golang.org/pkg/strings/#NewReplacer
	swap := strings.NewReplacer("et al.", "et al", "e.g.", "eg", "i.e.", "ie", "cf.", "cf", "vs.", "vs",
		"Fig.", "Fig", "fig.", "fig", "Eq.", "Eq", "eq.", "eq", "ca.", "ca", "approx.", "approx",
		"Dr.", "Dr", "Prof.", "Prof", "No.", "No", "no.", "no", "pp.", "pp", "Vol.", "Vol", "vol.", "vol")

	return swap.Replace(thetext)
}

// SplitOnPunctuation - swap all sentence-enders for one item; then split on it
func SplitOnPunctuation(thetext string) []string {
	swap := strings.NewReplacer("?", ".", "!", ".", ";", ".")
	thetext = swap.Replace(thetext)
	split := strings.Split(thetext, ".")
	return split
}

var deaccenter = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// DeAccent - "schrödinger" -> "schrodinger"; the APIs disagree about diacritics in names and titles
func DeAccent(thetext string) string {
	const (
		FAIL = "DeAccent() could not transform the text; returning it unchanged"
	)

	flat, _, err := transform.String(deaccenter, thetext)
	if err != nil {
		Msg.PEEK(FAIL)
		return thetext
	}
	return flat
}

// latexish - "$\alpha$-decay", "{\it in vivo}", "\cite{...}": arxiv abstracts are full of it
var latexish = regexp.MustCompile(`\\[a-zA-Z]+\{[^}]*}|\\[a-zA-Z]+|[${}^_~]`)

// StripMarkup - remove html tags, latex commands, and urls from an abstract
func StripMarkup(thetext string) string {
	strip := []string{`&nbsp;`, `<.*?>`, `https?://\S+`}
	thetext = Stripper(thetext, strip)
	thetext = latexish.ReplaceAllString(thetext, " ")
	return thetext
}
