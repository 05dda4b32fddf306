//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package prep

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/kljensen/snowball"
)

//
// BAGGING: corpus -> tagged sentences -> bags of words; the modelers eat the bags
//

const (
	tagger    = `⊏(.*?)⊐`
	notachar  = `[^\sa-z0-9-]`
	minwordln = 2
)

// BuildBags - one tagged text block per corpus; split into sentences; group into bags; clean and stem each bag
func BuildBags(docs []str.DbDocument, sentperbag int, stemlang string) []str.BagWithLocus {
	const (
		MSG1 = "BuildBags() yielded %d bag(s) from %d document(s)"
	)

	if sentperbag < 1 {
		sentperbag = vv.LDASENTPERBAG
	}

	var sb strings.Builder
	sb.Grow(vv.CHARSPERABSTRACT * len(docs))

	for i := 0; i < len(docs); i++ {
		newtxt := fmt.Sprintf("⊏doc/%s⊐%s ", docs[i].UID, docs[i].ModelText())
		sb.WriteString(newtxt)
	}

	thetext := sb.String()
	sb.Reset()

	// preliminary cleanups
	thetext = StripMarkup(thetext)
	thetext = MakeSubstitutions(thetext)
	thetext = DeAccent(thetext)

	split := SplitOnPunctuation(thetext)

	var ss []string
	for i := 0; i < len(split); i++ {
		if len(strings.TrimSpace(split[i])) > 0 {
			ss = append(ss, split[i])
		}
	}

	var thebags []str.BagWithLocus
	var first string
	var last string

	re := regexp.MustCompile(tagger)

	iterations := len(ss) / sentperbag
	index := 0
	for i := 0; i < iterations; i++ {
		parcel := strings.Join(ss[index:index+sentperbag], " ")
		index = index + sentperbag
		tags := re.FindAllStringSubmatch(parcel, -1)
		if len(tags) > 0 {
			first = tags[0][1]
			last = tags[len(tags)-1][1]
		} else {
			first = last
		}
		var sl str.BagWithLocus
		sl.Loc = first
		sl.Bag = strings.TrimSpace(strings.ToLower(parcel))
		sl.Bag = Stripper(sl.Bag, []string{tagger, notachar})

		thebags = append(thebags, sl)
	}

	stops := GetStopSet()
	for i := 0; i < len(thebags); i++ {
		var b strings.Builder
		stemmedstring(&b, strings.Split(thebags[i].Bag, " "), stemlang, stops)
		thebags[i].ModifiedBag = strings.TrimSpace(b.String())
	}

	Msg.PEEK(fmt.Sprintf(MSG1, len(thebags), len(docs)))

	return thebags
}

// stemmedstring - helper for BuildBags() to generate stopped, stemmed substitutions
func stemmedstring(sb *strings.Builder, slicedwords []string, stemlang string, stops map[string]struct{}) {
	for i := 0; i < len(slicedwords); i++ {
		w := slicedwords[i]
		if len(w) < minwordln {
			continue
		}

		// drop skipwords before stemming: "models" must match the stoplist, not "model"
		if _, s := stops[w]; s {
			continue
		}

		stemmed, err := snowball.Stem(w, stemlang, false)
		if err != nil {
			// unknown language or unstemmable token; keep the surface form
			stemmed = w
		}

		if _, s := stops[stemmed]; s {
			continue
		}

		sb.WriteString(stemmed + " ")
	}
}

// StemWord - normalize a single query term the same way BuildBags() normalizes the corpus
func StemWord(w string, stemlang string) string {
	w = strings.ToLower(strings.TrimSpace(DeAccent(w)))
	stemmed, err := snowball.Stem(w, stemlang, false)
	if err != nil {
		return w
	}
	return stemmed
}

// DropStopwords - iterate through the bags returning new, clean bags
func DropStopwords(bagsofwords []str.BagWithLocus) []str.BagWithLocus {
	stops := GetStopSet()

	for i := 0; i < len(bagsofwords); i++ {
		wl := strings.Split(bagsofwords[i].Bag, " ")
		wl = stopworddropper(stops, wl)
		bagsofwords[i].Bag = strings.Join(wl, " ")
	}

	return bagsofwords
}

// stopworddropper - if word is in stops, drop the word
func stopworddropper(stops map[string]struct{}, wordlist []string) []string {
	var returnlist []string
	for i := 0; i < len(wordlist); i++ {
		if _, t := stops[wordlist[i]]; t {
			continue
		} else {
			returnlist = append(returnlist, wordlist[i])
		}
	}
	return returnlist
}
