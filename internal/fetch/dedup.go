//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package fetch

import (
	"crypto/sha256"
	"fmt"
	"regexp"
	"strings"

	"github.com/e-gun/LitMineGoServer/internal/str"
)

//
// DEDUPLICATION: five sources will hand you the same paper five ways; DOI first, then a title+year fingerprint
//

// NormalizeDOI - lowercase; strip resolver prefixes so "https://doi.org/10.1/X" == "10.1/X"
func NormalizeDOI(doi string) string {
	doi = strings.TrimSpace(strings.ToLower(doi))
	for _, pre := range []string{"https://doi.org/", "http://doi.org/", "https://dx.doi.org/", "http://dx.doi.org/", "doi:"} {
		doi = strings.TrimPrefix(doi, pre)
	}
	return doi
}

var nonalnum = regexp.MustCompile(`[^a-z0-9 ]`)

// TitleKey - a source-independent rendering of a title: lowercase, alphanumeric, single-spaced
func TitleKey(title string) string {
	t := strings.ToLower(title)
	t = nonalnum.ReplaceAllString(t, "")
	return strings.Join(strings.Fields(t), " ")
}

// Fingerprint - the identity of a document when no DOI is available
func Fingerprint(d str.DbDocument) string {
	key := fmt.Sprintf("%s|%d", TitleKey(d.Title), d.Year)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}

// Deduplicate - collapse the same paper reported by multiple sources; keep the copy with the longer abstract
func Deduplicate(docs []str.DbDocument) []str.DbDocument {
	const (
		MSG1 = "Deduplicate() dropped %d duplicate(s); %d document(s) remain"
	)

	seen := make(map[string]int) // identity -> index into out
	var out []str.DbDocument

	better := func(a str.DbDocument, b str.DbDocument) bool {
		// a beats b if it has more to say
		if len(a.Abstract) != len(b.Abstract) {
			return len(a.Abstract) > len(b.Abstract)
		}
		return a.CiteCount > b.CiteCount
	}

	for _, d := range docs {
		if TitleKey(d.Title) == "" {
			// some esummary records are title-free cruft
			continue
		}

		id := d.DOI
		if id == "" {
			id = Fingerprint(d)
		}

		if at, ok := seen[id]; ok {
			if better(d, out[at]) {
				out[at] = d
			}
			continue
		}

		seen[id] = len(out)
		out = append(out, d)
	}

	dropped := len(docs) - len(out)
	if dropped > 0 {
		Msg.PEEK(fmt.Sprintf(MSG1, dropped, len(out)))
	}

	return out
}
