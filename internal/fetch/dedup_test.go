//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package fetch

import (
	"testing"

	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeDOI(t *testing.T) {
	cases := map[string]string{
		"https://doi.org/10.1000/XYZ":    "10.1000/xyz",
		"http://dx.doi.org/10.1000/xyz":  "10.1000/xyz",
		"doi:10.1000/xyz":                "10.1000/xyz",
		"  10.1000/XYZ  ":                "10.1000/xyz",
		"":                               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeDOI(in))
	}
}

func TestTitleKey(t *testing.T) {
	a := TitleKey("Deep   Learning: A Survey!")
	b := TitleKey("deep learning a survey")
	assert.Equal(t, a, b)
	assert.Equal(t, "deep learning a survey", a)
}

func TestFingerprintStable(t *testing.T) {
	d1 := str.DbDocument{Title: "Deep Learning: A Survey", Year: 2019}
	d2 := str.DbDocument{Title: "deep learning  a survey?", Year: 2019}
	d3 := str.DbDocument{Title: "deep learning a survey", Year: 2020}
	assert.Equal(t, Fingerprint(d1), Fingerprint(d2))
	assert.NotEqual(t, Fingerprint(d1), Fingerprint(d3))
}

func TestDeduplicate(t *testing.T) {
	docs := []str.DbDocument{
		{UID: "arxiv/1", DOI: "10.1/a", Title: "Paper One", Abstract: "short"},
		{UID: "openalex/W1", DOI: "10.1/a", Title: "Paper One", Abstract: "a much longer abstract wins"},
		{UID: "crossref/x", Title: "Paper Two", Year: 2020},
		{UID: "semanticscholar/y", Title: "paper two!", Year: 2020, Abstract: "only this copy has text"},
		{UID: "pubmed/z", Title: ""},
	}

	out := Deduplicate(docs)
	assert.Len(t, out, 2)

	// the DOI pair collapsed onto the copy with the longer abstract
	assert.Equal(t, "openalex/W1", out[0].UID)

	// the title+year pair collapsed onto the copy with an abstract
	assert.Equal(t, "semanticscholar/y", out[1].UID)
}

func TestDeduplicateCiteCountTiebreak(t *testing.T) {
	docs := []str.DbDocument{
		{UID: "a/1", DOI: "10.1/t", Title: "Tie", Abstract: "same", CiteCount: 5},
		{UID: "b/2", DOI: "10.1/t", Title: "Tie", Abstract: "same", CiteCount: 50},
	}
	out := Deduplicate(docs)
	assert.Len(t, out, 1)
	assert.Equal(t, "b/2", out[0].UID)
}
