//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package prep

import (
	"strings"
	"testing"

	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testdocs() []str.DbDocument {
	return []str.DbDocument{
		{
			UID:      "arxiv/2301.00001",
			Title:    "Graphene Batteries",
			Abstract: "We charge the batteries. The batteries degrade over many cycles.",
		},
		{
			UID:      "openalex/W42",
			Title:    "Solid Electrolytes",
			Abstract: "Electrolytes conduct ions. Conductivity rises with temperature.",
		},
	}
}

func TestBuildBags(t *testing.T) {
	bags := BuildBags(testdocs(), 1, "english")
	require.NotEmpty(t, bags)

	// every bag is tied to the document it came from
	for _, b := range bags {
		assert.True(t, strings.HasPrefix(b.Loc, "doc/"))
	}
	assert.Equal(t, "doc/arxiv/2301.00001", bags[0].Loc)
	assert.Equal(t, "arxiv/2301.00001", bags[0].DocUID())

	// the raw bag is lowercased and stripped of punctuation
	for _, b := range bags {
		assert.Equal(t, strings.ToLower(b.Bag), b.Bag)
		assert.NotContains(t, b.Bag, ".")
		assert.NotContains(t, b.Bag, "⊏")
	}

	// the modified bag is stemmed and stopped
	joined := ""
	for _, b := range bags {
		joined += " " + b.ModifiedBag
	}
	assert.Contains(t, joined, "batteri")
	assert.NotContains(t, strings.Fields(joined), "the")
	assert.NotContains(t, strings.Fields(joined), "we")
}

func TestBuildBagsGrouping(t *testing.T) {
	ones := BuildBags(testdocs(), 1, "english")
	twos := BuildBags(testdocs(), 2, "english")
	assert.Greater(t, len(ones), len(twos))
}

func TestDropStopwords(t *testing.T) {
	bags := []str.BagWithLocus{{Loc: "doc/x", Bag: "the batteries are good"}}
	out := DropStopwords(bags)
	assert.NotContains(t, strings.Fields(out[0].Bag), "the")
	assert.Contains(t, out[0].Bag, "batteries")
}

func TestGetStopSet(t *testing.T) {
	stops := GetStopSet()
	_, the := stops["the"]
	assert.True(t, the)
	// the keep-list punches holes in the academic boilerplate
	_, model := stops["model"]
	assert.False(t, model)
}
