//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package netw

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testgraph() *CoGraph {
	perdoc := [][]string{
		{"graphene", "battery", "anode"},
		{"graphene", "battery", "cathode"},
		{"graphene", "battery"},
		{"genome", "sequencing"},
		{"genome", "sequencing"},
	}
	return BuildCooccurrence(perdoc, 2)
}

func TestBuildCooccurrence(t *testing.T) {
	g := testgraph()

	// "anode" and "cathode" each co-occur only once; pruning drops them
	terms := g.Terms()
	sort.Strings(terms)
	assert.Equal(t, []string{"battery", "genome", "graphene", "sequencing"}, terms)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 2, g.Size())

	for _, e := range g.EdgeList() {
		if e.A == "battery" || e.B == "battery" {
			assert.Equal(t, 3, e.Weight)
		} else {
			assert.Equal(t, 2, e.Weight)
		}
	}
}

func TestBuildCooccurrenceSelfAndEmpty(t *testing.T) {
	// a repeated keyword never pairs with itself
	g := BuildCooccurrence([][]string{{"solo", "solo"}}, 1)
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.Size())

	g = BuildCooccurrence(nil, 1)
	assert.Equal(t, 0, g.Order())
}

func TestStrength(t *testing.T) {
	g := testgraph()
	st := g.Strength()

	assert.InDelta(t, 3.0, st["graphene"], 1e-9)
	assert.InDelta(t, 3.0, st["battery"], 1e-9)
	assert.InDelta(t, 2.0, st["genome"], 1e-9)
}

func TestPageRank(t *testing.T) {
	g := testgraph()
	pr := g.PageRank()

	require.Len(t, pr, 4)
	total := 0.0
	for _, r := range pr {
		assert.Greater(t, r, 0.0)
		total += r
	}
	assert.InDelta(t, 1.0, total, 1e-6)
}

func TestComponents(t *testing.T) {
	g := testgraph()
	cc := g.Components()

	require.Len(t, cc, 2)
	// both components here have two nodes; each comes back sorted
	for _, comp := range cc {
		assert.Len(t, comp, 2)
		assert.True(t, sort.StringsAreSorted(comp))
	}
}

func TestTopRanked(t *testing.T) {
	scores := map[string]float64{"a": 1.0, "b": 3.0, "c": 2.0, "d": 3.0}

	rr := TopRanked(scores, 3)
	require.Len(t, rr, 3)

	// descending; ties alphabetical
	assert.Equal(t, "b", rr[0].Term)
	assert.Equal(t, "d", rr[1].Term)
	assert.Equal(t, "c", rr[2].Term)

	assert.Len(t, TopRanked(scores, 99), 4)
}
