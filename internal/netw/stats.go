//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package netw

import (
	"sort"

	"github.com/e-gun/LitMineGoServer/internal/vv"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//
// NETWORK STATISTICS via gonum/graph
//

// Strength - weighted degree per keyword
func (g *CoGraph) Strength() map[string]float64 {
	out := make(map[string]float64, len(g.terms))
	for _, t := range g.terms {
		out[t] = 0
	}
	for k, w := range g.edges {
		out[g.terms[k.a]] += float64(w)
		out[g.terms[k.b]] += float64(w)
	}
	return out
}

// PageRank - centrality per keyword; an undirected edge is a directed edge both ways
func (g *CoGraph) PageRank() map[string]float64 {
	dg := simple.NewWeightedDirectedGraph(0, 0)
	for id := range g.terms {
		dg.AddNode(simple.Node(int64(id)))
	}
	for k, w := range g.edges {
		dg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(k.a), T: simple.Node(k.b), W: float64(w)})
		dg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(k.b), T: simple.Node(k.a), W: float64(w)})
	}

	ranks := network.PageRank(dg, vv.PAGERANKDAMP, vv.PAGERANKTOL)

	out := make(map[string]float64, len(ranks))
	for id, r := range ranks {
		out[g.terms[id]] = r
	}
	return out
}

// Components - connected components, largest first; each component is a list of keywords
func (g *CoGraph) Components() [][]string {
	ug := simple.NewWeightedUndirectedGraph(0, 0)
	for id := range g.terms {
		ug.AddNode(simple.Node(int64(id)))
	}
	for k, w := range g.edges {
		ug.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(k.a), T: simple.Node(k.b), W: float64(w)})
	}

	cc := topo.ConnectedComponents(ug)

	out := make([][]string, len(cc))
	for i, comp := range cc {
		for _, n := range comp {
			out[i] = append(out[i], g.terms[n.ID()])
		}
		sort.Strings(out[i])
	}

	sort.Slice(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })

	return out
}

// RankedTerm - a keyword and its score under some centrality measure
type RankedTerm struct {
	Term  string
	Score float64
}

// TopRanked - the n keywords with the highest scores, descending; ties break alphabetically
func TopRanked(scores map[string]float64, n int) []RankedTerm {
	var rr []RankedTerm
	for k, v := range scores {
		rr = append(rr, RankedTerm{Term: k, Score: v})
	}
	sort.Slice(rr, func(i, j int) bool {
		if rr[i].Score != rr[j].Score {
			return rr[i].Score > rr[j].Score
		}
		return rr[i].Term < rr[j].Term
	})

	if n > len(rr) {
		n = len(rr)
	}

	return rr[:n]
}
