//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package netw

import (
	"fmt"

	"github.com/e-gun/LitMineGoServer/internal/lnch"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// KEYWORD CO-OCCURRENCE: two keywords drawn from the same document share an edge; weight = number of such documents
//

type edgekey struct {
	a int64 // invariant: a < b
	b int64
}

// CoGraph - the keyword co-occurrence network
type CoGraph struct {
	ids   map[string]int64
	terms []string // id -> term
	edges map[edgekey]int
}

// Term - id -> keyword
func (g *CoGraph) Term(id int64) string {
	return g.terms[id]
}

// Terms - every keyword in the network
func (g *CoGraph) Terms() []string {
	out := make([]string, len(g.terms))
	copy(out, g.terms)
	return out
}

// Order - number of nodes
func (g *CoGraph) Order() int {
	return len(g.terms)
}

// Size - number of edges
func (g *CoGraph) Size() int {
	return len(g.edges)
}

// EdgeList - every (a, b, weight) triple; a and b are terms
type CoEdge struct {
	A      string
	B      string
	Weight int
}

func (g *CoGraph) EdgeList() []CoEdge {
	out := make([]CoEdge, 0, len(g.edges))
	for k, w := range g.edges {
		out = append(out, CoEdge{A: g.terms[k.a], B: g.terms[k.b], Weight: w})
	}
	return out
}

// BuildCooccurrence - one keyword list per document in; pruned co-occurrence network out
func BuildCooccurrence(perdoc [][]string, minweight int) *CoGraph {
	const (
		MSG1 = "BuildCooccurrence(): %d node(s) and %d edge(s) after pruning weights < %d"
	)

	g := &CoGraph{
		ids:   make(map[string]int64),
		edges: make(map[edgekey]int),
	}

	getid := func(term string) int64 {
		id, ok := g.ids[term]
		if !ok {
			id = int64(len(g.terms))
			g.ids[term] = id
			g.terms = append(g.terms, term)
		}
		return id
	}

	for _, kk := range perdoc {
		for i := 0; i < len(kk); i++ {
			for j := i + 1; j < len(kk); j++ {
				if kk[i] == kk[j] {
					continue
				}
				a := getid(kk[i])
				b := getid(kk[j])
				if a > b {
					a, b = b, a
				}
				g.edges[edgekey{a, b}]++
			}
		}
	}

	// prune the noise edges; then drop the nodes they stranded
	for k, w := range g.edges {
		if w < minweight {
			delete(g.edges, k)
		}
	}

	connected := make(map[int64]bool)
	for k := range g.edges {
		connected[k.a] = true
		connected[k.b] = true
	}

	pruned := &CoGraph{
		ids:   make(map[string]int64),
		edges: make(map[edgekey]int),
	}
	remap := make(map[int64]int64)
	for old := range connected {
		t := g.terms[old]
		id := int64(len(pruned.terms))
		pruned.ids[t] = id
		pruned.terms = append(pruned.terms, t)
		remap[old] = id
	}
	for k, w := range g.edges {
		a := remap[k.a]
		b := remap[k.b]
		if a > b {
			a, b = b, a
		}
		pruned.edges[edgekey{a, b}] = w
	}

	Msg.PEEK(fmt.Sprintf(MSG1, pruned.Order(), pruned.Size(), minweight))

	return pruned
}
