//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
)

//
// LDA VIA COLLAPSED GIBBS SAMPLING: slower than the variational modeler but you get a proper theta and phi,
// and the stm and ctm analyses need those
//

type docword struct {
	doc  int
	widx int
}

// GibbsLDA - a collapsed gibbs sampler over a tokenized corpus
type GibbsLDA struct {
	K     int
	Alpha float64
	Beta  float64

	docs  [][]int        // each document as a slice of vocabulary ids
	vocab []string       // id -> term
	vmap  map[string]int // term -> id

	wt  [][]int         // word-topic count table: [vocab][topic]
	dt  [][]int         // doc-topic count table: [doc][topic]
	wts []int           // word-topic-sum count table: [topic]
	dwt map[docword]int // doc-word-topic assignment
}

// NewGibbsLDA - tokenize the corpus and size the count tables
func NewGibbsLDA(k int, alpha float64, beta float64, corpus []string) *GibbsLDA {
	g := &GibbsLDA{
		K:     k,
		Alpha: alpha,
		Beta:  beta,
		vmap:  make(map[string]int),
		dwt:   make(map[docword]int),
	}

	for _, doc := range corpus {
		var ids []int
		for _, w := range strings.Fields(doc) {
			id, ok := g.vmap[w]
			if !ok {
				id = len(g.vocab)
				g.vmap[w] = id
				g.vocab = append(g.vocab, w)
			}
			ids = append(ids, id)
		}
		g.docs = append(g.docs, ids)
	}

	g.wt = make([][]int, len(g.vocab))
	for v := range g.wt {
		g.wt[v] = make([]int, k)
	}
	g.dt = make([][]int, len(g.docs))
	for d := range g.dt {
		g.dt[d] = make([]int, k)
	}
	g.wts = make([]int, k)

	return g
}

// initassign - randomly assign a topic to every word
func (g *GibbsLDA) initassign() {
	for doc, ids := range g.docs {
		for i, w := range ids {
			k := rand.Intn(g.K)

			g.wt[w][k]++
			g.dt[doc][k]++
			g.wts[k]++

			g.dwt[docword{doc, i}] = k
		}
	}
}

// Train - run the sampler; report() is called once per iteration so the websocket can watch
func (g *GibbsLDA) Train(iter int, report func(int)) {
	const (
		MSG1 = "GibbsLDA iter %5d, likelihood %f"
		FRQ  = 10
	)

	g.initassign()

	vs := float64(len(g.vocab))
	cumsum := make([]float64, g.K)

	for it := 0; it < iter; it++ {
		if it%FRQ == 0 {
			Msg.TMI(fmt.Sprintf(MSG1, it, g.Likelihood()))
		}

		// collapsed gibbs sampling
		for doc, ids := range g.docs {
			for i, w := range ids {
				// get the current topic of word w
				k := g.dwt[docword{doc, i}]

				// decrease corresponding sufficient statistics
				g.wt[w][k]--
				g.dt[doc][k]--
				g.wts[k]--

				// resample the topic
				for kk := 0; kk < g.K; kk++ {
					docpart := g.Alpha + float64(g.dt[doc][kk])
					wordpart := (g.Beta + float64(g.wt[w][kk])) / (float64(g.wts[kk]) + g.Beta*vs)
					if kk == 0 {
						cumsum[kk] = docpart * wordpart
					} else {
						cumsum[kk] = cumsum[kk-1] + docpart*wordpart
					}
				}
				u := rand.Float64() * cumsum[g.K-1]
				for kk := 0; kk < g.K; kk++ {
					if u < cumsum[kk] {
						k = kk
						break
					}
				}

				// increase corresponding sufficient statistics
				g.wt[w][k]++
				g.dt[doc][k]++
				g.wts[k]++
				g.dwt[docword{doc, i}] = k
			}
		}

		report(it + 1)
	}
}

// Phi - posterior point estimate of the topic-word mixture: [topic][vocab]
func (g *GibbsLDA) Phi() [][]float64 {
	vs := float64(len(g.vocab))

	phi := make([][]float64, g.K)
	for k := 0; k < g.K; k++ {
		phi[k] = make([]float64, len(g.vocab))
		sum := 0
		for v := range g.vocab {
			sum += g.wt[v][k]
		}
		for v := range g.vocab {
			phi[k][v] = (float64(g.wt[v][k]) + g.Beta) / (float64(sum) + vs*g.Beta)
		}
	}

	return phi
}

// Theta - posterior point estimate of the document-topic mixture: [doc][topic]
func (g *GibbsLDA) Theta() [][]float64 {
	theta := make([][]float64, len(g.docs))
	for d := range g.docs {
		theta[d] = make([]float64, g.K)
		sum := 0
		for k := 0; k < g.K; k++ {
			sum += g.dt[d][k]
		}
		for k := 0; k < g.K; k++ {
			theta[d][k] = (float64(g.dt[d][k]) + g.Alpha) / (float64(sum) + float64(g.K)*g.Alpha)
		}
	}

	return theta
}

// Likelihood - the joint likelihood of the corpus under the current assignments
func (g *GibbsLDA) Likelihood() float64 {
	phi := g.Phi()
	theta := g.Theta()

	sum := float64(0)
	for doc, ids := range g.docs {
		for _, w := range ids {
			topicsum := float64(0)
			for k := 0; k < g.K; k++ {
				topicsum += phi[k][w] * theta[doc][k]
			}
			sum += math.Log(topicsum)
		}
	}

	return sum
}

// Vocab - id -> term
func (g *GibbsLDA) Vocab() []string {
	return g.vocab
}

// TopWords - the topn highest-phi terms per topic
func (g *GibbsLDA) TopWords(topn int) [][]string {
	phi := g.Phi()

	out := make([][]string, g.K)
	for k := 0; k < g.K; k++ {
		idx := make([]int, len(g.vocab))
		for i := range idx {
			idx[i] = i
		}
		p := phi[k]
		// partial selection would do; the vocab is small enough to sort
		sort.Slice(idx, func(i, j int) bool { return p[idx[i]] > p[idx[j]] })

		top := topn
		if top > len(idx) {
			top = len(idx)
		}
		ww := make([]string, top)
		for i := 0; i < top; i++ {
			ww[i] = g.vocab[idx[i]]
		}
		out[k] = ww
	}
	return out
}
