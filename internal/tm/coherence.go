//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"math"
	"sort"
	"strings"
)

//
// MODEL QUALITY: coherence says "these words belong together"; exclusivity says "and to this topic only"
//

// docsets - each document as a set of its terms
func docsets(corpus []string) []map[string]struct{} {
	sets := make([]map[string]struct{}, len(corpus))
	for i, doc := range corpus {
		sets[i] = make(map[string]struct{})
		for _, w := range strings.Fields(doc) {
			sets[i][w] = struct{}{}
		}
	}
	return sets
}

// UMassCoherence - per-topic u-mass score over the topic's top words; higher (closer to 0) is better
func UMassCoherence(topwords [][]string, corpus []string) []float64 {
	// score(t) = sum over word pairs (wi, wj), i > j, of log((D(wi, wj) + 1) / D(wj))
	// D(w) = documents containing w; D(wi, wj) = documents containing both

	sets := docsets(corpus)

	dcount := func(w string) int {
		n := 0
		for _, s := range sets {
			if _, ok := s[w]; ok {
				n++
			}
		}
		return n
	}

	dpair := func(a string, b string) int {
		n := 0
		for _, s := range sets {
			if _, oka := s[a]; oka {
				if _, okb := s[b]; okb {
					n++
				}
			}
		}
		return n
	}

	scores := make([]float64, len(topwords))
	for t, ww := range topwords {
		score := float64(0)
		for i := 1; i < len(ww); i++ {
			for j := 0; j < i; j++ {
				dj := dcount(ww[j])
				if dj == 0 {
					continue
				}
				score += math.Log(float64(dpair(ww[i], ww[j])+1) / float64(dj))
			}
		}
		scores[t] = score
	}

	return scores
}

// Exclusivity - per-topic frex score over the topic's top words; higher is better
func Exclusivity(phi [][]float64, vocab []string, topwords [][]string, frexweight float64) []float64 {
	// frex blends two ranks per word: how frequent it is within the topic and how exclusive it is to the topic
	// exclusivity of word w in topic k: phi[k][w] / sum over all topics of phi[*][w]

	vmap := make(map[string]int, len(vocab))
	for i, w := range vocab {
		vmap[w] = i
	}

	k := len(phi)
	if k == 0 {
		return nil
	}
	vs := len(phi[0])

	// column sums once; the per-word loop would be quadratic otherwise
	colsum := make([]float64, vs)
	for t := 0; t < k; t++ {
		for v := 0; v < vs; v++ {
			colsum[v] += phi[t][v]
		}
	}

	// ecdf helper: the fraction of values at or below x
	ecdf := func(vals []float64, x float64) float64 {
		n := 0
		for _, v := range vals {
			if v <= x {
				n++
			}
		}
		return float64(n) / float64(len(vals))
	}

	scores := make([]float64, len(topwords))
	for t, ww := range topwords {
		if t >= k {
			break
		}

		// the exclusivity and frequency distributions for this topic
		excl := make([]float64, vs)
		for v := 0; v < vs; v++ {
			if colsum[v] > 0 {
				excl[v] = phi[t][v] / colsum[v]
			}
		}

		total := float64(0)
		n := 0
		for _, w := range ww {
			v, ok := vmap[w]
			if !ok {
				continue
			}
			ex := ecdf(excl, excl[v])
			fr := ecdf(phi[t], phi[t][v])
			if ex == 0 || fr == 0 {
				continue
			}
			// harmonic weighting per the frex definition
			total += 1.0 / (frexweight/ex + (1.0-frexweight)/fr)
			n++
		}

		if n > 0 {
			scores[t] = total / float64(n)
		}
	}

	return scores
}

// MeanScore - the average of a per-topic score slice
func MeanScore(ss []float64) float64 {
	if len(ss) == 0 {
		return 0
	}
	sum := float64(0)
	for _, s := range ss {
		sum += s
	}
	return sum / float64(len(ss))
}

// MinMaxScale - rescale a slice onto [0, 1]; constant slices scale to all 0.5
func MinMaxScale(ss []float64) []float64 {
	if len(ss) == 0 {
		return nil
	}

	sorted := make([]float64, len(ss))
	copy(sorted, ss)
	sort.Float64s(sorted)
	lo := sorted[0]
	hi := sorted[len(sorted)-1]

	out := make([]float64, len(ss))
	if hi == lo {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}

	for i, s := range ss {
		out[i] = (s - lo) / (hi - lo)
	}
	return out
}
