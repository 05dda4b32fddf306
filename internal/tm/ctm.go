//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

//
// CORRELATED TOPICS: which topics travel together across documents?
//

// TopicCorrelations - pearson correlation of every topic pair across the theta rows: [k][k]
func TopicCorrelations(theta [][]float64) [][]float64 {
	if len(theta) == 0 {
		return nil
	}
	k := len(theta[0])

	// one column per topic
	cols := make([][]float64, k)
	for t := 0; t < k; t++ {
		cols[t] = make([]float64, len(theta))
		for d := range theta {
			cols[t][d] = theta[d][t]
		}
	}

	corr := make([][]float64, k)
	for i := 0; i < k; i++ {
		corr[i] = make([]float64, k)
		corr[i][i] = 1
		for j := 0; j < i; j++ {
			c := stat.Correlation(cols[i], cols[j], nil)
			corr[i][j] = c
			corr[j][i] = c
		}
	}

	return corr
}

// CorrelatedPairs - the topic pairs whose correlation clears the threshold, strongest first
type TopicPair struct {
	A    int
	B    int
	Corr float64
}

func CorrelatedPairs(corr [][]float64, threshold float64) []TopicPair {
	var pairs []TopicPair
	for i := range corr {
		for j := 0; j < i; j++ {
			if corr[i][j] >= threshold {
				pairs = append(pairs, TopicPair{A: j, B: i, Corr: corr[i][j]})
			}
		}
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Corr > pairs[j].Corr })

	return pairs
}
