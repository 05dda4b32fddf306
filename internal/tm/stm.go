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
// STRUCTURAL PREVALENCE: regress each topic's share on publication year; rising and falling topics fall out
//

// TopicTrend - how one topic's prevalence moves with the year covariate
type TopicTrend struct {
	Topic     int
	Slope     float64 // change in expected prevalence per year
	Intercept float64
	Mean      float64
}

// YearPrevalence - per-topic OLS of theta on year; documents with no year are left out
func YearPrevalence(theta [][]float64, years []int) []TopicTrend {
	if len(theta) == 0 || len(theta) != len(years) {
		return nil
	}
	k := len(theta[0])

	// only dated documents enter the regression
	var xs []float64
	var rows []int
	for d, y := range years {
		if y != 0 {
			xs = append(xs, float64(y))
			rows = append(rows, d)
		}
	}
	if len(xs) < 2 {
		return nil
	}

	trends := make([]TopicTrend, k)
	ys := make([]float64, len(rows))

	for t := 0; t < k; t++ {
		for i, d := range rows {
			ys[i] = theta[d][t]
		}

		intercept, slope := stat.LinearRegression(xs, ys, nil, false)

		trends[t] = TopicTrend{
			Topic:     t,
			Slope:     slope,
			Intercept: intercept,
			Mean:      MeanScore(ys),
		}
	}

	return trends
}

// PrevalenceByYear - mean theta per topic per year; the time-series the grapher plots
func PrevalenceByYear(theta [][]float64, years []int) (map[int][]float64, []int) {
	if len(theta) == 0 || len(theta) != len(years) {
		return nil, nil
	}
	k := len(theta[0])

	sums := make(map[int][]float64)
	counts := make(map[int]int)

	for d, y := range years {
		if y == 0 {
			continue
		}
		if _, ok := sums[y]; !ok {
			sums[y] = make([]float64, k)
		}
		for t := 0; t < k; t++ {
			sums[y][t] += theta[d][t]
		}
		counts[y]++
	}

	for y := range sums {
		for t := 0; t < k; t++ {
			sums[y][t] /= float64(counts[y])
		}
	}

	var yy []int
	for y := range sums {
		yy = append(yy, y)
	}
	sort.Ints(yy)

	return sums, yy
}
