//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearPrevalence(t *testing.T) {
	// topic 0 rises by 0.1 a year; topic 1 falls by the same
	theta := [][]float64{
		{0.2, 0.8},
		{0.3, 0.7},
		{0.4, 0.6},
		{0.5, 0.5},
	}
	years := []int{2019, 2020, 2021, 2022}

	trends := YearPrevalence(theta, years)
	require.Len(t, trends, 2)

	assert.InDelta(t, 0.1, trends[0].Slope, 1e-9)
	assert.InDelta(t, -0.1, trends[1].Slope, 1e-9)
	assert.InDelta(t, 0.35, trends[0].Mean, 1e-9)

	// undated documents are left out of the regression
	years[3] = 0
	trends = YearPrevalence(theta, years)
	require.Len(t, trends, 2)
	assert.InDelta(t, 0.1, trends[0].Slope, 1e-9)

	assert.Nil(t, YearPrevalence(theta, []int{2020}))
	assert.Nil(t, YearPrevalence(nil, nil))
}

func TestPrevalenceByYear(t *testing.T) {
	theta := [][]float64{
		{0.2, 0.8},
		{0.4, 0.6},
		{0.5, 0.5},
		{0.9, 0.1},
	}
	years := []int{2020, 2020, 2021, 0}

	byyear, yy := PrevalenceByYear(theta, years)
	require.Equal(t, []int{2020, 2021}, yy)

	// 2020 averages its two documents; the undated one is ignored
	assert.InDelta(t, 0.3, byyear[2020][0], 1e-9)
	assert.InDelta(t, 0.7, byyear[2020][1], 1e-9)
	assert.InDelta(t, 0.5, byyear[2021][0], 1e-9)
}
