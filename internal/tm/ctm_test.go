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

func TestTopicCorrelations(t *testing.T) {
	// topics 0 and 1 move together; topic 2 moves against them
	theta := [][]float64{
		{0.1, 0.1, 0.8},
		{0.2, 0.2, 0.6},
		{0.3, 0.3, 0.4},
		{0.4, 0.4, 0.2},
	}

	corr := TopicCorrelations(theta)
	require.Len(t, corr, 3)

	for i := range corr {
		assert.InDelta(t, 1.0, corr[i][i], 1e-9)
	}

	assert.InDelta(t, 1.0, corr[0][1], 1e-9)
	assert.InDelta(t, -1.0, corr[0][2], 1e-9)

	// symmetric
	assert.Equal(t, corr[0][1], corr[1][0])
	assert.Equal(t, corr[0][2], corr[2][0])

	assert.Nil(t, TopicCorrelations(nil))
}

func TestCorrelatedPairs(t *testing.T) {
	corr := [][]float64{
		{1.0, 0.9, -0.5},
		{0.9, 1.0, 0.3},
		{-0.5, 0.3, 1.0},
	}

	pairs := CorrelatedPairs(corr, 0.25)
	require.Len(t, pairs, 2)

	// strongest first
	assert.Equal(t, 0, pairs[0].A)
	assert.Equal(t, 1, pairs[0].B)
	assert.InDelta(t, 0.9, pairs[0].Corr, 1e-9)
	assert.InDelta(t, 0.3, pairs[1].Corr, 1e-9)

	assert.Empty(t, CorrelatedPairs(corr, 0.95))
}
