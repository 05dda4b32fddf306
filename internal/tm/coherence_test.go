//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUMassCoherenceHandComputed(t *testing.T) {
	corpus := []string{
		"a b",
		"a b",
		"a c",
	}

	// topic {a, b}: D(a)=3, D(b)=2, D(a,b)=2
	// score = log((D(b,a)+1)/D(a)) = log(3/3) = 0
	scores := UMassCoherence([][]string{{"a", "b"}}, corpus)
	require.Len(t, scores, 1)
	assert.InDelta(t, 0.0, scores[0], 1e-9)

	// topic {a, c}: D(a,c)=1 -> log((1+1)/3)
	scores = UMassCoherence([][]string{{"a", "c"}}, corpus)
	assert.InDelta(t, math.Log(2.0/3.0), scores[0], 1e-9)

	// words that never co-occur score worse than words that always do
	never := UMassCoherence([][]string{{"b", "c"}}, corpus)
	always := UMassCoherence([][]string{{"a", "b"}}, corpus)
	assert.Less(t, never[0], always[0])
}

func TestExclusivity(t *testing.T) {
	// two topics over three words; "x" belongs to topic 0, "z" to topic 1, "y" is shared
	phi := [][]float64{
		{0.8, 0.15, 0.05},
		{0.05, 0.15, 0.8},
	}
	vocab := []string{"x", "y", "z"}
	tw := [][]string{{"x"}, {"z"}}

	scores := Exclusivity(phi, vocab, tw, 0.7)
	require.Len(t, scores, 2)

	// exclusive top words score higher than a shared word would
	shared := Exclusivity(phi, vocab, [][]string{{"y"}, {"y"}}, 0.7)
	assert.Greater(t, scores[0], shared[0])
	assert.Greater(t, scores[1], shared[1])
}

func TestMeanScore(t *testing.T) {
	assert.Equal(t, 2.0, MeanScore([]float64{1, 2, 3}))
	assert.Equal(t, 0.0, MeanScore(nil))
}

func TestMinMaxScale(t *testing.T) {
	out := MinMaxScale([]float64{-10, 0, 10})
	assert.Equal(t, []float64{0, 0.5, 1}, out)

	// a constant slice pins to the middle
	out = MinMaxScale([]float64{3, 3, 3})
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, out)

	assert.Nil(t, MinMaxScale(nil))
}
