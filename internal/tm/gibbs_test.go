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

// smallcorpus - two obvious themes: energy storage and genomics
func smallcorpus() []string {
	return []string{
		"graphene anode batteri charg cycl",
		"batteri electrolyt anod cathod charg",
		"lithium batteri capac electrod cycl",
		"electrod capac graphene lithium anod",
		"genom sequenc dna mutat gene",
		"gene express dna sequenc protein",
		"mutat protein genom gene express",
		"dna genom gene sequenc mutat",
	}
}

func TestGibbsShapes(t *testing.T) {
	g := NewGibbsLDA(2, 0.1, 0.01, smallcorpus())
	g.Train(50, func(int) {})

	theta := g.Theta()
	require.Len(t, theta, 8)
	for _, row := range theta {
		require.Len(t, row, 2)
		sum := 0.0
		for _, p := range row {
			assert.GreaterOrEqual(t, p, 0.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}

	phi := g.Phi()
	require.Len(t, phi, 2)
	for _, row := range phi {
		require.Len(t, row, len(g.Vocab()))
		sum := 0.0
		for _, p := range row {
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestGibbsSeparatesThemes(t *testing.T) {
	g := NewGibbsLDA(2, 0.1, 0.01, smallcorpus())
	g.Train(200, func(int) {})

	theta := g.Theta()

	// the battery documents should agree with each other about their dominant topic
	dom := func(row []float64) int {
		if row[0] > row[1] {
			return 0
		}
		return 1
	}

	bat := dom(theta[0])
	for d := 1; d < 4; d++ {
		assert.Equal(t, bat, dom(theta[d]))
	}

	gen := dom(theta[4])
	for d := 5; d < 8; d++ {
		assert.Equal(t, gen, dom(theta[d]))
	}

	assert.NotEqual(t, bat, gen)
}

func TestGibbsReportAndTopWords(t *testing.T) {
	g := NewGibbsLDA(3, 0.1, 0.01, smallcorpus())

	calls := 0
	g.Train(25, func(it int) { calls++ })
	assert.Equal(t, 25, calls)

	tw := g.TopWords(5)
	require.Len(t, tw, 3)
	for _, ww := range tw {
		assert.LessOrEqual(t, len(ww), 5)
		for _, w := range ww {
			assert.Contains(t, g.Vocab(), w)
		}
	}

	lk := g.Likelihood()
	assert.False(t, math.IsNaN(lk))
	assert.Less(t, lk, 0.0)
}
