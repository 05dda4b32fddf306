//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tm

import (
	"testing"

	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKGrid(t *testing.T) {
	kk, err := ParseKGrid("8, 4,6")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6, 8}, kk)

	// duplicates collapse
	kk, err = ParseKGrid("4,4,6")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 6}, kk)

	// empty falls back to the default grid
	kk, err = ParseKGrid("  ")
	require.NoError(t, err)
	assert.NotEmpty(t, kk)

	_, err = ParseKGrid("4,banana")
	assert.Error(t, err)

	_, err = ParseKGrid("1")
	assert.Error(t, err)

	_, err = ParseKGrid("999")
	assert.Error(t, err)

	_, err = ParseKGrid("2,3,4,5,6,7,8,9,10")
	assert.Error(t, err)
}

func TestSelectTopicCount(t *testing.T) {
	// two well-separated themes; any sane scoring should prefer a small K
	corpus := smallcorpus()
	grid := []int{2, 4}

	iters := 0
	scores, best := SelectTopicCount(grid, corpus, func(int) { iters++ })

	require.Len(t, scores, 2)
	assert.Contains(t, grid, best)
	assert.Equal(t, len(grid)*vv.GIBBSITER, iters)

	for _, s := range scores {
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 1.0)
	}
}
