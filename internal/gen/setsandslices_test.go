//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnique(t *testing.T) {
	uu := Unique([]string{"a", "a", "b", "a", "c", "b"})
	sort.Strings(uu)
	assert.Equal(t, []string{"a", "b", "c"}, uu)
}

func TestSetSubtraction(t *testing.T) {
	aa := []string{"a", "b", "c", "d", "g", "h"}
	bb := []string{"a", "b", "e", "f", "g"}
	assert.Equal(t, []string{"c", "d", "h"}, SetSubtraction(aa, bb))
}

func TestIsInSlice(t *testing.T) {
	sl := []string{"w2v", "glove", "lexvec"}
	assert.True(t, IsInSlice("glove", sl))
	assert.False(t, IsInSlice("fasttext", sl))
}

func TestContainsN(t *testing.T) {
	assert.Equal(t, 3, ContainsN([]int{1, 2, 1, 3, 1}, 1))
	assert.Equal(t, 0, ContainsN([]int{1, 2, 3}, 9))
}

func TestFlattenSlices(t *testing.T) {
	ff := FlattenSlices([][]int{{1, 2}, {3}, {}, {4, 5}})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ff)
}

func TestSortedMapKeys(t *testing.T) {
	m := map[string]int{"c": 1, "a": 2, "b": 3}
	assert.Equal(t, []string{"a", "b", "c"}, SortedMapKeys(m))
}

func TestChunkSlice(t *testing.T) {
	cc := ChunkSlice([]int{1, 2, 3, 4, 5}, 2)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, cc)
}
