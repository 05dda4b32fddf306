//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorpusname(t *testing.T) {
	assert.Equal(t, "graphene_batteries", corpusname("Graphene Batteries!"))
	assert.Equal(t, "solid_state", corpusname("  solid-state?  "))

	long := corpusname(strings.Repeat("abc ", 40))
	assert.LessOrEqual(t, len(long), 48)
	assert.False(t, strings.HasSuffix(long, "_"))
	assert.NotContains(t, long, "<br>")
}

func TestZebrarows(t *testing.T) {
	out := zebrarows([]string{"<td>a</td>", "<td>b</td>", "<td>c</td>"})
	assert.Equal(t, 2, strings.Count(out, `class="nthrow"`))
	assert.Equal(t, 1, strings.Count(out, `class="vectorrow"`))
	assert.Contains(t, out, "<td>a</td>")
}
