//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUninvert(t *testing.T) {
	inv := map[string][]int{
		"the":   {0, 3},
		"quick": {1},
		"fox":   {2},
		"den":   {4},
	}
	assert.Equal(t, "the quick fox the den", uninvert(inv))
	assert.Equal(t, "", uninvert(nil))
}
