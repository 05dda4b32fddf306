//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"testing"

	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/stretchr/testify/assert"
)

func TestSessionVault(t *testing.T) {
	sv := MakeSessionVault()

	assert.False(t, sv.IsInVault("abc"))

	sv.InsertSess(str.ServerSession{ID: "abc", ActiveCorp: "graphene"})
	assert.True(t, sv.IsInVault("abc"))
	assert.Equal(t, "graphene", sv.GetSess("abc").ActiveCorp)

	sv.Delete("abc")
	assert.False(t, sv.IsInVault("abc"))
}

func TestGetSessDefaults(t *testing.T) {
	sv := MakeSessionVault()

	// an unknown id yields a fresh default session without storing it
	s := sv.GetSess("nobody")
	assert.Equal(t, "nobody", s.ID)
	assert.Equal(t, vv.MINYEAR, s.YearFrom)
	assert.Equal(t, vv.MAXYEAR, s.YearTo)
	assert.NotEmpty(t, s.ActiveSrc)
	assert.False(t, sv.IsInVault("nobody"))
}
