//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package db

import (
	"testing"

	"github.com/e-gun/LitMineGoServer/internal/lnch"
	"github.com/e-gun/LitMineGoServer/internal/mm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelCacheRoundTrip(t *testing.T) {
	lnch.Config.SQLite = true
	LiteDB = OpenSQLite()
	ModelCacheInit()

	type toymodel struct {
		Terms  []string
		Scores []float64
	}

	in := toymodel{
		Terms:  []string{"battery", "anode", "cathode"},
		Scores: []float64{0.9, 0.5, 0.4},
	}

	ModelCacheAdd("0123456789abcdef0123456789abcdef", "toy", in)
	require.True(t, ModelCacheCheck("0123456789abcdef0123456789abcdef"))

	var out toymodel
	require.True(t, ModelCacheFetch("0123456789abcdef0123456789abcdef", &out))
	assert.Equal(t, in, out)

	// a fingerprint nobody stored
	var missing toymodel
	assert.False(t, ModelCacheFetch("ffffffffffffffffffffffffffffffff", &missing))

	// the size query has to survive an occupied table
	ModelCacheSize(mm.MSGTMI)

	ModelCacheReset()
	assert.False(t, ModelCacheCheck("0123456789abcdef0123456789abcdef"))
}
