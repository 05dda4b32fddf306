//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefaultProlixConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgdir := fmt.Sprintf(vv.CONFIGALTAPTH, home)
	require.NoError(t, os.MkdirAll(cfgdir, 0755))

	WriteDefaultProlixConfig()

	written := filepath.Join(cfgdir, vv.CONFIGPROLIX)
	content, err := os.ReadFile(written)
	require.NoError(t, err)

	var c str.CurrentConfiguration
	require.NoError(t, json.Unmarshal(content, &c))
	assert.Equal(t, vv.DEFAULTHARVESTCAP, c.HarvestCap)
	assert.Equal(t, vv.KGRIDDEFAULT, c.KGrid)
	assert.Equal(t, vv.SERVEDFROMPORT, c.HostPort)

	// a second call must not clobber an existing file
	edited := append(content, []byte("\n")...)
	require.NoError(t, os.WriteFile(written, edited, vv.WRITEPERMS))
	WriteDefaultProlixConfig()
	after, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Equal(t, edited, after)
}
