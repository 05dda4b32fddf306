//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPurgechars(t *testing.T) {
	assert.Equal(t, "graphene batteries", Purgechars(`"'!`, `"graphene batteries!"`))
	assert.Equal(t, "untouched", Purgechars(`xyz@`, "untouched"))
}

func TestAvoidLongLines(t *testing.T) {
	short := "a short line"
	assert.Equal(t, short, AvoidLongLines(short, 60))

	long := strings.Repeat("word ", 30)
	broken := AvoidLongLines(long, 40)
	assert.Contains(t, broken, "<br>")
}

func TestCropTitle(t *testing.T) {
	assert.Equal(t, "short", CropTitle("short", 10))
	assert.Equal(t, "a long ti…", CropTitle("a long title indeed", 9))
	// multibyte titles crop on runes, not bytes
	assert.Equal(t, "schröd…", CropTitle("schrödinger equation", 6))
}
