//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package prep

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeSubstitutions(t *testing.T) {
	in := "Smith et al. showed this, e.g. in Fig. 3."
	out := MakeSubstitutions(in)
	assert.NotContains(t, out, "et al.")
	assert.NotContains(t, out, "e.g.")
	assert.NotContains(t, out, "Fig.")
	assert.Contains(t, out, "et al showed")
}

func TestSplitOnPunctuation(t *testing.T) {
	ss := SplitOnPunctuation("First. Second! Third? Fourth; fifth")
	assert.Len(t, ss, 5)
	assert.Equal(t, "First", ss[0])
	assert.Equal(t, " Second", ss[1])
}

func TestDeAccent(t *testing.T) {
	assert.Equal(t, "schrodinger", DeAccent("schrödinger"))
	assert.Equal(t, "Erdos-Renyi", DeAccent("Erdős-Rényi"))
	assert.Equal(t, "plain", DeAccent("plain"))
}

func TestStripMarkup(t *testing.T) {
	in := `We study <i>in vivo</i> $\alpha$-decay \cite{smith2020} at https://example.org/x blah`
	out := StripMarkup(in)
	assert.NotContains(t, out, "<i>")
	assert.NotContains(t, out, "$")
	assert.NotContains(t, out, `\cite`)
	assert.NotContains(t, out, "https://")
	assert.Contains(t, out, "in vivo")
}

func TestStripper(t *testing.T) {
	out := Stripper("abc123def", []string{`\d+`})
	assert.Equal(t, "abcdef", out)
}

func TestStemWord(t *testing.T) {
	assert.Equal(t, "batteri", StemWord("Batteries", "english"))
	assert.Equal(t, StemWord("battery", "english"), StemWord("batteries", "english"))
	// an unknown stemmer language falls back to the lowercased surface form
	assert.Equal(t, "batteries", StemWord("Batteries", "klingon"))
	assert.False(t, strings.ContainsRune(StemWord("schrödinger", "english"), 'ö'))
}
