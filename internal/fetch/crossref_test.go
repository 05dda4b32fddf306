//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripJATS(t *testing.T) {
	in := `<jats:title>Abstract</jats:title><jats:p>We study <jats:italic>in vivo</jats:italic> effects.</jats:p>`
	assert.Equal(t, "We study in vivo effects.", StripJATS(in))

	assert.Equal(t, "", StripJATS(""))
	assert.Equal(t, "plain text stays", StripJATS("plain text stays"))
}
