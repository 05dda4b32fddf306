//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package fetch

import (
	"testing"

	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/stretchr/testify/assert"
)

func allsources(on bool) map[string]bool {
	return map[string]bool{
		vv.ARXIVSRC:   on,
		vv.OPENALEX:   on,
		vv.CROSSREF:   on,
		vv.PUBMED:     on,
		vv.SEMSCHOLAR: on,
	}
}

func TestValidateRejections(t *testing.T) {
	q := HarvestQuery{Query: "", Sources: allsources(true)}
	assert.Error(t, q.Validate())

	q = HarvestQuery{Query: "bad\"chars", Sources: allsources(true)}
	assert.Error(t, q.Validate())

	q = HarvestQuery{Query: "fine", Sources: allsources(false)}
	assert.Error(t, q.Validate())

	q = HarvestQuery{Query: "fine", Sources: map[string]bool{"gopherpedia": true}}
	assert.Error(t, q.Validate())

	q = HarvestQuery{Query: "fine", Sources: allsources(true), YearFrom: 2020, YearTo: 2010}
	assert.Error(t, q.Validate())
}

func TestValidateNormalization(t *testing.T) {
	q := HarvestQuery{Query: "  graphene  ", Sources: allsources(true)}
	assert.NoError(t, q.Validate())
	assert.Equal(t, "graphene", q.Query)
	assert.Equal(t, vv.MINYEAR, q.YearFrom)
	assert.Equal(t, vv.MAXYEAR, q.YearTo)
	assert.Equal(t, vv.DEFAULTHARVESTCAP, q.Cap)

	q = HarvestQuery{Query: "graphene", Sources: allsources(true), Cap: vv.MAXHARVESTCAP * 10}
	assert.NoError(t, q.Validate())
	assert.Equal(t, vv.MAXHARVESTCAP, q.Cap)
}
