//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package fetch

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArxivQueryURL(t *testing.T) {
	q := HarvestQuery{Query: "graphene batteries", YearFrom: 1800, YearTo: 2100}
	u := arxivqueryurl(q, 0, 100)

	assert.Contains(t, u, "search_query=all%3Agraphene+batteries")
	assert.Contains(t, u, "start=0")
	assert.Contains(t, u, "max_results=100")
	assert.NotContains(t, u, "submittedDate")

	q.YearFrom = 2015
	q.YearTo = 2020
	u = arxivqueryurl(q, 100, 100)
	assert.Contains(t, u, "submittedDate")
	assert.Contains(t, u, "201501010000")
	assert.Contains(t, u, "202012312359")
	assert.Contains(t, u, "start=100")
}

const atomsample = `<entry>
	<id>http://arxiv.org/abs/2301.00001v2</id>
	<title>Graphene  Batteries:
  A Survey</title>
	<summary>We survey
  recent work.</summary>
	<published>2023-01-02T18:30:00Z</published>
	<author><name>A. Researcher</name></author>
	<author><name>B. Coauthor</name></author>
	<category term="cond-mat.mtrl-sci"/>
	<link href="http://arxiv.org/abs/2301.00001v2" rel="alternate"/>
</entry>`

func TestArxivToDoc(t *testing.T) {
	var e arxiventry
	require.NoError(t, xml.Unmarshal([]byte(atomsample), &e))

	d := arxivtodoc(e)

	// the version suffix is stripped so v1 and v2 share a UID
	assert.Equal(t, "arxiv/2301.00001", d.UID)
	assert.Equal(t, "2301.00001", d.ExtID)
	assert.Equal(t, "arxiv", d.Source)

	// the atom feed's hard-wrapped whitespace is collapsed
	assert.Equal(t, "Graphene Batteries: A Survey", d.Title)
	assert.Equal(t, "We survey recent work.", d.Abstract)

	assert.Equal(t, 2023, d.Year)
	assert.Equal(t, []string{"A. Researcher", "B. Coauthor"}, d.Authors)
	assert.Equal(t, "arXiv [cond-mat.mtrl-sci]", d.Venue)
	assert.Equal(t, "http://arxiv.org/abs/2301.00001v2", d.URL)
}

func TestWhitespaceCollapse(t *testing.T) {
	assert.Equal(t, "a b c", whitespacecollapse("  a\n  b\t c "))
	assert.True(t, strings.TrimSpace(whitespacecollapse("   ")) == "")
}
