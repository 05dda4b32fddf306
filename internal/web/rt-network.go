//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"strings"

	"github.com/e-gun/LitMineGoServer/internal/netw"
	"github.com/e-gun/LitMineGoServer/internal/prep"
	"github.com/e-gun/LitMineGoServer/internal/viz"
	"github.com/e-gun/LitMineGoServer/internal/vlt"
	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/labstack/echo/v4"
)

// RtKeywordNetwork - build a keyword co-occurrence network from the active corpus; rank and graph it
func RtKeywordNetwork(c echo.Context) error {
	c.Response().After(func() { Msg.LogPaths("RtKeywordNetwork()") })

	const (
		FAIL1   = "keyword extraction failed: %v"
		FAIL2   = "the network is empty; the corpus is too small or too diverse"
		SUMM    = `Keyword network for <span class="sought">»%s«</span>: %d terms, %d edges`
		NWMSG   = `Extracting keywords and building the network`
		SETTING = "%d keywords per document; edges seen fewer than %d times are pruned"
		TOPTERM = 25
	)

	user := vlt.ReadUUIDCookie(c)
	se := vlt.AllSessions.GetSess(user)
	id := c.Param("id")

	done := modeljob(c, id, user)
	defer done()

	_, _, corpus, oops := corpusintobags(id, se)
	if oops != "" {
		return joberror(c, oops)
	}

	vlt.WSInfo.UpdateSummMsg <- vlt.WSJIKVs{Key: id, Val: NWMSG}

	perdoc, err := prep.TopTfidfTerms(corpus, vv.TFIDFKEYWORDS)
	if err != nil {
		return joberror(c, fmt.Sprintf(FAIL1, err))
	}

	cg := netw.BuildCooccurrence(perdoc, vv.COOCCURMINWEIGHT)
	if cg.Order() == 0 {
		return joberror(c, FAIL2)
	}

	var tables []string
	tables = append(tables, rankedtermstable("Weighted degree (strength)", netw.TopRanked(cg.Strength(), TOPTERM)))
	tables = append(tables, rankedtermstable("PageRank", netw.TopRanked(cg.PageRank(), TOPTERM)))
	tables = append(tables, componentstable(cg.Components()))
	htm := strings.Join(tables, "")

	settings := fmt.Sprintf(SETTING, vv.TFIDFKEYWORDS, vv.COOCCURMINWEIGHT)
	img := viz.KeywordGraph(se, se.ActiveCorp, settings, cg)

	summary := fmt.Sprintf(SUMM, se.ActiveCorp, cg.Order(), cg.Size())
	return jobresult(c, se.ActiveCorp, summary, htm, img)
}

// rankedtermstable - html table of scored keywords, best first
func rankedtermstable(what string, ranked []netw.RankedTerm) string {
	const (
		FULLTABLE = `
	<table class="networkranks"><tbody>
	%s
	</tbody></table>
	`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan = "3">Keywords ranked by %s</td>
    </tr>
	<tr class="vectorrow">
		<td class="vectorrank">Rank</td>
		<td class="vectorrank">Keyword</td>
		<td class="vectorrank">Score</td>
	</tr>
    %s`

		TABLEELEM = `
		<td class="vectorrank">%d</td>
		<td class="vectorsent">%s</td>
		<td class="vectorscore">%.4f</td>`
	)

	var tablecolumn []string
	for i, r := range ranked {
		tablecolumn = append(tablecolumn, fmt.Sprintf(TABLEELEM, i+1, r.Term, r.Score))
	}

	tableout := fmt.Sprintf(TABLETOP, what, zebrarows(tablecolumn))
	return fmt.Sprintf(FULLTABLE, tableout)
}

// componentstable - html table of connected components, largest first
func componentstable(comps [][]string) string {
	const (
		FULLTABLE = `
	<table class="networkcomponents"><tbody>
	%s
	</tbody></table>
	<hr>`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan = "3">Connected components (thematic clusters)</td>
    </tr>
	<tr class="vectorrow">
		<td class="vectorrank">#</td>
		<td class="vectorrank">Size</td>
		<td class="vectorrank">Members</td>
	</tr>
    %s`

		TABLEELEM = `
		<td class="vectorrank">%d</td>
		<td class="vectorrank">%d</td>
		<td class="vectorsent">%s</td>`
	)

	var tablecolumn []string
	for i, cc := range comps {
		tablecolumn = append(tablecolumn, fmt.Sprintf(TABLEELEM, i+1, len(cc), strings.Join(cc, ", ")))
	}

	tableout := fmt.Sprintf(TABLETOP, zebrarows(tablecolumn))
	return fmt.Sprintf(FULLTABLE, tableout)
}
