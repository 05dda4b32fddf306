//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"strings"

	"github.com/e-gun/LitMineGoServer/internal/emb"
	"github.com/e-gun/LitMineGoServer/internal/prep"
	"github.com/e-gun/LitMineGoServer/internal/viz"
	"github.com/e-gun/LitMineGoServer/internal/vlt"
	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/e-gun/wego/pkg/search"
	"github.com/labstack/echo/v4"
)

// RtNeighbors - train (or fetch) a word-embedding model of the active corpus and walk a term's neighborhood
func RtNeighbors(c echo.Context) error {
	c.Response().After(func() { Msg.LogPaths("RtNeighbors()") })

	const (
		FAIL1   = "no term given; add ?term=... to the request"
		FAIL2   = "term contains unacceptable character(s): %s"
		FAIL3   = "»%s« is not in the model's vocabulary"
		SUMM    = `Nearest neighbors of <span class="sought">»%s«</span> (as <span class="sought">%s</span>) via %s`
		SETTING = "modeler: %s; neighbors: %d"
	)

	user := vlt.ReadUUIDCookie(c)
	se := vlt.AllSessions.GetSess(user)
	id := c.Param("id")

	term := strings.TrimSpace(c.QueryParam("term"))
	if term == "" {
		return joberror(c, FAIL1)
	}
	if bad := strings.IndexAny(term, vv.UNACCEPTABLEINPUT); bad != -1 {
		return joberror(c, fmt.Sprintf(FAIL2, string(term[bad])))
	}

	done := modeljob(c, id, user)
	defer done()

	_, bags, _, oops := corpusintobags(id, se)
	if oops != "" {
		return joberror(c, oops)
	}

	// the corpus was stemmed at bagging time; the query must match
	stemmed := prep.StemWord(term, se.StemLang)

	nn := emb.GenerateNeighborsData(id, se, stemmed, bags)
	if len(nn[stemmed]) == 0 {
		return joberror(c, fmt.Sprintf(FAIL3, stemmed))
	}

	htm := neighborstable(stemmed, nn[stemmed])

	settings := fmt.Sprintf(SETTING, se.VecModeler, se.VecNeighbCt)
	img := viz.NeighborGraph(se, stemmed, settings, nn)

	summary := fmt.Sprintf(SUMM, term, stemmed, se.VecModeler)
	return jobresult(c, se.ActiveCorp, summary, htm, img)
}

// neighborstable - html table of a term's nearest neighbors by cosine similarity
func neighborstable(coreword string, neighbors search.Neighbors) string {
	const (
		FULLTABLE = `
	<table class="neighbors"><tbody>
	%s
	</tbody></table>
	<hr>`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan = "3">Nearest neighbors of »%s«</td>
    </tr>
	<tr class="vectorrow">
		<td class="vectorrank">Rank</td>
		<td class="vectorrank">Term</td>
		<td class="vectorrank">Similarity</td>
	</tr>
    %s`

		TABLEELEM = `
		<td class="vectorrank">%d</td>
		<td class="vectorsent">%s</td>
		<td class="vectorscore">%.4f</td>`
	)

	var tablecolumn []string
	for _, n := range neighbors {
		tablecolumn = append(tablecolumn, fmt.Sprintf(TABLEELEM, n.Rank, n.Word, n.Similarity))
	}

	tableout := fmt.Sprintf(TABLETOP, coreword, zebrarows(tablecolumn))
	return fmt.Sprintf(FULLTABLE, tableout)
}
