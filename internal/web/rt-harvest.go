//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/e-gun/LitMineGoServer/internal/db"
	"github.com/e-gun/LitMineGoServer/internal/fetch"
	"github.com/e-gun/LitMineGoServer/internal/gen"
	"github.com/e-gun/LitMineGoServer/internal/lnch"
	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/vlt"
	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/labstack/echo/v4"
)

// RtHarvest - fan a query out to the active bibliographic APIs; store the result as the session's corpus
func RtHarvest(c echo.Context) error {
	c.Response().After(func() { Msg.LogPaths("RtHarvest()") })

	const (
		FAIL1  = "harvest rejected: %s"
		FAIL2  = "this IP already has %d active job(s); limit is %d"
		FAIL3  = "the server already has %d active job(s); limit is %d"
		FAIL4  = "the harvest came back empty: %v"
		TOOFEW = 1
		SUMM   = `Harvested <span class="sought">»%s«</span>: <span class="progress">%d</span> documents across %d source(s)`
	)

	user := vlt.ReadUUIDCookie(c)
	se := vlt.AllSessions.GetSess(user)

	id := c.Param("id")
	q := c.QueryParam("q")

	hq := fetch.HarvestQuery{
		ID:       id,
		User:     user,
		Query:    q,
		Cap:      se.HarvestCap,
		YearFrom: se.YearFrom,
		YearTo:   se.YearTo,
		Sources:  se.ActiveSrc,
	}

	if err := hq.Validate(); err != nil {
		return joberror(c, fmt.Sprintf(FAIL1, err))
	}

	// job caps: per-IP first, then global
	ip := c.RealIP()
	if n := jobcount(ip); n >= lnch.Config.MaxJobIP {
		return joberror(c, fmt.Sprintf(FAIL2, n, lnch.Config.MaxJobIP))
	}
	if n := jobcount(""); n >= lnch.Config.MaxJobTot {
		return joberror(c, fmt.Sprintf(FAIL3, n, lnch.Config.MaxJobTot))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	vlt.WSInfo.InsertInfo <- vlt.WSJobInfo{
		ID:        id,
		User:      user,
		Exists:    true,
		JobCount:  1,
		JType:     "",
		Launched:  time.Now(),
		RealIP:    ip,
		CancelFnc: cancel,
	}
	defer func() { vlt.WSInfo.Del <- id }()

	docs, err := fetch.Harvest(ctx, hq)
	if err != nil || len(docs) < TOOFEW {
		return joberror(c, fmt.Sprintf(FAIL4, err))
	}

	corpus := corpusname(hq.Query)
	db.StoreCorpus(corpus, docs)

	se.ActiveCorp = corpus
	vlt.AllSessions.InsertSess(se)

	srcs := 0
	for _, on := range hq.Sources {
		if on {
			srcs++
		}
	}

	summary := fmt.Sprintf(SUMM, gen.AvoidLongLines(hq.Query, 60), len(docs), srcs)
	htm := harvesttable(corpus, docs)

	return jobresult(c, corpus, summary, htm, "")
}

// jobcount - how many jobs does the hub know about for this IP (or in total when ip is empty)
func jobcount(ip string) int {
	responder := vlt.WSJICount{Key: ip, Response: make(chan int)}
	vlt.WSInfo.IPJobCount <- responder
	return <-responder.Response
}

var notacorpuschar = regexp.MustCompile(`[^a-z0-9]+`)

// corpusname - "Graphene Batteries!" -> "graphene_batteries"
func corpusname(q string) string {
	const (
		MAXNAME = 48
	)
	n := strings.ToLower(strings.TrimSpace(q))
	n = notacorpuschar.ReplaceAllString(n, "_")
	n = strings.Trim(n, "_")
	if len(n) > MAXNAME {
		n = strings.Trim(n[:MAXNAME], "_")
	}
	return n
}

// harvesttable - html table reporting what was just fetched and stored
func harvesttable(corpus string, docs []str.DbDocument) string {
	const (
		FULLTABLE = `
	<table class="harvestfinds"><tbody>
	%s
	</tbody></table>
	`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan = "5">Corpus »%s«: the %d most recent of %d documents</td>
    </tr>
	<tr class="vectorrow">
		<td class="vectorrank">#</td>
		<td class="vectorrank">Citation</td>
		<td class="vectorrank">Title</td>
		<td class="vectorrank">Source</td>
		<td class="vectorrank">Cited by</td>
	</tr>
    %s`

		TABLEELEM = `
		<td class="vectorrank">%d</td>
		<td class="vectorloc">%s</td>
		<td class="vectorsent">%s</td>
		<td class="vectorloc">%s</td>
		<td class="vectorscore">%d</td>`
	)

	show := vv.MAXHARVESTINFOLISTLEN
	if show > len(docs) {
		show = len(docs)
	}

	// LoadCorpus-order is year DESC; a fresh harvest is unsorted
	sorted := make([]str.DbDocument, len(docs))
	copy(sorted, docs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Year > sorted[j].Year })

	var tablecolumn []string
	for i := 0; i < show; i++ {
		d := sorted[i]
		r := fmt.Sprintf(TABLEELEM, i+1, d.Citation(), doclink(&d), d.Source, d.CiteCount)
		tablecolumn = append(tablecolumn, r)
	}

	tableout := fmt.Sprintf(TABLETOP, corpus, show, len(docs), zebrarows(tablecolumn))
	return fmt.Sprintf(FULLTABLE, tableout)
}

// doclink - title text, clickable when the record brought a url along
func doclink(d *str.DbDocument) string {
	const (
		AHREF = `<a href="%s">%s</a>`
	)
	t := gen.CropTitle(d.Title, vv.MAXTITLELENGTH)
	if d.URL == "" {
		return t
	}
	return fmt.Sprintf(AHREF, d.URL, t)
}

// RtCorporaList - JSON map of stored corpora and their document counts
func RtCorporaList(c echo.Context) error {
	return c.JSONPretty(http.StatusOK, db.Corpora(), vv.JSONINDENT)
}

// RtCorporaDel - drop a stored corpus
func RtCorporaDel(c echo.Context) error {
	const (
		MSG = "deleted corpus »%s«"
	)
	name := c.Param("name")
	db.DeleteCorpus(name)

	user := vlt.ReadUUIDCookie(c)
	se := vlt.AllSessions.GetSess(user)
	if se.ActiveCorp == name {
		se.ActiveCorp = ""
		vlt.AllSessions.InsertSess(se)
	}

	return c.String(http.StatusOK, fmt.Sprintf(MSG, name))
}
