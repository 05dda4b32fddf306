//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"strings"
	"time"

	"github.com/e-gun/LitMineGoServer/internal/db"
	"github.com/e-gun/LitMineGoServer/internal/emb"
	"github.com/e-gun/LitMineGoServer/internal/gen"
	"github.com/e-gun/LitMineGoServer/internal/prep"
	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/tm"
	"github.com/e-gun/LitMineGoServer/internal/viz"
	"github.com/e-gun/LitMineGoServer/internal/vlt"
	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/labstack/echo/v4"
)

const (
	NOCORPUS = "no active corpus; harvest one first"
	EMPTYCRP = "corpus »%s« is empty or missing; harvest again"
	PREPMSG  = `Preparing the text of <span class="sought">»%s«</span> for modeling`
	BUILDMSG = `Building a %d-topic model`
	MJTYPE   = "model"
)

// modeljob - register a model-build with the hub so the websocket has something to poll
func modeljob(c echo.Context, id string, user string) func() {
	vlt.WSInfo.InsertInfo <- vlt.WSJobInfo{
		ID:       id,
		User:     user,
		Exists:   true,
		JobCount: 1,
		JType:    MJTYPE,
		Launched: time.Now(),
		RealIP:   c.RealIP(),
		// model builds run detached from the request context; nothing to cancel mid-train
		CancelFnc: func() {},
	}
	return func() { vlt.WSInfo.Del <- id }
}

// corpusintobags - load the active corpus and bag it; the error string is user-facing
func corpusintobags(id string, se str.ServerSession) ([]str.DbDocument, []str.BagWithLocus, []string, string) {
	if se.ActiveCorp == "" {
		return nil, nil, nil, NOCORPUS
	}

	docs := db.LoadCorpus(se.ActiveCorp)
	if len(docs) == 0 {
		return nil, nil, nil, fmt.Sprintf(EMPTYCRP, se.ActiveCorp)
	}

	vlt.WSInfo.UpdateSummMsg <- vlt.WSJIKVs{Key: id, Val: fmt.Sprintf(PREPMSG, se.ActiveCorp)}

	bags := prep.BuildBags(docs, vv.LDASENTPERBAG, se.StemLang)
	corpus := prep.BagsAsCorpus(bags)

	return docs, bags, corpus, ""
}

// ntopicsfromsession - the session's topic count, clamped
func ntopicsfromsession(se str.ServerSession) int {
	nt := se.LdaTopics
	if nt < vv.LDATOPICSMIN || nt > vv.LDATOPICSMAX {
		nt = vv.LDATOPICS
	}
	return nt
}

// RtModelLDA - fit an LDA topic model to the active corpus; report words, weights, and top documents per topic
func RtModelLDA(c echo.Context) error {
	c.Response().After(func() { Msg.LogPaths("RtModelLDA()") })

	const (
		FAIL = "the topic model failed: %v"
		SUMM = `Topic model of <span class="sought">»%s«</span>: %d topics over %d documents`
	)

	user := vlt.ReadUUIDCookie(c)
	se := vlt.AllSessions.GetSess(user)
	id := c.Param("id")

	done := modeljob(c, id, user)
	defer done()

	docs, bags, corpus, oops := corpusintobags(id, se)
	if oops != "" {
		return joberror(c, oops)
	}

	ntopics := ntopicsfromsession(se)
	vlt.WSInfo.UpdateSummMsg <- vlt.WSJIKVs{Key: id, Val: fmt.Sprintf(BUILDMSG, ntopics)}

	res, err := tm.LDAModel(ntopics, corpus, bags)
	if err != nil {
		return joberror(c, fmt.Sprintf(FAIL, err))
	}

	var tables []string
	tables = append(tables, ldatopicsummary(res, corpus))
	tables = append(tables, ldatopdocuments(res, docs))
	htm := strings.Join(tables, "")

	var img string
	if se.LdaGraph {
		vlt.WSInfo.UpdateSummMsg <- vlt.WSJIKVs{Key: id, Val: "Embedding the documents via t-SNE"}
		img = viz.TopicScatter(ntopics, res.DocsOverTopics, res.Bags)
	}

	summary := fmt.Sprintf(SUMM, se.ActiveCorp, ntopics, len(bags))
	return jobresult(c, se.ActiveCorp, summary, htm, img)
}

// RtModelSelectK - score a grid of candidate topic counts by coherence and exclusivity; pick a winner
func RtModelSelectK(c echo.Context) error {
	c.Response().After(func() { Msg.LogPaths("RtModelSelectK()") })

	const (
		FAIL   = "the topic-count grid is unusable: %v"
		SUMM   = `Scored %d candidate topic counts for <span class="sought">»%s«</span>; the best is %d`
		CMSG   = `Scoring candidate topic counts: <span class="progress">%d</span> Gibbs iterations done`
		FMSG   = `Fetching stored grid scores`
		MTYPE  = "selectk"
		FPPREF = "selectk:"
	)

	user := vlt.ReadUUIDCookie(c)
	se := vlt.AllSessions.GetSess(user)
	id := c.Param("id")

	done := modeljob(c, id, user)
	defer done()

	grid, err := tm.ParseKGrid(se.KGrid)
	if err != nil {
		return joberror(c, fmt.Sprintf(FAIL, err))
	}

	_, bags, corpus, oops := corpusintobags(id, se)
	if oops != "" {
		return joberror(c, oops)
	}

	// grid scoring is the slowest thing the server does; cache the outcome
	fp := emb.Fingerprint(se.ActiveCorp, FPPREF+se.KGrid, se.StemLang, bags)

	var scores []tm.KScore
	best := 0
	if db.ModelCacheCheck(fp) && db.ModelCacheFetch(fp, &scores) && len(scores) > 0 {
		vlt.WSInfo.UpdateSummMsg <- vlt.WSJIKVs{Key: id, Val: FMSG}
		best = rescorebest(scores)
	} else {
		report := func(i int) {
			vlt.WSInfo.UpdateVProgMsg <- vlt.WSJIKVs{Key: id, Val: fmt.Sprintf(CMSG, i)}
			vlt.WSInfo.UpdateIteration <- vlt.WSJIKVi{Key: id, Val: i}
		}
		scores, best = tm.SelectTopicCount(grid, corpus, report)
		db.ModelCacheAdd(fp, MTYPE, scores)
	}

	// remember the winner so the next RtModelLDA uses it
	se.LdaTopics = best
	vlt.AllSessions.InsertSess(se)

	htm := kgridtable(scores, best)
	img := viz.KGridBars(scores, best)

	summary := fmt.Sprintf(SUMM, len(scores), se.ActiveCorp, best)
	return jobresult(c, se.ActiveCorp, summary, htm, img)
}

// rescorebest - recover the winning K from cached scores; ties go to the smaller model
func rescorebest(scores []tm.KScore) int {
	best := scores[0].K
	bestscore := scores[0].Score
	for _, s := range scores {
		if s.Score > bestscore {
			best = s.K
			bestscore = s.Score
		}
	}
	return best
}

// RtModelTrends - topic prevalence over publication years, with a per-topic linear trend
func RtModelTrends(c echo.Context) error {
	c.Response().After(func() { Msg.LogPaths("RtModelTrends()") })

	const (
		SUMM = `Topic trends in <span class="sought">»%s«</span> across publication years`
		GMSG = `Running the Gibbs sampler: <span class="progress">%d</span> of %d iterations`
	)

	user := vlt.ReadUUIDCookie(c)
	se := vlt.AllSessions.GetSess(user)
	id := c.Param("id")

	done := modeljob(c, id, user)
	defer done()

	docs, bags, corpus, oops := corpusintobags(id, se)
	if oops != "" {
		return joberror(c, oops)
	}

	ntopics := ntopicsfromsession(se)
	vlt.WSInfo.UpdateSummMsg <- vlt.WSJIKVs{Key: id, Val: fmt.Sprintf(BUILDMSG, ntopics)}

	g := tm.NewGibbsLDA(ntopics, vv.GIBBSALPHA, vv.GIBBSBETA, corpus)
	g.Train(vv.GIBBSITER, func(i int) {
		vlt.WSInfo.UpdateVProgMsg <- vlt.WSJIKVs{Key: id, Val: fmt.Sprintf(GMSG, i, vv.GIBBSITER)}
		vlt.WSInfo.UpdateIteration <- vlt.WSJIKVi{Key: id, Val: i}
	})

	theta := g.Theta()
	years := yearsperbag(bags, docs)

	trends := tm.YearPrevalence(theta, years)
	byyear, yrs := tm.PrevalenceByYear(theta, years)

	htm := trendstable(trends, g.TopWords(vv.TOPICTOPWORDS))
	img := viz.TrendLines(ntopics, byyear, yrs)

	summary := fmt.Sprintf(SUMM, se.ActiveCorp)
	return jobresult(c, se.ActiveCorp, summary, htm, img)
}

// RtModelCorrs - which topics co-occur within the same documents?
func RtModelCorrs(c echo.Context) error {
	c.Response().After(func() { Msg.LogPaths("RtModelCorrs()") })

	const (
		SUMM = `Topic correlations in <span class="sought">»%s«</span>`
		GMSG = `Running the Gibbs sampler: <span class="progress">%d</span> of %d iterations`
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

	ntopics := ntopicsfromsession(se)
	vlt.WSInfo.UpdateSummMsg <- vlt.WSJIKVs{Key: id, Val: fmt.Sprintf(BUILDMSG, ntopics)}

	g := tm.NewGibbsLDA(ntopics, vv.GIBBSALPHA, vv.GIBBSBETA, corpus)
	g.Train(vv.GIBBSITER, func(i int) {
		vlt.WSInfo.UpdateVProgMsg <- vlt.WSJIKVs{Key: id, Val: fmt.Sprintf(GMSG, i, vv.GIBBSITER)}
		vlt.WSInfo.UpdateIteration <- vlt.WSJIKVi{Key: id, Val: i}
	})

	corr := tm.TopicCorrelations(g.Theta())
	pairs := tm.CorrelatedPairs(corr, vv.CTMCORRMIN)

	htm := corrpairstable(pairs, g.TopWords(vv.TOPICTOPWORDS)) + corrmatrixtable(corr)

	summary := fmt.Sprintf(SUMM, se.ActiveCorp)
	return jobresult(c, se.ActiveCorp, summary, htm, "")
}

// yearsperbag - bags cite "doc/<uid>"; map each back to its publication year (0 when unknown)
func yearsperbag(bags []str.BagWithLocus, docs []str.DbDocument) []int {
	yearof := make(map[string]int, len(docs))
	for i := range docs {
		yearof[docs[i].UID] = docs[i].Year
	}

	years := make([]int, len(bags))
	for i := range bags {
		years[i] = yearof[bags[i].DocUID()]
	}
	return years
}

//
// THE HTML TABLES
//

// ldatopicsummary - html table that reports on top words and topic weights in the model
func ldatopicsummary(res *tm.LDAResult, corpus []string) string {
	const (
		FULLTABLE = `
	<table class="ldawords"><tbody>
	%s
	</tbody></table>
	`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan = "4">Topic model of the corpus via Latent Dirichlet Allocation</td>
    </tr>
	<tr class="vectorrow">
		<td class="vectorrank">Topic</td>
		<td class="vectorrank">Top %d words associated with each topic</td>
		<td class="vectorrank"># of documents with topic N as their dominant topic</td>
		<td class="vectorrank">scaled total accumulated weight of each topic</td>
	</tr>
    %s`

		TABLEELEM = `
		<td class="vectorrank">%d</td>
		<td class="vectorsent">%s</td>
		<td class="vectorsent">%d (%.2f%%)</td>
		<td class="vectorsent">%.2f%%</td>`
	)

	topn := vv.TOPICTOPWORDS
	tops := res.SortedTopics(topn)
	docspertopic := res.DocsPerTopic()
	docsbyweight := res.DocsByWeight()

	dc := len(corpus)

	var tablecolumn []string
	for topic := 0; topic < res.K; topic++ {
		ts := tops[topic]
		ww := make([]string, len(ts))
		for i := range ts {
			ww[i] = ts[i].W
		}
		data := strings.Join(ww, ", ")
		r := fmt.Sprintf(TABLEELEM, topic+1, data, docspertopic[topic], float64(docspertopic[topic])/float64(dc)*100, docsbyweight[topic]*100)
		tablecolumn = append(tablecolumn, r)
	}

	tableout := fmt.Sprintf(TABLETOP, topn, zebrarows(tablecolumn))
	return fmt.Sprintf(FULLTABLE, tableout)
}

// ldatopdocuments - html table reporting the document most associated with each topic
func ldatopdocuments(res *tm.LDAResult, docs []str.DbDocument) string {
	const (
		FULLTABLE = `
	<table class="ldasentences"><tbody>
	%s
	</tbody></table>
	<hr>`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan = "4">Documents most associated with each topic</td>
    </tr>
	<tr class="vectorrow">
		<td class="vectorrank">Topic</td>
		<td class="vectorrank">Score</td>
		<td class="vectorrank">Citation</td>
		<td class="vectorrank">Title</td>
	</tr>
    %s`

		TABLEELEM = `
		<td class="vectorrank">%d</td>
		<td class="vectorscore">%.4f</td>
		<td class="vectorloc">%s</td>
		<td class="vectorsent">%s</td>`
	)

	docbyuid := make(map[string]str.DbDocument, len(docs))
	for i := range docs {
		docbyuid[docs[i].UID] = docs[i]
	}

	winners := res.TopDocPerTopic()

	var tablecolumn []string
	for i := range winners {
		w := winners[i]
		d, ok := docbyuid[w.DocUID()]
		cit := w.Loc
		ttl := gen.AvoidLongLines(w.Bag, vv.MAXTITLELENGTH)
		if ok {
			cit = d.Citation()
			ttl = doclink(&d)
		}
		r := fmt.Sprintf(TABLEELEM, i+1, w.Score, cit, ttl)
		tablecolumn = append(tablecolumn, r)
	}

	tableout := fmt.Sprintf(TABLETOP, zebrarows(tablecolumn))
	return fmt.Sprintf(FULLTABLE, tableout)
}

// kgridtable - html table reporting the coherence/exclusivity grid scores
func kgridtable(scores []tm.KScore, best int) string {
	const (
		FULLTABLE = `
	<table class="kgridscores"><tbody>
	%s
	</tbody></table>
	`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan = "5">Candidate topic counts scored by coherence and exclusivity</td>
    </tr>
	<tr class="vectorrow">
		<td class="vectorrank">K</td>
		<td class="vectorrank">Mean UMass coherence</td>
		<td class="vectorrank">Mean FREX exclusivity</td>
		<td class="vectorrank">Combined score</td>
		<td class="vectorrank"></td>
	</tr>
    %s`

		TABLEELEM = `
		<td class="vectorrank">%d</td>
		<td class="vectorscore">%.4f</td>
		<td class="vectorscore">%.4f</td>
		<td class="vectorscore">%.4f</td>
		<td class="vectorsent">%s</td>`

		WINNER = `&larr; best`
	)

	var tablecolumn []string
	for _, s := range scores {
		mark := ""
		if s.K == best {
			mark = WINNER
		}
		r := fmt.Sprintf(TABLEELEM, s.K, s.Coherence, s.Exclusivity, s.Score, mark)
		tablecolumn = append(tablecolumn, r)
	}

	tableout := fmt.Sprintf(TABLETOP, zebrarows(tablecolumn))
	return fmt.Sprintf(FULLTABLE, tableout)
}

// trendstable - html table reporting per-topic prevalence trends across years
func trendstable(trends []tm.TopicTrend, topwords [][]string) string {
	const (
		FULLTABLE = `
	<table class="topictrends"><tbody>
	%s
	</tbody></table>
	`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan = "5">Topic prevalence across publication years</td>
    </tr>
	<tr class="vectorrow">
		<td class="vectorrank">Topic</td>
		<td class="vectorrank">Top words</td>
		<td class="vectorrank">Mean prevalence</td>
		<td class="vectorrank">Trend (slope per year)</td>
		<td class="vectorrank">Direction</td>
	</tr>
    %s`

		TABLEELEM = `
		<td class="vectorrank">%d</td>
		<td class="vectorsent">%s</td>
		<td class="vectorscore">%.4f</td>
		<td class="vectorscore">%+.5f</td>
		<td class="vectorsent">%s</td>`

		RISING  = "rising"
		FALLING = "falling"
		FLATTR  = "flat"
	)

	var tablecolumn []string
	for _, t := range trends {
		dir := FLATTR
		if t.Slope > 0 {
			dir = RISING
		} else if t.Slope < 0 {
			dir = FALLING
		}

		ww := ""
		if t.Topic < len(topwords) {
			ww = strings.Join(topwords[t.Topic], ", ")
		}

		r := fmt.Sprintf(TABLEELEM, t.Topic+1, ww, t.Mean, t.Slope, dir)
		tablecolumn = append(tablecolumn, r)
	}

	tableout := fmt.Sprintf(TABLETOP, zebrarows(tablecolumn))
	return fmt.Sprintf(FULLTABLE, tableout)
}

// corrpairstable - html table of the significantly correlated topic pairs
func corrpairstable(pairs []tm.TopicPair, topwords [][]string) string {
	const (
		FULLTABLE = `
	<table class="topiccorrs"><tbody>
	%s
	</tbody></table>
	`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan = "4">Correlated topic pairs (|r| &ge; %.2f)</td>
    </tr>
	<tr class="vectorrow">
		<td class="vectorrank">Topic A</td>
		<td class="vectorrank">Topic B</td>
		<td class="vectorrank">r</td>
		<td class="vectorrank">Top words (A | B)</td>
	</tr>
    %s`

		TABLEELEM = `
		<td class="vectorrank">%d</td>
		<td class="vectorrank">%d</td>
		<td class="vectorscore">%+.4f</td>
		<td class="vectorsent">%s | %s</td>`

		NONE = `
    <tr class="vectorrow">
        <td class="vectorsent" colspan = "4">No topic pair clears the threshold</td>
    </tr>`
	)

	words := func(t int) string {
		if t < len(topwords) {
			return strings.Join(topwords[t], ", ")
		}
		return ""
	}

	var tablecolumn []string
	for _, p := range pairs {
		r := fmt.Sprintf(TABLEELEM, p.A+1, p.B+1, p.Corr, words(p.A), words(p.B))
		tablecolumn = append(tablecolumn, r)
	}

	inner := zebrarows(tablecolumn)
	if len(tablecolumn) == 0 {
		inner = NONE
	}

	tableout := fmt.Sprintf(TABLETOP, vv.CTMCORRMIN, inner)
	return fmt.Sprintf(FULLTABLE, tableout)
}

// corrmatrixtable - the full topic-topic correlation matrix
func corrmatrixtable(corr [][]float64) string {
	const (
		FULLTABLE = `
	<table class="corrmatrix"><tbody>
	%s
	</tbody></table>
	<hr>`

		TABLETOP = `
    <tr class="vectorrow">
        <td class="vectorrank" colspan = "%d">Topic correlation matrix</td>
    </tr>
    %s`

		HEADELEM = `
		<td class="vectorrank">%s</td>`

		CELLELEM = `
		<td class="vectorscore">%+.2f</td>`
	)

	k := len(corr)

	// header row
	head := fmt.Sprintf(HEADELEM, "")
	for t := 0; t < k; t++ {
		head += fmt.Sprintf(HEADELEM, fmt.Sprintf("%d", t+1))
	}

	tablecolumn := []string{head}
	for i := 0; i < k; i++ {
		row := fmt.Sprintf(HEADELEM, fmt.Sprintf("%d", i+1))
		for j := 0; j < k; j++ {
			row += fmt.Sprintf(CELLELEM, corr[i][j])
		}
		tablecolumn = append(tablecolumn, row)
	}

	tableout := fmt.Sprintf(TABLETOP, k+1, zebrarows(tablecolumn))
	return fmt.Sprintf(FULLTABLE, tableout)
}
