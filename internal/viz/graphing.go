//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package viz

import (
	"bytes"
	"fmt"
	"math"

	"github.com/e-gun/LitMineGoServer/internal/lnch"
	"github.com/e-gun/LitMineGoServer/internal/netw"
	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/wego/pkg/search"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var Msg = lnch.NewMessageMakerWithDefaults()

const (
	CHARTFONT = "sans-serif"
)

//
// GRAPHING
//

// NeighborGraph - generate the html and js for a nearest neighbors force graph
func NeighborGraph(se str.ServerSession, coreword string, settings string, nn map[string]search.Neighbors) string {
	// go-echarts is "too clever" and opaque about how to not do things its way
	// we override their page.Render() to yield html+js (see the ModX and CustomX code in renderer.go)
	// this gets injected to the "litminegraphing" div on frontpage.html

	// see also: https://echarts.apache.org/en/option.html#series-graph

	g := neighborchart(se, coreword, settings, nn)
	return chartashtml(g)
}

// KeywordGraph - generate the html and js for a keyword co-occurrence force graph
func KeywordGraph(se str.ServerSession, corpus string, settings string, cg *netw.CoGraph) string {
	g := keywordchart(se, corpus, settings, cg)
	return chartashtml(g)
}

// chartashtml - render any single chart into an injectable html+js blob
func chartashtml(g components.Charter) string {
	g.Validate()

	// we are building a page with only one chart and doing it by hand
	p := components.NewPage()
	p.Renderer = NewCustomPageRender(p, p.Validate)

	assets := g.GetAssets()
	for _, v := range assets.JSAssets.Values {
		p.JSAssets.Add(v)
	}

	for _, v := range assets.CSSAssets.Values {
		p.CSSAssets.Add(v)
	}

	p.Charts = append(p.Charts, g)
	p.Validate()

	var buf bytes.Buffer
	err := p.Render(&buf)
	Msg.EC(err)

	return buf.String()
}

func neighborchart(se str.ServerSession, coreword string, settings string, nn map[string]search.Neighbors) *charts.Graph {
	const (
		SYMSIZE       = 25
		PERIPHSYMSZ   = 15
		SIZEDISTORT   = 2.25
		PRECISON      = 4
		EDGEFNTSZ     = 8
		SERIESNAME    = ""
		LABELPOSITON  = "right"
		DOTHUE        = 236
		DOTSL         = ", 33%, 40%, 1)"
		LINECURVINESS = 0       // from 0 to 1, but non-zero will double-up the lines...
		LINETYPE      = "solid" // "solid", "dashed", "dotted"
		TITLESTR      = "Nearest neighbors of »%s«"
	)

	graph := newforcegraph(fmt.Sprintf(TITLESTR, coreword), settings)

	var gnn []opts.GraphNode
	var gll []opts.GraphLink
	valuelabel := opts.EdgeLabel{Show: true, FontSize: EDGEFNTSZ, Formatter: "{c}"}

	round := func(val float64) float32 {
		ratio := math.Pow(10, float64(PRECISON))
		return float32(math.Round(val*ratio) / ratio)
	}

	// find the top similarity: this will let you adjust bubble size so that most similar are biggest
	var maxsim float64
	for _, w := range nn[coreword] {
		if w.Similarity > maxsim {
			maxsim = w.Similarity
		}
	}

	vardot := func(i int) *opts.ItemStyle {
		dv := DOTHUE
		vd := "hsla(" + fmt.Sprintf("%d", dv) + DOTSL
		return &opts.ItemStyle{Color: vd}
	}

	used := make(map[string]bool)

	// the center point
	gnn = append(gnn, opts.GraphNode{Name: coreword, Value: 0, SymbolSize: fmt.Sprintf("%.4f", SYMSIZE*SIZEDISTORT), ItemStyle: vardot(-1)})
	used[coreword] = true

	// the words directly related to this word
	for i, w := range nn[coreword] {
		sizemod := fmt.Sprintf("%.4f", ((w.Similarity/maxsim)*SIZEDISTORT)*SYMSIZE)
		gnn = append(gnn, opts.GraphNode{Name: w.Word, Value: round(w.Similarity), SymbolSize: sizemod, ItemStyle: vardot(i)})
		gll = append(gll, opts.GraphLink{Source: coreword, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
		used[w.Word] = true
	}

	// the relationships between the other words
	coreterms := make(map[string]bool)
	for t := range nn {
		coreterms[t] = true
	}

	// populate the links with just the core collection of terms
	simpleweb := func() {
		for t := range coreterms {
			if t == coreword {
				continue
			}
			for _, w := range nn[t] {
				if _, ok := coreterms[w.Word]; ok {
					gll = append(gll, opts.GraphLink{Source: t, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
				}
			}
		}
	}

	// populate the graph with both the core terms and the neighbors of those terms as well
	expandedweb := func() {
		i := -1
		for t := range coreterms {
			i += 1
			if t == coreword {
				continue
			}
			for _, w := range nn[t] {
				if _, ok := coreterms[w.Word]; ok {
					gll = append(gll, opts.GraphLink{Source: t, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
				}
				if _, ok := used[w.Word]; !ok {
					gnn = append(gnn, opts.GraphNode{Name: w.Word, Value: round(w.Similarity), SymbolSize: PERIPHSYMSZ, ItemStyle: vardot(i)})
					used[w.Word] = true
				}
				gll = append(gll, opts.GraphLink{Source: t, Target: w.Word, Value: round(w.Similarity), Label: &valuelabel})
			}
		}
	}

	if se.VecGraphExt {
		expandedweb()
	} else {
		simpleweb()
	}

	addforceseries(graph, SERIESNAME, gnn, gll, valuelabel, LABELPOSITON, LINECURVINESS, LINETYPE)
	return graph
}

func keywordchart(se str.ServerSession, corpus string, settings string, cg *netw.CoGraph) *charts.Graph {
	const (
		SYMSIZE       = 10
		SIZEDISTORT   = 3.5
		EDGEFNTSZ     = 8
		SERIESNAME    = ""
		LABELPOSITON  = "right"
		DOTHUE        = 16
		DOTSL         = ", 45%, 40%, 1)"
		LINECURVINESS = 0
		LINETYPE      = "solid"
		TITLESTR      = "Keyword co-occurrence network for »%s«"
	)

	graph := newforcegraph(fmt.Sprintf(TITLESTR, corpus), settings)

	strength := cg.Strength()

	var maxstr float64
	for _, s := range strength {
		if s > maxstr {
			maxstr = s
		}
	}
	if maxstr == 0 {
		maxstr = 1
	}

	dot := &opts.ItemStyle{Color: "hsla(" + fmt.Sprintf("%d", DOTHUE) + DOTSL}

	var gnn []opts.GraphNode
	for _, t := range cg.Terms() {
		sizemod := fmt.Sprintf("%.4f", SYMSIZE+(strength[t]/maxstr)*SIZEDISTORT*SYMSIZE)
		gnn = append(gnn, opts.GraphNode{Name: t, Value: float32(strength[t]), SymbolSize: sizemod, ItemStyle: dot})
	}

	valuelabel := opts.EdgeLabel{Show: true, FontSize: EDGEFNTSZ, Formatter: "{c}"}

	var gll []opts.GraphLink
	for _, e := range cg.EdgeList() {
		gll = append(gll, opts.GraphLink{Source: e.A, Target: e.B, Value: float32(e.Weight), Label: &valuelabel})
	}

	addforceseries(graph, SERIESNAME, gnn, gll, valuelabel, LABELPOSITON, LINECURVINESS, LINETYPE)
	return graph
}

func addforceseries(graph *charts.Graph, name string, gnn []opts.GraphNode, gll []opts.GraphLink, el opts.EdgeLabel, pos string, curve float32, lt string) {
	const (
		REPULSION  = 6000
		GRAVITY    = .15
		EDGELEN    = 40
		LAYOUTTYPE = "force"
	)

	graph.AddSeries(name, gnn, gll,
		charts.WithLabelOpts(
			opts.Label{
				Show:       true,
				Position:   pos,
				FontFamily: CHARTFONT,
			},
		),
		charts.WithLineStyleOpts(
			opts.LineStyle{
				Curveness: curve,
				Type:      lt,
			}),
		charts.WithGraphChartOpts(
			// https://github.com/go-echarts/go-echarts/opts/charts.go
			// cf. https://echarts.apache.org/en/option.html#series-graph
			opts.GraphChart{
				Layout: LAYOUTTYPE,
				Force: &opts.GraphForce{
					Repulsion:  REPULSION,
					Gravity:    GRAVITY,
					EdgeLength: EDGELEN,
				},
				Roam:               true,
				FocusNodeAdjacency: true,
			},
		),
	)
}

// newforcegraph - return a pre-formatted charts.Graph
func newforcegraph(title string, settings string) *charts.Graph {
	const (
		FONTSTYLE = "normal"
		LEFTALIGN = "20"
		BOTTALIGN = "3%"
		SAVETYPE  = "svg"
		SAVESTR   = "Save to file..."
		TEXTCOLOR = "" // "black"
	)

	w := lnch.Config.VectorChtWd
	h := lnch.Config.VectorChtHt

	tst := opts.TextStyle{
		Color:      TEXTCOLOR,
		FontStyle:  FONTSTYLE,
		FontSize:   16,
		FontFamily: CHARTFONT,
		Padding:    "15",
		Normal:     nil,
	}

	sst := opts.TextStyle{
		Color:      TEXTCOLOR,
		FontStyle:  FONTSTYLE,
		FontSize:   10,
		FontFamily: CHARTFONT,
	}

	tit := opts.Title{
		Title:         title,
		TitleStyle:    &tst,
		Subtitle:      settings, // can not see this if you put the title on the bottom of the image
		SubtitleStyle: &sst,
		Top:           "",
		Bottom:        BOTTALIGN,
		Left:          LEFTALIGN,
		Right:         "",
	}

	tbs := opts.ToolBoxFeatureSaveAsImage{
		Show:  true,
		Type:  SAVETYPE, // svg, jpeg, png; svg requires specific chart initialization
		Name:  title,
		Title: SAVESTR, // get chinese if ""
	}

	tbf := opts.ToolBoxFeature{
		SaveAsImage: &tbs,
	}

	tbo := opts.Toolbox{
		Show:    true,
		Orient:  "vertical",
		Left:    LEFTALIGN,
		Top:     "",
		Right:   "",
		Bottom:  "",
		Feature: &tbf,
	}

	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: w, Height: h}),
		charts.WithTitleOpts(tit),
		charts.WithToolboxOpts(tbo),
	)

	return graph
}
