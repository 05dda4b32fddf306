//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package viz

import (
	"fmt"

	"github.com/danaugrs/go-tsne/tsne"
	"github.com/e-gun/LitMineGoServer/internal/str"
	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/mat"
)

//
// LDA graphing prep
//

// see https://pkg.go.dev/gonum.org/v1/gonum/mat@v0.12.0#pkg-index

// TopicScatter - flatten the doc/topic matrix, embed it via t-SNE and scatter the docs colored by dominant topic
func TopicScatter(ntopics int, docsOverTopics mat.Matrix, bags []str.BagWithLocus) string {
	// m := mat.NewDense()
	// func NewDense(r int, c int, data []float64)  *Dense

	dr, dc := docsOverTopics.Dims()
	doclabels := make([]int, dc)
	for doc := 0; doc < dc; doc++ {
		max := float64(0)
		winner := 0
		for topic := 0; topic < dr; topic++ {
			// any given corpus[doc] will look like
			// Topic #0=0.006009, Topic #1=0.006915, Topic #2=0.000688, Topic #3=0.449514, Topic #4=0.536875
			if docsOverTopics.At(topic, doc) > max {
				winner = topic
				max = docsOverTopics.At(topic, doc)
			}
		}
		doclabels[doc] = winner
	}

	var dd []float64
	for doc := 0; doc < dc; doc++ {
		for topic := 0; topic < dr; topic++ {
			dd = append(dd, docsOverTopics.At(topic, doc))
		}
	}

	// flop r & c here; otherwise the embedding comes back topics x 2 instead of docs x 2
	wv := mat.NewDense(dc, dr, dd)

	t := tsne.NewTSNE(2, vv.TSNEPERPLEXITY, vv.TSNELEARNRATE, vv.TSNEMAXITER, false)
	t.EmbedData(wv, nil)

	return topicscatterchart(ntopics, t.Y, doclabels, bags)
}

// topicscatterchart - one scatter series per topic; every document is a dot at its t-SNE coordinates
func topicscatterchart(ntopics int, embedded mat.Matrix, doclabels []int, bags []str.BagWithLocus) string {
	const (
		TITLESTR  = "Topics among the documents (t-SNE projection)"
		SERIESNM  = "Topic %d"
		SYMBSZ    = 12
		FONTSTYLE = "normal"
		SAVETYPE  = "svg"
		SAVESTR   = "Save to file..."
		LEFTALIGN = "20"
	)

	nd, _ := embedded.Dims()

	perseries := make(map[int][]opts.ScatterData)
	for doc := 0; doc < nd; doc++ {
		nm := ""
		if doc < len(bags) {
			nm = bags[doc].Loc
		}
		sd := opts.ScatterData{
			Name:       nm,
			Value:      []interface{}{embedded.At(doc, 0), embedded.At(doc, 1)},
			SymbolSize: SYMBSZ,
		}
		tp := doclabels[doc]
		perseries[tp] = append(perseries[tp], sd)
	}

	tst := opts.TextStyle{
		FontStyle:  FONTSTYLE,
		FontSize:   16,
		FontFamily: CHARTFONT,
		Padding:    "15",
	}

	tbs := opts.ToolBoxFeatureSaveAsImage{
		Show:  true,
		Type:  SAVETYPE,
		Name:  TITLESTR,
		Title: SAVESTR,
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: vv.DEFAULTCHRTWIDTH, Height: vv.DEFAULTCHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR, TitleStyle: &tst, Left: LEFTALIGN}),
		charts.WithToolboxOpts(opts.Toolbox{Show: true, Orient: "vertical", Left: LEFTALIGN, Feature: &opts.ToolBoxFeature{SaveAsImage: &tbs}}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Formatter: "{a}: {b}"}),
		charts.WithLegendOpts(opts.Legend{Show: true, Bottom: "0"}),
	)

	for topic := 0; topic < ntopics; topic++ {
		sc.AddSeries(fmt.Sprintf(SERIESNM, topic+1), perseries[topic])
	}

	return chartashtml(sc)
}
