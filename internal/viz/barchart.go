//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package viz

import (
	"fmt"

	"github.com/e-gun/LitMineGoServer/internal/tm"
	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// KGridBars - coherence, exclusivity and the combined score for every candidate topic count
func KGridBars(scores []tm.KScore, best int) string {
	const (
		TITLESTR  = "Picking the number of topics (best: %d)"
		SUBTITLE  = "scores are min-max scaled within the grid"
		COHSERIES = "coherence"
		EXCSERIES = "exclusivity"
		SCRSERIES = "combined score"
		FONTSTYLE = "normal"
		SAVETYPE  = "svg"
		SAVESTR   = "Save to file..."
		LEFTALIGN = "20"
	)

	// raw UMass numbers are negative; re-scale the columns so the bars can share an axis
	cc := make([]float64, len(scores))
	ee := make([]float64, len(scores))
	for i, s := range scores {
		cc[i] = s.Coherence
		ee[i] = s.Exclusivity
	}
	cc = tm.MinMaxScale(cc)
	ee = tm.MinMaxScale(ee)

	var axis []string
	var coh []opts.BarData
	var exc []opts.BarData
	var scr []opts.BarData
	for i, s := range scores {
		axis = append(axis, fmt.Sprintf("%d", s.K))
		coh = append(coh, opts.BarData{Value: cc[i]})
		exc = append(exc, opts.BarData{Value: ee[i]})
		scr = append(scr, opts.BarData{Value: s.Score})
	}

	tst := opts.TextStyle{
		FontStyle:  FONTSTYLE,
		FontSize:   16,
		FontFamily: CHARTFONT,
		Padding:    "15",
	}

	sst := opts.TextStyle{
		FontStyle:  FONTSTYLE,
		FontSize:   10,
		FontFamily: CHARTFONT,
	}

	tbs := opts.ToolBoxFeatureSaveAsImage{
		Show:  true,
		Type:  SAVETYPE,
		Name:  fmt.Sprintf(TITLESTR, best),
		Title: SAVESTR,
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: vv.DEFAULTCHRTWIDTH, Height: vv.DEFAULTCHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{
			Title:         fmt.Sprintf(TITLESTR, best),
			TitleStyle:    &tst,
			Subtitle:      SUBTITLE,
			SubtitleStyle: &sst,
			Left:          LEFTALIGN,
		}),
		charts.WithToolboxOpts(opts.Toolbox{Show: true, Orient: "vertical", Left: LEFTALIGN, Feature: &opts.ToolBoxFeature{SaveAsImage: &tbs}}),
		charts.WithLegendOpts(opts.Legend{Show: true, Bottom: "0"}),
	)

	bar.SetXAxis(axis).
		AddSeries(COHSERIES, coh).
		AddSeries(EXCSERIES, exc).
		AddSeries(SCRSERIES, scr)

	return chartashtml(bar)
}
