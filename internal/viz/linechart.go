//    LitMineGoServer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package viz

import (
	"fmt"

	"github.com/e-gun/LitMineGoServer/internal/vv"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// TrendLines - mean topic prevalence per publication year, one line per topic
func TrendLines(ntopics int, byyear map[int][]float64, years []int) string {
	const (
		TITLESTR  = "Topic prevalence by publication year"
		SERIESNM  = "Topic %d"
		FONTSTYLE = "normal"
		SAVETYPE  = "svg"
		SAVESTR   = "Save to file..."
		LEFTALIGN = "20"
	)

	var axis []string
	for _, y := range years {
		axis = append(axis, fmt.Sprintf("%d", y))
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

	ln := charts.NewLine()
	ln.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: vv.DEFAULTCHRTWIDTH, Height: vv.DEFAULTCHRTHEIGHT}),
		charts.WithTitleOpts(opts.Title{Title: TITLESTR, TitleStyle: &tst, Left: LEFTALIGN}),
		charts.WithToolboxOpts(opts.Toolbox{Show: true, Orient: "vertical", Left: LEFTALIGN, Feature: &opts.ToolBoxFeature{SaveAsImage: &tbs}}),
		charts.WithLegendOpts(opts.Legend{Show: true, Bottom: "0"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
	)

	ln.SetXAxis(axis)
	for topic := 0; topic < ntopics; topic++ {
		var data []opts.LineData
		for _, y := range years {
			v := float64(0)
			if pp, ok := byyear[y]; ok && topic < len(pp) {
				v = pp[topic]
			}
			data = append(data, opts.LineData{Value: v})
		}
		ln.AddSeries(fmt.Sprintf(SERIESNM, topic+1), data,
			charts.WithLineChartOpts(opts.LineChart{Smooth: true}),
		)
	}

	return chartashtml(ln)
}
