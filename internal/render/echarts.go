package render

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// HTML writes ch as a standalone go-echarts page. An empty assetsHost keeps
// the library's default CDN.
func HTML(w io.Writer, ch ScoreChart, assetsHost string) error {
	ini := opts.Initialization{PageTitle: ch.Title, Width: "100%", Height: "640px"}
	if assetsHost != "" {
		ini.AssetsHost = assetsHost
	}

	data := make([]opts.BarData, len(ch.Values))
	for i, v := range ch.Values {
		color := colorBase
		if ch.Marked[i] {
			color = ch.Highlight
		}
		data[i] = opts.BarData{Name: ch.Labels[i], Value: v, ItemStyle: &opts.ItemStyle{Color: color}}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(ini),
		charts.WithTitleOpts(opts.Title{Title: ch.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Campaign ID", NameLocation: "middle", NameGap: 40, AxisLabel: &opts.AxisLabel{Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: ch.YLabel}),
	)
	bar.SetXAxis(ch.Labels).AddSeries(ch.YLabel, data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)

	page := components.NewPage()
	if assetsHost != "" {
		page.SetAssetsHost(assetsHost)
	}
	page.AddCharts(bar)
	return page.Render(w)
}
