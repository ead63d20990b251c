package main

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	radarLineColor = "rgb(32,201,151)"
	debtColor      = "#ff7f0e"
	equityColor    = "#2ca02c"
)

// radarBounds is the shared indicator range: 20% headroom over the largest
// ratio, and room below zero when a ratio is negative.
func radarBounds(records []RatioRecord) (float32, float32) {
	hi, lo := 0.0, 0.0
	for _, rr := range records {
		hi = max(hi, rr.Value)
		lo = min(lo, rr.Value)
	}
	if hi <= 0 {
		hi = 1
	}
	return float32(hi * 1.2), float32(lo * 1.2)
}

// radarTooltip lists every ratio with its formula and the amounts behind it.
func radarTooltip(records []RatioRecord) string {
	lines := make([]string, 0, len(records))
	for _, rr := range records {
		lines = append(lines, fmt.Sprintf("<b>%s</b> %s<br/>%s<br/>%s / %s",
			rr.Label, rr.Display(), rr.Formula(), FormatAmount(rr.Numerator), FormatAmount(rr.Denominator)))
	}
	return strings.Join(lines, "<br/><br/>")
}

func chartProfitabilityRadar(deps *Dependencies, records []RatioRecord) template.HTML {
	if len(records) == 0 {
		return ""
	}

	hi, lo := radarBounds(records)
	indicators := make([]*opts.Indicator, 0, len(records))
	values := make([]float64, 0, len(records))
	for _, rr := range records {
		indicators = append(indicators, &opts.Indicator{Name: rr.Label, Max: hi, Min: lo})
		values = append(values, rr.Value)
	}

	radarChart := charts.NewRadar()
	radarChart.SetGlobalOptions(
		charts.WithInitializationOpts(chartInitialization("550px")),
		charts.WithTitleOpts(chartTitle("수익성 분석")),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: types.FuncStr(radarTooltip(records)),
		}),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator: indicators,
			Shape:     "polygon",
			Center:    []string{"50%", "55%"},
			SplitArea: &opts.SplitArea{Show: opts.Bool(false)},
			SplitLine: &opts.SplitLine{
				Show:      opts.Bool(true),
				LineStyle: &opts.LineStyle{Color: "rgba(224,224,224,0.2)"},
			},
			AxisName: &opts.AxisName{Color: chartFont, FontSize: 12},
		}),
	)

	radarChart.AddSeries("수익성 비율", []opts.RadarData{{Name: "수익성 비율", Value: values}},
		charts.WithLineStyleOpts(opts.LineStyle{Color: radarLineColor, Width: 2}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: radarLineColor}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Color: radarLineColor, Opacity: opts.Float(0.3)}),
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Color:     chartFont,
			Formatter: "{c}%",
		}),
	)

	radarChart.Renderer = newSnippetRenderer(radarChart, deps.nonce, radarChart.Validate)

	return renderToHtml(deps, radarChart)
}

func chartDebtRatioDonut(deps *Dependencies, bs []LineItem) template.HTML {
	index := indexAccounts(bs)
	debt, _ := index.current(accountTotalLiabilities)
	equity, _ := index.current(accountTotalEquity)
	if debt == 0 && equity == 0 {
		return ""
	}

	pieChart := charts.NewPie()
	pieChart.SetGlobalOptions(
		charts.WithInitializationOpts(chartInitialization("500px")),
		charts.WithTitleOpts(chartTitle("부채비율 분석")),
		charts.WithLegendOpts(chartLegend()),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
	)

	pieChart.AddSeries("부채비율", []opts.PieData{
		debtSlice("부채", debt, debtColor),
		debtSlice("자본", equity, equityColor),
	},
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"60%", "80%"}, Center: []string{"50%", "50%"}}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Color: chartFont, Formatter: "{b}: {d}%"}),
	)

	pieChart.Renderer = newSnippetRenderer(pieChart, deps.nonce, pieChart.Validate)

	return renderToHtml(deps, pieChart)
}

func debtSlice(name string, amount float64, color string) opts.PieData {
	return opts.PieData{
		Name:      name,
		Value:     amount,
		ItemStyle: &opts.ItemStyle{Color: color},
		Tooltip: &opts.Tooltip{
			Formatter: types.FuncStr(fmt.Sprintf("<b>%s</b><br/>금액: %s<br/>비율: {d}%%", name, FormatAmount(amount))),
		},
	}
}
