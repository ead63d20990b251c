package main

import (
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type trendSeries struct {
	name   string
	color  string
	values []float64
}

func chartTrendLine(deps *Dependencies, title, yName string, years []string, series ...trendSeries) template.HTML {
	lineChart := charts.NewLine()
	lineChart.SetGlobalOptions(
		charts.WithInitializationOpts(chartInitialization("400px")),
		charts.WithTitleOpts(chartTitle(title)),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(chartLegend()),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "연도",
			Type:      "category",
			Show:      opts.Bool(true),
			Data:      years,
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Color: chartFont},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      yName,
			Type:      "value",
			Scale:     opts.Bool(true),
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Color: chartFont},
		}),
	)

	lineChart.SetXAxis(years)
	for _, s := range series {
		data := make([]opts.LineData, 0, len(s.values))
		for i, v := range s.values {
			data = append(data, opts.LineData{Name: years[i], Value: v, SymbolSize: 8})
		}
		lineChart.AddSeries(s.name, data,
			charts.WithLineStyleOpts(opts.LineStyle{Color: s.color, Width: 3}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.color}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true), Symbol: "circle", SymbolSize: 8}),
		)
	}

	lineChart.Renderer = newSnippetRenderer(lineChart, deps.nonce, lineChart.Validate)

	return renderToHtml(deps, lineChart)
}

// chartRatioTrend plots ROE and ROA over the summary years. It uses the
// summary's figures, so a year without positive equity or assets shows 0.
func chartRatioTrend(deps *Dependencies, summary Summary) template.HTML {
	if len(summary.Years) == 0 {
		return ""
	}

	roe := make([]float64, 0, len(summary.Years))
	roa := make([]float64, 0, len(summary.Years))
	for _, year := range summary.Years {
		m := summary.KeyMetrics[year]
		roe = append(roe, roundTo(m.ROE, 2))
		roa = append(roa, roundTo(m.ROA, 2))
	}

	return chartTrendLine(deps, "재무비율 추이", "비율 (%)", summary.Years,
		trendSeries{name: "ROE (%)", color: balanceSheetChart.currentColor, values: roe},
		trendSeries{name: "ROA (%)", color: balanceSheetChart.formerColor, values: roa},
	)
}

// chartIndicatorTrend plots revenue and net income, in 억원, for every year
// that has an income statement.
func chartIndicatorTrend(deps *Dependencies, groups YearGroups) template.HTML {
	years := []string{}
	revenue := []float64{}
	netIncome := []float64{}
	for _, year := range sortedYears(groups) {
		group := groups[year]
		if len(group.IncomeStatement) == 0 {
			continue
		}
		index := indexAccounts(group.IncomeStatement)
		rev, _ := index.current(accountRevenue)
		ni, _ := index.current(accountNetIncome)
		years = append(years, year)
		revenue = append(revenue, roundTo(rev/unitEok, 1))
		netIncome = append(netIncome, roundTo(ni/unitEok, 1))
	}
	if len(years) == 0 {
		return ""
	}

	return chartTrendLine(deps, "주요 지표 추이", "금액 (억원)", years,
		trendSeries{name: "매출액", color: incomeStatementChart.currentColor, values: revenue},
		trendSeries{name: "당기순이익", color: incomeStatementChart.formerColor, values: netIncome},
	)
}
