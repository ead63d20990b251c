package main

import (
	"bytes"
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const (
	chartBackground = "#004060"
	chartFont       = "#e0e0e0"
	tableHeaderFill = "#002040"
	chartTheme      = "dark"
	chartWidth      = "100%"

	tableTemplateFile = "templates/charts/_table.gohtml"
)

type statementChart struct {
	title        string
	accounts     []string
	currentColor string
	formerColor  string
}

var (
	balanceSheetChart = statementChart{
		title:        "재무상태표",
		accounts:     []string{accountTotalAssets, accountTotalLiabilities, accountTotalEquity},
		currentColor: "rgb(55,83,109)",
		formerColor:  "rgb(26,118,255)",
	}
	incomeStatementChart = statementChart{
		title:        "손익계산서",
		accounts:     []string{accountRevenue, accountOperatingIncome, accountNetIncome},
		currentColor: "rgb(158,202,225)",
		formerColor:  "rgb(94,158,217)",
	}
)

// StatementRow is one key account with its this-term and prior-term amounts.
type StatementRow struct {
	Account string
	Current float64
	Former  float64
}

func (sr StatementRow) Change() float64 {
	return sr.Current - sr.Former
}

// statementRows picks the chart's key accounts, in chart order, using the
// first row reported for each.
func (sc statementChart) statementRows(items []LineItem) []StatementRow {
	index := indexAccounts(items)
	rows := make([]StatementRow, 0, len(sc.accounts))
	for _, account := range sc.accounts {
		current, ok := index.current(account)
		if !ok {
			continue
		}
		rows = append(rows, StatementRow{Account: account, Current: current, Former: index.former(account)})
	}
	return rows
}

func chartInitialization(height string) opts.Initialization {
	return opts.Initialization{
		Width:           chartWidth,
		Height:          height,
		BackgroundColor: chartBackground,
		Theme:           chartTheme,
	}
}

func chartTitle(title string) opts.Title {
	return opts.Title{
		Title:      title,
		Left:       "center",
		TitleStyle: &opts.TextStyle{Color: chartFont, FontSize: 16},
	}
}

func chartLegend() opts.Legend {
	return opts.Legend{
		Show:      opts.Bool(true),
		Orient:    "horizontal",
		Left:      "center",
		Top:       "bottom",
		TextStyle: &opts.TextStyle{Color: chartFont},
	}
}

// joAxisScale returns the y axis top and tick interval, in 조, for the
// largest bar on a statement chart.
func joAxisScale(maxJo float64) (float64, float64) {
	switch {
	case maxJo <= 100:
		return 100, 25
	case maxJo <= 200:
		return 200, 50
	case maxJo <= 500:
		return 500, 100
	case maxJo <= 1000:
		return 1000, 200
	default:
		return 2000, 500
	}
}

func chartStatementBar(deps *Dependencies, sc statementChart, rows []StatementRow) template.HTML {
	if len(rows) == 0 {
		return ""
	}

	accounts := make([]string, 0, len(rows))
	current := make([]opts.BarData, 0, len(rows))
	former := make([]opts.BarData, 0, len(rows))
	maxJo := 0.0
	for _, row := range rows {
		accounts = append(accounts, row.Account)
		current = append(current, joBar(row.Account, row.Current))
		former = append(former, joBar(row.Account, row.Former))
		maxJo = max(maxJo, row.Current/unitJo, row.Former/unitJo)
	}
	axisMax, axisInterval := joAxisScale(maxJo)

	barChart := charts.NewBar()
	barChart.SetGlobalOptions(
		charts.WithInitializationOpts(chartInitialization("450px")),
		charts.WithTitleOpts(chartTitle(sc.title)),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(chartLegend()),
		charts.WithGridOpts(opts.Grid{Left: "50", Right: "50", Top: "80", Bottom: "80"}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			Show:      opts.Bool(true),
			Data:      accounts,
			AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Color: chartFont},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:        "value",
			Min:         0,
			Max:         axisMax,
			MinInterval: axisInterval,
			MaxInterval: axisInterval,
			AxisLabel:   &opts.AxisLabel{Show: opts.Bool(true), Formatter: "{value}조", Color: chartFont},
		}),
	)

	barChart.SetXAxis(accounts).
		AddSeries("당기", current,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: sc.currentColor}),
			charts.WithBarChartOpts(opts.BarChart{BarGap: "5%", BarCategoryGap: "25%"}),
		).
		AddSeries("전기", former,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: sc.formerColor}),
			charts.WithBarChartOpts(opts.BarChart{BarGap: "5%", BarCategoryGap: "25%"}),
		)

	barChart.Renderer = newSnippetRenderer(barChart, deps.nonce, barChart.Validate)

	return renderToHtml(deps, barChart)
}

func joBar(account string, amount float64) opts.BarData {
	return opts.BarData{
		Name:  account,
		Value: amount / unitJo,
		Label: &opts.Label{
			Show:      opts.Bool(true),
			Position:  "top",
			Color:     chartFont,
			Formatter: types.FuncStr(FormatAmount(amount)),
		},
	}
}

type statementTable struct {
	Header     []string
	HeaderFill string
	CellFill   string
	Font       string
	Rows       []statementTableRow
}

type statementTableRow struct {
	Account string
	Current string
	Former  string
	Change  string
}

// chartStatementTable renders the 당기/전기/증감 table that sits under a
// statement bar chart.
func chartStatementTable(deps *Dependencies, rows []StatementRow) template.HTML {
	sublog := deps.logger
	if len(rows) == 0 {
		return ""
	}

	table := statementTable{
		Header:     []string{"", "당기", "전기", "증감"},
		HeaderFill: tableHeaderFill,
		CellFill:   chartBackground,
		Font:       chartFont,
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, statementTableRow{
			Account: row.Account,
			Current: FormatAmount(row.Current),
			Former:  FormatAmount(row.Former),
			Change:  FormatAmount(row.Change()),
		})
	}

	tpl, err := template.ParseFiles(tableTemplateFile)
	if err != nil {
		sublog.Error().Err(err).Str("template", tableTemplateFile).Msg("failed to parse template")
		return ""
	}
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "_table", table); err != nil {
		sublog.Error().Err(err).Str("template", "_table").Msg("failed to execute template")
		return ""
	}
	return template.HTML(buf.String())
}
