package main

import "html/template"

const (
	ChartBalanceSheet         = "balance_sheet"
	ChartBalanceSheetTable    = "balance_sheet_table"
	ChartIncomeStatement      = "income_statement"
	ChartIncomeStatementTable = "income_statement_table"
	ChartProfitabilityRadar   = "profitability_radar"
	ChartDebtRatioDonut       = "debt_ratio_donut"
	ChartRatioTrend           = "ratio_trend"
	ChartIndicatorTrend       = "indicator_trend"
)

// ChartSet maps chart keys to ready-to-embed HTML. Charts with nothing to
// show are simply absent.
type ChartSet map[string]template.HTML

func (cs ChartSet) add(key string, html template.HTML) {
	if html != "" {
		cs[key] = html
	}
}

// buildSingleYearCharts draws the statement bars and tables plus the ratio
// charts for one year of rows, split on sj_div.
func buildSingleYearCharts(deps *Dependencies, items []LineItem) ChartSet {
	cs := ChartSet{}
	groups := SplitBySubject(items)

	if len(groups.BalanceSheet) > 0 {
		rows := balanceSheetChart.statementRows(groups.BalanceSheet)
		cs.add(ChartBalanceSheet, chartStatementBar(deps, balanceSheetChart, rows))
		cs.add(ChartBalanceSheetTable, chartStatementTable(deps, rows))
	}
	if len(groups.IncomeStatement) > 0 {
		rows := incomeStatementChart.statementRows(groups.IncomeStatement)
		cs.add(ChartIncomeStatement, chartStatementBar(deps, incomeStatementChart, rows))
		cs.add(ChartIncomeStatementTable, chartStatementTable(deps, rows))
	}
	if len(groups.BalanceSheet) > 0 && len(groups.IncomeStatement) > 0 {
		cs.add(ChartProfitabilityRadar, chartProfitabilityRadar(deps, DeriveRatios(groups.BalanceSheet, groups.IncomeStatement)))
		cs.add(ChartDebtRatioDonut, chartDebtRatioDonut(deps, groups.BalanceSheet))
	}

	deps.logger.Debug().Int("balance_sheet", len(groups.BalanceSheet)).Int("income_statement", len(groups.IncomeStatement)).Int("charts", len(cs)).Msg("built single year charts")
	return cs
}

// buildPeriodCharts draws the multi-year trend lines.
func buildPeriodCharts(deps *Dependencies, groups YearGroups, summary Summary) ChartSet {
	cs := ChartSet{}
	cs.add(ChartRatioTrend, chartRatioTrend(deps, summary))
	cs.add(ChartIndicatorTrend, chartIndicatorTrend(deps, groups))

	deps.logger.Debug().Int("years", len(groups)).Int("charts", len(cs)).Msg("built period charts")
	return cs
}
