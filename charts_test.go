package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chartDeps(t *testing.T) *Dependencies {
	deps := testDeps(t, &fakeSource{})
	deps.nonce = "test-nonce"
	return deps
}

func TestBuildSingleYearCharts(t *testing.T) {
	cs := buildSingleYearCharts(chartDeps(t), sampleLineItems())

	require.Len(t, cs, 6)
	bar := string(cs[ChartBalanceSheet])
	assert.Contains(t, bar, `nonce="test-nonce"`)
	assert.Contains(t, bar, `class="chart-container"`)
	assert.Contains(t, bar, "재무상태표")
	assert.Contains(t, bar, "448.4조")
	assert.Contains(t, bar, chartBackground)
	assert.NotContains(t, bar, "<html")

	table := string(cs[ChartIncomeStatementTable])
	assert.Contains(t, table, "증감")
	assert.Contains(t, table, "302.2조")

	assert.Contains(t, string(cs[ChartProfitabilityRadar]), "수익성 분석")
	assert.Contains(t, string(cs[ChartDebtRatioDonut]), "부채비율 분석")
}

func TestBuildSingleYearChartsPartial(t *testing.T) {
	bsOnly := []LineItem{
		item("2022", statementCFS, statementBS, accountTotalAssets, "100", "90"),
	}
	cs := buildSingleYearCharts(chartDeps(t), bsOnly)
	assert.Contains(t, cs, ChartBalanceSheet)
	assert.Contains(t, cs, ChartBalanceSheetTable)
	assert.NotContains(t, cs, ChartIncomeStatement)
	assert.NotContains(t, cs, ChartProfitabilityRadar)
	assert.NotContains(t, cs, ChartDebtRatioDonut)

	assert.Empty(t, buildSingleYearCharts(chartDeps(t), nil))
}

func TestRatioChartsSkipEmptyInput(t *testing.T) {
	deps := chartDeps(t)

	// no positive denominators means no ratios to draw
	assert.Empty(t, chartProfitabilityRadar(deps, nil))

	bs := []LineItem{
		item("2022", statementBS, statementBS, accountTotalLiabilities, "0", "0"),
		item("2022", statementBS, statementBS, accountTotalEquity, "-", "0"),
	}
	assert.Empty(t, chartDebtRatioDonut(deps, bs))

	bs[0].ThisTermAmount = "10"
	assert.NotEmpty(t, chartDebtRatioDonut(deps, bs))
}

func TestRadarBounds(t *testing.T) {
	hi, lo := radarBounds([]RatioRecord{{Value: 10}, {Value: 5}})
	assert.InDelta(t, 12, hi, 1e-4)
	assert.Equal(t, float32(0), lo)

	hi, lo = radarBounds([]RatioRecord{{Value: -10}, {Value: -5}})
	assert.InDelta(t, 1.2, hi, 1e-4)
	assert.InDelta(t, -12, lo, 1e-4)
}

func TestJoAxisScale(t *testing.T) {
	tests := []struct {
		maxJo          float64
		top, interval float64
	}{
		{0, 100, 25},
		{100, 100, 25},
		{150, 200, 50},
		{448.4, 500, 100},
		{999, 1000, 200},
		{1500, 2000, 500},
	}
	for _, tt := range tests {
		top, interval := joAxisScale(tt.maxJo)
		assert.Equal(t, tt.top, top, "top for %v", tt.maxJo)
		assert.Equal(t, tt.interval, interval, "interval for %v", tt.maxJo)
	}
}

func TestStatementRows(t *testing.T) {
	items := []LineItem{
		item("2022", statementCFS, statementIS, accountNetIncome, "30", "40"),
		item("2022", statementCFS, statementIS, accountRevenue, "100", "80"),
		item("2022", statementCFS, statementIS, accountRevenue, "1", "1"),
	}

	rows := incomeStatementChart.statementRows(items)
	require.Len(t, rows, 2)
	assert.Equal(t, StatementRow{Account: accountRevenue, Current: 100, Former: 80}, rows[0])
	assert.Equal(t, 20.0, rows[0].Change())
	assert.Equal(t, -10.0, rows[1].Change())
}

func TestBuildPeriodCharts(t *testing.T) {
	items := append(statementYear("2021", "1000", "400", "600", "500", "50", "30"),
		statementYear("2022", "2000", "800", "1200", "1000", "100", "120")...)
	groups := Partition(items)

	cs := buildPeriodCharts(chartDeps(t), groups, BuildSummary(groups, "2021", "2022"))
	require.Len(t, cs, 2)
	assert.Contains(t, string(cs[ChartRatioTrend]), "재무비율 추이")
	assert.Contains(t, string(cs[ChartIndicatorTrend]), "금액 (억원)")

	assert.Empty(t, buildPeriodCharts(chartDeps(t), YearGroups{}, BuildSummary(YearGroups{}, "2021", "2022")))
}

func TestChartIDsAreUnique(t *testing.T) {
	deps := chartDeps(t)
	rows := balanceSheetChart.statementRows(SplitBySubject(sampleLineItems()).BalanceSheet)

	a := string(chartStatementBar(deps, balanceSheetChart, rows))
	b := string(chartStatementBar(deps, balanceSheetChart, rows))
	idOf := func(html string) string {
		start := strings.Index(html, `id="`) + len(`id="`)
		return html[start : start+strings.Index(html[start:], `"`)]
	}
	assert.NotEqual(t, idOf(a), idOf(b))
}
