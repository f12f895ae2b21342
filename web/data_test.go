package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"horas/report"
	"horas/worklog"
)

func TestBuildBarChart_ScalesToLargestValue(t *testing.T) {
	t.Parallel()

	chart := BuildBarChart("Horas por Dia", "Data", []report.Point{
		{Label: "2024-06-01", Hours: 2},
		{Label: "2024-06-02", Hours: 4},
	})

	require.Len(t, chart.Bars, 2)
	assert.Equal(t, "Horas por Dia", chart.Title)
	assert.Equal(t, round1(plotHeight()), chart.Bars[1].Height)
	assert.Equal(t, round1(plotHeight()/2), chart.Bars[0].Height)
	assert.Equal(t, chart.Baseline, chart.Bars[1].Y+chart.Bars[1].Height)
	assert.Less(t, chart.Bars[0].X, chart.Bars[1].X)
	assert.Len(t, chart.Grid, chartGridLines+1)
	assert.Equal(t, 4.0, chart.Grid[len(chart.Grid)-1].Value)
}

func TestBuildBarChart_EmptyAndZeroSeries(t *testing.T) {
	t.Parallel()

	empty := BuildBarChart("Vazio", "Data", nil)
	assert.Empty(t, empty.Bars)
	assert.NotEmpty(t, empty.Grid)

	zero := BuildBarChart("Zero", "Data", []report.Point{{Label: "a", Hours: 0}})
	require.Len(t, zero.Bars, 1)
	assert.Zero(t, zero.Bars[0].Height)
}

func TestBuildLineChart_Polyline(t *testing.T) {
	t.Parallel()

	chart := BuildLineChart("Horas Acumuladas por Data", "Data", []report.Point{
		{Label: "2024-06-01", Hours: 3},
		{Label: "2024-06-02", Hours: 5},
		{Label: "2024-06-08", Hours: 9},
	})

	require.Len(t, chart.Dots, 3)
	assert.NotEmpty(t, chart.Polyline)
	assert.Equal(t, chart.PlotLeft, chart.Dots[0].X)
	assert.Equal(t, chart.PlotRight, chart.Dots[2].X)
	assert.Equal(t, round1(chart.Baseline-plotHeight()), chart.Dots[2].Y)
	assert.Greater(t, chart.Dots[0].Y, chart.Dots[1].Y)
}

func TestBuildLineChart_SinglePointIsCentered(t *testing.T) {
	t.Parallel()

	chart := BuildLineChart("x", "Data", []report.Point{{Label: "2024-06-01", Hours: 1}})

	require.Len(t, chart.Dots, 1)
	assert.Equal(t, round1(chart.PlotLeft+(chart.PlotRight-chart.PlotLeft)/2), chart.Dots[0].X)
}

func TestBuildRows_KeepsSourceOrder(t *testing.T) {
	t.Parallel()

	table := worklog.Table{Entries: []worklog.Entry{
		{Date: time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC), Activity: "Review", Hours: 4},
		{Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Activity: "Coding", Hours: 1.5},
	}}

	rows := BuildRows(table)

	assert.Equal(t, []RowView{
		{Date: "2024-06-08", Activity: "Review", Hours: "4.00"},
		{Date: "2024-06-01", Activity: "Coding", Hours: "1.50"},
	}, rows)
}
