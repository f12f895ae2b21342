package web

import (
	"fmt"
	"math"
	"strings"

	"horas/report"
	"horas/worklog"
)

const (
	chartWidth      = 640.0
	chartHeight     = 260.0
	chartPadLeft    = 48.0
	chartPadRight   = 16.0
	chartPadTop     = 16.0
	chartPadBottom  = 56.0
	chartBarSpacing = 0.2
	chartGridLines  = 4
)

type BarView struct {
	Label  string
	Hours  float64
	X      float64
	Y      float64
	Width  float64
	Height float64
	LabelX float64
}

type GridLine struct {
	Y     float64
	Value float64
}

type ChartView struct {
	Title      string
	XAxisTitle string
	YAxisTitle string
	Width      float64
	Height     float64
	Baseline   float64
	PlotLeft   float64
	PlotRight  float64
	Grid       []GridLine
	Bars       []BarView
	// Polyline is the SVG points attribute for line charts.
	Polyline string
	Dots     []BarView
}

type RowView struct {
	Date     string
	Activity string
	Hours    string
}

// BuildBarChart lays out one bar per series point, scaled to the largest value.
func BuildBarChart(title, xAxisTitle string, series []report.Point) ChartView {
	chart := newChart(title, xAxisTitle, report.MaxHours(series))
	if len(series) == 0 {
		return chart
	}

	plotWidth := chart.PlotRight - chart.PlotLeft
	slot := plotWidth / float64(len(series))
	barWidth := slot * (1 - chartBarSpacing)
	maxHours := scaleMax(report.MaxHours(series))

	chart.Bars = make([]BarView, 0, len(series))
	for i, point := range series {
		height := point.Hours / maxHours * plotHeight()
		x := chart.PlotLeft + float64(i)*slot + (slot-barWidth)/2
		chart.Bars = append(chart.Bars, BarView{
			Label:  point.Label,
			Hours:  point.Hours,
			X:      round1(x),
			Y:      round1(chart.Baseline - height),
			Width:  round1(barWidth),
			Height: round1(height),
			LabelX: round1(x + barWidth/2),
		})
	}
	return chart
}

// BuildLineChart lays out a polyline through the series points.
func BuildLineChart(title, xAxisTitle string, series []report.Point) ChartView {
	chart := newChart(title, xAxisTitle, report.MaxHours(series))
	if len(series) == 0 {
		return chart
	}

	plotWidth := chart.PlotRight - chart.PlotLeft
	maxHours := scaleMax(report.MaxHours(series))
	step := 0.0
	if len(series) > 1 {
		step = plotWidth / float64(len(series)-1)
	}

	points := make([]string, 0, len(series))
	chart.Dots = make([]BarView, 0, len(series))
	for i, point := range series {
		x := chart.PlotLeft + float64(i)*step
		if len(series) == 1 {
			x = chart.PlotLeft + plotWidth/2
		}
		y := chart.Baseline - point.Hours/maxHours*plotHeight()
		points = append(points, fmt.Sprintf("%.1f,%.1f", x, y))
		chart.Dots = append(chart.Dots, BarView{
			Label:  point.Label,
			Hours:  point.Hours,
			X:      round1(x),
			Y:      round1(y),
			LabelX: round1(x),
		})
	}
	chart.Polyline = strings.Join(points, " ")
	return chart
}

// BuildRows formats table entries for the raw data view, in source order.
func BuildRows(table worklog.Table) []RowView {
	rows := make([]RowView, 0, table.Len())
	for _, entry := range table.Entries {
		rows = append(rows, RowView{
			Date:     entry.Date.Format("2006-01-02"),
			Activity: entry.Activity,
			Hours:    fmt.Sprintf("%.2f", entry.Hours),
		})
	}
	return rows
}

func newChart(title, xAxisTitle string, maxHours float64) ChartView {
	chart := ChartView{
		Title:      title,
		XAxisTitle: xAxisTitle,
		YAxisTitle: "Horas",
		Width:      chartWidth,
		Height:     chartHeight,
		Baseline:   chartPadTop + plotHeight(),
		PlotLeft:   chartPadLeft,
		PlotRight:  chartWidth - chartPadRight,
	}

	top := scaleMax(maxHours)
	chart.Grid = make([]GridLine, 0, chartGridLines+1)
	for i := 0; i <= chartGridLines; i++ {
		value := top * float64(i) / chartGridLines
		chart.Grid = append(chart.Grid, GridLine{
			Y:     round1(chart.Baseline - value/top*plotHeight()),
			Value: value,
		})
	}
	return chart
}

func plotHeight() float64 {
	return chartHeight - chartPadTop - chartPadBottom
}

// scaleMax keeps empty or all-zero series from dividing by zero.
func scaleMax(value float64) float64 {
	if value <= 0 {
		return 1
	}
	return value
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
