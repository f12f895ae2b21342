// Package formatter renders terminal output for the CLI commands.
package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"horas/report"
)

var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// SummaryInfo describes where the numbers came from.
type SummaryInfo struct {
	Source      string
	Rows        int
	RowsDropped int
}

// FormatSummary renders the five sidebar metrics as a boxed table.
func FormatSummary(summary report.Summary, info SummaryInfo) string {
	metrics := summary.Metrics()

	labelWidth := 0
	for _, metric := range metrics {
		if w := lipgloss.Width(metric.Label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for _, metric := range metrics {
		padding := strings.Repeat(" ", labelWidth-lipgloss.Width(metric.Label))
		b.WriteString(StyleFg.Render(metric.Label) + padding + "  " + StyleGreen.Render(report.FormatHours(metric.Hours)) + "\n")
	}

	b.WriteString("\n")
	if info.Rows == 0 {
		b.WriteString(StyleDim.Render("Nenhum dado registrado ainda."))
	} else {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%d registros de %s", info.Rows, info.Source)))
	}
	if info.RowsDropped > 0 {
		b.WriteString("\n" + StyleDim.Render(fmt.Sprintf("%d linhas ignoradas (data ou horas inválidas)", info.RowsDropped)))
	}

	return RenderBox("Resumo Atual", b.String())
}
