package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"horas/report"
)

func TestFormatSummary_EmptyShowsZeroMetrics(t *testing.T) {
	out := FormatSummary(report.Summary{}, SummaryInfo{Source: "horas.csv"})

	assert.Equal(t, 5, strings.Count(out, "0.00 h"))
	assert.Contains(t, out, "RESUMO ATUAL")
	assert.Contains(t, out, "Nenhum dado registrado ainda.")
}

func TestFormatSummary_ShowsValuesAndSource(t *testing.T) {
	summary := report.Summary{MonthTotal: 9, WeekTotal: 4, DailyAverage: 3, WeeklyAverage: 4.5, MonthlyAverage: 9}
	out := FormatSummary(summary, SummaryInfo{Source: "horas.csv", Rows: 3, RowsDropped: 1})

	assert.Contains(t, out, "Horas no Mês Atual")
	assert.Contains(t, out, "9.00 h")
	assert.Contains(t, out, "4.50 h")
	assert.Contains(t, out, "3 registros de horas.csv")
	assert.Contains(t, out, "1 linhas ignoradas")
}
