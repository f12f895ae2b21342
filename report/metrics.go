package report

import "fmt"

// Metric is one labelled sidebar value.
type Metric struct {
	Label string
	Hours float64
}

// Metrics lists the summary values in sidebar order.
func (s Summary) Metrics() []Metric {
	return []Metric{
		{Label: "Horas no Mês Atual", Hours: s.MonthTotal},
		{Label: "Horas na Semana Atual", Hours: s.WeekTotal},
		{Label: "Média de Horas Diárias", Hours: s.DailyAverage},
		{Label: "Média de Horas Semanais", Hours: s.WeeklyAverage},
		{Label: "Média de Horas Mensais", Hours: s.MonthlyAverage},
	}
}

// FormatHours renders a value the way the sidebar shows it, e.g. "4.50 h".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2f h", hours)
}
