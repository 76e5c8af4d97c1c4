package render

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/concordlabs/concord/agreement"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 1)

	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Padding(0, 1).
			Align(lipgloss.Right)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// MetricsTable renders the report's metric set as a bordered two-column
// table, one metric per row in canonical display order. Metrics that are
// undefined for the sample (the percentage terms of a perfect-agreement
// sample) are left out.
func MetricsTable(report *agreement.Report) string {
	set := report.Set()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 {
				return numberStyle
			}

			return cellStyle
		}).
		Headers("Metric", report.Label)

	for _, name := range agreement.MetricNames() {
		v, ok := set[name]
		if !ok {
			continue
		}
		t.Row(name, formatValue(v, report.Precision))
	}

	return t.Render()
}

// DecompositionTable renders a per-point partition with its totals. The sum
// row carries the residual against the total sum of squares, which is zero
// for the additive schemes.
func DecompositionTable(d *agreement.Decomposition, precision int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col > 0 {
				return numberStyle
			}

			return cellStyle
		}).
		Headers("Point", "Unsystematic", "Systematic")

	for i := range d.Unsystematic {
		t.Row(
			strconv.Itoa(i+1),
			formatValue(d.Unsystematic[i], precision),
			formatValue(d.Systematic[i], precision),
		)
	}
	t.Row("Sum",
		formatValue(d.SumUnsystematic, precision),
		formatValue(d.SumSystematic, precision),
	)
	t.Row("TSS", formatValue(d.TSS, precision), "")
	t.Row("Residual", formatValue(d.Residual(), precision), "")

	title := fmt.Sprintf("%s scheme, %s", d.Scheme, d.Line)

	return lipgloss.JoinVertical(lipgloss.Left, cellStyle.Render(title), t.Render())
}

func formatValue(v float64, precision int) string {
	return strconv.FormatFloat(agreement.Round(v, precision), 'f', precision, 64)
}
