package display

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dyike/symplacheck/internal/models"
)

// maxTableRows caps how many rows are rendered on screen. CSV exports are
// never truncated, only the terminal view.
const maxTableRows = 30

// maxCellWidth keeps wide JSON cells from blowing up the layout.
const maxCellWidth = 48

// RenderTable renders a table for the terminal, truncating long cell
// values and capping the number of rows shown.
func RenderTable(t models.Table) string {
	if t.Empty() {
		return dimStyle.Render("(no records)")
	}

	shown := t.Rows
	truncated := 0
	if len(shown) > maxTableRows {
		truncated = len(shown) - maxTableRows
		shown = shown[:maxTableRows]
	}

	rows := make([][]string, len(shown))
	for i, row := range shown {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = truncateCell(cell, maxCellWidth)
		}
		rows[i] = cells
	}

	rendered := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(t.Columns...).
		Rows(rows...).
		String()

	if truncated > 0 {
		rendered += "\n" + dimStyle.Render(fmt.Sprintf("… %d more rows (full data in the CSV export)", truncated))
	}
	return rendered
}

func truncateCell(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
