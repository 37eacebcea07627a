package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"sheet2tree/internal/table"
)

// TableOptions controls the text preview of a table.
type TableOptions struct {
	// MaxCellWidth truncates cells wider than this many columns; zero keeps
	// cells whole.
	MaxCellWidth int
	// MaxRows limits the data rows shown; zero shows all of them.
	MaxRows int
}

// Table writes t as aligned columns: the header row, a rule, then the data
// rows. Widths are display widths, so wide characters take two columns.
func Table(w io.Writer, t table.Table, opts TableOptions) error {
	if len(t) == 0 {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}

	rows := t.DataRows()
	hidden := 0

	if opts.MaxRows > 0 && len(rows) > opts.MaxRows {
		hidden = len(rows) - opts.MaxRows
		rows = rows[:opts.MaxRows]
	}

	width := t.Width()
	for _, row := range rows {
		width = max(width, len(row))
	}

	grid := make([][]string, 0, len(rows)+1)
	grid = append(grid, fit(t.Headers(), width, opts.MaxCellWidth))

	for _, row := range rows {
		grid = append(grid, fit(row, width, opts.MaxCellWidth))
	}

	widths := make([]int, width)
	for _, row := range grid {
		for i, c := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	var sb strings.Builder

	writeRow(&sb, grid[0], widths)

	rule := make([]string, width)
	for i, n := range widths {
		rule[i] = strings.Repeat("-", n)
	}

	writeRow(&sb, rule, widths)

	for _, row := range grid[1:] {
		writeRow(&sb, row, widths)
	}

	if hidden > 0 {
		fmt.Fprintf(&sb, "... %d more row(s)\n", hidden)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func fit(row []string, width, maxCell int) []string {
	out := make([]string, width)
	for i := range out {
		out[i] = truncate(table.Cell(row, i), maxCell)
	}

	return out
}

func writeRow(sb *strings.Builder, row []string, widths []int) {
	for i, c := range row {
		if i > 0 {
			sb.WriteString(" | ")
		}

		if i == len(row)-1 {
			sb.WriteString(c)
			break
		}

		sb.WriteString(runewidth.FillRight(c, widths[i]))
	}

	sb.WriteByte('\n')
}

// truncate shortens s to at most maxLen display columns, ending in "..."
// when there is room for it.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 || runewidth.StringWidth(s) <= maxLen {
		return s
	}

	if maxLen < 4 {
		return runewidth.Truncate(s, maxLen, "")
	}

	return runewidth.Truncate(s, maxLen, "...")
}
