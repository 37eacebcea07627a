package table

import (
	"golang.org/x/text/unicode/norm"
)

// Table is a header row followed by data rows. Rows may be shorter than the
// header row; missing cells read as "".
type Table [][]string

// Headers returns the header row, or nil for an empty table.
func (t Table) Headers() []string {
	if len(t) == 0 {
		return nil
	}

	return t[0]
}

// DataRows returns every row after the header row.
func (t Table) DataRows() [][]string {
	if len(t) < 2 {
		return nil
	}

	return t[1:]
}

// HasData returns true if the table has a header row and at least one data row.
func (t Table) HasData() bool {
	return len(t) >= 2
}

// Width returns the number of header columns.
func (t Table) Width() int {
	return len(t.Headers())
}

// Cell returns row[col], or "" when the row is too short.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}

	return row[col]
}

// Normalize returns a copy of t with every cell in Unicode NFC. Text copied
// from some platforms arrives decomposed (e.g. Hangul as separate jamo), which
// would otherwise split equal-looking keys and headers.
func Normalize(t Table) Table {
	out := make(Table, len(t))

	for i, row := range t {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = norm.NFC.String(c)
		}

		out[i] = cells
	}

	return out
}
