package convert

import (
	"strings"

	"sheet2tree/internal/header"
	"sheet2tree/internal/table"
)

// RowKey joins, in header order, the raw cells of every identity column:
// a column whose header contains neither "." nor "[]". Nested and list
// columns never contribute, so rows that differ only there group together.
func RowKey(headers, row []string, sep string) string {
	var sb strings.Builder

	first := true

	for col, h := range headers {
		if !header.IsIdentity(h) {
			continue
		}

		if !first {
			sb.WriteString(sep)
		}

		sb.WriteString(table.Cell(row, col))

		first = false
	}

	return sb.String()
}

// IdentityColumns returns the indexes of the columns that make up the row key.
func IdentityColumns(headers []string) []int {
	var cols []int

	for col, h := range headers {
		if header.IsIdentity(h) {
			cols = append(cols, col)
		}
	}

	return cols
}
