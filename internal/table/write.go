package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

var pasteCell = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

// WritePaste writes t as clipboard text that ParsePaste reads back: cells
// joined by tabs, one row per line. Tabs and line breaks inside a cell become
// spaces.
func WritePaste(w io.Writer, t Table) error {
	var sb strings.Builder

	for _, row := range t {
		for i, c := range row {
			if i > 0 {
				sb.WriteByte('\t')
			}

			sb.WriteString(pasteCell.Replace(c))
		}

		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}

	return nil
}

// WriteCSV writes t as comma-separated values; comma zero means ','.
func WriteCSV(w io.Writer, t Table, comma rune) error {
	writer := csv.NewWriter(w)
	if comma != 0 {
		writer.Comma = comma
	}

	if err := writer.WriteAll(t); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	return nil
}

// Write writes t in the given format. Workbooks are not written.
func Write(w io.Writer, t Table, opts Options) error {
	switch opts.Format {
	case FormatTSV, "":
		return WritePaste(w, t)
	case FormatCSV:
		return WriteCSV(w, t, opts.Comma)
	default:
		return fmt.Errorf("%w for output: %q", ErrUnsupportedFormat, opts.Format)
	}
}
