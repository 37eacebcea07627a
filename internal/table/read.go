package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"sheet2tree/internal/common"
)

// ErrUnsupportedFormat is returned for an input format that has no reader.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Format names an input encoding.
type Format string

const (
	// FormatTSV is spreadsheet clipboard text: tab-separated cells, one row per line.
	FormatTSV Format = "tsv"
	// FormatCSV is comma-separated values.
	FormatCSV Format = "csv"
	// FormatXLSX is an Excel workbook.
	FormatXLSX Format = "xlsx"
)

// ParseFormat converts a format name. "paste" and "txt" are accepted as tsv.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "tsv", "paste", "txt":
		return FormatTSV, nil
	case "csv":
		return FormatCSV, nil
	case "xlsx", "xlsm":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// DetectFormat picks a format from a file extension, defaulting to tsv.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatTSV
	}
}

// Options controls how a source is read.
type Options struct {
	Format Format
	// Sheet selects the workbook sheet; empty means the first sheet.
	Sheet string
	// Comma is the CSV field delimiter; zero means ','.
	Comma rune
}

// ParsePaste splits clipboard text into rows on "\n" and cells on "\t".
// Carriage returns and surrounding whitespace are stripped from every cell.
// The empty line left by a trailing newline is dropped.
func ParsePaste(text string) Table {
	lines := strings.Split(text, "\n")

	if n := len(lines); n > 1 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}

	t := make(Table, 0, len(lines))

	for _, line := range lines {
		cells := strings.Split(line, "\t")
		for i, c := range cells {
			cells[i] = cleanCell(c)
		}

		t = append(t, cells)
	}

	return t
}

// ReadCSV reads comma-separated rows. Rows may have differing lengths.
func ReadCSV(r io.Reader, comma rune) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if comma != 0 {
		reader.Comma = comma
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return clean(rows), nil
}

// ReadXLSX reads one sheet of a workbook. An empty sheet name selects the first sheet.
func ReadXLSX(r io.Reader, sheet string) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		first, ok := common.First(f.GetSheetList())
		if !ok {
			return nil, errors.New("workbook has no sheets")
		}

		sheet = first
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	return clean(rows), nil
}

// Read reads a table from r in the given format.
func Read(r io.Reader, opts Options) (Table, error) {
	switch opts.Format {
	case FormatTSV, "":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}

		return ParsePaste(string(data)), nil
	case FormatCSV:
		return ReadCSV(r, opts.Comma)
	case FormatXLSX:
		return ReadXLSX(r, opts.Sheet)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}
}

// ReadFile reads a table from path. An empty opts.Format is detected from the extension.
func ReadFile(path string, opts Options) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if opts.Format == "" {
		opts.Format = DetectFormat(path)
	}

	t, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

func clean(rows [][]string) Table {
	t := make(Table, len(rows))

	for i, row := range rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = cleanCell(c)
		}

		t[i] = cells
	}

	return t
}

func cleanCell(c string) string {
	return strings.TrimSpace(strings.ReplaceAll(c, "\r", ""))
}
