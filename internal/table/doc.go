// Package table reads spreadsheet data into a Table: rows of string cells
// whose first row names the columns.
//
// Sources:
//   - ParsePaste: text copied from a spreadsheet (tab-separated, newline rows)
//   - ReadCSV: comma (or other single-rune) separated files
//   - ReadXLSX: one sheet of an Excel workbook
package table
