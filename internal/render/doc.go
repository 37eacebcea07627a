// Package render writes conversion results and tables for people to read.
//
// Records are encoded as JSON or YAML with their key order preserved. A
// missing result (a table without data rows) is written as null. Tables are
// previewed as aligned text, measuring cells by display width so that CJK
// text lines up in a terminal.
package render
