// Package diagnostic provides structured findings about a pasted table:
// header syntax problems, conflicting column shapes and ragged rows.
//
// Findings never stop a conversion; they explain why the output may not look
// the way the header row suggests.
package diagnostic
