// Package match provides name normalization and Levenshtein distance
// calculation for spotting near-duplicate column headers.
//
// Key functions:
//   - NormalizeHeader: folds headers for loose comparison
//   - Levenshtein: computes rune-wise edit distance between strings
//   - Nearest: ranks similar headers as suggestions
package match
