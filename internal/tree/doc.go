// Package tree holds the JSON-shaped records built from table rows.
//
// A Value is one of string, null, Record or List. Records keep their keys in
// first-write order so the output reads in header order.
//
// Key operations:
//   - Set: writes one cell into a record following a header path
//   - Merge: folds a record built from a repeated row into the accumulated one
package tree
