// Package header turns spreadsheet column headers into structural paths.
//
// # Header Syntax
//
//   - Plain field: "age"
//   - Nested object: "address.city"
//   - List of values: "hobby[]"
//   - List of objects: "family[]name" or "family[].name"
//   - Legacy list alias: "XX.name" (read as "XX[].name")
//
// Parsing is permissive and never fails; see Parse.
package header
