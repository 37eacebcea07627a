// Package main provides the CLI entrypoint for sheet2tree.
//
// sheet2tree turns rows copied from a spreadsheet into nested JSON records.
// Column headers describe the shape of each record:
//   - "address.city" nests a field in an object
//   - "hobby[]" collects values into a list
//   - "family[]name" collects objects into a list
//
// Rows that agree on every plain column are merged into one record.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
