package main

import (
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"sheet2tree/internal/header"
	"sheet2tree/internal/render"
	"sheet2tree/internal/table"
)

func newHeadersCmd(a *app) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "headers [file]",
		Short: "Show how each header is read",
		Long: `Show the path each column header resolves to and what it builds.

Only the header row is needed; data rows are ignored.

Example: sheet2tree headers --dump people.tsv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTable(cmd, args)
			if err != nil {
				return err
			}

			paths := header.ParseAll(t.Headers(), a.profile.ConvertOptions().Header...)

			if dump {
				spew.Fdump(cmd.OutOrStdout(), paths)
				return nil
			}

			rows := table.Table{{"#", "header", "path", "builds"}}
			for i, p := range paths {
				rows = append(rows, []string{strconv.Itoa(i + 1), p.Raw, p.String(), describe(p)})
			}

			return render.Table(cmd.OutOrStdout(), rows, render.TableOptions{})
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the parsed paths in full")

	return cmd
}

// describe names what a header contributes to a record.
func describe(p header.Path) string {
	switch {
	case p.IsEmpty():
		return "nothing (ignored)"
	case p.IsIdentity():
		return "value, part of the row key"
	case p.IsScalarArray():
		return "list of values"
	case p.HasArray():
		var lists []string
		for _, s := range p.Segments {
			if s.IsArray {
				lists = append(lists, s.Name)
			}
		}

		return "field of list element (" + strings.Join(lists, ", ") + ")"
	default:
		return "nested value"
	}
}
