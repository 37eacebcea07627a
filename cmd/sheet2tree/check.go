package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sheet2tree/internal/convert"
)

// errCheckFailed is returned by check --strict when warnings were found.
var errCheckFailed = errors.New("check failed")

func newCheckCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Report header and row problems before converting",
		Long: `Report problems that change how a table converts: malformed or duplicate
headers, a key used both as a value and as an object, headers that differ by
one character, no plain column to group rows by, and ragged rows.

Exits non-zero with --strict when any warning is found.

Example: sheet2tree check --strict people.tsv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTable(cmd, args)
			if err != nil {
				return err
			}

			d := convert.Inspect(t, a.profile.ConvertOptions())
			out := cmd.OutOrStdout()

			for _, diag := range d.All() {
				fmt.Fprintf(out, "%s: %s\n", diag.Severity, diag)
			}

			fmt.Fprintf(out, "%d error(s), %d warning(s), %d info(s)\n",
				len(d.Errors), len(d.Warnings), len(d.Infos))

			if err := d.Error(); err != nil {
				return err
			}

			if strict && len(d.Warnings) > 0 {
				return fmt.Errorf("%w: %d warning(s)", errCheckFailed, len(d.Warnings))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when warnings are found")

	return cmd
}
