package main

import (
	"github.com/spf13/cobra"

	"sheet2tree/internal/render"
)

func newPreviewCmd(a *app) *cobra.Command {
	var opts render.TableOptions

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Show the table as it was read",
		Long: `Show the table as aligned columns, to confirm what was pasted or read
before converting it.

Example: sheet2tree preview --max-rows 10 people.xlsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.readTable(cmd, args)
			if err != nil {
				return err
			}

			return render.Table(cmd.OutOrStdout(), t, opts)
		},
	}

	cmd.Flags().IntVar(&opts.MaxCellWidth, "max-width", 24, "Truncate cells wider than this; 0 keeps them whole")
	cmd.Flags().IntVar(&opts.MaxRows, "max-rows", 0, "Show at most this many data rows; 0 shows all")

	return cmd
}
