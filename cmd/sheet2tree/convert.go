package main

import (
	"github.com/spf13/cobra"

	"sheet2tree/internal/convert"
	"sheet2tree/internal/diagnostic"
	"sheet2tree/internal/render"
	"sheet2tree/internal/tree"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		format string
		indent int
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert a table into nested records",
		Long: `Convert a table into nested records, one per distinct row key.

A table with no data rows prints null.

Example: sheet2tree convert --empty omit people.tsv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				a.profile.Output.Format = format
			}

			if cmd.Flags().Changed("indent") {
				a.profile.Output.Indent = indent
			}

			out, err := a.profile.RenderOptions()
			if err != nil {
				return err
			}

			t, err := a.readTable(cmd, args)
			if err != nil {
				return err
			}

			opts := a.profile.ConvertOptions()
			a.logDiagnostics(convert.Inspect(t, opts))

			records, ok := convert.Convert(t, opts)
			a.logger.Debug("converted", "records", len(records), "policy", opts.Policy)

			return renderRecords(cmd, records, ok, out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json|yaml (default json)")
	cmd.Flags().IntVar(&indent, "indent", 0, "Spaces per level; negative prints compact JSON (default 2)")

	return cmd
}

// logDiagnostics reports findings that change how the table converts.
func (a *app) logDiagnostics(d diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		attrs := []any{"code", diag.Code}
		if diag.Header != "" {
			attrs = append(attrs, "header", diag.Header)
		}

		if diag.Row > 0 {
			attrs = append(attrs, "row", diag.Row)
		}

		switch diag.Severity {
		case diagnostic.SeverityError:
			a.logger.Error(diag.Message, attrs...)
		case diagnostic.SeverityWarning:
			a.logger.Warn(diag.Message, attrs...)
		default:
			a.logger.Info(diag.Message, attrs...)
		}
	}
}

func renderRecords(cmd *cobra.Command, records []*tree.Record, ok bool, opts render.Options) error {
	return render.Records(cmd.OutOrStdout(), records, ok, opts)
}
