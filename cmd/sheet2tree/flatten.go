package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sheet2tree/internal/convert"
	"sheet2tree/internal/render"
	"sheet2tree/internal/table"
	"sheet2tree/internal/tree"
)

func newFlattenCmd(a *app) *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "flatten [file]",
		Short: "Lay records out as a table (the reverse of convert)",
		Long: `Read JSON or YAML records and write them as a table whose headers follow
the same conventions, ready to paste into a spreadsheet.

Each record spans as many rows as its longest list. Converting the output
with --empty omit gives the records back.

Example: sheet2tree flatten people.json > people.tsv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)

			if len(args) > 0 {
				data, err = os.ReadFile(args[0])
				if from == "" {
					from = strings.TrimPrefix(filepath.Ext(args[0]), ".")
				}
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}

			if err != nil {
				return fmt.Errorf("failed to read records: %w", err)
			}

			records, err := decodeRecords(data, from)
			if err != nil {
				return err
			}

			t, err := convert.Flatten(records)
			if err != nil {
				return err
			}

			a.logger.Debug("flattened", "records", len(records), "rows", len(t.DataRows()))

			opts, err := a.profile.TableOptions()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("to") {
				opts.Format, err = table.ParseFormat(to)
				if err != nil {
					return err
				}
			}

			return table.Write(cmd.OutOrStdout(), t, opts)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Record format: json|yaml (default: from file extension, json for stdin)")
	cmd.Flags().StringVar(&to, "to", "", "Table format: tsv|csv (default tsv)")

	return cmd
}

func decodeRecords(data []byte, format string) ([]*tree.Record, error) {
	f, err := render.ParseFormat(format)
	if err != nil {
		return nil, err
	}

	if f == render.FormatYAML {
		return tree.DecodeYAMLRecords(data)
	}

	return tree.DecodeRecords(bytes.NewReader(data))
}
