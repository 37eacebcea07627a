package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"sheet2tree/internal/profile"
	"sheet2tree/internal/tree"
)

// app carries the settings shared by every subcommand.
type app struct {
	configPath  string
	envFile     string
	verbose     bool
	inputFormat string
	sheet       string
	comma       string
	empty       tree.EmptyPolicy
	keySep      string
	legacy      string
	noNormalize bool

	profile *profile.Profile
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "sheet2tree",
		Short: "Convert spreadsheet rows into nested JSON records",
		Long: `Convert rows copied from a spreadsheet into nested JSON records.

Headers:
  name            plain field; plain columns together identify a record
  address.city    field of a nested object
  hobby[]         list of values
  family[]name    list of objects (also family[].name)
  XX.name         legacy alias for XX[].name

Input is read from a file or, without one, from stdin: paste the cells and
end with Ctrl-D.

Settings come from --config (a YAML profile), then SHEET2TREE_* variables
(also read from .env), then flags.

Examples:
  sheet2tree convert people.tsv
  sheet2tree convert --empty omit --format yaml people.xlsx
  pbpaste | sheet2tree check
  sheet2tree flatten people.json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML profile with conversion settings")
	flags.StringVar(&a.envFile, "env-file", ".env", "File with SHEET2TREE_* overrides; ignored when missing")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log progress to stderr")
	flags.StringVar(&a.inputFormat, "input", "", "Input format: tsv|csv|xlsx (default: from file extension, tsv for stdin)")
	flags.StringVar(&a.sheet, "sheet", "", "Workbook sheet for xlsx input (default: first sheet)")
	flags.StringVar(&a.comma, "comma", "", "CSV delimiter, or \"tab\"")
	flags.Var(&a.empty, "empty", "Blank cells: "+policyNames()+" (default "+string(tree.DefaultPolicy)+")")
	flags.StringVar(&a.keySep, "key-separator", "", "Separator between plain column values in the row key")
	flags.StringVar(&a.legacy, "legacy-marker", "", "Header prefix read as a list marker; empty disables it (default \"XX\")")
	flags.BoolVar(&a.noNormalize, "no-normalize", false, "Keep cells as typed instead of converting to Unicode NFC")

	cmd.AddCommand(
		newConvertCmd(a),
		newHeadersCmd(a),
		newCheckCmd(a),
		newFlattenCmd(a),
		newPreviewCmd(a),
	)

	return cmd
}

// setup builds the logger and the effective profile.
func (a *app) setup(cmd *cobra.Command) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if a.envFile != "" {
		err := godotenv.Load(a.envFile)

		switch {
		case errors.Is(err, fs.ErrNotExist):
			a.logger.Debug("no env file", "path", a.envFile)
		case err != nil:
			return err
		default:
			a.logger.Debug("loaded env file", "path", a.envFile)
		}
	}

	p := profile.Default()

	if a.configPath != "" {
		loaded, err := profile.LoadFile(a.configPath)
		if err != nil {
			return err
		}

		p = loaded
		a.logger.Debug("loaded profile", "path", a.configPath)
	}

	if err := p.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}

	a.applyFlags(cmd, p)

	if err := p.Validate(); err != nil {
		return err
	}

	a.profile = p

	return nil
}

// applyFlags copies explicitly set flags over the profile.
func (a *app) applyFlags(cmd *cobra.Command, p *profile.Profile) {
	flags := cmd.Flags()

	if flags.Changed("input") {
		p.Input.Format = a.inputFormat
	}

	if flags.Changed("sheet") {
		p.Input.Sheet = a.sheet
	}

	if flags.Changed("comma") {
		p.Input.Comma = a.comma
	}

	if flags.Changed("empty") {
		p.Empty = a.empty
	}

	if flags.Changed("key-separator") {
		p.KeySeparator = a.keySep
	}

	if flags.Changed("legacy-marker") {
		p.LegacyMarker = &a.legacy
	}

	if flags.Changed("no-normalize") {
		normalize := !a.noNormalize
		p.Normalize = &normalize
	}
}

func policyNames() string {
	names := make([]string, 0, 3)
	for _, p := range tree.Policies() {
		names = append(names, p.String())
	}

	return strings.Join(names, "|")
}
