package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sheet2tree/internal/table"
)

// readTable reads the table named by args[0], or stdin when no file is given.
func (a *app) readTable(cmd *cobra.Command, args []string) (table.Table, error) {
	opts, err := a.profile.TableOptions()
	if err != nil {
		return nil, err
	}

	var t table.Table

	if len(args) > 0 {
		t, err = table.ReadFile(args[0], opts)
	} else {
		a.promptPaste(cmd)
		t, err = table.Read(cmd.InOrStdin(), opts)
	}

	if err != nil {
		return nil, err
	}

	if a.profile.ShouldNormalize() {
		t = table.Normalize(t)
	}

	a.logger.Debug("read table", "rows", len(t), "columns", t.Width())

	return t, nil
}

// promptPaste tells an interactive user how to finish pasting.
func (a *app) promptPaste(cmd *cobra.Command) {
	f, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Paste the cells including the header row, then press Ctrl-D:")
}
