package main

import (
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/locpak/locpak/stringtable"
)

// errExit is returned by the exit command's RunE to unwind the command
// script loop without being treated as a failure (spec.md S6.1: "exit —
// terminate successfully immediately").
var errExit = errors.New("exit")

// app holds the single mutable aggregate a command script operates on
// (spec.md S5: "no shared mutable state across commands except the
// stringtable itself") plus the console logger that is the CLI's sole
// external-collaborator boundary for diagnostics (spec.md S1).
type app struct {
	table *stringtable.Table
	log   *log.Logger
}

func newApp(logger *log.Logger) *app {
	return &app{table: stringtable.New(), log: logger}
}

// rootCommand builds the cobra command tree once; the same tree is
// re-dispatched for every line of the command script, each line setting a
// fresh argv via cobra.Command.SetArgs before Execute.
func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "locpak",
		Short:         "Pack and unpack a game engine's localized-string database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		a.versionCmd(),
		a.clearCmd(),
		a.exitCmd(),
		a.readIniCmd(),
		a.readCSVCmd(),
		a.saveMapCmd(),
		a.saveBinCmd(),
		a.readMapCmd(),
		a.readBinCmd(),
		a.saveCSVCmd(),
	)

	return root
}
