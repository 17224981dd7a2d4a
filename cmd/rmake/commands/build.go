package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/rmake/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [targets...] [NAME=value...]",
		Short: "Build targets, or the first declared target when none are named",
		Args:  cobra.ArbitraryArgs,
		RunE:  c.runBuild,
	}
	addBuildFlags(cmd)
	return cmd
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("dry-run", "n", false, "Print commands without running them")
	cmd.Flags().Bool("strict", false, "Stop at the first command that fails")
	cmd.Flags().BoolP("watch", "w", false, "Rebuild whenever files change")
}

func (c *CLI) runBuild(cmd *cobra.Command, args []string) error {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")
	if os.Getenv("NO_COLOR") != "" {
		noColor = true
	}
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	strict, _ := cmd.Flags().GetBool("strict")
	watch, _ := cmd.Flags().GetBool("watch")

	targets, overrides := app.ParseArgs(args)
	return c.app.Run(cmd.Context(), targets, app.RunOptions{
		File:      fileFlag(cmd),
		Verbosity: verbosity,
		Strict:    strict,
		DryRun:    dryRun,
		NoColor:   noColor,
		Watch:     watch,
		Overrides: overrides,
	})
}
