// Package cli wires the vuetsc binary's subcommands: check (one-shot type
// checking over a workspace) and watch (repeated checking on a poll
// interval, since nothing in the dependency set gives us filesystem
// events for free).
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.StandardLogger()

var rootCmd = &cobra.Command{
	Use:   "vuetsc",
	Short: "Type-check Vue single file components without leaving Go.",
	Long:  "vuetsc compiles .vue components to synthetic TypeScript, runs an external tsc over the batch, and reports diagnostics against the original file.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the vuetsc CLI. Any error has already been printed to
// stderr by cobra before it's returned here.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("project", "", "path to tsconfig.json (default: search upward from the workspace)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored diagnostic output")
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
}
