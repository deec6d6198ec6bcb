package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vuetsc/compiler/internal/remap"
	"github.com/vuetsc/compiler/internal/tscheck"
)

var checkCmd = &cobra.Command{
	Use:   "check [workspace]",
	Short: "Type-check every component under workspace once and exit.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace := "."
		if len(args) == 1 {
			workspace = args[0]
		}
		return runCheck(cmd, workspace)
	},
}

func runCheck(cmd *cobra.Command, workspace string) error {
	noColor, _ := cmd.Flags().GetBool("no-color")
	project, _ := cmd.Flags().GetString("project")
	color.NoColor = color.NoColor || noColor

	runner := tscheck.NewRunner(workspace, tscheck.RunnerOptions{
		TSConfigPath: project,
		Logger:       log,
	})

	diags, err := runner.Run(context.Background())
	if err != nil {
		return fmt.Errorf("vuetsc: %w", err)
	}

	printDiagnostics(diags)
	if len(diags) > 0 {
		os.Exit(1)
	}
	return nil
}

func printDiagnostics(diags []remap.Diagnostic) {
	errorLabel := color.New(color.FgRed, color.Bold).SprintFunc()
	locLabel := color.New(color.Faint).SprintFunc()

	for _, d := range diags {
		fmt.Printf("%s %s TS%d: %s\n",
			locLabel(fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column)),
			errorLabel("error"),
			d.Code,
			d.Message,
		)
	}
	if len(diags) == 1 {
		fmt.Println("Found 1 error.")
	} else {
		fmt.Printf("Found %d errors.\n", len(diags))
	}
}
