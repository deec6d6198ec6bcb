package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vuetsc/compiler/internal/tscheck"
)

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [workspace]",
	Short: "Re-check the workspace on a poll interval until interrupted.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace := "."
		if len(args) == 1 {
			workspace = args[0]
		}
		return runWatch(cmd, workspace)
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 2*time.Second, "how often to re-check the workspace")
}

// runWatch polls the workspace on every tick and re-checks it whenever the
// file snapshot differs from the previous one (and once at start), printing
// diagnostics and a timestamped separator after each run. There is no dependency in the
// module's stack that gives filesystem change events, so this polls a
// mtime snapshot of every component file rather than watching directly.
func runWatch(cmd *cobra.Command, workspace string) error {
	noColor, _ := cmd.Flags().GetBool("no-color")
	project, _ := cmd.Flags().GetString("project")
	color.NoColor = color.NoColor || noColor

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runner := tscheck.NewRunner(workspace, tscheck.RunnerOptions{
		TSConfigPath: project,
		Logger:       log,
	})

	var last map[string]time.Time
	for {
		snapshot, err := mtimeSnapshot(workspace)
		if err != nil {
			return err
		}
		if last == nil || !snapshotsEqual(last, snapshot) {
			log.Debug("change detected, re-checking workspace")
			diags, err := runner.Run(ctx)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
			} else {
				printDiagnostics(diags)
			}
			fmt.Println(color.New(color.Faint).Sprint(time.Now().Format("15:04:05") + " watching for changes..."))
			last = snapshot
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(watchInterval):
		}
	}
}

func mtimeSnapshot(root string) (map[string]time.Time, error) {
	out := make(map[string]time.Time)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".vue" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		out[path] = info.ModTime()
		return nil
	})
	return out, err
}

func snapshotsEqual(a, b map[string]time.Time) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || !bv.Equal(v) {
			return false
		}
	}
	return true
}
