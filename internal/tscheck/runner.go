package tscheck

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	compiler "github.com/vuetsc/compiler/internal"
	"github.com/vuetsc/compiler/internal/component"
	"github.com/vuetsc/compiler/internal/config"
	"github.com/vuetsc/compiler/internal/remap"
)

// RunnerOptions configures one Runner.
type RunnerOptions struct {
	// TSConfigPath overrides tsconfig discovery; empty means search
	// upward from Workspace.
	TSConfigPath string
	// TempDir is where virtual files are written; empty uses the OS
	// temp directory under a fixed subdirectory.
	TempDir string
	// ExtraArgs are appended to the tsc invocation verbatim.
	ExtraArgs []string
	Logger    *logrus.Logger
}

// Runner type-checks a workspace of .vue files by generating one synthetic
// file per component, shelling out to tsc --noEmit across all of them, and
// remapping whatever it reports back onto the original files.
type Runner struct {
	workspace string
	opts      RunnerOptions
	log       *logrus.Logger
	remapper  *remap.Remapper
}

// NewRunner builds a Runner rooted at workspace, discovering a tsconfig if
// one isn't given explicitly.
func NewRunner(workspace string, opts RunnerOptions) *Runner {
	if opts.Logger == nil {
		opts.Logger = logrus.StandardLogger()
	}
	if opts.TempDir == "" {
		opts.TempDir = filepath.Join(os.TempDir(), "vuetsc")
	}
	return &Runner{
		workspace: workspace,
		opts:      opts,
		log:       opts.Logger,
		remapper:  remap.New(),
	}
}

// Run discovers Vue components under the workspace, generates a synthetic
// file for each, invokes tsc once over the batch, and returns every
// diagnostic remapped to original-file coordinates.
func (r *Runner) Run(ctx context.Context) ([]remap.Diagnostic, error) {
	extensions := []string{".vue"}
	tsconfigPath := r.opts.TSConfigPath
	if tsconfigPath == "" {
		tsconfigPath = config.Find(r.workspace)
	}
	if tsconfigPath != "" {
		cfg, err := config.Load(tsconfigPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Resolve(); err != nil {
			return nil, err
		}
		extensions = cfg.VueCompilerOptions.FileExtensions()
	}

	files, err := findComponentFiles(r.workspace, extensions)
	if err != nil {
		return nil, err
	}
	r.log.WithField("count", len(files)).Debug("discovered component files")

	if err := os.MkdirAll(r.opts.TempDir, 0o755); err != nil {
		return nil, err
	}

	var virtualPaths []string
	for _, file := range files {
		if err := r.generateVirtualFile(file); err != nil {
			r.log.WithError(err).WithField("file", file).Warn("skipping component, failed to generate")
			continue
		}
		virtualPaths = append(virtualPaths, r.virtualPath(file))
	}

	if len(virtualPaths) == 0 {
		return nil, nil
	}

	output, err := r.runTsc(ctx, virtualPaths, tsconfigPath)
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, err
		}
		// tsc exits non-zero whenever it reports any diagnostic; its
		// stdout is still the thing worth parsing.
	}

	raw := ParseOutput(output)
	out := make([]remap.Diagnostic, 0, len(raw))
	for _, d := range raw {
		if remapped, ok := r.remapper.Remap(d.ToRemapDiagnostic()); ok {
			out = append(out, remapped)
		}
	}
	return out, nil
}

func (r *Runner) virtualPath(originalFile string) string {
	rel, err := filepath.Rel(r.workspace, originalFile)
	if err != nil {
		rel = filepath.Base(originalFile)
	}
	rel = strings.ReplaceAll(rel, string(filepath.Separator), "__")
	return filepath.Join(r.opts.TempDir, rel+".ts")
}

func (r *Runner) generateVirtualFile(originalFile string) error {
	content, err := os.ReadFile(originalFile)
	if err != nil {
		return err
	}

	result, parseErrs := compiler.Check(string(content), compiler.Options{Filename: originalFile})
	if len(parseErrs) != 0 {
		return parseErrs[0]
	}

	virtualPath := r.virtualPath(originalFile)
	if result.Language == component.LangTSX || result.Language == component.LangJSX {
		virtualPath = strings.TrimSuffix(virtualPath, ".ts") + ".tsx"
	}
	if err := os.WriteFile(virtualPath, []byte(result.Code), 0o644); err != nil {
		return err
	}

	r.remapper.Register(virtualPath, originalFile, result.Code, result.Map, string(content))
	return nil
}

func (r *Runner) runTsc(ctx context.Context, files []string, tsconfigPath string) (string, error) {
	tsc, err := exec.LookPath("tsc")
	if err != nil {
		return "", errors.New("tscheck: tsc not found on PATH")
	}

	args := []string{"--noEmit", "--pretty", "false"}
	if tsconfigPath != "" {
		args = append(args, "--project", tsconfigPath)
	} else {
		args = append(args, files...)
	}
	args = append(args, r.opts.ExtraArgs...)

	cmd := exec.CommandContext(ctx, tsc, args...)
	cmd.Dir = r.workspace
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stdout

	err = cmd.Run()
	return stdout.String(), err
}

// findComponentFiles walks root for files whose extension is in
// extensions, skipping node_modules and dot directories the same way an
// editor's file watcher would.
func findComponentFiles(root string, extensions []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if name == "node_modules" || (strings.HasPrefix(name, ".") && name != ".") {
				return filepath.SkipDir
			}
			return nil
		}
		ext := filepath.Ext(path)
		for _, e := range extensions {
			if ext == e {
				files = append(files, path)
				return nil
			}
		}
		return nil
	})
	return files, err
}
