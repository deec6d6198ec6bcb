// Package testutil holds the snapshot and diff helpers package tests
// share: dedenting literal component/template fixtures, diffing generated
// output with ANSI color, and recording golden snapshots of generated
// TypeScript.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/google/go-cmp/cmp"
	"github.com/lithammer/dedent"
)

// Dedent strips the common leading whitespace from a triple-quoted-style
// Go string literal used to embed a .vue fixture inline in a test, and
// trims stray leading/trailing blank lines so the fixture reads the way
// it would in a real file.
func Dedent(input string) string {
	return dedent.Dedent(
		strings.ReplaceAll(
			strings.TrimLeft(
				strings.TrimRight(input, " \n\r"),
				" \t\r\n"),
			"\n\n\n", "\n\n"),
	)
}

// Diff renders cmp.Diff with ANSI coloring on the +/- lines, for failure
// messages that are readable in a terminal.
func Diff(x, y interface{}, opts ...cmp.Option) string {
	escape := func(code int) string { return fmt.Sprintf("\x1b[%dm", code) }
	diff := cmp.Diff(x, y, opts...)
	if diff == "" {
		return ""
	}
	lines := strings.Split(diff, "\n")
	for i, l := range lines {
		switch {
		case strings.HasPrefix(l, "-"):
			lines[i] = escape(31) + l + escape(0)
		case strings.HasPrefix(l, "+"):
			lines[i] = escape(32) + l + escape(0)
		}
	}
	return strings.Join(lines, "\n")
}

// redactTestName strips characters that can't survive as a snapshot
// filename from a Go test name (which may contain slashes, spaces, and
// the literal component source in a table-driven subtest name).
func redactTestName(name string) string {
	r := strings.NewReplacer(
		"#", "_", "<", "_", ">", "_", ")", "_", "(", "_",
		":", "_", " ", "_", "'", "_", "\"", "_", "@", "_",
		"`", "_", "+", "_", "/", "_",
	)
	return r.Replace(name)
}

// OutputKind picks the fenced-code-block language a snapshot's generated
// output is rendered under.
type OutputKind int

const (
	OutputTS OutputKind = iota
	OutputJS
	OutputJSON
)

func (k OutputKind) fence() string {
	switch k {
	case OutputJS:
		return "js"
	case OutputJSON:
		return "json"
	default:
		return "ts"
	}
}

// SnapshotOptions describes one MakeSnapshot call.
type SnapshotOptions struct {
	T          *testing.T
	Name       string
	Input      string
	Output     string
	Kind       OutputKind
	FolderName string
}

// MakeSnapshot records a golden snapshot combining a test's component
// input and its generated output, so a regression in codegen shows up as
// a readable diff instead of an opaque byte mismatch.
func MakeSnapshot(opts SnapshotOptions) {
	folder := opts.FolderName
	if folder == "" {
		folder = "__snapshots__"
	}

	s := snaps.WithConfig(
		snaps.Filename(redactTestName(opts.Name)),
		snaps.Dir(folder),
	)

	var b strings.Builder
	b.WriteString("## Input\n\n```vue\n")
	b.WriteString(Dedent(opts.Input))
	b.WriteString("\n```\n\n## Output\n\n```")
	b.WriteString(opts.Kind.fence())
	b.WriteString("\n")
	b.WriteString(Dedent(opts.Output))
	b.WriteString("\n```")

	s.MatchSnapshot(opts.T, b.String())
}
