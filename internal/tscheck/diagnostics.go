// Package tscheck shells out to an external TypeScript compiler against
// the synthetic files Generate produces, parses whatever it prints back,
// and remaps the result through internal/remap. Nothing in here is pure:
// it owns a temp directory, a child process, and the files both leave
// behind.
package tscheck

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/vuetsc/compiler/internal/remap"
)

// Severity mirrors tsc's own diagnostic categories.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeveritySuggestion
	SeverityMessage
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeveritySuggestion:
		return "suggestion"
	default:
		return "message"
	}
}

// Diagnostic is one finding from the external compiler, before remapping.
type Diagnostic struct {
	File     string
	Line     int
	Column   int
	Severity Severity
	Code     int
	Message  string
}

// tscLinePattern matches tsc's default --pretty false output:
//
//	src/main.ts(10,5): error TS2322: Type 'string' is not assignable to type 'number'.
var tscLinePattern = regexp2.MustCompile(`^(.+?)\((\d+),(\d+)\):\s+(error|warning|message)\s+TS(\d+):\s*(.+)$`, regexp2.None)

// ParseOutput parses tsc's line-oriented stdout/stderr into Diagnostics.
// Lines that don't match the expected shape (banners, summary counts) are
// silently skipped rather than treated as a fatal parse error.
func ParseOutput(output string) []Diagnostic {
	var diags []Diagnostic
	for _, line := range strings.Split(output, "\n") {
		if d, ok := parseLine(strings.TrimSpace(line)); ok {
			diags = append(diags, d)
		}
	}
	return diags
}

func parseLine(line string) (Diagnostic, bool) {
	if line == "" {
		return Diagnostic{}, false
	}
	match, err := tscLinePattern.FindStringMatch(line)
	if err != nil || match == nil {
		return Diagnostic{}, false
	}
	groups := match.Groups()
	lineNum, err1 := strconv.Atoi(groups[2].String())
	col, err2 := strconv.Atoi(groups[3].String())
	code, err3 := strconv.Atoi(groups[5].String())
	if err1 != nil || err2 != nil || err3 != nil {
		return Diagnostic{}, false
	}

	var sev Severity
	switch groups[4].String() {
	case "error":
		sev = SeverityError
	case "warning":
		sev = SeverityWarning
	default:
		sev = SeverityMessage
	}

	return Diagnostic{
		File:     groups[1].String(),
		Line:     lineNum,
		Column:   col,
		Severity: sev,
		Code:     code,
		Message:  groups[6].String(),
	}, true
}

// ToRemapDiagnostic adapts a raw compiler diagnostic to remap.Diagnostic
// so it can be run through a Remapper.
func (d Diagnostic) ToRemapDiagnostic() remap.Diagnostic {
	return remap.Diagnostic{
		File:    d.File,
		Line:    d.Line,
		Column:  d.Column,
		Message: d.Message,
		Code:    d.Code,
	}
}
