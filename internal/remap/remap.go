// Package remap translates diagnostics reported against a synthetic
// generated file back into positions inside the original component file
// they were derived from. It is the fourth pipeline stage: everything it
// needs — the source map a Generate call produced, the original file's
// line index, and a diagnostic's line/column in the synthetic file — was
// already computed by an earlier stage; this package only does the
// offset arithmetic.
package remap

import (
	"github.com/vuetsc/compiler/internal/loc"
	"github.com/vuetsc/compiler/internal/sourcemap"
)

// Diagnostic is a positioned finding reported against a synthetic file,
// in the 1-indexed line/column form an external type checker reports.
// EndLine/EndColumn are optional; HasEnd is false when the checker only
// reported a start position.
type Diagnostic struct {
	File     string
	Line     int
	Column   int
	EndLine  int
	EndColumn int
	HasEnd   bool
	Message  string
	Code     int
}

// entry is everything the remapper needs about one synthetic file,
// registered once after Generate produces it.
type entry struct {
	originalFile string
	code         string
	sourceMap    *sourcemap.Map
	lineIndex    *loc.LineIndex // lazily built from code
}

// Remapper holds the registrations for every synthetic file a batch run
// produced, so diagnostics from an external checker's single invocation
// over many virtual files can all be remapped through one Remapper.
type Remapper struct {
	synthetic map[string]*entry
	originals map[string]*loc.LineIndex
}

// New returns an empty Remapper.
func New() *Remapper {
	return &Remapper{
		synthetic: make(map[string]*entry),
		originals: make(map[string]*loc.LineIndex),
	}
}

// Register records how one synthetic file maps back to its original: the
// synthetic file's own path and generated code, the source map Generate
// produced for it, and the original file's path and content. Registering
// the same synthetic path twice replaces the prior registration.
func (r *Remapper) Register(syntheticPath, originalPath, syntheticCode string, m *sourcemap.Map, originalContent string) {
	r.synthetic[syntheticPath] = &entry{
		originalFile: originalPath,
		code:         syntheticCode,
		sourceMap:    m,
	}
	if _, ok := r.originals[originalPath]; !ok {
		r.originals[originalPath] = loc.NewLineIndex(originalContent)
	}
}

// lineIndexFor lazily builds and caches the synthetic file's own line
// index: the remapper needs it to turn a checker-reported line/column
// into a byte offset before the source map can do anything with it.
func (e *entry) lineIndexFor() *loc.LineIndex {
	if e.lineIndex == nil {
		e.lineIndex = loc.NewLineIndex(e.code)
	}
	return e.lineIndex
}

// Remap converts one diagnostic from synthetic-file to original-file
// coordinates. It returns ok == false when the synthetic file was never
// registered or when no mapping covers the reported position — per the
// design, a diagnostic that cannot be attributed to a real source range is
// discarded rather than pointed at the wrong place.
func (r *Remapper) Remap(d Diagnostic) (Diagnostic, bool) {
	e, ok := r.synthetic[d.File]
	if !ok {
		return Diagnostic{}, false
	}
	origIndex, ok := r.originals[e.originalFile]
	if !ok {
		return Diagnostic{}, false
	}

	synthIndex := e.lineIndexFor()

	startOffset, ok := synthIndex.OffsetFor(loc.LineCol{Line: d.Line, Column: d.Column})
	if !ok {
		return Diagnostic{}, false
	}
	sourceOffset, ok := e.sourceMap.ToSourceOffset(startOffset)
	if !ok {
		return Diagnostic{}, false
	}
	startLC := origIndex.LineColFor(sourceOffset)

	out := Diagnostic{
		File:    e.originalFile,
		Line:    startLC.Line,
		Column:  startLC.Column,
		Message: d.Message,
		Code:    d.Code,
	}

	if d.HasEnd {
		if endOffset, ok := synthIndex.OffsetFor(loc.LineCol{Line: d.EndLine, Column: d.EndColumn}); ok {
			if endSourceOffset, ok := e.sourceMap.ToSourceOffset(endOffset); ok {
				endLC := origIndex.LineColFor(endSourceOffset)
				out.EndLine, out.EndColumn, out.HasEnd = endLC.Line, endLC.Column, true
			}
		}
	}

	return out, true
}

// RemapAll remaps every diagnostic in ds, silently dropping any that
// Remap discards.
func (r *Remapper) RemapAll(ds []Diagnostic) []Diagnostic {
	out := make([]Diagnostic, 0, len(ds))
	for _, d := range ds {
		if remapped, ok := r.Remap(d); ok {
			out = append(out, remapped)
		}
	}
	return out
}
