// Package loc provides the byte-offset position primitives shared by every
// stage of the pipeline: the component parser, the template compiler, the
// code generator and the diagnostic remapper all exchange positions as a
// Span rather than a line/column pair, and convert to line/column only at
// the edges (diagnostic formatting, source map line tables).
package loc

import "sort"

// Span is a half-open byte range [Start, End) into a source text. Start and
// End are always 0-based byte offsets, never rune or UTF-16 offsets.
type Span struct {
	Start, End int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether offset falls within the span.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Loc is a single 0-based byte offset from the start of a file.
type Loc struct {
	Start int
}

// Range is a Loc plus a length, mirroring the half-open Span but expressed
// as the pair the tokenizer-derived parsers pass around.
type Range struct {
	Loc Loc
	Len int
}

// End returns the exclusive end offset of the range.
func (r Range) End() int {
	return r.Loc.Start + r.Len
}

// Span converts a Range to a Span.
func (r Range) Span() Span {
	return Span{Start: r.Loc.Start, End: r.End()}
}

// LineCol is a 1-based line and column pair, the form diagnostics are
// reported in.
type LineCol struct {
	Line, Column int
}

// LineIndex maps byte offsets to 1-based line/column pairs and back. It is
// built once per source text in O(n) and answers lookups in O(log n).
type LineIndex struct {
	text        string
	lineStarts  []int // byte offset of the first byte of each line
}

// NewLineIndex scans text once for line breaks and records where each line
// begins. A line break is a single '\n'; a preceding '\r' is treated as part
// of the previous line's trailing whitespace, matching how text editors
// report columns.
func NewLineIndex(text string) *LineIndex {
	starts := make([]int, 1, 64)
	starts[0] = 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{text: text, lineStarts: starts}
}

// LineColFor converts a byte offset into a 1-based line/column pair. Offsets
// past the end of the text clamp to the last valid position.
func (li *LineIndex) LineColFor(offset int) LineCol {
	if offset < 0 {
		offset = 0
	}
	if offset > len(li.text) {
		offset = len(li.text)
	}
	// last lineStarts[i] <= offset
	i := sort.Search(len(li.lineStarts), func(i int) bool {
		return li.lineStarts[i] > offset
	})
	line := i // i is count of starts <= offset, 1-based line number directly
	lineStart := li.lineStarts[line-1]
	column := offset - lineStart + 1
	return LineCol{Line: line, Column: column}
}

// OffsetFor converts a 1-based line/column pair back to a byte offset. It
// reports ok=false, with no offset, when the line or column falls outside
// the indexed text rather than clamping into a misleading nearby position.
func (li *LineIndex) OffsetFor(lc LineCol) (offset int, ok bool) {
	line := lc.Line
	if line < 1 || line > len(li.lineStarts) {
		return 0, false
	}
	lineStart := li.lineStarts[line-1]
	lineEnd := len(li.text)
	if line < len(li.lineStarts) {
		lineEnd = li.lineStarts[line] - 1
		if lineEnd < lineStart {
			lineEnd = lineStart
		}
	}
	if lc.Column < 1 {
		return 0, false
	}
	offset = lineStart + (lc.Column - 1)
	if offset > lineEnd {
		return 0, false
	}
	return offset, true
}

// LineCount returns the number of lines in the indexed text.
func (li *LineIndex) LineCount() int {
	return len(li.lineStarts)
}
