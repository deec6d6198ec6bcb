// Package sourcemap tracks bidirectional mappings between the synthetic TSX
// emitted by the code generator and the original component source, and
// provides the CodeBuilder the generator uses to build that output while
// recording mappings as it goes. It is deliberately independent of any
// wire format (no Base64 VLQ): the diagnostic remapper consumes it
// in-process, so there is no need to serialize it the way a browser
// devtools source map would.
package sourcemap

import (
	"sort"

	"github.com/vuetsc/compiler/internal/loc"
)

// Mapping records that generatedLength bytes starting at GeneratedOffset in
// the synthetic output correspond to SourceLength bytes starting at
// SourceOffset in the original component file.
type Mapping struct {
	GeneratedOffset int
	GeneratedLength int
	SourceOffset    int
	SourceLength    int
}

// GeneratedSpan returns the span this mapping covers in the generated text.
func (m Mapping) GeneratedSpan() loc.Span {
	return loc.Span{Start: m.GeneratedOffset, End: m.GeneratedOffset + m.GeneratedLength}
}

// SourceSpan returns the span this mapping covers in the original text.
func (m Mapping) SourceSpan() loc.Span {
	return loc.Span{Start: m.SourceOffset, End: m.SourceOffset + m.SourceLength}
}

// Map holds every mapping produced for one generated file, kept sorted by
// GeneratedOffset so lookups can binary search.
type Map struct {
	mappings []Mapping
}

// New returns an empty source map.
func New() *Map {
	return &Map{}
}

// Add inserts a mapping in sorted order by generated offset.
func (m *Map) Add(mapping Mapping) {
	pos := sort.Search(len(m.mappings), func(i int) bool {
		return m.mappings[i].GeneratedOffset >= mapping.GeneratedOffset
	})
	m.mappings = append(m.mappings, Mapping{})
	copy(m.mappings[pos+1:], m.mappings[pos:])
	m.mappings[pos] = mapping
}

// AddSimple adds a mapping where the generated and source lengths are equal.
func (m *Map) AddSimple(generatedOffset, sourceOffset, length int) {
	m.Add(Mapping{
		GeneratedOffset: generatedOffset,
		GeneratedLength: length,
		SourceOffset:    sourceOffset,
		SourceLength:    length,
	})
}

// FindMapping returns the mapping covering generatedOffset, if any. Ties
// where the offset sits exactly on the boundary between two mappings prefer
// the one whose span contains it.
func (m *Map) FindMapping(generatedOffset int) (Mapping, bool) {
	idx := sort.Search(len(m.mappings), func(i int) bool {
		mm := m.mappings[i]
		return mm.GeneratedOffset+mm.GeneratedLength > generatedOffset
	})
	if idx < len(m.mappings) {
		mm := m.mappings[idx]
		if mm.GeneratedOffset <= generatedOffset && generatedOffset < mm.GeneratedOffset+mm.GeneratedLength {
			return mm, true
		}
	}
	return Mapping{}, false
}

// ToSourceOffset maps a generated offset back to a source offset, scaling
// the within-mapping delta proportionally when the generated and source
// lengths of the covering mapping differ (this happens when an identifier
// is wrapped, e.g. "foo" -> "__VLS_ctx.foo").
func (m *Map) ToSourceOffset(generatedOffset int) (int, bool) {
	mapping, ok := m.FindMapping(generatedOffset)
	if !ok {
		return 0, false
	}
	delta := generatedOffset - mapping.GeneratedOffset
	switch {
	case mapping.GeneratedLength == mapping.SourceLength:
		return mapping.SourceOffset + delta, true
	case mapping.GeneratedLength > 0:
		return mapping.SourceOffset + (delta * mapping.SourceLength / mapping.GeneratedLength), true
	default:
		return mapping.SourceOffset, true
	}
}

// Mappings returns every mapping, sorted by generated offset. The returned
// slice must not be mutated.
func (m *Map) Mappings() []Mapping {
	return m.mappings
}

// IsEmpty reports whether the map has no mappings.
func (m *Map) IsEmpty() bool {
	return len(m.mappings) == 0
}

// Len returns the number of mappings.
func (m *Map) Len() int {
	return len(m.mappings)
}

// Merge appends every mapping from other into m, preserving sort order.
func (m *Map) Merge(other *Map) {
	for _, mm := range other.mappings {
		m.Add(mm)
	}
}

// Builder accumulates synthetic output text and the Map describing how it
// relates to the original source, the way the template compiler and code
// generator build up the synthetic TSX one fragment at a time.
type Builder struct {
	code strBuf
	m    *Map
}

// strBuf is a minimal growable byte buffer; kept distinct from
// strings.Builder only so Offset() can read Len() without an extra import.
type strBuf struct {
	b []byte
}

func (s *strBuf) WriteString(str string) {
	s.b = append(s.b, str...)
}

func (s *strBuf) Len() int {
	return len(s.b)
}

func (s *strBuf) String() string {
	return string(s.b)
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{m: New()}
}

// Offset returns the current length of the generated code, i.e. where the
// next write will land.
func (b *Builder) Offset() int {
	return b.code.Len()
}

// PushString appends code with no mapping recorded (helper preambles,
// punctuation, structural TSX scaffolding).
func (b *Builder) PushString(code string) {
	b.code.WriteString(code)
}

// PushMapped appends code and records a mapping of equal generated/source
// length back to sourceOffset in the original file.
func (b *Builder) PushMapped(code string, sourceOffset int) {
	generatedOffset := b.Offset()
	length := len(code)
	b.code.WriteString(code)
	if length > 0 {
		b.m.AddSimple(generatedOffset, sourceOffset, length)
	}
}

// PushWithMapping appends code and records a mapping whose source span may
// differ in length from the generated span, e.g. wrapping "foo" as
// "__VLS_ctx.foo" still maps the whole generated span back to the three
// source bytes "foo".
func (b *Builder) PushWithMapping(code string, sourceOffset, sourceLength int) {
	generatedOffset := b.Offset()
	generatedLength := len(code)
	b.code.WriteString(code)
	if generatedLength > 0 || sourceLength > 0 {
		b.m.Add(Mapping{
			GeneratedOffset: generatedOffset,
			GeneratedLength: generatedLength,
			SourceOffset:    sourceOffset,
			SourceLength:    sourceLength,
		})
	}
}

// Newline appends a single '\n' with no mapping.
func (b *Builder) Newline() {
	b.code.WriteString("\n")
}

// Code returns the generated text accumulated so far.
func (b *Builder) Code() string {
	return b.code.String()
}

// SourceMap returns the map built so far.
func (b *Builder) SourceMap() *Map {
	return b.m
}

// Finish consumes the builder, returning the final code and its map.
func (b *Builder) Finish() (string, *Map) {
	return b.code.String(), b.m
}
