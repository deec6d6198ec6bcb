package remap

import (
	"testing"

	"github.com/vuetsc/compiler/internal/sourcemap"
)

func TestRemapRoundTrip(t *testing.T) {
	original := "const msg = ref('Hello')\n"
	// Pretend the generator copied "msg" at original offset 6 into the
	// synthetic file's line 2, wrapped as "__VLS_ctx.msg".
	synthetic := "line one\n(__VLS_ctx.msg);\n"

	m := sourcemap.New()
	// generated span covers "__VLS_ctx.msg" starting right after "(" on line 2
	genStart := len("line one\n(")
	m.Add(sourcemap.Mapping{
		GeneratedOffset: genStart,
		GeneratedLength: len("__VLS_ctx.msg"),
		SourceOffset:    6,
		SourceLength:    len("msg"),
	})

	r := New()
	r.Register("virtual.ts", "component.vue", synthetic, m, original)

	d := Diagnostic{
		File:    "virtual.ts",
		Line:    2,
		Column:  2, // right after "(" -> start of "__VLS_ctx.msg"
		Message: "some type error",
		Code:    2322,
	}

	out, ok := r.Remap(d)
	if !ok {
		t.Fatalf("expected remap to succeed")
	}
	if out.File != "component.vue" {
		t.Errorf("expected component.vue, got %s", out.File)
	}
	if out.Line != 1 || out.Column != 7 {
		t.Errorf("expected line 1 col 7 (start of msg), got line %d col %d", out.Line, out.Column)
	}
}

func TestRemapDiscardsUncoveredOffset(t *testing.T) {
	m := sourcemap.New()
	r := New()
	r.Register("virtual.ts", "component.vue", "nothing mapped here\n", m, "original\n")

	_, ok := r.Remap(Diagnostic{File: "virtual.ts", Line: 1, Column: 1})
	if ok {
		t.Errorf("expected remap to discard an uncovered offset")
	}
}

func TestRemapDiscardsOutOfRangePosition(t *testing.T) {
	m := sourcemap.New()
	m.Add(sourcemap.Mapping{GeneratedOffset: 0, GeneratedLength: 4, SourceOffset: 0, SourceLength: 4})
	r := New()
	r.Register("virtual.ts", "component.vue", "line\n", m, "orig\n")

	// A stale tsc run reporting a line far past the synthetic file's end
	// must be discarded, not clamped into a plausible-looking offset.
	_, ok := r.Remap(Diagnostic{File: "virtual.ts", Line: 99, Column: 1})
	if ok {
		t.Errorf("expected remap to discard an out-of-range line/column")
	}
}

func TestRemapDiscardsUnregisteredFile(t *testing.T) {
	r := New()
	_, ok := r.Remap(Diagnostic{File: "unknown.ts", Line: 1, Column: 1})
	if ok {
		t.Errorf("expected remap to discard an unregistered synthetic file")
	}
}
