package sourcemap

import "testing"

func TestMapToSourceOffset(t *testing.T) {
	m := New()
	m.AddSimple(0, 100, 10)
	m.AddSimple(20, 200, 10)

	if got, ok := m.ToSourceOffset(5); !ok || got != 105 {
		t.Errorf("ToSourceOffset(5) = (%d, %v), want (105, true)", got, ok)
	}
	if got, ok := m.ToSourceOffset(25); !ok || got != 205 {
		t.Errorf("ToSourceOffset(25) = (%d, %v), want (205, true)", got, ok)
	}
	if _, ok := m.ToSourceOffset(15); ok {
		t.Errorf("ToSourceOffset(15) should miss the gap between mappings")
	}
}

func TestMapScalesProportionally(t *testing.T) {
	m := New()
	// 3 generated bytes map to 13 source bytes, so offsets scale by 13/3
	m.Add(Mapping{GeneratedOffset: 0, GeneratedLength: 3, SourceOffset: 50, SourceLength: 13})

	got, ok := m.ToSourceOffset(1)
	if !ok {
		t.Fatalf("expected mapping to be found")
	}
	want := 50 + (1 * 13 / 3)
	if got != want {
		t.Errorf("ToSourceOffset(1) = %d, want %d", got, want)
	}
}

func TestBuilderPushMapped(t *testing.T) {
	b := NewBuilder()
	b.PushString("const x = ")
	b.PushMapped("value", 50)
	b.PushString(";")

	code, m := b.Finish()
	if code != "const x = value;" {
		t.Fatalf("code = %q, want %q", code, "const x = value;")
	}
	if got, ok := m.ToSourceOffset(10); !ok || got != 50 {
		t.Errorf("ToSourceOffset(10) = (%d, %v), want (50, true)", got, ok)
	}
}

func TestBuilderPushWithMapping(t *testing.T) {
	b := NewBuilder()
	b.PushWithMapping("__VLS_ctx.foo", 12, 3)

	if got, ok := b.SourceMap().ToSourceOffset(0); !ok || got != 12 {
		t.Errorf("ToSourceOffset(0) = (%d, %v), want (12, true)", got, ok)
	}
}

func TestMapMerge(t *testing.T) {
	a := New()
	a.AddSimple(0, 0, 5)
	other := New()
	other.AddSimple(10, 10, 5)

	a.Merge(other)
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
	if got, ok := a.ToSourceOffset(12); !ok || got != 12 {
		t.Errorf("ToSourceOffset(12) after merge = (%d, %v), want (12, true)", got, ok)
	}
}
