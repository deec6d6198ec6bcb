package loc

import "testing"

func TestLineIndexRoundTrip(t *testing.T) {
	text := "line one\nline two\nline three"
	li := NewLineIndex(text)

	if got := li.LineCount(); got != 3 {
		t.Fatalf("LineCount() = %d, want 3", got)
	}

	cases := []struct {
		offset int
		want   LineCol
	}{
		{0, LineCol{1, 1}},
		{8, LineCol{1, 9}},
		{9, LineCol{2, 1}},
		{18, LineCol{3, 1}},
		{len(text), LineCol{3, 11}},
	}
	for _, c := range cases {
		if got := li.LineColFor(c.offset); got != c.want {
			t.Errorf("LineColFor(%d) = %+v, want %+v", c.offset, got, c.want)
		}
		if got, ok := li.OffsetFor(c.want); !ok || got != c.offset {
			t.Errorf("OffsetFor(%+v) = (%d, %v), want %d", c.want, got, ok, c.offset)
		}
	}
}

func TestLineIndexClamps(t *testing.T) {
	li := NewLineIndex("abc")
	if got := li.LineColFor(-5); got != (LineCol{1, 1}) {
		t.Errorf("negative offset clamps to %+v, got %+v", LineCol{1, 1}, got)
	}
	if got := li.LineColFor(1000); got != (LineCol{1, 4}) {
		t.Errorf("past-end offset clamps to end, got %+v", got)
	}
}

func TestOffsetForRejectsOutOfRange(t *testing.T) {
	li := NewLineIndex("line one\nline two")
	cases := []LineCol{
		{0, 1},
		{1, 0},
		{3, 1},
		{1, 100},
	}
	for _, lc := range cases {
		if _, ok := li.OffsetFor(lc); ok {
			t.Errorf("OffsetFor(%+v) should report ok=false, not clamp", lc)
		}
	}
}

func TestSpanLenAndContains(t *testing.T) {
	s := Span{Start: 5, End: 10}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
	if !s.Contains(5) || !s.Contains(9) {
		t.Errorf("Contains should include [5,10)")
	}
	if s.Contains(10) || s.Contains(4) {
		t.Errorf("Contains should exclude boundary and before-start")
	}
}

func TestRangeEndAndSpan(t *testing.T) {
	r := Range{Loc: Loc{Start: 3}, Len: 4}
	if r.End() != 7 {
		t.Errorf("End() = %d, want 7", r.End())
	}
	if got := r.Span(); got != (Span{Start: 3, End: 7}) {
		t.Errorf("Span() = %+v, want {3 7}", got)
	}
}
