package tscheck

import "testing"

func TestParseOutputParsesTscLine(t *testing.T) {
	output := "src/main.ts(10,5): error TS2322: Type 'string' is not assignable to type 'number'.\n"
	diags := ParseOutput(output)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	d := diags[0]
	if d.File != "src/main.ts" || d.Line != 10 || d.Column != 5 || d.Code != 2322 {
		t.Errorf("unexpected diagnostic: %+v", d)
	}
	if d.Severity != SeverityError {
		t.Errorf("expected SeverityError, got %v", d.Severity)
	}
}

func TestParseOutputSkipsUnrecognizedLines(t *testing.T) {
	output := "Found 2 errors.\nsrc/a.ts(1,1): warning TS1000: something minor.\n"
	diags := ParseOutput(output)
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %+v", len(diags), diags)
	}
	if diags[0].Severity != SeverityWarning {
		t.Errorf("expected SeverityWarning, got %v", diags[0].Severity)
	}
}
