package diagnostics

import (
	"testing"

	"github.com/vuetsc/compiler/internal/component"
	"github.com/vuetsc/compiler/internal/loc"
)

func TestCheckStylesOnlyEverReturnsStyleSyntaxWarnings(t *testing.T) {
	src := "<style>\n.card {\n  color: red;\n</style>\n"
	c, errs := component.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	diags := CheckStyles(c)
	for _, d := range diags {
		if d.Code != loc.WARNING_STYLE_SYNTAX {
			t.Errorf("expected only WARNING_STYLE_SYNTAX from CheckStyles, got %v", d)
		}
	}
}

func TestCheckStylesIgnoresPreprocessorDialects(t *testing.T) {
	src := "<style lang=\"scss\">\n.card { color: $brand; &:hover { color: red } }\n</style>\n"
	c, errs := component.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	diags := CheckStyles(c)
	if len(diags) != 0 {
		t.Errorf("expected scss styles to be skipped entirely, got %v", diags)
	}
}

func TestCheckStylesAcceptsValidCSS(t *testing.T) {
	src := "<style scoped>\n.card { color: red; }\n</style>\n"
	c, errs := component.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	diags := CheckStyles(c)
	if len(diags) != 0 {
		t.Errorf("expected no diagnostics for valid css, got %v", diags)
	}
}
