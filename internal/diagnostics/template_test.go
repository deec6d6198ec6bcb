package diagnostics

import (
	"testing"

	"github.com/vuetsc/compiler/internal/loc"
	"github.com/vuetsc/compiler/internal/template"
)

func checkSource(t *testing.T, src string, opts Options) []loc.Diagnostic {
	t.Helper()
	ast, errs := template.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	return CheckTemplate(ast, opts)
}

func TestInvalidVModelOnPlainElement(t *testing.T) {
	diags := checkSource(t, `<div v-model="x"></div>`, DefaultOptions())
	if len(diags) != 1 || diags[0].Code != loc.WARNING_INVALID_V_MODEL {
		t.Fatalf("diags = %+v, want one WARNING_INVALID_V_MODEL", diags)
	}
}

func TestInvalidVModelOnHyphenatedBuiltin(t *testing.T) {
	// transition-group/keep-alive are built-ins, not components, even
	// though their names contain a hyphen; v-model is invalid on both.
	for _, tag := range []string{"transition-group", "keep-alive"} {
		diags := checkSource(t, `<`+tag+` v-model="x"></`+tag+`>`, DefaultOptions())
		if len(diags) != 1 || diags[0].Code != loc.WARNING_INVALID_V_MODEL {
			t.Errorf("tag %s: diags = %+v, want one WARNING_INVALID_V_MODEL", tag, diags)
		}
	}
}

func TestValidVModelOnFormControlsAndComponents(t *testing.T) {
	cases := []string{
		`<input v-model="x" />`,
		`<select v-model="x"></select>`,
		`<textarea v-model="x"></textarea>`,
		`<MyWidget v-model="x"></MyWidget>`,
		`<my-widget v-model="x"></my-widget>`,
	}
	for _, src := range cases {
		diags := checkSource(t, src, DefaultOptions())
		if len(diags) != 0 {
			t.Errorf("src %q: diags = %+v, want none", src, diags)
		}
	}
}
