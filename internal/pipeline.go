// Package compiler ties the four pipeline stages together: component
// parsing, template compilation, code generation, and the pure Vue
// diagnostics pass. It is the library surface cmd/vuetsc and any future
// embedder import; everything underneath is a subpackage these functions
// wire up, never reimplement.
package compiler

import (
	"github.com/vuetsc/compiler/internal/codegen"
	"github.com/vuetsc/compiler/internal/component"
	"github.com/vuetsc/compiler/internal/diagnostics"
	"github.com/vuetsc/compiler/internal/loc"
	"github.com/vuetsc/compiler/internal/sourcemap"
	"github.com/vuetsc/compiler/internal/template"
)

// templateErrorCode maps a recoverable template parse error to the
// closed diagnostic enum so it can sit alongside the rest of Result's
// Diagnostics rather than as a second, differently-shaped error channel.
func templateErrorCode(code template.ParseErrorCode) loc.DiagnosticCode {
	switch code {
	case template.ErrInvalidVFor:
		return loc.ERROR_INVALID_V_FOR
	default:
		return loc.ERROR_UNEXPECTED_TOKEN
	}
}

// Options configures one Check call. Filename feeds component-name
// derivation and strict-mode/target selection feeds code generation;
// KnownComponents/KnownDirectives gate the two registry-dependent
// template checks the same way diagnostics.Options does.
type Options struct {
	Filename        string
	Target          codegen.VueTarget
	Strict          bool
	KnownComponents []string
	KnownDirectives []string
}

// Result is everything one Check call produces: the synthetic file a type
// checker would run against, the source map back to the original, the
// detected script language, and every diagnostic the pipeline could
// produce without invoking that type checker.
type Result struct {
	Code        string
	Map         *sourcemap.Map
	Language    component.ScriptLang
	Diagnostics []loc.Diagnostic

	// UsedComponents and UsedDirectives are every component tag and
	// directive name the template referenced, passed through from
	// codegen so an orchestrator building a known-components registry
	// across a workspace doesn't need to re-walk the template itself.
	UsedComponents []string
	UsedDirectives []string
}

// Check runs a component source file through every local pipeline stage:
// parse, compile the template (if any), generate the synthetic file, and
// collect the component- and template-level diagnostics. It never invokes
// an external type checker; that is internal/tscheck's job, layered on
// top of this function's Result.
//
// component.Parse and template.ParseAt both recover from every error they
// can (a duplicate block keeps its first occurrence, a malformed v-for
// drops the directive and keeps the element) rather than aborting, so
// Check always runs codegen and diagnostics against whatever they
// recovered and returns a populated Result alongside the accumulated
// component-level errors; template errors are folded into Result's own
// Diagnostics instead of a third return value.
func Check(source string, opts Options) (Result, []*component.ParseError) {
	c, parseErrs := component.Parse(source)

	var tmpl *template.Ast
	var templateErrs []*template.ParseError
	if c.Template != nil {
		tmpl, templateErrs = template.ParseAt(c.Template.Content, c.Template.ContentSpan.Start)
	}

	genOpts := codegen.Options{Target: opts.Target, Strict: opts.Strict, Filename: opts.Filename}
	gen := codegen.Generate(c, tmpl, genOpts)

	name := componentNameFromFilename(opts.Filename)

	var diags []loc.Diagnostic
	diags = append(diags, diagnostics.CheckComponent(c, name)...)
	diags = append(diags, diagnostics.CheckStyles(c)...)
	for _, e := range templateErrs {
		diags = append(diags, loc.Diagnostic{Code: templateErrorCode(e.Code), Message: e.Message, Span: e.Span})
	}
	if tmpl != nil {
		diagOpts := diagnostics.Options{
			KnownComponents:        opts.KnownComponents,
			KnownDirectives:        opts.KnownDirectives,
			CheckUnknownComponents: len(opts.KnownComponents) > 0,
			CheckUnknownDirectives: len(opts.KnownDirectives) > 0,
			CheckForKeys:           true,
		}
		diags = append(diags, diagnostics.CheckTemplate(tmpl, diagOpts)...)
	}

	return Result{
		Code:           gen.Code,
		Map:            gen.Map,
		Language:       gen.Language,
		Diagnostics:    diags,
		UsedComponents: gen.Components,
		UsedDirectives: gen.Directives,
	}, parseErrs
}
