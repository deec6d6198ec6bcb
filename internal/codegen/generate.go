package codegen

import (
	"github.com/vuetsc/compiler/internal/component"
	"github.com/vuetsc/compiler/internal/sourcemap"
	"github.com/vuetsc/compiler/internal/template"
)

// Result is what one Generate call produces: the synthetic source, the
// map tying it back to the original component file, and the detected
// script language the orchestrator needs to pick a virtual file extension.
type Result struct {
	Code     string
	Map      *sourcemap.Map
	Language component.ScriptLang

	// Components and Directives are every component tag and directive
	// name the template walk encountered, for a caller that wants to
	// know a file's registry surface without re-walking the tree.
	Components []string
	Directives []string
}

// Generate emits a synthetic TypeScript/JavaScript file for c. tmpl may be
// nil (a component with no template still produces a valid, standalone
// synthetic file). Generate is a pure function of its arguments: it
// allocates a fresh Context and never mutates c or tmpl.
func Generate(c *component.Component, tmpl *template.Ast, opts Options) Result {
	ctx := NewContext(opts)
	ctx.Lang = detectScriptLang(c)

	b := sourcemap.NewBuilder()
	generatePreamble(b)

	if c.Script != nil {
		generateScript(b, c.Script)
	}
	if c.ScriptSetup != nil {
		generateScriptSetup(b, c.ScriptSetup, ctx)
		for _, name := range ctx.Macros.Exposed {
			ctx.AddVar(name, VarSetup)
		}
	}
	if tmpl != nil {
		generateTemplate(b, tmpl, ctx)
	}

	generateComponentExport(b, c, ctx)

	code, m := b.Finish()
	return Result{
		Code:       code,
		Map:        m,
		Language:   ctx.Lang,
		Components: ctx.UsedComponents(),
		Directives: ctx.UsedDirectives(),
	}
}

// detectScriptLang follows the precedence the spec lays out: script
// setup's lang wins over the plain script block's, and anything
// unrecognized falls back to plain JS.
func detectScriptLang(c *component.Component) component.ScriptLang {
	langStr := "js"
	if c.ScriptSetup != nil && c.ScriptSetup.Lang != "" {
		langStr = c.ScriptSetup.Lang
	} else if c.Script != nil && c.Script.Lang != "" {
		langStr = c.Script.Lang
	}
	lang, _ := component.ParseScriptLang(langStr)
	return lang
}
