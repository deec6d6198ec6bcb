package codegen

import (
	"github.com/vuetsc/compiler/internal/component"
	"github.com/vuetsc/compiler/internal/helpers"
	"github.com/vuetsc/compiler/internal/sourcemap"
)

// generateScriptSetup emits the __VLS_setup wrapper: macro declarations,
// the setup content copied verbatim, and a return object exposing every
// binding the template may reference unwrapped. Macro text is extracted
// from a comment-stripped copy of the content so a macro name mentioned
// inside a comment is never mistaken for a real call; the verbatim copy
// that follows still uses the original content, comments included.
func generateScriptSetup(b *sourcemap.Builder, setup *component.ScriptSetupBlock, ctx *Context) {
	if setup.HasGeneric {
		ctx.Generics = setup.Generic
		ctx.HasGeneric = true
	}

	scanned := setup.Content
	if stripped, err := helpers.RemoveComments(setup.Content); err == nil {
		scanned = stripped
	}
	ctx.Macros = ExtractMacros(scanned)
	ctx.Macros.Exposed = setupScopeBindings(ctx.Macros, collectTopLevelBindings(scanned))

	if ctx.HasGeneric {
		b.PushString("function " + nameSetup + "<" + ctx.Generics + ">() {\n")
	} else {
		b.PushString("function " + nameSetup + "() {\n")
	}

	generateMacroDeclarations(b, ctx.Macros)

	b.PushMapped(setup.Content, setup.ContentSpan.Start)
	b.Newline()

	b.PushString("\nreturn {\n")
	for _, name := range ctx.Macros.Exposed {
		b.PushString("  " + name + ",\n")
	}
	b.PushString("};\n")
	b.PushString("}\n\n")
}

func generateMacroDeclarations(b *sourcemap.Builder, macros MacroInfo) {
	if p := macros.DefineProps; p != nil {
		b.PushString("const " + nameProps + " = defineProps")
		if p.HasTypeArg {
			b.PushString("<" + p.TypeArg + ">")
		}
		b.PushString("();\n")
		if p.HasDestructure {
			b.PushString("const " + p.DestructurePattern + " = " + nameProps + ";\n")
		}
	}

	if e := macros.DefineEmits; e != nil {
		b.PushString("const " + nameEmit + " = defineEmits")
		if e.HasTypeArg {
			b.PushString("<" + e.TypeArg + ">")
		}
		b.PushString("();\n")
	}

	if s := macros.DefineSlots; s != nil {
		b.PushString("const " + nameSlots + " = defineSlots")
		if s.HasTypeArg {
			b.PushString("<" + s.TypeArg + ">")
		}
		b.PushString("();\n")
	}

	for _, m := range macros.DefineModels {
		b.PushString("const " + m.Name + " = defineModel")
		if m.HasTypeArg {
			b.PushString("<" + m.TypeArg + ">")
		}
		b.PushString("(")
		if m.Name != "modelValue" {
			b.PushString("'" + m.Name + "'")
		}
		b.PushString(");\n")
	}

	if e := macros.DefineExpose; e != nil {
		b.PushString("defineExpose(" + e.Expression + ");\n")
	}
}
