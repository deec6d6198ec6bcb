package codegen

import (
	"github.com/vuetsc/compiler/internal/component"
	"github.com/vuetsc/compiler/internal/sourcemap"
)

// generateComponentExport emits the final `export default` the synthetic
// file needs so a type checker can resolve the component's own shape.
// When a setup block exists, the export pulls its inferred props/emits
// types; a plain script's own export default already survived via the
// verbatim copy in generateScript, so nothing further is emitted besides
// a marker comment; with neither block, an empty component is exported so
// the file still type-checks standalone.
func generateComponentExport(b *sourcemap.Builder, c *component.Component, ctx *Context) {
	b.PushString("\n// Component definition\n")

	switch {
	case c.HasScriptSetup():
		b.PushString("export default __VLS_defineComponent({\n")
		if ctx.Macros.DefineProps != nil {
			b.PushString("  props: {} as __VLS_ExtractPropTypes<typeof " + nameProps + ">,\n")
		}
		if ctx.Macros.DefineEmits != nil {
			b.PushString("  emits: {} as typeof " + nameEmit + ",\n")
		}
		b.PushString("  setup: " + nameSetup + ",\n")
		b.PushString("});\n")
	case c.Script != nil:
		if isOptionsAPI(c.Script.Content) {
			b.PushString("// Using Options API component\n")
		} else {
			b.PushString("// Script-only component, export default carried by the script block above\n")
		}
	default:
		b.PushString("export default __VLS_defineComponent({});\n")
	}
}
