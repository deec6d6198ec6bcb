package codegen

import (
	"github.com/vuetsc/compiler/internal/sourcemap"
	"github.com/vuetsc/compiler/internal/template"
)

// generateTemplate emits the __VLS_template function: a typed context
// object followed by one type-checking stanza per template node. Nothing
// it emits has any runtime effect; every stanza is either a declaration or
// a discarded expression statement.
func generateTemplate(b *sourcemap.Builder, ast *template.Ast, ctx *Context) {
	b.PushString("\nfunction " + nameTemplate + "() {\n")
	b.PushString("  const " + nameCtx + " = {} as __VLS_TemplateContext & {\n")
	b.PushString("    $props: typeof " + nameProps + ";\n")
	b.PushString("    $emit: typeof " + nameEmit + ";\n")
	b.PushString("  };\n\n")

	for _, child := range ast.Children {
		generateNode(b, child, ctx, 1)
	}

	b.PushString("}\n")
}

func indent(n int) string {
	s := make([]byte, 0, n*2)
	for i := 0; i < n; i++ {
		s = append(s, ' ', ' ')
	}
	return string(s)
}

func generateNode(b *sourcemap.Builder, node template.Node, ctx *Context, depth int) {
	switch n := node.(type) {
	case *template.Element:
		generateElement(b, n, ctx, depth)
	case *template.Interpolation:
		generateInterpolation(b, n, ctx, depth)
	case *template.If:
		generateIf(b, n, ctx, depth)
	case *template.For:
		generateFor(b, n, ctx, depth)
	case *template.SlotOutlet:
		generateSlotOutlet(b, n, ctx, depth)
	case *template.TemplateHost:
		generateTemplateHost(b, n, ctx, depth)
	case *template.Text, *template.Comment:
		// No type information to check.
	}
}

func generateElement(b *sourcemap.Builder, el *template.Element, ctx *Context, depth int) {
	ind := indent(depth)

	for _, d := range el.Directives {
		ctx.UseDirective(d.Name)
	}

	if el.IsComponent {
		ctx.UseComponent(el.Tag)

		b.PushString(ind + "{\n")
		b.PushString(ind + "  const " + nameComponent + "_" + ctx.UniqueID("c") +
			" = __VLS_resolveComponent('" + el.Tag + "');\n")

		generatePropsCheck(b, el.Props, ctx, depth+1)
		generateEventsCheck(b, el.Events, ctx, depth+1)

		b.PushString(ind + "}\n")
	} else if isHTMLTag(el.Tag) || isSVGTag(el.Tag) {
		b.PushString(ind + "{\n")
		generatePropsCheck(b, el.Props, ctx, depth+1)
		generateEventsCheck(b, el.Events, ctx, depth+1)
		b.PushString(ind + "}\n")
	}

	for _, child := range el.Children {
		generateNode(b, child, ctx, depth)
	}
}

func generatePropsCheck(b *sourcemap.Builder, props []template.Prop, ctx *Context, depth int) {
	ind := indent(depth)
	for _, p := range props {
		b.PushString(ind + "// prop: " + p.Name + "\n")
		b.PushString(ind + "(")
		generateExpression(b, p.Value, ctx)
		b.PushString(");\n")
	}
}

func generateEventsCheck(b *sourcemap.Builder, events []template.EventListener, ctx *Context, depth int) {
	ind := indent(depth)
	for _, e := range events {
		b.PushString(ind + "// event: " + e.Name + "\n")
		b.PushString(ind + "(")
		generateExpression(b, e.Handler, ctx)
		b.PushString(");\n")
	}
}

func generateInterpolation(b *sourcemap.Builder, interp *template.Interpolation, ctx *Context, depth int) {
	ind := indent(depth)
	b.PushString(ind + "(")
	generateExpression(b, interp.Expression, ctx)
	b.PushString(");\n")
}

func generateIf(b *sourcemap.Builder, ifNode *template.If, ctx *Context, depth int) {
	ind := indent(depth)
	for i, branch := range ifNode.Branches {
		generateIfBranch(b, branch, ctx, depth, i == 0)
	}
	b.PushString(ind + "}\n")
}

func generateIfBranch(b *sourcemap.Builder, branch template.IfBranch, ctx *Context, depth int, isFirst bool) {
	ind := indent(depth)
	switch {
	// A bare v-else (the "no sibling chaining" design lifts it into its
	// own single-branch If, so this is the common case, not just a
	// first-branch-only oddity) has no condition to guard with; emit a
	// plain block instead of "if ()", which isn't valid syntax.
	case branch.Condition == nil && isFirst:
		b.PushString(ind + "{\n")
	case branch.Condition == nil:
		b.PushString(ind + "} else {\n")
	case isFirst:
		b.PushString(ind + "if (")
		generateExpression(b, *branch.Condition, ctx)
		b.PushString(") {\n")
	default:
		b.PushString(ind + "} else if (")
		generateExpression(b, *branch.Condition, ctx)
		b.PushString(") {\n")
	}
	for _, child := range branch.Children {
		generateNode(b, child, ctx, depth+1)
	}
}

func generateFor(b *sourcemap.Builder, f *template.For, ctx *Context, depth int) {
	ind := indent(depth)
	marker := ctx.EnterScope()

	b.PushString(ind + "for (const [")
	ctx.AddVar(f.Value.Pattern, VarFor)
	b.PushString(f.Value.Pattern)

	if f.Key != nil {
		ctx.AddVar(f.Key.Pattern, VarFor)
		b.PushString(", " + f.Key.Pattern)
	}
	if f.Index != nil {
		ctx.AddVar(f.Index.Pattern, VarFor)
		b.PushString(", " + f.Index.Pattern)
	}

	b.PushString("] of __VLS_getVForSourceType(")
	generateExpression(b, f.Source, ctx)
	b.PushString(")) {\n")

	for _, child := range f.Children {
		generateNode(b, child, ctx, depth+1)
	}

	b.PushString(ind + "}\n")
	ctx.ExitScope(marker)
}

func generateSlotOutlet(b *sourcemap.Builder, slot *template.SlotOutlet, ctx *Context, depth int) {
	ind := indent(depth)
	b.PushString(ind + nameCtx + ".$slots[")
	generateExpression(b, slot.Name, ctx)
	b.PushString("]?.({\n")

	for _, p := range slot.Props {
		b.PushString(ind + "  " + p.Name + ": ")
		generateExpression(b, p.Value, ctx)
		b.PushString(",\n")
	}

	b.PushString(ind + "});\n")

	for _, child := range slot.Fallback {
		generateNode(b, child, ctx, depth)
	}
}

func generateTemplateHost(b *sourcemap.Builder, host *template.TemplateHost, ctx *Context, depth int) {
	marker := ctx.EnterScope()
	if slotDir := findDirective(host.Directives, "slot"); slotDir != nil && slotDir.Value != nil {
		for _, name := range extractBindingNames(slotDir.Value.Content) {
			ctx.AddVar(name, VarSlotProps)
		}
	}
	for _, child := range host.Children {
		generateNode(b, child, ctx, depth)
	}
	ctx.ExitScope(marker)
}

func findDirective(dirs []template.Directive, name string) *template.Directive {
	for i := range dirs {
		if dirs[i].Name == name {
			return &dirs[i]
		}
	}
	return nil
}

func generateExpression(b *sourcemap.Builder, expr template.Expression, ctx *Context) {
	wrapped := wrapExpressionIdentifiers(expr.Content, ctx)
	b.PushWithMapping(wrapped, expr.Span.Start, expr.Span.Len())
}
