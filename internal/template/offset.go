package template

import "github.com/vuetsc/compiler/internal/loc"

// ParseAt compiles template source the same way Parse does, then
// translates every span in the resulting tree (and every recorded error's
// span) by origin bytes so they refer to positions in the original
// component file rather than to the <template> block's own content. The
// component parser hands the template compiler only the block's content
// string; origin is that block's content span start.
func ParseAt(source string, origin int) (*Ast, []*ParseError) {
	ast, errs := Parse(source)
	if origin == 0 {
		return ast, errs
	}
	ast.Span = shiftSpan(ast.Span, origin)
	for _, c := range ast.Children {
		shiftNode(c, origin)
	}
	for _, e := range errs {
		e.Span = shiftSpan(e.Span, origin)
	}
	return ast, errs
}

func shiftSpan(s loc.Span, delta int) loc.Span {
	return loc.Span{Start: s.Start + delta, End: s.End + delta}
}

func shiftExpr(e Expression, delta int) Expression {
	e.Span = shiftSpan(e.Span, delta)
	return e
}

func shiftAttrs(attrs []Attribute, delta int) {
	for i := range attrs {
		attrs[i].Span = shiftSpan(attrs[i].Span, delta)
		if attrs[i].HasValue {
			attrs[i].ValueSpan = shiftSpan(attrs[i].ValueSpan, delta)
		}
	}
}

func shiftDirectives(dirs []Directive, delta int) {
	for i := range dirs {
		dirs[i].Span = shiftSpan(dirs[i].Span, delta)
		if dirs[i].Arg != nil {
			dirs[i].Arg.Span = shiftSpan(dirs[i].Arg.Span, delta)
			if dirs[i].Arg.Dynamic != nil {
				shifted := shiftExpr(*dirs[i].Arg.Dynamic, delta)
				dirs[i].Arg.Dynamic = &shifted
			}
		}
		if dirs[i].Value != nil {
			shifted := shiftExpr(*dirs[i].Value, delta)
			dirs[i].Value = &shifted
		}
	}
}

func shiftProps(props []Prop, delta int) {
	for i := range props {
		props[i].Span = shiftSpan(props[i].Span, delta)
		props[i].Value = shiftExpr(props[i].Value, delta)
	}
}

func shiftEvents(events []EventListener, delta int) {
	for i := range events {
		events[i].Span = shiftSpan(events[i].Span, delta)
		events[i].Handler = shiftExpr(events[i].Handler, delta)
	}
}

func shiftNode(n Node, delta int) {
	switch v := n.(type) {
	case *Element:
		v.span = shiftSpan(v.span, delta)
		v.TagSpan = shiftSpan(v.TagSpan, delta)
		shiftAttrs(v.Attrs, delta)
		shiftDirectives(v.Directives, delta)
		shiftProps(v.Props, delta)
		shiftEvents(v.Events, delta)
		for _, c := range v.Children {
			shiftNode(c, delta)
		}
	case *Text:
		v.span = shiftSpan(v.span, delta)
	case *Interpolation:
		v.span = shiftSpan(v.span, delta)
		v.Expression = shiftExpr(v.Expression, delta)
	case *Comment:
		v.span = shiftSpan(v.span, delta)
	case *If:
		v.span = shiftSpan(v.span, delta)
		for i := range v.Branches {
			v.Branches[i].Span = shiftSpan(v.Branches[i].Span, delta)
			if v.Branches[i].Condition != nil {
				shifted := shiftExpr(*v.Branches[i].Condition, delta)
				v.Branches[i].Condition = &shifted
			}
			for _, c := range v.Branches[i].Children {
				shiftNode(c, delta)
			}
		}
	case *For:
		v.span = shiftSpan(v.span, delta)
		v.Source = shiftExpr(v.Source, delta)
		v.Value.Span = shiftSpan(v.Value.Span, delta)
		if v.Key != nil {
			v.Key.Span = shiftSpan(v.Key.Span, delta)
		}
		if v.Index != nil {
			v.Index.Span = shiftSpan(v.Index.Span, delta)
		}
		if v.KeyAttr != nil {
			shifted := shiftExpr(*v.KeyAttr, delta)
			v.KeyAttr = &shifted
		}
		for _, c := range v.Children {
			shiftNode(c, delta)
		}
	case *SlotOutlet:
		v.span = shiftSpan(v.span, delta)
		v.Name = shiftExpr(v.Name, delta)
		shiftProps(v.Props, delta)
		for _, c := range v.Fallback {
			shiftNode(c, delta)
		}
	case *TemplateHost:
		v.span = shiftSpan(v.span, delta)
		shiftDirectives(v.Directives, delta)
		for _, c := range v.Children {
			shiftNode(c, delta)
		}
	}
}
