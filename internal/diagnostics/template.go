package diagnostics

import (
	"strings"

	"github.com/vuetsc/compiler/internal/loc"
	"github.com/vuetsc/compiler/internal/template"
)

// Options gates the checks that need information from outside the
// template itself: which components and directives a consuming project
// actually registers. The unknown-component/unknown-directive checks run
// only when their Check* flag is set, and MissingKey only when CheckForKeys
// is set; InvalidVModel always runs.
type Options struct {
	KnownComponents        []string
	KnownDirectives        []string
	CheckUnknownComponents bool
	CheckUnknownDirectives bool
	CheckForKeys           bool
}

// DefaultOptions enables the for-key check (cheap, always useful) but
// leaves the two registry-dependent checks off until a caller supplies
// component/directive names.
func DefaultOptions() Options {
	return Options{CheckForKeys: true}
}

// CheckTemplate walks a compiled template tree and returns every pure
// diagnostic it can produce without a type checker.
func CheckTemplate(ast *template.Ast, opts Options) []loc.Diagnostic {
	var diags []loc.Diagnostic
	for _, child := range ast.Children {
		checkNode(child, opts, &diags)
	}
	return diags
}

func checkNode(node template.Node, opts Options, diags *[]loc.Diagnostic) {
	switch n := node.(type) {
	case *template.Element:
		checkElement(n, opts, diags)
	case *template.For:
		checkFor(n, opts, diags)
	case *template.If:
		checkIf(n, opts, diags)
	case *template.TemplateHost:
		for _, child := range n.Children {
			checkNode(child, opts, diags)
		}
	case *template.SlotOutlet:
		for _, child := range n.Fallback {
			checkNode(child, opts, diags)
		}
	}
}

func checkElement(el *template.Element, opts Options, diags *[]loc.Diagnostic) {
	if opts.CheckUnknownComponents && el.IsComponent {
		if !isKnownComponent(el.Tag, opts) {
			*diags = append(*diags, loc.Diagnostic{
				Code:    loc.WARNING_UNKNOWN_COMPONENT,
				Message: "unknown component: <" + el.Tag + ">",
				Span:    el.TagSpan,
			})
		}
	}

	if opts.CheckUnknownDirectives {
		for _, d := range el.Directives {
			if !isBuiltinDirective(d.Name) && !isKnownDirective(d.Name, opts) {
				*diags = append(*diags, loc.Diagnostic{
					Code:    loc.WARNING_UNKNOWN_DIRECTIVE,
					Message: "unknown directive: v-" + d.Name,
					Span:    d.Span,
				})
			}
		}
	}

	if modelDir := el.GetDirective("model"); modelDir != nil {
		if !canUseVModel(el.Tag) {
			*diags = append(*diags, loc.Diagnostic{
				Code:    loc.WARNING_INVALID_V_MODEL,
				Message: "v-model is not valid on <" + el.Tag + "> elements",
				Span:    modelDir.Span,
			})
		}
	}

	for _, child := range el.Children {
		checkNode(child, opts, diags)
	}
}

func checkFor(f *template.For, opts Options, diags *[]loc.Diagnostic) {
	if opts.CheckForKeys && f.KeyAttr == nil {
		*diags = append(*diags, loc.Diagnostic{
			Code:    loc.WARNING_MISSING_KEY,
			Message: "v-for is missing a :key attribute",
			Span:    f.Span(),
		})
	}
	for _, child := range f.Children {
		checkNode(child, opts, diags)
	}
}

func checkIf(i *template.If, opts Options, diags *[]loc.Diagnostic) {
	for _, branch := range i.Branches {
		for _, child := range branch.Children {
			checkNode(child, opts, diags)
		}
	}
}

func isKnownComponent(name string, opts Options) bool {
	if isBuiltinComponent(name) {
		return true
	}
	for _, c := range opts.KnownComponents {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

func isKnownDirective(name string, opts Options) bool {
	for _, d := range opts.KnownDirectives {
		if strings.EqualFold(d, name) {
			return true
		}
	}
	return false
}

func isBuiltinDirective(name string) bool {
	switch name {
	case "if", "else", "else-if", "for", "show", "bind", "on", "model",
		"slot", "pre", "cloak", "once", "memo", "html", "text":
		return true
	default:
		return false
	}
}

func isBuiltinComponent(name string) bool {
	switch strings.ToLower(name) {
	case "transition", "transition-group", "transitiongroup", "keep-alive",
		"keepalive", "suspense", "teleport", "slot", "component":
		return true
	default:
		return false
	}
}

func canUseVModel(tag string) bool {
	switch strings.ToLower(tag) {
	case "input", "select", "textarea":
		return true
	}
	return template.ClassifyTag(tag) == template.KindComponent
}
