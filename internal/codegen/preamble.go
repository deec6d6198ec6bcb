package codegen

import (
	"golang.org/x/net/html/atom"

	"github.com/vuetsc/compiler/internal/sourcemap"
)

// Reserved names used throughout the generated file.
const (
	nameProps     = "__VLS_props"
	nameEmit      = "__VLS_emit"
	nameSlots     = "__VLS_slots"
	nameCtx       = "__VLS_ctx"
	nameSetup     = "__VLS_setup"
	nameTemplate  = "__VLS_template"
	nameComponent = "__VLS_component"
)

// vlsHelperTypes is the fixed block of type utilities and declared helper
// functions every generated file carries, so the external checker can
// resolve the synthetic calls the template emitter produces without any
// runtime dependency beyond the 'vue' module's own type declarations.
const vlsHelperTypes = `
type __VLS_Prettify<T> = { [K in keyof T]: T[K] } & {};

type __VLS_WithDefaults<P, D> = {
    [K in keyof P]: K extends keyof D
        ? P[K] extends undefined
            ? D[K]
            : P[K]
        : P[K];
};

type __VLS_NonUndefinedable<T> = T extends undefined ? never : T;

type __VLS_TypePropsToOption<T> = {
    [K in keyof T]-?: {} extends Pick<T, K>
        ? { type: __VLS_PropType<__VLS_NonUndefinedable<T[K]>>; required?: false }
        : { type: __VLS_PropType<T[K]>; required: true };
};

type __VLS_IntrinsicElements = {
    [K in keyof HTMLElementTagNameMap]: Partial<HTMLElementTagNameMap[K]>;
} & {
    [K in keyof SVGElementTagNameMap]: Partial<SVGElementTagNameMap[K]>;
};

interface __VLS_TemplateContext {
    $slots: any;
    $attrs: any;
    $refs: any;
    $el: any;
    $emit: any;
    $props: any;
}

declare function __VLS_asFunctionalComponent<T>(
    t: T,
): T extends new (...args: any[]) => any
    ? InstanceType<T> extends { $props: infer P }
        ? (props: P & Record<string, unknown>) => any
        : never
    : T;

declare function __VLS_getVForSourceType<T>(
    source: T,
): T extends number
    ? number[]
    : T extends string
    ? string[]
    : T extends readonly (infer U)[]
    ? U[]
    : T extends Iterable<infer U>
    ? U[]
    : { [K in keyof T]: T[K] }[];

declare function __VLS_getSlotParams<T>(
    slot: T,
): T extends (...args: any[]) => any ? Parameters<T>[0] : never;

declare function __VLS_elementAsFunction<T extends keyof __VLS_IntrinsicElements>(
    tag: T,
): (props: __VLS_IntrinsicElements[T]) => void;

declare function __VLS_componentAsFunction<T>(
    component: T,
): T extends new (...args: any[]) => infer R
    ? (props: R extends { $props: infer P } ? P : never) => void
    : T extends (...args: any[]) => any
    ? T
    : never;

declare function __VLS_resolveComponent<T extends string>(
    name: T,
): any;

declare function __VLS_resolveDirective<T extends string>(
    name: T,
): any;

declare function __VLS_withAsyncContext<T>(
    getAwaitable: () => Promise<T>,
): Promise<T>;
`

// generatePreamble emits the import block and the fixed helper-types
// block. It carries no mapping: none of it traces back to any byte of the
// original component file.
func generatePreamble(b *sourcemap.Builder) {
	b.PushString("import { ")
	b.PushString("defineComponent as __VLS_defineComponent, ")
	b.PushString("ref as __VLS_ref, ")
	b.PushString("computed as __VLS_computed, ")
	b.PushString("reactive as __VLS_reactive, ")
	b.PushString("PropType as __VLS_PropType, ")
	b.PushString("ExtractPropTypes as __VLS_ExtractPropTypes, ")
	b.PushString("ComponentPublicInstance as __VLS_ComponentPublicInstance ")
	b.PushString("} from 'vue';\n\n")
	b.PushString(vlsHelperTypes)
	b.Newline()
}

var builtinComponents = map[string]bool{
	"transition": true, "transitiongroup": true, "keepalive": true,
	"suspense": true, "teleport": true,
}

// isBuiltinComponentName reports whether name (case-insensitively) is one
// of Vue's globally registered built-in components.
func isBuiltinComponentName(name string) bool {
	return builtinComponents[lowerASCII(name)]
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

var htmlTags = buildTagSet(
	"a", "abbr", "address", "area", "article", "aside", "audio", "b", "base", "bdi", "bdo",
	"blockquote", "body", "br", "button", "canvas", "caption", "cite", "code", "col", "colgroup",
	"data", "datalist", "dd", "del", "details", "dfn", "dialog", "div", "dl", "dt", "em", "embed",
	"fieldset", "figcaption", "figure", "footer", "form", "h1", "h2", "h3", "h4", "h5", "h6",
	"head", "header", "hgroup", "hr", "html", "i", "iframe", "img", "input", "ins", "kbd", "label",
	"legend", "li", "link", "main", "map", "mark", "math", "menu", "meta", "meter", "nav",
	"noscript", "object", "ol", "optgroup", "option", "output", "p", "param", "picture", "pre",
	"progress", "q", "rp", "rt", "ruby", "s", "samp", "script", "search", "section", "select",
	"slot", "small", "source", "span", "strong", "style", "sub", "summary", "sup", "svg", "table",
	"tbody", "td", "template", "textarea", "tfoot", "th", "thead", "time", "title", "tr", "track",
	"u", "ul", "var", "video", "wbr",
)

var svgTags = buildTagSet(
	"svg", "animate", "animateMotion", "animateTransform", "circle", "clipPath", "defs", "desc",
	"ellipse", "feBlend", "feColorMatrix", "feComponentTransfer", "feComposite",
	"feConvolveMatrix", "feDiffuseLighting", "feDisplacementMap", "feDistantLight", "feDropShadow",
	"feFlood", "feFuncA", "feFuncB", "feFuncG", "feFuncR", "feGaussianBlur", "feImage", "feMerge",
	"feMergeNode", "feMorphology", "feOffset", "fePointLight", "feSpecularLighting", "feSpotLight",
	"feTile", "feTurbulence", "filter", "foreignObject", "g", "image", "line", "linearGradient",
	"marker", "mask", "metadata", "mpath", "path", "pattern", "polygon", "polyline",
	"radialGradient", "rect", "set", "stop", "switch", "symbol", "text", "textPath", "tspan",
	"use", "view",
)

func buildTagSet(tags ...string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, t := range tags {
		set[lowerASCII(t)] = true
	}
	return set
}

// isHTMLTag consults the explicit list first (it alone decides the
// uncommon tags, like svg, that also show up in svgTags) and falls
// back to x/net/html/atom's table of known HTML elements for anything
// this list doesn't name, so an element new enough to be missing from
// htmlTags above still isn't misclassified as a component.
func isHTMLTag(tag string) bool {
	lower := lowerASCII(tag)
	if htmlTags[lower] {
		return true
	}
	return atom.Lookup([]byte(lower)) != 0
}

func isSVGTag(tag string) bool { return svgTags[lowerASCII(tag)] }
