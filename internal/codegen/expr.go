package codegen

import "strings"

// jsBuiltins is the closed set of host globals an identifier-only
// expression is allowed to reference without being rewritten against the
// template context.
var jsBuiltins = buildTagSet(
	"true", "false", "null", "undefined", "NaN", "Infinity", "this",
	"console", "window", "document", "Math", "JSON", "Date", "Array",
	"Object", "String", "Number", "Boolean", "Symbol", "Map", "Set",
	"WeakMap", "WeakSet", "Promise", "Proxy", "Reflect", "Error",
	"TypeError", "RangeError", "parseInt", "parseFloat", "isNaN",
	"isFinite", "encodeURI", "decodeURI", "encodeURIComponent",
	"decodeURIComponent",
)

// isJSBuiltin reports whether name is a well-known host global. Unlike
// tag-name matching this comparison is case-sensitive: "math" is not
// "Math".
func isJSBuiltin(name string) bool {
	return jsBuiltins[name]
}

// isSimpleIdentifier reports whether s (already trimmed) is a single JS
// identifier and nothing else.
func isSimpleIdentifier(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	if !(isAlpha(c) || c == '_' || c == '$') {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !(isAlpha(c) || isDigit(c) || c == '_' || c == '$') {
			return false
		}
	}
	return true
}

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// wrapExpressionIdentifiers applies the one documented approximation in
// expression emission (§4.4.E): a bare identifier that is neither a JS
// builtin nor already in scope is rewritten to resolve against the
// template context object; anything else — member access, calls, binary
// expressions — is emitted unchanged, since wrapping those correctly would
// require a real expression parser.
func wrapExpressionIdentifiers(expr string, ctx *Context) string {
	trimmed := strings.TrimSpace(expr)
	if !isSimpleIdentifier(trimmed) {
		return trimmed
	}
	if isJSBuiltin(trimmed) || ctx.HasVar(trimmed) {
		return trimmed
	}
	return nameCtx + "." + trimmed
}

// extractBindingNames pulls the bound identifiers out of a slot-prop or
// v-for destructuring pattern: a plain identifier, an object pattern
// `{ a, b: c }`, or an array pattern `[a, b]`.
func extractBindingNames(pattern string) []string {
	pattern = strings.TrimSpace(pattern)
	if strings.HasPrefix(pattern, "{") && strings.HasSuffix(pattern, "}") {
		inner := pattern[1 : len(pattern)-1]
		return splitBindingParts(inner, true)
	}
	if strings.HasPrefix(pattern, "[") && strings.HasSuffix(pattern, "]") {
		inner := pattern[1 : len(pattern)-1]
		return splitBindingParts(inner, false)
	}
	if pattern == "" {
		return nil
	}
	return []string{pattern}
}

func splitBindingParts(inner string, destructuring bool) []string {
	var names []string
	for _, part := range strings.Split(inner, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !destructuring {
			names = append(names, part)
			continue
		}
		if idx := strings.Index(part, ":"); idx >= 0 {
			names = append(names, strings.TrimSpace(part[idx+1:]))
		} else if idx := strings.Index(part, "="); idx >= 0 {
			names = append(names, strings.TrimSpace(part[:idx]))
		} else {
			names = append(names, part)
		}
	}
	return names
}
