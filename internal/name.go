package compiler

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// componentNameFromFilename derives the PascalCase name a component would
// be registered under from its source path, the same way a bundler derives
// one from a file on disk: take the last path segment, drop everything
// from the first '.' on, and camel-case what's left. An empty or
// unidentifiable result yields "" so checkComponentName's own
// empty-name diagnostic fires instead of a fabricated placeholder.
func componentNameFromFilename(filename string) string {
	if filename == "" {
		return ""
	}
	parts := strings.Split(filename, "/")
	part := parts[len(parts)-1]
	if part == "" {
		return ""
	}
	base := strings.Split(part, ".")[0]
	if base == "" {
		return ""
	}
	name := strcase.ToCamel(base)
	if !isIdentifierName(name) {
		return ""
	}
	return name
}

func isIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}
