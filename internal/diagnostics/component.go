// Package diagnostics implements the pipeline's pure checks: findings that
// require no type information, only the parsed component and compiled
// template trees. They run after the component parser and template
// compiler, independently of whether code generation or an external type
// checker ever runs.
package diagnostics

import (
	"strings"

	"github.com/vuetsc/compiler/internal/component"
	"github.com/vuetsc/compiler/internal/loc"
)

// reservedComponentNames mirrors the HTML/Vue names a component may never
// be registered or exported under.
var reservedComponentNames = map[string]bool{
	"slot": true, "component": true, "template": true, "script": true,
	"style": true, "html": true, "body": true, "head": true, "base": true,
}

func isReservedName(name string) bool {
	return reservedComponentNames[strings.ToLower(name)]
}

// CheckComponent runs every component-level check: duplicate setup macros
// and the exported component's name.
func CheckComponent(c *component.Component, componentName string) []loc.Diagnostic {
	var diags []loc.Diagnostic
	diags = append(diags, checkScriptSetup(c)...)
	diags = append(diags, checkComponentName(componentName, c)...)
	return diags
}

// checkScriptSetup flags a setup macro called more than once. It uses a
// plain substring count rather than parsing the script, the same
// approximation the macro extractor itself relies on: these macros may
// only legally appear once, so two textual occurrences is already
// conclusive.
func checkScriptSetup(c *component.Component) []loc.Diagnostic {
	if c.ScriptSetup == nil {
		return nil
	}
	content := c.ScriptSetup.Content
	span := c.ScriptSetup.Span

	var diags []loc.Diagnostic
	for _, macro := range []string{"defineProps", "defineEmits", "defineSlots", "defineExpose", "defineOptions"} {
		if strings.Count(content, macro) > 1 {
			diags = append(diags, loc.Diagnostic{
				Code:    loc.ERROR_DUPLICATE_MACRO,
				Message: macro + " may only be called once",
				Span:    span,
			})
		}
	}
	return diags
}

// checkComponentName validates the name a component would be registered
// or exported under. An empty name is a warning (anonymous components
// are legal but undiagnosable in a parent's template), a lowercase-first
// name is a warning (convention, not an error), and a reserved name is an
// error (it would shadow a built-in tag or directive target).
func checkComponentName(name string, c *component.Component) []loc.Diagnostic {
	var span loc.Span
	if c.ScriptSetup != nil {
		span = c.ScriptSetup.Span
	} else if c.Script != nil {
		span = c.Script.Span
	}

	if name == "" {
		return []loc.Diagnostic{{
			Code:    loc.WARNING_EMPTY_COMPONENT_NAME,
			Message: "component has no inferable name",
			Span:    span,
		}}
	}
	if isReservedName(name) {
		return []loc.Diagnostic{{
			Code:    loc.ERROR_RESERVED_COMPONENT_NAME,
			Message: "component name \"" + name + "\" is reserved",
			Span:    span,
		}}
	}
	if !isUpperASCII(name[0]) {
		return []loc.Diagnostic{{
			Code:    loc.WARNING_COMPONENT_NAME_CASE,
			Message: "component name \"" + name + "\" should be PascalCase",
			Span:    span,
		}}
	}
	return nil
}

func isUpperASCII(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
