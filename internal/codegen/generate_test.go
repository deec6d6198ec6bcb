package codegen

import (
	"strings"
	"testing"

	"github.com/vuetsc/compiler/internal/component"
	"github.com/vuetsc/compiler/internal/template"
)

func TestGenerateSetupWithTemplate(t *testing.T) {
	src := "<script setup lang=\"ts\">\nconst msg = ref('Hello')\n</script>\n<template><div>{{ msg }}</div></template>\n"
	c, errs := component.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	result := Generate(c, mustCompile(t, c), Options{})

	if !strings.Contains(result.Code, "import {") || !strings.Contains(result.Code, "} from 'vue';") {
		t.Errorf("expected a vue import block, got:\n%s", result.Code)
	}
	if !strings.Contains(result.Code, "function __VLS_setup(") {
		t.Errorf("expected __VLS_setup function, got:\n%s", result.Code)
	}
	if !strings.Contains(result.Code, "function __VLS_template(") {
		t.Errorf("expected __VLS_template function, got:\n%s", result.Code)
	}
	if !strings.Contains(result.Code, "(msg);") {
		t.Errorf("expected unprefixed (msg); in template body, got:\n%s", result.Code)
	}
	if strings.Contains(result.Code, "__VLS_ctx.msg") {
		t.Errorf("msg should not be wrapped, it is in setup scope:\n%s", result.Code)
	}
	if result.Language != component.LangTS {
		t.Errorf("expected Ts language, got %v", result.Language)
	}
}

func TestGenerateGenericSetup(t *testing.T) {
	src := `<script setup lang="ts" generic="T extends string">
const value = 1
</script>
`
	c, errs := component.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	result := Generate(c, mustCompile(t, c), Options{})

	if !strings.Contains(result.Code, "function __VLS_setup<T extends string>(") {
		t.Errorf("expected generic setup function, got:\n%s", result.Code)
	}
}

func TestGenerateDuplicateMacroEmitsOneDeclaration(t *testing.T) {
	src := `<script setup lang="ts">
defineProps<{}>(); defineProps<{}>();
</script>
`
	c, errs := component.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	result := Generate(c, mustCompile(t, c), Options{})

	if got := strings.Count(result.Code, "__VLS_props = defineProps"); got != 1 {
		t.Errorf("expected exactly one __VLS_props declaration, got %d in:\n%s", got, result.Code)
	}
}

func TestGenerateVIfVElse(t *testing.T) {
	src := "<script setup lang=\"ts\">\nconst show = true\n</script>\n" +
		"<template><div v-if=\"show\">Yes</div><div v-else>No</div></template>\n"
	c, errs := component.Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	result := Generate(c, mustCompile(t, c), Options{})

	if !strings.Contains(result.Code, "if (") {
		t.Errorf("expected an if (...) stanza for v-if, got:\n%s", result.Code)
	}
	if strings.Contains(result.Code, "if () {") || strings.Contains(result.Code, "if ()  {") {
		t.Errorf("v-else must not emit an empty if condition, got:\n%s", result.Code)
	}
	// A standalone v-else lifts into its own single-branch If node (no
	// sibling chaining), so it must emit a bare block, not "} else {"
	// chained onto a prior if.
	if !strings.Contains(result.Code, "  }\n  {\n") || strings.Contains(result.Code, "} else {") {
		t.Errorf("expected a plain block for the standalone v-else, got:\n%s", result.Code)
	}
}

func mustCompile(t *testing.T, c *component.Component) *template.Ast {
	t.Helper()
	if c.Template == nil {
		return nil
	}
	ast, errs := template.ParseAt(c.Template.Content, c.Template.ContentSpan.Start)
	if len(errs) != 0 {
		t.Fatalf("template.ParseAt: %v", errs)
	}
	return ast
}
