package component

import "testing"

func TestParseEmpty(t *testing.T) {
	c, errs := Parse("")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if c.Template != nil || c.Script != nil || c.ScriptSetup != nil || len(c.Styles) != 0 {
		t.Fatalf("expected all blocks empty, got %+v", c)
	}
}

func TestParseTemplateOnly(t *testing.T) {
	c, errs := Parse("<template><div>Hello</div></template>")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if c.Template == nil {
		t.Fatal("expected template block")
	}
	if got := c.Template.Content; got != "<div>Hello</div>" {
		t.Errorf("content = %q", got)
	}
}

func TestParseScriptSetup(t *testing.T) {
	source := "<script setup lang=\"ts\">\nconst msg = 'Hello'\n</script>"
	c, errs := Parse(source)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if c.ScriptSetup == nil {
		t.Fatal("expected script setup block")
	}
	if c.ScriptSetup.Lang != "ts" {
		t.Errorf("lang = %q, want ts", c.ScriptSetup.Lang)
	}
}

func TestParseScriptWithGeneric(t *testing.T) {
	source := "<script setup lang=\"ts\" generic=\"T extends string, U\">\ndefineProps<{ value: T; other: U }>()\n</script>"
	c, _ := Parse(source)
	if c.ScriptSetup.Generic != "T extends string, U" {
		t.Errorf("generic = %q", c.ScriptSetup.Generic)
	}
}

func TestParseMultipleStyles(t *testing.T) {
	source := "<style scoped>\n.foo { color: red; }\n</style>\n<style lang=\"scss\" module>\n.bar { color: blue; }\n</style>"
	c, _ := Parse(source)
	if len(c.Styles) != 2 {
		t.Fatalf("len(Styles) = %d, want 2", len(c.Styles))
	}
	if !c.Styles[0].Scoped {
		t.Error("first style should be scoped")
	}
	if c.Styles[1].Scoped {
		t.Error("second style should not be scoped")
	}
	if c.Styles[1].Lang != "scss" {
		t.Errorf("lang = %q, want scss", c.Styles[1].Lang)
	}
	if c.Styles[1].Module != "$style" {
		t.Errorf("module = %q, want $style", c.Styles[1].Module)
	}
}

func TestParseCustomBlock(t *testing.T) {
	source := "<i18n lang=\"json\">\n{\n  \"en\": { \"hello\": \"Hello\" }\n}\n</i18n>"
	c, _ := Parse(source)
	if len(c.CustomBlocks) != 1 {
		t.Fatalf("len(CustomBlocks) = %d, want 1", len(c.CustomBlocks))
	}
	if c.CustomBlocks[0].BlockType != "i18n" {
		t.Errorf("block type = %q, want i18n", c.CustomBlocks[0].BlockType)
	}
}

func TestParseWithComments(t *testing.T) {
	source := "<!-- This is a comment -->\n<template>\n  <div>Hello</div>\n</template>"
	c, _ := Parse(source)
	if len(c.Comments) != 1 {
		t.Fatalf("len(Comments) = %d, want 1", len(c.Comments))
	}
}

func TestParseScriptAndScriptSetup(t *testing.T) {
	source := "<script lang=\"ts\">\nexport interface Props {\n  msg: string\n}\n</script>\n\n<script setup lang=\"ts\">\nconst props = defineProps<Props>()\n</script>"
	c, _ := Parse(source)
	if c.Script == nil || c.ScriptSetup == nil {
		t.Fatal("expected both script and script setup blocks")
	}
}

func TestParseStyleModuleNamed(t *testing.T) {
	source := "<style module=\"classes\">\n.foo { color: red; }\n</style>"
	c, _ := Parse(source)
	if c.Styles[0].Module != "classes" {
		t.Errorf("module = %q, want classes", c.Styles[0].Module)
	}
}

func TestParseExternalSrc(t *testing.T) {
	source := `<script src="./external.ts" lang="ts"></script>`
	c, _ := Parse(source)
	if c.Script.Src == nil {
		t.Fatal("expected src attr")
	}
	if c.Script.Src.Value != "./external.ts" {
		t.Errorf("src = %q", c.Script.Src.Value)
	}
}

func TestParseDuplicateTemplateReportsError(t *testing.T) {
	source := "<template><a/></template><template><b/></template>"
	c, errs := Parse(source)
	if c.Template == nil {
		t.Fatal("expected first template kept")
	}
	if len(errs) != 1 || errs[0].Code != 1001 {
		t.Fatalf("expected one duplicate-block error, got %v", errs)
	}
}
