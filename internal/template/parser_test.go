package template

import (
	"testing"

	"github.com/vuetsc/compiler/internal/loc"
)

func TestParseSimpleElement(t *testing.T) {
	ast, errs := Parse("<div>Hello</div>")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(ast.Children) != 1 {
		t.Fatalf("len(Children) = %d, want 1", len(ast.Children))
	}
}

func TestParseInterpolation(t *testing.T) {
	ast, errs := Parse("{{ message }}")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	interp, ok := ast.Children[0].(*Interpolation)
	if !ok {
		t.Fatalf("expected *Interpolation, got %T", ast.Children[0])
	}
	if interp.Expression.Content != "message" {
		t.Errorf("content = %q, want message", interp.Expression.Content)
	}
}

func TestParseVFor(t *testing.T) {
	ast, errs := Parse(`<div v-for="item in items" :key="item.id">{{ item }}</div>`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	forNode, ok := ast.Children[0].(*For)
	if !ok {
		t.Fatalf("expected *For, got %T", ast.Children[0])
	}
	if forNode.Value.Pattern != "item" {
		t.Errorf("value pattern = %q, want item", forNode.Value.Pattern)
	}
	if forNode.Source.Content != "items" {
		t.Errorf("source = %q, want items", forNode.Source.Content)
	}
	if forNode.KeyAttr == nil {
		t.Error("expected KeyAttr to be set from :key")
	}
}

func TestParseVForSpansPointAtTheirOwnSubstring(t *testing.T) {
	src := `<div v-for="item in items">{{ item }}</div>`
	ast, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	forNode, ok := ast.Children[0].(*For)
	if !ok {
		t.Fatalf("expected *For, got %T", ast.Children[0])
	}

	checkSpan := func(label, want string, span loc.Span) {
		t.Helper()
		if got := src[span.Start:span.End]; got != want {
			t.Errorf("%s span = %q (%+v), want %q", label, got, span, want)
		}
	}
	checkSpan("value", "item", forNode.Value.Span)
	checkSpan("source", "items", forNode.Source.Span)
}

func TestParseVForDestructuredAliasSpans(t *testing.T) {
	src := `<div v-for="(val, key, idx) in items"></div>`
	ast, errs := Parse(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	forNode, ok := ast.Children[0].(*For)
	if !ok {
		t.Fatalf("expected *For, got %T", ast.Children[0])
	}
	if forNode.Key == nil || forNode.Index == nil {
		t.Fatalf("expected key and index aliases, got %+v", forNode)
	}

	checkSpan := func(label, want string, span loc.Span) {
		t.Helper()
		if got := src[span.Start:span.End]; got != want {
			t.Errorf("%s span = %q (%+v), want %q", label, got, span, want)
		}
	}
	checkSpan("value", "val", forNode.Value.Span)
	checkSpan("key", "key", forNode.Key.Span)
	checkSpan("index", "idx", forNode.Index.Span)
	checkSpan("source", "items", forNode.Source.Span)
}

func TestParseVIf(t *testing.T) {
	ast, errs := Parse(`<div v-if="show">Visible</div>`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	ifNode, ok := ast.Children[0].(*If)
	if !ok {
		t.Fatalf("expected *If, got %T", ast.Children[0])
	}
	if len(ifNode.Branches) != 1 || ifNode.Branches[0].BranchType != BranchIf {
		t.Errorf("unexpected branches: %+v", ifNode.Branches)
	}
}

func TestParseComponent(t *testing.T) {
	ast, errs := Parse(`<MyComponent :prop="value" @click="handler" />`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	el, ok := ast.Children[0].(*Element)
	if !ok {
		t.Fatalf("expected *Element, got %T", ast.Children[0])
	}
	if !el.IsComponent {
		t.Error("expected IsComponent")
	}
	if el.Tag != "MyComponent" {
		t.Errorf("tag = %q", el.Tag)
	}
	if len(el.Props) != 1 || len(el.Events) != 1 {
		t.Errorf("props=%d events=%d, want 1 and 1", len(el.Props), len(el.Events))
	}
}

func TestParseSlot(t *testing.T) {
	ast, errs := Parse(`<slot name="header">Default</slot>`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	outlet, ok := ast.Children[0].(*SlotOutlet)
	if !ok {
		t.Fatalf("expected *SlotOutlet, got %T", ast.Children[0])
	}
	if len(outlet.Fallback) == 0 {
		t.Error("expected fallback content")
	}
}

func TestParseVBindColonEquivalence(t *testing.T) {
	ast, errs := Parse(`<div v-bind:title="msg"></div>`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	el := ast.Children[0].(*Element)
	if len(el.Props) != 1 || el.Props[0].Name != "title" {
		t.Errorf("expected prop title, got %+v", el.Props)
	}
}

func TestParseDynamicEventName(t *testing.T) {
	ast, errs := Parse(`<div @[eventName]="handler"></div>`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	el := ast.Children[0].(*Element)
	if len(el.Events) != 1 || !el.Events[0].IsDynamic || el.Events[0].Name != "eventName" {
		t.Errorf("unexpected events: %+v", el.Events)
	}
}

func TestParseVoidElementHasNoChildren(t *testing.T) {
	ast, errs := Parse(`<input type="text">after`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	el := ast.Children[0].(*Element)
	if len(el.Children) != 0 {
		t.Errorf("void element should have no children, got %+v", el.Children)
	}
}

// A malformed v-for expression is recoverable: the directive is reported
// and dropped, and the element survives as a plain node instead of taking
// the whole document down with it.
func TestParseInvalidVForRecovers(t *testing.T) {
	ast, errs := Parse(`<div v-for="nope">{{ nope }}</div>`)
	if len(errs) != 1 {
		t.Fatalf("len(errs) = %d, want 1: %v", len(errs), errs)
	}
	if errs[0].Code != ErrInvalidVFor {
		t.Errorf("code = %v, want ErrInvalidVFor", errs[0].Code)
	}
	el, ok := ast.Children[0].(*Element)
	if !ok {
		t.Fatalf("expected *Element (v-for dropped), got %T", ast.Children[0])
	}
	if el.Tag != "div" {
		t.Errorf("tag = %q, want div", el.Tag)
	}
	for _, d := range el.Directives {
		if d.Name == "for" {
			t.Error("v-for directive should have been dropped")
		}
	}
}

func TestParseTemplateVSlot(t *testing.T) {
	ast, errs := Parse(`<template #item="{ item }">{{ item }}</template>`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	host, ok := ast.Children[0].(*TemplateHost)
	if !ok {
		t.Fatalf("expected *TemplateHost, got %T", ast.Children[0])
	}
	if len(host.Directives) != 1 || !host.Directives[0].IsSlot() {
		t.Errorf("expected a slot directive, got %+v", host.Directives)
	}
}
