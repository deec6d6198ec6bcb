package compiler

import (
	"testing"

	"github.com/vuetsc/compiler/internal/loc"
)

func TestCheckEmptyComponent(t *testing.T) {
	result, errs := Check("", Options{})
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	if result.Code == "" {
		t.Errorf("expected a synthetic file even for an empty component")
	}
}

func TestCheckMissingKeyWarning(t *testing.T) {
	src := `<template><div v-for="item in items">{{ item }}</div></template>`
	result, errs := Check(src, Options{})
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	var found int
	for _, d := range result.Diagnostics {
		if d.Code == loc.WARNING_MISSING_KEY {
			found++
		}
	}
	if found != 1 {
		t.Errorf("expected exactly one MissingKey warning, got %d in %v", found, result.Diagnostics)
	}
}

func TestCheckInvalidVModelError(t *testing.T) {
	src := `<template><div v-model="x"></div></template>`
	result, errs := Check(src, Options{})
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	var found int
	for _, d := range result.Diagnostics {
		if d.Code == loc.WARNING_INVALID_V_MODEL {
			found++
		}
	}
	if found != 1 {
		t.Errorf("expected exactly one InvalidVModel diagnostic, got %d in %v", found, result.Diagnostics)
	}
}

func TestCheckTracksUsedComponentsAndDirectives(t *testing.T) {
	src := `<template><MyWidget v-highlight.strong /></template>`
	result, errs := Check(src, Options{})
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}

	var sawComponent, sawDirective bool
	for _, c := range result.UsedComponents {
		if c == "MyWidget" {
			sawComponent = true
		}
	}
	for _, d := range result.UsedDirectives {
		if d == "highlight" {
			sawDirective = true
		}
	}
	if !sawComponent {
		t.Errorf("expected MyWidget in UsedComponents, got %v", result.UsedComponents)
	}
	if !sawDirective {
		t.Errorf("expected highlight in UsedDirectives, got %v", result.UsedDirectives)
	}
}

func TestComponentNameFromFilename(t *testing.T) {
	cases := map[string]string{
		"":                  "",
		"src/my-button.vue": "MyButton",
		"src/App.vue":       "App",
	}
	for in, want := range cases {
		if got := componentNameFromFilename(in); got != want {
			t.Errorf("componentNameFromFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
