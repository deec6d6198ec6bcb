package codegen

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// DefinePropsInfo is what the generator recovered about a defineProps
// call: its type argument, if any, and a destructuring pattern if the
// caller wrote `const { a, b } = defineProps<T>()`.
type DefinePropsInfo struct {
	TypeArg            string
	HasTypeArg         bool
	DestructurePattern string
	HasDestructure     bool
}

// DefineEmitsInfo is what the generator recovered about a defineEmits call.
type DefineEmitsInfo struct {
	TypeArg    string
	HasTypeArg bool
}

// DefineSlotsInfo is what the generator recovered about a defineSlots call.
type DefineSlotsInfo struct {
	TypeArg    string
	HasTypeArg bool
}

// DefineModelInfo is one defineModel(...) call; a setup block may declare
// several, one per two-way-bound prop.
type DefineModelInfo struct {
	Name       string
	TypeArg    string
	HasTypeArg bool
}

// DefineExposeInfo is what the generator recovered about a defineExpose call.
type DefineExposeInfo struct {
	Expression string
}

// MacroInfo is every declarative macro call the extractor found in a
// setup block's content, plus the list of bindings generateScriptSetup
// should expose from __VLS_setup's return object.
type MacroInfo struct {
	DefineProps  *DefinePropsInfo
	DefineEmits  *DefineEmitsInfo
	DefineSlots  *DefineSlotsInfo
	DefineModels []DefineModelInfo
	DefineExpose *DefineExposeInfo
	Exposed      []string
}

var (
	rePropsGeneric   = regexp2.MustCompile(`defineProps\s*<([^>]+)>\s*\(\s*\)`, regexp2.None)
	rePropsCall      = regexp2.MustCompile(`defineProps\s*\(\s*\{([^}]*)\}\s*\)`, regexp2.None)
	reEmitsGeneric   = regexp2.MustCompile(`defineEmits\s*<([^>]+)>`, regexp2.None)
	reSlotsGeneric   = regexp2.MustCompile(`defineSlots\s*<([^>]+)>`, regexp2.None)
	reModelCall      = regexp2.MustCompile(`defineModel\s*(?:<([^>]+)>)?\s*\(\s*(?:['"](\w*)['"])?`, regexp2.None)
	reExposeCall     = regexp2.MustCompile(`defineExpose\s*\(\s*(\{[^}]*\})`, regexp2.None)
	reDestructure    = regexp2.MustCompile(`const\s*(\{[^}]*\})\s*=\s*defineProps`, regexp2.None)
)

// ExtractMacros scans raw setup-block content for the recognized macro
// family and returns what it found. It is a pattern search, not a parse:
// per the design's documented approximation, a macro that does not match
// one of these shapes is simply invisible to the generator, the same
// tradeoff a full AST-based implementation would spend far more code to
// avoid for syntactically shallow, unambiguous calls.
func ExtractMacros(content string) MacroInfo {
	var info MacroInfo
	info.DefineProps = extractDefineProps(content)
	info.DefineEmits = extractDefineEmits(content)
	info.DefineSlots = extractDefineSlots(content)
	info.DefineModels = extractDefineModels(content)
	info.DefineExpose = extractDefineExpose(content)
	return info
}

func findMatch(re *regexp2.Regexp, content string) *regexp2.Match {
	m, err := re.FindStringMatch(content)
	if err != nil || m == nil {
		return nil
	}
	return m
}

func groupString(m *regexp2.Match, n int) (string, bool) {
	g := m.GroupByNumber(n)
	if g == nil || len(g.Captures) == 0 {
		return "", false
	}
	return g.String(), true
}

func extractDefineProps(content string) *DefinePropsInfo {
	if m := findMatch(rePropsGeneric, content); m != nil {
		info := &DefinePropsInfo{}
		if arg, ok := groupString(m, 1); ok {
			info.TypeArg, info.HasTypeArg = strings.TrimSpace(arg), true
		}
		if dm := findMatch(reDestructure, content); dm != nil {
			if pat, ok := groupString(dm, 1); ok {
				info.DestructurePattern, info.HasDestructure = pat, true
			}
		}
		return info
	}
	if m := findMatch(rePropsCall, content); m != nil {
		return &DefinePropsInfo{}
	}
	if strings.Contains(content, "defineProps") {
		return &DefinePropsInfo{}
	}
	return nil
}

func extractDefineEmits(content string) *DefineEmitsInfo {
	if !strings.Contains(content, "defineEmits") {
		return nil
	}
	info := &DefineEmitsInfo{}
	if m := findMatch(reEmitsGeneric, content); m != nil {
		if arg, ok := groupString(m, 1); ok {
			info.TypeArg, info.HasTypeArg = strings.TrimSpace(arg), true
		}
	}
	return info
}

func extractDefineSlots(content string) *DefineSlotsInfo {
	if !strings.Contains(content, "defineSlots") {
		return nil
	}
	info := &DefineSlotsInfo{}
	if m := findMatch(reSlotsGeneric, content); m != nil {
		if arg, ok := groupString(m, 1); ok {
			info.TypeArg, info.HasTypeArg = strings.TrimSpace(arg), true
		}
	}
	return info
}

func extractDefineModels(content string) []DefineModelInfo {
	var models []DefineModelInfo
	m, err := reModelCall.FindStringMatch(content)
	for err == nil && m != nil {
		name := "modelValue"
		if n, ok := groupString(m, 2); ok && n != "" {
			name = n
		}
		model := DefineModelInfo{Name: name}
		if t, ok := groupString(m, 1); ok {
			model.TypeArg, model.HasTypeArg = strings.TrimSpace(t), true
		}
		models = append(models, model)
		m, err = reModelCall.FindNextMatch(m)
	}
	return models
}

func extractDefineExpose(content string) *DefineExposeInfo {
	m := findMatch(reExposeCall, content)
	if m == nil {
		return nil
	}
	expr, ok := groupString(m, 1)
	if !ok {
		return nil
	}
	return &DefineExposeInfo{Expression: expr}
}
