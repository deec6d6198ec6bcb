package codegen

import "github.com/dlclark/regexp2"

var (
	reTopLevelDecl = regexp2.MustCompile(`(?m)^\s*(?:export\s+)?(?:const|let|var)\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*[=:]`, regexp2.None)
	reFunctionDecl = regexp2.MustCompile(`(?m)^\s*(?:export\s+)?(?:async\s+)?function\s+([A-Za-z_$][A-Za-z0-9_$]*)`, regexp2.None)
)

// collectTopLevelBindings scans setup-block content for top-level
// const/let/var and function declarations. It is a line-anchored pattern
// search rather than a parse, the same style of approximation the macro
// extractor uses: a setup block's own bindings are declared at statement
// start with predictable keywords, so this catches the common case
// without embedding a JS parser.
func collectTopLevelBindings(content string) []string {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	for _, re := range []*regexp2.Regexp{reTopLevelDecl, reFunctionDecl} {
		m, err := re.FindStringMatch(content)
		for err == nil && m != nil {
			if g := m.GroupByNumber(1); g != nil && len(g.Captures) > 0 {
				add(g.String())
			}
			m, err = re.FindNextMatch(m)
		}
	}
	return names
}

// setupScopeBindings returns every name the setup block contributes to
// template scope: declared macro bindings (props destructure, model
// refs) plus plain top-level declarations. Synthetic names such as
// __VLS_props itself, as opposed to a destructured field, are not listed.
func setupScopeBindings(macros MacroInfo, topLevel []string) []string {
	var names []string
	if macros.DefineProps != nil && macros.DefineProps.HasDestructure {
		names = append(names, extractBindingNames(macros.DefineProps.DestructurePattern)...)
	}
	for _, m := range macros.DefineModels {
		names = append(names, m.Name)
	}
	names = append(names, topLevel...)
	return names
}
