package codegen

import (
	"strings"

	"github.com/vuetsc/compiler/internal/component"
	"github.com/vuetsc/compiler/internal/sourcemap"
)

// generateScript copies a plain (non-setup) script block through
// verbatim, with its own leading comment so the generated file remains
// readable standalone. A plain script block is emitted before any setup
// block, matching the order a bundler would actually execute them in.
func generateScript(b *sourcemap.Builder, script *component.ScriptBlock) {
	b.PushString("// Script block\n")
	b.PushMapped(script.Content, script.ContentSpan.Start)
	b.Newline()
	b.Newline()
}

// isOptionsAPI is a cheap heuristic over a plain script's raw text: it
// never parses the script, it only looks for the substrings an
// Options-API component always contains alongside its default export.
// False positives/negatives are acceptable here, this only feeds an
// informational note, never a diagnostic.
func isOptionsAPI(content string) bool {
	if !strings.Contains(content, "export default") {
		return false
	}
	return strings.Contains(content, "defineComponent") ||
		strings.Contains(content, "components:") ||
		strings.Contains(content, "props:") ||
		strings.Contains(content, "data()") ||
		strings.Contains(content, "data:") ||
		strings.Contains(content, "methods:") ||
		strings.Contains(content, "computed:")
}
