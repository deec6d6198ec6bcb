// Package component implements the first stage of the pipeline: parsing a
// Single File Component into its constituent blocks (template, script,
// script setup, style, custom) without interpreting the content of any
// block. It never inspects expressions, never resolves imports, and never
// evaluates anything; it only finds block boundaries and attributes.
package component

import "github.com/vuetsc/compiler/internal/loc"

// ScriptLang is the language a script or script-setup block is written in,
// taken from its lang attribute.
type ScriptLang int

const (
	LangJS ScriptLang = iota
	LangJSX
	LangTS
	LangTSX
)

// ParseScriptLang maps a lang attribute value to a ScriptLang. ok is false
// for anything unrecognized, in which case callers should fall back to the
// file's default.
func ParseScriptLang(s string) (lang ScriptLang, ok bool) {
	switch s {
	case "js", "javascript":
		return LangJS, true
	case "jsx":
		return LangJSX, true
	case "ts", "typescript":
		return LangTS, true
	case "tsx":
		return LangTSX, true
	default:
		return LangJS, false
	}
}

func (l ScriptLang) Extension() string {
	switch l {
	case LangJSX:
		return "jsx"
	case LangTS:
		return "ts"
	case LangTSX:
		return "tsx"
	default:
		return "js"
	}
}

func (l ScriptLang) IsTypeScript() bool {
	return l == LangTS || l == LangTSX
}

func (l ScriptLang) IsJSX() bool {
	return l == LangJSX || l == LangTSX
}

// BlockAttribute is one attribute found on a block's opening tag, e.g.
// lang="ts" or the bare setup in <script setup>.
type BlockAttribute struct {
	Name      string
	Value     string // empty for boolean attributes; Value == "" is not distinguishable from an explicit empty string, use HasValue
	HasValue  bool
	Span      loc.Span
	ValueSpan loc.Span // zero value when HasValue is false
}

// Block carries the properties every SFC block shares: its full span
// (including open/close tags), the span and text of its content only, and
// its attributes.
type Block struct {
	Span        loc.Span
	ContentSpan loc.Span
	Content     string
	Attributes  []BlockAttribute
}

// GetAttr returns the value of the named attribute, case-insensitively.
func (b *Block) GetAttr(name string) (string, bool) {
	for _, a := range b.Attributes {
		if equalFoldASCII(a.Name, name) {
			if a.HasValue {
				return a.Value, true
			}
			return "", false
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present at all (value or
// boolean), case-insensitively.
func (b *Block) HasAttr(name string) bool {
	for _, a := range b.Attributes {
		if equalFoldASCII(a.Name, name) {
			return true
		}
	}
	return false
}

// SrcAttr describes an external-file reference via a src attribute.
type SrcAttr struct {
	Value     string
	Span      loc.Span
	ValueSpan loc.Span
}

func getSrcAttr(attrs []BlockAttribute) *SrcAttr {
	for _, a := range attrs {
		if equalFoldASCII(a.Name, "src") && a.HasValue {
			return &SrcAttr{Value: a.Value, Span: a.Span, ValueSpan: a.ValueSpan}
		}
	}
	return nil
}

// TemplateBlock is the <template> block.
type TemplateBlock struct {
	Block
	Lang       string
	Functional bool
	Src        *SrcAttr
}

// ScriptBlock is a plain (non-setup) <script> block.
type ScriptBlock struct {
	Block
	Lang string
	Src  *SrcAttr
}

// ScriptSetupBlock is a <script setup> block.
type ScriptSetupBlock struct {
	Block
	Lang        string
	Generic     string
	GenericSpan loc.Span
	HasGeneric  bool
}

// StyleBlock is a <style> block. A component may have several.
type StyleBlock struct {
	Block
	Lang    string
	Scoped  bool
	Module  string
	HasModule bool
	Src     *SrcAttr
}

// CustomBlock is any top-level block whose tag name is not one of
// template/script/style, e.g. <i18n> or <docs>.
type CustomBlock struct {
	Block
	BlockType string
}

// Comment is a top-level HTML comment, kept for round-tripping but never
// interpreted.
type Comment struct {
	Content string
	Span    loc.Span
}

// Component is the fully parsed Single File Component.
type Component struct {
	Content      string
	Template     *TemplateBlock
	Script       *ScriptBlock
	ScriptSetup  *ScriptSetupBlock
	Styles       []StyleBlock
	CustomBlocks []CustomBlock
	Comments     []Comment
}

// HasScriptSetup reports whether the component declares a script-setup
// block.
func (c *Component) HasScriptSetup() bool {
	return c.ScriptSetup != nil
}

// ScriptLangString returns the effective script lang attribute: script-setup's lang
// takes priority over the plain script block's, matching how a bundler
// resolves which block actually governs type information.
func (c *Component) ScriptLangString() string {
	if c.ScriptSetup != nil && c.ScriptSetup.Lang != "" {
		return c.ScriptSetup.Lang
	}
	if c.Script != nil {
		return c.Script.Lang
	}
	return ""
}

// IsTypeScript reports whether the governing script block is TypeScript.
func (c *Component) IsTypeScript() bool {
	switch c.ScriptLangString() {
	case "ts", "typescript", "tsx":
		return true
	default:
		return false
	}
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
