// Package codegen implements the third pipeline stage: emitting a
// synthetic TypeScript/JavaScript file from a parsed component and its
// compiled template, with a source map tying every generated byte back to
// the original file. Every exported name in the generated file begins with
// the reserved prefix __VLS_ so it can never collide with user code.
package codegen

import "github.com/vuetsc/compiler/internal/component"

// VueTarget selects which target-version feature set generation assumes.
// V3_3 is the first version with defineModel; earlier targets still accept
// the macro (the generator never rejects input) but a strict checker run
// against V3_0 output would flag it as unknown, which is the orchestrator's
// concern, not the generator's.
type VueTarget int

const (
	V3_0 VueTarget = iota
	V3_3
	V3_5
)

// Options configures one Generate call.
type Options struct {
	Target   VueTarget
	Strict   bool
	Filename string
}

// VarSource records where a scope variable came from, so diagnostics and
// future passes can distinguish a template's own props from loop aliases
// without re-deriving it.
type VarSource int

const (
	VarProps VarSource = iota
	VarSetup
	VarFor
	VarSlotProps
	VarImport
	VarBuiltin
)

type scopeVar struct {
	name   string
	source VarSource
}

// Context carries everything one Generate call accumulates as it walks the
// component: the detected script language, any setup generics, extracted
// macro info, the scope stack, the set of components/directives the
// template referenced, and a counter for fresh identifiers. It is owned by
// a single invocation and never shared across goroutines.
type Context struct {
	Options    Options
	Lang       component.ScriptLang
	Generics   string
	HasGeneric bool
	Macros     MacroInfo

	scopeVars  []scopeVar
	components map[string]bool
	directives map[string]bool
	counter    int
}

// NewContext returns an empty Context ready for one Generate call.
func NewContext(opts Options) *Context {
	return &Context{
		Options:    opts,
		components: make(map[string]bool),
		directives: make(map[string]bool),
	}
}

// UniqueID returns a fresh identifier with the given prefix, e.g.
// UniqueID("component") -> "component1", "component2", ....
func (c *Context) UniqueID(prefix string) string {
	c.counter++
	return prefix + itoa(c.counter)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// AddVar pushes a scope variable. It is always appended at the top of the
// stack; EnterScope/ExitScope manage the stack discipline that keeps
// descendants in scope and siblings out of it.
func (c *Context) AddVar(name string, source VarSource) {
	c.scopeVars = append(c.scopeVars, scopeVar{name: name, source: source})
}

// HasVar reports whether name is currently in scope.
func (c *Context) HasVar(name string) bool {
	for _, v := range c.scopeVars {
		if v.name == name {
			return true
		}
	}
	return false
}

// GetVarSource returns the source of the most recently added binding of
// name, if any is in scope.
func (c *Context) GetVarSource(name string) (VarSource, bool) {
	for i := len(c.scopeVars) - 1; i >= 0; i-- {
		if c.scopeVars[i].name == name {
			return c.scopeVars[i].source, true
		}
	}
	return 0, false
}

// EnterScope returns a marker for the current top of the scope stack.
func (c *Context) EnterScope() int {
	return len(c.scopeVars)
}

// ExitScope truncates the scope stack back to a marker returned by
// EnterScope, discarding every variable added since.
func (c *Context) ExitScope(marker int) {
	c.scopeVars = c.scopeVars[:marker]
}

// UseComponent records that the template referenced a component tag.
func (c *Context) UseComponent(name string) {
	c.components[name] = true
}

// UseDirective records that the template referenced a directive, built-in
// (model, show, ...) or custom.
func (c *Context) UseDirective(name string) {
	c.directives[name] = true
}

// UsedComponents returns every component tag the template referenced.
func (c *Context) UsedComponents() []string {
	names := make([]string, 0, len(c.components))
	for n := range c.components {
		names = append(names, n)
	}
	return names
}

// UsedDirectives returns every directive name the template referenced,
// built-in ones included.
func (c *Context) UsedDirectives() []string {
	names := make([]string, 0, len(c.directives))
	for n := range c.directives {
		names = append(names, n)
	}
	return names
}
