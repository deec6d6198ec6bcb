// Package config loads tsconfig.json/jsconfig.json files: finding one by
// walking up from a starting directory, stripping the JSONC comments real
// tsconfig files allow, and resolving an extends chain into one flattened
// TSConfig a checker run can use directly.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-json-experiment/json"
)

// CompilerOptions mirrors the subset of tsconfig's compilerOptions the
// pipeline cares about. Fields are pointers/zero-able so an unset option
// in a child config can fall through to its extends base.
type CompilerOptions struct {
	Target           string              `json:"target,omitempty"`
	Module           string              `json:"module,omitempty"`
	ModuleResolution string              `json:"moduleResolution,omitempty"`
	Strict           *bool               `json:"strict,omitempty"`
	JSX              string              `json:"jsx,omitempty"`
	BaseURL          string              `json:"baseUrl,omitempty"`
	Paths            map[string][]string `json:"paths,omitempty"`
	Types            []string            `json:"types,omitempty"`
}

// IsStrict reports whether strict mode is on, defaulting to false like tsc.
func (c CompilerOptions) IsStrict() bool {
	return c.Strict != nil && *c.Strict
}

// VueCompilerOptions is the vueCompilerOptions block vue-tsc style configs
// add on top of a plain tsconfig.
type VueCompilerOptions struct {
	Target                 float64  `json:"target,omitempty"`
	StrictTemplates        *bool    `json:"strictTemplates,omitempty"`
	CheckUnknownComponents *bool    `json:"checkUnknownComponents,omitempty"`
	CheckUnknownDirectives *bool    `json:"checkUnknownDirectives,omitempty"`
	Extensions             []string `json:"extensions,omitempty"`
	NativeTags             []string `json:"nativeTags,omitempty"`
}

// TargetVersion returns the configured Vue target, defaulting to the
// current major version like the upstream tool does.
func (v VueCompilerOptions) TargetVersion() float64 {
	if v.Target == 0 {
		return 3.5
	}
	return v.Target
}

// FileExtensions returns which extensions are treated as Vue components.
func (v VueCompilerOptions) FileExtensions() []string {
	if len(v.Extensions) == 0 {
		return []string{".vue"}
	}
	return v.Extensions
}

// TSConfig is a parsed, not-yet-resolved tsconfig.json/jsconfig.json.
type TSConfig struct {
	CompilerOptions    CompilerOptions     `json:"compilerOptions,omitempty"`
	Include            []string            `json:"include,omitempty"`
	Exclude            []string            `json:"exclude,omitempty"`
	Files              []string            `json:"files,omitempty"`
	Extends            string              `json:"extends,omitempty"`
	VueCompilerOptions VueCompilerOptions  `json:"vueCompilerOptions,omitempty"`

	dir string // directory the file was loaded from, for extends/include resolution
}

// Load reads and parses a tsconfig-style file at path, stripping JSONC
// comments first since tsconfig files are allowed them but json.Unmarshal
// is not.
func Load(path string) (*TSConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	stripped := stripJSONComments(string(raw))

	var cfg TSConfig
	if err := json.Unmarshal([]byte(stripped), &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return &cfg, nil
}

// Find walks up from dir looking for tsconfig.json, then jsconfig.json,
// returning the first one found, or "" if none exists up to the root.
func Find(dir string) string {
	current := dir
	for {
		if p := filepath.Join(current, "tsconfig.json"); fileExists(p) {
			return p
		}
		if p := filepath.Join(current, "jsconfig.json"); fileExists(p) {
			return p
		}
		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Resolve follows the extends chain, loading and merging each base config
// in turn; the most specific file's own values are left untouched. Only
// compilerOptions target, module, moduleResolution, strict and paths,
// include, exclude and vueCompilerOptions.target are inherited when unset;
// no other field is taken from a base config.
func (c *TSConfig) Resolve() error {
	if c.Extends == "" {
		return nil
	}
	basePath := c.Extends
	if !filepath.IsAbs(basePath) {
		basePath = filepath.Join(c.dir, basePath)
	}
	base, err := Load(basePath)
	if err != nil {
		return err
	}
	if err := base.Resolve(); err != nil {
		return err
	}
	c.Extends = ""
	c.mergeFrom(base)
	return nil
}

func (c *TSConfig) mergeFrom(base *TSConfig) {
	if c.CompilerOptions.Target == "" {
		c.CompilerOptions.Target = base.CompilerOptions.Target
	}
	if c.CompilerOptions.Module == "" {
		c.CompilerOptions.Module = base.CompilerOptions.Module
	}
	if c.CompilerOptions.ModuleResolution == "" {
		c.CompilerOptions.ModuleResolution = base.CompilerOptions.ModuleResolution
	}
	if c.CompilerOptions.Strict == nil {
		c.CompilerOptions.Strict = base.CompilerOptions.Strict
	}
	if len(c.CompilerOptions.Paths) == 0 {
		c.CompilerOptions.Paths = base.CompilerOptions.Paths
	}
	if len(c.Include) == 0 {
		c.Include = base.Include
	}
	if len(c.Exclude) == 0 {
		c.Exclude = base.Exclude
	}
	if c.VueCompilerOptions.Target == 0 {
		c.VueCompilerOptions.Target = base.VueCompilerOptions.Target
	}
}

// stripJSONComments removes // and /* */ comments outside of string
// literals, leaving everything inside quotes (including a literal "//")
// untouched.
func stripJSONComments(src string) string {
	out := make([]byte, 0, len(src))
	inString := false
	escaped := false
	for i := 0; i < len(src); i++ {
		c := src[i]

		if escaped {
			out = append(out, c)
			escaped = false
			continue
		}
		if c == '\\' && inString {
			out = append(out, c)
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			out = append(out, c)
			continue
		}
		if inString {
			out = append(out, c)
			continue
		}

		if c == '/' && i+1 < len(src) {
			switch src[i+1] {
			case '/':
				for i < len(src) && src[i] != '\n' {
					i++
				}
				out = append(out, '\n')
				continue
			case '*':
				i += 2
				for i+1 < len(src) && !(src[i] == '*' && src[i+1] == '/') {
					i++
				}
				i++
				continue
			}
		}
		out = append(out, c)
	}
	return string(out)
}
