package component

import (
	"fmt"
	"strings"

	"github.com/vuetsc/compiler/internal/loc"
)

// ParseError is a non-fatal problem found while splitting an SFC into
// blocks: a duplicate template, script, or script-setup tag. Parsing keeps
// the first occurrence and records every subsequent one as an error rather
// than aborting, since the rest of the file is still worth compiling.
type ParseError struct {
	Code    loc.DiagnosticCode
	Message string
	Span    loc.Span
}

func (e *ParseError) Error() string {
	return e.Message
}

func duplicateBlockError(kind string, span loc.Span) *ParseError {
	return &ParseError{
		Code:    loc.ERROR_DUPLICATE_BLOCK,
		Message: fmt.Sprintf("duplicate %s block", kind),
		Span:    span,
	}
}

// Parse splits source into its constituent SFC blocks. It never returns an
// error itself (a malformed component is still a component with some
// blocks missing); instead problems accumulate in the returned error slice.
func Parse(source string) (*Component, []*ParseError) {
	p := &parser{lexer: newLexer(source), source: source}
	return p.parse()
}

type parser struct {
	lexer  *lexer
	source string
	errors []*ParseError
}

func (p *parser) parse() (*Component, []*ParseError) {
	c := &Component{Content: p.source}

	for !p.lexer.IsEOF() {
		p.lexer.SkipWhitespace()
		if p.lexer.IsEOF() {
			break
		}

		if p.lexer.StartsWith("<!--") {
			if comment, ok := p.parseComment(); ok {
				c.Comments = append(c.Comments, comment)
			}
			continue
		}

		if p.lexer.StartsWith("<") && !p.lexer.StartsWith("</") {
			p.parseBlock(c)
			continue
		}

		p.lexer.NextRune()
	}

	return c, p.errors
}

func (p *parser) parseComment() (Comment, bool) {
	start := p.lexer.Pos()
	content, ok := p.lexer.ReadComment()
	if !ok {
		return Comment{}, false
	}
	return Comment{Content: content, Span: p.lexer.SpanFrom(start)}, true
}

func (p *parser) parseBlock(c *Component) {
	start := p.lexer.Pos()

	if !p.lexer.Consume("<") {
		return
	}
	p.lexer.SkipWhitespace()

	rawName, ok := p.lexer.ReadTagName()
	if !ok {
		return
	}
	tagName := strings.ToLower(rawName)

	attrs := p.parseAttributes()
	p.lexer.SkipWhitespace()

	selfClosing := p.lexer.Consume("/>")
	if !selfClosing {
		p.lexer.Consume(">")
	}
	tagEnd := p.lexer.Pos()

	var content string
	var contentSpan loc.Span
	if selfClosing {
		contentSpan = loc.Span{Start: tagEnd, End: tagEnd}
	} else {
		contentStart := p.lexer.Pos()
		content = p.lexer.ReadBlockContent(tagName)
		contentSpan = loc.Span{Start: contentStart, End: p.lexer.Pos()}
	}

	if !selfClosing {
		p.lexer.SkipWhitespace()
		closeTag := "</" + tagName
		if strings.HasPrefix(strings.ToLower(p.lexer.Remaining()), closeTag) {
			p.lexer.Consume(closeTag)
			if !p.lexer.StartsWith(">") {
				p.lexer.ConsumeUntil(">")
			}
			p.lexer.Consume(">")
		}
	}

	end := p.lexer.Pos()
	span := loc.Span{Start: start, End: end}

	block := Block{
		Span:        span,
		ContentSpan: contentSpan,
		Content:     content,
		Attributes:  attrs,
	}

	switch tagName {
	case "template":
		if c.Template != nil {
			p.errors = append(p.errors, duplicateBlockError("template", span))
			return
		}
		lang, _ := block.GetAttr("lang")
		c.Template = &TemplateBlock{
			Block:      block,
			Lang:       lang,
			Functional: block.HasAttr("functional"),
			Src:        getSrcAttr(attrs),
		}
	case "script":
		isSetup := block.HasAttr("setup")
		lang, _ := block.GetAttr("lang")
		if isSetup {
			if c.ScriptSetup != nil {
				p.errors = append(p.errors, duplicateBlockError("script setup", span))
				return
			}
			generic, hasGeneric := block.GetAttr("generic")
			var genericSpan loc.Span
			for _, a := range attrs {
				if equalFoldASCII(a.Name, "generic") && a.HasValue {
					genericSpan = a.ValueSpan
				}
			}
			c.ScriptSetup = &ScriptSetupBlock{
				Block:       block,
				Lang:        lang,
				Generic:     generic,
				GenericSpan: genericSpan,
				HasGeneric:  hasGeneric,
			}
		} else {
			if c.Script != nil {
				p.errors = append(p.errors, duplicateBlockError("script", span))
				return
			}
			c.Script = &ScriptBlock{Block: block, Lang: lang, Src: getSrcAttr(attrs)}
		}
	case "style":
		lang, _ := block.GetAttr("lang")
		module, hasModule := "", false
		if block.HasAttr("module") {
			hasModule = true
			if v, ok := block.GetAttr("module"); ok {
				module = v
			} else {
				module = "$style"
			}
		}
		c.Styles = append(c.Styles, StyleBlock{
			Block:     block,
			Lang:      lang,
			Scoped:    block.HasAttr("scoped"),
			Module:    module,
			HasModule: hasModule,
			Src:       getSrcAttr(attrs),
		})
	default:
		c.CustomBlocks = append(c.CustomBlocks, CustomBlock{Block: block, BlockType: tagName})
	}
}

func (p *parser) parseAttributes() []BlockAttribute {
	var attrs []BlockAttribute

	for {
		p.lexer.SkipWhitespace()

		if p.lexer.StartsWith(">") || p.lexer.StartsWith("/>") || p.lexer.IsEOF() {
			break
		}

		attrStart := p.lexer.Pos()
		name, ok := p.lexer.ReadAttrName()
		if !ok {
			p.lexer.NextRune()
			continue
		}

		p.lexer.SkipWhitespace()

		if p.lexer.Consume("=") {
			p.lexer.SkipWhitespace()

			var value string
			var valueSpan loc.Span
			if p.lexer.StartsWith("\"") || p.lexer.StartsWith("'") {
				valueStart := p.lexer.Pos() + 1
				v, _, ok := p.lexer.ReadQuotedString()
				if !ok {
					continue
				}
				value = v
				valueSpan = loc.Span{Start: valueStart, End: p.lexer.Pos() - 1}
			} else {
				valueStart := p.lexer.Pos()
				value = p.lexer.ReadUnquotedValue()
				valueSpan = loc.Span{Start: valueStart, End: p.lexer.Pos()}
			}

			span := p.lexer.SpanFrom(attrStart)
			attrs = append(attrs, BlockAttribute{
				Name:      name,
				Value:     value,
				HasValue:  true,
				Span:      span,
				ValueSpan: valueSpan,
			})
		} else {
			span := p.lexer.SpanFrom(attrStart)
			attrs = append(attrs, BlockAttribute{Name: name, Span: span})
		}
	}

	return attrs
}
