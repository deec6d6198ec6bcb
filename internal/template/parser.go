package template

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vuetsc/compiler/internal/loc"
)

// ParseErrorCode distinguishes the handful of ways a template node can be
// structurally malformed (a malformed v-for expression, a missing tag
// name). Every code is recoverable: the parser always produces a usable
// tree alongside whatever errors it collected.
type ParseErrorCode int

const (
	ErrUnexpectedToken ParseErrorCode = iota
	ErrInvalidVFor
)

type ParseError struct {
	Message string
	Span    loc.Span
	Code    ParseErrorCode
}

func (e *ParseError) Error() string { return e.Message }

// Parse compiles template source into an Ast. It never aborts: a node the
// parser cannot make sense of is recorded as an error and the parser
// advances past it, the same recovery discipline the component parser
// uses for duplicate blocks. A malformed v-for drops the directive and
// keeps the element as a plain node; a stray '<' with no tag name is kept
// as literal text.
func Parse(source string) (*Ast, []*ParseError) {
	p := &parser{source: source}
	children := p.parseChildren("")
	return &Ast{Children: children, Span: loc.Span{Start: 0, End: len(source)}}, p.errors
}

type parser struct {
	source string
	pos    int
	errors []*ParseError
}

func (p *parser) addError(code ParseErrorCode, message string, span loc.Span) {
	p.errors = append(p.errors, &ParseError{Message: message, Span: span, Code: code})
}

func (p *parser) remaining() string { return p.source[p.pos:] }
func (p *parser) isEOF() bool       { return p.pos >= len(p.source) }

func (p *parser) peek() (rune, bool) {
	if p.isEOF() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(p.remaining())
	return r, true
}

func (p *parser) advance() (rune, bool) {
	r, ok := p.peek()
	if !ok {
		return 0, false
	}
	_, size := utf8.DecodeRuneInString(p.remaining())
	p.pos += size
	return r, true
}

func (p *parser) startsWith(s string) bool { return strings.HasPrefix(p.remaining(), s) }

func (p *parser) consume(s string) bool {
	if p.startsWith(s) {
		p.pos += len(s)
		return true
	}
	return false
}

func (p *parser) skipWhitespace() {
	for {
		r, ok := p.peek()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		p.advance()
	}
}

func (p *parser) readWhile(pred func(rune) bool) string {
	start := p.pos
	for {
		r, ok := p.peek()
		if !ok || !pred(r) {
			break
		}
		p.advance()
	}
	return p.source[start:p.pos]
}

func (p *parser) readUntil(s string) string {
	start := p.pos
	for !p.isEOF() && !p.startsWith(s) {
		p.advance()
	}
	return p.source[start:p.pos]
}

// parseChildren reads nodes until it sees the matching end tag for
// endTag (case-insensitive), or EOF if endTag is empty (the document root).
func (p *parser) parseChildren(endTag string) []Node {
	var children []Node

	for {
		if p.isEOF() {
			break
		}

		if endTag != "" && p.startsWith("</") {
			rest := p.remaining()[2:]
			name := rest
			for i, r := range rest {
				if unicode.IsSpace(r) || r == '>' {
					name = rest[:i]
					break
				}
			}
			if strings.EqualFold(name, endTag) {
				break
			}
		}

		node := p.parseNode()
		if node != nil {
			children = append(children, node)
		}
	}

	return children
}

func (p *parser) parseNode() Node {
	if p.startsWith("<!--") {
		return p.parseComment()
	}
	if p.startsWith("</") {
		return nil
	}
	if p.startsWith("<") {
		return p.parseElement()
	}
	if p.startsWith("{{") {
		return p.parseInterpolation()
	}
	return p.parseText()
}

func (p *parser) parseComment() *Comment {
	start := p.pos
	p.consume("<!--")
	content := p.readUntil("-->")
	p.consume("-->")
	return &Comment{baseNode: baseNode{loc.Span{Start: start, End: p.pos}}, Content: content}
}

func (p *parser) parseInterpolation() *Interpolation {
	start := p.pos
	p.consume("{{")
	exprStart := p.pos
	content := strings.TrimSpace(p.readUntil("}}"))
	exprEnd := p.pos
	p.consume("}}")
	return &Interpolation{
		baseNode:   baseNode{loc.Span{Start: start, End: p.pos}},
		Expression: NewExpression(content, loc.Span{Start: exprStart, End: exprEnd}),
	}
}

func (p *parser) parseText() *Text {
	start := p.pos
	for !p.isEOF() && !p.startsWith("<") && !p.startsWith("{{") {
		p.advance()
	}
	return &Text{baseNode: baseNode{loc.Span{Start: start, End: p.pos}}, Content: p.source[start:p.pos]}
}

func isTagNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
		r == '-' || r == '_' || r == ':'
}

// parseElement always returns a usable node. A '<' that turns out not to
// be followed by a tag name is recorded as an error and handed back as a
// one-character Text node, so the caller advances past exactly the '<'
// and resumes parsing normally.
func (p *parser) parseElement() Node {
	start := p.pos
	p.consume("<")
	p.skipWhitespace()

	tagStart := p.pos
	tag := p.readWhile(isTagNameRune)
	tagSpan := loc.Span{Start: tagStart, End: p.pos}

	if tag == "" {
		p.addError(ErrUnexpectedToken, "expected tag name", loc.Span{Start: start, End: p.pos})
		p.pos = start + 1
		return &Text{baseNode: baseNode{loc.Span{Start: start, End: p.pos}}, Content: p.source[start:p.pos]}
	}

	attrs, directives, props, events := p.parseAttributes()

	p.skipWhitespace()

	selfClosing := p.consume("/>")
	if !selfClosing {
		p.consume(">")
	}

	isVoid := isVoidElement(tag)

	var children []Node
	if !selfClosing && !isVoid {
		children = p.parseChildren(tag)
	}

	if !selfClosing && !isVoid {
		p.skipWhitespace()
		if p.startsWith("</") {
			p.consume("</")
			p.skipWhitespace()
			p.readWhile(isTagNameRune)
			p.skipWhitespace()
			p.consume(">")
		}
	}

	span := loc.Span{Start: start, End: p.pos}

	var vIf, vElseIf, vElse, vFor *Directive
	for i := range directives {
		switch directives[i].Name {
		case "if":
			vIf = &directives[i]
		case "else-if":
			vElseIf = &directives[i]
		case "else":
			vElse = &directives[i]
		case "for":
			vFor = &directives[i]
		}
	}

	if vFor != nil {
		remainingDirectives := make([]Directive, 0, len(directives))
		for _, d := range directives {
			if d.Name != "for" {
				remainingDirectives = append(remainingDirectives, d)
			}
		}

		if vFor.Value != nil {
			if forNode, ok := p.parseVForExpression(vFor.Value.Content, vFor.Value.Span); ok {
				var keyAttr *Expression
				for _, prop := range props {
					if prop.Name == "key" {
						v := prop.Value
						keyAttr = &v
						break
					}
				}

				elem := p.createElementNode(tag, tagSpan, attrs, remainingDirectives, props, events, children, selfClosing, span)
				forNode.Children = []Node{elem}
				forNode.span = span
				forNode.KeyAttr = keyAttr
				return forNode
			}
		} else {
			p.addError(ErrInvalidVFor, "v-for has no value", vFor.Span)
		}

		// Malformed or valueless v-for: drop the directive, keep the
		// element as a plain node instead of losing the whole subtree.
		directives = remainingDirectives
		vIf, vElseIf, vElse = nil, nil, nil
		for i := range directives {
			switch directives[i].Name {
			case "if":
				vIf = &directives[i]
			case "else-if":
				vElseIf = &directives[i]
			case "else":
				vElse = &directives[i]
			}
		}
	}

	if vIf != nil || vElseIf != nil || vElse != nil {
		var branchType IfBranchType
		var condition *Expression
		switch {
		case vIf != nil:
			branchType, condition = BranchIf, vIf.Value
		case vElseIf != nil:
			branchType, condition = BranchElseIf, vElseIf.Value
		default:
			branchType = BranchElse
		}

		filtered := make([]Directive, 0, len(directives))
		for _, d := range directives {
			if d.Name != "if" && d.Name != "else-if" && d.Name != "else" {
				filtered = append(filtered, d)
			}
		}

		elem := p.createElementNode(tag, tagSpan, attrs, filtered, props, events, children, selfClosing, span)
		branch := IfBranch{Condition: condition, BranchType: branchType, Children: []Node{elem}, Span: span}
		return &If{baseNode: baseNode{span}, Branches: []IfBranch{branch}}
	}

	if tag == "slot" {
		var nameExpr Expression
		found := false
		remainingProps := make([]Prop, 0, len(props))
		for _, prop := range props {
			if prop.Name == "name" {
				nameExpr = prop.Value
				found = true
			} else {
				remainingProps = append(remainingProps, prop)
			}
		}
		if !found {
			nameExpr = NewStaticExpression("default", span)
		}
		return &SlotOutlet{baseNode: baseNode{span}, Name: nameExpr, Props: remainingProps, Fallback: children}
	}

	if tag == "template" {
		for _, d := range directives {
			if d.IsSlot() {
				return &TemplateHost{baseNode: baseNode{span}, Directives: directives, Children: children}
			}
		}
	}

	return p.createElementNode(tag, tagSpan, attrs, directives, props, events, children, selfClosing, span)
}

func (p *parser) createElementNode(
	tag string, tagSpan loc.Span, attrs []Attribute, directives []Directive,
	props []Prop, events []EventListener, children []Node, selfClosing bool, span loc.Span,
) *Element {
	return &Element{
		baseNode:    baseNode{span},
		Tag:         tag,
		TagSpan:     tagSpan,
		IsComponent: ClassifyTag(tag) == KindComponent,
		Attrs:       attrs,
		Directives:  directives,
		Props:       props,
		Events:      events,
		Children:    children,
		SelfClosing: selfClosing,
	}
}

func isAttrNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
		r == '-' || r == '_' || r == ':' || r == '.' || r == '@' || r == '#' || r == '[' || r == ']'
}

func (p *parser) parseAttributes() ([]Attribute, []Directive, []Prop, []EventListener) {
	var attrs []Attribute
	var directives []Directive
	var props []Prop
	var events []EventListener

	for {
		p.skipWhitespace()
		if p.isEOF() || p.startsWith(">") || p.startsWith("/>") {
			break
		}

		attrStart := p.pos
		name := p.readWhile(isAttrNameRune)
		if name == "" {
			p.advance()
			continue
		}

		p.skipWhitespace()

		var value string
		var valueSpan loc.Span
		hasValue := false
		if p.consume("=") {
			p.skipWhitespace()
			v, s := p.parseAttributeValue()
			value, valueSpan, hasValue = v, s, true
		}

		span := loc.Span{Start: attrStart, End: p.pos}

		switch {
		// v-bind:/v-on: must be checked before the generic "v-" prefix
		// below, since both also start with "v-".
		case strings.HasPrefix(name, "v-bind:"):
			propName, isDynamic := parsePropName(name[len("v-bind:"):])
			if hasValue {
				props = append(props, Prop{Name: propName, Value: NewExpression(value, valueSpan), IsDynamic: isDynamic, Span: span})
			}
		case strings.HasPrefix(name, "v-on:"):
			eventName, modifiers := parseEventWithModifiers(name[len("v-on:"):])
			isDynamic := strings.HasPrefix(eventName, "[") && strings.HasSuffix(eventName, "]")
			clean := eventName
			if isDynamic {
				clean = eventName[1 : len(eventName)-1]
			}
			if hasValue {
				events = append(events, EventListener{Name: clean, Handler: NewExpression(value, valueSpan), IsDynamic: isDynamic, Modifiers: modifiers, Span: span})
			}

		case strings.HasPrefix(name, "v-"):
			directive := p.parseDirective(name[2:], value, valueSpan, hasValue, span)
			directives = append(directives, directive)

		case strings.HasPrefix(name, ":"):
			propName, isDynamic := parsePropName(name[1:])
			if hasValue {
				props = append(props, Prop{Name: propName, Value: NewExpression(value, valueSpan), IsDynamic: isDynamic, Span: span})
			}

		case strings.HasPrefix(name, "@"):
			eventName, modifiers := parseEventWithModifiers(name[1:])
			isDynamic := strings.HasPrefix(eventName, "[") && strings.HasSuffix(eventName, "]")
			clean := eventName
			if isDynamic {
				clean = eventName[1 : len(eventName)-1]
			}
			if hasValue {
				events = append(events, EventListener{Name: clean, Handler: NewExpression(value, valueSpan), IsDynamic: isDynamic, Modifiers: modifiers, Span: span})
			}

		case strings.HasPrefix(name, "#"):
			slotName := name[1:]
			arg := &DirectiveArg{Span: span}
			if strings.HasPrefix(slotName, "[") && strings.HasSuffix(slotName, "]") {
				expr := NewExpression(slotName[1:len(slotName)-1], span)
				arg.IsDynamic = true
				arg.Dynamic = &expr
			} else {
				arg.Static = slotName
			}
			d := Directive{Name: "slot", Arg: arg, Span: span}
			if hasValue {
				expr := NewExpression(value, valueSpan)
				d.Value = &expr
			}
			directives = append(directives, d)

		default:
			attrs = append(attrs, Attribute{Name: name, Value: value, HasValue: hasValue, Span: span, ValueSpan: valueSpan})
		}
	}

	return attrs, directives, props, events
}

func (p *parser) parseAttributeValue() (string, loc.Span) {
	start := p.pos
	if p.startsWith("\"") || p.startsWith("'") {
		quote, _ := p.advance()
		valueStart := p.pos
		for !p.isEOF() {
			r, ok := p.peek()
			if !ok || r == quote {
				break
			}
			p.advance()
		}
		valueEnd := p.pos
		p.advance() // closing quote
		return p.source[valueStart:valueEnd], loc.Span{Start: valueStart, End: valueEnd}
	}
	value := p.readWhile(func(r rune) bool { return !unicode.IsSpace(r) && r != '>' && r != '/' })
	return value, loc.Span{Start: start, End: p.pos}
}

func (p *parser) parseDirective(nameWithMods, value string, valueSpan loc.Span, hasValue bool, span loc.Span) Directive {
	parts := strings.Split(nameWithMods, ".")
	nameAndArg := parts[0]
	modifiers := parts[1:]

	var name string
	var arg *DirectiveArg
	if colon := strings.IndexByte(nameAndArg, ':'); colon >= 0 {
		name = nameAndArg[:colon]
		argStr := nameAndArg[colon+1:]
		if strings.HasPrefix(argStr, "[") && strings.HasSuffix(argStr, "]") {
			expr := NewExpression(argStr[1:len(argStr)-1], span)
			arg = &DirectiveArg{IsDynamic: true, Dynamic: &expr, Span: span}
		} else {
			arg = &DirectiveArg{Static: argStr, Span: span}
		}
	} else {
		name = nameAndArg
	}

	d := Directive{Name: name, Arg: arg, Modifiers: modifiers, Span: span}
	if hasValue {
		expr := NewExpression(value, valueSpan)
		d.Value = &expr
	}
	return d
}

// leadingTrimLen returns how many bytes of leading whitespace strings.TrimSpace
// would remove from s, so a substring's own span can be derived from its
// parent's span instead of reusing the parent's span wholesale.
func leadingTrimLen(s string) int {
	return len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))
}

// spanOf returns the span of trimmed (the result of strings.TrimSpace(raw))
// given the absolute offset at which raw itself begins.
func spanOf(raw string, rawStart int) (trimmed string, span loc.Span) {
	trimmed = strings.TrimSpace(raw)
	start := rawStart + leadingTrimLen(raw)
	return trimmed, loc.Span{Start: start, End: start + len(trimmed)}
}

// parseVForExpression attempts to parse a v-for directive's value. On
// failure it records a recoverable error and reports ok=false; the caller
// falls back to treating the element as a plain node with the v-for
// directive dropped.
func (p *parser) parseVForExpression(raw string, span loc.Span) (*For, bool) {
	expr, exprSpan := spanOf(raw, span.Start)

	var aliasPart, sourcePart string
	var aliasRawStart, sourceRawStart int
	if idx := strings.Index(expr, " in "); idx >= 0 {
		aliasPart, sourcePart = expr[:idx], expr[idx+4:]
		aliasRawStart, sourceRawStart = exprSpan.Start, exprSpan.Start+idx+4
	} else if idx := strings.Index(expr, " of "); idx >= 0 {
		aliasPart, sourcePart = expr[:idx], expr[idx+4:]
		aliasRawStart, sourceRawStart = exprSpan.Start, exprSpan.Start+idx+4
	} else {
		p.addError(ErrInvalidVFor, "invalid v-for expression", span)
		return nil, false
	}

	var aliasSpan, sourceSpan loc.Span
	aliasPart, aliasSpan = spanOf(aliasPart, aliasRawStart)
	sourcePart, sourceSpan = spanOf(sourcePart, sourceRawStart)

	var value ForAlias
	var key, index *ForAlias

	if strings.HasPrefix(aliasPart, "(") && strings.HasSuffix(aliasPart, ")") {
		inner := aliasPart[1 : len(aliasPart)-1]
		innerStart := aliasSpan.Start + 1
		rawParts := strings.Split(inner, ",")
		parts := make([]string, len(rawParts))
		spans := make([]loc.Span, len(rawParts))
		cursor := innerStart
		for i, part := range rawParts {
			parts[i], spans[i] = spanOf(part, cursor)
			cursor += len(part) + 1 // +1 skips the comma separator
		}
		switch len(parts) {
		case 1:
			value = ForAlias{Pattern: parts[0], Span: spans[0]}
		case 2:
			value = ForAlias{Pattern: parts[0], Span: spans[0]}
			key = &ForAlias{Pattern: parts[1], Span: spans[1]}
		case 3:
			value = ForAlias{Pattern: parts[0], Span: spans[0]}
			key = &ForAlias{Pattern: parts[1], Span: spans[1]}
			index = &ForAlias{Pattern: parts[2], Span: spans[2]}
		default:
			p.addError(ErrInvalidVFor, "invalid v-for aliases", span)
			return nil, false
		}
	} else {
		value = ForAlias{Pattern: aliasPart, Span: aliasSpan}
	}

	return &For{
		baseNode: baseNode{span},
		Source:   NewExpression(sourcePart, sourceSpan),
		Value:    value,
		Key:      key,
		Index:    index,
	}, true
}

func isVoidElement(tag string) bool {
	switch strings.ToLower(tag) {
	case "area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "param", "source", "track", "wbr":
		return true
	default:
		return false
	}
}

func parsePropName(name string) (string, bool) {
	if strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]") {
		return name[1 : len(name)-1], true
	}
	base := name
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		base = name[:dot]
	}
	return base, false
}

func parseEventWithModifiers(name string) (string, []string) {
	parts := strings.Split(name, ".")
	if len(parts) > 1 {
		return parts[0], parts[1:]
	}
	return name, nil
}
