package component

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vuetsc/compiler/internal/loc"
)

// lexer scans raw SFC bytes without ever building a parse tree itself; it
// hands the parser exactly the slices it asks for, advancing its own
// position as it goes. It operates on bytes, decoding runes only where a
// multi-byte character could legally appear (tag names stay ASCII in
// practice, but whitespace skipping must handle Unicode whitespace).
type lexer struct {
	source string
	pos    int
}

func newLexer(source string) *lexer {
	return &lexer{source: source}
}

func (l *lexer) Pos() int {
	return l.pos
}

func (l *lexer) Remaining() string {
	return l.source[l.pos:]
}

func (l *lexer) PeekRune() (rune, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos:])
	return r, true
}

func (l *lexer) NextRune() (rune, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += size
	return r, true
}

// SkipWhitespace advances past runs of Unicode whitespace and returns how
// many bytes it skipped.
func (l *lexer) SkipWhitespace() int {
	start := l.pos
	for {
		r, ok := l.PeekRune()
		if !ok || !unicode.IsSpace(r) {
			break
		}
		l.NextRune()
	}
	return l.pos - start
}

func (l *lexer) StartsWith(s string) bool {
	return strings.HasPrefix(l.Remaining(), s)
}

// Consume advances past s if the remaining input starts with it.
func (l *lexer) Consume(s string) bool {
	if l.StartsWith(s) {
		l.pos += len(s)
		return true
	}
	return false
}

// ConsumeWhile advances while pred holds for the next rune, returning the
// consumed slice.
func (l *lexer) ConsumeWhile(pred func(rune) bool) string {
	start := l.pos
	for {
		r, ok := l.PeekRune()
		if !ok || !pred(r) {
			break
		}
		l.NextRune()
	}
	return l.source[start:l.pos]
}

// ConsumeUntil advances until s is found (or EOF), returning the consumed
// slice.
func (l *lexer) ConsumeUntil(s string) string {
	start := l.pos
	for l.pos < len(l.source) && !l.StartsWith(s) {
		l.NextRune()
	}
	return l.source[start:l.pos]
}

// ReadTagName reads an HTML-ish tag name: must start with a letter or
// underscore, then letters/digits/hyphen/underscore/colon (colon allows
// namespaced custom-block names like <i18n:en>).
func (l *lexer) ReadTagName() (string, bool) {
	start := l.pos
	r, ok := l.PeekRune()
	if !ok || !(isASCIILetter(r) || r == '_') {
		return "", false
	}
	l.NextRune()
	l.ConsumeWhile(func(r rune) bool {
		return isASCIILetter(r) || isASCIIDigit(r) || r == '-' || r == '_' || r == ':'
	})
	return l.source[start:l.pos], true
}

// ReadAttrName reads an attribute name, permitting the Vue directive
// prefixes (:, @, #, v-...) at the start.
func (l *lexer) ReadAttrName() (string, bool) {
	start := l.pos
	r, ok := l.PeekRune()
	if !ok {
		return "", false
	}
	if !(isASCIILetter(r) || r == '_' || r == ':' || r == '@' || r == '#' || r == '[') {
		return "", false
	}
	l.NextRune()
	l.ConsumeWhile(func(r rune) bool {
		return isASCIILetter(r) || isASCIIDigit(r) || r == '-' || r == '_' ||
			r == ':' || r == '.' || r == '[' || r == ']'
	})
	return l.source[start:l.pos], true
}

// ReadQuotedString reads a '"'- or '\''-delimited string, honoring simple
// backslash escapes, and returns its inner content (without the quotes).
// ok is false if the remaining input does not start with a quote.
func (l *lexer) ReadQuotedString() (value string, quote byte, ok bool) {
	r, has := l.PeekRune()
	if !has || (r != '"' && r != '\'') {
		return "", 0, false
	}
	quote = byte(r)
	l.NextRune()
	start := l.pos
	for {
		r, has := l.PeekRune()
		if !has {
			return l.source[start:l.pos], quote, true
		}
		if byte(r) == quote {
			value = l.source[start:l.pos]
			l.NextRune()
			return value, quote, true
		}
		if r == '\\' {
			l.NextRune()
			l.NextRune()
			continue
		}
		l.NextRune()
	}
}

// ReadUnquotedValue reads an unquoted attribute value: anything up to
// whitespace, '>', '/' or '='.
func (l *lexer) ReadUnquotedValue() string {
	return l.ConsumeWhile(func(r rune) bool {
		return !unicode.IsSpace(r) && r != '>' && r != '/' && r != '='
	})
}

// ReadComment reads "<!-- ... -->" and returns the inner content.
func (l *lexer) ReadComment() (string, bool) {
	if !l.Consume("<!--") {
		return "", false
	}
	content := l.ConsumeUntil("-->")
	l.Consume("-->")
	return content, true
}

// ReadBlockContent reads until the matching "</closingTag" is found,
// case-insensitively, requiring the match be followed by '>', whitespace,
// or EOF so "</templates>" does not falsely close a "<template>" block.
func (l *lexer) ReadBlockContent(closingTag string) string {
	start := l.pos
	pattern := "</" + closingTag

	for l.pos < len(l.source) {
		remaining := l.Remaining()
		if len(remaining) >= len(pattern) && strings.EqualFold(remaining[:len(pattern)], pattern) {
			var after rune = -1
			if len(remaining) > len(pattern) {
				after, _ = utf8.DecodeRuneInString(remaining[len(pattern):])
			}
			if after == -1 || after == '>' || after == ' ' || after == '\t' || after == '\n' || after == '\r' {
				break
			}
		}
		l.NextRune()
	}
	return l.source[start:l.pos]
}

func (l *lexer) IsEOF() bool {
	return l.pos >= len(l.source)
}

func (l *lexer) SpanFrom(start int) loc.Span {
	return loc.Span{Start: start, End: l.pos}
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
