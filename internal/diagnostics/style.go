package diagnostics

import (
	"io"
	"strings"

	"github.com/tdewolff/parse/v2/css"
	"github.com/vuetsc/compiler/internal/component"
	"github.com/vuetsc/compiler/internal/loc"
)

// CheckStyles tokenizes every <style> block with a plain-CSS lang (an
// empty lang, "css", or "postcss"; preprocessor dialects like scss/less
// have their own grammar and are left alone) and reports a single
// diagnostic if the tokenizer hits a syntax error before EOF. Style
// blocks are otherwise uninterpreted by the rest of the pipeline, so this
// is the only check that ever looks inside one.
func CheckStyles(c *component.Component) []loc.Diagnostic {
	var diags []loc.Diagnostic
	for _, style := range c.Styles {
		if !isPlainCSS(style.Lang) {
			continue
		}
		if offset, ok := firstTokenizeError(style.Content); ok {
			diags = append(diags, loc.Diagnostic{
				Code:    loc.WARNING_STYLE_SYNTAX,
				Message: "style block contains malformed CSS",
				Span:    loc.Span{Start: style.ContentSpan.Start + offset, End: style.ContentSpan.Start + offset},
			})
		}
	}
	return diags
}

func isPlainCSS(lang string) bool {
	switch strings.ToLower(lang) {
	case "", "css", "postcss":
		return true
	default:
		return false
	}
}

// firstTokenizeError runs content through the CSS tokenizer and reports
// the byte offset of the first error the tokenizer itself flags, distinct
// from a clean io.EOF at the end of input.
func firstTokenizeError(content string) (int, bool) {
	z := css.NewTokenizer(strings.NewReader(content))
	consumed := 0
	for {
		tt, text := z.Next()
		if tt == css.ErrorToken {
			if z.Err() == io.EOF {
				return 0, false
			}
			return consumed, true
		}
		consumed += len(text)
	}
}
