package evaluator

import (
	"strings"
	"unicode/utf8"
)

// Substitute replaces every standalone identifier name in text with value.
// Identifiers are recognised with the lexer's rules, so "a" inside "tan" or
// "abs" is left alone. The value is parenthesised when it sits next to
// something that would otherwise fuse with it, as in "3a" or "a(z)".
func Substitute(text, name, value string) string {
	var b strings.Builder
	l := lexer{s: text}
	last := 0
	for {
		tok := l.next()
		if tok.kind == tokEOF {
			break
		}
		if tok.kind != tokIdent || tok.text != name {
			continue
		}
		end := tok.pos + len(tok.text)
		b.WriteString(text[last:tok.pos])
		if fuses(text, tok.pos, end) {
			b.WriteString("(" + value + ")")
		} else {
			b.WriteString(value)
		}
		last = end
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

func fuses(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isIdentContinue(r) || r == '.' || r == ')' {
			return true
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isIdentContinue(r) || r == '.' || r == '(' {
			return true
		}
	}
	return false
}
