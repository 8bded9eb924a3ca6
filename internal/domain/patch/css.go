package patch

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// HasCSSImport reports whether stylesheet already imports target, either as
// `@import "target";` or `@import url(target);`. Comments and whitespace are
// handled by the CSS lexer, so commented-out imports do not count.
func HasCSSImport(stylesheet []byte, target string) bool {
	lexer := css.NewLexer(parse.NewInputBytes(stylesheet))

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			return false
		}

		if tt != css.AtKeywordToken || !strings.EqualFold(string(text), "@import") {
			continue
		}

		if importTarget(lexer) == target {
			return true
		}
	}
}

// importTarget returns the unquoted location following an @import keyword.
func importTarget(lexer *css.Lexer) string {
	for {
		tt, text := lexer.Next()

		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.StringToken:
			return unquote(string(text))
		case css.URLToken:
			return urlTarget(string(text))
		default:
			return ""
		}
	}
}

func urlTarget(token string) string {
	if len(token) < len("url()") || !strings.EqualFold(token[:4], "url(") {
		return ""
	}

	inner := strings.TrimSuffix(token[4:], ")")

	return unquote(strings.TrimSpace(inner))
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}

	return s
}
