// Package snbt writes the quoted string literals of stringified NBT, the
// textual NBT syntax used inside commands.
package snbt

import "strings"

// Quote wraps s in the given quote character ('"' or '\''). Backslashes and
// occurrences of that quote are backslash-escaped; nothing else is, because
// the SNBT reader only understands those two escapes.
func Quote(s string, quote byte) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte(quote)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == quote {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	sb.WriteByte(quote)
	return sb.String()
}

// QuoteDouble quotes s with '"'.
func QuoteDouble(s string) string { return Quote(s, '"') }

// QuoteSingle quotes s with '\''. JSON text is embedded this way, so its
// own double quotes stay untouched.
func QuoteSingle(s string) string { return Quote(s, '\'') }

// Unquote reverses Quote. ok is false when s is not a well-formed quoted
// string.
func Unquote(s string) (_ string, ok bool) {
	if len(s) < 2 || (s[0] != '"' && s[0] != '\'') || s[len(s)-1] != s[0] {
		return "", false
	}
	quote := s[0]
	var sb strings.Builder
	body := s[1 : len(s)-1]
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\':
			i++
			if i == len(body) || (body[i] != '\\' && body[i] != quote) {
				return "", false
			}
			sb.WriteByte(body[i])
		case c == quote:
			return "", false
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String(), true
}
