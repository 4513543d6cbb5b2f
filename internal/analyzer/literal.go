package analyzer

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// unquoteString returns the value of a quoted JavaScript string literal,
// with escape sequences and line continuations resolved.
func unquoteString(raw string) string {
	if len(raw) < 2 {
		return raw
	}
	body := raw[1 : len(raw)-1]
	if !strings.Contains(body, `\`) {
		return body
	}

	var b strings.Builder
	u := utf16Writer{b: &b}

	for i := 0; i < len(body); {
		if body[i] != '\\' {
			r, size := utf8.DecodeRuneInString(body[i:])
			u.writeRune(r)
			i += size
			continue
		}

		i++
		if i >= len(body) {
			break
		}

		switch c := body[i]; c {
		case 'b':
			u.writeRune('\b')
			i++
		case 'f':
			u.writeRune('\f')
			i++
		case 'n':
			u.writeRune('\n')
			i++
		case 'r':
			u.writeRune('\r')
			i++
		case 't':
			u.writeRune('\t')
			i++
		case 'v':
			u.writeRune('\v')
			i++
		case '\n':
			i++
		case '\r':
			i++
			if i < len(body) && body[i] == '\n' {
				i++
			}
		case 'x':
			if v, ok := parseHex(body, i+1, 2); ok {
				u.writeRune(rune(v))
				i += 3
			} else {
				u.writeRune('x')
				i++
			}
		case 'u':
			i = unquoteUnicode(body, i, &u)
		case '0', '1', '2', '3', '4', '5', '6', '7':
			i = unquoteOctal(body, i, &u)
		default:
			r, size := utf8.DecodeRuneInString(body[i:])
			// LS and PS after a backslash are line continuations.
			if r != '\u2028' && r != '\u2029' {
				u.writeRune(r)
			}
			i += size
		}
	}
	u.flush()

	return b.String()
}

// unquoteUnicode handles \uXXXX and \u{X...} starting at the 'u' at body[i]
func unquoteUnicode(body string, i int, u *utf16Writer) int {
	if i+1 < len(body) && body[i+1] == '{' {
		end := strings.IndexByte(body[i+2:], '}')
		if end > 0 {
			if v, err := strconv.ParseUint(body[i+2:i+2+end], 16, 32); err == nil && v <= utf8.MaxRune {
				u.writeRune(rune(v))
				return i + 3 + end
			}
		}
		u.writeRune('u')
		return i + 1
	}

	if v, ok := parseHex(body, i+1, 4); ok {
		u.writeUnit(rune(v))
		return i + 5
	}
	u.writeRune('u')
	return i + 1
}

// unquoteOctal handles legacy octal escapes starting at body[i]
func unquoteOctal(body string, i int, u *utf16Writer) int {
	maxDigits := 2
	if body[i] <= '3' {
		maxDigits = 3
	}
	v := 0
	n := 0
	for n < maxDigits && i+n < len(body) && body[i+n] >= '0' && body[i+n] <= '7' {
		v = v*8 + int(body[i+n]-'0')
		n++
	}
	u.writeRune(rune(v))
	return i + n
}

func parseHex(s string, start, n int) (uint64, bool) {
	if start+n > len(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s[start:start+n], 16, 32)
	if err != nil {
		return 0, false
	}
	return v, true
}

// utf16Writer joins surrogate pairs written as separate \u escapes
type utf16Writer struct {
	b    *strings.Builder
	high rune
}

func (w *utf16Writer) writeUnit(r rune) {
	switch {
	case utf16.IsSurrogate(r) && r < 0xDC00:
		w.flush()
		w.high = r
	case utf16.IsSurrogate(r) && w.high != 0:
		w.b.WriteRune(utf16.DecodeRune(w.high, r))
		w.high = 0
	default:
		w.writeRune(r)
	}
}

func (w *utf16Writer) writeRune(r rune) {
	w.flush()
	w.b.WriteRune(r)
}

func (w *utf16Writer) flush() {
	if w.high != 0 {
		w.b.WriteRune(utf8.RuneError)
		w.high = 0
	}
}
