package termformat

import (
	"strings"
	"unicode/utf8"
)

const hexDigits = "0123456789ABCDEF"

// Sanitize prepares an arbitrary value string for display in a terminal.
//   - If tabWidth > 0, \t is replaced with tabWidth spaces. Otherwise \t is left as-is.
//   - \r and \n are left as-is.
//   - All other non-visible ASCII characters <= 0x1F and 0x7F are replaced with
//     "\xXX" escapes (ex: `\x1B` for ESC), so a value containing control bytes
//     cannot corrupt the terminal.
//   - Invalid UTF-8 is replaced by U+FFFD.
func Sanitize(s string, tabWidth int) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteRune('�')
			i++
			continue
		}
		i += size

		switch r {
		case '\t':
			if tabWidth > 0 {
				for j := 0; j < tabWidth; j++ {
					b.WriteByte(' ')
				}
			} else {
				b.WriteRune('\t')
			}
		case '\n', '\r':
			b.WriteRune(r)
		default:
			if r <= 0x7F && (r < 0x20 || r == 0x7F) {
				code := byte(r)
				b.WriteByte('\\')
				b.WriteByte('x')
				b.WriteByte(hexDigits[code>>4])
				b.WriteByte(hexDigits[code&0x0F])
				continue
			}
			b.WriteRune(r)
		}
	}

	return b.String()
}
