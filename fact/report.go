package fact

import (
	"strings"

	"github.com/faildiff/faildiff/internal/uni"
)

const valueIndent = "    "

// String renders the facts into the multi-line message a test harness would
// print for a failure.
//
// Keys of facts with single-line values are padded to a common display width
// (unicode-aware, so wide CJK keys still line up) and followed by ": ". A fact
// whose value contains a newline is rendered as "key:" on its own line with
// every value line indented. Key-only facts render as the bare key.
func (l List) String() string {
	// Align only the single-line entries; block entries set their own shape.
	keyWidth := 0
	for _, f := range l {
		if !f.HasValue || strings.ContainsRune(f.Value, '\n') {
			continue
		}
		if w := uni.TextWidth(f.Key); w > keyWidth {
			keyWidth = w
		}
	}

	var b strings.Builder
	for i, f := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch {
		case !f.HasValue:
			b.WriteString(f.Key)
		case strings.ContainsRune(f.Value, '\n'):
			b.WriteString(f.Key)
			b.WriteString(":\n")
			writeIndented(&b, f.Value)
		default:
			b.WriteString(f.Key)
			for pad := keyWidth - uni.TextWidth(f.Key); pad > 0; pad-- {
				b.WriteByte(' ')
			}
			b.WriteString(": ")
			b.WriteString(f.Value)
		}
	}
	return b.String()
}

func writeIndented(b *strings.Builder, value string) {
	start := 0
	for i := 0; i <= len(value); i++ {
		if i == len(value) || value[i] == '\n' {
			b.WriteString(valueIndent)
			b.WriteString(value[start:i])
			if i < len(value) {
				b.WriteByte('\n')
			}
			start = i + 1
		}
	}
}
