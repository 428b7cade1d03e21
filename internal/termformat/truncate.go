package termformat

import (
	"strings"

	"github.com/faildiff/faildiff/internal/uni"
)

// ellipsis is a single cell wide.
const ellipsis = "…"

// TruncateToWidth shortens s so it occupies at most width terminal cells,
// replacing the removed tail with "…". s must not contain newlines; it may
// contain ANSI escape sequences, which occupy no width and are preserved up to
// the cut point.
//
// Truncation is grapheme-cluster-aware: a cluster is either kept whole or
// dropped. If a dropped cluster leaves spare room (ex: a 2-cell CJK cluster at
// a 1-cell boundary), the result is simply narrower than width.
//
// If the result was cut after an SGR sequence took effect, ANSIReset is
// appended so styles don't leak into subsequent output.
//
// If width <= 0, TruncateToWidth returns "". If s already fits, it is returned
// unchanged.
func TruncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if TextWidth(s) <= width {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	used := 0
	sawSGR := false
	budget := width - 1 // reserve one cell for the ellipsis

truncated:
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			seqLen := ansiSequenceLength(s[i:])
			if seqLen == 0 {
				i++
				continue
			}
			if isSGRSequence(s[i:]) {
				sawSGR = true
			}
			b.WriteString(s[i : i+seqLen])
			i += seqLen
			continue
		}

		nextEsc := strings.IndexByte(s[i:], '\x1b')
		segmentEnd := len(s)
		if nextEsc >= 0 {
			segmentEnd = i + nextEsc
		}

		iter := uni.NewGraphemeIterator(s[i:segmentEnd])
		for iter.Next() {
			w := iter.TextWidth()
			if used+w > budget {
				break truncated
			}
			b.WriteString(iter.Value())
			used += w
		}

		i = segmentEnd
	}

	b.WriteString(ellipsis)
	if sawSGR {
		b.WriteString(ANSIReset)
	}
	return b.String()
}
