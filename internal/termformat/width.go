// Package termformat prepares single lines of text for terminal display: width
// measurement, grapheme-safe truncation, and control-character sanitizing. ANSI
// escape sequences are recognized and never counted toward width.
package termformat

import (
	"strings"

	"github.com/faildiff/faildiff/internal/uni"
)

// ANSIReset restores default terminal styling.
const ANSIReset = "\x1b[0m"

// TextWidth returns the terminal cell width of str while ignoring ANSI escape
// sequences. Ex: color formatting codes don't contribute to the width. In other
// words, if rendered to a terminal, how many cells does str occupy?
func TextWidth(str string) int {
	if str == "" {
		return 0
	}

	width := 0
	segmentStart := 0

	for i := 0; i < len(str); {
		if str[i] != '\x1b' {
			i++
			continue
		}

		if segmentStart < i {
			width += uni.TextWidth(str[segmentStart:i])
		}

		seqLen := ansiSequenceLength(str[i:])
		if seqLen == 0 {
			i++
		} else {
			i += seqLen
		}
		segmentStart = i
	}

	if segmentStart < len(str) {
		width += uni.TextWidth(str[segmentStart:])
	}

	return width
}

func ansiSequenceLength(s string) int {
	if len(s) == 0 || s[0] != '\x1b' {
		return 0
	}
	if len(s) == 1 {
		return 1
	}

	switch s[1] {
	case '[':
		for i := 2; i < len(s); i++ {
			final := s[i]
			if final >= 0x40 && final <= 0x7e { // Final byte of a CSI sequence
				return i + 1
			}
		}
		return 0
	case ']':
		for i := 2; i < len(s); i++ {
			if s[i] == '\a' { // BEL terminator
				return i + 1
			}
			if s[i] == '\\' && s[i-1] == '\x1b' { // ST terminator (ESC \)
				return i + 1
			}
		}
		return 0
	case 'P', '^', '_':
		for i := 2; i < len(s); i++ {
			if s[i] == '\\' && s[i-1] == '\x1b' {
				return i + 1
			}
		}
		return 0
	default:
		return 2 // ESC followed by a single-character control sequence
	}
}

// isSGRSequence reports whether s begins with a CSI sequence whose final byte is
// 'm' (select graphic rendition).
func isSGRSequence(s string) bool {
	n := ansiSequenceLength(s)
	return n >= 3 && strings.HasPrefix(s, "\x1b[") && s[n-1] == 'm'
}
