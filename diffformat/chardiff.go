package diffformat

import "unicode/utf16"

// Elision budgets, in UTF-16 code units. affixContext is how much of a common
// prefix/suffix stays visible next to the differing region; elisionFloor is
// how much total shared context the pair must have before elision kicks in at
// all. Both are empirical values pinned by tests.
const (
	affixContext = 20
	elisionFloor = 100
)

const ellipsis = "…"

// elideCommonAffixes returns display forms of expected and actual for the
// 2-fact output shape. A common prefix longer than affixContext is replaced by
// "…" plus its last affixContext code units; symmetrically for a common
// suffix. The differing middle is always shown in full. Inputs whose shared
// context is below elisionFloor are returned unmodified.
//
// The suffix is scanned only over the region not already claimed by the
// prefix, so the two windows cannot overlap within either string and the
// elided forms cannot appear to share more context than the originals do.
func elideCommonAffixes(expected, actual string) (string, string) {
	e := utf16.Encode([]rune(expected))
	a := utf16.Encode([]rune(actual))

	p := commonPrefixLen(e, a)
	s := commonSuffixLen(e, a, p)
	if p+s < elisionFloor {
		return expected, actual
	}

	hideP := p - affixContext
	if hideP < 0 {
		hideP = 0
	}
	// Never cut inside a surrogate pair; widen the visible side by one unit.
	if hideP > 0 && splitsSurrogatePair(e, hideP) {
		hideP--
	}

	hideS := s - affixContext
	if hideS < 0 {
		hideS = 0
	}
	// The hidden suffix is common to both strings, so checking the cut against
	// either one is enough.
	if hideS > 0 && splitsSurrogatePair(e, len(e)-hideS) {
		hideS--
	}

	if hideP == 0 && hideS == 0 {
		return expected, actual
	}
	return elide(e, hideP, hideS), elide(a, hideP, hideS)
}

func elide(u []uint16, hideP, hideS int) string {
	out := string(utf16.Decode(u[hideP : len(u)-hideS]))
	if hideP > 0 {
		out = ellipsis + out
	}
	if hideS > 0 {
		out += ellipsis
	}
	return out
}

func commonPrefixLen(e, a []uint16) int {
	n := len(e)
	if len(a) < n {
		n = len(a)
	}
	i := 0
	for i < n && e[i] == a[i] {
		i++
	}
	return i
}

// commonSuffixLen scans from the ends of e and a, never past the region
// already claimed by the prefix on either string.
func commonSuffixLen(e, a []uint16, prefix int) int {
	limit := len(e)
	if len(a) < limit {
		limit = len(a)
	}
	limit -= prefix

	i := 0
	for i < limit && e[len(e)-1-i] == a[len(a)-1-i] {
		i++
	}
	return i
}

// splitsSurrogatePair reports whether cutting u at index cut would separate
// a high surrogate from its low surrogate.
func splitsSurrogatePair(u []uint16, cut int) bool {
	if cut <= 0 || cut >= len(u) {
		return false
	}
	return isHighSurrogate(u[cut-1]) && isLowSurrogate(u[cut])
}

func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u <= 0xDBFF }

func isLowSurrogate(u uint16) bool { return u >= 0xDC00 && u <= 0xDFFF }
