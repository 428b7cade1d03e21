package diffformat

import (
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u16(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

func TestCommonPrefixLen(t *testing.T) {
	assert.Equal(t, 0, commonPrefixLen(u16("foo"), u16("bar")))
	assert.Equal(t, 2, commonPrefixLen(u16("abX"), u16("abY")))
	assert.Equal(t, 2, commonPrefixLen(u16("ab"), u16("abY")))
	assert.Equal(t, 0, commonPrefixLen(u16(""), u16("x")))
}

func TestCommonSuffixLenExcludesPrefixRegion(t *testing.T) {
	// "aaaa" vs "aa": the prefix claims both characters of the shorter string,
	// so nothing is left for the suffix scan.
	e := u16("aaaa")
	a := u16("aa")
	p := commonPrefixLen(e, a)
	require.Equal(t, 2, p)
	require.Equal(t, 0, commonSuffixLen(e, a, p))
}

func TestCommonSuffixLen(t *testing.T) {
	e := u16("Xrr")
	a := u16("Yrr")
	require.Equal(t, 2, commonSuffixLen(e, a, commonPrefixLen(e, a)))
}

func TestSplitsSurrogatePair(t *testing.T) {
	u := u16("a😀b") // 1 + 2 + 1 units

	assert.False(t, splitsSurrogatePair(u, 0))
	assert.False(t, splitsSurrogatePair(u, 1))
	assert.True(t, splitsSurrogatePair(u, 2))
	assert.False(t, splitsSurrogatePair(u, 3))
	assert.False(t, splitsSurrogatePair(u, 4))
}

func TestElideCommonAffixesFloorBoundary(t *testing.T) {
	// 99 shared code units: shown in full. 100: elided.
	below := strings.Repeat("p", 99)
	se, sa := elideCommonAffixes(below+"X", below+"Y")
	assert.Equal(t, below+"X", se)
	assert.Equal(t, below+"Y", sa)

	at := strings.Repeat("p", 100)
	se, sa = elideCommonAffixes(at+"X", at+"Y")
	assert.Equal(t, "…"+strings.Repeat("p", 20)+"X", se)
	assert.Equal(t, "…"+strings.Repeat("p", 20)+"Y", sa)
}

func TestElideCommonAffixesDifferingMiddleKeptWhole(t *testing.T) {
	prefix := strings.Repeat("a", 80)
	suffix := strings.Repeat("z", 80)
	middle := strings.Repeat("M", 500)

	se, sa := elideCommonAffixes(prefix+middle+suffix, prefix+"m"+suffix)

	require.Equal(t, "…"+strings.Repeat("a", 20)+middle+strings.Repeat("z", 20)+"…", se)
	require.Equal(t, "…"+strings.Repeat("a", 20)+"m"+strings.Repeat("z", 20)+"…", sa)
}

func TestElideCommonAffixesUnequalLengths(t *testing.T) {
	prefix := strings.Repeat("c", 120)

	se, sa := elideCommonAffixes(prefix, prefix+"tail")

	require.Equal(t, "…"+strings.Repeat("c", 20), se)
	require.Equal(t, "…"+strings.Repeat("c", 20)+"tail", sa)
}
