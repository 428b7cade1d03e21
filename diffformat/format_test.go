package diffformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faildiff/faildiff/fact"
)

func TestFormatShortStrings(t *testing.T) {
	got := Format("foo", "bar")

	require.Equal(t, fact.List{
		fact.New("expected", "foo"),
		fact.New("but was", "bar"),
	}, got)
}

func TestFormatIsDeterministic(t *testing.T) {
	e := strings.Repeat("b", 100) + "aa"
	a := strings.Repeat("b", 100) + "oo"

	require.Equal(t, Format(e, a), Format(e, a))
}

func TestFormatNoCommonAffixShownInFull(t *testing.T) {
	e := strings.Repeat("x", 150)
	a := strings.Repeat("y", 150)

	got := Format(e, a)

	require.Equal(t, fact.List{
		fact.New("expected", e),
		fact.New("but was", a),
	}, got)
}

func TestFormatShortSharedContextShownInFull(t *testing.T) {
	// 30 shared characters is not enough to bother eliding.
	e := strings.Repeat("s", 30) + "one"
	a := strings.Repeat("s", 30) + "two"

	got := Format(e, a)

	require.Equal(t, e, got[0].Value)
	require.Equal(t, a, got[1].Value)
}

func TestFormatCommonPrefixElided(t *testing.T) {
	e := strings.Repeat("b", 100) + "aa"
	a := strings.Repeat("b", 100) + "oo"

	got := Format(e, a)

	require.Equal(t, fact.List{
		fact.New("expected", "…"+strings.Repeat("b", 20)+"aa"),
		fact.New("but was", "…"+strings.Repeat("b", 20)+"oo"),
	}, got)
}

func TestFormatCommonSuffixElided(t *testing.T) {
	e := "ba" + strings.Repeat("r", 100)
	a := "fu" + strings.Repeat("r", 100)

	got := Format(e, a)

	require.Equal(t, fact.List{
		fact.New("expected", "ba"+strings.Repeat("r", 20)+"…"),
		fact.New("but was", "fu"+strings.Repeat("r", 20)+"…"),
	}, got)
}

func TestFormatBothAffixesElided(t *testing.T) {
	prefix := strings.Repeat("a", 60)
	suffix := strings.Repeat("z", 60)

	got := Format(prefix+"X"+suffix, prefix+"Y"+suffix)

	require.Equal(t, fact.List{
		fact.New("expected", "…"+strings.Repeat("a", 20)+"X"+strings.Repeat("z", 20)+"…"),
		fact.New("but was", "…"+strings.Repeat("a", 20)+"Y"+strings.Repeat("z", 20)+"…"),
	}, got)
}

func TestFormatIdenticalStrings(t *testing.T) {
	// Callers only invoke Format after detecting a mismatch, but identical
	// inputs must still produce the 2-fact form rather than failing.
	got := Format("same", "same")

	require.Equal(t, fact.List{
		fact.New("expected", "same"),
		fact.New("but was", "same"),
	}, got)
}

func TestFormatIdenticalMultilineStrings(t *testing.T) {
	got := Format("a\nb", "a\nb")

	require.Equal(t, fact.List{
		fact.New("expected", "a\nb"),
		fact.New("but was", "a\nb"),
	}, got)
}

func TestFormatEmptyStrings(t *testing.T) {
	require.Equal(t, fact.List{
		fact.New("expected", ""),
		fact.New("but was", ""),
	}, Format("", ""))

	require.Equal(t, fact.List{
		fact.New("expected", ""),
		fact.New("but was", "x"),
	}, Format("", "x"))
}

func TestFormatPrefixElisionKeepsSurrogatePairsWhole(t *testing.T) {
	// 50 emoji are 100 UTF-16 code units; with "Z" that is a 101-unit common
	// prefix. The raw cut lands inside a pair and must back off by one unit.
	prefix := strings.Repeat("😀", 50) + "Z"

	got := Format(prefix+"a", prefix+"o")

	require.Equal(t, "…"+strings.Repeat("😀", 10)+"Za", got[0].Value)
	require.Equal(t, "…"+strings.Repeat("😀", 10)+"Zo", got[1].Value)
	assert.NotContains(t, got[0].Value, "�")
	assert.NotContains(t, got[1].Value, "�")
}

func TestFormatSuffixElisionKeepsSurrogatePairsWhole(t *testing.T) {
	suffix := "c" + strings.Repeat("😀", 50) // 101 code units

	got := Format("A"+suffix, "B"+suffix)

	require.Equal(t, "Ac"+strings.Repeat("😀", 10)+"…", got[0].Value)
	require.Equal(t, "Bc"+strings.Repeat("😀", 10)+"…", got[1].Value)
	assert.NotContains(t, got[0].Value, "�")
	assert.NotContains(t, got[1].Value, "�")
}

func TestFormatUnifiedDiff(t *testing.T) {
	e := strings.Repeat("a\n", 100) + "b"
	a := strings.Repeat("a\n", 100) + "c"

	got := Format(e, a)

	require.Equal(t, fact.List{
		fact.New("diff", "@@ -98,4 +98,4 @@\n a\n a\n a\n-b\n+c"),
	}, got)
}

func TestFormatLineBreakStylesDiffer(t *testing.T) {
	e := strings.Repeat("a\n", 10)
	a := strings.Repeat("a\r\n", 10)

	got := Format(e, a)

	require.Equal(t, fact.List{
		fact.New("diff", "(line contents match, but line-break characters differ)"),
	}, got)
}

func TestFormatTrailingNewlinePresenceDiffers(t *testing.T) {
	// A text ending in a newline carries a final empty line, so the presence
	// of the terminator shows up as a removed line rather than as the
	// line-break-style message.
	got := Format("a\nb\n", "a\nb")

	require.Equal(t, fact.List{
		fact.New("diff", "@@ -1,3 +1,2 @@\n a\n b\n-"),
	}, got)
}

type stringerVal struct{ s string }

func (v stringerVal) String() string { return v.s }

func TestFormatValues(t *testing.T) {
	t.Run("strings", func(t *testing.T) {
		got, err := FormatValues("foo", "bar")
		require.NoError(t, err)
		require.Equal(t, []string{"expected", "but was"}, got.Keys())
	})

	t.Run("byte slices and stringers", func(t *testing.T) {
		got, err := FormatValues([]byte("foo"), stringerVal{s: "bar"})
		require.NoError(t, err)
		require.Equal(t, "foo", got[0].Value)
		require.Equal(t, "bar", got[1].Value)
	})

	t.Run("string pointers", func(t *testing.T) {
		e := "foo"
		a := "bar"
		got, err := FormatValues(&e, &a)
		require.NoError(t, err)
		require.Equal(t, "foo", got[0].Value)
		require.Equal(t, "bar", got[1].Value)
	})

	t.Run("nil expected", func(t *testing.T) {
		_, err := FormatValues(nil, "bar")
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("nil actual", func(t *testing.T) {
		_, err := FormatValues("foo", nil)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("nil string pointer", func(t *testing.T) {
		_, err := FormatValues((*string)(nil), "bar")
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("unsupported type", func(t *testing.T) {
		_, err := FormatValues(42, "bar")
		require.ErrorIs(t, err, ErrInvalidArgument)
	})
}
