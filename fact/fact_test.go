package fact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndSimple(t *testing.T) {
	f := New("expected", "foo")
	assert.Equal(t, "expected", f.Key)
	assert.Equal(t, "foo", f.Value)
	assert.True(t, f.HasValue)

	s := Simple("expected to be empty")
	assert.Equal(t, "expected to be empty", s.Key)
	assert.False(t, s.HasValue)
}

func TestKeys(t *testing.T) {
	l := List{New("expected", "foo"), New("but was", "bar")}
	require.Equal(t, []string{"expected", "but was"}, l.Keys())

	require.Empty(t, List(nil).Keys())
}

func TestStringAlignsKeys(t *testing.T) {
	l := List{New("expected", "foo"), New("but was", "bar")}

	require.Equal(t, "expected: foo\nbut was : bar", l.String())
}

func TestStringWideKeys(t *testing.T) {
	// "世界" occupies 4 cells; "was" occupies 3 and needs one space of padding.
	l := List{New("世界", "foo"), New("was", "bar")}

	require.Equal(t, "世界: foo\nwas : bar", l.String())
}

func TestStringKeyOnlyFact(t *testing.T) {
	l := List{Simple("expected to be empty"), New("but was", "x")}

	require.Equal(t, "expected to be empty\nbut was: x", l.String())
}

func TestStringMultilineValue(t *testing.T) {
	l := List{New("diff", "@@ -1,2 +1,2 @@\n a\n-b\n+c")}

	want := "diff:\n" +
		"    @@ -1,2 +1,2 @@\n" +
		"     a\n" +
		"    -b\n" +
		"    +c"
	require.Equal(t, want, l.String())
}

func TestStringMultilineDoesNotWidenAlignment(t *testing.T) {
	l := List{
		New("a very long key name", "v1\nv2"),
		New("k", "v"),
	}

	want := "a very long key name:\n" +
		"    v1\n" +
		"    v2\n" +
		"k: v"
	require.Equal(t, want, l.String())
}

func TestStringEmptyList(t *testing.T) {
	require.Equal(t, "", List(nil).String())
}
