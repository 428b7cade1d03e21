// Package uni measures terminal text width and iterates grapheme clusters.
//
// Widths are monospace-terminal cell counts (CJK and other wide code points count
// as 2 cells). The locale is assumed to be non-East Asian.
package uni

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// cond is the shared width condition. It is read-only after init and safe for
// concurrent use.
var cond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	c.StrictEmojiNeutral = true
	return c
}()

// TextWidth returns the text width of s for monospace fonts in terminals.
func TextWidth(s string) int {
	return cond.StringWidth(s)
}

// Iterator iterates over the grapheme clusters of a string.
type Iterator struct {
	iter graphemes.Iterator[string]
}

// NewGraphemeIterator returns a new grapheme iterator over s.
func NewGraphemeIterator(s string) *Iterator {
	return &Iterator{iter: graphemes.FromString(s)}
}

func (iter *Iterator) Next() bool {
	return iter.iter.Next()
}

func (iter *Iterator) Value() string {
	return iter.iter.Value()
}

// Start returns the byte position of the current cluster in the original string.
func (iter *Iterator) Start() int {
	return iter.iter.Start()
}

// End returns the byte position after the current cluster. Allows slicing the
// original string as [Start(), End()).
func (iter *Iterator) End() int {
	return iter.iter.End()
}

// TextWidth returns the text width of the current cluster.
func (iter *Iterator) TextWidth() int {
	return TextWidth(iter.iter.Value())
}
