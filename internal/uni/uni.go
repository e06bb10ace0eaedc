// Package uni measures and segments text the way a terminal or monospace
// renderer sees it: by grapheme cluster and display cell rather than by byte
// or rune.
package uni

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// cond is the width model for a non-East-Asian locale. Emoji handling is
// strict so ambiguous code points stay narrow.
var cond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	c.StrictEmojiNeutral = true
	return c
}()

// TextWidth returns the number of terminal cells str occupies in a monospace
// font.
func TextWidth(str string) int {
	return cond.StringWidth(str)
}

// Iterator iterates over the grapheme clusters of a string.
type Iterator struct {
	iter graphemes.Iterator[string]
}

// Graphemes returns an iterator over the grapheme clusters of str.
func Graphemes(str string) *Iterator {
	return &Iterator{iter: graphemes.FromString(str)}
}

// Next advances to the next cluster. It returns false when the input is
// exhausted.
func (it *Iterator) Next() bool {
	return it.iter.Next()
}

// Value returns the current cluster.
func (it *Iterator) Value() string {
	return it.iter.Value()
}

// TextWidth returns the display width of the current cluster.
func (it *Iterator) TextWidth() int {
	return cond.StringWidth(it.iter.Value())
}
