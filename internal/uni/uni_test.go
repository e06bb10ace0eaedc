package uni

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextWidth(t *testing.T) {
	assert.Equal(t, 0, TextWidth(""))
	assert.Equal(t, 5, TextWidth("hello"))
	// "a" plus combining grave accent, then "b", then a wide CJK character.
	assert.Equal(t, 4, TextWidth("àb世"))
	// White star is ambiguous-width (narrow here); thumbs-up is wide.
	assert.Equal(t, 3, TextWidth("☆\U0001F44D"))
}

func TestGraphemes(t *testing.T) {
	iter := Graphemes("àb世")

	var values []string
	var widths []int
	for iter.Next() {
		values = append(values, iter.Value())
		widths = append(widths, iter.TextWidth())
	}

	assert.Equal(t, []string{"à", "b", "世"}, values)
	assert.Equal(t, []int{1, 1, 2}, widths)
}

func TestGraphemesEmpty(t *testing.T) {
	iter := Graphemes("")
	assert.False(t, iter.Next())
}
