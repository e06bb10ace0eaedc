package htmldiff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVisibleWidth(t *testing.T) {
	require.Equal(t, 0, visibleWidth(""))
	require.Equal(t, 3, visibleWidth("abc"))
	require.Equal(t, 3, visibleWidth("a\x00+b\x01c"))
	require.Equal(t, 4, visibleWidth("世界"))
}

func TestSplitHalf_PlainText(t *testing.T) {
	parts := splitHalf(halfRow{Num: "3", Text: "abcdefghij"}, 4)
	require.Equal(t, []halfRow{
		{Num: "3", Text: "abcd"},
		{Num: ">", Text: "efgh"},
		{Num: ">", Text: "ij"},
	}, parts)
}

func TestSplitHalf_ReopensMarkerAcrossSplit(t *testing.T) {
	parts := splitHalf(halfRow{Num: "1", Text: "\x00+abcdef\x01"}, 4)
	require.Equal(t, []halfRow{
		{Num: "1", Text: "\x00+abcd\x01"},
		{Num: ">", Text: "\x00+ef\x01"},
	}, parts)
}

func TestSplitHalf_CountsDisplayCells(t *testing.T) {
	// Two double-width characters never fit a 3-cell budget together.
	parts := splitHalf(halfRow{Num: "1", Text: "世界"}, 3)
	require.Equal(t, []halfRow{
		{Num: "1", Text: "世"},
		{Num: ">", Text: "界"},
	}, parts)
}

func TestSplitHalf_OversizeClusterStillProgresses(t *testing.T) {
	parts := splitHalf(halfRow{Num: "1", Text: "世界"}, 1)
	require.Equal(t, []halfRow{
		{Num: "1", Text: "世"},
		{Num: ">", Text: "界"},
	}, parts)
}

func TestSplitHalf_FillerPassesThrough(t *testing.T) {
	hr := halfRow{Text: "this filler is longer than the width"}
	require.Equal(t, []halfRow{hr}, splitHalf(hr, 4))
}

func TestWrapRows_PadsShorterSide(t *testing.T) {
	rows := wrapRows([]row{
		{From: halfRow{Num: "1", Text: "abcdef"}, To: halfRow{Num: "1", Text: "xy"}, Flag: flagChanged},
	}, 4)
	require.Equal(t, []row{
		{From: halfRow{Num: "1", Text: "abcd"}, To: halfRow{Num: "1", Text: "xy"}, Flag: flagChanged},
		{From: halfRow{Num: ">", Text: "ef"}, To: halfRow{Text: " "}, Flag: flagChanged},
	}, rows)
}

func TestWrapRows_SeparatorPassesThrough(t *testing.T) {
	rows := wrapRows([]row{{Flag: flagSeparator}}, 4)
	require.Equal(t, []row{{Flag: flagSeparator}}, rows)
}
