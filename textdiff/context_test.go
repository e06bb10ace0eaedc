package textdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRangeContext(t *testing.T) {
	assert.Equal(t, "3", formatRangeContext(3, 3))
	assert.Equal(t, "4", formatRangeContext(3, 4))
	assert.Equal(t, "4,5", formatRangeContext(3, 5))
	assert.Equal(t, "4,6", formatRangeContext(3, 6))
	assert.Equal(t, "0", formatRangeContext(0, 0))
}

func TestContextDiffString(t *testing.T) {
	got, err := ContextDiffString(ContextDiff{
		A:        SplitLines("one\ntwo\nthree\nfour"),
		B:        SplitLines("zero\none\ntree\nfour"),
		FromFile: "Original",
		ToFile:   "Current",
		Context:  3,
	})
	require.NoError(t, err)

	exp := `*** Original
--- Current
***************
*** 1,4 ****
  one
! two
! three
  four
--- 1,4 ----
+ zero
  one
! tree
  four
`
	require.Equal(t, exp, got)
}

func TestContextDiff_OneSidedSectionsStayEmpty(t *testing.T) {
	// A group that only inserts shows no from-section content, and a group
	// that only deletes shows no to-section content.
	got, err := ContextDiffString(ContextDiff{
		A: SplitLines("o\nn\ne\n"),
		B: SplitLines("t\nw\no\n"),
	})
	require.NoError(t, err)

	exp := `***************
*** 0 ****
--- 1,2 ----
+ t
+ w
***************
*** 2,3 ****
- n
- e
--- 3 ----
`
	require.Equal(t, exp, got)
}

func TestContextDiff_Dates(t *testing.T) {
	got, err := ContextDiffString(ContextDiff{
		A:        []string{"a\n"},
		B:        []string{"b\n"},
		FromFile: "Original",
		FromDate: "2005-01-26 23:30:50",
		ToFile:   "Current",
		ToDate:   "2010-04-02 10:20:52",
	})
	require.NoError(t, err)

	exp := "*** Original\t2005-01-26 23:30:50\n" +
		"--- Current\t2010-04-02 10:20:52\n" +
		"***************\n" +
		"*** 1 ****\n" +
		"! a\n" +
		"--- 1 ----\n" +
		"! b\n"
	require.Equal(t, exp, got)
}

func TestContextDiff_EqualInputsProduceNothing(t *testing.T) {
	got, err := ContextDiffString(ContextDiff{
		A:        SplitLines("same"),
		B:        SplitLines("same"),
		FromFile: "Original",
		ToFile:   "Current",
		Context:  3,
	})
	require.NoError(t, err)
	require.Empty(t, got)
}
