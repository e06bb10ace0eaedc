package seqmatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpString(t *testing.T) {
	assert.Equal(t, "equal", OpEqual.String())
	assert.Equal(t, "replace", OpReplace.String())
	assert.Equal(t, "delete", OpDelete.String())
	assert.Equal(t, "insert", OpInsert.String())
	assert.Equal(t, "op(7)", Op(7).String())
}

func TestSetSeq1_PreservesSecondSequence(t *testing.T) {
	m := New([]rune("abcd"), []rune("bcde"))
	require.Equal(t, 0.75, m.Ratio())

	m.SetSeq1([]rune("bcde"))
	require.Equal(t, 1.0, m.Ratio())
}

func TestSetSeqs(t *testing.T) {
	m := New[rune](nil, nil)
	m.SetSeqs([]rune("abcd"), []rune("bcde"))
	require.Equal(t, 0.75, m.Ratio())
}

func TestOpCodes_CachedUntilReassignment(t *testing.T) {
	a := []rune("qabxcd")
	m := New(a, []rune("abycdf"))

	ops1 := m.OpCodes()
	ops2 := m.OpCodes()
	require.NotEmpty(t, ops1)
	require.Same(t, &ops1[0], &ops2[0]) // same backing array: cached, not recomputed

	// Reassigning the identical slice is a no-op that keeps the cache:
	m.SetSeq1(a)
	ops3 := m.OpCodes()
	require.Same(t, &ops1[0], &ops3[0])

	// A distinct slice with equal content invalidates and recomputes:
	m.SetSeq1([]rune("qabxcd"))
	ops4 := m.OpCodes()
	require.Equal(t, ops1, ops4)
	require.NotSame(t, &ops1[0], &ops4[0])
}

func TestSetSeq2_RebuildsIndex(t *testing.T) {
	m := New([]rune("abcd"), []rune("bcde"))
	require.Equal(t, 0.75, m.Ratio())

	m.SetSeq2([]rune("abcd"))
	require.Equal(t, 1.0, m.Ratio())
}

func TestChainB_JunkPurgedFromIndex(t *testing.T) {
	isSpace := func(r rune) bool { return r == ' ' }
	m := NewWithJunk([]rune(" abcd"), []rune("abcd abcd"), true, isSpace)

	_, junk := m.bJunk[' ']
	assert.True(t, junk)
	_, indexed := m.b2j[' ']
	assert.False(t, indexed)
	assert.Equal(t, []int{0, 5}, m.b2j['a'])
}

func TestChainB_PopularPurgedFromIndex(t *testing.T) {
	// 201 copies of 1 in a 202-element b crosses the autojunk threshold
	// (strictly more than 202/100+1 = 3 occurrences), so 1 leaves the index
	// but lands in the popular set, not the junk set.
	b := make([]int, 201)
	for i := range b {
		b[i] = 1
	}
	b = append(b, 2)
	a := make([]int, 201)
	for i := range a {
		a[i] = 1
	}

	m := New(a, b)
	_, popular := m.bPopular[1]
	assert.True(t, popular)
	_, junk := m.bJunk[1]
	assert.False(t, junk)
	_, indexed := m.b2j[1]
	assert.False(t, indexed)
	assert.Equal(t, []int{201}, m.b2j[2])
}

func TestChainB_AutojunkDisabled(t *testing.T) {
	b := make([]int, 201)
	for i := range b {
		b[i] = 1
	}
	b = append(b, 2)

	m := NewWithJunk(nil, b, false, nil)
	_, popular := m.bPopular[1]
	assert.False(t, popular)
	assert.Len(t, m.b2j[1], 201)
}
