package seqmatch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindLongestMatch(t *testing.T) {
	m := New([]rune(" abcd"), []rune("abcd abcd"))
	require.Equal(t, Match{A: 0, B: 4, Size: 5}, m.FindLongestMatch(0, 5, 0, 9))
}

func TestFindLongestMatch_JunkNeverAnchors(t *testing.T) {
	// With blanks as junk, " abcd" can't match the " abcd" at the tail of b
	// directly: only "abcd" can match, and it matches the leftmost "abcd".
	isSpace := func(r rune) bool { return r == ' ' }
	m := NewWithJunk([]rune(" abcd"), []rune("abcd abcd"), true, isSpace)
	require.Equal(t, Match{A: 1, B: 0, Size: 4}, m.FindLongestMatch(0, 5, 0, 9))
}

func TestFindLongestMatch_JunkExtendsAdjacentMatch(t *testing.T) {
	// Junk can't start a match but identical junk adjacent to an interesting
	// match is sucked up. "currentThread" is matched, extended to the
	// preceding blank; "private" is matched, extended to the following blank.
	isSpace := func(r rune) bool { return r == ' ' }
	m := NewWithJunk(
		[]rune("private Thread currentThread;"),
		[]rune("private volatile Thread currentThread;"),
		true, isSpace)

	require.Equal(t, []Match{
		{A: 0, B: 0, Size: 8},
		{A: 8, B: 17, Size: 21},
		{A: 29, B: 38, Size: 0},
	}, m.MatchingBlocks())
}

func TestFindLongestMatch_NoMatch(t *testing.T) {
	m := New([]rune("ab"), []rune("c"))
	require.Equal(t, Match{A: 0, B: 0, Size: 0}, m.FindLongestMatch(0, 2, 0, 1))
}

func TestFindLongestMatch_TieBreaks(t *testing.T) {
	// Several maximal matches: the earliest start in a wins, then the
	// earliest start in b.
	tests := []struct {
		name string
		a    string
		b    string
		want Match
	}{
		{name: "earliest in b", a: "ab", b: "abab", want: Match{A: 0, B: 0, Size: 2}},
		{name: "earliest in a", a: "abab", b: "ab", want: Match{A: 0, B: 0, Size: 2}},
		{name: "repeated element", a: "aa", b: "aaaa", want: Match{A: 0, B: 0, Size: 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := New([]rune(tc.a), []rune(tc.b))
			require.Equal(t, tc.want, m.FindLongestMatch(0, len(tc.a), 0, len(tc.b)))
		})
	}
}

func TestFindLongestMatch_WindowRestriction(t *testing.T) {
	m := New([]rune("abcabc"), []rune("abcabc"))

	// Full window finds the whole thing; a narrowed b window forces the
	// second occurrence.
	require.Equal(t, Match{A: 0, B: 0, Size: 6}, m.FindLongestMatch(0, 6, 0, 6))
	require.Equal(t, Match{A: 0, B: 3, Size: 3}, m.FindLongestMatch(0, 3, 3, 6))
}
