package seqmatch

import (
	"fmt"
	"unsafe"
)

// Op is an edit operation that turns a range of sequence a into a range of
// sequence b.
type Op int

// Operations from sequence a to sequence b.
const (
	OpEqual Op = iota
	OpReplace
	OpDelete
	OpInsert
)

// String returns the conventional lowercase tag for op.
func (op Op) String() string {
	switch op {
	case OpEqual:
		return "equal"
	case OpReplace:
		return "replace"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// Match is a maximal run of equal elements: a[A:A+Size] == b[B:B+Size].
type Match struct {
	A    int // start of the run in a
	B    int // start of the run in b
	Size int // number of matching elements
}

// OpCode is one edit operation over index ranges of a and b.
//
// Operations:
//   - OpReplace: a[A1:A2] should be replaced by b[B1:B2]
//   - OpDelete: a[A1:A2] should be deleted (B1 == B2)
//   - OpInsert: b[B1:B2] should be inserted at a[A1:A1] (A1 == A2)
//   - OpEqual: a[A1:A2] == b[B1:B2]
type OpCode struct {
	Op             Op
	A1, A2, B1, B2 int
}

// Matcher compares a pair of sequences of comparable elements.
//
// Differences are computed as "what do we need to do to a to change it into
// b?". The Matcher borrows the slices it is given; it never copies or
// mutates them, and the caller must not mutate them while the Matcher is in
// use.
//
// Invariants:
//   - MatchingBlocks and OpCodes are cached until a sequence changes.
//   - Reassigning the same slice (same data pointer and length) preserves
//     the caches; see SetSeq1.
//   - The b-side index depends only on b, so varying a is cheap.
type Matcher[E comparable] struct {
	a, b     []E
	isJunk   func(E) bool
	autojunk bool

	// b2j[x] holds the indices in b at which x appears, increasing order.
	// Junk and popular elements have no entry, which stops
	// FindLongestMatch from starting a block on them.
	b2j      map[E][]int
	bJunk    map[E]struct{} // elements of b the junk predicate rejects
	bPopular map[E]struct{} // non-junk elements rejected by the autojunk heuristic

	matchingBlocks []Match
	opCodes        []OpCode
	fullBCount     map[E]int // element frequencies of b; built lazily for QuickRatio
}

// New returns a Matcher comparing a to b with no junk predicate and the
// autojunk heuristic enabled.
func New[E comparable](a, b []E) *Matcher[E] {
	return NewWithJunk(a, b, true, nil)
}

// NewWithJunk returns a Matcher comparing a to b.
//
// isJunk may be nil, or a predicate reporting elements that should never
// anchor a match. For example, pass a space-or-tab predicate when comparing
// lines as sequences of characters to avoid synching up on blanks.
//
// autojunk false disables the heuristic that additionally treats popular
// elements of b as junk when b has at least 200 elements.
func NewWithJunk[E comparable](a, b []E, autojunk bool, isJunk func(E) bool) *Matcher[E] {
	m := &Matcher[E]{isJunk: isJunk, autojunk: autojunk}
	m.SetSeqs(a, b)
	return m
}

// SetSeqs sets the two sequences to be compared.
func (m *Matcher[E]) SetSeqs(a, b []E) {
	m.SetSeq1(a)
	m.SetSeq2(b)
}

// SetSeq1 sets the first sequence to be compared; the second is unchanged.
//
// Setting the slice the Matcher already holds (same data pointer and length)
// is a no-op that keeps the cached analysis. The Matcher caches detailed
// information about the second sequence, so to compare one sequence against
// many, use SetSeq2 once and call SetSeq1 repeatedly.
func (m *Matcher[E]) SetSeq1(a []E) {
	if sameSlice(a, m.a) {
		return
	}
	m.a = a
	m.matchingBlocks = nil
	m.opCodes = nil
}

// SetSeq2 sets the second sequence to be compared; the first is unchanged.
// It rebuilds the b-side index, which is the expensive part of assignment.
func (m *Matcher[E]) SetSeq2(b []E) {
	if sameSlice(b, m.b) {
		return
	}
	m.b = b
	m.matchingBlocks = nil
	m.opCodes = nil
	m.fullBCount = nil
	m.chainB()
}

// sameSlice reports whether s and t are the same slice: same backing data
// pointer and same length. Content equality is irrelevant here; this
// identity check is what lets reassignment of an already-held slice keep
// the caches.
func sameSlice[E any](s, t []E) bool {
	return len(s) == len(t) && unsafe.SliceData(s) == unsafe.SliceData(t)
}

// chainB builds b2j, the position index of b. Junk elements are purged from
// the index (recorded in bJunk), then, with autojunk and len(b) >= 200,
// elements occupying strictly more than len(b)/100+1 positions are purged
// as popular (recorded in bPopular). Building the full index first and
// purging after is much cheaper than consulting the junk predicate per
// element.
func (m *Matcher[E]) chainB() {
	b2j := make(map[E][]int)
	m.b2j = b2j
	for i, elt := range m.b {
		b2j[elt] = append(b2j[elt], i)
	}

	// Purge junk elements:
	junk := make(map[E]struct{})
	m.bJunk = junk
	if m.isJunk != nil {
		for elt := range b2j {
			if m.isJunk(elt) {
				junk[elt] = struct{}{}
			}
		}
		for elt := range junk {
			delete(b2j, elt)
		}
	}

	// Purge popular elements that are not junk:
	popular := make(map[E]struct{})
	m.bPopular = popular
	n := len(m.b)
	if m.autojunk && n >= 200 {
		ntest := n/100 + 1
		for elt, idxs := range b2j {
			if len(idxs) > ntest {
				popular[elt] = struct{}{}
			}
		}
		for elt := range popular {
			delete(b2j, elt)
		}
	}
}

// isBJunk reports whether elt is in the junk set computed for b.
func (m *Matcher[E]) isBJunk(elt E) bool {
	_, ok := m.bJunk[elt]
	return ok
}
