package textdiff

import (
	"fmt"

	"github.com/gestaltdiff/gestaltdiff/seqmatch"
)

// Line is one line of a delta: a line kept, deleted, or inserted.
//
// Operations:
//   - seqmatch.OpEqual: OldText == NewText, both set
//   - seqmatch.OpDelete: OldText set, NewText == ""
//   - seqmatch.OpInsert: OldText == "", NewText set
//
// seqmatch.OpReplace never appears in a delta: the Differ always resolves a
// replaced block into deletes, inserts, and equal pairs.
//
// Text normally includes the trailing newline, because the inputs normally
// do.
type Line struct {
	Op      seqmatch.Op
	OldText string // Line from the old sequence; empty for inserts.
	NewText string // Line from the new sequence; empty for deletes.
}

// Differ compares sequences of lines and produces a delta in which deleted,
// inserted, and equal lines interleave in reading order.
//
// Two junk predicates tune it:
//   - LineJunk reports lines the line-level matcher should not anchor on
//     (IsLineJunk skips blanks and lone "#" lines). nil means no line is
//     junk; for most purposes the autojunk heuristic inside seqmatch is
//     better anyway.
//   - CharJunk reports characters the intra-line matcher should not anchor
//     on when scoring how alike two lines are. IsCharacterJunk (blanks and
//     tabs) is usually the right choice; including newline is usually a bad
//     one.
//
// The zero value compares with no junk at all.
type Differ struct {
	LineJunk func(line string) bool
	CharJunk func(ch rune) bool
}

// Near-match tuning for fancyReplace. A pair of lines synchronizes a
// replaced block only when its similarity reaches synchCutoff; candidates
// are scanned against a floor just under the cutoff so the ratio pruning
// chain can reject most pairs cheaply.
const (
	synchFloor  = 0.74
	synchCutoff = 0.75
)

// NewDiffer returns a Differ with no junk predicates, same as the zero
// value. Most callers comparing program text want at least CharJunk:
// IsCharacterJunk, which is what Ndiff uses.
func NewDiffer() *Differ {
	return &Differ{}
}

// Ndiff compares two sequences of lines with the default character junk
// (IsCharacterJunk) and no line junk, returning the delta.
func Ndiff(a, b []string) []Line {
	d := &Differ{CharJunk: IsCharacterJunk}
	return d.Compare(a, b)
}

// Compare compares two sequences of lines and returns the delta.
//
// Equal runs become equal pairs. A block present only in a becomes deletes,
// a block present only in b becomes inserts. A replaced block goes through a
// second, intra-line comparison that searches for the most similar old/new
// line pair and synchronizes the block on it, so the delta tends to point at
// the line that changed rather than dumping both sides.
func (d *Differ) Compare(a, b []string) []Line {
	m := seqmatch.NewWithJunk(a, b, true, d.LineJunk)
	var delta []Line
	for _, oc := range m.OpCodes() {
		switch oc.Op {
		case seqmatch.OpReplace:
			delta = d.fancyReplace(delta, a, oc.A1, oc.A2, b, oc.B1, oc.B2)
		case seqmatch.OpDelete:
			delta = dumpLines(delta, seqmatch.OpDelete, a, oc.A1, oc.A2)
		case seqmatch.OpInsert:
			delta = dumpLines(delta, seqmatch.OpInsert, b, oc.B1, oc.B2)
		case seqmatch.OpEqual:
			for i := 0; i < oc.A2-oc.A1; i++ {
				delta = append(delta, Line{Op: seqmatch.OpEqual, OldText: a[oc.A1+i], NewText: b[oc.B1+i]})
			}
		default:
			panic(fmt.Sprintf("textdiff: unknown op %v", oc.Op))
		}
	}
	return delta
}

// dumpLines appends every line in lines[lo:hi] as op (OpDelete or OpInsert).
func dumpLines(delta []Line, op seqmatch.Op, lines []string, lo, hi int) []Line {
	for i := lo; i < hi; i++ {
		if op == seqmatch.OpDelete {
			delta = append(delta, Line{Op: op, OldText: lines[i]})
		} else {
			delta = append(delta, Line{Op: op, NewText: lines[i]})
		}
	}
	return delta
}

// fancyReplace resolves a replaced block, where a[alo:ahi] was changed into
// b[blo:bhi].
//
// It scans all old/new line pairs for the most similar pair. If the best
// pair is similar enough (>= synchCutoff), the block synchronizes on it: the
// flanks before the pair are resolved recursively, the pair itself is
// emitted as a delete immediately followed by an insert, and the flanks
// after it are resolved recursively. If no pair is similar enough but some
// pair is identical (possible when the line-level matcher refused to anchor
// on it, because the line was junk or too popular), the block synchronizes
// on the first such pair as an equal line. Otherwise the whole block is
// dumped plainly.
func (d *Differ) fancyReplace(delta []Line, a []string, alo, ahi int, b []string, blo, bhi int) []Line {
	bestRatio := synchFloor
	besti, bestj := -1, -1
	eqi, eqj := -1, -1

	// The cruncher caches analysis of seq2, so keep seq2 fixed per b line
	// and vary seq1 across the a lines.
	cruncher := seqmatch.NewWithJunk[rune](nil, nil, true, d.CharJunk)
	arunes := make([][]rune, ahi-alo)
	for i := range arunes {
		arunes[i] = []rune(a[alo+i])
	}
	for j := blo; j < bhi; j++ {
		cruncher.SetSeq2([]rune(b[j]))
		for i := alo; i < ahi; i++ {
			if a[i] == b[j] {
				if eqi < 0 {
					eqi, eqj = i, j
				}
				continue
			}
			cruncher.SetSeq1(arunes[i-alo])
			// Upper bounds first: computing the real ratio is what
			// makes this loop expensive.
			if cruncher.RealQuickRatio() > bestRatio &&
				cruncher.QuickRatio() > bestRatio &&
				cruncher.Ratio() > bestRatio {
				bestRatio, besti, bestj = cruncher.Ratio(), i, j
			}
		}
	}

	identical := false
	if bestRatio < synchCutoff {
		if eqi < 0 {
			return d.plainReplace(delta, a, alo, ahi, b, blo, bhi)
		}
		besti, bestj = eqi, eqj
		identical = true
	}

	delta = d.fancyHelper(delta, a, alo, besti, b, blo, bestj)
	if identical {
		delta = append(delta, Line{Op: seqmatch.OpEqual, OldText: a[besti], NewText: b[bestj]})
	} else {
		delta = append(delta,
			Line{Op: seqmatch.OpDelete, OldText: a[besti]},
			Line{Op: seqmatch.OpInsert, NewText: b[bestj]})
	}
	return d.fancyHelper(delta, a, besti+1, ahi, b, bestj+1, bhi)
}

// fancyHelper resolves a flank left over by fancyReplace: both sides
// non-empty recurses, one side non-empty dumps it.
func (d *Differ) fancyHelper(delta []Line, a []string, alo, ahi int, b []string, blo, bhi int) []Line {
	switch {
	case alo < ahi && blo < bhi:
		return d.fancyReplace(delta, a, alo, ahi, b, blo, bhi)
	case alo < ahi:
		return dumpLines(delta, seqmatch.OpDelete, a, alo, ahi)
	case blo < bhi:
		return dumpLines(delta, seqmatch.OpInsert, b, blo, bhi)
	}
	return delta
}

// plainReplace dumps a replaced block with no attempt at pairing, shorter
// side first. Dumping the shorter side first tends to read better when the
// block is lopsided: the few new lines appear before the many old ones they
// replace, or the many deletes finish before the few inserts.
func (d *Differ) plainReplace(delta []Line, a []string, alo, ahi int, b []string, blo, bhi int) []Line {
	if alo >= ahi || blo >= bhi {
		panic(fmt.Sprintf("textdiff: plain replace on empty block a[%d:%d] b[%d:%d]", alo, ahi, blo, bhi))
	}
	if bhi-blo < ahi-alo {
		delta = dumpLines(delta, seqmatch.OpInsert, b, blo, bhi)
		return dumpLines(delta, seqmatch.OpDelete, a, alo, ahi)
	}
	delta = dumpLines(delta, seqmatch.OpDelete, a, alo, ahi)
	return dumpLines(delta, seqmatch.OpInsert, b, blo, bhi)
}
