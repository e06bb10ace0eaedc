package seqmatch

import (
	"slices"
	"sort"
)

// MatchingBlocks returns the maximal matching runs between a and b.
//
// The blocks are monotonically increasing in A and in B, non-overlapping,
// and never adjacent (adjacent equal runs are coalesced into one block).
// The last block is always the sentinel Match{len(a), len(b), 0}, the only
// block with Size == 0.
//
// The result is cached; callers must not modify it.
func (m *Matcher[E]) MatchingBlocks() []Match {
	if m.matchingBlocks != nil {
		return m.matchingBlocks
	}
	la, lb := len(m.a), len(m.b)

	// This is most naturally a recursive algorithm (recurse on the flanks
	// of each match), but pathological inputs can make the recursion very
	// deep, so an explicit work queue replaces it. Matches arrive out of
	// order and are sorted at the end.
	type span struct {
		alo, ahi, blo, bhi int
	}
	queue := []span{{0, la, 0, lb}}
	var matched []Match
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		best := m.FindLongestMatch(s.alo, s.ahi, s.blo, s.bhi)
		// a[s.alo:best.A] vs b[s.blo:best.B] is unknown territory, the
		// match itself is settled, and the region after the match is
		// unknown again. Size 0 means nothing matched anywhere in s.
		if best.Size > 0 {
			matched = append(matched, best)
			if s.alo < best.A && s.blo < best.B {
				queue = append(queue, span{s.alo, best.A, s.blo, best.B})
			}
			if best.A+best.Size < s.ahi && best.B+best.Size < s.bhi {
				queue = append(queue, span{best.A + best.Size, s.ahi, best.B + best.Size, s.bhi})
			}
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].A != matched[j].A {
			return matched[i].A < matched[j].A
		}
		if matched[i].B != matched[j].B {
			return matched[i].B < matched[j].B
		}
		return matched[i].Size < matched[j].Size
	})

	// Adjacent equal blocks can remain in matched; collapse them so
	// consumers see one run per contiguous region.
	blocks := make([]Match, 0, len(matched)+1)
	var cur Match
	for _, next := range matched {
		if cur.A+cur.Size == next.A && cur.B+cur.Size == next.B {
			cur.Size += next.Size
		} else {
			if cur.Size > 0 {
				blocks = append(blocks, cur)
			}
			cur = next
		}
	}
	if cur.Size > 0 {
		blocks = append(blocks, cur)
	}

	blocks = append(blocks, Match{A: la, B: lb, Size: 0})
	m.matchingBlocks = blocks
	return blocks
}

// OpCodes returns the edit operations describing how to turn a into b.
//
// The first opcode has A1 == B1 == 0, each subsequent opcode begins where
// the previous one ended on both axes, and the last opcode ends at
// (len(a), len(b)): the opcodes tile both sequences completely.
//
// The result is cached; callers must not modify it.
func (m *Matcher[E]) OpCodes() []OpCode {
	if m.opCodes != nil {
		return m.opCodes
	}
	answer := []OpCode{} // non-nil so the empty result is cached too
	i, j := 0, 0
	for _, bl := range m.MatchingBlocks() {
		// Invariant: correct ops for turning a[:i] into b[:j] have been
		// emitted, and the next matching block is
		// a[bl.A:bl.A+bl.Size] == b[bl.B:bl.B+bl.Size]. Emit the op
		// covering the gap, then the equal run, then move past both.
		op := OpEqual
		switch {
		case i < bl.A && j < bl.B:
			op = OpReplace
		case i < bl.A:
			op = OpDelete
		case j < bl.B:
			op = OpInsert
		}
		if op != OpEqual {
			answer = append(answer, OpCode{Op: op, A1: i, A2: bl.A, B1: j, B2: bl.B})
		}
		i, j = bl.A+bl.Size, bl.B+bl.Size
		// The sentinel block has Size 0 and emits no equal op.
		if bl.Size > 0 {
			answer = append(answer, OpCode{Op: OpEqual, A1: bl.A, A2: i, B1: bl.B, B2: j})
		}
	}
	m.opCodes = answer
	return answer
}

// GroupedOpCodes isolates change clusters by eliminating ranges with no
// changes, returning groups with up to n elements of equal context on each
// side. Each group has the same form as OpCodes output: contiguous within
// the group, with leading/trailing Equal ops clipped to n elements and
// Equal runs longer than 2n splitting the groups. A diff with no changes
// yields no groups.
//
// The opcode cache is never modified; repeated calls with different n are
// independent.
func (m *Matcher[E]) GroupedOpCodes(n int) [][]OpCode {
	codes := m.OpCodes()
	if len(codes) == 0 {
		codes = []OpCode{{Op: OpEqual, A1: 0, A2: 1, B1: 0, B2: 1}}
	} else {
		codes = slices.Clone(codes) // the end fixups below must not write through to the cache
	}

	// Fixup leading and trailing groups if they show no changes.
	if codes[0].Op == OpEqual {
		c := codes[0]
		codes[0] = OpCode{Op: OpEqual, A1: max(c.A1, c.A2-n), A2: c.A2, B1: max(c.B1, c.B2-n), B2: c.B2}
	}
	if c := codes[len(codes)-1]; c.Op == OpEqual {
		codes[len(codes)-1] = OpCode{Op: OpEqual, A1: c.A1, A2: min(c.A2, c.A1+n), B1: c.B1, B2: min(c.B2, c.B1+n)}
	}

	nn := n + n
	var groups [][]OpCode
	var group []OpCode
	for _, c := range codes {
		// End the current group and start a new one whenever there is a
		// large range with no changes.
		if c.Op == OpEqual && c.A2-c.A1 > nn {
			group = append(group, OpCode{Op: OpEqual, A1: c.A1, A2: min(c.A2, c.A1+n), B1: c.B1, B2: min(c.B2, c.B1+n)})
			groups = append(groups, group)
			group = nil
			c = OpCode{Op: OpEqual, A1: max(c.A1, c.A2-n), A2: c.A2, B1: max(c.B1, c.B2-n), B2: c.B2}
		}
		group = append(group, c)
	}
	if len(group) > 0 && !(len(group) == 1 && group[0].Op == OpEqual) {
		groups = append(groups, group)
	}
	return groups
}
