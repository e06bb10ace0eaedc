package textdiff

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/gestaltdiff/gestaltdiff/seqmatch"
)

// ContextDiff configures a diff in context format: each change shown twice,
// once as the old lines and once as the new, with "!" marking the lines that
// were changed rather than purely added or removed.
//
//	*** Original
//	--- Current
//	***************
//	*** 1,4 ****
//	  one
//	! two
//	! three
//	  four
//	--- 1,4 ----
//	+ zero
//	  one
//	! tree
//	  four
//
// The fields mean the same as in UnifiedDiff; the two types convert to each
// other directly.
type ContextDiff UnifiedDiff

// contextPrefix maps an op to the two-character prefix context format uses
// for its content lines.
func contextPrefix(op seqmatch.Op) string {
	switch op {
	case seqmatch.OpEqual:
		return "  "
	case seqmatch.OpReplace:
		return "! "
	case seqmatch.OpDelete:
		return "- "
	case seqmatch.OpInsert:
		return "+ "
	}
	panic(fmt.Sprintf("textdiff: unknown op %v", op))
}

// formatRangeContext renders a zero-based half-open line range the way a
// context section header shows it: one-based and inclusive, collapsed to the
// bare start when the range has at most one line.
func formatRangeContext(start, stop int) string {
	beginning := start + 1
	length := stop - start
	if length == 0 {
		beginning--
	}
	if length <= 1 {
		return fmt.Sprintf("%d", beginning)
	}
	return fmt.Sprintf("%d,%d", beginning, beginning+length-1)
}

// WriteContextDiff writes the context-format diff described by c to w.
func WriteContextDiff(w io.Writer, c ContextDiff) error {
	if err := writeContext(w, c); err != nil {
		return fmt.Errorf("writing context diff: %w", err)
	}
	return nil
}

// ContextDiffString is WriteContextDiff into a string.
func ContextDiffString(c ContextDiff) (string, error) {
	var buf bytes.Buffer
	err := WriteContextDiff(&buf, c)
	return buf.String(), err
}

func writeContext(w io.Writer, c ContextDiff) error {
	bw := bufio.NewWriter(w)
	if c.Eol == "" {
		c.Eol = "\n"
	}
	ws := func(s string) error {
		_, err := bw.WriteString(s)
		return err
	}

	started := false
	m := seqmatch.New(c.A, c.B)
	for _, group := range m.GroupedOpCodes(c.Context) {
		if !started {
			started = true
			if c.FromFile != "" || c.FromDate != "" {
				if err := ws("*** " + c.FromFile + dateSuffix(c.FromDate) + c.Eol); err != nil {
					return err
				}
			}
			if c.ToFile != "" || c.ToDate != "" {
				if err := ws("--- " + c.ToFile + dateSuffix(c.ToDate) + c.Eol); err != nil {
					return err
				}
			}
		}

		first, last := group[0], group[len(group)-1]
		if err := ws("***************" + c.Eol); err != nil {
			return err
		}

		if err := ws("*** " + formatRangeContext(first.A1, last.A2) + " ****" + c.Eol); err != nil {
			return err
		}
		if opsInGroup(group, seqmatch.OpReplace, seqmatch.OpDelete) {
			for _, oc := range group {
				if oc.Op == seqmatch.OpInsert {
					continue
				}
				for _, line := range c.A[oc.A1:oc.A2] {
					if err := ws(contextPrefix(oc.Op) + line); err != nil {
						return err
					}
				}
			}
		}

		if err := ws("--- " + formatRangeContext(first.B1, last.B2) + " ----" + c.Eol); err != nil {
			return err
		}
		if opsInGroup(group, seqmatch.OpReplace, seqmatch.OpInsert) {
			for _, oc := range group {
				if oc.Op == seqmatch.OpDelete {
					continue
				}
				for _, line := range c.B[oc.B1:oc.B2] {
					if err := ws(contextPrefix(oc.Op) + line); err != nil {
						return err
					}
				}
			}
		}
	}
	return bw.Flush()
}

// opsInGroup reports whether any op code in group carries one of the given
// ops. A section with no changes of its own shows just its header, no
// content lines.
func opsInGroup(group []seqmatch.OpCode, ops ...seqmatch.Op) bool {
	for _, oc := range group {
		for _, op := range ops {
			if oc.Op == op {
				return true
			}
		}
	}
	return false
}
