package textdiff

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/gestaltdiff/gestaltdiff/seqmatch"
)

// UnifiedDiff configures a diff in unified format: changes shown by prefix
// character, context lines shared by both files shown once.
//
//	--- Original	2005-01-26 23:30:50
//	+++ Current	2010-04-02 10:20:52
//	@@ -1,4 +1,4 @@
//	+zero
//	 one
//	-two
//	-three
//	+tree
//	 four
//
// A and B normally come from SplitLines, so each line includes its trailing
// newline and the content lines below a hunk header need no terminator of
// their own. Control lines (headers and hunk headers) are terminated with
// Eol instead; empty Eol means "\n".
//
// The header lines carry FromFile/ToFile and, when non-empty, a tab and
// FromDate/ToDate. Both header lines are omitted when their file name and
// date are both empty. When A equals B there are no hunks and the output is
// entirely empty, headers included.
type UnifiedDiff struct {
	A        []string // Old lines, each normally \n-terminated.
	B        []string // New lines, each normally \n-terminated.
	FromFile string   // Name shown on the "---" header line.
	FromDate string   // Shown after FromFile, tab-separated, when non-empty.
	ToFile   string   // Name shown on the "+++" header line.
	ToDate   string   // Shown after ToFile, tab-separated, when non-empty.
	Eol      string   // Terminator for control lines; "" means "\n".
	Context  int      // Equal lines kept around each change (3 is conventional).
}

// SplitLines splits text into lines suitable for UnifiedDiff.A/B, keeping
// the \n on every line. The final line always gets a \n even when text had
// none, so SplitLines("") is []string{"\n"}.
func SplitLines(text string) []string {
	lines := strings.SplitAfter(text, "\n")
	lines[len(lines)-1] += "\n"
	return lines
}

// formatRangeUnified renders a zero-based half-open line range the way a
// unified hunk header shows it: one-based, "start,length" with
// single-element ranges collapsed to the bare start and empty ranges
// pointing just before the gap.
func formatRangeUnified(start, stop int) string {
	beginning := start + 1
	length := stop - start
	if length == 1 {
		return fmt.Sprintf("%d", beginning)
	}
	if length == 0 {
		beginning--
	}
	return fmt.Sprintf("%d,%d", beginning, length)
}

// WriteUnifiedDiff writes the unified-format diff described by u to w.
func WriteUnifiedDiff(w io.Writer, u UnifiedDiff) error {
	if err := writeUnified(w, u); err != nil {
		return fmt.Errorf("writing unified diff: %w", err)
	}
	return nil
}

// UnifiedDiffString is WriteUnifiedDiff into a string.
func UnifiedDiffString(u UnifiedDiff) (string, error) {
	var buf bytes.Buffer
	err := WriteUnifiedDiff(&buf, u)
	return buf.String(), err
}

func writeUnified(w io.Writer, u UnifiedDiff) error {
	bw := bufio.NewWriter(w)
	if u.Eol == "" {
		u.Eol = "\n"
	}
	ws := func(s string) error {
		_, err := bw.WriteString(s)
		return err
	}

	started := false
	m := seqmatch.New(u.A, u.B)
	for _, group := range m.GroupedOpCodes(u.Context) {
		if !started {
			started = true
			if u.FromFile != "" || u.FromDate != "" {
				if err := ws("--- " + u.FromFile + dateSuffix(u.FromDate) + u.Eol); err != nil {
					return err
				}
			}
			if u.ToFile != "" || u.ToDate != "" {
				if err := ws("+++ " + u.ToFile + dateSuffix(u.ToDate) + u.Eol); err != nil {
					return err
				}
			}
		}

		first, last := group[0], group[len(group)-1]
		range1 := formatRangeUnified(first.A1, last.A2)
		range2 := formatRangeUnified(first.B1, last.B2)
		if err := ws("@@ -" + range1 + " +" + range2 + " @@" + u.Eol); err != nil {
			return err
		}

		for _, oc := range group {
			if oc.Op == seqmatch.OpEqual {
				for _, line := range u.A[oc.A1:oc.A2] {
					if err := ws(" " + line); err != nil {
						return err
					}
				}
				continue
			}
			if oc.Op == seqmatch.OpReplace || oc.Op == seqmatch.OpDelete {
				for _, line := range u.A[oc.A1:oc.A2] {
					if err := ws("-" + line); err != nil {
						return err
					}
				}
			}
			if oc.Op == seqmatch.OpReplace || oc.Op == seqmatch.OpInsert {
				for _, line := range u.B[oc.B1:oc.B2] {
					if err := ws("+" + line); err != nil {
						return err
					}
				}
			}
		}
	}
	return bw.Flush()
}

// dateSuffix renders the tab-separated date field of a header line; no date,
// no tab.
func dateSuffix(date string) string {
	if date == "" {
		return ""
	}
	return "\t" + date
}
