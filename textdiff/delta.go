package textdiff

import (
	"fmt"
	"io"

	"github.com/gestaltdiff/gestaltdiff/seqmatch"
)

// prefixFor returns the two-character prefix that tags a delta line in text
// form. Panics on an op that cannot appear in a delta.
func prefixFor(op seqmatch.Op) string {
	switch op {
	case seqmatch.OpEqual:
		return "  "
	case seqmatch.OpDelete:
		return "- "
	case seqmatch.OpInsert:
		return "+ "
	}
	panic(fmt.Sprintf("textdiff: delta line has op %v", op))
}

// FormatLines renders a delta as prefixed text lines: "  " for equal lines,
// "- " for deletes, "+ " for inserts. Each output line keeps whatever line
// terminator the input line carried.
func FormatLines(delta []Line) []string {
	out := make([]string, 0, len(delta))
	for _, ln := range delta {
		out = append(out, prefixFor(ln.Op)+ln.text())
	}
	return out
}

// WriteDelta writes a delta to w in the same text form FormatLines produces.
func WriteDelta(w io.Writer, delta []Line) error {
	for _, ln := range delta {
		if _, err := io.WriteString(w, prefixFor(ln.Op)+ln.text()); err != nil {
			return fmt.Errorf("writing delta: %w", err)
		}
	}
	return nil
}

// text returns the side of the line a text rendering shows: the old text for
// equal and deleted lines, the new text for inserted lines.
func (ln Line) text() string {
	if ln.Op == seqmatch.OpInsert {
		return ln.NewText
	}
	return ln.OldText
}

// Restore extracts one of the two compared sequences back out of a delta.
// which selects the sequence: 1 for the old lines (equal + deleted), 2 for
// the new lines (equal + inserted).
//
//	delta := textdiff.Ndiff(a, b)
//	a2, _ := textdiff.Restore(delta, 1) // == a
//	b2, _ := textdiff.Restore(delta, 2) // == b
func Restore(delta []Line, which int) ([]string, error) {
	if which != 1 && which != 2 {
		return nil, fmt.Errorf("unknown delta choice (must be 1 or 2): %d", which)
	}
	var lines []string
	for _, ln := range delta {
		switch ln.Op {
		case seqmatch.OpEqual:
			if which == 1 {
				lines = append(lines, ln.OldText)
			} else {
				lines = append(lines, ln.NewText)
			}
		case seqmatch.OpDelete:
			if which == 1 {
				lines = append(lines, ln.OldText)
			}
		case seqmatch.OpInsert:
			if which == 2 {
				lines = append(lines, ln.NewText)
			}
		}
	}
	return lines, nil
}
