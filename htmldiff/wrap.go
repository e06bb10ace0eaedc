package htmldiff

import (
	"strings"

	"github.com/gestaltdiff/gestaltdiff/internal/uni"
)

// visibleWidth measures marked text in terminal display cells: markers are
// free, everything else is measured as the user sees it (double-width CJK
// counts 2, combining marks 0).
func visibleWidth(text string) int {
	w := 0
	for i := 0; i < len(text); {
		switch text[i] {
		case markStart:
			i += 2
		case markEnd:
			i++
		default:
			j := i
			for j < len(text) && text[j] != markStart && text[j] != markEnd {
				j++
			}
			w += uni.TextWidth(text[i:j])
			i = j
		}
	}
	return w
}

// splitMarked splits marked text whose visible width exceeds width into a
// head of at most width cells and the remaining tail. The split never lands
// inside a grapheme cluster, so a cluster wider than the remaining room
// moves to the tail whole (or, when the head is still empty, is kept so the
// split always makes progress). A marker open at the split is closed at the
// end of the head and reopened at the start of the tail.
func splitMarked(text string, width int) (head, tail string) {
	var sb strings.Builder
	cells := 0
	mark := byte(0)
	hasVisible := false
	for i := 0; i < len(text); {
		switch text[i] {
		case markStart:
			mark = text[i+1]
			sb.WriteByte(markStart)
			sb.WriteByte(mark)
			i += 2
		case markEnd:
			mark = 0
			sb.WriteByte(markEnd)
			i++
		default:
			j := i
			for j < len(text) && text[j] != markStart && text[j] != markEnd {
				j++
			}
			for g := uni.Graphemes(text[i:j]); g.Next(); {
				w := g.TextWidth()
				if cells+w > width && hasVisible {
					tail = text[i:]
					if mark != 0 {
						sb.WriteByte(markEnd)
						tail = string([]byte{markStart, mark}) + tail
					}
					return sb.String(), tail
				}
				sb.WriteString(g.Value())
				cells += w
				hasVisible = true
				i += len(g.Value())
			}
		}
	}
	return sb.String(), ""
}

// splitHalf wraps one half row to width cells. The first part keeps the
// line number; continuations are numbered ">". Filler halves (no number)
// pass through whole.
func splitHalf(hr halfRow, width int) []halfRow {
	if hr.Num == "" {
		return []halfRow{hr}
	}
	var parts []halfRow
	num, text := hr.Num, hr.Text
	for visibleWidth(text) > width {
		head, tail := splitMarked(text, width)
		if tail == "" {
			// A lone cluster wider than the budget stays whole.
			break
		}
		parts = append(parts, halfRow{Num: num, Text: head})
		num = ">"
		text = tail
	}
	return append(parts, halfRow{Num: num, Text: text})
}

// wrapRows wraps every row to width cells, padding whichever side runs out
// of parts first with blank fillers so the sides stay paired. Separator
// rows pass through untouched.
func wrapRows(rows []row, width int) []row {
	var out []row
	for _, r := range rows {
		if r.Flag == flagSeparator {
			out = append(out, r)
			continue
		}
		fromParts := splitHalf(r.From, width)
		toParts := splitHalf(r.To, width)
		for len(fromParts) > 0 || len(toParts) > 0 {
			nr := row{Flag: r.Flag, From: halfRow{Text: " "}, To: halfRow{Text: " "}}
			if len(fromParts) > 0 {
				nr.From = fromParts[0]
				fromParts = fromParts[1:]
			}
			if len(toParts) > 0 {
				nr.To = toParts[0]
				toParts = toParts[1:]
			}
			out = append(out, nr)
		}
	}
	return out
}
