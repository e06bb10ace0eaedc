package htmldiff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gestaltdiff/gestaltdiff/seqmatch"
	"github.com/gestaltdiff/gestaltdiff/textdiff"
)

// In-band markers wrapping changed text until the final HTML substitution.
// markStart is followed by '+', '-', or '^' naming the kind of change.
const (
	markStart = '\x00'
	markEnd   = '\x01'
)

// guideCutoff is the similarity at which an adjacent delete/insert pair is
// treated as two versions of one line and marked up rune by rune. It equals
// the cutoff the Differ uses to synchronize a replaced block on such a pair,
// so exactly the pairs the Differ considered "the same line, edited" get
// intraline treatment here.
const guideCutoff = 0.75

// deltaLine is one line of the tagged delta the row generator consumes:
// tag ' ', '-', '+', or '?' (intraline guide), text with no tag prefix and
// no trailing newline.
type deltaLine struct {
	tag  byte
	text string
}

// halfRow is one side of a side-by-side row.
//
// Num is the 1-based line number as a string, "" for a filler row (the
// blank cell opposite an unpaired add or delete), or ">" for the
// continuation rows of a wrapped line. Text carries in-band markers.
type halfRow struct {
	Num  string
	Text string
}

type rowFlag int

const (
	flagSame rowFlag = iota
	flagChanged
	flagSeparator // elided run between context groups; both halves empty
)

// row is one assembled side-by-side row.
type row struct {
	From, To halfRow
	Flag     rowFlag
}

// mdiff produces side-by-side rows for a vs b. Lines must already be
// tab-expanded and newline-stripped. context < 0 keeps every row; otherwise
// only context rows around each change are kept, with separator rows
// marking the elisions.
func (h *HTMLDiff) mdiff(a, b []string, context int) []row {
	d := &textdiff.Differ{LineJunk: h.LineJunk, CharJunk: h.CharJunk}
	delta := markedDelta(d.Compare(a, b), h.CharJunk)
	rows := pairRows(sideRows(delta))
	if context >= 0 {
		rows = applyContext(rows, context)
	}
	return rows
}

// markedDelta renders a delta as tagged lines, restoring the intraline "?"
// guide lines the Differ itself does not emit: whenever a delete line is
// immediately followed by an insert line and the pair is similar enough to
// have synchronized a replaced block, the pair gets guide lines marking
// which runes changed.
func markedDelta(delta []textdiff.Line, charJunk func(rune) bool) []deltaLine {
	out := make([]deltaLine, 0, len(delta))
	cruncher := seqmatch.NewWithJunk[rune](nil, nil, true, charJunk)
	for i := 0; i < len(delta); i++ {
		ln := delta[i]
		switch ln.Op {
		case seqmatch.OpEqual:
			out = append(out, deltaLine{tag: ' ', text: ln.OldText})
		case seqmatch.OpInsert:
			out = append(out, deltaLine{tag: '+', text: ln.NewText})
		case seqmatch.OpDelete:
			out = append(out, deltaLine{tag: '-', text: ln.OldText})
			if i+1 >= len(delta) || delta[i+1].Op != seqmatch.OpInsert {
				continue
			}
			next := delta[i+1]
			cruncher.SetSeq2([]rune(next.NewText))
			cruncher.SetSeq1([]rune(ln.OldText))
			if cruncher.Ratio() < guideCutoff {
				continue
			}
			aguide, bguide := guideLines(ln.OldText, next.NewText, cruncher.OpCodes())
			if aguide != "" {
				out = append(out, deltaLine{tag: '?', text: aguide})
			}
			out = append(out, deltaLine{tag: '+', text: next.NewText})
			if bguide != "" {
				out = append(out, deltaLine{tag: '?', text: bguide})
			}
			i++
		default:
			panic(fmt.Sprintf("htmldiff: delta line has op %v", ln.Op))
		}
	}
	return out
}

// guideLines builds the guide tag strings for a near-match pair from the
// rune-level op codes: '^' under replaced runes, '-' under deleted, '+'
// under inserted, blank under equal. Leading tabs common to both lines (and
// unchanged in both) are carried into the guides so indented changes stay
// aligned; a guide that is all blank comes back "".
//
// Tag strings are pure ASCII, but their positions index runes of the line.
func guideLines(aline, bline string, ops []seqmatch.OpCode) (string, string) {
	var atags, btags string
	for _, oc := range ops {
		la, lb := oc.A2-oc.A1, oc.B2-oc.B1
		switch oc.Op {
		case seqmatch.OpReplace:
			atags += strings.Repeat("^", la)
			btags += strings.Repeat("^", lb)
		case seqmatch.OpDelete:
			atags += strings.Repeat("-", la)
		case seqmatch.OpInsert:
			btags += strings.Repeat("+", lb)
		case seqmatch.OpEqual:
			atags += strings.Repeat(" ", la)
			btags += strings.Repeat(" ", lb)
		default:
			panic(fmt.Sprintf("htmldiff: unknown op %v", oc.Op))
		}
	}
	common := min(leadingCount(aline, '\t', len(aline)), leadingCount(bline, '\t', len(bline)))
	common = min(common, leadingCount(atags, ' ', common))
	common = min(common, leadingCount(btags, ' ', common))
	atags = strings.TrimRight(atags[common:], " ")
	btags = strings.TrimRight(btags[common:], " ")
	if atags != "" {
		atags = strings.Repeat("\t", common) + atags
	}
	if btags != "" {
		btags = strings.Repeat("\t", common) + btags
	}
	return atags, btags
}

// leadingCount counts how many of the first limit bytes of s equal ch.
func leadingCount(s string, ch byte, limit int) int {
	n := 0
	for n < limit && n < len(s) && s[n] == ch {
		n++
	}
	return n
}

// markIntraline wraps the changed spans of text in markers, guided by a tag
// string of '+', '-', '^' runs aligned to text rune by rune.
func markIntraline(text, guide string) string {
	textRunes := []rune(text)
	var sb strings.Builder
	pos := 0
	gr := []rune(guide)
	for i := 0; i < len(gr); {
		key := gr[i]
		if key != '+' && key != '-' && key != '^' {
			i++
			continue
		}
		j := i
		for j < len(gr) && gr[j] == key {
			j++
		}
		sb.WriteString(string(textRunes[pos:i]))
		sb.WriteByte(markStart)
		sb.WriteRune(key)
		sb.WriteString(string(textRunes[i:j]))
		sb.WriteByte(markEnd)
		pos = j
		i = j
	}
	sb.WriteString(string(textRunes[pos:]))
	return sb.String()
}

// sideRow is one yielded unit of row generation: a from half, a to half, or
// both. A nil half means the row contributes nothing to that side.
type sideRow struct {
	from, to *halfRow
	changed  bool
}

// sideRows walks the tagged delta and turns it into per-side half rows,
// interleaving blank filler halves so that the downstream pairing lines up
// adds and deletes against each other (or against blanks when unpaired).
//
// The walk keys on the tags of the next four delta lines at once: runs of
// deletes followed by runs of adds pair up, intraline guides attach to the
// line they describe, and a balance of pending blanks tracks how lopsided
// the current change block is.
func sideRows(delta []deltaLine) []sideRow {
	var out []sideRow
	pos := 0
	numFrom, numTo := 0, 0
	blanksPending := 0

	tagAt := func(off int) byte {
		if pos+off < len(delta) {
			return delta[pos+off].tag
		}
		return 'X' // exhausted
	}
	pop := func() deltaLine {
		ln := delta[pos]
		pos++
		return ln
	}
	// format 0 is plain text, '-' and '+' wrap the whole line in markers
	// (a blank line becomes a single space so there is something to
	// highlight), '?' consumes the following guide line for intraline
	// markers.
	makeHalf := func(format byte, num int) *halfRow {
		switch format {
		case 0:
			return &halfRow{Num: strconv.Itoa(num), Text: pop().text}
		case '?':
			text := pop().text
			guide := pop().text
			return &halfRow{Num: strconv.Itoa(num), Text: markIntraline(text, guide)}
		default:
			text := pop().text
			if text == "" {
				text = " "
			}
			return &halfRow{Num: strconv.Itoa(num), Text: string(markStart) + string(format) + text + string(markEnd)}
		}
	}
	fromHalf := func(format byte) *halfRow {
		numFrom++
		return makeHalf(format, numFrom)
	}
	toHalf := func(format byte) *halfRow {
		numTo++
		return makeHalf(format, numTo)
	}
	yield := func(from, to *halfRow, changed bool) {
		out = append(out, sideRow{from: from, to: to, changed: changed})
	}
	blank := func() *halfRow { return &halfRow{} }

	for {
		s := string([]byte{tagAt(0), tagAt(1), tagAt(2), tagAt(3)})
		var fromLn, toLn *halfRow
		blanksToYield := 0
		switch {
		case strings.HasPrefix(s, "X"):
			// Out of lines: flush pending blanks so every add/delete
			// already yielded gets its partner.
			blanksToYield = blanksPending
		case strings.HasPrefix(s, "-?+?"):
			yield(fromHalf('?'), toHalf('?'), true)
			continue
		case strings.HasPrefix(s, "--++"):
			// Inside a delete block with an add block coming: hold off on
			// blanks, this delete will pair with an add.
			blanksPending--
			yield(fromHalf('-'), nil, true)
			continue
		case strings.HasPrefix(s, "--?+"), strings.HasPrefix(s, "--+"), strings.HasPrefix(s, "- "):
			// Leaving a delete block: yield the delete, then level out.
			fromLn = fromHalf('-')
			blanksToYield = blanksPending - 1
			blanksPending = 0
		case strings.HasPrefix(s, "-+?"):
			yield(fromHalf(0), toHalf('?'), true)
			continue
		case strings.HasPrefix(s, "-?+"):
			yield(fromHalf('?'), toHalf(0), true)
			continue
		case strings.HasPrefix(s, "-"):
			blanksPending--
			yield(fromHalf('-'), nil, true)
			continue
		case strings.HasPrefix(s, "+--"):
			// Inside an add block with a delete block coming: hold off on
			// blanks, this add will pair with a delete.
			blanksPending++
			yield(nil, toHalf('+'), true)
			continue
		case strings.HasPrefix(s, "+ "), strings.HasPrefix(s, "+-"):
			// Leaving an add block: yield blanks, then the add.
			toLn = toHalf('+')
			blanksToYield = blanksPending + 1
			blanksPending = 0
		case strings.HasPrefix(s, "+"):
			blanksPending++
			yield(nil, toHalf('+'), true)
			continue
		case strings.HasPrefix(s, " "):
			ln := pop()
			numFrom++
			numTo++
			yield(&halfRow{Num: strconv.Itoa(numFrom), Text: ln.text},
				&halfRow{Num: strconv.Itoa(numTo), Text: ln.text}, false)
			continue
		default:
			panic(fmt.Sprintf("htmldiff: unexpected delta sequence %q", s))
		}

		// Catch up on blanks so the next from/to pair lines up.
		for blanksToYield < 0 {
			blanksToYield++
			yield(nil, blank(), true)
		}
		for blanksToYield > 0 {
			blanksToYield--
			yield(blank(), nil, true)
		}
		if s[0] == 'X' {
			return out
		}
		yield(fromLn, toLn, true)
	}
}

// pairRows zips the per-side halves into full rows, first-in first-out per
// side. A row is changed if either contributing half was.
func pairRows(sides []sideRow) []row {
	type entry struct {
		half    halfRow
		changed bool
	}
	var fromQ, toQ []entry
	var rows []row
	i := 0
	for {
		for len(fromQ) == 0 || len(toQ) == 0 {
			if i >= len(sides) {
				return rows
			}
			s := sides[i]
			i++
			if s.from != nil {
				fromQ = append(fromQ, entry{*s.from, s.changed})
			}
			if s.to != nil {
				toQ = append(toQ, entry{*s.to, s.changed})
			}
		}
		f, t := fromQ[0], toQ[0]
		fromQ, toQ = fromQ[1:], toQ[1:]
		flag := flagSame
		if f.changed || t.changed {
			flag = flagChanged
		}
		rows = append(rows, row{From: f.half, To: t.half, Flag: flag})
	}
}

// applyContext keeps only the rows within context rows of a change,
// replacing each elided run with a single separator row. Regions around
// nearby changes merge; no changes at all means no rows at all.
func applyContext(rows []row, context int) []row {
	type span struct{ lo, hi int }
	var spans []span
	for i, r := range rows {
		if r.Flag != flagChanged {
			continue
		}
		lo, hi := i-context, i+context+1
		if lo < 0 {
			lo = 0
		}
		if hi > len(rows) {
			hi = len(rows)
		}
		if len(spans) > 0 && lo <= spans[len(spans)-1].hi {
			spans[len(spans)-1].hi = hi
		} else {
			spans = append(spans, span{lo: lo, hi: hi})
		}
	}

	var out []row
	prevHi := 0
	for _, sp := range spans {
		if sp.lo > prevHi {
			out = append(out, row{Flag: flagSeparator})
		}
		out = append(out, rows[sp.lo:sp.hi]...)
		prevHi = sp.hi
	}
	return out
}
