package htmldiff

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gestaltdiff/gestaltdiff/textdiff"
)

// HTMLDiff generates side-by-side HTML comparisons with per-line and
// per-rune change highlights.
//
// The zero value works: tabs expand to 8 columns, lines never wrap, and no
// characters are junk. New returns the conventional configuration instead
// (same tabs, IsCharacterJunk).
type HTMLDiff struct {
	TabSize    int                    // Tab stop width; <= 0 means 8.
	WrapColumn int                    // Display cells per line before wrapping; <= 0 means no wrapping.
	LineJunk   func(line string) bool // Line-level junk predicate for the underlying Differ.
	CharJunk   func(ch rune) bool     // Rune-level junk predicate for intraline comparison.
}

// New returns an HTMLDiff with the conventional defaults: TabSize 8 and
// CharJunk textdiff.IsCharacterJunk.
func New() *HTMLDiff {
	return &HTMLDiff{TabSize: 8, CharJunk: textdiff.IsCharacterJunk}
}

// anchorCounter makes each generated table's anchor prefixes unique so
// multiple tables can share a page without id conflicts.
var anchorCounter atomic.Int64

func nextAnchorPrefixes() (fromPrefix, toPrefix string) {
	n := anchorCounter.Add(1) - 1
	return fmt.Sprintf("from%d_", n), fmt.Sprintf("to%d_", n)
}

func (h *HTMLDiff) tabSize() int {
	if h.TabSize <= 0 {
		return 8
	}
	return h.TabSize
}

// expandLine expands tabs into tab characters standing in for the spaces
// they widen to: real spaces are hidden first, then tabs expand to spaces,
// then those spaces become tabs again and the real spaces come back. The
// dance keeps tab-vs-space edits visible to the diff while every column
// still lines up; the stand-in tabs render as &nbsp; at the very end. The
// trailing newline goes away here too.
func (h *HTMLDiff) expandLine(line string) string {
	line = strings.ReplaceAll(line, " ", "\x00")
	line = expandTabs(line, h.tabSize())
	line = strings.ReplaceAll(line, " ", "\t")
	line = strings.ReplaceAll(line, "\x00", " ")
	return strings.TrimRight(line, "\n")
}

func (h *HTMLDiff) expandLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = h.expandLine(line)
	}
	return out
}

// expandTabs replaces tabs with spaces up to the next multiple of tabSize,
// counting columns in runes.
func expandTabs(line string, tabSize int) string {
	var sb strings.Builder
	col := 0
	for _, r := range line {
		switch r {
		case '\t':
			n := tabSize - col%tabSize
			for k := 0; k < n; k++ {
				sb.WriteByte(' ')
			}
			col += n
		case '\n', '\r':
			sb.WriteRune(r)
			col = 0
		default:
			sb.WriteRune(r)
			col++
		}
	}
	return sb.String()
}

var cellEscaper = strings.NewReplacer("&", "&amp;", ">", "&gt;", "<", "&lt;")

// formatCell renders one half row as its two table cells: the line-number
// header cell (with an anchor id on first parts of real lines) and the text
// cell. Spaces become &nbsp; so runs survive HTML whitespace collapsing;
// markers stay in-band for the final substitution pass.
func formatCell(prefix string, hr halfRow) string {
	idAttr := ""
	if hr.Num != "" && hr.Num != ">" {
		idAttr = fmt.Sprintf(" id=\"%s%s\"", prefix, hr.Num)
	}
	text := cellEscaper.Replace(hr.Text)
	text = strings.TrimRight(strings.ReplaceAll(text, " ", "&nbsp;"), " \t\n\r")
	return fmt.Sprintf("<td class=\"diff_header\"%s>%s</td><td nowrap=\"nowrap\">%s</td>", idAttr, hr.Num, text)
}

// convertFlags builds the "next change" navigation columns: an invisible
// anchor dropped numLines before each change (so jumping shows the lead-in
// context), an "n" link on each change pointing at the next change's
// anchor, an "f" link at the top when the first row isn't already a change,
// and a "t" link back to the table top on the last change. Tables with no
// rows at all get a single placeholder row instead.
func convertFlags(fromCells, toCells []string, flags []rowFlag, context bool, numLines int, toPrefix string) (from, to []string, outFlags []rowFlag, nextHref, nextID []string) {
	if len(flags) == 0 {
		flags = []rowFlag{flagSame}
		if context {
			fromCells = []string{"<td></td><td>&nbsp;No Differences Found&nbsp;</td>"}
		} else {
			fromCells = []string{"<td></td><td>&nbsp;Empty File&nbsp;</td>"}
		}
		toCells = fromCells
	}

	nextID = make([]string, len(flags))
	nextHref = make([]string, len(flags))
	numChg := 0
	inChange := false
	last := 0
	for i, f := range flags {
		if f != flagChanged {
			inChange = false
			continue
		}
		if inChange {
			continue
		}
		inChange = true
		last = i
		anchor := max(0, i-numLines)
		nextID[anchor] = fmt.Sprintf(" id=\"difflib_chg_%s_%d\"", toPrefix, numChg)
		numChg++
		nextHref[i] = fmt.Sprintf("<a href=\"#difflib_chg_%s_%d\">n</a>", toPrefix, numChg)
	}
	if flags[0] != flagChanged {
		nextHref[0] = fmt.Sprintf("<a href=\"#difflib_chg_%s_0\">f</a>", toPrefix)
	}
	nextHref[last] = fmt.Sprintf("<a href=\"#difflib_chg_%s_top\">t</a>", toPrefix)

	return fromCells, toCells, flags, nextHref, nextID
}

// markReplacer turns the in-band markers into highlight spans and the
// tab-expansion stand-ins into non-breaking spaces.
var markReplacer = strings.NewReplacer(
	"\x00+", "<span class=\"diff_add\">",
	"\x00-", "<span class=\"diff_sub\">",
	"\x00^", "<span class=\"diff_chg\">",
	"\x01", "</span>",
	"\t", "&nbsp;",
)

// MakeTable returns an HTML table showing a and b side by side with changed
// lines highlighted.
//
// fromDesc and toDesc, when non-empty, become column headers. With context
// true, only numLines lines around each change are shown and elided runs
// become table-body breaks; with context false the whole inputs are shown
// and numLines only positions the navigation anchors before each change
// (5 is the conventional value either way).
func (h *HTMLDiff) MakeTable(a, b []string, fromDesc, toDesc string, context bool, numLines int) string {
	fromPrefix, toPrefix := nextAnchorPrefixes()

	ctx := -1
	if context {
		ctx = numLines
	}
	rows := h.mdiff(h.expandLines(a), h.expandLines(b), ctx)
	if h.WrapColumn > 0 {
		rows = wrapRows(rows, h.WrapColumn)
	}

	fromCells := make([]string, len(rows))
	toCells := make([]string, len(rows))
	flags := make([]rowFlag, len(rows))
	for i, r := range rows {
		if r.Flag != flagSeparator {
			fromCells[i] = formatCell(fromPrefix, r.From)
			toCells[i] = formatCell(toPrefix, r.To)
		}
		flags[i] = r.Flag
	}
	fromCells, toCells, flags, nextHref, nextID := convertFlags(fromCells, toCells, flags, context, numLines, toPrefix)

	var sb strings.Builder
	for i, f := range flags {
		if f == flagSeparator {
			// A leading separator just means rows were elided before the
			// first group; there is no group above it to close.
			if i > 0 {
				sb.WriteString("        </tbody>        \n        <tbody>\n")
			}
			continue
		}
		fmt.Fprintf(&sb, "            <tr><td class=\"diff_next\"%s>%s</td>%s<td class=\"diff_next\">%s</td>%s</tr>\n",
			nextID[i], nextHref[i], fromCells[i], nextHref[i], toCells[i])
	}

	headerRow := ""
	if fromDesc != "" || toDesc != "" {
		headerRow = "<thead><tr>" +
			"<th class=\"diff_next\"><br /></th>" +
			fmt.Sprintf("<th colspan=\"2\" class=\"diff_header\">%s</th>", fromDesc) +
			"<th class=\"diff_next\"><br /></th>" +
			fmt.Sprintf("<th colspan=\"2\" class=\"diff_header\">%s</th>", toDesc) +
			"</tr></thead>"
	}

	table := fmt.Sprintf(tableTemplate, toPrefix, headerRow, sb.String())
	return markReplacer.Replace(table)
}

// MakeFile returns a complete HTML document holding the MakeTable output
// plus a legend. charset lands in the meta tag; "" means "utf-8".
func (h *HTMLDiff) MakeFile(a, b []string, fromDesc, toDesc string, context bool, numLines int, charset string) string {
	if charset == "" {
		charset = "utf-8"
	}
	table := h.MakeTable(a, b, fromDesc, toDesc, context, numLines)
	return fmt.Sprintf(fileTemplate, charset, stylesCSS, table, legendHTML)
}

const fileTemplate = `
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN"
          "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">

<html>

<head>
    <meta http-equiv="Content-Type"
          content="text/html; charset=%s" />
    <title></title>
    <style type="text/css">%s
    </style>
</head>

<body>
    %s%s
</body>

</html>`

const stylesCSS = `
        table.diff {font-family:Courier; border:medium;}
        .diff_header {background-color:#e0e0e0}
        td.diff_header {text-align:right}
        .diff_next {background-color:#c0c0c0}
        .diff_add {background-color:#aaffaa}
        .diff_chg {background-color:#ffff77}
        .diff_sub {background-color:#ffaaaa}`

const tableTemplate = `
    <table class="diff" id="difflib_chg_%s_top"
           cellspacing="0" cellpadding="0" rules="groups" >
        <colgroup></colgroup> <colgroup></colgroup> <colgroup></colgroup>
        <colgroup></colgroup> <colgroup></colgroup> <colgroup></colgroup>
        %s
        <tbody>
%s        </tbody>
    </table>`

const legendHTML = `
    <table class="diff" summary="Legends">
        <tr> <th colspan="2"> Legends </th> </tr>
        <tr> <td> <table border="" summary="Colors">
                      <tr><th> Colors </th> </tr>
                      <tr><td class="diff_add">&nbsp;Added&nbsp;</td></tr>
                      <tr><td class="diff_chg">Changed</td> </tr>
                      <tr><td class="diff_sub">Deleted</td> </tr>
                  </table></td>
             <td> <table border="" summary="Links">
                      <tr><th colspan="2"> Links </th> </tr>
                      <tr><td>(f)irst change</td> </tr>
                      <tr><td>(n)ext change</td> </tr>
                      <tr><td>(t)op</td> </tr>
                  </table></td> </tr>
    </table>`
