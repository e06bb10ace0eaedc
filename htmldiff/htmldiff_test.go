package htmldiff

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var anchorRE = regexp.MustCompile(`(from|to)\d+_`)

// normalizeAnchors rewrites the per-table anchor prefixes to a fixed value so
// goldens do not depend on how many tables earlier tests generated.
func normalizeAnchors(html string) string {
	return anchorRE.ReplaceAllString(html, "${1}0_")
}

func TestMakeTable_Golden(t *testing.T) {
	got := normalizeAnchors(New().MakeTable([]string{"one"}, []string{"two"}, "", "", false, 5))
	want := `
    <table class="diff" id="difflib_chg_to0_top"
           cellspacing="0" cellpadding="0" rules="groups" >
        <colgroup></colgroup> <colgroup></colgroup> <colgroup></colgroup>
        <colgroup></colgroup> <colgroup></colgroup> <colgroup></colgroup>
        
        <tbody>
            <tr><td class="diff_next" id="difflib_chg_to0_0"><a href="#difflib_chg_to0_top">t</a></td><td class="diff_header" id="from0_1">1</td><td nowrap="nowrap"><span class="diff_sub">one</span></td><td class="diff_next"><a href="#difflib_chg_to0_top">t</a></td><td class="diff_header" id="to0_1">1</td><td nowrap="nowrap"><span class="diff_add">two</span></td></tr>
        </tbody>
    </table>`
	require.Equal(t, want, got)
}

func TestMakeTable_Headers(t *testing.T) {
	got := New().MakeTable([]string{"a"}, []string{"b"}, "before.txt", "after.txt", false, 5)
	require.Contains(t, got, "<thead><tr>")
	require.Contains(t, got, `<th colspan="2" class="diff_header">before.txt</th>`)
	require.Contains(t, got, `<th colspan="2" class="diff_header">after.txt</th>`)
}

func TestMakeTable_NoDifferencesFound(t *testing.T) {
	got := New().MakeTable([]string{"same"}, []string{"same"}, "", "", true, 5)
	require.Contains(t, got, "&nbsp;No Differences Found&nbsp;")
}

func TestMakeTable_EmptyFile(t *testing.T) {
	got := New().MakeTable(nil, nil, "", "", false, 5)
	require.Contains(t, got, "&nbsp;Empty File&nbsp;")
}

func TestMakeTable_EscapesMarkup(t *testing.T) {
	got := New().MakeTable([]string{"a&b <c>"}, []string{"x"}, "", "", false, 5)
	require.Contains(t, got, "a&amp;b&nbsp;&lt;c&gt;")
	require.NotContains(t, got, "<c>")
}

func TestMakeTable_TabsBecomeNbsp(t *testing.T) {
	h := New()
	h.TabSize = 4
	got := h.MakeTable([]string{"\tx"}, []string{"\ty"}, "", "", false, 5)
	require.Contains(t, got, `<span class="diff_sub">&nbsp;&nbsp;&nbsp;&nbsp;x</span>`)
	require.Contains(t, got, `<span class="diff_add">&nbsp;&nbsp;&nbsp;&nbsp;y</span>`)
}

func TestMakeTable_WrapColumn(t *testing.T) {
	h := New()
	h.WrapColumn = 4
	got := normalizeAnchors(h.MakeTable([]string{"abcdefgh"}, []string{"abcdefgh"}, "", "", false, 5))
	require.Contains(t, got, `<td class="diff_header" id="from0_1">1</td><td nowrap="nowrap">abcd</td>`)
	require.Contains(t, got, `<td class="diff_header">></td><td nowrap="nowrap">efgh</td>`)
}

func TestMakeTable_NavigationLinks(t *testing.T) {
	a := []string{"s1", "o1", "s2", "o2"}
	b := []string{"s1", "n1", "s2", "n2"}
	got := normalizeAnchors(New().MakeTable(a, b, "", "", false, 0))
	require.Contains(t, got, `<a href="#difflib_chg_to0_0">f</a>`)
	require.Contains(t, got, `<a href="#difflib_chg_to0_1">n</a>`)
	require.Contains(t, got, `<a href="#difflib_chg_to0_top">t</a>`)
	require.Contains(t, got, ` id="difflib_chg_to0_0"`)
}

func TestMakeTable_ContextSeparatorSplitsTbody(t *testing.T) {
	a := []string{"a", "b", "c", "d", "e", "f", "g"}
	b := []string{"a", "B", "c", "d", "e", "F", "g"}
	got := New().MakeTable(a, b, "", "", true, 1)
	require.Contains(t, got, "        </tbody>        \n        <tbody>\n")
	require.Equal(t, 1, strings.Count(got, "</tbody>        "))
}

func TestMakeTable_UniqueAnchorPrefixes(t *testing.T) {
	h := New()
	first := h.MakeTable([]string{"a"}, []string{"b"}, "", "", false, 5)
	second := h.MakeTable([]string{"a"}, []string{"b"}, "", "", false, 5)
	re := regexp.MustCompile(`id="to\d+_1"`)
	require.NotEmpty(t, re.FindString(first))
	require.NotEqual(t, re.FindString(first), re.FindString(second))
}

func TestFormatCell(t *testing.T) {
	require.Equal(t,
		`<td class="diff_header" id="from0_7">7</td><td nowrap="nowrap">hi</td>`,
		formatCell("from0_", halfRow{Num: "7", Text: "hi"}))
	require.Equal(t,
		`<td class="diff_header">></td><td nowrap="nowrap">x</td>`,
		formatCell("from0_", halfRow{Num: ">", Text: "x"}))
	require.Equal(t,
		`<td class="diff_header"></td><td nowrap="nowrap"></td>`,
		formatCell("from0_", halfRow{}))
}

func TestExpandLine(t *testing.T) {
	h := &HTMLDiff{TabSize: 4}
	require.Equal(t, "a\t\t\tb", h.expandLine("a\tb\n"))
	require.Equal(t, "a b", h.expandLine("a b\n"))
	require.Equal(t, "\t\t\t\tcode", h.expandLine("\tcode"))
}

func TestMakeFile(t *testing.T) {
	got := New().MakeFile([]string{"one"}, []string{"two"}, "", "", false, 5, "")
	require.True(t, strings.HasPrefix(got, "\n<!DOCTYPE html"))
	require.Contains(t, got, "charset=utf-8")
	require.Contains(t, got, "table.diff {font-family:Courier; border:medium;}")
	require.Contains(t, got, `<th colspan="2"> Legends </th>`)
	require.Contains(t, got, `<span class="diff_sub">one</span>`)
	require.Contains(t, got, `<span class="diff_add">two</span>`)
	require.True(t, strings.HasSuffix(got, "</html>"))
}

func TestMakeFile_Charset(t *testing.T) {
	got := New().MakeFile(nil, nil, "", "", false, 5, "iso-8859-1")
	require.Contains(t, got, "charset=iso-8859-1")
}
