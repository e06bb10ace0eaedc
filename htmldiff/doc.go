// Package htmldiff renders two line sequences as a side-by-side HTML table
// with changed lines flagged and the changed runs inside them highlighted.
//
// MakeTable produces just the table; MakeFile wraps it in a complete
// document with a stylesheet and a legend. Either can show the inputs in
// full or collapse them to a few lines of context around each change, and
// both thread a navigation column through the output: "n" jumps to the next
// change, "f" to the first, "t" back to the top. Anchor ids are unique per
// generated table, so several tables can share one page.
//
// Rows derive from the textdiff Differ, so line pairing follows the same
// "looks right to people" matching as the text deltas, and the line pairs
// the Differ synchronized on get their changed runs highlighted as
// added/changed/deleted spans. Long lines can be wrapped to a display-cell
// budget with WrapColumn;
// widths count terminal cells, not runes, so East Asian wide characters and
// grapheme clusters survive wrapping intact.
package htmldiff
