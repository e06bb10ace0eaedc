// Package textdiff turns pairs of line sequences into human-readable deltas:
// an ndiff-style line-by-line delta, unified diffs, and context diffs.
//
// The Differ walks the edit operations produced by seqmatch over whole lines,
// then re-examines each replaced block to pair off the most similar old/new
// line before showing the lines around it. That second pass is what makes the
// delta read like "this line turned into that line" instead of a wall of
// deletes followed by a wall of inserts. It is expensive: worst case
// quadratic in the number of lines times quadratic in line length. When only
// the changed regions matter, the unified and context formatters skip the
// per-line pairing entirely and are much cheaper.
//
// Inputs are slices of lines, each line normally keeping its trailing
// newline; SplitLines produces them from a whole string. Keeping the newline
// matters to the Differ: it gives every line pair one guaranteed common
// character, which is part of how near-match scoring was tuned.
//
// Deltas restore: the old lines can be recovered from a delta with
// Restore(delta, 1), the new lines with Restore(delta, 2).
package textdiff
