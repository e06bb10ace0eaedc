// Package seqmatch compares pairs of sequences of any comparable element
// type, finding their longest contiguous matching runs and deriving edit
// operations, similarity ratios, and "close enough" candidate rankings from
// them.
//
// Algorithm: The basic idea predates, and is a little fancier than, the
// algorithm published by Ratcliff and Obershelp under the hyperbolic name
// "gestalt pattern matching": find the longest contiguous matching
// subsequence that contains no "junk" elements, then apply the same idea
// recursively to the pieces to the left and to the right of that match. This
// does not yield minimal edit sequences, but it tends to yield matches that
// "look right" to people. Unlike diff tools built on shortest-edit-script
// algorithms, it never synchronizes two texts on an accidental match a
// hundred pages away, at the occasional cost of a longer edit script.
//
// Junk: A caller-supplied predicate marks elements that should never anchor
// a match (blank lines, whitespace). Independently, the autojunk heuristic
// treats elements as noise when they occupy more than 1% of a second
// sequence that has at least 200 elements; this adapts to inputs like
// program text where some line repeats hundreds of times. Junk can still
// appear inside a match, but only by extending a junk-free core.
//
// Reuse: A Matcher computes and caches detailed information about its second
// sequence, so to compare one sequence against many, set the second sequence
// once and vary the first:
//
//	m := seqmatch.New[rune](nil, []rune("abcd"))
//	for _, cand := range candidates {
//	    m.SetSeq1([]rune(cand))
//	    fmt.Println(m.Ratio())
//	}
//
// Matching blocks and op codes describe how to turn the first sequence into
// the second; GroupedOpCodes isolates change clusters with surrounding
// context the way patch-style tools want them. Ratio measures similarity in
// [0, 1], with QuickRatio and RealQuickRatio as progressively cheaper upper
// bounds. CloseMatches builds on all of the above to rank candidates against
// a target.
//
// A Matcher is not safe for concurrent use.
//
// Complexity: quadratic time in the worst case, expected-case behavior
// dependent on how many elements the sequences have in common; best case is
// linear.
package seqmatch
