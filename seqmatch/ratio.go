package seqmatch

// calculateRatio maps a match count over a total length to [0, 1]. Two
// empty sequences are defined as identical.
func calculateRatio(matches, length int) float64 {
	if length > 0 {
		return 2.0 * float64(matches) / float64(length)
	}
	return 1.0
}

// Ratio returns a measure of the sequences' similarity as a float in [0, 1].
//
// Where T is the total number of elements in both sequences and M is the
// number of matches, this is 2.0*M / T: 1.0 when the sequences are
// identical, 0.0 when they have nothing in common. As a rule of thumb, a
// Ratio over 0.6 means the sequences are close matches.
//
// Ratio is expensive to compute when MatchingBlocks hasn't run yet; try
// QuickRatio or RealQuickRatio first when an upper bound is enough.
func (m *Matcher[E]) Ratio() float64 {
	matches := 0
	for _, bl := range m.MatchingBlocks() {
		matches += bl.Size
	}
	return calculateRatio(matches, len(m.a)+len(m.b))
}

// QuickRatio returns an upper bound on Ratio relatively quickly. No more is
// defined about the value beyond being an upper bound that is cheaper to
// compute.
func (m *Matcher[E]) QuickRatio() float64 {
	// Viewing a and b as multisets, count the cardinality of their
	// intersection; this counts matches without regard to order, so it is
	// clearly an upper bound.
	if m.fullBCount == nil {
		m.fullBCount = make(map[E]int)
		for _, elt := range m.b {
			m.fullBCount[elt]++
		}
	}
	// avail[x] is the number of times x appears in b less the number of
	// times it has been seen in a so far.
	avail := make(map[E]int)
	matches := 0
	for _, elt := range m.a {
		numb, seen := avail[elt]
		if !seen {
			numb = m.fullBCount[elt]
		}
		avail[elt] = numb - 1
		if numb > 0 {
			matches++
		}
	}
	return calculateRatio(matches, len(m.a)+len(m.b))
}

// RealQuickRatio returns an upper bound on Ratio very quickly: there can't
// be more matches than elements in the shorter sequence.
func (m *Matcher[E]) RealQuickRatio() float64 {
	la, lb := len(m.a), len(m.b)
	return calculateRatio(min(la, lb), la+lb)
}
