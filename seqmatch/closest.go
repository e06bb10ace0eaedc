package seqmatch

import (
	"fmt"
	"sort"
)

// Conventional arguments for CloseMatches.
const (
	DefaultCloseMatchCount  = 3
	DefaultCloseMatchCutoff = 0.6
)

// CloseMatches returns the best "good enough" matches for target among
// candidates, most similar first.
//
// n (conventionally DefaultCloseMatchCount) is the maximum number of
// matches to return and must be > 0. cutoff (conventionally
// DefaultCloseMatchCutoff) is a float in [0, 1]; candidates that don't
// score at least that similar to target are ignored. Candidates with equal
// scores keep their input order.
//
//	matches, err := seqmatch.CloseMatches([]rune("appel"),
//	    [][]rune{[]rune("ape"), []rune("apple"), []rune("peach"), []rune("puppy")},
//	    seqmatch.DefaultCloseMatchCount, seqmatch.DefaultCloseMatchCutoff)
//	// matches renders as ["apple", "ape"]
func CloseMatches[E comparable](target []E, candidates [][]E, n int, cutoff float64) ([][]E, error) {
	if n <= 0 {
		return nil, fmt.Errorf("n must be > 0: %d", n)
	}
	if cutoff < 0.0 || cutoff > 1.0 {
		return nil, fmt.Errorf("cutoff must be in [0.0, 1.0]: %v", cutoff)
	}

	type scored struct {
		ratio float64
		seq   []E
	}
	var result []scored
	m := NewWithJunk[E](nil, target, true, nil)
	for _, cand := range candidates {
		m.SetSeq1(cand)
		// Computing similarity is expensive, so consult the cheap upper
		// bounds first; this alone speeds messy comparisons several-fold.
		if m.RealQuickRatio() >= cutoff &&
			m.QuickRatio() >= cutoff &&
			m.Ratio() >= cutoff {
			result = append(result, scored{m.Ratio(), cand})
		}
	}

	// Best scorers to the head of the list.
	sort.SliceStable(result, func(i, j int) bool { return result[i].ratio > result[j].ratio })
	if len(result) > n {
		result = result[:n]
	}

	// Strip the scores.
	out := make([][]E, len(result))
	for i, r := range result {
		out[i] = r.seq
	}
	return out, nil
}
