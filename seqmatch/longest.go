package seqmatch

// FindLongestMatch finds the longest matching block in a[alo:ahi] and
// b[blo:bhi]. The ranges must satisfy 0 <= alo <= ahi <= len(a) and
// 0 <= blo <= bhi <= len(b).
//
// With no junk predicate, the returned Match{i, j, k} satisfies
// a[i:i+k] == b[j:j+k] with alo <= i <= i+k <= ahi and
// blo <= j <= j+k <= bhi, and for every other match meeting those
// conditions: k is maximal, then i is minimal, then j is minimal. In other
// words, of all maximal matching blocks, the one starting earliest in a
// wins, and among those, the one starting earliest in b.
//
// With a junk predicate, the longest junk-free match is found first, then
// extended as far as possible on each side by matching junk elements. The
// result never contains junk except where identical junk happens to be
// adjacent to an interesting match.
//
// If no block matches, the result is Match{alo, blo, 0}.
func (m *Matcher[E]) FindLongestMatch(alo, ahi, blo, bhi int) Match {
	// CAUTION: stripping a common prefix or suffix first would be
	// incorrect. For "ab" vs "acab" the longest matching block is "ab",
	// but with the common prefix stripped it degrades to "a" (tied with
	// "b"), which reports the unintuitive insertion of "ca" in the middle
	// instead of "ac" at the front.
	a, b, b2j := m.a, m.b, m.b2j
	besti, bestj, bestsize := alo, blo, 0

	// During iteration i of the outer loop, j2len[j] is the length of the
	// longest junk-free match ending with a[i-1] and b[j].
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		// Look at all instances of a[i] in b; b2j has no junk keys, so
		// the inner loop is skipped entirely when a[i] is junk.
		newj2len := map[int]int{}
		for _, j := range b2j[a[i]] {
			// a[i] matches b[j].
			if j < blo {
				continue
			}
			if j >= bhi {
				break // indices are increasing
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}

	// Extend the best match by non-junk elements on each end. "Popular"
	// non-junk elements aren't in b2j either, so the best match so far
	// contains neither junk nor popular elements.
	for besti > alo && bestj > blo &&
		!m.isBJunk(b[bestj-1]) && a[besti-1] == b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi &&
		!m.isBJunk(b[bestj+bestsize]) && a[besti+bestsize] == b[bestj+bestsize] {
		bestsize++
	}

	// With a wholly interesting match in hand (possibly empty), suck up
	// the matching junk on each side of it. For an empty interesting
	// match this is clearly right, because no other kind of match is
	// possible in the regions.
	for besti > alo && bestj > blo &&
		m.isBJunk(b[bestj-1]) && a[besti-1] == b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi &&
		m.isBJunk(b[bestj+bestsize]) && a[besti+bestsize] == b[bestj+bestsize] {
		bestsize++
	}

	return Match{A: besti, B: bestj, Size: bestsize}
}
