package datastructure

import "iter"

// CandidateFilter enumerates the legal successors of a center vertex: every vertex n with
// 0 < n < maxNodes, n != center and Distance(center, n) <= maxHopDistance.
// vertex 0 is reserved and never yielded as a candidate.
type CandidateFilter struct {
	network        *LineNetwork
	center         Index
	maxHopDistance uint64
}

func NewCandidateFilter(network *LineNetwork, center Index, maxHopDistance uint64) CandidateFilter {
	return CandidateFilter{
		network:        network,
		center:         center,
		maxHopDistance: maxHopDistance,
	}
}

// Begin returns a fresh iterator positioned before the first candidate.
func (cf CandidateFilter) Begin() CandidateIterator {
	it := CandidateIterator{
		network:        cf.network,
		center:         cf.center,
		maxHopDistance: cf.maxHopDistance,
		end:            cf.network.GetSentinel(),
	}

	if !cf.network.IsValidVertex(cf.center) {
		// sentinel center (or anything past it): empty sequence
		it.current = it.end
		it.started = true
		return it
	}

	// skip straight to the lower edge of the hop window, never below vertex 1.
	first := uint64(1)
	if cf.maxHopDistance < uint64(cf.center) {
		first = max(first, uint64(cf.center)-cf.maxHopDistance)
	}
	if first >= uint64(it.end) {
		it.current = it.end
		it.started = true
		return it
	}
	it.current = Index(first)

	// stop right after the last vertex inside the window
	if cf.maxHopDistance < uint64(it.end)-uint64(cf.center) {
		it.end = Index(uint64(cf.center) + cf.maxHopDistance + 1)
	}
	return it
}

// All returns the candidates as a range-over-func sequence. Every call starts over.
func (cf CandidateFilter) All() iter.Seq[Index] {
	return func(yield func(Index) bool) {
		for it := cf.Begin(); it.Next(); {
			if !yield(it.Node()) {
				return
			}
		}
	}
}

// CandidateIterator is a value type, advancing it allocates nothing.
//
//	for it := filter.Begin(); it.Next(); {
//		v := it.Node()
//	}
type CandidateIterator struct {
	network        *LineNetwork
	center         Index
	maxHopDistance uint64

	current Index
	end     Index // exclusive upper bound of the scan
	started bool
}

// Next advances to the next candidate and reports whether there is one.
func (it *CandidateIterator) Next() bool {
	if it.started {
		if it.current >= it.end {
			return false
		}
		it.current++
	}
	it.started = true

	for it.current < it.end && (it.current == it.center || it.current == 0 ||
		it.network.Distance(it.center, it.current) > it.maxHopDistance) {
		it.current++
	}
	return it.current < it.end
}

// Node returns the current candidate. only meaningful after Next returned true.
func (it *CandidateIterator) Node() Index {
	return it.current
}
