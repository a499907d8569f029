package reconciler

// OfferSet is single-use working set of marketplace offer ids.
// Taking an id removes its first pending occurrence, ids never taken are returned by Remaining in catalog order.
type OfferSet struct {
	ids     []string
	taken   []bool
	pending map[string][]int
}

// NewOfferSet returns OfferSet over a copy of provided ids.
func NewOfferSet(ids []string) *OfferSet {
	set := &OfferSet{
		ids:     make([]string, len(ids)),
		taken:   make([]bool, len(ids)),
		pending: make(map[string][]int, len(ids)),
	}
	copy(set.ids, ids)

	for ix, id := range set.ids {
		set.pending[id] = append(set.pending[id], ix)
	}

	return set
}

// Contains reports whether id has pending occurrence.
func (s *OfferSet) Contains(id string) bool {
	return len(s.pending[id]) > 0
}

// Take removes first pending occurrence of id. It returns false when there is none.
func (s *OfferSet) Take(id string) bool {
	positions := s.pending[id]
	if len(positions) == 0 {
		return false
	}

	s.taken[positions[0]] = true
	if len(positions) == 1 {
		delete(s.pending, id)
	} else {
		s.pending[id] = positions[1:]
	}

	return true
}

// Remaining returns ids which were not taken, in original order.
func (s *OfferSet) Remaining() []string {
	remaining := make([]string, 0, len(s.ids))
	for ix, id := range s.ids {
		if !s.taken[ix] {
			remaining = append(remaining, id)
		}
	}

	return remaining
}
