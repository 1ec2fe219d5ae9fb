package core

// neighborSet is an insertion-ordered set of vertex indices.
//
// items holds the members; pos maps a member to its slot in items.
// Removal swaps the last member into the freed slot, so the order is stable
// for a fixed sequence of operations but not sorted.
type neighborSet struct {
	items []int
	pos   map[int]int
}

func newNeighborSet() neighborSet {
	return neighborSet{pos: make(map[int]int)}
}

func (s *neighborSet) has(v int) bool {
	_, ok := s.pos[v]
	return ok
}

func (s *neighborSet) add(v int) {
	if _, ok := s.pos[v]; ok {
		return
	}
	s.pos[v] = len(s.items)
	s.items = append(s.items, v)
}

func (s *neighborSet) remove(v int) {
	i, ok := s.pos[v]
	if !ok {
		return
	}
	last := len(s.items) - 1
	moved := s.items[last]
	s.items[i] = moved // fill the hole with the last member
	s.pos[moved] = i
	s.items = s.items[:last]
	delete(s.pos, v)
}

func (s *neighborSet) len() int { return len(s.items) }

// clone returns an independent copy.
func (s *neighborSet) clone() neighborSet {
	out := neighborSet{
		items: make([]int, len(s.items)),
		pos:   make(map[int]int, len(s.pos)),
	}
	copy(out.items, s.items)
	for k, v := range s.pos {
		out.pos[k] = v
	}

	return out
}

// renumber drops 'removed' and shifts every member above it down by one.
func (s *neighborSet) renumber(removed int) {
	s.remove(removed)
	var i int
	for i = range s.items {
		if s.items[i] > removed {
			s.items[i]--
		}
	}
	clear(s.pos)
	for i = range s.items {
		s.pos[s.items[i]] = i
	}
}
