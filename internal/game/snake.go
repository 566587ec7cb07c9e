package game

// Snake is the ordered body, tail at index 0 and head at the last index.
type Snake []Point

// Head returns the most recently added cell.
func (s Snake) Head() Point {
	return s[len(s)-1]
}

// Tail returns the least recently added cell.
func (s Snake) Tail() Point {
	return s[0]
}

func (s Snake) Contains(p Point) bool {
	for _, c := range s {
		if c == p {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no backing array with s.
func (s Snake) Clone() Snake {
	out := make(Snake, len(s))
	copy(out, s)
	return out
}

// Advance moves the head one cell in dir. The tail is kept when the new head
// lands on food, so the body grows by one; otherwise the tail is dropped.
// The receiver is not modified.
func (s Snake) Advance(dir Direction, food Point) (Snake, bool) {
	head := s.Head().Add(dir)
	if head == food {
		next := make(Snake, len(s)+1)
		copy(next, s)
		next[len(s)] = head
		return next, true
	}
	next := make(Snake, len(s))
	copy(next, s[1:])
	next[len(s)-1] = head
	return next, false
}
