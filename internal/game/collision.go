package game

// Collided reports whether any cell of the snake is off the board or
// occupied twice.
func Collided(snake Snake) bool {
	seen := make(map[Point]struct{}, len(snake))
	for _, p := range snake {
		if !InBounds(p) {
			return true
		}
		if _, dup := seen[p]; dup {
			return true
		}
		seen[p] = struct{}{}
	}
	return false
}
