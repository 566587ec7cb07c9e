package game

// Intner is the random source used for food placement.
type Intner interface {
	Intn(n int) int
}

// PlaceFood samples uniformly random cells until one is off the snake.
// There is no retry bound: the board can never fill because there is no
// win condition that lets the snake cover it.
func PlaceFood(snake Snake, rng Intner) Point {
	for {
		p := Point{X: rng.Intn(Columns), Y: rng.Intn(Rows)}
		if !snake.Contains(p) {
			return p
		}
	}
}
