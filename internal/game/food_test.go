package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptedRand replays fixed values, then repeats the last one.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.vals[len(r.vals)-1]
	if r.i < len(r.vals) {
		v = r.vals[r.i]
		r.i++
	}
	return v % n
}

func TestPlaceFoodRetriesOccupiedCells(t *testing.T) {
	snake := Snake{{1, 1}, {2, 1}, {3, 1}}
	rng := &scriptedRand{vals: []int{1, 1, 3, 1, 7, 9}}

	got := PlaceFood(snake, rng)

	assert.Equal(t, Point{7, 9}, got)
	assert.Equal(t, 6, rng.i, "expected three samples")
}

func TestPlaceFoodNeverOnSnake(t *testing.T) {
	// A long snake filling the top rows of the board.
	var snake Snake
	for y := 0; y < 20; y++ {
		for x := 0; x < Columns; x++ {
			snake = append(snake, Point{x, y})
		}
	}
	rng := NewRand(7)
	for i := 0; i < 500; i++ {
		p := PlaceFood(snake, rng)
		assert.True(t, InBounds(p), "food %v off board", p)
		assert.False(t, snake.Contains(p), "food %v on snake", p)
	}
}

func TestRandIsDeterministic(t *testing.T) {
	a, b := NewRand(99), NewRand(99)
	for i := 0; i < 32; i++ {
		assert.Equal(t, a.Intn(Columns), b.Intn(Columns))
	}
	assert.Equal(t, 0, a.Intn(0))
}
