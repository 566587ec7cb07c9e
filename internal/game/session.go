package game

import (
	"sync"
	"time"
)

type State int

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "running"
}

// GameSession owns every piece of mutable game state. Ticks and input events
// are each applied under one lock, so they interleave only between steps.
type GameSession struct {
	mu sync.Mutex

	snake     Snake
	food      Point
	direction Direction
	boost     bool
	state     State
	score     int
	highScore int
	ticks     int

	resetRequested bool

	rng Intner
}

// TickResult describes what a single tick did.
type TickResult struct {
	Moved        bool
	Ate          bool
	NewHighScore bool
	GameOver     bool
	Head         Point
	Score        int
}

// Snapshot is a read-only copy of the session for presentation.
type Snapshot struct {
	Snake     Snake
	Food      Point
	Direction Direction
	Boost     bool
	GameOver  bool
	Score     int
	HighScore int
	Ticks     int
}

func NewGameSession(rng Intner) *GameSession {
	s := &GameSession{rng: rng}
	s.reset()
	return s
}

// Tick advances the snake one cell, then scores and collides the result.
// It is a no-op once the game is over.
func (s *GameSession) Tick() TickResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateGameOver {
		return TickResult{GameOver: true, Head: s.snake.Head(), Score: s.score}
	}

	next, ate := s.snake.Advance(s.direction, s.food)
	s.snake = next
	s.ticks++

	res := TickResult{Moved: true, Ate: ate, Head: next.Head()}
	if ate {
		s.score += FoodScore
		if s.score > s.highScore {
			s.highScore = s.score
			res.NewHighScore = true
		}
		s.food = PlaceFood(s.snake, s.rng)
	}
	if Collided(s.snake) {
		s.state = StateGameOver
		res.GameOver = true
	}
	res.Score = s.score
	return res
}

// Reset returns the session to the starting position. High score survives.
func (s *GameSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *GameSession) reset() {
	s.snake = StartBody.Clone()
	s.direction = StartDirection
	s.score = 0
	s.ticks = 0
	s.state = StateRunning
	s.resetRequested = false
	s.food = PlaceFood(s.snake, s.rng)
}

// TakeResetRequest reports whether a reset was requested since the last
// call and clears the request.
func (s *GameSession) TakeResetRequest() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.resetRequested
	s.resetRequested = false
	return r
}

// TickInterval is the wait before the next tick, chosen from the boost flag.
func (s *GameSession) TickInterval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.boost {
		return BoostTickInterval
	}
	return TickInterval
}

func (s *GameSession) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *GameSession) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Snake:     s.snake.Clone(),
		Food:      s.food,
		Direction: s.direction,
		Boost:     s.boost,
		GameOver:  s.state == StateGameOver,
		Score:     s.score,
		HighScore: s.highScore,
		Ticks:     s.ticks,
	}
}
