package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arrange overwrites the session's board for a scenario.
func arrange(s *GameSession, snake Snake, dir Direction, food Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snake = snake
	s.direction = dir
	s.food = food
}

func TestNewSessionStartsAtStartBody(t *testing.T) {
	s := NewGameSession(NewRand(3))
	snap := s.Snapshot()

	assert.Equal(t, Snake{{1, 1}, {2, 1}, {3, 1}, {4, 1}}, snap.Snake)
	assert.Equal(t, Right, snap.Direction)
	assert.Zero(t, snap.Score)
	assert.False(t, snap.GameOver)
	assert.False(t, snap.Snake.Contains(snap.Food))
	assert.Equal(t, StateRunning, s.State())
}

func TestTickMovesOneCell(t *testing.T) {
	s := NewGameSession(NewRand(3))
	for _, d := range []Direction{Right, Down, Down, Left} {
		before := s.Snapshot()
		arrange(s, before.Snake, d, Point{39, 29})

		res := s.Tick()

		after := s.Snapshot()
		require.True(t, res.Moved)
		assert.Equal(t, before.Snake.Head().Add(d), after.Snake.Head())
		assert.Len(t, after.Snake, len(before.Snake))
		assert.Equal(t, before.Ticks+1, after.Ticks)
	}
}

func TestTickEatsFood(t *testing.T) {
	s := NewGameSession(NewRand(11))
	arrange(s, Snake{{1, 1}, {2, 1}, {3, 1}, {4, 1}}, Right, Point{5, 1})

	res := s.Tick()

	snap := s.Snapshot()
	require.True(t, res.Ate)
	assert.Equal(t, Snake{{1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}}, snap.Snake)
	assert.Equal(t, 1, snap.Score)
	assert.NotEqual(t, Point{5, 1}, snap.Food)
	assert.False(t, snap.Snake.Contains(snap.Food))
	assert.False(t, snap.GameOver)
}

func TestTickIntoLeftWallEndsGame(t *testing.T) {
	s := NewGameSession(NewRand(5))
	arrange(s, Snake{{2, 1}, {1, 1}, {0, 1}}, Left, Point{20, 20})

	res := s.Tick()

	require.True(t, res.GameOver)
	assert.Equal(t, Point{-1, 1}, res.Head)
	assert.True(t, s.Snapshot().GameOver)
	assert.Equal(t, StateGameOver, s.State())

	// No further movement once over.
	frozen := s.Snapshot().Snake
	res = s.Tick()
	assert.False(t, res.Moved)
	assert.Equal(t, frozen, s.Snapshot().Snake)
}

func TestTickIntoOwnBodyEndsGame(t *testing.T) {
	s := NewGameSession(NewRand(5))
	// Head at (1,2) turning up into (1,1) which stays occupied after the tail moves.
	arrange(s, Snake{{0, 1}, {1, 1}, {2, 1}, {2, 2}, {1, 2}}, Up, Point{20, 20})

	res := s.Tick()

	assert.True(t, res.GameOver)
}

func TestHighScoreTracksMaximum(t *testing.T) {
	s := NewGameSession(NewRand(8))

	for i := 0; i < 3; i++ {
		snap := s.Snapshot()
		head := snap.Snake.Head()
		arrange(s, snap.Snake, Down, Point{head.X, head.Y + 1})
		res := s.Tick()
		require.True(t, res.Ate)
		assert.True(t, res.NewHighScore)
	}
	assert.Equal(t, 3, s.Snapshot().HighScore)

	s.Reset()
	assert.Zero(t, s.Snapshot().Score)
	assert.Equal(t, 3, s.Snapshot().HighScore, "high score survives reset")

	snap := s.Snapshot()
	head := snap.Snake.Head()
	arrange(s, snap.Snake, Down, Point{head.X, head.Y + 1})
	res := s.Tick()
	assert.True(t, res.Ate)
	assert.False(t, res.NewHighScore)
	assert.Equal(t, 3, s.Snapshot().HighScore)
}

func TestResetRestoresStart(t *testing.T) {
	s := NewGameSession(NewRand(5))
	s.HandleKey(KeyDown, Press)
	s.HandleKey(KeyBoost, Press)
	arrange(s, Snake{{0, 1}}, Left, Point{20, 20})
	s.Tick()
	require.True(t, s.Snapshot().GameOver)

	s.Reset()

	snap := s.Snapshot()
	assert.Equal(t, Snake{{1, 1}, {2, 1}, {3, 1}, {4, 1}}, snap.Snake)
	assert.Equal(t, Right, snap.Direction)
	assert.Zero(t, snap.Score)
	assert.False(t, snap.GameOver)
	assert.True(t, snap.Boost, "boost follows the physical key")
	assert.False(t, snap.Snake.Contains(snap.Food))
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewGameSession(NewRand(5))
	snap := s.Snapshot()
	snap.Snake[0] = Point{30, 30}

	assert.Equal(t, Point{1, 1}, s.Snapshot().Snake[0])
}
