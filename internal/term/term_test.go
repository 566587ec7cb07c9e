package term

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridsnake/internal/game"
	"gridsnake/internal/scene"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(Width, Height)
	t.Cleanup(s.Fini)
	return s
}

func newFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen, *game.Game) {
	t.Helper()
	s := newScreen(t)
	g := game.NewGame(1)
	return New(s, g), s, g
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func rowText(s tcell.SimulationScreen, y int) string {
	var b strings.Builder
	for x := 0; x < Width; x++ {
		c, _, _, _ := s.GetContent(x, y)
		b.WriteRune(c)
	}
	return b.String()
}

func background(s tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, st, _ := s.GetContent(x, y)
	_, bg, _ := st.Decompose()
	return bg
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Key
	}{
		{"h", runeKey('h'), game.KeyLeft},
		{"upper J", runeKey('J'), game.KeyDown},
		{"k", runeKey('k'), game.KeyUp},
		{"l", runeKey('l'), game.KeyRight},
		{"space", runeKey(' '), game.KeyBoost},
		{"s", runeKey('s'), game.KeyReset},
		{"q", runeKey('q'), game.KeyQuit},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.KeyLeft},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.KeyUp},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.KeyQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), game.KeyQuit},
		{"unbound", runeKey('x'), game.KeyNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translate(tt.ev))
		})
	}
}

func TestHandleEventQuit(t *testing.T) {
	f, _, g := newFrontend(t)
	now := time.Now()

	assert.True(t, f.HandleEvent(runeKey('k'), now))
	assert.Equal(t, game.Up, g.Session.Snapshot().Direction)

	assert.True(t, f.HandleEvent(runeKey('x'), now))
	assert.False(t, f.HandleEvent(runeKey('q'), now))
	assert.False(t, f.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), now))
}

func TestBoostHeldWhileRepeating(t *testing.T) {
	f, _, g := newFrontend(t)
	t0 := time.Now()

	f.HandleEvent(runeKey(' '), t0)
	assert.True(t, g.Session.Snapshot().Boost)
	assert.Equal(t, game.BoostTickInterval, g.Session.TickInterval())

	f.Render(t0.Add(100 * time.Millisecond))
	assert.True(t, g.Session.Snapshot().Boost)

	// auto-repeat refreshes the hold
	f.HandleEvent(runeKey(' '), t0.Add(300*time.Millisecond))
	f.Render(t0.Add(700 * time.Millisecond))
	assert.True(t, g.Session.Snapshot().Boost)

	f.Render(t0.Add(300*time.Millisecond + BoostHold))
	assert.False(t, g.Session.Snapshot().Boost)
	assert.Equal(t, game.TickInterval, g.Session.TickInterval())
}

func TestRenderBoard(t *testing.T) {
	f, s, _ := newFrontend(t)
	f.Render(time.Now())

	hx, hy := cellXY(game.StartBody.Head())
	assert.Equal(t, rgb(scene.Palette.Head.Alpha(1)), background(s, hx, hy))
	assert.Equal(t, rgb(scene.Palette.Head.Alpha(1)), background(s, hx+1, hy))

	tx, ty := cellXY(game.StartBody.Tail())
	assert.Equal(t, rgb(scene.Palette.Body.Alpha(1)), background(s, tx, ty))

	top := rowText(s, 0)
	assert.True(t, strings.HasPrefix(top, "0"), "score in %q", top)
	assert.True(t, strings.HasSuffix(top, "0"), "high score in %q", top)
	assert.NotContains(t, top, scene.ResetPrompt)

	hints := rowText(s, hintsRow)
	assert.True(t, strings.HasPrefix(hints, "H← J↓ K↑ L→"), "hints %q", hints)

	_, _, st, _ := s.GetContent(9, hintsRow)
	fg, _, _ := st.Decompose()
	assert.Equal(t, rgb(over(scene.Palette.Text.Alpha(scene.AlphaBright), black)), fg, "active direction is bright")

	assert.NotContains(t, rowText(s, boostRow), "━")
}

func TestRenderBoostBar(t *testing.T) {
	f, s, _ := newFrontend(t)
	now := time.Now()
	f.HandleEvent(runeKey(' '), now)
	f.Render(now)

	assert.Contains(t, rowText(s, boostRow), "━━━━")
}

func TestRenderGameOver(t *testing.T) {
	f, s, g := newFrontend(t)
	g.HandleKey(game.KeyUp, game.Press)
	g.Session.Tick()
	g.Session.Tick()
	require.Equal(t, game.StateGameOver, g.Session.State())

	now := time.Now()
	for i := 0; i < 6; i++ {
		f.Render(now.Add(time.Duration(i) * 100 * time.Millisecond))
	}

	assert.Contains(t, rowText(s, 0), scene.ResetPrompt)
	assert.Equal(t, rgb(scene.Palette.BoardOver.Alpha(1)), background(s, 0, boardTop+game.Rows-1))

	// S then a frame restores the board
	assert.True(t, f.HandleEvent(runeKey('s'), now))
	f.Render(now.Add(time.Second))
	assert.NotContains(t, rowText(s, 0), scene.ResetPrompt)
	assert.False(t, g.Session.Snapshot().GameOver)
}
