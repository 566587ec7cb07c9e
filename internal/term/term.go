// Package term runs the game inside a terminal using tcell.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"gridsnake/internal/game"
	"gridsnake/internal/scene"
)

const (
	// BoostHold keeps boost on after the last Space. Terminals report no
	// key release, so auto-repeat has to keep refreshing it.
	BoostHold     = 550 * time.Millisecond
	FrameInterval = time.Second / 60

	maxFrameDelta = 0.1
)

// Frontend draws frames onto a tcell screen and feeds it key events to a game.
type Frontend struct {
	screen  tcell.Screen
	game    *game.Game
	builder *scene.Builder

	boosting   bool
	boostUntil time.Time
	last       time.Time
}

func New(screen tcell.Screen, g *game.Game) *Frontend {
	return &Frontend{
		screen:  screen,
		game:    g,
		builder: scene.NewBuilder(),
	}
}

// Run takes over the terminal until the player quits or ctx is cancelled.
func Run(ctx context.Context, g *game.Game) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer s.Fini()
	s.HideCursor()
	s.Clear()

	if w, h := s.Size(); w < Width || h < Height {
		log.WithFields(log.Fields{
			"width":  w,
			"height": h,
		}).Warnf("terminal smaller than %dx%d, board will be clipped", Width, Height)
	}
	return New(s, g).Loop(ctx)
}

// Loop starts the game and pumps input and frames until quit.
func (f *Frontend) Loop(ctx context.Context) error {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	f.game.Start(ctx)
	defer f.game.Stop()

	tick := time.NewTicker(FrameInterval)
	defer tick.Stop()
	f.last = time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !f.HandleEvent(ev, time.Now()) {
				log.Info("quit")
				return nil
			}
		case now := <-tick.C:
			f.Render(now)
		}
	}
}

// HandleEvent applies one terminal event. It returns false on quit.
func (f *Frontend) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		k := translate(e)
		switch k {
		case game.KeyNone:
		case game.KeyBoost:
			if !f.boosting {
				f.game.HandleKey(game.KeyBoost, game.Press)
				f.boosting = true
			}
			f.boostUntil = now.Add(BoostHold)
		default:
			return f.game.HandleKey(k, game.Press)
		}
	}
	return true
}

// Render releases an expired boost, then draws and shows one frame.
func (f *Frontend) Render(now time.Time) {
	if f.boosting && !now.Before(f.boostUntil) {
		f.game.HandleKey(game.KeyBoost, game.Release)
		f.boosting = false
	}

	dt := 0.0
	if !f.last.IsZero() {
		dt = now.Sub(f.last).Seconds()
	}
	if dt > maxFrameDelta {
		dt = maxFrameDelta
	}
	f.last = now

	frame := f.builder.Build(f.game.Frame(), float32(dt))
	draw(f.screen, frame)
	f.screen.Show()
}
