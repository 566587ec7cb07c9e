package game

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Game wires a session to its clock and event bus. Frontends feed it key
// events and call Frame once per render pass.
type Game struct {
	Session *GameSession
	Events  *EventBus

	clock *Clock

	mu      sync.Mutex
	ctx     context.Context
	started bool
}

func NewGame(seed uint64) *Game {
	g := &Game{
		Session: NewGameSession(NewRand(seed)),
		Events:  NewEventBus(),
		ctx:     context.Background(),
	}
	g.clock = NewClock(g.Session.TickInterval, g.step)
	return g
}

// Start begins ticking. Subscribe to Events before calling it.
func (g *Game) Start(ctx context.Context) {
	g.mu.Lock()
	g.ctx = ctx
	g.started = true
	g.mu.Unlock()
	g.clock.Start(ctx)
}

func (g *Game) Stop() {
	g.mu.Lock()
	g.started = false
	g.mu.Unlock()
	g.clock.Stop()
}

// HandleKey applies one input event. It returns false once quit is pressed.
func (g *Game) HandleKey(key Key, action KeyAction) bool {
	return g.Session.HandleKey(key, action) != CommandQuit
}

// Frame is the render pass: it honours a pending reset, restarting the
// clock, and returns the state to draw.
func (g *Game) Frame() Snapshot {
	if g.Session.TakeResetRequest() {
		g.restart()
	}
	return g.Session.Snapshot()
}

// ActiveTickers reports how many tick loops are live.
func (g *Game) ActiveTickers() int {
	return g.clock.Active()
}

func (g *Game) restart() {
	g.mu.Lock()
	ctx, started := g.ctx, g.started
	g.mu.Unlock()

	g.clock.Stop()
	snap := g.Session.Snapshot()
	g.Session.Reset()
	log.WithFields(log.Fields{
		"score":      snap.Score,
		"high_score": snap.HighScore,
	}).Info("game reset")
	g.Events.Emit(Event{Type: EventReset, At: StartBody.Head()})
	if started && ctx.Err() == nil {
		g.clock.Start(ctx)
	}
}

// step runs on the clock goroutine.
func (g *Game) step() bool {
	res := g.Session.Tick()
	if res.Ate {
		log.WithField("score", res.Score).Debug("food eaten")
		g.Events.Emit(Event{Type: EventAte, At: res.Head, Score: res.Score})
	}
	if res.NewHighScore {
		g.Events.Emit(Event{Type: EventHighScore, At: res.Head, Score: res.Score})
	}
	if res.GameOver {
		log.WithFields(log.Fields{
			"score": res.Score,
			"head":  res.Head.String(),
		}).Info("game over")
		g.Events.Emit(Event{Type: EventGameOver, At: res.Head, Score: res.Score})
		return false
	}
	return true
}
