// Package audio plays the synthesized sound effects through oto and binds
// them to game events.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/oto/v2"
	log "github.com/sirupsen/logrus"

	"gridsnake/internal/audio/synth"
	"gridsnake/internal/game"
)

const defaultVolume = 0.58

// Player owns the oto context and a cache of rendered effects.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64

	mu    sync.Mutex
	cache map[synth.Sound][]byte
}

// Init opens the audio device. The device becomes usable asynchronously;
// sounds requested before then are dropped.
func Init() (*Player, error) {
	ctx, ready, err := oto.NewContext(synth.SampleRate, synth.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("oto context: %w", err)
	}
	return &Player{
		ctx:    ctx,
		ready:  ready,
		volume: defaultVolume,
		cache:  make(map[synth.Sound][]byte),
	}, nil
}

// Play starts s in the background. It never blocks on playback.
func (p *Player) Play(s synth.Sound) {
	if p == nil {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	samples := p.samples(s)
	if len(samples) == 0 {
		return
	}
	go func() {
		player := p.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.WithError(err).WithField("sound", s.String()).Debug("close player")
		}
	}()
}

// Subscribe binds game events to sound effects.
func (p *Player) Subscribe(bus *game.EventBus) {
	bind := map[game.EventType]synth.Sound{
		game.EventAte:       synth.Eat,
		game.EventHighScore: synth.HighScore,
		game.EventGameOver:  synth.GameOver,
		game.EventReset:     synth.Reset,
	}
	for et, s := range bind {
		s := s
		bus.Subscribe(et, func(game.Event) { p.Play(s) })
	}
}

func (p *Player) samples(s synth.Sound) []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	buf, ok := p.cache[s]
	if !ok {
		buf = synth.Generate(s)
		p.cache[s] = buf
	}
	return buf
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(b []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(b, r.data[r.pos:])
	r.pos += n
	return n, nil
}
