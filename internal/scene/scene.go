// Package scene turns a game snapshot into a frame description shared by the
// OpenGL and terminal frontends. It owns the small amount of presentation
// state the core does not care about: fades and pulses.
package scene

import (
	"strconv"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"gridsnake/internal/game"
)

// Animation timings in seconds.
const (
	FadeSeconds  = 0.35
	PulseSeconds = 0.25
	PulseScale   = 1.35
)

// Text alphas.
const (
	AlphaBright = 0.8
	AlphaDim    = 0.4
)

const ResetPrompt = "Press 'S' to reset"

type CellKind int

const (
	KindBody CellKind = iota
	KindHead
	KindFood
)

type Cell struct {
	At    game.Point
	Kind  CellKind
	Color Color
}

// Heading is the guide line from the head to the board edge. Length counts
// the cells between the head and the edge.
type Heading struct {
	Head   game.Point
	Dir    game.Direction
	Length int
	Color  Color
}

// KeyHint is one of the steering legends at the bottom of the board.
type KeyHint struct {
	Letter rune
	Dir    game.Direction
	Alpha  float32
}

type Anchor int

const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
)

type Label struct {
	Text   string
	Anchor Anchor
	Color  Color
	Scale  float32
}

type Frame struct {
	Background Color
	Cells      []Cell
	Heading    Heading
	Hints      [4]KeyHint
	Boost      bool
	Labels     []Label
	GameOver   bool
}

var hintOrder = [4]struct {
	letter rune
	dir    game.Direction
}{
	{'H', game.Left},
	{'J', game.Down},
	{'K', game.Up},
	{'L', game.Right},
}

// Arrow returns the unicode arrow for d.
func Arrow(d game.Direction) rune {
	switch d {
	case game.Up:
		return '↑'
	case game.Down:
		return '↓'
	case game.Left:
		return '←'
	default:
		return '→'
	}
}

// ASCIIArrow returns a 7-bit stand-in for Arrow, for bitmap fonts.
func ASCIIArrow(d game.Direction) rune {
	switch d {
	case game.Up:
		return '^'
	case game.Down:
		return 'v'
	case game.Left:
		return '<'
	default:
		return '>'
	}
}

// Builder carries animation state between frames. Use one per frontend.
type Builder struct {
	overMix float32
	wasOver bool
	fade    *gween.Tween

	lastScore int
	pulse     *gween.Tween
	scale     float32
}

func NewBuilder() *Builder {
	return &Builder{scale: 1}
}

// Build describes snapshot s, advancing animations by dt seconds.
func (b *Builder) Build(s game.Snapshot, dt float32) Frame {
	b.animate(s, dt)

	f := Frame{
		Background: lerpRGB(Palette.Board, Palette.BoardOver, b.overMix).Alpha(1),
		Boost:      s.Boost,
		GameOver:   s.GameOver,
		Cells:      make([]Cell, 0, len(s.Snake)+1),
	}

	for i, p := range s.Snake {
		if !game.InBounds(p) {
			continue
		}
		c := Cell{At: p, Kind: KindBody, Color: Palette.Body.Alpha(1)}
		if i == len(s.Snake)-1 {
			c.Kind = KindHead
			c.Color = Palette.Head.Alpha(1)
		}
		f.Cells = append(f.Cells, c)
	}
	f.Cells = append(f.Cells, Cell{At: s.Food, Kind: KindFood, Color: Palette.Food.Alpha(1)})

	if len(s.Snake) > 0 {
		head := s.Snake[len(s.Snake)-1]
		f.Heading = Heading{
			Head:   head,
			Dir:    s.Direction,
			Length: edgeDistance(head, s.Direction),
			Color:  Palette.Heading.Alpha(1),
		}
	}

	for i, h := range hintOrder {
		a := float32(AlphaDim)
		if h.dir == s.Direction {
			a = AlphaBright
		}
		f.Hints[i] = KeyHint{Letter: h.letter, Dir: h.dir, Alpha: a}
	}

	text := Palette.Text.Alpha(AlphaBright)
	f.Labels = append(f.Labels,
		Label{Text: strconv.Itoa(s.Score), Anchor: TopLeft, Color: text, Scale: b.scale},
		Label{Text: strconv.Itoa(s.HighScore), Anchor: TopRight, Color: text, Scale: 1},
	)
	if s.GameOver {
		f.Labels = append(f.Labels, Label{Text: ResetPrompt, Anchor: TopCenter, Color: text, Scale: 1})
	}
	return f
}

func (b *Builder) animate(s game.Snapshot, dt float32) {
	if s.GameOver != b.wasOver {
		target := float32(0)
		if s.GameOver {
			target = 1
		}
		b.fade = gween.New(b.overMix, target, FadeSeconds, ease.OutQuad)
		b.wasOver = s.GameOver
	}
	if b.fade != nil {
		v, done := b.fade.Update(dt)
		b.overMix = v
		if done {
			b.fade = nil
		}
	}

	if s.Score > b.lastScore {
		b.pulse = gween.New(PulseScale, 1, PulseSeconds, ease.OutCubic)
	}
	b.lastScore = s.Score
	if b.pulse != nil {
		v, done := b.pulse.Update(dt)
		b.scale = v
		if done {
			b.pulse = nil
			b.scale = 1
		}
	}
}

// edgeDistance counts the cells between p and the board edge along d.
func edgeDistance(p game.Point, d game.Direction) int {
	var n int
	switch d {
	case game.Up:
		n = p.Y
	case game.Down:
		n = game.Rows - 1 - p.Y
	case game.Left:
		n = p.X
	default:
		n = game.Columns - 1 - p.X
	}
	if n < 0 || !game.InBounds(p) {
		return 0
	}
	return n
}
