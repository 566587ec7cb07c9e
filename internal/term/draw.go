package term

import (
	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/game"
	"gridsnake/internal/scene"
)

// Screen layout: labels on row 0, the board below it with two columns per
// cell, then the key hints and the boost bar.
const (
	Width    = game.Columns * 2
	Height   = game.Rows + 3
	boardTop = 1
	hintsRow = boardTop + game.Rows
	boostRow = hintsRow + 1
)

var black = scene.Color{A: 1}

func rgb(c scene.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R*255+0.5), int32(c.G*255+0.5), int32(c.B*255+0.5))
}

// over composites c onto bg by c's alpha.
func over(c, bg scene.Color) scene.Color {
	mix := func(a, b float32) float32 { return b + (a-b)*c.A }
	return scene.Color{R: mix(c.R, bg.R), G: mix(c.G, bg.G), B: mix(c.B, bg.B), A: 1}
}

func cellXY(p game.Point) (x, y int) {
	return p.X * 2, boardTop + p.Y
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, st)
		x++
	}
}

func draw(s tcell.Screen, f scene.Frame) {
	s.Clear()

	boardStyle := tcell.StyleDefault.Background(rgb(f.Background))
	for y := 0; y < game.Rows; y++ {
		for x := 0; x < Width; x++ {
			s.SetContent(x, boardTop+y, ' ', nil, boardStyle)
		}
	}

	drawHeading(s, f.Heading, boardStyle.Foreground(rgb(f.Heading.Color)))

	for _, c := range f.Cells {
		x, y := cellXY(c.At)
		st := tcell.StyleDefault.Background(rgb(c.Color))
		if c.Kind == scene.KindFood {
			s.SetContent(x, y, '(', nil, boardStyle.Foreground(rgb(c.Color)))
			s.SetContent(x+1, y, ')', nil, boardStyle.Foreground(rgb(c.Color)))
			continue
		}
		s.SetContent(x, y, ' ', nil, st)
		s.SetContent(x+1, y, ' ', nil, st)
	}

	for _, lb := range f.Labels {
		n := len([]rune(lb.Text))
		x := 0
		switch lb.Anchor {
		case scene.TopCenter:
			x = (Width - n) / 2
		case scene.TopRight:
			x = Width - n
		}
		st := tcell.StyleDefault.Foreground(rgb(over(lb.Color, black)))
		if lb.Scale > 1 {
			st = st.Bold(true)
		}
		drawText(s, x, 0, lb.Text, st)
	}

	x := 0
	for _, h := range f.Hints {
		st := tcell.StyleDefault.Foreground(rgb(over(scene.Palette.Text.Alpha(h.Alpha), black)))
		drawText(s, x, hintsRow, string([]rune{h.Letter, scene.Arrow(h.Dir)}), st)
		x += 3
	}
	if f.Boost {
		st := tcell.StyleDefault.Foreground(rgb(over(scene.Palette.Text.Alpha(scene.AlphaBright), black)))
		for i := 0; i < x-1; i++ {
			s.SetContent(i, boostRow, '━', nil, st)
		}
	}
}

// drawHeading traces the guide line from the head towards the board edge.
func drawHeading(s tcell.Screen, h scene.Heading, st tcell.Style) {
	ch := '─'
	if h.Dir == game.Up || h.Dir == game.Down {
		ch = '│'
	}
	p := h.Head
	for i := 0; i < h.Length; i++ {
		p = p.Add(h.Dir)
		x, y := cellXY(p)
		s.SetContent(x, y, ch, nil, st)
		if ch == '─' {
			s.SetContent(x+1, y, ch, nil, st)
		}
	}
}
