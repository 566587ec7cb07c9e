package render

import (
	"gridsnake/internal/render/atlas"
	"gridsnake/internal/scene"
)

// cellFill is the share of a cell covered by its sprite.
const cellFill = 0.9

// DrawRect queues a filled rectangle in screen pixel space.
func (r *Renderer) DrawRect(rc scene.Rect, c scene.Color) {
	x0, y0 := rc.X, rc.Y
	x1, y1 := rc.X+rc.W, rc.Y+rc.H
	r.flat.buf = append(r.flat.buf,
		x0, y0, c.R, c.G, c.B, c.A,
		x1, y0, c.R, c.G, c.B, c.A,
		x0, y1, c.R, c.G, c.B, c.A,
		x1, y0, c.R, c.G, c.B, c.A,
		x1, y1, c.R, c.G, c.B, c.A,
		x0, y1, c.R, c.G, c.B, c.A,
	)
}

// DrawCell queues one board cell as a point sprite; food is drawn round.
func (r *Renderer) DrawCell(c scene.Cell, l scene.Layout) {
	x, y := l.CellCenter(c.At)
	round := float32(0)
	if c.Kind == scene.KindFood {
		round = 1
	}
	r.cells.buf = append(r.cells.buf,
		x, y, l.Cell*cellFill, c.Color.R, c.Color.G, c.Color.B, c.Color.A, round)
}

// DrawFrame renders a complete frame. The caller brackets it with
// BeginFrame and a buffer swap.
func (r *Renderer) DrawFrame(f scene.Frame, l scene.Layout) {
	r.DrawRect(l.Board(), f.Background)
	if f.Heading.Length > 0 {
		r.DrawRect(l.HeadingRect(f.Heading), f.Heading.Color)
	}
	for _, c := range f.Cells {
		r.DrawCell(c, l)
	}

	for _, lb := range f.Labels {
		x, y := l.LabelPos(lb.Anchor, atlas.TextWidth(lb.Text, lb.Scale))
		r.DrawString(lb.Text, x, y, lb.Scale, lb.Color)
	}

	hw := atlas.TextWidth("H<", 1)
	for i, h := range f.Hints {
		x, y := l.HintPos(i, hw, atlas.CellH)
		c := scene.Palette.Text.Alpha(h.Alpha)
		r.DrawString(string([]rune{h.Letter, scene.ASCIIArrow(h.Dir)}), x, y, 1, c)
	}
	if f.Boost {
		r.DrawRect(l.BoostRect(), scene.Palette.Text.Alpha(scene.AlphaBright))
	}

	r.Flush()
}
