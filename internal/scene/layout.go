package scene

import "gridsnake/internal/game"

// Padding is the margin around the board in pixels.
const Padding = 10

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X, Y, W, H float32
}

// Layout maps board cells to framebuffer pixels.
type Layout struct {
	Width, Height int
	Cell          float32
	OriginX       float32
	OriginY       float32
}

// WindowSize returns the framebuffer size that fits the board at cell pixels.
func WindowSize(cell int) (w, h int) {
	return game.Columns*cell + 2*Padding, game.Rows*cell + 2*Padding
}

// NewLayout fits the board into a w×h framebuffer, keeping square cells and
// centring whatever space is left over.
func NewLayout(w, h int) Layout {
	cw := float32(w-2*Padding) / game.Columns
	ch := float32(h-2*Padding) / game.Rows
	cell := cw
	if ch < cell {
		cell = ch
	}
	if cell < 1 {
		cell = 1
	}
	bw := cell * game.Columns
	bh := cell * game.Rows
	return Layout{
		Width:   w,
		Height:  h,
		Cell:    cell,
		OriginX: (float32(w) - bw) / 2,
		OriginY: (float32(h) - bh) / 2,
	}
}

// Board is the pixel rectangle covered by the grid.
func (l Layout) Board() Rect {
	return Rect{X: l.OriginX, Y: l.OriginY, W: l.Cell * game.Columns, H: l.Cell * game.Rows}
}

// CellRect is the pixel rectangle of cell p.
func (l Layout) CellRect(p game.Point) Rect {
	return Rect{
		X: l.OriginX + float32(p.X)*l.Cell,
		Y: l.OriginY + float32(p.Y)*l.Cell,
		W: l.Cell,
		H: l.Cell,
	}
}

// CellCenter is the pixel centre of cell p.
func (l Layout) CellCenter(p game.Point) (x, y float32) {
	r := l.CellRect(p)
	return r.X + r.W/2, r.Y + r.H/2
}

// HeadingRect is a one pixel wide line from the head centre to the board
// edge in the heading direction.
func (l Layout) HeadingRect(h Heading) Rect {
	cx, cy := l.CellCenter(h.Head)
	reach := (float32(h.Length) + 0.5) * l.Cell
	switch h.Dir {
	case game.Up:
		return Rect{X: cx, Y: cy - reach, W: 1, H: reach}
	case game.Down:
		return Rect{X: cx, Y: cy, W: 1, H: reach}
	case game.Left:
		return Rect{X: cx - reach, Y: cy, W: reach, H: 1}
	default:
		return Rect{X: cx, Y: cy, W: reach, H: 1}
	}
}

// Hint strip geometry in pixels, anchored to the bottom-left of the board.
const (
	HintsWidth  = 135
	HintsHeight = 30
	TextInset   = 4
)

// LabelPos is the top-left pixel of a label w pixels wide.
func (l Layout) LabelPos(a Anchor, w float32) (x, y float32) {
	b := l.Board()
	y = b.Y + TextInset
	switch a {
	case TopCenter:
		x = b.X + (b.W-w)/2
	case TopRight:
		x = b.X + b.W - w - TextInset
	default:
		x = b.X + TextInset
	}
	return x, y
}

// HintPos is the top-left pixel of hint i (0..3) for a hint w×h pixels,
// spreading the four hints across the strip with equal gaps.
func (l Layout) HintPos(i int, w, h float32) (x, y float32) {
	b := l.Board()
	gap := (HintsWidth - 4*w) / 3
	if gap < 0 {
		gap = 0
	}
	x = b.X + TextInset + float32(i)*(w+gap)
	y = b.Y + b.H - HintsHeight + (HintsHeight-1-h)/2
	return x, y
}

// BoostRect is the one pixel bar under the hints shown while boosting.
func (l Layout) BoostRect() Rect {
	b := l.Board()
	return Rect{X: b.X + TextInset, Y: b.Y + b.H - 1, W: HintsWidth, H: 1}
}
