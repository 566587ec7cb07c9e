// Package atlas rasterizes printable ASCII into a single glyph sheet for the
// OpenGL text pipeline.
package atlas

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Sheet layout: 32 glyph columns, ASCII 32..127 in three rows.
const (
	CellW  = 7
	CellH  = 13
	Cols   = 32
	Rows   = 3
	First  = 32
	Last   = 126
	Width  = CellW * Cols // 224
	Height = CellH * Rows // 39
)

var face = basicfont.Face7x13

// Build draws every printable glyph in white onto a transparent sheet.
func Build() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, Width, Height))
	d := font.Drawer{Dst: img, Src: image.White, Face: face}
	for ch := rune(First); ch <= Last; ch++ {
		col, row := cell(ch)
		d.Dot = fixed.P(col*CellW, row*CellH+face.Ascent)
		d.DrawString(string(ch))
	}
	return img
}

func cell(ch rune) (col, row int) {
	i := int(ch) - First
	return i % Cols, i / Cols
}

// UV returns the texture coordinates of ch, or ok=false when ch has no glyph.
func UV(ch rune) (u0, v0, u1, v1 float32, ok bool) {
	if ch < First || ch > Last {
		return 0, 0, 0, 0, false
	}
	col, row := cell(ch)
	u0 = float32(col*CellW) / Width
	v0 = float32(row*CellH) / Height
	u1 = float32((col+1)*CellW) / Width
	v1 = float32((row+1)*CellH) / Height
	return u0, v0, u1, v1, true
}

// TextWidth is the pixel width of a single line at scale.
func TextWidth(text string, scale float32) float32 {
	n := 0
	for range text {
		n++
	}
	return float32(n*CellW) * scale
}
