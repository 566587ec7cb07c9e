package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"gridsnake/internal/render/atlas"
	"gridsnake/internal/scene"
)

// DrawChar queues a single character as a textured quad in screen pixel space.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, c scene.Color) {
	u0, v0, u1, v1, ok := atlas.UV(ch)
	if !ok {
		return
	}
	w := float32(atlas.CellW) * scale
	h := float32(atlas.CellH) * scale

	// Two triangles: TL, TR, BL then TR, BR, BL.
	r.text.buf = append(r.text.buf,
		sx, sy, u0, v0, c.R, c.G, c.B, c.A,
		sx+w, sy, u1, v0, c.R, c.G, c.B, c.A,
		sx, sy+h, u0, v1, c.R, c.G, c.B, c.A,
		sx+w, sy, u1, v0, c.R, c.G, c.B, c.A,
		sx+w, sy+h, u1, v1, c.R, c.G, c.B, c.A,
		sx, sy+h, u0, v1, c.R, c.G, c.B, c.A,
	)
}

// DrawString queues a single line of text with its top-left corner at (sx, sy).
func (r *Renderer) DrawString(text string, sx, sy, scale float32, c scene.Color) {
	advance := float32(atlas.CellW) * scale
	x := sx
	for _, ch := range text {
		r.DrawChar(ch, x, sy, scale, c)
		x += advance
	}
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText() {
	if len(r.text.buf) == 0 {
		return
	}
	gl.UseProgram(r.textProg)
	gl.Uniform2f(r.textURes, float32(r.fbW), float32(r.fbH))

	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)
	r.text.flush(gl.TRIANGLES)
	gl.ActiveTexture(gl.TEXTURE0)
}
