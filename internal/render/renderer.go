// Package render draws scene frames with OpenGL 4.1 core. All methods must
// be called on the thread that owns the GL context.
package render

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"gridsnake/internal/render/atlas"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// attrib describes one float vertex attribute in an interleaved buffer.
type attrib struct {
	loc  uint32
	size int32
}

// batch is a streaming vertex buffer drawn in a single call.
type batch struct {
	vao, vbo uint32
	floats   int // per vertex
	buf      []float32
}

func newBatch(attribs ...attrib) batch {
	b := batch{}
	for _, a := range attribs {
		b.floats += int(a.size)
	}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	stride := int32(b.floats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, 512*int(stride), nil, gl.STREAM_DRAW)
	off := 0
	for _, a := range attribs {
		gl.EnableVertexAttribArray(a.loc)
		gl.VertexAttribPointer(a.loc, a.size, gl.FLOAT, false, stride, glOffset(off*4))
		off += int(a.size)
	}
	gl.BindVertexArray(0)
	return b
}

// flush uploads and draws the queued vertices, then empties the queue.
func (b *batch) flush(mode uint32) {
	if len(b.buf) == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.buf)*4, gl.Ptr(b.buf), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(len(b.buf)/b.floats))
	b.buf = b.buf[:0]
}

func (b *batch) destroy() {
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
}

type Renderer struct {
	// Flat pixel-space triangles: x, y, r, g, b, a.
	flatProg uint32
	flatURes int32
	flat     batch

	// Cell point sprites: x, y, size, r, g, b, a, round.
	cellProg uint32
	cellURes int32
	cells    batch

	// Text quads: x, y, u, v, r, g, b, a.
	fontTex      uint32
	textProg     uint32
	textURes     int32
	textUFontTex int32
	text         batch

	fbW, fbH int
}

func NewRenderer() (*Renderer, error) {
	flatProg, err := linkProgram(flatVertSrc, flatFragSrc)
	if err != nil {
		return nil, fmt.Errorf("flat program: %w", err)
	}
	cellProg, err := linkProgram(cellVertSrc, cellFragSrc)
	if err != nil {
		gl.DeleteProgram(flatProg)
		return nil, fmt.Errorf("cell program: %w", err)
	}
	textProg, err := linkProgram(textVertSrc, textFragSrc)
	if err != nil {
		gl.DeleteProgram(flatProg)
		gl.DeleteProgram(cellProg)
		return nil, fmt.Errorf("text program: %w", err)
	}

	r := &Renderer{
		flatProg: flatProg,
		cellProg: cellProg,
		textProg: textProg,
	}

	r.flat = newBatch(attrib{0, 2}, attrib{1, 4})
	r.cells = newBatch(attrib{0, 2}, attrib{1, 1}, attrib{2, 4}, attrib{3, 1})
	r.text = newBatch(attrib{0, 2}, attrib{1, 2}, attrib{2, 4})

	gl.UseProgram(flatProg)
	r.flatURes = gl.GetUniformLocation(flatProg, gl.Str("uResolution\x00"))
	gl.UseProgram(cellProg)
	r.cellURes = gl.GetUniformLocation(cellProg, gl.Str("uResolution\x00"))
	gl.UseProgram(textProg)
	r.textURes = gl.GetUniformLocation(textProg, gl.Str("uResolution\x00"))
	r.textUFontTex = gl.GetUniformLocation(textProg, gl.Str("uFontTex\x00"))
	gl.Uniform1i(r.textUFontTex, 2) // texture unit 2

	r.uploadFont()
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	return r, nil
}

// uploadFont rasterizes the glyph sheet into a GL texture.
func (r *Renderer) uploadFont() {
	img := atlas.Build()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		atlas.Width, atlas.Height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	r.fontTex = tex
}

func (r *Renderer) Destroy() {
	r.flat.destroy()
	r.cells.destroy()
	r.text.destroy()
	for _, id := range []uint32{r.flatProg, r.cellProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame sets the viewport and clears to black.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	r.fbW, r.fbH = fbW, fbH
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Flush draws every queued primitive: rectangles first, then cells, then text.
func (r *Renderer) Flush() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	res := [2]float32{float32(r.fbW), float32(r.fbH)}

	gl.UseProgram(r.flatProg)
	gl.Uniform2f(r.flatURes, res[0], res[1])
	r.flat.flush(gl.TRIANGLES)

	gl.UseProgram(r.cellProg)
	gl.Uniform2f(r.cellURes, res[0], res[1])
	r.cells.flush(gl.POINTS)

	r.FlushText()

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}
