package atlas

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coverage(img *image.NRGBA, ch rune) int {
	col, row := cell(ch)
	n := 0
	for y := row * CellH; y < (row+1)*CellH; y++ {
		for x := col * CellW; x < (col+1)*CellW; x++ {
			if img.NRGBAAt(x, y).A > 0 {
				n++
			}
		}
	}
	return n
}

func TestBuildSheet(t *testing.T) {
	img := Build()
	require.Equal(t, image.Rect(0, 0, Width, Height), img.Bounds())

	assert.Zero(t, coverage(img, ' '), "space must be blank")
	for _, ch := range "0123456789SPress'<>^v" {
		assert.Positive(t, coverage(img, ch), "glyph %q is empty", ch)
	}
}

func TestUV(t *testing.T) {
	u0, v0, u1, v1, ok := UV(' ')
	require.True(t, ok)
	assert.Equal(t, float32(0), u0)
	assert.Equal(t, float32(0), v0)
	assert.InDelta(t, 1.0/Cols, u1, 1e-6)
	assert.InDelta(t, 1.0/Rows, v1, 1e-6)

	_, v0, _, _, ok = UV('~')
	require.True(t, ok)
	assert.InDelta(t, 2.0/3.0, v0, 1e-6)

	_, _, _, _, ok = UV('\n')
	assert.False(t, ok)
	_, _, _, _, ok = UV('→')
	assert.False(t, ok)
}

func TestTextWidth(t *testing.T) {
	assert.Equal(t, float32(3*CellW), TextWidth("123", 1))
	assert.Equal(t, float32(3*CellW*2), TextWidth("123", 2))
}
