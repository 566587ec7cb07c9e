package scene

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Color is a normalized colour with alpha, ready for a renderer.
type Color struct {
	R, G, B, A float32
}

// Alpha converts c to a normalized colour with the given opacity.
func (c RGB) Alpha(a float32) Color {
	return Color{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255, A: a}
}

func lerpU8(a, b uint8, t float32) uint8 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return uint8(float32(a) + (float32(b)-float32(a))*t + 0.5)
}

func lerpRGB(a, b RGB, t float32) RGB {
	return RGB{R: lerpU8(a.R, b.R, t), G: lerpU8(a.G, b.G, t), B: lerpU8(a.B, b.B, t)}
}

var Palette = struct {
	Board     RGB
	BoardOver RGB
	Body      RGB
	Head      RGB
	Food      RGB
	Heading   RGB
	Text      RGB
}{
	Board:     RGB{R: 51, G: 51, B: 51},
	BoardOver: RGB{R: 77, G: 51, B: 51},
	Body:      RGB{R: 0, G: 255, B: 0},
	Head:      RGB{R: 140, G: 255, B: 140},
	Food:      RGB{R: 255, G: 0, B: 0},
	Heading:   RGB{R: 68, G: 68, B: 68},
	Text:      RGB{R: 255, G: 255, B: 255},
}
