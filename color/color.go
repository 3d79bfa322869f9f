package color

var White = RGB(1, 1, 1)
var Black = RGB(0, 0, 0)
var Transparent = RGBA(0, 0, 0, 0)

// Color is a non alpha pre-multiplied color value in Color space.
// A value of 1 indicates full color
type Color struct {
	R, G, B, A float32
}

func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func RGB(r, g, b float32) Color {
	return RGBA(r, g, b, 1.0)
}

// RGBA8 builds a color from 8 bit channel values. Each channel
// is divided by 255.
func RGBA8(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

func RGB8(r, g, b uint8) Color {
	return RGBA8(r, g, b, 255)
}

func Gray(g float32) Color {
	return RGB(g, g, g)
}

func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// RGBA implements image/color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	const MAX = 0xffff

	r = uint32(clamp(c.R*c.A*MAX, 0, MAX))
	g = uint32(clamp(c.G*c.A*MAX, 0, MAX))
	b = uint32(clamp(c.B*c.A*MAX, 0, MAX))
	a = uint32(clamp(c.A*MAX, 0, MAX))

	return
}

func (c Color) PremultipliedValues() (float32, float32, float32, float32) {
	r := c.R * c.A
	g := c.G * c.A
	b := c.B * c.A
	return r, g, b, c.A
}

func (c Color) IsIdentity() bool {
	return c.R == 1 && c.G == 1 && c.B == 1 && c.A == 1
}

// Lerp linearly interpolates between c and other. A factor of 0 returns c,
// a factor of 1 returns other.
func (c Color) Lerp(other Color, f float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*f,
		G: c.G + (other.G-c.G)*f,
		B: c.B + (other.B-c.B)*f,
		A: c.A + (other.A-c.A)*f,
	}
}

func clamp[T float32 | float64](value, min, max T) T {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
