package colorspace

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color with 8-bit red, green and blue channels.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// NewRGB returns an RGB value holding r, g and b verbatim.
func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// SRGB scales the channels from [0, 255] down to [0.0, 1.0].
func (c RGB) SRGB() [3]float64 {
	return [3]float64{
		float64(c.R) / 255.0,
		float64(c.G) / 255.0,
		float64(c.B) / 255.0,
	}
}

// RGBA implements color.Color. The color is always fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	a = 0xffff
	return
}

// Hex returns the color in "#rrggbb" form.
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) colorful() colorful.Color {
	n := c.SRGB()
	return colorful.Color{R: n[0], G: n[1], B: n[2]}
}

// String returns the color as "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
