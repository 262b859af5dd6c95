// Package colorspace converts HSL colors to 8-bit RGB.
//
// The conversion follows the widely used hue2rgb formulation and rounds each
// channel half away from zero, so results match the common reference tables
// bit for bit.
package colorspace

import "fmt"

// HSL is a color in the Hue/Saturation/Lightness model.
// Values are stored as given; nothing is validated.
type HSL struct {
	H float64 // Hue in degrees [0, 360]
	S float64 // Saturation [0, 1]
	L float64 // Lightness [0, 1]
}

// NewHSL returns an HSL value holding h, s and l verbatim.
func NewHSL(h, s, l float64) HSL {
	return HSL{H: h, S: s, L: l}
}

// ToRGB converts the color to RGB. See FromHSL.
func (c HSL) ToRGB() RGB {
	return FromHSL(c)
}

// String returns the color as "hsl(h, s, l)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g, %g)", c.H, c.S, c.L)
}
