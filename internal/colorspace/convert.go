package colorspace

import "math"

// FromHSL converts an HSL color to RGB.
//
// Hue is taken in degrees and scaled to [0, 1] by dividing by 360; it is not
// wrapped beforehand, so callers should keep it within [0, 360]. Saturation
// and lightness are used as given. A saturation of exactly zero yields a gray.
// Channels that fall outside [0, 255] for out-of-range input are clamped.
func FromHSL(c HSL) RGB {
	h, s, l := c.H/360.0, c.S, c.L

	var r, g, b float64
	if s == 0 {
		// Exact comparison: tiny non-zero saturations take the chromatic path.
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1.0 + s)
		} else {
			q = l + s - l*s
		}
		p := 2.0*l - q

		r = hue2rgb(p, q, h+1.0/3.0)
		g = hue2rgb(p, q, h)
		b = hue2rgb(p, q, h-1.0/3.0)
	}

	return RGB{
		R: channel(r),
		G: channel(g),
		B: channel(b),
	}
}

// hue2rgb evaluates one channel at hue offset t. t is wrapped back into
// [0, 1] once, which covers every offset FromHSL produces for hues in
// [0, 360].
func hue2rgb(p, q, t float64) float64 {
	if t < 0.0 {
		t += 1.0
	} else if t > 1.0 {
		t -= 1.0
	}

	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6.0*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6.0
	default:
		return p
	}
}

// channel scales a [0, 1] channel to [0, 255], rounding half away from zero.
func channel(v float64) uint8 {
	return clampU8(math.Round(v * 255.0))
}

// clampU8 clamps a float value to the uint8 range [0, 255]. NaN maps to 0.
func clampU8(x float64) uint8 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
