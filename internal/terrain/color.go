package terrain

import "fmt"

// RGB is a 24-bit color. Cells carry a foreground and background RGB;
// the terminal writer turns them into truecolor escape codes.
type RGB struct {
	R, G, B uint8
}

// Hex parses a CSS-style "#rrggbb" color.
func Hex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("color %q: want #rrggbb", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB{r, g, b}, nil
}

// MustHex is Hex for compile-time palette tables; panics on bad input.
func MustHex(s string) RGB {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp blends c toward o by t, with t clamped to [0, 1].
func (c RGB) Lerp(o RGB, t float64) RGB {
	t = clamp01(t)
	return RGB{
		R: uint8(float64(c.R) + (float64(o.R)-float64(c.R))*t),
		G: uint8(float64(c.G) + (float64(o.G)-float64(c.G))*t),
		B: uint8(float64(c.B) + (float64(o.B)-float64(c.B))*t),
	}
}

// Scale multiplies each channel by f, clamping to the valid range.
func (c RGB) Scale(f float64) RGB {
	scale := func(v uint8) uint8 {
		s := float64(v) * f
		if s < 0 {
			return 0
		}
		if s > 255 {
			return 255
		}
		return uint8(s)
	}
	return RGB{scale(c.R), scale(c.G), scale(c.B)}
}

// Lighten adds a flat offset to each channel, clamping at white.
func (c RGB) Lighten(d int) RGB {
	add := func(v uint8) uint8 {
		s := int(v) + d
		if s < 0 {
			return 0
		}
		if s > 255 {
			return 255
		}
		return uint8(s)
	}
	return RGB{add(c.R), add(c.G), add(c.B)}
}
