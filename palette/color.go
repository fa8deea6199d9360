/*
Package palette reduces the distinct colors of an image down to a palette
that fits a 4 or 8 bpp indexed mode.

Colors are grouped into buckets by a Quantizer, the two closest buckets are
merged if no slot is left for the transparent color, and Assemble then
turns the buckets into 15-bit palette entries along with a lookup from every
source color to its palette index. Index 0 is always reserved for the
transparent color.
*/
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var errBadColor = errors.New("palette: invalid color")

// Color is an RGB triple. Alpha plays no part in a color's identity.
type Color struct {
	R, G, B uint8
}

// FromColor converts any color.Color, discarding alpha after
// un-premultiplying.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B}
}

// RGBA implements the color.Color interface. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{c.R, c.G, c.B, 0xff}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses a color written as "#rrggbb", "rrggbb" or "r,g,b".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)

	if parts := strings.Split(s, ","); len(parts) == 3 {
		var rgb [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return Color{}, fmt.Errorf("%w: %q", errBadColor, s)
			}
			rgb[i] = uint8(v)
		}
		return Color{rgb[0], rgb[1], rgb[2]}, nil
	}

	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w: %q", errBadColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", errBadColor, s)
	}
	return Color{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// Set is a list of distinct colors in the order they were first seen.
type Set []Color

// Extract returns the distinct colors of pix in row-major first-seen order.
func Extract(pix []Color) Set {
	seen := make(map[Color]struct{})
	s := make(Set, 0)
	for _, c := range pix {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		s = append(s, c)
	}
	return s
}

// Without returns a copy of s with c removed. s itself is left untouched.
func (s Set) Without(c Color) Set {
	d := make(Set, 0, len(s))
	for _, o := range s {
		if o != c {
			d = append(d, o)
		}
	}
	return d
}
