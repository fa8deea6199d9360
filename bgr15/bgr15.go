/*
Package bgr15 implements the 15-bit direct color word used by the DSC
hardware for both palette entries and 16 bpp bitmaps.

Each word holds three 5-bit channels packed low to high as red, green and
blue, leaving the top bit clear:

	0BBBBBGGGGGRRRRR

Each 8-bit channel c is reduced to 5 bits as floor(c*31/255).
*/
package bgr15

import "image/color"

const (
	mask5     = 0x1f
	greenBits = 5
	blueBits  = 10
)

// Color is a packed 15-bit color word. It implements the color.Color
// interface, expanding each channel back to 8 bits.
type Color uint16

// Model converts any color.Color into a Color, ignoring alpha.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGB(n.R, n.G, n.B)
})

// Reduce maps an 8-bit channel value to 5 bits.
func Reduce(c uint8) uint8 {
	return uint8(uint16(c) * mask5 / 0xff)
}

// Expand maps a 5-bit channel value back to 8 bits.
func Expand(c uint8) uint8 {
	return uint8(uint16(c&mask5) * 0xff / mask5)
}

// FromRGB packs three 8-bit channels into a Color.
func FromRGB(r, g, b uint8) Color {
	return Color(uint16(Reduce(r)) | uint16(Reduce(g))<<greenBits | uint16(Reduce(b))<<blueBits)
}

// components returns the 5-bit red, green and blue channels.
func (c Color) components() (r, g, b uint8) {
	return uint8(c) & mask5, uint8(c>>greenBits) & mask5, uint8(c>>blueBits) & mask5
}

// RGB returns the channels expanded back to 8 bits.
func (c Color) RGB() (r, g, b uint8) {
	r, g, b = c.components()
	return Expand(r), Expand(g), Expand(b)
}

// RGBA implements the color.Color interface. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	a = 0xffff
	return
}
