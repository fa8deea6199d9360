package bgr15

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRGB(t *testing.T) {
	tables := []struct {
		r, g, b uint8
		want    Color
	}{
		{0x00, 0x00, 0x00, 0x0000},
		{0xff, 0x00, 0x00, 0x001f},
		{0x00, 0xff, 0x00, 0x03e0},
		{0x00, 0x00, 0xff, 0x7c00},
		{0xff, 0xff, 0xff, 0x7fff},
		{0x08, 0x10, 0x20, 0 | 1<<5 | 3<<10},
	}

	for _, table := range tables {
		assert.Equal(t, table.want, FromRGB(table.r, table.g, table.b))
	}
}

func TestRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		c := uint8(v)
		want := uint8(uint16(uint16(c)*31/255) * 255 / 31)

		r, g, b := FromRGB(c, c, c).RGB()
		assert.Equal(t, want, r)
		assert.Equal(t, want, g)
		assert.Equal(t, want, b)
	}
}

func TestModel(t *testing.T) {
	c := Model.Convert(color.NRGBA{0xff, 0x80, 0x00, 0x00})
	assert.Equal(t, FromRGB(0xff, 0x80, 0x00), c)

	// Already converted colors pass through untouched
	assert.Equal(t, Color(0x1234), Model.Convert(Color(0x1234)))

	_, _, _, a := Color(0).RGBA()
	assert.Equal(t, uint32(0xffff), a)
}
