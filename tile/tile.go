/*
Package tile packs palette indices, or 15-bit direct colors, into the 16-bit
words consumed by the DSC renderer.

Images are made up of 8 by 8 pixel tiles so both dimensions must be a
multiple of 8. Pixels are packed either in plain raster order or tile by
tile, where each tile's 64 pixels are written in raster order before moving
on to the next tile. Within a word the first pixel occupies the lowest bits.
*/
package tile

import (
	"errors"
	"fmt"
	"image"

	"github.com/bodgit/dscgfx/palette"
)

const (
	// Width is the width of a tile in pixels
	Width = 8
	// Height is the height of a tile in pixels
	Height = Width
)

const wordBits = 16

// ErrInvalidDimensions is returned when an image is not a whole number of
// tiles in either direction.
var ErrInvalidDimensions = errors.New("invalid dimensions")

// Grid is a row-major grid of pixel colors.
type Grid struct {
	Width  int
	Height int
	Pix    []palette.Color
}

// NewGrid returns an all-black grid of the given size.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]palette.Color, width*height),
	}
}

// FromImage copies m into a new grid with its top-left corner at (0, 0).
func FromImage(m image.Image) *Grid {
	b := m.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.Set(x-b.Min.X, y-b.Min.Y, palette.FromColor(m.At(x, y)))
		}
	}
	return g
}

// At returns the color at (x, y).
func (g *Grid) At(x, y int) palette.Color {
	return g.Pix[y*g.Width+x]
}

// Set sets the color at (x, y).
func (g *Grid) Set(x, y int, c palette.Color) {
	g.Pix[y*g.Width+x] = c
}

// Validate checks the grid is a whole number of tiles in size.
func (g *Grid) Validate() error {
	return validate(g.Width, g.Height, len(g.Pix))
}

func validate(width, height, n int) error {
	switch {
	case width <= 0 || height <= 0:
		return fmt.Errorf("%w: %dx%d is empty", ErrInvalidDimensions, width, height)
	case width%Width != 0 || height%Height != 0:
		return fmt.Errorf("%w: %dx%d is not a multiple of %dx%d", ErrInvalidDimensions, width, height, Width, Height)
	case n != width*height:
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrInvalidDimensions, n, width, height)
	}
	return nil
}

// Walk calls fn with the coordinates of every pixel of a width by height
// image in packing order, stopping at the first error.
func Walk(width, height int, tiled bool, fn func(x, y int) error) error {
	if !tiled {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if err := fn(x, y); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for ty := 0; ty < height/Height; ty++ {
		for tx := 0; tx < width/Width; tx++ {
			for iy := 0; iy < Height; iy++ {
				for ix := 0; ix < Width; ix++ {
					if err := fn(tx*Width+ix, ty*Height+iy); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
