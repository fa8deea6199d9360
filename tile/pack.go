package tile

import (
	"errors"
	"fmt"

	"github.com/bodgit/dscgfx/bgr15"
	"github.com/bodgit/dscgfx/palette"
)

// ErrColorMapMiss is returned when a pixel's color has no palette index.
var ErrColorMapMiss = errors.New("color has no palette index")

var errBadDepth = errors.New("tile: unsupported depth")

// Packer packs a grid into 16-bit words.
type Packer struct {
	// Depth is the number of bits per pixel; 4, 8 or 16
	Depth int
	// Tiled selects tile order rather than raster order. It has no effect
	// at 16 bits per pixel
	Tiled bool
	// Metatile dimensions in tiles. These describe how the consumer groups
	// tiles and don't affect the packing order
	MetatileWidth  int
	MetatileHeight int
}

// Words returns the number of words needed to pack a width by height image.
func (p Packer) Words(width, height int) int {
	return width * height * p.Depth / wordBits
}

// Pack packs every pixel of g. At 4 and 8 bits per pixel each color is
// looked up in m; at 16 bits per pixel m is ignored and each pixel is
// written as a 15-bit color in raster order.
func (p Packer) Pack(g *Grid, m *palette.IndexMap) ([]uint16, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	switch p.Depth {
	case 16:
		return p.direct(g), nil
	case 4, 8:
	default:
		return nil, fmt.Errorf("%w: %d", errBadDepth, p.Depth)
	}

	buf := make([]uint16, p.Words(g.Width, g.Height))
	perWord := wordBits / p.Depth
	limit := 1 << p.Depth

	k := 0
	if err := Walk(g.Width, g.Height, p.Tiled, func(x, y int) error {
		c := g.At(x, y)
		i, ok := m.Index(c)
		if !ok {
			return fmt.Errorf("%w: %s at (%d, %d)", ErrColorMapMiss, c, x, y)
		}
		if i < 0 || i >= limit {
			return fmt.Errorf("%w: index %d at (%d, %d) does not fit in %d bits", palette.ErrPaletteOverflow, i, x, y, p.Depth)
		}
		buf[k/perWord] |= uint16(i) << uint(p.Depth*(k%perWord))
		k++
		return nil
	}); err != nil {
		return nil, err
	}

	return buf, nil
}

func (p Packer) direct(g *Grid) []uint16 {
	buf := make([]uint16, 0, len(g.Pix))
	for _, c := range g.Pix {
		buf = append(buf, uint16(bgr15.FromRGB(c.R, c.G, c.B)))
	}
	return buf
}
