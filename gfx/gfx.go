/*
Package gfx converts images into DSC graphics.

At 16 bits per pixel every pixel is written directly as a 15-bit color. At 4
and 8 bits per pixel the distinct colors of the image, less the transparent
color, are quantized into at most 2^depth buckets. If that leaves no room for
the transparent color at index 0 the two closest buckets are merged. The
buckets then become the palette and every pixel is packed as an index into
it.
*/
package gfx

import (
	"log"
	"strings"

	"github.com/bodgit/dscgfx/asset"
	"github.com/bodgit/dscgfx/bgr15"
	"github.com/bodgit/dscgfx/palette"
	"github.com/bodgit/dscgfx/tile"
)

var (
	// ErrInvalidDimensions is returned when the image is not a whole
	// number of tiles in either direction
	ErrInvalidDimensions = tile.ErrInvalidDimensions
	// ErrPaletteOverflow is returned when the colors don't fit the palette
	ErrPaletteOverflow = palette.ErrPaletteOverflow
	// ErrColorMapMiss is returned when a pixel has no palette index
	ErrColorMapMiss = tile.ErrColorMapMiss
)

// Convert converts g according to o.
func Convert(g *tile.Grid, o Options) (*asset.Graphic, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}

	logger := o.logger()

	p := tile.Packer{
		Depth:          o.ColorDepth,
		Tiled:          o.Tiled,
		MetatileWidth:  o.MetatileWidth,
		MetatileHeight: o.MetatileHeight,
	}

	out := &asset.Graphic{
		Width:          g.Width,
		Height:         g.Height,
		Depth:          o.ColorDepth,
		Tiled:          o.Tiled,
		MetatileWidth:  o.MetatileWidth,
		MetatileHeight: o.MetatileHeight,
	}

	if o.ColorDepth == 16 {
		logger.Printf("%dx%d direct color bitmap\n", g.Width, g.Height)
		gfx, err := p.Pack(g, nil)
		if err != nil {
			return nil, err
		}
		out.Gfx = gfx
		return out, nil
	}

	n := 1 << o.ColorDepth

	colors := palette.Extract(g.Pix).Without(o.Transparent)
	buckets := palette.NonEmpty(o.Method.quantizer().Quantize(colors, n))
	logBuckets(logger, buckets)

	if o.Method != MethodExact && len(buckets) == n {
		i, j, d := palette.ClosestPair(buckets)
		logger.Printf("Merging buckets %d and %d, distance %d\n", i, j, d)
		buckets = palette.MergePair(buckets, i, j)
	}

	pal, m, err := palette.Assemble(o.Transparent, buckets, n)
	if err != nil {
		return nil, err
	}
	logger.Printf("Palette size = %d / %d\n", len(pal), n)

	gfx, err := p.Pack(g, m)
	if err != nil {
		return nil, err
	}

	out.Gfx = gfx
	out.Palette = pal

	return out, nil
}

func logBuckets(logger *log.Logger, buckets []*palette.Bucket) {
	for i, b := range buckets {
		s := make([]string, 0, b.Len())
		for _, c := range b.Items {
			s = append(s, c.String())
		}
		avg := b.Average()
		logger.Printf("Bucket %d [%s] average %s = %04X\n", i, strings.Join(s, ", "), avg, uint16(bgr15.FromRGB(avg.R, avg.G, avg.B)))
	}
}
