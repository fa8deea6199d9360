package palette

import (
	"errors"
	"fmt"

	"github.com/bodgit/dscgfx/bgr15"
)

// ErrPaletteOverflow is returned when there are more colors than the
// palette has room for.
var ErrPaletteOverflow = errors.New("palette overflow")

// IndexMap maps every source color to its palette index. It can only be
// built by Assemble.
type IndexMap struct {
	m map[Color]int
}

// Index returns the palette index for c.
func (im *IndexMap) Index(c Color) (int, bool) {
	if im == nil {
		return 0, false
	}
	i, ok := im.m[c]
	return i, ok
}

// Len returns the number of colors in the map.
func (im *IndexMap) Len() int {
	if im == nil {
		return 0
	}
	return len(im.m)
}

// Assemble builds the palette and the color lookup from buckets. Entry 0 is
// the transparent color and bucket i becomes entry i+1. capacity is the
// largest palette allowed, including the transparent entry.
func Assemble(transparent Color, buckets []*Bucket, capacity int) ([]bgr15.Color, *IndexMap, error) {
	if len(buckets)+1 > capacity {
		return nil, nil, fmt.Errorf("%w: %d colors plus transparent exceeds %d entries", ErrPaletteOverflow, len(buckets), capacity)
	}

	p := make([]bgr15.Color, 1, len(buckets)+1)
	p[0] = bgr15.FromRGB(transparent.R, transparent.G, transparent.B)

	im := &IndexMap{m: make(map[Color]int)}
	for i, b := range buckets {
		avg := b.Average()
		p = append(p, bgr15.FromRGB(avg.R, avg.G, avg.B))
		for _, c := range b.Items {
			if _, ok := im.m[c]; !ok {
				im.m[c] = i + 1
			}
		}
	}
	im.m[transparent] = 0

	return p, im, nil
}
