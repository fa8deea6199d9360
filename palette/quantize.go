package palette

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// Quantizer groups colors into at most n buckets.
type Quantizer interface {
	Quantize(colors []Color, n int) []*Bucket
}

// MedianCut is the default Quantizer. Starting from a single bucket it
// repeatedly splits the bucket with the widest channel range at the median
// of that channel until there are n buckets or nothing is left to split.
type MedianCut struct{}

// Quantize implements the Quantizer interface.
func (MedianCut) Quantize(colors []Color, n int) []*Bucket {
	if len(colors) == 0 || n < 1 {
		return nil
	}

	buckets := make([]*Bucket, 1, n)
	buckets[0] = NewBucket(append(colors[:0:0], colors...))

	for len(buckets) < n {
		// Pick the bucket with the widest range, first one wins a tie. A
		// range of zero means it only holds one distinct color
		i, best := -1, 0
		for j, b := range buckets {
			if r, _ := b.span(); r > best {
				i, best = j, r
			}
		}
		if i < 0 {
			break
		}

		lower, upper := buckets[i].split()
		buckets = append(buckets, nil)
		copy(buckets[i+2:], buckets[i+1:])
		buckets[i], buckets[i+1] = lower, upper
	}

	return NonEmpty(buckets)
}

// Exact places every color in its own bucket regardless of n.
type Exact struct{}

// Quantize implements the Quantizer interface.
func (Exact) Quantize(colors []Color, n int) []*Bucket {
	buckets := make([]*Bucket, 0, len(colors))
	for _, c := range colors {
		buckets = append(buckets, NewBucket([]Color{c}))
	}
	return buckets
}

// Histogram adapts a draw.Quantizer, by default the go-quantize median cut
// which cuts at the histogram median of the widest channel. Each color joins
// the bucket of its nearest palette entry and the bucket averages are
// recomputed from the members.
type Histogram struct {
	Quantizer draw.Quantizer
}

// Quantize implements the Quantizer interface.
func (h Histogram) Quantize(colors []Color, n int) []*Bucket {
	if len(colors) == 0 || n < 1 {
		return nil
	}

	q := h.Quantizer
	if q == nil {
		q = quantize.MedianCutQuantizer{Aggregation: quantize.Mean}
	}

	m := image.NewRGBA(image.Rect(0, 0, len(colors), 1))
	for x, c := range colors {
		m.SetRGBA(x, 0, color.RGBA{c.R, c.G, c.B, 0xff})
	}

	p := q.Quantize(make(color.Palette, 0, n), m)
	if len(p) == 0 {
		return nil
	}

	groups := make([][]Color, len(p))
	for _, c := range colors {
		i := p.Index(c)
		groups[i] = append(groups[i], c)
	}

	buckets := make([]*Bucket, 0, len(groups))
	for _, g := range groups {
		buckets = append(buckets, NewBucket(g))
	}
	return NonEmpty(buckets)
}
