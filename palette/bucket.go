package palette

import "sort"

type channel uint8

const (
	red channel = iota
	green
	blue
)

func (c channel) value(o Color) uint8 {
	switch c {
	case red:
		return o.R
	case green:
		return o.G
	default:
		return o.B
	}
}

// Bucket is a group of colors that will share one palette entry.
type Bucket struct {
	Items []Color

	average Color
}

// NewBucket returns a bucket holding items.
func NewBucket(items []Color) *Bucket {
	b := &Bucket{Items: items}
	b.average = mean(items)
	return b
}

// Average returns the componentwise mean of the bucket's colors, truncated.
func (b *Bucket) Average() Color {
	return b.average
}

// Len returns the number of colors in the bucket.
func (b *Bucket) Len() int {
	return len(b.Items)
}

// Merge returns a new bucket holding the colors of b followed by those of o.
func (b *Bucket) Merge(o *Bucket) *Bucket {
	items := make([]Color, 0, len(b.Items)+len(o.Items))
	items = append(items, b.Items...)
	items = append(items, o.Items...)
	return NewBucket(items)
}

func mean(items []Color) Color {
	if len(items) == 0 {
		return Color{}
	}
	var r, g, b uint64
	for _, c := range items {
		r += uint64(c.R)
		g += uint64(c.G)
		b += uint64(c.B)
	}
	n := uint64(len(items))
	return Color{uint8(r / n), uint8(g / n), uint8(b / n)}
}

// span returns the widest channel range of the bucket and which channel it
// belongs to. Ties go to the earlier channel in red, green, blue order.
func (b *Bucket) span() (int, channel) {
	if len(b.Items) == 0 {
		return 0, red
	}

	min := [3]uint8{0xff, 0xff, 0xff}
	var max [3]uint8
	for _, c := range b.Items {
		for ch := red; ch <= blue; ch++ {
			v := ch.value(c)
			if v < min[ch] {
				min[ch] = v
			}
			if v > max[ch] {
				max[ch] = v
			}
		}
	}

	best, axis := -1, red
	for ch := red; ch <= blue; ch++ {
		if r := int(max[ch]) - int(min[ch]); r > best {
			best, axis = r, ch
		}
	}
	return best, axis
}

// split sorts a copy of the bucket's colors along its widest channel and
// cuts it at the median position.
func (b *Bucket) split() (*Bucket, *Bucket) {
	_, axis := b.span()

	items := append(b.Items[:0:0], b.Items...)
	sort.SliceStable(items, func(i, j int) bool {
		return axis.value(items[i]) < axis.value(items[j])
	})

	mid := len(items) / 2
	return NewBucket(items[:mid:mid]), NewBucket(items[mid:])
}

// NonEmpty returns the buckets that hold at least one color, in order.
func NonEmpty(buckets []*Bucket) []*Bucket {
	out := make([]*Bucket, 0, len(buckets))
	for _, b := range buckets {
		if b != nil && b.Len() > 0 {
			out = append(out, b)
		}
	}
	return out
}
