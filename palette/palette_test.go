package palette

import (
	"testing"

	"github.com/bodgit/dscgfx/bgr15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	black = Color{0x00, 0x00, 0x00}
	white = Color{0xff, 0xff, 0xff}
	ruby  = Color{0xff, 0x00, 0x00}
	lime  = Color{0x00, 0xff, 0x00}
)

func items(buckets []*Bucket) [][]Color {
	out := make([][]Color, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b.Items)
	}
	return out
}

func TestParseColor(t *testing.T) {
	tables := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#ff00ff", Color{0xff, 0x00, 0xff}, true},
		{"102030", Color{0x10, 0x20, 0x30}, true},
		{"1, 2, 3", Color{1, 2, 3}, true},
		{"#fff", Color{}, false},
		{"256,0,0", Color{}, false},
		{"zzzzzz", Color{}, false},
	}

	for _, table := range tables {
		c, err := ParseColor(table.in)
		if !table.ok {
			assert.Error(t, err, table.in)
			continue
		}
		assert.NoError(t, err, table.in)
		assert.Equal(t, table.want, c, table.in)
	}

	assert.Equal(t, "#ff00ff", Color{0xff, 0x00, 0xff}.String())
}

func TestExtract(t *testing.T) {
	pix := []Color{white, black, white, ruby, black, lime}

	s := Extract(pix)
	assert.Equal(t, Set{white, black, ruby, lime}, s)

	w := s.Without(black)
	assert.Equal(t, Set{white, ruby, lime}, w)
	assert.Equal(t, Set{white, black, ruby, lime}, s)
	assert.Contains(t, s, black)
	assert.NotContains(t, w, black)

	assert.Empty(t, Extract(nil))
}

func TestFromColor(t *testing.T) {
	c := FromColor(Color{1, 2, 3})
	assert.Equal(t, Color{1, 2, 3}, c)
}

func TestBucketAverage(t *testing.T) {
	b := NewBucket([]Color{{0, 0, 0}, {1, 3, 255}})
	assert.Equal(t, Color{0, 1, 127}, b.Average())
	assert.Equal(t, 2, b.Len())

	m := b.Merge(NewBucket([]Color{{2, 6, 0}}))
	assert.Equal(t, Color{1, 3, 85}, m.Average())
	assert.Equal(t, []Color{{0, 0, 0}, {1, 3, 255}, {2, 6, 0}}, m.Items)
	// The originals are untouched
	assert.Equal(t, 2, b.Len())

	e := NewBucket(nil)
	assert.Equal(t, Color{}, e.Average())
	assert.Empty(t, NonEmpty([]*Bucket{e, nil}))
}

func TestMedianCut(t *testing.T) {
	var q MedianCut

	colors := []Color{{200, 0, 0}, {0, 0, 0}, {255, 0, 0}, {10, 0, 0}}

	buckets := q.Quantize(colors, 2)
	require.Len(t, buckets, 2)
	assert.Equal(t, [][]Color{{{0, 0, 0}, {10, 0, 0}}, {{200, 0, 0}, {255, 0, 0}}}, items(buckets))
	assert.Equal(t, Color{5, 0, 0}, buckets[0].Average())
	assert.Equal(t, Color{227, 0, 0}, buckets[1].Average())

	// The upper bucket is wider so it is split first, then the lower one
	buckets = q.Quantize(colors, 3)
	assert.Equal(t, [][]Color{{{0, 0, 0}, {10, 0, 0}}, {{200, 0, 0}}, {{255, 0, 0}}}, items(buckets))

	buckets = q.Quantize(colors, 16)
	assert.Equal(t, [][]Color{{{0, 0, 0}}, {{10, 0, 0}}, {{200, 0, 0}}, {{255, 0, 0}}}, items(buckets))

	// Input is not modified
	assert.Equal(t, []Color{{200, 0, 0}, {0, 0, 0}, {255, 0, 0}, {10, 0, 0}}, colors)
}

func TestMedianCutWidestChannel(t *testing.T) {
	var q MedianCut

	colors := []Color{{0, 0, 0}, {5, 200, 0}, {3, 100, 0}, {1, 50, 0}}

	buckets := q.Quantize(colors, 2)
	assert.Equal(t, [][]Color{{{0, 0, 0}, {1, 50, 0}}, {{3, 100, 0}, {5, 200, 0}}}, items(buckets))

	// Equal red and blue ranges, red wins
	colors = []Color{{0, 0, 90}, {90, 0, 0}, {30, 0, 60}}
	buckets = q.Quantize(colors, 2)
	assert.Equal(t, [][]Color{{{0, 0, 90}}, {{30, 0, 60}, {90, 0, 0}}}, items(buckets))
}

func TestMedianCutTieBreak(t *testing.T) {
	var q MedianCut

	// Both halves have a red range of 10, the first is split first
	colors := []Color{{0, 0, 0}, {10, 0, 0}, {200, 0, 0}, {210, 0, 0}}

	buckets := q.Quantize(colors, 3)
	assert.Equal(t, [][]Color{{{0, 0, 0}}, {{10, 0, 0}}, {{200, 0, 0}, {210, 0, 0}}}, items(buckets))
}

func TestMedianCutEdgeCases(t *testing.T) {
	var q MedianCut

	assert.Empty(t, q.Quantize(nil, 16))
	assert.Empty(t, q.Quantize([]Color{black}, 0))

	buckets := q.Quantize([]Color{black, black, black}, 16)
	require.Len(t, buckets, 1)
	assert.Equal(t, black, buckets[0].Average())

	// Never more buckets than requested
	colors := make([]Color, 0, 100)
	for i := 0; i < 100; i++ {
		colors = append(colors, Color{uint8(i), uint8(i * 2), uint8(255 - i)})
	}
	for _, n := range []int{1, 2, 15, 16, 256} {
		buckets := q.Quantize(colors, n)
		want := n
		if want > len(colors) {
			want = len(colors)
		}
		assert.Len(t, buckets, want)

		total := 0
		for _, b := range buckets {
			total += b.Len()
		}
		assert.Equal(t, len(colors), total)
	}
}

func TestExact(t *testing.T) {
	var q Exact

	buckets := q.Quantize([]Color{white, ruby, lime}, 2)
	assert.Equal(t, [][]Color{{white}, {ruby}, {lime}}, items(buckets))
	assert.Empty(t, q.Quantize(nil, 2))
}

func TestHistogram(t *testing.T) {
	var q Histogram

	colors := []Color{
		{0x00, 0x00, 0x00},
		{0xff, 0x00, 0x00},
		{0x00, 0xff, 0x00},
		{0x00, 0x00, 0xff},
		{0xff, 0xff, 0xff},
		{0x80, 0x80, 0x80},
	}

	buckets := q.Quantize(colors, 4)
	require.NotEmpty(t, buckets)
	assert.LessOrEqual(t, len(buckets), 4)

	seen := make(map[Color]int)
	for _, b := range buckets {
		assert.NotZero(t, b.Len())
		assert.Equal(t, mean(b.Items), b.Average())
		for _, c := range b.Items {
			seen[c]++
		}
	}
	assert.Len(t, seen, len(colors))
	for _, c := range colors {
		assert.Equal(t, 1, seen[c])
	}

	assert.Equal(t, items(buckets), items(q.Quantize(colors, 4)))
	assert.Empty(t, q.Quantize(nil, 4))
}

func TestClosestPair(t *testing.T) {
	buckets := []*Bucket{
		NewBucket([]Color{{0, 0, 0}}),
		NewBucket([]Color{{100, 0, 0}}),
		NewBucket([]Color{{103, 4, 0}}),
		NewBucket([]Color{{200, 0, 0}}),
	}

	i, j, d := ClosestPair(buckets)
	assert.Equal(t, 1, i)
	assert.Equal(t, 2, j)
	assert.Equal(t, 25, d)

	i, j, _ = ClosestPair(buckets[:1])
	assert.Equal(t, -1, i)
	assert.Equal(t, -1, j)
}

func TestMergeClosestTie(t *testing.T) {
	// (0, 1) and (2, 3) are both 100 apart, the first found wins
	buckets := []*Bucket{
		NewBucket([]Color{{0, 0, 0}}),
		NewBucket([]Color{{10, 0, 0}}),
		NewBucket([]Color{{100, 0, 0}}),
		NewBucket([]Color{{110, 0, 0}}),
	}

	merged := MergeClosest(buckets)
	assert.Equal(t, [][]Color{{{0, 0, 0}, {10, 0, 0}}, {{100, 0, 0}}, {{110, 0, 0}}}, items(merged))
	assert.Equal(t, Color{5, 0, 0}, merged[0].Average())
	assert.Len(t, buckets, 4)

	// (1, 2) and (2, 3) are both 100 apart
	buckets = []*Bucket{
		NewBucket([]Color{{0, 0, 0}}),
		NewBucket([]Color{{50, 0, 0}}),
		NewBucket([]Color{{60, 0, 0}}),
		NewBucket([]Color{{70, 0, 0}}),
	}

	merged = MergeClosest(buckets)
	assert.Equal(t, [][]Color{{{0, 0, 0}}, {{50, 0, 0}, {60, 0, 0}}, {{70, 0, 0}}}, items(merged))
	assert.Equal(t, Color{55, 0, 0}, merged[1].Average())

	single := []*Bucket{NewBucket([]Color{black})}
	assert.Equal(t, single, MergeClosest(single))
}

func TestAssemble(t *testing.T) {
	transparent := Color{0xff, 0x00, 0xff}
	buckets := []*Bucket{
		NewBucket([]Color{{0x00, 0x00, 0x00}, {0x10, 0x10, 0x10}}),
		NewBucket([]Color{white}),
	}

	p, im, err := Assemble(transparent, buckets, 16)
	require.NoError(t, err)

	assert.Equal(t, []bgr15.Color{
		bgr15.FromRGB(0xff, 0x00, 0xff),
		bgr15.FromRGB(0x08, 0x08, 0x08),
		bgr15.FromRGB(0xff, 0xff, 0xff),
	}, p)

	assert.Equal(t, 4, im.Len())
	for c, want := range map[Color]int{
		transparent:        0,
		{0x00, 0x00, 0x00}: 1,
		{0x10, 0x10, 0x10}: 1,
		white:              2,
	} {
		i, ok := im.Index(c)
		assert.True(t, ok)
		assert.Equal(t, want, i)
	}

	_, ok := im.Index(lime)
	assert.False(t, ok)

	_, _, err = Assemble(transparent, buckets, 2)
	assert.ErrorIs(t, err, ErrPaletteOverflow)

	p, im, err = Assemble(transparent, nil, 16)
	require.NoError(t, err)
	assert.Len(t, p, 1)
	assert.Equal(t, 1, im.Len())

	var nilMap *IndexMap
	_, ok = nilMap.Index(black)
	assert.False(t, ok)
}
