package gfx

import (
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"strings"

	"github.com/bodgit/dscgfx/palette"
)

var (
	// ErrInvalidColorDepth is returned for any depth other than 4, 8 or 16
	ErrInvalidColorDepth = errors.New("invalid color depth")
	// ErrInvalidMetatile is returned for metatile dimensions less than one
	ErrInvalidMetatile = errors.New("invalid metatile dimensions")
	// ErrInvalidMethod is returned for an unknown quantization method
	ErrInvalidMethod = errors.New("invalid quantization method")
)

// Method selects how colors are reduced to fit the palette.
type Method string

const (
	// MethodMedian uses palette.MedianCut
	MethodMedian Method = "median"
	// MethodHistogram uses palette.Histogram
	MethodHistogram Method = "histogram"
	// MethodExact uses palette.Exact; conversion fails if the image has
	// more colors than fit in the palette
	MethodExact Method = "exact"
)

// ParseMethod returns the Method named by s.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToLower(s)); m {
	case MethodMedian, MethodHistogram, MethodExact:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMethod, s)
}

func (m Method) quantizer() palette.Quantizer {
	switch m {
	case MethodHistogram:
		return palette.Histogram{}
	case MethodExact:
		return palette.Exact{}
	default:
		return palette.MedianCut{}
	}
}

// Options control a conversion.
type Options struct {
	// ColorDepth is the number of bits per pixel; 4, 8 or 16
	ColorDepth int
	// Tiled packs pixels tile by tile rather than in raster order
	Tiled bool
	// Metatile dimensions in tiles, passed through to the output
	MetatileWidth  int
	MetatileHeight int
	// Transparent is reserved as palette index 0. It is ignored at 16 bpp
	Transparent palette.Color
	// Method selects the quantizer, the zero value is MethodMedian
	Method Method
	// Logger receives diagnostics, nil discards them
	Logger *log.Logger
}

// DefaultOptions returns an 8 bpp bitmap with a 1x1 metatile and black as
// the transparent color.
func DefaultOptions() Options {
	return Options{
		ColorDepth:     8,
		MetatileWidth:  1,
		MetatileHeight: 1,
		Method:         MethodMedian,
	}
}

// Validate checks the options are usable.
func (o Options) Validate() error {
	switch o.ColorDepth {
	case 4, 8, 16:
	default:
		return fmt.Errorf("%w: %d", ErrInvalidColorDepth, o.ColorDepth)
	}
	if o.MetatileWidth < 1 || o.MetatileHeight < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidMetatile, o.MetatileWidth, o.MetatileHeight)
	}
	if o.Method != "" {
		if _, err := ParseMethod(string(o.Method)); err != nil {
			return err
		}
	}
	return nil
}

// Key returns a string identifying every option that affects the output.
func (o Options) Key() string {
	m := o.Method
	if m == "" {
		m = MethodMedian
	}
	return fmt.Sprintf("depth=%d tiled=%t metatile=%dx%d transparent=%s method=%s", o.ColorDepth, o.Tiled, o.MetatileWidth, o.MetatileHeight, o.Transparent, m)
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(ioutil.Discard, "", 0)
	}
	return o.Logger
}
