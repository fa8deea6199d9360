/*
Package asset implements the container written for each converted image.

The file starts with a 24 byte little-endian header:

	offset  size  field
	0       4     magic "DGFX"
	4       1     version (1)
	5       1     bits per pixel; 4, 8 or 16
	6       1     flags, bit 0 set for tiled graphics
	7       1     reserved
	8       2     width in pixels
	10      2     height in pixels
	12      2     metatile width in tiles
	14      2     metatile height in tiles
	16      2     number of palette entries
	18      2     reserved
	20      4     number of graphics words

This is followed by the palette as 15-bit color words and then the packed
graphics words, all little-endian. 16 bpp graphics have no palette.
*/
package asset

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/bodgit/dscgfx/bgr15"
	"github.com/bodgit/dscgfx/tile"
)

const (
	// Extension is the file extension used when writing to disk
	Extension = ".gfx"

	version   = 1
	flagTiled = 1 << 0
	maxSize   = 1<<16 - 1
)

var magic = [4]byte{'D', 'G', 'F', 'X'}

var (
	errBadMagic   = errors.New("asset: invalid magic")
	errBadVersion = errors.New("asset: unsupported version")
	errBadDepth   = errors.New("asset: invalid depth")
	errBadSize    = errors.New("asset: size mismatch")
	errTooLarge   = errors.New("asset: too large")
	errTooMuch    = errors.New("asset: too much data")
	errNotEnough  = errors.New("asset: not enough data")
)

type header struct {
	Magic          [4]byte
	Version        uint8
	Depth          uint8
	Flags          uint8
	_              uint8
	Width          uint16
	Height         uint16
	MetatileWidth  uint16
	MetatileHeight uint16
	PaletteLength  uint16
	_              uint16
	GfxLength      uint32
}

// Graphic is a converted image. It implements the encoding.BinaryMarshaler
// and encoding.BinaryUnmarshaler interfaces.
type Graphic struct {
	Width          int
	Height         int
	Depth          int
	Tiled          bool
	MetatileWidth  int
	MetatileHeight int

	// Gfx holds the packed pixels
	Gfx []uint16
	// Palette is empty for 16 bpp graphics
	Palette []bgr15.Color
}

func (g *Graphic) validate() error {
	if g.Width <= 0 || g.Height <= 0 || g.Width%tile.Width != 0 || g.Height%tile.Height != 0 {
		return fmt.Errorf("%w: %dx%d", tile.ErrInvalidDimensions, g.Width, g.Height)
	}
	switch g.Depth {
	case 4, 8:
		if len(g.Palette) > 1<<g.Depth {
			return fmt.Errorf("%w: %d palette entries at %d bpp", errBadSize, len(g.Palette), g.Depth)
		}
	case 16:
		if len(g.Palette) != 0 {
			return fmt.Errorf("%w: palette present at 16 bpp", errBadSize)
		}
	default:
		return fmt.Errorf("%w: %d", errBadDepth, g.Depth)
	}
	if len(g.Gfx) != (tile.Packer{Depth: g.Depth}).Words(g.Width, g.Height) {
		return fmt.Errorf("%w: %d words for %dx%d at %d bpp", errBadSize, len(g.Gfx), g.Width, g.Height, g.Depth)
	}
	return nil
}

// WriteGfx writes just the graphics words to w.
func (g *Graphic) WriteGfx(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, g.Gfx)
}

// WritePalette writes just the palette words to w.
func (g *Graphic) WritePalette(w io.Writer) error {
	return binary.Write(w, binary.LittleEndian, g.Palette)
}

// MarshalBinary encodes the graphic into binary form and returns the result
func (g *Graphic) MarshalBinary() ([]byte, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	for _, v := range []int{g.Width, g.Height, g.MetatileWidth, g.MetatileHeight} {
		if v < 0 || v > maxSize {
			return nil, errTooLarge
		}
	}

	h := header{
		Magic:          magic,
		Version:        version,
		Depth:          uint8(g.Depth),
		Width:          uint16(g.Width),
		Height:         uint16(g.Height),
		MetatileWidth:  uint16(g.MetatileWidth),
		MetatileHeight: uint16(g.MetatileHeight),
		PaletteLength:  uint16(len(g.Palette)),
		GfxLength:      uint32(len(g.Gfx)),
	}
	if g.Tiled {
		h.Flags |= flagTiled
	}

	b := new(bytes.Buffer)

	if err := binary.Write(b, binary.LittleEndian, &h); err != nil {
		return nil, err
	}

	if err := g.WritePalette(b); err != nil {
		return nil, err
	}

	if err := g.WriteGfx(b); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// UnmarshalBinary decodes the graphic from binary form
func (g *Graphic) UnmarshalBinary(b []byte) error {
	r := bytes.NewReader(b)

	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return errNotEnough
	}

	if h.Magic != magic {
		return errBadMagic
	}
	if h.Version != version {
		return errBadVersion
	}

	if uint64(r.Len()) < 2*(uint64(h.PaletteLength)+uint64(h.GfxLength)) {
		return errNotEnough
	}

	*g = Graphic{
		Width:          int(h.Width),
		Height:         int(h.Height),
		Depth:          int(h.Depth),
		Tiled:          h.Flags&flagTiled != 0,
		MetatileWidth:  int(h.MetatileWidth),
		MetatileHeight: int(h.MetatileHeight),
		Gfx:            make([]uint16, h.GfxLength),
		Palette:        make([]bgr15.Color, h.PaletteLength),
	}

	if err := binary.Read(r, binary.LittleEndian, g.Palette); err != nil {
		return errNotEnough
	}

	if err := binary.Read(r, binary.LittleEndian, g.Gfx); err != nil {
		return errNotEnough
	}

	if r.Len() > 0 {
		return errTooMuch
	}

	return g.validate()
}
