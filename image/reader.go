package image

import (
	"errors"
	"image"
	"image/color"
	"io"
	"io/ioutil"

	"github.com/bodgit/dscgfx/asset"
	"github.com/bodgit/dscgfx/bgr15"
	"github.com/bodgit/dscgfx/tile"
)

var errBadPalette = errors.New("image: invalid palette index")

type decoder struct {
	g asset.Graphic

	image image.Image
}

func (d *decoder) colorModel() color.Model {
	if d.g.Depth == 16 {
		return color.NRGBAModel
	}
	p := make(color.Palette, len(d.g.Palette))
	for i, c := range d.g.Palette {
		p[i] = c
	}
	return p
}

func (d *decoder) decodePaletted() error {
	p := d.colorModel().(color.Palette)
	m := image.NewPaletted(image.Rect(0, 0, d.g.Width, d.g.Height), p)

	perWord := 16 / d.g.Depth
	mask := uint16(1)<<uint(d.g.Depth) - 1

	k := 0
	if err := tile.Walk(d.g.Width, d.g.Height, d.g.Tiled, func(x, y int) error {
		i := d.g.Gfx[k/perWord] >> uint(d.g.Depth*(k%perWord)) & mask
		if int(i) >= len(p) {
			return errBadPalette
		}
		m.SetColorIndex(x, y, uint8(i))
		k++
		return nil
	}); err != nil {
		return err
	}

	d.image = m
	return nil
}

func (d *decoder) decodeDirect() {
	m := image.NewNRGBA(image.Rect(0, 0, d.g.Width, d.g.Height))
	for y := 0; y < d.g.Height; y++ {
		for x := 0; x < d.g.Width; x++ {
			m.Set(x, y, bgr15.Color(d.g.Gfx[y*d.g.Width+x]))
		}
	}
	d.image = m
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}

	if err := d.g.UnmarshalBinary(b); err != nil {
		return err
	}

	if configOnly {
		return nil
	}

	if d.g.Depth == 16 {
		d.decodeDirect()
		return nil
	}

	return d.decodePaletted()
}

// Decode reads a DSC graphics container from r and returns it as an
// image.Image.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a DSC graphics
// container without decoding the entire image.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: d.colorModel(),
		Width:      d.g.Width,
		Height:     d.g.Height,
	}, nil
}
