package image

import (
	"image"
	"io"

	"github.com/bodgit/dscgfx/gfx"
	"github.com/bodgit/dscgfx/tile"
)

// Encode writes the Image m to w as a DSC graphics container. If o is nil
// gfx.DefaultOptions are used.
func Encode(w io.Writer, m image.Image, o *gfx.Options) error {
	opts := gfx.DefaultOptions()
	if o != nil {
		opts = *o
	}

	g, err := gfx.Convert(tile.FromImage(m), opts)
	if err != nil {
		return err
	}

	b, err := g.MarshalBinary()
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return err
}
