package dscgfx

import (
	"crypto/sha1"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/dscgfx/asset"
	"github.com/bodgit/dscgfx/gfx"
	"github.com/bodgit/dscgfx/tile"
)

// ConvertFile decodes the image in file and converts it according to o,
// using the cache if there is one.
func (b *Builder) ConvertFile(file string, o gfx.Options) (*asset.Graphic, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h := sha1.New()
	m, _, err := image.Decode(io.TeeReader(f, h))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	// Hash anything the decoder didn't need to read
	if _, err := io.Copy(h, f); err != nil {
		return nil, err
	}
	sha := fmt.Sprintf("%X", h.Sum(nil))

	if b.cache != nil {
		g, err := b.cache.Lookup(sha, o.Key())
		if err != nil {
			return nil, err
		}
		if g != nil {
			b.logger.Printf("Using cached conversion of \"%s\"\n", file)
			return g, nil
		}
	}

	if o.Logger == nil {
		o.Logger = b.logger
	}

	b.logger.Printf("Converting \"%s\"\n", file)
	g, err := gfx.Convert(tile.FromImage(m), o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	if b.cache != nil {
		if err := b.cache.Store(sha, o.Key(), g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// OutputName returns the container filename used for the image in file.
func OutputName(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + asset.Extension
}

// BuildFile converts the image in src and writes the container to dst. If
// dst is empty the output is written alongside src.
func (b *Builder) BuildFile(src, dst string, o gfx.Options) error {
	g, err := b.ConvertFile(src, o)
	if err != nil {
		return err
	}

	if dst == "" {
		dst = OutputName(src)
	}

	data, err := g.MarshalBinary()
	if err != nil {
		return err
	}

	return ioutil.WriteFile(dst, data, 0644)
}

// BuildRaw converts the image in src and writes the packed graphics and
// palette words as two separate files, gfx and pal.
func (b *Builder) BuildRaw(src, gfxFile, palFile string, o gfx.Options) error {
	g, err := b.ConvertFile(src, o)
	if err != nil {
		return err
	}

	for _, out := range []struct {
		file  string
		write func(io.Writer) error
	}{
		{gfxFile, g.WriteGfx},
		{palFile, g.WritePalette},
	} {
		if out.file == "" {
			continue
		}
		if err := writeFile(out.file, out.write); err != nil {
			return err
		}
	}

	return nil
}

func writeFile(file string, write func(io.Writer) error) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
