package main

import (
	"errors"
	"fmt"
	"image/png"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/bodgit/dscgfx"
	"github.com/bodgit/dscgfx/gfx"
	"github.com/bodgit/dscgfx/image"
	"github.com/bodgit/dscgfx/palette"
	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var errBadMetatile = errors.New("invalid metatile, expected WxH")

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func parseMetatile(s string) (int, int, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", errBadMetatile, s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errBadMetatile, s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errBadMetatile, s)
	}
	return w, h, nil
}

func options(c *cli.Context) (gfx.Options, error) {
	o := gfx.DefaultOptions()

	o.ColorDepth = c.Int("depth")
	o.Tiled = c.Bool("tiles")

	var err error
	if o.MetatileWidth, o.MetatileHeight, err = parseMetatile(c.String("metatile")); err != nil {
		return o, err
	}

	if o.Transparent, err = palette.ParseColor(c.String("transparent")); err != nil {
		return o, err
	}

	if o.Method, err = gfx.ParseMethod(c.String("method")); err != nil {
		return o, err
	}

	return o, o.Validate()
}

func logger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}
	return logger
}

func builder(c *cli.Context) (*dscgfx.Builder, func(), error) {
	if c.String("cache") == "" {
		return dscgfx.New(nil, logger(c)), func() {}, nil
	}

	cache, err := dscgfx.NewCache(c.String("cache"))
	if err != nil {
		return nil, nil, err
	}

	return dscgfx.New(cache, logger(c)), func() { cache.Close() }, nil
}

var conversionFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "depth",
		Aliases: []string{"d"},
		Value:   8,
		Usage:   "bits per pixel; 4, 8 or 16",
	},
	&cli.BoolFlag{
		Name:    "tiles",
		Aliases: []string{"t"},
		Usage:   "pack pixels in 8x8 tiles rather than as a bitmap",
	},
	&cli.StringFlag{
		Name:  "metatile",
		Value: "1x1",
		Usage: "metatile size in tiles, as WxH",
	},
	&cli.StringFlag{
		Name:  "transparent",
		Value: "#000000",
		Usage: "color reserved as palette index 0",
	},
	&cli.StringFlag{
		Name:  "method",
		Value: string(gfx.MethodMedian),
		Usage: "color reduction method; median, histogram or exact",
	},
}

func main() {
	app := cli.NewApp()

	app.Name = "dscgfx"
	app.Usage = "DSC graphics asset converter"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "cache",
			EnvVars: []string{"DSCGFX_CACHE"},
			Usage:   "path to conversion cache database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert an image",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: append([]cli.Flag{
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output file",
				},
				&cli.BoolFlag{
					Name:  "raw",
					Usage: "write raw graphics and palette words to FILE.bin and FILE.pal",
				},
			}, conversionFlags...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				o, err := options(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				b, done, err := builder(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer done()

				if c.Bool("raw") {
					base := c.String("output")
					if base == "" {
						base = strings.TrimSuffix(dscgfx.OutputName(c.Args().First()), ".gfx")
					}
					if err := b.BuildRaw(c.Args().First(), base+".bin", base+".pal", o); err != nil {
						return cli.NewExitError(err, 1)
					}
					return nil
				}

				if err := b.BuildFile(c.Args().First(), c.String("output"), o); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "build",
			Usage:       "Convert every image in a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Flags: append([]cli.Flag{
				&cli.IntFlag{
					Name:    "jobs",
					Aliases: []string{"j"},
					Value:   1,
					Usage:   "number of images to convert at once",
				},
			}, conversionFlags...),
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				o, err := options(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				b, done, err := builder(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer done()

				if err := b.Build(c.Args().First(), o, c.Int("jobs")); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "preview",
			Usage:       "Render a converted image as a PNG",
			Description: "",
			ArgsUsage:   "FILE OUTPUT",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := preview(c.Args().Get(0), c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "cache",
			Usage: "Manage the conversion cache",
			Subcommands: []*cli.Command{
				{
					Name:  "purge",
					Usage: "Remove every cached conversion",
					Action: func(c *cli.Context) error {
						if c.String("cache") == "" {
							return cli.NewExitError("no cache configured", 1)
						}

						cache, err := dscgfx.NewCache(c.String("cache"))
						if err != nil {
							return cli.NewExitError(err, 1)
						}
						defer cache.Close()

						if err := cache.Purge(); err != nil {
							return cli.NewExitError(err, 1)
						}

						return nil
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func preview(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	m, err := image.Decode(f)
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if err := png.Encode(out, m); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
