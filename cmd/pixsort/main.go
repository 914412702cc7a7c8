// Command pixsort applies a brightness-keyed pixel-sorting effect to
// an image. Input comes from a file or stdin, output goes to a file
// or stdout (PNG), and the effect is controlled by a sort mode and a
// pass direction.
//
// Usage:
//
//	pixsort -m white -d h -i in.png -o out.png
//	cat in.jpg | pixsort -m dark -d v > out.png
package main

import (
	"fmt"
	"image"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/pixkit/pixsort/imgio"
	"github.com/pixkit/pixsort/luma"
	"github.com/pixkit/pixsort/sorter"
)

func main() {
	// Logs must never mix into an image written to stdout.
	log.SetOutput(os.Stderr)

	app := &cli.App{
		Name:    "pixsort",
		Usage:   "Sort the pixels of an image by brightness, line by line.",
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "input image `file` (png, jpg, gif, tif, bmp, webp); stdin if omitted",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output image `file`; PNG to stdout if omitted",
			},
			&cli.StringFlag{
				Name:     "direction",
				Aliases:  []string{"d"},
				Required: true,
				Usage:    "pass `order`: h (columns first) or v (rows first)",
			},
			&cli.StringFlag{
				Name:     "mode",
				Aliases:  []string{"m"},
				Required: true,
				Usage:    "sort `mode`: white, black, bright or dark",
			},
			&cli.Float64Flag{
				Name:  "scale",
				Value: 100,
				Usage: "pre-scale the image to `percent` of its size before sorting",
			},
			&cli.IntFlag{
				Name:  "workers",
				Value: 1,
				Usage: "max `lines` sorted concurrently within one pass",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// run validates the flags, then loads, sorts, and writes the image.
func run(c *cli.Context) error {
	mode, err := luma.ParseMode(c.String("mode"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	dir, err := sorter.ParseDirection(c.String("direction"))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	scale := c.Float64("scale")
	if scale <= 0 || scale > 400 {
		return cli.Exit("scale must be in (0, 400] percent", 1)
	}

	img, err := loadInput(c.String("input"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("loading input: %v", err), 1)
	}
	log.WithFields(log.Fields{
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
		"mode":   mode.String(),
		"dir":    dir.String(),
	}).Info("image loaded")

	if scale != 100 {
		img = imgio.Scale(img, scale)
		log.WithFields(log.Fields{
			"width":  img.Bounds().Dx(),
			"height": img.Bounds().Dy(),
		}).Info("image scaled")
	}

	opts := sorter.DefaultOptions()
	opts.Parallelism = c.Int("workers")
	if _, err = sorter.Sort(img, mode, dir, opts); err != nil {
		return cli.Exit(fmt.Sprintf("sorting: %v", err), 1)
	}

	if err = writeOutput(img, c.String("output")); err != nil {
		return cli.Exit(fmt.Sprintf("writing output: %v", err), 1)
	}
	log.Info("done")

	return nil
}

// loadInput reads the image from path, or from stdin when path is empty.
func loadInput(path string) (*image.NRGBA, error) {
	if path == "" {
		return imgio.Decode(os.Stdin)
	}

	return imgio.Load(path)
}

// writeOutput saves to path, or streams PNG to stdout when path is empty.
func writeOutput(img image.Image, path string) error {
	if path == "" {
		return imgio.Encode(os.Stdout, img, "png")
	}

	return imgio.Save(img, path)
}
