package imgio

import (
	"errors"
	"image"
	"io"
	"math"

	"github.com/kovidgoyal/imaging"
	"github.com/nfnt/resize"

	// Register WEBP decoding; imaging covers PNG/JPEG/GIF/TIFF/BMP itself.
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat indicates an output format or file extension
// outside the supported encoder set (png, jpg, gif, tif, bmp).
var ErrUnsupportedFormat = errors.New("imgio: unsupported image format")

// Load reads and decodes the image at path into an NRGBA grid.
func Load(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}

	return imaging.Clone(img), nil
}

// Decode reads and decodes one image from r into an NRGBA grid.
// Used for stdin input, where no file name hints at the format.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, err
	}

	return imaging.Clone(img), nil
}

// Save encodes img to a file at path, picking the format from the
// extension. Returns ErrUnsupportedFormat for unknown extensions.
func Save(img image.Image, path string) error {
	err := imaging.Save(img, path)
	if errors.Is(err, imaging.ErrUnsupportedFormat) {
		return ErrUnsupportedFormat
	}

	return err
}

// Encode writes img to w in the named format ("png", "jpg", ...).
// The CLI uses this with "png" when writing to stdout.
func Encode(w io.Writer, img image.Image, format string) error {
	f, err := imaging.FormatFromExtension(format)
	if err != nil {
		return ErrUnsupportedFormat
	}

	return imaging.Encode(w, img, f)
}

// Scale resizes img to percent of its original width and height using
// Lanczos resampling, preserving aspect ratio. Percent values of 100
// or less than or equal to 0 return an unscaled NRGBA copy.
func Scale(img image.Image, percent float64) *image.NRGBA {
	if percent <= 0 || percent == 100 {
		return imaging.Clone(img)
	}

	w := uint(math.Round(float64(img.Bounds().Dx()) * percent / 100))
	scaled := resize.Resize(w, 0, img, resize.Lanczos3)

	return imaging.Clone(scaled)
}
