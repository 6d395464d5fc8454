package codec

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DefaultQuality is the JPEG quality used when EncoderOptions.Quality is 0.
const DefaultQuality = 90

// EncoderOptions controls encoding.
type EncoderOptions struct {
	Quality int // JPEG quality (1-100), default 90
}

// Encode encodes RGBA8 pixel data (4 bytes per pixel, row-major,
// non-premultiplied) in the given format.
func Encode(pixels []byte, width, height int, format Format, opts EncoderOptions) ([]byte, error) {
	expectedSize := width * height * 4
	if len(pixels) != expectedSize {
		return nil, errors.Errorf("expected %d RGBA bytes for %dx%d, got %d", expectedSize, width, height, len(pixels))
	}
	if opts.Quality == 0 {
		opts.Quality = DefaultQuality
	}
	if opts.Quality < 1 || opts.Quality > 100 {
		return nil, errors.Errorf("JPEG quality %d out of range (1-100)", opts.Quality)
	}

	img := &image.NRGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case PNG:
		err = png.Encode(&buf, img)
	case JPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: opts.Quality})
	case GIF:
		err = gif.Encode(&buf, img, nil)
	case BMP:
		err = bmp.Encode(&buf, img)
	case TIFF:
		err = tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "cannot encode %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s encode", format)
	}
	return buf.Bytes(), nil
}
