package codec

import (
	"bytes"
	"image"
	"os"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decoded holds a decoded image and the container format it came from.
type Decoded struct {
	Image  image.Image
	Format Format
}

// Decode decodes an image held in memory, detecting its format.
func Decode(data []byte) (*Decoded, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image data")
	}
	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decoding image")
	}
	return &Decoded{Image: img, Format: Format(name)}, nil
}

// DecodeFile reads and decodes the image at path.
func DecodeFile(path string) (*Decoded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	d, err := Decode(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return d, nil
}
