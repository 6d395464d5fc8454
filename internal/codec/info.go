package codec

import (
	"bytes"
	"image"
	"image/color"
	"strconv"

	"github.com/pkg/errors"
)

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	Width      int
	Height     int
	Format     Format
	ColorModel string
}

// GetInfo reads image metadata without decoding the pixel data.
func GetInfo(data []byte) (*ImageInfo, error) {
	if len(data) == 0 {
		return nil, errors.New("empty image data")
	}
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "reading image header")
	}
	return &ImageInfo{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Format:     Format(name),
		ColorModel: colorModelName(cfg.ColorModel),
	}, nil
}

func colorModelName(m color.Model) string {
	if p, ok := m.(color.Palette); ok {
		return "Paletted(" + strconv.Itoa(len(p)) + ")"
	}
	switch m {
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.AlphaModel:
		return "Alpha"
	case color.CMYKModel:
		return "CMYK"
	case color.YCbCrModel:
		return "YCbCr"
	}
	return "unknown"
}
