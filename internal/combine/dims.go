package combine

import (
	"fmt"
	"image"
)

// Dimensions is an image size in pixels.
type Dimensions struct {
	Width  uint32
	Height uint32
}

// DimensionsOf returns the size of img's bounds.
func DimensionsOf(img image.Image) Dimensions {
	b := img.Bounds()
	return Dimensions{Width: uint32(b.Dx()), Height: uint32(b.Dy())}
}

// Pixels returns Width*Height. Computed in 64 bits so any pair of uint32
// sides is exact.
func (d Dimensions) Pixels() uint64 {
	return uint64(d.Width) * uint64(d.Height)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Smallest returns whichever of a and b covers fewer pixels. Ties go to a.
func Smallest(a, b Dimensions) Dimensions {
	if b.Pixels() < a.Pixels() {
		return b
	}
	return a
}
