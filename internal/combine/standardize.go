package combine

import (
	"image"

	"golang.org/x/image/draw"
)

// Logger receives the standardizer's diagnostics.
type Logger interface {
	Info(format string, v ...interface{})
}

// Standardize brings a and b to a common size: whichever image does not
// already have the smaller of the two sizes is resampled to exactly that
// size with f. An image that already matches is returned as is.
func Standardize(a, b image.Image, f Filter, log Logger) (image.Image, image.Image, Dimensions) {
	target := Smallest(DimensionsOf(a), DimensionsOf(b))
	log.Info("width: %d height: %d", target.Width, target.Height)

	if DimensionsOf(a) != target {
		a = Resize(a, target, f)
	}
	if DimensionsOf(b) != target {
		b = Resize(b, target, f)
	}
	return a, b, target
}

// Resize resamples src to exactly d.
func Resize(src image.Image, d Dimensions, f Filter) image.Image {
	if f == nil {
		f = draw.BiLinear
	}
	dst := image.NewNRGBA(image.Rect(0, 0, int(d.Width), int(d.Height)))
	f.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
