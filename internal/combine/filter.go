package combine

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Filter names accepted by ParseFilter.
const (
	FilterBiLinear       = "bilinear"
	FilterApproxBiLinear = "approx-bilinear"
	FilterCatmullRom     = "catmull-rom"
)

// DefaultFilter is the triangle (bilinear) kernel.
const DefaultFilter = FilterBiLinear

// Filter resamples src into dst.
type Filter = draw.Scaler

// ParseFilter maps a filter name to a resampling kernel. Nearest-neighbour is
// not accepted; every kernel here averages source pixels.
func ParseFilter(name string) (Filter, error) {
	switch strings.ToLower(name) {
	case "", FilterBiLinear, "triangle":
		return draw.BiLinear, nil
	case FilterApproxBiLinear:
		return draw.ApproxBiLinear, nil
	case FilterCatmullRom:
		return draw.CatmullRom, nil
	default:
		return nil, errors.Errorf("unknown resampling filter: %q", name)
	}
}
