package ir

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultCapacity is the default ceiling on interleaved data, in bytes.
const DefaultCapacity = 3_655_744

const (
	rgbChannels  = 3
	rgbaChannels = 4
	opaqueAlpha  = 0xff
)

var (
	ErrBufferTooSmall  = errors.New("buffer too small")
	ErrAlreadyAssigned = errors.New("output data already assigned")
	ErrNotAssigned     = errors.New("output data not assigned")
	ErrAlreadyPadded   = errors.New("output data already padded")
	ErrSizeMismatch    = errors.New("output data size mismatch")
)

// PadMode selects how RGB data is brought up to RGBA size.
type PadMode int

const (
	// PadTail appends zero bytes after the RGB data until the buffer holds
	// Width*Height*4 bytes. Pixels are not realigned.
	PadTail PadMode = iota
	// PadAlpha inserts an opaque alpha byte after every RGB triple.
	PadAlpha
)

func (m PadMode) String() string {
	switch m {
	case PadTail:
		return "tail"
	case PadAlpha:
		return "alpha"
	default:
		return "unknown"
	}
}

// ParsePadMode converts a pad mode name to a PadMode.
func ParsePadMode(s string) (PadMode, error) {
	switch strings.ToLower(s) {
	case "", "tail":
		return PadTail, nil
	case "alpha":
		return PadAlpha, nil
	default:
		return 0, errors.Errorf("unknown pad mode: %q", s)
	}
}

// OutputImage is the intermediate representation passed between the
// interleaver and the encoder. It receives interleaved RGB bytes once, is
// padded to RGBA once, and then holds Width*Height*4 bytes (row-major).
type OutputImage struct {
	Width    uint32
	Height   uint32
	Name     string // destination path
	Capacity int    // max bytes accepted by Assign; <= 0 means no limit
	Pixels   []byte

	assigned bool
	padded   bool
}

// New creates an empty OutputImage. No pixel storage is allocated until
// Assign.
func New(width, height uint32, name string, capacity int) *OutputImage {
	return &OutputImage{
		Width:    width,
		Height:   height,
		Name:     name,
		Capacity: capacity,
	}
}

// ExpectedSize is the RGBA byte length of the image.
func (o *OutputImage) ExpectedSize() int {
	return int(o.Width) * int(o.Height) * rgbaChannels
}

// Assign takes ownership of data as the image contents.
func (o *OutputImage) Assign(data []byte) error {
	if o.assigned {
		return ErrAlreadyAssigned
	}
	if o.Capacity > 0 && len(data) > o.Capacity {
		return errors.Wrapf(ErrBufferTooSmall, "%d bytes exceed capacity of %d", len(data), o.Capacity)
	}
	o.Pixels = data
	o.assigned = true
	return nil
}

// Pad brings the assigned data up to ExpectedSize using mode.
func (o *OutputImage) Pad(mode PadMode) error {
	if !o.assigned {
		return ErrNotAssigned
	}
	if o.padded {
		return ErrAlreadyPadded
	}

	switch mode {
	case PadTail:
		o.padTail()
	case PadAlpha:
		if err := o.padAlpha(); err != nil {
			return err
		}
	default:
		return errors.Errorf("unknown pad mode %d", int(mode))
	}
	o.padded = true
	return nil
}

func (o *OutputImage) padTail() {
	expected := o.ExpectedSize()
	if len(o.Pixels) >= expected {
		return
	}
	o.Pixels = append(o.Pixels, make([]byte, expected-len(o.Pixels))...)
}

func (o *OutputImage) padAlpha() error {
	n := int(o.Width) * int(o.Height)
	if len(o.Pixels) != n*rgbChannels {
		return errors.Wrapf(ErrSizeMismatch, "expected %d RGB bytes for %dx%d, got %d",
			n*rgbChannels, o.Width, o.Height, len(o.Pixels))
	}
	rgba := make([]byte, n*rgbaChannels)
	for p := 0; p < n; p++ {
		copy(rgba[p*rgbaChannels:], o.Pixels[p*rgbChannels:p*rgbChannels+rgbChannels])
		rgba[p*rgbaChannels+3] = opaqueAlpha
	}
	o.Pixels = rgba
	return nil
}
