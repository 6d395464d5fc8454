package pipeline

import (
	"github.com/iangfernandes96/combiner/internal/codec"
	"github.com/iangfernandes96/combiner/internal/combine"
	"github.com/iangfernandes96/combiner/internal/ir"
	"github.com/iangfernandes96/combiner/internal/logger"
	"github.com/pkg/errors"
)

// ErrDifferentImageFormats is returned when the two inputs were decoded from
// different container formats.
var ErrDifferentImageFormats = errors.New("images have different formats")

// Options controls the combine pipeline.
type Options struct {
	Name     string         // output name carried on the OutputImage
	MaxBytes int            // ceiling on interleaved data; <= 0 means no limit
	Pad      ir.PadMode     // how RGB data is brought up to RGBA size
	Filter   combine.Filter // resampling filter; nil means bilinear
	Quality  int            // JPEG quality (1-100)
	Log      combine.Logger // diagnostics; nil discards them
}

// Result holds the output of a pipeline run.
type Result struct {
	Data   []byte // encoded image
	Format codec.Format
	Width  int
	Height int
}

// Combine checks that a and b share a container format, brings them to a
// common size, interleaves their RGB bytes and returns the padded RGBA
// output. a and b must not be used by the caller afterwards.
func Combine(a, b *codec.Decoded, opts Options) (*ir.OutputImage, error) {
	if a.Format != b.Format {
		return nil, errors.Wrapf(ErrDifferentImageFormats, "%s vs %s", a.Format, b.Format)
	}
	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}

	// 1. Standardize dimensions
	imgA, imgB, dims := combine.Standardize(a.Image, b.Image, opts.Filter, log)
	a.Image, b.Image = nil, nil

	// 2. Interleave raw RGB bytes
	combined, err := combine.Interleave(combine.ToRGB(imgA), combine.ToRGB(imgB))
	if err != nil {
		return nil, errors.Wrap(err, "interleave")
	}

	// 3. Fill the output buffer and pad to RGBA
	out := ir.New(dims.Width, dims.Height, opts.Name, opts.MaxBytes)
	if err := out.Assign(combined); err != nil {
		return nil, errors.Wrap(err, "output buffer")
	}
	if err := out.Pad(opts.Pad); err != nil {
		return nil, errors.Wrapf(err, "pad (%s)", opts.Pad)
	}
	return out, nil
}

// Run executes the full pipeline: decode → combine → encode. The output is
// encoded in the inputs' shared format.
func Run(dataA, dataB []byte, opts Options) (*Result, error) {
	a, err := codec.Decode(dataA)
	if err != nil {
		return nil, errors.Wrap(err, "decode image1")
	}
	b, err := codec.Decode(dataB)
	if err != nil {
		return nil, errors.Wrap(err, "decode image2")
	}
	format := a.Format

	out, err := Combine(a, b, opts)
	if err != nil {
		return nil, err
	}

	encoded, err := codec.Encode(out.Pixels, int(out.Width), int(out.Height), format, codec.EncoderOptions{
		Quality: opts.Quality,
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode")
	}

	return &Result{
		Data:   encoded,
		Format: format,
		Width:  int(out.Width),
		Height: int(out.Height),
	}, nil
}
