package combine

import (
	"fmt"

	"github.com/pkg/errors"
)

const (
	chunkSize  = 4 // bytes copied per step
	windowSize = 8 // first chunk of every window comes from the first source
)

// ErrOutOfBounds is matched by every *BoundsError.
var ErrOutOfBounds = errors.New("index out of bounds")

// BoundsError reports a chunk that does not fit inside the source buffers.
type BoundsError struct {
	Offset int // first byte of the offending chunk
	LenA   int
	LenB   int
}

func (e *BoundsError) Error() string {
	if e.LenA != e.LenB {
		return fmt.Sprintf("interleave: source lengths differ (%d vs %d): %v", e.LenA, e.LenB, ErrOutOfBounds)
	}
	return fmt.Sprintf("interleave: chunk [%d, %d] exceeds source length %d: %v",
		e.Offset, e.Offset+chunkSize-1, e.LenA, ErrOutOfBounds)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// Interleave merges two equally sized pixel buffers 4 bytes at a time. For
// every output offset i (a multiple of 4), bytes [i, i+3] come from a when
// i%8 == 0 and from b otherwise. The output has the same length as the
// inputs.
//
// Offsets are byte offsets, not pixel offsets, so with 3-byte pixels a
// single pixel may take channels from both sources.
func Interleave(a, b []byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, &BoundsError{LenA: len(a), LenB: len(b)}
	}

	out := make([]byte, len(a))
	for i := 0; i < len(a); i += chunkSize {
		end := i + chunkSize
		if end > len(a) {
			return nil, &BoundsError{Offset: i, LenA: len(a), LenB: len(b)}
		}
		src := b
		if i%windowSize == 0 {
			src = a
		}
		copy(out[i:end], src[i:end])
	}
	return out, nil
}
