package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ironsheep/blurhash-tools/internal/blurhash"
)

var (
	// ErrDecode marks files that could not be decoded as images.
	ErrDecode = errors.New("decode failed")

	// ErrIO marks read and write failures.
	ErrIO = errors.New("i/o failed")
)

// Error kinds reported by Kind.
const (
	KindInvalidGrid = "invalid_grid"
	KindEmptyImage  = "empty_image"
	KindDecode      = "decode"
	KindIO          = "io"
	KindCanceled    = "canceled"
	KindUnknown     = "unknown"
)

// Kind names the category of an outcome error. It returns "" for nil.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, blurhash.ErrInvalidGrid):
		return KindInvalidGrid
	case errors.Is(err, blurhash.ErrEmptyImage):
		return KindEmptyImage
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.Is(err, ErrIO):
		return KindIO
	case errors.Is(err, ErrDecode):
		return KindDecode
	default:
		return KindUnknown
	}
}

// classifyLoadError tags a decoder error as ErrIO when the file itself could
// not be opened or read, and as ErrDecode otherwise.
func classifyLoadError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return fmt.Errorf("%w: %w", ErrDecode, err)
}
