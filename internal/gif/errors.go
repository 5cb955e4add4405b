package gif

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated             = errors.New("gif: truncated input")
	ErrInvalidSignature      = errors.New("gif: invalid signature")
	ErrInvalidSeparator      = errors.New("gif: invalid block separator")
	ErrInvalidExtensionLabel = errors.New("gif: unknown extension label")
	ErrFrameIndex            = errors.New("gif: frame index out of range")
)

// FormatError reports where in the stream decoding stopped.
type FormatError struct {
	Offset int64  // absolute offset of the offending field
	What   string // field being read, or the offending byte
	Err    error
}

func (e *FormatError) Error() string {
	if e.What == "" {
		return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v (%s) at offset %d", e.Err, e.What, e.Offset)
}

func (e *FormatError) Unwrap() error { return e.Err }

// IOError wraps failures of the underlying byte source or sink.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("gif: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gif: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
