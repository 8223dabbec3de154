package softvg

import "errors"

// Sentinel errors returned by framebuffer and image setup. Wrapped errors
// carry the offending values; match with errors.Is.
var (
	ErrInvalidSize    = errors.New("invalid size")
	ErrBufferTooSmall = errors.New("buffer too small")
	ErrInvalidShift   = errors.New("invalid channel shift")
	ErrClosed         = errors.New("context closed")
)
