package codec

import "errors"

// Errors from the opcode state machines. Framing errors (malformed
// header) live in the sibling header package; these are raised only
// once the header has already parsed.
var (
	ErrEmptyPixelBuffer = errors.New("qoi: encode: pixel buffer is empty")
	ErrZeroPixelCount   = errors.New("qoi: encode: width*height is zero")
	ErrOutOfMemory      = errors.New("qoi: allocation failed")

	// ErrInvalidEncoding is reserved for a structurally impossible tag
	// byte. The six-way tag dispatch in decode.go is exhaustive over
	// all 256 byte values, so this is never actually returned today —
	// it remains a declared error kind so a future opcode addition
	// has somewhere to report incompatibility without breaking the
	// error taxonomy callers already match against.
	ErrInvalidEncoding = errors.New("qoi: decode: invalid opcode encoding")

	// ErrWriteFailed wraps a failure from a caller-supplied output
	// sink; it is not raised by the in-memory codec path.
	ErrWriteFailed = errors.New("qoi: write to output sink failed")
)
