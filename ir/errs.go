package ir

import "errors"

var (
	// ErrIndex is wrapped by child mutators handed an out-of-range index.
	ErrIndex = errors.New("index out of range")

	// ErrBadIR is wrapped by the serialized-form decoder for malformed input.
	ErrBadIR = errors.New("malformed serialized IR")
)
