package oid

import "errors"

var (
	ErrInvalidLength    = errors.New("invalid digest length")
	ErrInvalidHex       = errors.New("invalid hex digest")
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")
	ErrInvalidCapacity  = errors.New("store capacity must be positive")
)
