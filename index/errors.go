package index

import "errors"

var (
	// ErrBadMagic indicates a vector file that does not start with the
	// expected format marker.
	ErrBadMagic = errors.New("vector file has unknown format")

	// ErrCountMismatch indicates that the vector file and the metadata file
	// disagree on how many entries the store holds.
	ErrCountMismatch = errors.New("vector and snippet counts diverge")
)
