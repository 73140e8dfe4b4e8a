package segment

import "errors"

var (
	// ErrBadBulletBounds indicates inverted or non-positive bullet length bounds.
	ErrBadBulletBounds = errors.New("bullet bounds must satisfy 0 < min <= max")

	// ErrBadWindowBounds indicates a character window too small to make progress.
	ErrBadWindowBounds = errors.New("window size must be at least 2")

	// ErrBadOverlap indicates an overlap that would prevent window progress.
	ErrBadOverlap = errors.New("overlap must be non-negative and smaller than the window")

	// ErrBadSectionBounds indicates inverted or non-positive section bounds.
	ErrBadSectionBounds = errors.New("section bounds must satisfy 0 < min <= max")
)
