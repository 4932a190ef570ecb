package vector

import "errors"

// Sentinel errors for the vector package.
var (
	// ErrInvalidFace is returned when a face is nil or reports a
	// non-positive units-per-em.
	ErrInvalidFace = errors.New("vector: invalid font face")
)
