package atlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for atlas package.
var (
	// ErrUnknownSchema is returned when a descriptor matches neither
	// the msdf-atlas-gen shape nor the BMFont shape.
	ErrUnknownSchema = errors.New("atlas: unrecognized descriptor schema")

	// ErrNoGlyphs is returned when a descriptor parses but defines no
	// glyphs.
	ErrNoGlyphs = errors.New("atlas: descriptor defines no glyphs")

	// ErrInvalidFont is returned by the geometry builder when the
	// font is nil or carries no usable metrics.
	ErrInvalidFont = errors.New("atlas: invalid atlas font")
)

// ParseError wraps a descriptor decoding failure with the schema that
// was being decoded.
type ParseError struct {
	Schema string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("atlas: parsing %s descriptor: %v", e.Schema, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
