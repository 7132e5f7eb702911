package text

import "errors"

var (
	// ErrInvalidEnumValue is returned when a raw string is outside a closed vocabulary.
	ErrInvalidEnumValue = errors.New("invalid enum value")
	// ErrInvalidColor is returned for a color that is neither a named color nor #RRGGBB.
	ErrInvalidColor = errors.New("invalid color")
	// ErrMissingRequiredField is returned when a component or event lacks a field its kind needs.
	ErrMissingRequiredField = errors.New("missing required field")
)
