package native

import "errors"

// Errors returned by native tree operations.
var (
	// ErrUnsupportedValue is returned when a value has no native representation.
	ErrUnsupportedValue = errors.New("unsupported native value")

	// ErrInvalidJSON is returned when Parse receives malformed input.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotObject is returned when a JSON document is not an object.
	ErrNotObject = errors.New("JSON document is not an object")

	// ErrNotCallable is returned when calling a nil function.
	ErrNotCallable = errors.New("native function is not callable")
)
