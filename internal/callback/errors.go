package callback

import (
	"errors"
	"fmt"
)

// Errors returned by the callback bridge.
var (
	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("configuration error")

	// ErrMissingChart indicates a call-site record without its chart back-reference.
	ErrMissingChart = errors.New("record has no chart back-reference")

	// ErrUnknownChart indicates a chart id that is not registered.
	ErrUnknownChart = errors.New("chart is not registered")

	// ErrMissingRecord indicates a native invocation without a call-site record.
	ErrMissingRecord = errors.New("native invocation has no call-site record")

	// ErrNilNode indicates a slot or wrapper built without a native node.
	ErrNilNode = errors.New("native node is nil")

	// ErrInvalidValue indicates a literal rejected by the property's coercer.
	ErrInvalidValue = errors.New("invalid value")
)

// ConfigurationError reports a structurally invalid configuration: a bad
// literal, a missing node, or a record that cannot be marshalled.
type ConfigurationError struct {
	// Op is the operation that failed (e.g. "marshal", "set").
	Op string
	// Key is the property or path involved, if any.
	Key string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("configuration error: %s %s: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("configuration error: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is implements error matching for ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configError(op, key string, err error) error {
	return &ConfigurationError{Op: op, Key: key, Err: err}
}
