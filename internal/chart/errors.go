package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/chartwire/internal/callback"
)

// Errors returned by chart operations.
var (
	// ErrNilChart indicates an operation that needs a chart received nil.
	ErrNilChart = errors.New("chart is nil")

	// ErrUnknownType indicates an unsupported chart type token.
	ErrUnknownType = errors.New("unknown chart type")

	// ErrChartMismatch indicates configuration owned by one chart was bound
	// to another.
	ErrChartMismatch = errors.New("configuration belongs to a different chart")

	// ErrAlreadyRegistered indicates a duplicate chart id.
	ErrAlreadyRegistered = errors.New("chart already registered")

	// ErrUnknownSetting indicates a defaults override for a path the
	// setting catalog does not know.
	ErrUnknownSetting = errors.New("unknown setting")

	// ErrUnknownEvent indicates an unsupported event family.
	ErrUnknownEvent = errors.New("unknown event family")

	// ErrNilHandler indicates a nil event handler.
	ErrNilHandler = errors.New("handler is nil")
)

// ValidationError reports a defaults override rejected by its setting.
type ValidationError struct {
	// Path is the dot-separated setting path.
	Path string

	// Message describes what's wrong.
	Message string

	// Value is the rejected value.
	Value any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors collects multiple validation failures.
type ValidationErrors struct {
	Errors []*ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no validation errors"
	case 1:
		return e.Errors[0].Error()
	}
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d validation errors:\n  - %s", len(e.Errors), strings.Join(msgs, "\n  - "))
}

// Add records a failure.
func (e *ValidationErrors) Add(path, message string, value any) {
	e.Errors = append(e.Errors, &ValidationError{Path: path, Message: message, Value: value})
}

// HasErrors reports whether any failure was recorded.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// errOrNil returns e as an error only when it holds failures.
func (e *ValidationErrors) errOrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func configError(op, key string, err error) error {
	return &callback.ConfigurationError{Op: op, Key: key, Err: err}
}
