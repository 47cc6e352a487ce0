package script

import (
	"errors"
	"fmt"
)

var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrTimeout is returned when a script or callback exceeds its deadline.
	ErrTimeout = errors.New("lua execution timeout")

	// ErrNotFunction is returned when a global expected to be a function is not.
	ErrNotFunction = errors.New("not a function")
)

// ScriptError reports a failure while loading or running a script.
type ScriptError struct {
	// Source is the script file path or "<string>".
	Source string
	// Err is the underlying Lua or binding error.
	Err error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("script %s: %v", e.Source, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
