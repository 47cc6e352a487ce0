package definition

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat indicates a definition file extension with no
	// loader.
	ErrUnsupportedFormat = errors.New("unsupported definition format")

	// ErrInvalidDefinition indicates a well-formed file whose content is not
	// a valid definition.
	ErrInvalidDefinition = errors.New("invalid definition")

	// ErrInvalidSetting indicates an environment override that does not
	// parse as its setting's type.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrWatcherClosed indicates use of a closed watcher.
	ErrWatcherClosed = errors.New("watcher closed")

	// ErrPathNotExist indicates a watched path that does not exist.
	ErrPathNotExist = errors.New("path does not exist")

	// ErrAlreadyWatching indicates a path that is already watched.
	ErrAlreadyWatching = errors.New("already watching path")

	// ErrNotWatching indicates a path that is not watched.
	ErrNotWatching = errors.New("not watching path")
)

// ParseError represents an error reading a definition file.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func invalid(source, format string, args ...any) error {
	return &ParseError{
		Path:    source,
		Message: fmt.Sprintf(format, args...),
		Err:     ErrInvalidDefinition,
	}
}
