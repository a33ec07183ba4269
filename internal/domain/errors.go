package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRoomType = errors.New("invalid room type")
	ErrInvalidStatus   = errors.New("invalid availability status")
)

// LoadError reports a broken inventory source. It is fatal at startup.
type LoadError struct {
	Line   int
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("load rooms: line %d, column %q: %v", e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("load rooms: line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("load rooms: %v", e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }

// QueryError reports malformed template parameters.
type QueryError struct {
	Template string
	Param    string
	Reason   string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: parameter %q %s", e.Template, e.Param, e.Reason)
}
