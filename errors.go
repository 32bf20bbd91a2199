package povlist

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code is the status left on a list by the last operation that can fail.
type Code int

const (
	NoError Code = iota
	// ErrorFull is reserved, lists are only bounded by their allocator.
	ErrorFull
	// ErrorEmpty is reserved, an empty list reports ErrorEnd.
	ErrorEmpty
	ErrorMalloc
	ErrorEnd
)

var (
	ErrAlloc = errors.New("node allocation failed")
	ErrEnd   = errors.New("point of view is after the last element")
	ErrFull  = errors.New("list is full")
	ErrEmpty = errors.New("list is empty")
)

func (c Code) String() string {
	switch c {
	case NoError:
		return "no error"
	case ErrorFull:
		return "full"
	case ErrorEmpty:
		return "empty"
	case ErrorMalloc:
		return "malloc"
	case ErrorEnd:
		return "end"
	}

	return fmt.Sprintf("Code(%d)", int(c))
}

// Err returns the sentinel error for c, nil for NoError.
func (c Code) Err() error {
	switch c {
	case ErrorFull:
		return ErrFull
	case ErrorEmpty:
		return ErrEmpty
	case ErrorMalloc:
		return ErrAlloc
	case ErrorEnd:
		return ErrEnd
	}

	return nil
}
