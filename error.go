package fsa

import "github.com/coregx/fsa/region"

// Errors returned by Open and Close. They are *region.Error values, so
// errors.Is matches any error of the same kind regardless of path or cause.
var (
	// ErrNotFound indicates the automaton file does not exist.
	ErrNotFound = region.ErrNotFound

	// ErrCorruptFormat indicates a wrong magic number or a header that
	// describes regions outside the file.
	ErrCorruptFormat = region.ErrCorruptFormat

	// ErrClosed is returned by a second Close.
	ErrClosed = region.ErrClosed
)
