package region

import "fmt"

// ErrNotFound indicates that the automaton file does not exist.
// The Cause of a returned error wraps fs.ErrNotExist.
var ErrNotFound = &Error{
	Kind:    NotFound,
	Message: "automaton file not found",
}

// ErrCorruptFormat indicates that the file is not a valid automaton image:
// the magic number is wrong, the header is truncated, or the header
// describes regions that do not fit in the file.
//
// This is fatal and not retryable.
var ErrCorruptFormat = &Error{
	Kind:    CorruptFormat,
	Message: "corrupt automaton format",
}

// ErrClosed is returned when a Regions value is closed more than once.
var ErrClosed = &Error{
	Kind:    Closed,
	Message: "automaton regions already closed",
}

// ErrorKind classifies region errors into categories
type ErrorKind uint8

const (
	// NotFound indicates a missing backing file
	NotFound ErrorKind = iota

	// CorruptFormat indicates header validation failed
	CorruptFormat

	// Closed indicates use of released regions
	Closed

	// IO indicates a read, stat or mmap failure
	IO
)

// String returns a human-readable error kind name
func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "NotFound"
	case CorruptFormat:
		return "CorruptFormat"
	case Closed:
		return "Closed"
	case IO:
		return "IO"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Error represents a failure to open, validate or release an automaton image.
type Error struct {
	Kind    ErrorKind
	Path    string // Optional file path
	Message string
	Cause   error // Optional underlying error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("fsa: %s: %v", msg, e.Cause)
	}
	return "fsa: " + msg
}

// Unwrap returns the underlying error (for errors.Is/As)
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements error comparison for errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func corrupt(path, format string, args ...any) *Error {
	return &Error{
		Kind:    CorruptFormat,
		Path:    path,
		Message: "corrupt automaton format: " + fmt.Sprintf(format, args...),
	}
}
