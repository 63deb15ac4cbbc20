package region

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{NotFound, "NotFound"},
		{CorruptFormat, "CorruptFormat"},
		{Closed, "Closed"},
		{IO, "IO"},
		{ErrorKind(42), "UnknownErrorKind(42)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "sentinel",
			err:  ErrCorruptFormat,
			want: "fsa: corrupt automaton format",
		},
		{
			name: "with path",
			err:  &Error{Kind: Closed, Path: "a.fsa", Message: "already closed"},
			want: "fsa: a.fsa: already closed",
		},
		{
			name: "with cause",
			err:  &Error{Kind: IO, Path: "a.fsa", Message: "mmap", Cause: fmt.Errorf("no memory")},
			want: "fsa: a.fsa: mmap: no memory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	err := fmt.Errorf("loading: %w", corrupt("x.fsa", "bad magic %d", 1))
	if !errors.Is(err, ErrCorruptFormat) {
		t.Error("wrapped corrupt error should match ErrCorruptFormat")
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrClosed) {
		t.Error("kinds must not cross-match")
	}
	if errors.Is(err, errors.New("corrupt automaton format")) {
		t.Error("unrelated errors must not match")
	}
}
