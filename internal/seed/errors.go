package seed

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange      = errors.New("out of range")
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// Error wraps a derivation failure with the offending detail.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

func outOfRangef(format string, args ...any) error {
	return &Error{Kind: ErrOutOfRange, Msg: fmt.Sprintf(format, args...)}
}

func invalidEncoding(s string) error {
	return &Error{Kind: ErrInvalidEncoding, Msg: fmt.Sprintf("seed %q is not valid UTF-8", s)}
}
