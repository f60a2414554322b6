package ai

import (
	"errors"
	"fmt"
)

// Kind categorizes client failures so callers can branch without string
// matching.
type Kind string

const (
	// KindUnavailable means the provider was unreachable, timed out, or
	// returned unusable output after all attempts.
	KindUnavailable Kind = "unavailable"
	// KindInvalidInput means the prompt was empty or malformed; retrying
	// cannot help.
	KindInvalidInput Kind = "invalid_input"
)

// Error is the typed failure returned by the client.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether err is a provider-unavailable failure.
func IsUnavailable(err error) bool {
	var aiErr *Error
	return errors.As(err, &aiErr) && aiErr.Kind == KindUnavailable
}
