package game

import (
	"errors"
	"fmt"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player already exists")
)

// UserError is a rule violation reported back to the acting player. A
// handler returning one must not have changed any state.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// Userf builds a UserError from a format string.
func Userf(format string, args ...any) error {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

// AsUserError reports whether err wraps a UserError and returns it.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
