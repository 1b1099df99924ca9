package errors

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrDuplicateUsername  = errors.New("username already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// IsDuplicate reports whether err is either duplicate-credential error.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateEmail) || errors.Is(err, ErrDuplicateUsername)
}

// ValidationError carries every violated rule for a request body, not just
// the first one, so the client can render all of them at once.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// First returns the leading message, used as the top-level response message.
func (e *ValidationError) First() string {
	if len(e.Messages) == 0 {
		return "invalid input"
	}
	return e.Messages[0]
}
