package errs

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrRateLimited = errors.New("rate limited")
)

// ValidationErr carries the full ordered list of field problems found in a
// submission. All rules are evaluated before it is built, so the caller sees
// every violation in one pass.
type ValidationErr struct {
	Messages []string
}

func NewValidationError(messages []string) *ValidationErr {
	return &ValidationErr{Messages: messages}
}

func (e *ValidationErr) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *ValidationErr) Unwrap() error {
	return ErrValidation
}

func (e *ValidationErr) StatusCode() int {
	return http.StatusBadRequest
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
