package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a cafe or review id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidVote is returned for a vote direction other than agree or disagree.
	ErrInvalidVote = errors.New("invalid vote direction")
)

// ValidationError reports the first field that failed validation. Nothing is
// persisted when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
