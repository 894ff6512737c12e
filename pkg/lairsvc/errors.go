package lairsvc

import (
	"errors"
	"fmt"
)

// Nil argument preconditions. These indicate a caller bug, not a runtime
// condition, and are never converted into user facing messages.
var (
	ErrNilMinion    = errors.New("minion is nil")
	ErrNilScheme    = errors.New("scheme is nil")
	ErrNilBase      = errors.New("base is nil")
	ErrNilEquipment = errors.New("equipment is nil")
)

// ErrSchemeNotFound is the recoverable business failure for operations that
// reference a scheme id that does not exist.
var ErrSchemeNotFound = errors.New("Scheme not found!")

// ValidationError carries the human readable message of the first business
// rule a candidate entity failed. It is an expected outcome and callers
// surface Message directly.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a business rule validation
// failure as opposed to a persistence or precondition error.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
