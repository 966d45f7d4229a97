// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services. Repositories return ErrNotFound on
// lookup misses; handlers translate these into HTTP status codes.
var (
	ErrNotFound   = errors.New("entity not found")
	ErrValidation = errors.New("validation failed")
)

// BusinessError marks a business-rule violation (as opposed to a system or
// infrastructure failure, which is always surfaced as-is).
type BusinessError struct {
	Reason string
}

func (e *BusinessError) Error() string {
	return e.Reason
}

// NewBusinessError creates a BusinessError with a formatted reason.
func NewBusinessError(format string, args ...any) *BusinessError {
	return &BusinessError{Reason: fmt.Sprintf(format, args...)}
}

// IsBusinessError reports whether err is (or wraps) a BusinessError.
func IsBusinessError(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}
