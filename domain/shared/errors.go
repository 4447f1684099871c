/*
Package shared holds the building blocks every aggregate in the shop domain
relies on: domain errors, the entity and value object contracts, and the
process-local event dispatcher.

Error design:
 1. Sentinel errors classify failures for errors.Is().
 2. DomainError carries the fixed, user-facing message of the violated rule,
    the entity it belongs to and the stack captured at creation.
 3. Stacks are captured eagerly and formatted lazily, only when logged.
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	// ErrValidation an entity invariant was violated
	ErrValidation = errors.New("validation failed")

	// ErrNotFound no stored row matches the requested id
	ErrNotFound = errors.New("not found")
)

// DomainError Domain error carrying business context and the creation stack
type DomainError struct {
	// Err sentinel used by errors.Is()
	Err error

	// Entity name of the entity that raised the error ("Customer", "Order")
	Entity string

	// Field optional field that failed validation
	Field string

	// Message fixed message of the violated rule
	Message string

	stack []uintptr
}

// Error returns the rule message verbatim
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap exposes the sentinel to errors.Is() and errors.As()
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Stack formats the captured stack on demand
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// CaptureStack captures the current call stack.
// skip is usually 3: runtime.Callers, CaptureStack, NewXxxError.
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack renders at most a handful of non-runtime frames
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// NewValidationError creates a validation error whose message is reason
func NewValidationError(entity, field, reason string) error {
	return &DomainError{
		Err:     ErrValidation,
		Entity:  entity,
		Field:   field,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// NewNotFoundError creates a not found error, e.g. "Customer not found"
func NewNotFoundError(entity string) error {
	return &DomainError{
		Err:     ErrNotFound,
		Entity:  entity,
		Message: entity + " not found",
		stack:   CaptureStack(3),
	}
}

// IsValidationError reports whether err is (or wraps) a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is (or wraps) a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Stacker errors able to report where they were created
type Stacker interface {
	Stack() []string
}
