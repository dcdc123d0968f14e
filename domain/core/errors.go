package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors - surfaced directly to the caller
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidCategory = errors.New("invalid category value")
	ErrOutOfRange      = errors.New("value out of range")
	ErrInvalidJSON     = errors.New("invalid JSON input")
	ErrNonScalar       = errors.New("field resolved to non-scalar value")

	// Recoverable errors - degrade to defaults/fallback, never propagate
	ErrArtifactLoad = errors.New("artifact load failed")
	ErrInference    = errors.New("regressor inference failed")
	ErrAugmentation = errors.New("metrics augmentation failed")
	ErrScaling      = errors.New("feature scaling failed")
)

// DomainError carries a caller-facing message while staying matchable with
// errors.Is against the sentinel it wraps.
type DomainError struct {
	Kind    error
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Kind
}

// Error constructors with context
func NewMissingFieldsError(fields []string) error {
	return &DomainError{
		Kind:    ErrMissingField,
		Message: fmt.Sprintf("Missing required fields: %v", fields),
	}
}

func NewInvalidCategoryError(field, value string, valid []string) error {
	return &DomainError{
		Kind:    ErrInvalidCategory,
		Message: fmt.Sprintf("Invalid %s. Must be one of: %v", field, valid),
	}
}

func NewOutOfRangeError(field, requirement string) error {
	return &DomainError{
		Kind:    ErrOutOfRange,
		Message: fmt.Sprintf("%s must be %s", field, requirement),
	}
}

func NewNonScalarError(detail string) error {
	return &DomainError{Kind: ErrNonScalar, Message: detail}
}

func NewArtifactLoadError(artifact string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrArtifactLoad, artifact, err)
}

func NewInferenceError(target string, err error) error {
	return fmt.Errorf("%w for %s: %v", ErrInference, target, err)
}

// Error checking helpers
func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidCategory) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrInvalidJSON) ||
		errors.Is(err, ErrNonScalar)
}

func IsRecoverableError(err error) bool {
	return errors.Is(err, ErrArtifactLoad) ||
		errors.Is(err, ErrInference) ||
		errors.Is(err, ErrAugmentation) ||
		errors.Is(err, ErrScaling)
}
