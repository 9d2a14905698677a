package services

import (
	"errors"
	"strings"

	"github.com/horizontrails/agency-backoffice/internal/models"
	"github.com/horizontrails/agency-backoffice/pkg/validator"
)

var (
	// ErrNotFound is returned when the requested entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrReferenceNotFound is returned when a submission references an unknown package
	ErrReferenceNotFound = errors.New("package not found")

	// ErrDuplicate is returned when a unique field is already taken
	ErrDuplicate = errors.New("already exists")

	// ErrInvalidCredentials is returned for a bad username/password pair or token
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError reports rejected input. Field-level checks fill Fields;
// hand-written pre-checks fill Details with flat messages. Only one is set.
type ValidationError struct {
	Message string
	Fields  validator.Errors
	Details []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// HasFields reports whether the error carries per-field detail
func (e *ValidationError) HasFields() bool {
	return len(e.Fields) > 0
}

// precheckError converts pre-check failures into a flat-message ValidationError
func precheckError(err error) error {
	if err == nil {
		return nil
	}
	var errs validator.Errors
	if !errors.As(err, &errs) {
		return &ValidationError{Message: err.Error(), Details: []string{err.Error()}}
	}
	messages := errs.Messages()
	return &ValidationError{Message: strings.Join(messages, ", "), Details: messages}
}

// fieldError converts field-level failures into a ValidationError with per-field detail
func fieldError(err error) error {
	if err == nil {
		return nil
	}
	var errs validator.Errors
	if !errors.As(err, &errs) {
		return &ValidationError{Message: err.Error()}
	}
	return &ValidationError{Message: errs.Error(), Fields: errs}
}

// statusError converts an out-of-vocabulary status into a ValidationError
func statusError(err error) error {
	var invalid *models.InvalidStatusError
	if !errors.As(err, &invalid) {
		return err
	}
	return &ValidationError{
		Message: invalid.Error(),
		Fields:  validator.Errors{{Field: "status", Message: invalid.Error()}},
	}
}
