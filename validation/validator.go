package validation

import (
	"fmt"
	"strings"

	"github.com/kbukum/neto/errors"
)

// Validator collects validation errors.
type Validator struct {
	errors []FieldError
}

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string           `json:"field"`
	Message string           `json:"message"`
	Code    errors.ErrorCode `json:"code"`
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{
		errors: make([]FieldError, 0),
	}
}

// AddError adds a field error with the generic invalid-input code.
func (v *Validator) AddError(field, message string) {
	v.add(field, message, errors.ErrCodeInvalidInput)
}

func (v *Validator) add(field, message string, code errors.ErrorCode) {
	v.errors = append(v.errors, FieldError{
		Field:   field,
		Message: message,
		Code:    code,
	})
}

// HasErrors returns true if there are validation errors.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Validate returns an AppError if there are validation errors, nil otherwise.
// The code and field of the first error determine the AppError; every
// collected error is listed under Details["fields"].
func (v *Validator) Validate() *errors.AppError {
	if !v.HasErrors() {
		return nil
	}

	first := v.errors[0]
	var appErr *errors.AppError
	if first.Code == errors.ErrCodeMissingField {
		appErr = errors.MissingField(first.Field)
	} else {
		messages := make([]string, len(v.errors))
		for i, e := range v.errors {
			messages[i] = fmt.Sprintf("%s: %s", e.Field, e.Message)
		}
		appErr = errors.New(first.Code, strings.Join(messages, "; "))
	}

	return appErr.WithDetail("fields", v.errors)
}

// Present records a missing-field error when set is false. It checks that a
// field was assigned at all, regardless of its value.
func (v *Validator) Present(field string, set bool) *Validator {
	if !set {
		v.add(field, "is required", errors.ErrCodeMissingField)
	}
	return v
}

// Required checks if a string is non-empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required", errors.ErrCodeMissingField)
	}
	return v
}

// Custom applies a custom validation condition.
func (v *Validator) Custom(condition bool, field, message string) *Validator {
	if !condition {
		v.AddError(field, message)
	}
	return v
}

// Required validates a single required field and returns an error if empty.
func Required(field, value string) error {
	v := New().Required(field, value)
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}
