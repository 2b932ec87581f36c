package domain

import (
	"fmt"
	"net/mail"
	"strings"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field violation found for a request. Rules
// are evaluated independently so the caller always sees the full list, never
// just the first failure.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return strings.Join(msgs, "; ")
}

// FieldErrors accumulates rule results.
type FieldErrors []FieldError

// Check appends the result of a rule when it failed.
func (fe *FieldErrors) Check(res *FieldError) {
	if res != nil {
		*fe = append(*fe, *res)
	}
}

// Add records a failure produced outside the declarative rules (e.g. a
// uniqueness pre-check against the store).
func (fe *FieldErrors) Add(field, message string) {
	*fe = append(*fe, FieldError{Field: field, Message: message})
}

// AsError returns a ValidationError when any rule failed, nil otherwise.
func (fe FieldErrors) AsError() error {
	if len(fe) == 0 {
		return nil
	}
	return &ValidationError{Fields: fe}
}

// --- Rules ---

func Required(field, value string) *FieldError {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: field + " is required"}
	}
	return nil
}

// Alphanumeric rejects values containing anything but letters and digits.
// Empty values pass; combine with Required.
func Alphanumeric(field, value string) *FieldError {
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		default:
			return &FieldError{Field: field, Message: field + " must be alphanumeric"}
		}
	}
	return nil
}

// ValidEmail checks RFC-plausible address syntax. Empty values pass.
func ValidEmail(field, value string) *FieldError {
	if value == "" {
		return nil
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return &FieldError{Field: field, Message: field + " must be a valid email"}
	}
	return nil
}

// MinLen enforces a minimum length on non-empty values.
func MinLen(field, value string, n int) *FieldError {
	if value == "" {
		return nil
	}
	if len(value) < n {
		return &FieldError{Field: field, Message: fmt.Sprintf("%s must be at least %d characters", field, n)}
	}
	return nil
}
