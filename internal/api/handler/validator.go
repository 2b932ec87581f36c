package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// requestValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound request structs.
type requestValidator struct {
	check *validator.Validate
}

// NewValidator returns the validator assigned to echo.Echo.Validator at
// router construction.
func NewValidator() *requestValidator {
	return &requestValidator{check: validator.New()}
}

// Validate runs the struct tags and flattens every violation into a single
// readable message, semicolon-separated.
func (rv *requestValidator) Validate(in any) error {
	err := rv.check.Struct(in)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return err
	}

	parts := make([]string, len(violations))
	for i, v := range violations {
		parts[i] = describeViolation(v)
	}
	return errors.New(strings.Join(parts, "; "))
}

// describeViolation renders one tag failure in the wording the API's error
// envelope uses elsewhere.
func describeViolation(v validator.FieldError) string {
	field := strings.ToLower(v.Field())
	switch v.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, v.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, v.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, v.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, v.Tag())
	}
}
