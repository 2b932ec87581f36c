package domain

import (
	"errors"
	"testing"
)

func TestFieldErrors_AccumulatesEveryViolation(t *testing.T) {
	var fe FieldErrors
	fe.Check(Required("first_name", ""))
	fe.Check(Required("last_name", "Doe"))
	fe.Check(ValidEmail("email", "not-an-email"))
	fe.Check(MinLen("password", "abc", 6))
	fe.Add("email", "email already registered")

	err := fe.AsError()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 4 {
		t.Fatalf("expected 4 violations, got %d: %v", len(ve.Fields), ve.Fields)
	}
}

func TestFieldErrors_EmptyIsNil(t *testing.T) {
	var fe FieldErrors
	fe.Check(Required("email", "jane@x.com"))
	if err := fe.AsError(); err != nil {
		t.Fatalf("expected nil for a clean input, got %v", err)
	}
}

func TestRules(t *testing.T) {
	if Required("name", "  ") == nil {
		t.Errorf("whitespace-only value must fail Required")
	}
	if Alphanumeric("phone", "555-0100") == nil {
		t.Errorf("dash must fail Alphanumeric")
	}
	if Alphanumeric("phone", "5550100") != nil {
		t.Errorf("digits must pass Alphanumeric")
	}
	if ValidEmail("email", "") != nil {
		t.Errorf("empty value passes ValidEmail")
	}
	if ValidEmail("email", "jane@x.com") != nil {
		t.Errorf("valid address must pass")
	}
	if MinLen("password", "abcdef", 6) != nil {
		t.Errorf("exact length must pass MinLen")
	}
}

func TestValidationError_MessageJoinsFields(t *testing.T) {
	ve := &ValidationError{Fields: []FieldError{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password must be at least 6 characters"},
	}}
	want := "email: email is required; password: password must be at least 6 characters"
	if ve.Error() != want {
		t.Fatalf("Error() = %q, want %q", ve.Error(), want)
	}
}
