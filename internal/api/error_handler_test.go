package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/velora/storefront-admin/internal/api/handler"
	"github.com/velora/storefront-admin/internal/core/domain"
)

func performWithError(t *testing.T, err error) (*httptest.ResponseRecorder, handler.Envelope) {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env handler.Envelope
	if decErr := json.Unmarshal(rec.Body.Bytes(), &env); decErr != nil {
		t.Fatalf("response is not a valid envelope: %v (body %q)", decErr, rec.Body.String())
	}
	return rec, env
}

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"login generic", domain.ErrEmailOrPasswordWrong, http.StatusUnauthorized, "Email or Password wrong"},
		{"not confirmed", domain.ErrAccountNotConfirmed, http.StatusUnauthorized, "Account not confirmed"},
		{"not active", domain.ErrAccountNotActive, http.StatusUnauthorized, "Account is not active"},
		{"email not found", domain.ErrEmailNotFound, http.StatusUnauthorized, "Email not found"},
		{"otp mismatch", domain.ErrOTPMismatch, http.StatusUnauthorized, "OTP does not match"},
		{"duplicate account", domain.ErrAccountExists, http.StatusConflict, "Account already exists"},
		{"order not found", domain.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
		{"category not found", domain.ErrCategoryNotFound, http.StatusNotFound, "Category not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, env := performWithError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("status = %d, want %d", rec.Code, tc.code)
			}
			if env.Success {
				t.Fatalf("error envelope must not report success")
			}
			if env.Message != tc.message {
				t.Fatalf("message = %q, want %q", env.Message, tc.message)
			}
		})
	}
}

func TestHTTPErrorHandler_ValidationErrorCarriesAllFields(t *testing.T) {
	verr := &domain.ValidationError{Fields: []domain.FieldError{
		{Field: "email", Message: "email is not valid"},
		{Field: "password", Message: "password must be at least 6 characters"},
	}}

	rec, env := performWithError(t, verr)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}

	fields, ok := env.Data.([]any)
	if !ok {
		t.Fatalf("data should carry the field list, got %T", env.Data)
	}
	if len(fields) != 2 {
		t.Fatalf("expected both violations reported, got %d", len(fields))
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	rec, env := performWithError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if env.Message != "invalid payload" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec, env := performWithError(t, errors.New("mongo: topology closed"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if env.Message != "Internal server error" {
		t.Fatalf("internal detail leaked to client: %q", env.Message)
	}
}
