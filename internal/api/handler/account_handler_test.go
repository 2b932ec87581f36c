package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/velora/storefront-admin/internal/core/domain"
	"github.com/velora/storefront-admin/internal/core/ports"
)

type stubAccountService struct {
	registered *ports.RegisterInput
	loginErr   error
	resendErr  error
}

func (s *stubAccountService) Register(_ context.Context, in ports.RegisterInput) (*domain.Account, error) {
	s.registered = &in
	return &domain.Account{
		ID:        "acc_1",
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		IsActive:  true,
	}, nil
}

func (s *stubAccountService) Login(_ context.Context, email, _ string) (*ports.AuthResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &ports.AuthResult{ID: "acc_1", FirstName: "Jane", LastName: "Doe", Token: "token-1"}, nil
}

func (s *stubAccountService) VerifyConfirm(_ context.Context, email, _ string) (*ports.AuthResult, error) {
	return &ports.AuthResult{ID: "acc_1", FirstName: "Jane", LastName: "Doe", Token: "token-2"}, nil
}

func (s *stubAccountService) ResendConfirmOTP(_ context.Context, _ string) error {
	return s.resendErr
}

func performJSON(h echo.HandlerFunc, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h(c)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v (body %q)", err, rec.Body.String())
	}
	return env
}

func TestAccountHandler_Register(t *testing.T) {
	svc := &stubAccountService{}
	h := NewAccountHandler(svc)

	rec, err := performJSON(h.Register, `{
		"first_name": "Jane",
		"last_name": "Doe",
		"email": "jane@x.com",
		"password": "sup3rsecret",
		"phone": "5550100"
	}`)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("expected success envelope, got %+v", env)
	}
	if svc.registered == nil || svc.registered.Email != "jane@x.com" {
		t.Fatalf("register input not forwarded: %+v", svc.registered)
	}
}

func TestAccountHandler_Register_InvalidPayload(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{})

	_, err := performJSON(h.Register, `{not json`)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed payload, got %v", err)
	}
}

func TestAccountHandler_Login(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{})

	rec, err := performJSON(h.Login, `{"email": "jane@x.com", "password": "sup3rsecret"}`)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("data should carry the auth result, got %T", env.Data)
	}
	if data["token"] != "token-1" {
		t.Fatalf("token missing from response: %+v", data)
	}
}

func TestAccountHandler_Login_ErrorPropagates(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{loginErr: domain.ErrEmailOrPasswordWrong})

	_, err := performJSON(h.Login, `{"email": "jane@x.com", "password": "nope"}`)
	if !errors.Is(err, domain.ErrEmailOrPasswordWrong) {
		t.Fatalf("handler must return the domain error untouched, got %v", err)
	}
}

func TestAccountHandler_VerifyConfirm(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{})

	rec, err := performJSON(h.VerifyConfirm, `{"email": "jane@x.com", "otp": "123456"}`)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if env.Message != "Account confirmed" {
		t.Fatalf("message = %q", env.Message)
	}
}

func TestAccountHandler_ResendConfirmOTP(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{})

	rec, err := performJSON(h.ResendConfirmOTP, `{"email": "jane@x.com"}`)
	if err != nil {
		t.Fatalf("resend failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if env.Data != nil {
		t.Fatalf("resend carries no data, got %+v", env.Data)
	}
}
