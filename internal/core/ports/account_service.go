package ports

import (
	"context"

	"github.com/velora/storefront-admin/internal/core/domain"
)

// RegisterInput carries all data needed to register an admin account.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	Phone       string
	Address     string
	City        string
	State       string
	Postcode    string
	Designation string
}

// AuthResult is returned by every operation that mints a session token.
type AuthResult struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Token     string `json:"token"`
}

// AccountService drives the registration / confirmation / login state machine.
type AccountService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	VerifyConfirm(ctx context.Context, email, otp string) (*AuthResult, error)
	ResendConfirmOTP(ctx context.Context, email string) error
}
