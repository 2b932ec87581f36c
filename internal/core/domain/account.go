package domain

import (
	"errors"
	"time"
)

// Account errors. The login path deliberately collapses "unknown email" and
// "wrong password" into ErrEmailOrPasswordWrong so callers cannot enumerate
// registered addresses.
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountExists        = errors.New("account already exists")
	ErrEmailOrPasswordWrong = errors.New("email or password wrong")
	ErrAccountNotConfirmed  = errors.New("account not confirmed")
	ErrAccountNotActive     = errors.New("account is not active")
	ErrEmailNotFound        = errors.New("email not found")
	ErrOTPMismatch          = errors.New("otp does not match")
)

// Account is an admin-panel user record. Exactly one account exists per email
// and per phone; both are backed by unique indexes in the store.
//
// ConfirmOTP holds the single currently valid one-time code, empty once
// consumed. OTPTries is persisted for a future throttle but is not consulted
// anywhere today.
type Account struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	Postcode     string    `json:"postcode,omitempty"`
	Designation  string    `json:"designation,omitempty"`
	IsConfirmed  bool      `json:"is_confirmed"`
	IsActive     bool      `json:"is_active"`
	ConfirmOTP   string    `json:"-"`
	OTPTries     int       `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AccountUpdate is a partial update applied by email. Nil fields are left
// untouched; a pointer to the zero value clears the field.
type AccountUpdate struct {
	IsConfirmed *bool
	ConfirmOTP  *string
	OTPTries    *int
}
