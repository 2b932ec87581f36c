package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/velora/storefront-admin/internal/core/domain"
	"github.com/velora/storefront-admin/internal/core/ports"
)

const (
	confirmSubject = "Confirm your account"
	loginSubject   = "Login confirmation"
)

func confirmBody(code string) string {
	return fmt.Sprintf("<p>Please Confirm your Account. OTP: %s</p>", code)
}

func loginBody(code string) string {
	return fmt.Sprintf("<p>Please Login your Account. OTP: %s</p>", code)
}

// AccountService implements admin-account registration, OTP confirmation and
// login. The confirmation state machine:
//
//	Register          → unconfirmed, fresh OTP
//	ResendConfirmOTP  → unconfirmed, fresh OTP (even if already confirmed)
//	VerifyConfirm ok  → confirmed, OTP cleared
//	Login ok          → confirmed (re-set), fresh OTP stored
//
// Login re-setting the confirmed flag and storing a new OTP is inherited
// behavior and preserved deliberately.
type AccountService struct {
	repo   ports.AccountRepository
	mailer ports.Mailer
	tokens *TokenIssuer
	log    zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, mailer ports.Mailer, tokens *TokenIssuer, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, mailer: mailer, tokens: tokens, log: log}
}

// Register validates the input, emails a confirmation OTP and persists the
// new account. Every rule is evaluated so the caller sees all violations at
// once, including the email/phone uniqueness pre-checks. The mail is sent
// before the insert; a store failure after a successful send is surfaced
// without compensating the delivery.
func (s *AccountService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Account, error) {
	var errs domain.FieldErrors
	errs.Check(domain.Required("first_name", in.FirstName))
	errs.Check(domain.Alphanumeric("first_name", in.FirstName))
	errs.Check(domain.Required("last_name", in.LastName))
	errs.Check(domain.Alphanumeric("last_name", in.LastName))
	errs.Check(domain.Required("email", in.Email))
	errs.Check(domain.ValidEmail("email", in.Email))
	errs.Check(domain.Required("phone", in.Phone))
	errs.Check(domain.Required("password", in.Password))
	errs.Check(domain.MinLen("password", in.Password, 6))

	if in.Email != "" {
		switch _, err := s.repo.FindByEmail(ctx, in.Email); {
		case err == nil:
			errs.Add("email", "email already in use")
		case !errors.Is(err, domain.ErrAccountNotFound):
			return nil, fmt.Errorf("register: check email: %w", err)
		}
	}
	if in.Phone != "" {
		switch _, err := s.repo.FindByPhone(ctx, in.Phone); {
		case err == nil:
			errs.Add("phone", "phone already in use")
		case !errors.Is(err, domain.ErrAccountNotFound):
			return nil, fmt.Errorf("register: check phone: %w", err)
		}
	}
	if err := errs.AsError(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	code := generateOTP()
	if err := s.mailer.Send(ctx, in.Email, confirmSubject, confirmBody(code)); err != nil {
		s.log.Error().Err(err).Str("email", in.Email).Msg("failed to send confirmation otp")
		return nil, fmt.Errorf("register: send otp: %w", err)
	}

	now := time.Now().UTC()
	account := &domain.Account{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		Postcode:     in.Postcode,
		Designation:  in.Designation,
		IsConfirmed:  false,
		IsActive:     true,
		ConfirmOTP:   code,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		// The unique index is the authoritative uniqueness guard; two
		// concurrent registrations can both pass the pre-check above.
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Msg("account registered")
	return created, nil
}

// Login authenticates an account. Unknown email and wrong password collapse
// into the same error so the endpoint does not leak which addresses exist.
// The confirmation check runs before the activity check; that ordering is
// part of the contract.
func (s *AccountService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	var errs domain.FieldErrors
	errs.Check(domain.Required("email", email))
	errs.Check(domain.ValidEmail("email", email))
	errs.Check(domain.Required("password", password))
	if err := errs.AsError(); err != nil {
		return nil, err
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrEmailOrPasswordWrong
		}
		return nil, fmt.Errorf("login: find account: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrEmailOrPasswordWrong
	}

	if !account.IsConfirmed {
		return nil, domain.ErrAccountNotConfirmed
	}
	if !account.IsActive {
		return nil, domain.ErrAccountNotActive
	}

	code := generateOTP()
	if err := s.mailer.Send(ctx, account.Email, loginSubject, loginBody(code)); err != nil {
		s.log.Error().Err(err).Str("email", account.Email).Msg("failed to send login otp")
		return nil, fmt.Errorf("login: send otp: %w", err)
	}

	confirmed := true
	if err := s.repo.UpdateByEmail(ctx, account.Email, domain.AccountUpdate{
		ConfirmOTP:  &code,
		IsConfirmed: &confirmed,
	}); err != nil {
		return nil, fmt.Errorf("login: store otp: %w", err)
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	s.log.Info().Str("email", account.Email).Msg("account logged in")
	return &ports.AuthResult{
		ID:        account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Token:     token,
	}, nil
}

// VerifyConfirm consumes the stored OTP. On a match the account becomes
// confirmed, the code is cleared and a session token is issued. Mismatches
// are not counted against any limit; otp_tries exists on the document but no
// lockout policy is defined.
func (s *AccountService) VerifyConfirm(ctx context.Context, email, otp string) (*ports.AuthResult, error) {
	var errs domain.FieldErrors
	errs.Check(domain.Required("email", email))
	errs.Check(domain.Required("otp", otp))
	if err := errs.AsError(); err != nil {
		return nil, err
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrEmailNotFound
		}
		return nil, fmt.Errorf("verify confirm: find account: %w", err)
	}

	if account.ConfirmOTP == "" || account.ConfirmOTP != otp {
		return nil, domain.ErrOTPMismatch
	}

	confirmed := true
	cleared := ""
	if err := s.repo.UpdateByEmail(ctx, account.Email, domain.AccountUpdate{
		IsConfirmed: &confirmed,
		ConfirmOTP:  &cleared,
	}); err != nil {
		return nil, fmt.Errorf("verify confirm: update account: %w", err)
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		return nil, fmt.Errorf("verify confirm: issue token: %w", err)
	}

	s.log.Info().Str("email", account.Email).Msg("account confirmed")
	return &ports.AuthResult{
		ID:        account.ID,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Token:     token,
	}, nil
}

// ResendConfirmOTP regenerates and re-sends the confirmation code. The
// regeneration is unconditional: an already-confirmed account is flipped back
// to unconfirmed. Inherited behavior, kept as-is.
func (s *AccountService) ResendConfirmOTP(ctx context.Context, email string) error {
	var errs domain.FieldErrors
	errs.Check(domain.Required("email", email))
	errs.Check(domain.ValidEmail("email", email))
	if err := errs.AsError(); err != nil {
		return err
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.ErrEmailNotFound
		}
		return fmt.Errorf("resend otp: find account: %w", err)
	}

	code := generateOTP()
	if err := s.mailer.Send(ctx, account.Email, confirmSubject, confirmBody(code)); err != nil {
		s.log.Error().Err(err).Str("email", account.Email).Msg("failed to resend confirmation otp")
		return fmt.Errorf("resend otp: send otp: %w", err)
	}

	unconfirmed := false
	if err := s.repo.UpdateByEmail(ctx, account.Email, domain.AccountUpdate{
		ConfirmOTP:  &code,
		IsConfirmed: &unconfirmed,
	}); err != nil {
		return fmt.Errorf("resend otp: store otp: %w", err)
	}

	s.log.Info().Str("email", account.Email).Msg("confirmation otp resent")
	return nil
}
