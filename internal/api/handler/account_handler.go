package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velora/storefront-admin/internal/api/metrics"
	"github.com/velora/storefront-admin/internal/core/domain"
	"github.com/velora/storefront-admin/internal/core/ports"
)

// AccountHandler exposes the admin-account auth flows.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type registerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Postcode    string `json:"postcode"`
	Designation string `json:"designation"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyConfirmRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type resendOTPRequest struct {
	Email string `json:"email"`
}

// Register creates a new admin account and emails a confirmation OTP.
//
// @Summary      Register an admin account
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  Envelope
// @Failure      422   {object}  Envelope
// @Failure      500   {object}  Envelope
// @Router       /v1/account/register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	account, err := h.accounts.Register(c.Request().Context(), ports.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Postcode:    req.Postcode,
		Designation: req.Designation,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	metrics.OTPEmailsSentTotal.WithLabelValues("confirm").Inc()
	return respond(c, http.StatusCreated, "Account registered, please confirm via the OTP sent to your email", account)
}

// Login authenticates an account and returns a session token.
//
// @Summary      Login
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Failure      422   {object}  Envelope
// @Router       /v1/account/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailOrPasswordWrong) ||
			errors.Is(err, domain.ErrAccountNotConfirmed) ||
			errors.Is(err, domain.ErrAccountNotActive) {
			metrics.LoginsTotal.WithLabelValues("unauthorized").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.OTPEmailsSentTotal.WithLabelValues("login").Inc()
	return respond(c, http.StatusOK, "Login successful", result)
}

// VerifyConfirm consumes a confirmation OTP and returns a session token.
//
// @Summary      Verify account confirmation OTP
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      verifyConfirmRequest  true  "Email and OTP"
// @Success      200   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Failure      422   {object}  Envelope
// @Router       /v1/account/verify-confirm [post]
func (h *AccountHandler) VerifyConfirm(c echo.Context) error {
	var req verifyConfirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.accounts.VerifyConfirm(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		if errors.Is(err, domain.ErrOTPMismatch) {
			metrics.OTPVerificationsTotal.WithLabelValues("mismatch").Inc()
		}
		return err
	}

	metrics.OTPVerificationsTotal.WithLabelValues("success").Inc()
	return respond(c, http.StatusOK, "Account confirmed", result)
}

// ResendConfirmOTP regenerates and re-sends the confirmation OTP.
//
// @Summary      Resend confirmation OTP
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        body  body      resendOTPRequest  true  "Email"
// @Success      200   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Failure      422   {object}  Envelope
// @Router       /v1/account/resend-confirm-otp [post]
func (h *AccountHandler) ResendConfirmOTP(c echo.Context) error {
	var req resendOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.accounts.ResendConfirmOTP(c.Request().Context(), req.Email); err != nil {
		return err
	}

	metrics.OTPEmailsSentTotal.WithLabelValues("resend").Inc()
	return respond(c, http.StatusOK, "Confirmation OTP resent", nil)
}
