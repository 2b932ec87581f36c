package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/velora/storefront-admin/internal/api/handler"
	"github.com/velora/storefront-admin/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the normalized envelope {success:false, message, data}.
//
// ValidationError additionally carries the full field list in data, so a
// caller always sees every violation together.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, data := resolveError(err, log, c)
		_ = c.JSON(code, handler.Envelope{Success: false, Message: msg, Data: data})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, any) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	// Accumulated field violations → one envelope carrying them all.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, ve.Error(), ve.Fields
	}

	// Known domain errors → deterministic HTTP codes. The login-path errors
	// keep their deliberately generic wording.
	switch {
	case errors.Is(err, domain.ErrEmailOrPasswordWrong):
		return http.StatusUnauthorized, "Email or Password wrong", nil
	case errors.Is(err, domain.ErrAccountNotConfirmed):
		return http.StatusUnauthorized, "Account not confirmed", nil
	case errors.Is(err, domain.ErrAccountNotActive):
		return http.StatusUnauthorized, "Account is not active", nil
	case errors.Is(err, domain.ErrEmailNotFound):
		return http.StatusUnauthorized, "Email not found", nil
	case errors.Is(err, domain.ErrOTPMismatch):
		return http.StatusUnauthorized, "OTP does not match", nil
	case errors.Is(err, domain.ErrAccountExists):
		return http.StatusConflict, "Account already exists", nil
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "Account not found", nil
	case errors.Is(err, domain.ErrCategoryNotFound):
		return http.StatusNotFound, "Category not found", nil
	case errors.Is(err, domain.ErrSubCategoryNotFound):
		return http.StatusNotFound, "Sub-category not found", nil
	case errors.Is(err, domain.ErrCarouselNotFound):
		return http.StatusNotFound, "Carousel not found", nil
	case errors.Is(err, domain.ErrPostcodeNotFound):
		return http.StatusNotFound, "Postcode not found", nil
	case errors.Is(err, domain.ErrPostcodeExists):
		return http.StatusConflict, "Postcode already exists", nil
	case errors.Is(err, domain.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found", nil
	case errors.Is(err, domain.ErrInvalidOrderTransition):
		return http.StatusUnprocessableEntity, err.Error(), nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error", nil
}
