package http

import (
	"errors"
	"log/slog"
	"net/http"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrForbidden is returned when the acting role may not use a view.
var ErrForbidden = errors.New("forbidden")

// Error is the JSON body of every error response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFor maps the engine's error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, order.ErrInvalidStatus):
		return http.StatusUnprocessableEntity
	case errs.IsNotFound(err):
		return http.StatusNotFound
	case errs.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, logger *slog.Logger, err error) error {
	code := statusFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		message = http.StatusText(code)
	}

	return c.JSON(code, Error{Code: code, Message: message})
}
