package http

import (
	"errors"
	"net/http"

	"warehouse/internal/core/application/session"
	"warehouse/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

func statusOf(err error) int {
	var validationErrs validator.ValidationErrors
	var httpErr *echo.HTTPError

	switch {
	case errors.As(err, &validationErrs),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrCredentialsAreInvalid),
		errors.Is(err, session.ErrLoginIsRequired):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, errs.ErrTransitionIsInvalid),
		errors.Is(err, session.ErrNoOrderIsOpen):
		return http.StatusConflict
	case errors.As(err, &httpErr):
		return httpErr.Code
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error response. Internal errors are logged and hidden from the client.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		s.logger.WithError(err).WithField("uri", ctx.Request().RequestURI).Error(message)
		return ctx.JSON(code, newError(code, message))
	}
	return ctx.JSON(code, newError(code, err.Error()))
}
