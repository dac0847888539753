package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/albumhub/album-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

type resolvedError struct {
	status  int
	code    string
	message string
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status and error code.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Attaches the raw error as detail only when debug is true.
func NewHTTPErrorHandler(log zerolog.Logger, debug bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		r := resolveError(err, log, c)
		resp := errorResponse{
			Success: false,
			Status:  "fail",
			Code:    r.code,
			Message: r.message,
		}
		if r.status >= http.StatusInternalServerError {
			resp.Status = "error"
		}
		if debug {
			resp.Detail = err.Error()
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(r.status)
			return
		}
		_ = c.JSON(r.status, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) resolvedError {
	// Echo's own errors (bind failures, unknown routes, body limit, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound && he.Message == http.StatusText(http.StatusNotFound) {
			return resolvedError{http.StatusNotFound, "ROUTE_NOT_FOUND", "route not found - " + c.Request().URL.Path}
		}
		return resolvedError{he.Code, httpCode(he.Code), fmt.Sprintf("%v", he.Message)}
	}

	// Order matters: token errors are more specific than ErrUnauthenticated.
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return resolvedError{http.StatusUnauthorized, "TOKEN_EXPIRED", "token expired"}
	case errors.Is(err, domain.ErrTokenMalformed):
		return resolvedError{http.StatusUnauthorized, "INVALID_TOKEN", "invalid token"}
	case errors.Is(err, domain.ErrUnauthenticated):
		return resolvedError{http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required"}
	case errors.Is(err, domain.ErrBadCredential):
		return resolvedError{http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"}
	case errors.Is(err, domain.ErrAccountDisabled):
		return resolvedError{http.StatusUnauthorized, "ACCOUNT_DISABLED", "account is disabled"}
	case errors.Is(err, domain.ErrForbidden):
		return resolvedError{http.StatusForbidden, "FORBIDDEN", "access forbidden"}
	case errors.Is(err, domain.ErrUserNotFound):
		return resolvedError{http.StatusNotFound, "USER_NOT_FOUND", "user not found"}
	case errors.Is(err, domain.ErrAlbumNotFound):
		return resolvedError{http.StatusNotFound, "ALBUM_NOT_FOUND", "album not found"}
	case errors.Is(err, domain.ErrPhotoNotFound):
		return resolvedError{http.StatusNotFound, "PHOTO_NOT_FOUND", "photo not found"}
	case errors.Is(err, domain.ErrNotFound):
		return resolvedError{http.StatusNotFound, "NOT_FOUND", "resource not found"}
	case errors.Is(err, domain.ErrIdentityConflict):
		return resolvedError{http.StatusConflict, "IDENTITY_CONFLICT", "username or email already in use"}
	case errors.Is(err, domain.ErrValidation):
		return resolvedError{http.StatusBadRequest, "VALIDATION_ERROR", err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return resolvedError{http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"}
}

func httpCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHENTICATED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	case http.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	}
	if status >= http.StatusInternalServerError {
		return "INTERNAL_ERROR"
	}
	return "REQUEST_FAILED"
}
