package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/albumhub/album-api/internal/core/domain"
	"github.com/albumhub/album-api/internal/core/ports"
	"github.com/albumhub/album-api/internal/pkg/metrics"
)

// identityKey is the echo context key holding the authenticated *domain.Identity.
const identityKey = "identity"

// Authenticate validates the bearer token and attaches the decoded identity
// to the request context. The account store is never consulted.
func Authenticate(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("bad_scheme").Inc()
				return domain.ErrUnauthenticated
			}

			identity, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				reason := "malformed"
				if errors.Is(err, domain.ErrTokenExpired) {
					reason = "expired"
				}
				metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
				return err
			}

			SetIdentity(c, identity)
			return next(c)
		}
	}
}

// SetIdentity attaches id to the request context.
func SetIdentity(c echo.Context, id *domain.Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the identity attached by Authenticate, or nil.
func IdentityFrom(c echo.Context) *domain.Identity {
	id, _ := c.Get(identityKey).(*domain.Identity)
	return id
}
