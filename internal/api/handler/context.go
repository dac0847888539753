package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/albumhub/album-api/internal/api/middleware"
	"github.com/albumhub/album-api/internal/core/domain"
)

// ctxIdentity returns the identity injected by the Authenticate middleware.
// Its absence on a protected route means the route was wired without the
// middleware, so the request is rejected as unauthenticated.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	id := middleware.IdentityFrom(c)
	if id == nil || id.SubjectID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return id, nil
}

// bindAndValidate binds path, query and body values into req and validates it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
