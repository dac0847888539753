package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/albumhub/album-api/internal/core/domain"
)

// RequireRoles enforces role-based access control. With no roles, any
// authenticated identity passes.
func RequireRoles(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	policy := domain.RolePolicy(allowedRoles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := policy.Evaluate(IdentityFrom(c)); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// RequireSelfOrAdmin lets the request through when the path parameter param
// names the caller's own account, or the caller is an admin.
func RequireSelfOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := domain.SameSubjectOrAdmin(IdentityFrom(c), c.Param(param)); err != nil {
				return err
			}
			return next(c)
		}
	}
}
