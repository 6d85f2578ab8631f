package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zamreal/property-system/internal/core/domain"
)

// RBAC enforces role-based access control on a route group. An empty
// allowed set means any authenticated role passes.
func RBAC(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleClaim, _ := c.Get("role").(string)
			role := domain.Role(roleClaim)
			if !role.IsAuthorized(allowed...) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
