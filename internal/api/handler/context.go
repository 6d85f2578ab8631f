package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zamreal/property-system/internal/core/domain"
)

// ctxRole extracts the role claim injected by the Auth middleware and
// fast-fails before any service call: a non-empty role proves the
// middleware ran.
func ctxRole(c echo.Context) (domain.Role, error) {
	roleClaim, _ := c.Get("role").(string)
	if roleClaim == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Role(roleClaim), nil
}
