package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Roles recognized by the back office. Admins can do everything an editor
// can, plus destructive operations (deletes, bulk operations, settings).
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// RoleMiddleware restricts a route to users holding the required role.
// Admins always pass.
func RoleMiddleware(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)

			if role == RoleAdmin {
				return next(c)
			}
			if role != requiredRole {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "access denied"})
			}

			return next(c)
		}
	}
}
