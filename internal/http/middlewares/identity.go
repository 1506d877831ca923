package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Identity reads the authenticated caller the gateway forwards on every
// request. Authentication itself happens upstream; this only rejects
// requests that arrive without an identity.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := c.Request().Header.Get("X-User-Id")
			role := c.Request().Header.Get("X-User-Role")
			if userID == "" || role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing identity")
			}

			c.Set("user_id", userID)
			c.Set("role", role)
			return next(c)
		}
	}
}

// RequireRoles ensures the caller's role is one of the allowed roles.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			for _, r := range roles {
				if role == r {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "access denied")
		}
	}
}
