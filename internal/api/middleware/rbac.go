package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/projecthub/internal/core/domain"
)

// RBAC enforces role-based access control. The policies used by the router
// are AdminOnly, AdminOrManager, and (by omitting RBAC) any authenticated.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(domain.Role)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
