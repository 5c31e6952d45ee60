package middleware

import (
	"fmt"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/gigstm/gigs-platform/internal/core/domain"
)

// RBAC admits requests whose token role is one of roles. It must run after
// Auth; a request without a role is treated as unauthenticated.
func RBAC(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(KeyRole).(string)
			if role == "" {
				return domain.ErrUnauthorized
			}
			if !slices.Contains(roles, role) {
				return fmt.Errorf("%w: role %q", domain.ErrForbidden, role)
			}
			return next(c)
		}
	}
}
