package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gigstm/gigs-platform/internal/api/middleware"
	"github.com/gigstm/gigs-platform/internal/core/domain"
)

// ctxAccount extracts the account injected by the Auth middleware and fails
// fast before any service call when it is absent.
func ctxAccount(c echo.Context) (accountID, role string, err error) {
	accountID, _ = c.Get(middleware.KeyAccountID).(string)
	if accountID == "" {
		return "", "", domain.ErrUnauthorized
	}
	role, _ = c.Get(middleware.KeyRole).(string)
	return accountID, role, nil
}
