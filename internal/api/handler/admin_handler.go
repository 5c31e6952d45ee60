package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gigstm/gigs-platform/internal/core/ports"
)

// AdminHandler exposes the moderation and aggregation endpoints.
type AdminHandler struct {
	service ports.AdminService
	log     zerolog.Logger
}

func NewAdminHandler(service ports.AdminService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{service: service, log: log}
}

// ListAccounts handles GET /v1/admin/accounts.
//
// @Summary      Accounts joined with their onboarding records
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Page, from 1"
// @Param        limit   query     int     false  "Page size, 1 to 100"
// @Param        search  query     string  false  "Case-insensitive substring"
// @Success      200     {object}  domain.CombinedPage
// @Failure      403     {object}  errorResponse
// @Router       /v1/admin/accounts [get]
func (h *AdminHandler) ListAccounts(c echo.Context) error {
	page, err := intQuery(c, "page")
	if err != nil {
		return err
	}
	limit, err := intQuery(c, "limit")
	if err != nil {
		return err
	}

	result, err := h.service.ListCombined(c.Request().Context(), page, limit, c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// ExportAccounts handles GET /v1/admin/accounts/export.
//
// @Summary      CSV export of the aggregation view
// @Tags         admin
// @Produce      text/csv
// @Security     BearerAuth
// @Param        search  query  string  false  "Case-insensitive substring"
// @Success      200
// @Router       /v1/admin/accounts/export [get]
func (h *AdminHandler) ExportAccounts(c echo.Context) error {
	filename := fmt.Sprintf("onboarding-%s.csv", time.Now().UTC().Format("20060102-150405"))

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	res.WriteHeader(http.StatusOK)

	// Rows are streamed; a failure past this point can only truncate the file.
	if err := h.service.ExportCSV(c.Request().Context(), c.QueryParam("search"), res); err != nil {
		h.log.Error().Err(err).Msg("csv export aborted")
		return err
	}
	return nil
}

// SetStatus handles PATCH /v1/admin/accounts/:external_id.
//
// @Summary      Approve or disapprove an account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        external_id  path      string            true  "Unique id, e.g. GIG1234567"
// @Param        body         body      setStatusRequest  true  "New status"
// @Success      200          {object}  domain.AccountSummary
// @Failure      404          {object}  errorResponse
// @Failure      422          {object}  errorResponse
// @Router       /v1/admin/accounts/{external_id} [patch]
func (h *AdminHandler) SetStatus(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.service.SetStatus(c.Request().Context(), c.Param("external_id"), req.Status, req.FeedbackMessage)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account.Summary())
}

// DeleteAccount handles DELETE /v1/admin/accounts/:external_id.
//
// @Summary      Delete an account and its onboarding records
// @Tags         admin
// @Security     BearerAuth
// @Param        external_id  path  string  true  "Unique id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/accounts/{external_id} [delete]
func (h *AdminHandler) DeleteAccount(c echo.Context) error {
	if err := h.service.DeleteAccount(c.Request().Context(), c.Param("external_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// intQuery parses an optional integer query parameter; absent means 0.
func intQuery(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return n, nil
}
