package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gigstm/gigs-platform/internal/core/domain"
	"github.com/gigstm/gigs-platform/internal/core/ports"
)

type GigHandler struct {
	service ports.GigService
}

func NewGigHandler(service ports.GigService) *GigHandler {
	return &GigHandler{service: service}
}

func gigFilter(c echo.Context) ports.GigFilter {
	return ports.GigFilter{
		Status:   domain.GigStatus(c.QueryParam("status")),
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
}

// ListPublished handles GET /v1/gigs.
//
// @Summary      Published gigs
// @Tags         gigs
// @Produce      json
// @Param        category  query     string  false  "Exact category"
// @Param        search    query     string  false  "Substring of title or description"
// @Success      200       {array}   domain.Gig
// @Router       /v1/gigs [get]
func (h *GigHandler) ListPublished(c echo.Context) error {
	f := gigFilter(c)
	f.Status = ""
	gigs, err := h.service.ListPublished(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gigs)
}

// GetPublished handles GET /v1/gigs/:id.
//
// @Summary      One published gig
// @Tags         gigs
// @Produce      json
// @Param        id   path      string  true  "Gig id"
// @Success      200  {object}  domain.Gig
// @Failure      404  {object}  errorResponse
// @Router       /v1/gigs/{id} [get]
func (h *GigHandler) GetPublished(c echo.Context) error {
	g, err := h.service.GetPublished(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, g)
}

// Apply handles POST /v1/gigs/:id/apply. Only accounts whose onboarding gate
// is open may apply.
//
// @Summary      Apply to a gig
// @Tags         gigs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Gig id"
// @Param        body  body      applyRequest  true  "Applicant contact sheet"
// @Success      201   {object}  domain.GigApplication
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/gigs/{id}/apply [post]
func (h *GigHandler) Apply(c echo.Context) error {
	accountID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}
	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	app, err := h.service.Apply(c.Request().Context(), accountID, c.Param("id"), toApplyInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, app)
}

// MyApplications handles GET /v1/me/applications.
//
// @Summary      The caller's gig applications
// @Tags         gigs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.GigApplication
// @Router       /v1/me/applications [get]
func (h *GigHandler) MyApplications(c echo.Context) error {
	accountID, _, err := ctxAccount(c)
	if err != nil {
		return err
	}
	apps, err := h.service.MyApplications(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// --- Admin ---

// Create handles POST /v1/admin/gigs.
//
// @Summary      Create a gig
// @Tags         admin-gigs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      gigRequest  true  "Gig"
// @Success      201   {object}  domain.Gig
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/gigs [post]
func (h *GigHandler) Create(c echo.Context) error {
	var req gigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	g, err := h.service.Create(c.Request().Context(), toGigInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, g)
}

// Update handles PATCH /v1/admin/gigs/:id. Absent fields are kept.
//
// @Summary      Update a gig
// @Tags         admin-gigs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Gig id"
// @Param        body  body      gigRequest  true  "Fields to change"
// @Success      200   {object}  domain.Gig
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/gigs/{id} [patch]
func (h *GigHandler) Update(c echo.Context) error {
	var req gigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	g, err := h.service.Update(c.Request().Context(), c.Param("id"), toGigInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, g)
}

// Delete handles DELETE /v1/admin/gigs/:id.
//
// @Summary      Delete a gig and its applications
// @Tags         admin-gigs
// @Security     BearerAuth
// @Param        id  path  string  true  "Gig id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/gigs/{id} [delete]
func (h *GigHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List handles GET /v1/admin/gigs.
//
// @Summary      All gigs including drafts
// @Tags         admin-gigs
// @Produce      json
// @Security     BearerAuth
// @Param        status    query    string  false  "Draft or Published"
// @Param        category  query    string  false  "Exact category"
// @Param        search    query    string  false  "Substring of title or description"
// @Success      200       {array}  domain.Gig
// @Router       /v1/admin/gigs [get]
func (h *GigHandler) List(c echo.Context) error {
	f := gigFilter(c)
	if f.Status != "" {
		if _, err := domain.ParseGigStatus(string(f.Status)); err != nil {
			return err
		}
	}
	gigs, err := h.service.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gigs)
}

// Get handles GET /v1/admin/gigs/:id.
//
// @Summary      One gig with internal fields
// @Tags         admin-gigs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Gig id"
// @Success      200  {object}  domain.Gig
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/gigs/{id} [get]
func (h *GigHandler) Get(c echo.Context) error {
	g, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, g)
}

// ListApplications handles GET /v1/admin/gigs/:id/applications.
//
// @Summary      Applications to a gig
// @Tags         admin-gigs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Gig id"
// @Success      200  {array}  domain.GigApplication
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/gigs/{id}/applications [get]
func (h *GigHandler) ListApplications(c echo.Context) error {
	apps, err := h.service.ListApplications(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}

// UpdateApplicationStatus handles PATCH /v1/admin/applications/:id.
//
// @Summary      Move an application to another status
// @Tags         admin-gigs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Application id"
// @Param        body  body      applicationStatusRequest  true  "New status"
// @Success      200   {object}  domain.GigApplication
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/applications/{id} [patch]
func (h *GigHandler) UpdateApplicationStatus(c echo.Context) error {
	var req applicationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	app, err := h.service.UpdateApplicationStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}
