package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planwise/scheduling-api/internal/core/ports"
)

type PlanningHandler struct {
	service ports.PlanningService
}

func NewPlanningHandler(service ports.PlanningService) *PlanningHandler {
	return &PlanningHandler{service: service}
}

type planningRequest struct {
	Name      string `json:"name" validate:"required"`
	CompanyID string `json:"company_id,omitempty"`
}

// List handles GET /v1/plannings.
//
// @Summary      List plannings
// @Tags         plannings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Planning
// @Router       /v1/plannings [get]
func (h *PlanningHandler) List(c echo.Context) error {
	plannings, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plannings)
}

// Get handles GET /v1/plannings/:id.
//
// @Summary      Get a planning by id
// @Tags         plannings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Planning id"
// @Success      200  {object}  domain.Planning
// @Failure      404  {object}  map[string]string
// @Router       /v1/plannings/{id} [get]
func (h *PlanningHandler) Get(c echo.Context) error {
	planning, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, planning)
}

// Create handles POST /v1/plannings. Requires admin or super_admin.
//
// @Summary      Create a planning
// @Tags         plannings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      planningRequest  true  "Planning details"
// @Success      201   {object}  domain.Planning
// @Failure      403   {object}  map[string]string
// @Router       /v1/plannings [post]
func (h *PlanningHandler) Create(c echo.Context) error {
	var req planningRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	planning, err := h.service.Create(c.Request().Context(), ports.PlanningInput{
		Name:      req.Name,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, planning)
}

// Update handles PUT /v1/plannings/:id. Requires admin or super_admin.
//
// @Summary      Update a planning
// @Tags         plannings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Planning id"
// @Param        body  body      planningRequest  true  "Fields to update"
// @Success      200   {object}  domain.Planning
// @Failure      404   {object}  map[string]string
// @Router       /v1/plannings/{id} [put]
func (h *PlanningHandler) Update(c echo.Context) error {
	var req planningRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	planning, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.PlanningInput{
		Name:      req.Name,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, planning)
}

// Delete handles DELETE /v1/plannings/:id. Requires admin or super_admin.
//
// @Summary      Delete a planning
// @Tags         plannings
// @Security     BearerAuth
// @Param        id  path  string  true  "Planning id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/plannings/{id} [delete]
func (h *PlanningHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddActivity handles POST /v1/plannings/:id/activities/:activity_id.
//
// @Summary      Add an activity to a planning
// @Tags         plannings
// @Security     BearerAuth
// @Param        id           path  string  true  "Planning id"
// @Param        activity_id  path  string  true  "Activity id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/plannings/{id}/activities/{activity_id} [post]
func (h *PlanningHandler) AddActivity(c echo.Context) error {
	if err := h.service.AddActivity(c.Request().Context(), c.Param("id"), c.Param("activity_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveActivity handles DELETE /v1/plannings/:id/activities/:activity_id.
//
// @Summary      Remove an activity from a planning
// @Tags         plannings
// @Security     BearerAuth
// @Param        id           path  string  true  "Planning id"
// @Param        activity_id  path  string  true  "Activity id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/plannings/{id}/activities/{activity_id} [delete]
func (h *PlanningHandler) RemoveActivity(c echo.Context) error {
	if err := h.service.RemoveActivity(c.Request().Context(), c.Param("id"), c.Param("activity_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
