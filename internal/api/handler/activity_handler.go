package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planwise/scheduling-api/internal/core/ports"
)

type ActivityHandler struct {
	service ports.ActivityService
}

func NewActivityHandler(service ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

type activityRequest struct {
	Day   string `json:"day" validate:"required"`
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
	Label string `json:"label,omitempty"`
}

// List handles GET /v1/activities.
//
// @Summary      List activities
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Activity
// @Router       /v1/activities [get]
func (h *ActivityHandler) List(c echo.Context) error {
	activities, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activities)
}

// Get handles GET /v1/activities/:id.
//
// @Summary      Get an activity by id
// @Tags         activities
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Activity id"
// @Success      200  {object}  domain.Activity
// @Failure      404  {object}  map[string]string
// @Router       /v1/activities/{id} [get]
func (h *ActivityHandler) Get(c echo.Context) error {
	activity, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activity)
}

// Create handles POST /v1/activities. Requires admin or super_admin.
//
// @Summary      Create an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      activityRequest  true  "Activity details"
// @Success      201   {object}  domain.Activity
// @Failure      403   {object}  map[string]string
// @Router       /v1/activities [post]
func (h *ActivityHandler) Create(c echo.Context) error {
	var req activityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	activity, err := h.service.Create(c.Request().Context(), ports.ActivityInput{
		Day:   req.Day,
		Start: req.Start,
		End:   req.End,
		Label: req.Label,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, activity)
}

// Update handles PUT /v1/activities/:id. Requires admin or super_admin.
//
// @Summary      Update an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Activity id"
// @Param        body  body      activityRequest  true  "Fields to update"
// @Success      200   {object}  domain.Activity
// @Failure      404   {object}  map[string]string
// @Router       /v1/activities/{id} [put]
func (h *ActivityHandler) Update(c echo.Context) error {
	var req activityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	activity, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ActivityInput{
		Day:   req.Day,
		Start: req.Start,
		End:   req.End,
		Label: req.Label,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, activity)
}

// Delete handles DELETE /v1/activities/:id. Requires admin or super_admin.
//
// @Summary      Delete an activity
// @Tags         activities
// @Security     BearerAuth
// @Param        id  path  string  true  "Activity id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/activities/{id} [delete]
func (h *ActivityHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
