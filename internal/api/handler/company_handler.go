package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/planwise/scheduling-api/internal/core/ports"
)

type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

type companyRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
}

// List handles GET /v1/companies.
//
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Company
// @Router       /v1/companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	companies, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companies)
}

// Get handles GET /v1/companies/:id.
//
// @Summary      Get a company by id
// @Tags         companies
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Company id"
// @Success      200  {object}  domain.Company
// @Failure      404  {object}  map[string]string
// @Router       /v1/companies/{id} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// Create handles POST /v1/companies. Requires the super_admin role.
//
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      companyRequest  true  "Company details"
// @Success      201   {object}  domain.Company
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/companies [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	company, err := h.service.Create(c.Request().Context(), ports.CompanyInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, company)
}

// Update handles PUT /v1/companies/:id. Requires the super_admin role.
//
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Company id"
// @Param        body  body      companyRequest  true  "Fields to update"
// @Success      200   {object}  domain.Company
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/companies/{id} [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	company, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.CompanyInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// Delete handles DELETE /v1/companies/:id. Requires the super_admin role.
//
// @Summary      Delete a company
// @Tags         companies
// @Security     BearerAuth
// @Param        id  path  string  true  "Company id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/companies/{id} [delete]
func (h *CompanyHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddUser handles POST /v1/companies/:id/users/:user_id.
//
// @Summary      Add a user to a company
// @Tags         companies
// @Security     BearerAuth
// @Param        id       path  string  true  "Company id"
// @Param        user_id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/companies/{id}/users/{user_id} [post]
func (h *CompanyHandler) AddUser(c echo.Context) error {
	if err := h.service.AddUser(c.Request().Context(), c.Param("id"), c.Param("user_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveUser handles DELETE /v1/companies/:id/users/:user_id.
//
// @Summary      Remove a user from a company
// @Tags         companies
// @Security     BearerAuth
// @Param        id       path  string  true  "Company id"
// @Param        user_id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/companies/{id}/users/{user_id} [delete]
func (h *CompanyHandler) RemoveUser(c echo.Context) error {
	if err := h.service.RemoveUser(c.Request().Context(), c.Param("id"), c.Param("user_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AddActivity handles POST /v1/companies/:id/activities/:activity_id.
//
// @Summary      Add an activity to a company
// @Tags         companies
// @Security     BearerAuth
// @Param        id           path  string  true  "Company id"
// @Param        activity_id  path  string  true  "Activity id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/companies/{id}/activities/{activity_id} [post]
func (h *CompanyHandler) AddActivity(c echo.Context) error {
	if err := h.service.AddActivity(c.Request().Context(), c.Param("id"), c.Param("activity_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// RemoveActivity handles DELETE /v1/companies/:id/activities/:activity_id.
//
// @Summary      Remove an activity from a company
// @Tags         companies
// @Security     BearerAuth
// @Param        id           path  string  true  "Company id"
// @Param        activity_id  path  string  true  "Activity id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/companies/{id}/activities/{activity_id} [delete]
func (h *CompanyHandler) RemoveActivity(c echo.Context) error {
	if err := h.service.RemoveActivity(c.Request().Context(), c.Param("id"), c.Param("activity_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
