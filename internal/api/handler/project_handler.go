package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/projecthub/internal/core/ports"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create handles POST /projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  projectEnvelope
// @Failure      400   {object}  baseResponse
// @Failure      403   {object}  baseResponse
// @Failure      409   {object}  baseResponse
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	creator, err := callerID(c)
	if err != nil {
		return err
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   creator,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, projectEnvelope{
		baseResponse: ok("Project created successfully"),
		Project:      toProjectResponse(project),
	})
}

// List handles GET /projects — all active projects, any authenticated role.
//
// @Summary      List active projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  projectsEnvelope
// @Failure      401  {object}  baseResponse
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectsEnvelope{
		baseResponse: ok("Projects retrieved successfully"),
		CountTotal:   len(projects),
		Projects:     toProjectResponses(projects),
	})
}

// Get handles GET /projects/:id.
//
// @Summary      Get a project by id
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  projectEnvelope
// @Failure      404  {object}  baseResponse
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectEnvelope{
		baseResponse: ok("Project fetched successfully"),
		Project:      toProjectResponse(project),
	})
}

// Update handles PUT /projects/:id. A supplied assignee set replaces the
// stored one in full.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  projectEnvelope
// @Failure      400   {object}  baseResponse
// @Failure      404   {object}  baseResponse
// @Failure      409   {object}  baseResponse
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectEnvelope{
		baseResponse: ok("Project updated successfully"),
		Project:      toProjectResponse(project),
	})
}

// SoftDelete handles DELETE /projects/:id.
//
// @Summary      Soft-delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  projectEnvelope
// @Failure      404  {object}  baseResponse
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) SoftDelete(c echo.Context) error {
	project, err := h.service.SoftDelete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectEnvelope{
		baseResponse: ok("Project soft deleted successfully"),
		Project:      toProjectResponse(project),
	})
}

// PermanentDelete handles DELETE /projects/permanent/:id. Only legal for a
// project that is already soft-deleted.
//
// @Summary      Permanently delete a soft-deleted project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  baseResponse
// @Failure      404  {object}  baseResponse
// @Router       /projects/permanent/{id} [delete]
func (h *ProjectHandler) PermanentDelete(c echo.Context) error {
	if err := h.service.PermanentDelete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ok("Project permanently deleted successfully"))
}

// Restore handles PATCH /projects/restore/:id.
//
// @Summary      Restore a soft-deleted project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  projectEnvelope
// @Failure      404  {object}  baseResponse
// @Router       /projects/restore/{id} [patch]
func (h *ProjectHandler) Restore(c echo.Context) error {
	project, err := h.service.Restore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectEnvelope{
		baseResponse: ok("Project restored successfully"),
		Project:      toProjectResponse(project),
	})
}
