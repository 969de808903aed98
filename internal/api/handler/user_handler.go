package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/projecthub/internal/core/ports"
)

// UserHandler handles user management endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List handles GET /users — all active users.
//
// @Summary      List active users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersEnvelope
// @Failure      401  {object}  baseResponse
// @Failure      403  {object}  baseResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, usersEnvelope{
		baseResponse: ok("All Users"),
		CountTotal:   len(users),
		Users:        toUserResponses(users),
	})
}

// Get handles GET /users/:id — one active user.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userEnvelope
// @Failure      401  {object}  baseResponse
// @Failure      404  {object}  baseResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userEnvelope{
		baseResponse: ok("User Found"),
		User:         toUserResponse(user),
	})
}

// Update handles PUT /users/:id.
//
// @Summary      Update user fields
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  userEnvelope
// @Failure      400   {object}  baseResponse
// @Failure      404   {object}  baseResponse
// @Failure      409   {object}  baseResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), toUserUpdateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userEnvelope{
		baseResponse: ok("User details updated successfully"),
		User:         toUserResponse(user),
	})
}

// SoftDelete handles DELETE /users/:id.
//
// @Summary      Soft-delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userEnvelope
// @Failure      404  {object}  baseResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) SoftDelete(c echo.Context) error {
	user, err := h.service.SoftDelete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userEnvelope{
		baseResponse: ok("User soft deleted successfully"),
		User:         toUserResponse(user),
	})
}

// PermanentDelete handles DELETE /users/permanent/:id. Only legal for a user
// that is already soft-deleted.
//
// @Summary      Permanently delete a soft-deleted user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  baseResponse
// @Failure      404  {object}  baseResponse
// @Router       /users/permanent/{id} [delete]
func (h *UserHandler) PermanentDelete(c echo.Context) error {
	if err := h.service.PermanentDelete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ok("User permanently deleted successfully"))
}

// Restore handles PATCH /users/restore/:id.
//
// @Summary      Restore a soft-deleted user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userEnvelope
// @Failure      404  {object}  baseResponse
// @Router       /users/restore/{id} [patch]
func (h *UserHandler) Restore(c echo.Context) error {
	user, err := h.service.Restore(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userEnvelope{
		baseResponse: ok("User restored successfully"),
		User:         toUserResponse(user),
	})
}

// AssignRole handles POST /users/:id/assign-role.
//
// @Summary      Assign a role to a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      assignRoleRequest  true  "Role to assign"
// @Success      200   {object}  userEnvelope
// @Failure      400   {object}  baseResponse
// @Failure      404   {object}  baseResponse
// @Router       /users/{id}/assign-role [post]
func (h *UserHandler) AssignRole(c echo.Context) error {
	var req assignRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.AssignRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userEnvelope{
		baseResponse: ok("Role assigned successfully"),
		User:         toUserResponse(user),
	})
}

// RevokeRole handles POST /users/:id/revoke-role — resets to Employee.
//
// @Summary      Revoke a user's role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userEnvelope
// @Failure      404  {object}  baseResponse
// @Router       /users/{id}/revoke-role [post]
func (h *UserHandler) RevokeRole(c echo.Context) error {
	user, err := h.service.RevokeRole(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userEnvelope{
		baseResponse: ok("Role revoked successfully"),
		User:         toUserResponse(user),
	})
}
