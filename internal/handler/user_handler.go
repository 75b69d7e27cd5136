package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/MohammedIhsaan28/Acquisition/internal/errors"
	"github.com/MohammedIhsaan28/Acquisition/internal/middleware"
	"github.com/MohammedIhsaan28/Acquisition/internal/model"
	"github.com/MohammedIhsaan28/Acquisition/internal/service"
)

// UserHandler handles user record endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// UpdateUserRequest represents a partial user update. Nil fields are ignored.
type UpdateUserRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role" validate:"omitempty,oneof=user admin"`
}

// UserListResponse wraps the user collection.
type UserListResponse struct {
	Message string             `json:"message"`
	Users   []model.PublicUser `json:"users"`
	Count   int                `json:"count"`
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {object} UserListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	public := model.PublicUsers(users)
	return c.JSON(http.StatusOK, UserListResponse{
		Message: "Successfully fetched users",
		Users:   public,
		Count:   len(public),
	})
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, httpErr := userIDParam(c)
	if httpErr != nil {
		return httpErr
	}
	if err := requireOwnershipOrAdmin(c, id, "you can only access your own user data"); err != nil {
		return err
	}

	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, UserResponse{
		Message: "User retrieved successfully",
		User:    user.Public(),
	})
}

// UpdateUser godoc
// @Summary Update user by id
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, httpErr := userIDParam(c)
	if httpErr != nil {
		return httpErr
	}
	if err := requireOwnershipOrAdmin(c, id, "you can only update your own user data"); err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_FAILED",
		})
	}

	// Only admins may change roles.
	if req.Role != nil {
		if identity, ok := middleware.CurrentIdentity(c); !ok || !identity.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
				Error: "only admins can change roles",
				Code:  "FORBIDDEN",
			})
		}
	}

	user, err := h.svc.UpdateUser(c.Request().Context(), id, service.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.Logger().Infof("user updated: %d (%s)", user.ID, user.Email)
	return c.JSON(http.StatusOK, UserResponse{
		Message: "User updated successfully",
		User:    user.Public(),
	})
}

// DeleteUser godoc
// @Summary Delete user by id
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, httpErr := userIDParam(c)
	if httpErr != nil {
		return httpErr
	}
	if err := requireOwnershipOrAdmin(c, id, "you can only delete your own user data"); err != nil {
		return err
	}

	user, err := h.svc.DeleteUser(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.Logger().Infof("user deleted: %d (%s)", user.ID, user.Email)
	return c.JSON(http.StatusOK, UserResponse{
		Message: "User deleted successfully",
		User:    user.Public(),
	})
}

func userIDParam(c echo.Context) (uint, *echo.HTTPError) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid user id",
			Code:  "VALIDATION_FAILED",
		})
	}
	return uint(id), nil
}

// requireOwnershipOrAdmin enforces the resource-level check: a non-admin
// identity may only touch its own record. Runs after authentication.
func requireOwnershipOrAdmin(c echo.Context, targetID uint, message string) error {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "authentication required",
			Code:  "UNAUTHORIZED",
		})
	}
	if !identity.IsAdmin() && identity.ID != targetID {
		c.Logger().Warnf("access denied: user %d (role %s) targeting user %d",
			identity.ID, identity.Role, targetID)
		return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
			Error: message,
			Code:  "FORBIDDEN",
		})
	}
	return nil
}
