package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/storefront/core/internal/domain/entities"
	"github.com/storefront/core/internal/infrastructure/logger"
	"github.com/storefront/core/internal/ports"
)

// UserHandler handles user-related requests
type UserHandler struct {
	userService ports.UserService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService ports.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// ListUsers handles listing all users
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		h.logger.Error("List users failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorResponse("Failed to retrieve users"))
	}

	return c.JSON(http.StatusOK, listResponse(users, len(users)))
}

// GetUser handles getting a user by id
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse("User not found"))
	}

	user, err := h.userService.GetUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse("User not found"))
		}
		h.logger.Error("Get user failed", "error", err, "user_id", id)
		return c.JSON(http.StatusInternalServerError, errorResponse("Failed to retrieve user"))
	}

	return c.JSON(http.StatusOK, Response{Success: true, Data: user})
}
