package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movieweb/internal/repository"
)

// UserHandler bundles the repositories needed for user management.
type UserHandler struct {
	Users *repository.UserRepo
}

// NewUserHandler constructs a UserHandler and panics if the dependency is nil.
func NewUserHandler(users *repository.UserRepo) *UserHandler {
	if users == nil {
		panic("nil repository passed to NewUserHandler")
	}
	return &UserHandler{Users: users}
}

// ListUsers handles GET / and returns all users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

// CreateUser handles POST /users. An empty name is rejected with 400; on
// success the client is redirected back to the user listing.
func (h *UserHandler) CreateUser(c echo.Context) error {
	name := c.FormValue("name")
	if _, err := h.Users.Create(c.Request().Context(), name); err != nil {
		if errors.Is(err, repository.ErrEmptyName) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name is required"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create user"})
	}
	return c.Redirect(http.StatusFound, "/")
}

// DeleteUser handles POST /users/:userID/delete. Deleting a user removes all
// of their movies as well. Unknown ids get a 404 and no state changes.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c, "userID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Users.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.Redirect(http.StatusFound, "/")
}
