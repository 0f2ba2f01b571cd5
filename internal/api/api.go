package api

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"user-group-service/internal/entity"
	"user-group-service/internal/repository"
	"user-group-service/internal/service"
)

type Handler struct {
	userService  service.UserService
	groupService service.GroupService
}

// NewHandler creates a new instance of Handler.
func NewHandler(userService service.UserService, groupService service.GroupService) *Handler {
	return &Handler{userService: userService, groupService: groupService}
}

type createUserRequest struct {
	Name    string      `json:"name" validate:"required"`
	Surname string      `json:"surname" validate:"required"`
	Marks   interface{} `json:"marks"`
	GroupID int         `json:"groupId" validate:"required"`
}

type createGroupRequest struct {
	GroupName string `json:"groupName" validate:"required"`
}

type updateMarksRequest struct {
	Marks interface{} `json:"marks"`
}

// Root confirms the API is reachable --> GET /
func (h *Handler) Root(c echo.Context) error {
	return c.String(200, "API up and running")
}

// ListUsersGroups returns all users and all groups ascending by id --> GET /api/users-groups
func (h *Handler) ListUsersGroups(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.ListUsers(ctx)
	if err != nil {
		return c.JSON(500, map[string]string{"message": "Internal server error", "error": err.Error()})
	}

	groups, err := h.groupService.ListGroups(ctx)
	if err != nil {
		return c.JSON(500, map[string]string{"message": "Internal server error", "error": err.Error()})
	}

	return c.JSON(200, map[string]interface{}{"users": users, "groups": groups})
}

// CreateUser creates a new user --> POST /api/user
func (h *Handler) CreateUser(c echo.Context) error {
	req := createUserRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}
	// marks is checked for presence by hand: 0 is a legal value and the
	// required rule would reject it once the interface is unwrapped.
	if err := c.Validate(&req); err != nil || req.Marks == nil {
		return c.JSON(400, map[string]string{"message": "Missing one of the 4 required fields"})
	}

	marks, ok := intFromJSON(req.Marks)
	if !ok {
		return c.JSON(400, map[string]string{"message": "User marks must be an integer"})
	}

	user := entity.User{
		Name:    req.Name,
		Surname: req.Surname,
		Marks:   marks,
		GroupID: req.GroupID,
	}

	createdUser, err := h.userService.CreateUser(c.Request().Context(), &user)
	if err != nil {
		return c.JSON(500, map[string]string{"message": "Internal server error", "error": err.Error()})
	}

	return c.JSON(201, map[string]interface{}{"message": "User created successfully", "user": createdUser})
}

// CreateGroup creates a new group --> POST /api/group
func (h *Handler) CreateGroup(c echo.Context) error {
	req := createGroupRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(400, map[string]string{"message": "Missing required field groupName"})
	}

	group := entity.Group{GroupName: req.GroupName}

	createdGroup, err := h.groupService.CreateGroup(c.Request().Context(), &group)
	if err != nil {
		return c.JSON(500, map[string]string{"message": "Internal server error", "error": err.Error()})
	}

	return c.JSON(201, map[string]interface{}{"message": "Group created successfully", "group": createdGroup})
}

// UpdateUserMarks updates the marks of one user --> PUT /api/user/:id/marks
func (h *Handler) UpdateUserMarks(c echo.Context) error {
	// Non-numeric and zero ids are both rejected as missing, mirroring
	// the truthiness check applied to groupId on creation.
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		return c.JSON(400, map[string]string{"message": "Missing id to update marks"})
	}

	req := updateMarksRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}

	marks, ok := intFromJSON(req.Marks)
	if !ok {
		return c.JSON(400, map[string]string{"message": "User marks must be an integer"})
	}

	err = h.userService.UpdateMarks(c.Request().Context(), id, marks)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(404, map[string]string{"message": "User not found in the database"})
		}
		return c.JSON(500, map[string]string{"message": "Internal server error", "error": err.Error()})
	}

	return c.JSON(200, map[string]interface{}{
		"message": fmt.Sprintf("User marks changed to: %d", marks),
		"user":    map[string]int{"id": id},
	})
}

// DeleteUser removes one user --> DELETE /api/user/:id
func (h *Handler) DeleteUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id == 0 {
		return c.JSON(400, map[string]string{"message": "Missing id to delete"})
	}

	err = h.userService.DeleteUser(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(404, map[string]string{"message": "User not found in the database"})
		}
		return c.JSON(500, map[string]string{"message": "Internal server error", "error": err.Error()})
	}

	return c.JSON(200, map[string]interface{}{
		"message": "User deleted successfully",
		"user":    map[string]int{"id": id},
	})
}
