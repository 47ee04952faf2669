package handlers

import (
	"errors"
	"strings"

	"paasta-portal/internal/adapters/persistence/models"
	"paasta-portal/internal/core/domain"
	"paasta-portal/internal/core/services"
	"paasta-portal/internal/pkg/password"
	"paasta-portal/internal/pkg/response"
	"paasta-portal/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents a registration request body
type CreateUserRequest struct {
	EmployeeID string `json:"employeeId" validate:"required,max=20"`
	Password   string `json:"password" validate:"required"`
	Department string `json:"department" validate:"max=100"`
	UserName   string `json:"userName" validate:"required,max=100"`
}

// Register handles user registration
// @Summary Register new user
// @Description Create an employee account with the USER role
// @Tags Users
// @Accept json
// @Produce json
// @Param body body CreateUserRequest true "Registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	return h.create(c, false)
}

// CreateAdmin handles admin account creation
// @Summary Create admin user
// @Description Create an employee account with the ADMIN role
// @Tags Users
// @Accept json
// @Produce json
// @Param body body CreateUserRequest true "Admin account data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /users/admin [post]
func (h *UserHandler) CreateAdmin(c *fiber.Ctx) error {
	return h.create(c, true)
}

func (h *UserHandler) create(c *fiber.Ctx, admin bool) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}
	if !password.ValidatePassword(req.Password) {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}

	employeeID := strings.TrimSpace(req.EmployeeID)
	userName := strings.TrimSpace(req.UserName)

	var user *models.User
	var err error
	if admin {
		user, err = h.userService.CreateAdmin(c.Context(), employeeID, req.Password, req.Department, userName)
	} else {
		user, err = h.userService.CreateUser(c.Context(), employeeID, req.Password, req.Department, userName)
	}
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			return response.Conflict(c, "Employee ID already registered")
		default:
			return response.InternalServerError(c, "Failed to create user")
		}
	}

	return response.Created(c, "User created successfully", user.ToResponse())
}

// GetByEmployeeID returns a single user profile
// @Summary Get user by employee ID
// @Tags Users
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /users/{employeeId} [get]
func (h *UserHandler) GetByEmployeeID(c *fiber.Ctx) error {
	employeeID := c.Params("employeeId")

	user, err := h.userService.FindByEmployeeID(c.Context(), employeeID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch user")
	}
	if user == nil {
		return response.NotFound(c, "User not found")
	}

	return response.Success(c, "User retrieved", user.ToResponse())
}

// List returns all users
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch users")
	}

	out := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, u.ToResponse())
	}

	return response.Success(c, "Users retrieved", out)
}
