package handlers

import (
	"strings"

	"paasta-portal/internal/config"
	"paasta-portal/internal/core/services"
	"paasta-portal/internal/pkg/jwt"
	"paasta-portal/internal/pkg/response"
	"paasta-portal/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	userService *services.UserService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService *services.UserService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		cfg:         cfg,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// Login handles user login
// @Summary Login user
// @Description Authenticate by employee ID and password, returns an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	user, err := h.userService.ValidateLogin(c.Context(), strings.TrimSpace(req.EmployeeID), req.Password)
	if err != nil {
		return response.InternalServerError(c, "Failed to login")
	}
	if user == nil {
		return response.Unauthorized(c, "Invalid employee ID or password")
	}

	token, err := jwt.GenerateAccessToken(user.EmployeeID, user.UserName, user.Role, h.cfg.JWT.Secret, h.cfg.JWT.AccessTokenMins)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate token")
	}

	return response.Success(c, "Login successful", fiber.Map{
		"access_token": token,
		"user":         user.ToResponse(),
	})
}

// VerifyToken checks the bearer token
// @Summary Verify access token
// @Description Validate the Authorization bearer token
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/verify-token [post]
func (h *AuthHandler) VerifyToken(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return response.Unauthorized(c, "Access token required")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := jwt.ValidateAccessToken(token, h.cfg.JWT.Secret)
	if err != nil {
		if err == jwt.ErrTokenExpired {
			return response.Unauthorized(c, "Access token expired")
		}
		return response.Unauthorized(c, "Invalid access token")
	}

	return response.Success(c, "Token is valid", fiber.Map{
		"valid":       true,
		"employee_id": claims.EmployeeID,
		"user_name":   claims.UserName,
		"role":        claims.Role,
	})
}
