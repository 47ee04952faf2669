package handlers

import (
	"errors"

	"paasta-portal/internal/adapters/persistence/models"
	"paasta-portal/internal/core/domain"
	"paasta-portal/internal/core/services"
	"paasta-portal/internal/pkg/response"
	"paasta-portal/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles administrative application endpoints
type AdminHandler struct {
	appService *services.ApplicationService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(appService *services.ApplicationService) *AdminHandler {
	return &AdminHandler{appService: appService}
}

// ListAll returns every application, soft-deleted included
// @Summary List all applications (admin)
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /admin/applications [get]
func (h *AdminHandler) ListAll(c *fiber.Ctx) error {
	apps, err := h.appService.GetAllIncludingDeleted(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch applications")
	}

	out, err := models.ToResponses(apps)
	if err != nil {
		return response.InternalServerError(c, "Failed to decode application data")
	}

	return response.Success(c, "Applications retrieved", out)
}

// ListByStatus returns applications in one status
// @Summary List applications by status (admin)
// @Tags Admin
// @Produce json
// @Param status path string true "Status code, case-insensitive"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /admin/applications/status/{status} [get]
func (h *AdminHandler) ListByStatus(c *fiber.Ctx) error {
	apps, err := h.appService.GetByStatus(c.Context(), c.Params("status"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			return response.BadRequest(c, "Unknown status")
		}
		return response.InternalServerError(c, "Failed to fetch applications")
	}

	out, err := models.ToResponses(apps)
	if err != nil {
		return response.InternalServerError(c, "Failed to decode application data")
	}

	return response.Success(c, "Applications retrieved", out)
}

// Get returns one application for review
// @Summary Get application detail (admin)
// @Tags Admin
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /admin/applications/{id} [get]
func (h *AdminHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid application ID")
	}

	app, err := h.appService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			return response.NotFound(c, "Application not found")
		}
		return response.InternalServerError(c, "Failed to fetch application")
	}

	resp, err := app.ToResponse()
	if err != nil {
		return response.InternalServerError(c, "Failed to decode application data")
	}

	return response.Success(c, "Application retrieved", resp)
}

// UpdateStatusRequest represents a status decision body
type UpdateStatusRequest struct {
	Status             string `json:"status" validate:"required"`
	Comments           string `json:"comments"`
	ApproverEmployeeID string `json:"approverEmployeeId"`
}

// UpdateStatus applies an admin status decision
// @Summary Update application status (admin)
// @Description Sets the status; approvedAt is stamped when the new status is APPROVED
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param body body UpdateStatusRequest true "Status decision"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /admin/applications/{id}/status [put]
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid application ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	// The acting admin from the token wins over the body field
	approver := req.ApproverEmployeeID
	if employeeID, ok := c.Locals("employeeID").(string); ok && employeeID != "" {
		approver = employeeID
	}

	app, err := h.appService.UpdateStatus(c.Context(), uint(id), req.Status, req.Comments, approver)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrApplicationNotFound):
			return response.NotFound(c, "Application not found")
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Unknown status")
		default:
			return response.InternalServerError(c, "Failed to update status")
		}
	}

	resp, err := app.ToResponse()
	if err != nil {
		return response.InternalServerError(c, "Failed to decode application data")
	}

	return response.Success(c, "Status updated", resp)
}
