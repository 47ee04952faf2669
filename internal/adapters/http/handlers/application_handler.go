package handlers

import (
	"errors"
	"strings"

	"paasta-portal/internal/adapters/persistence/models"
	"paasta-portal/internal/core/domain"
	"paasta-portal/internal/core/services"
	"paasta-portal/internal/pkg/response"
	"paasta-portal/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// ApplicationHandler handles provisioning request endpoints
type ApplicationHandler struct {
	appService *services.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(appService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appService: appService}
}

// Create handles a typed provisioning request submission
// @Summary Submit provisioning request
// @Description Create a new provisioning application
// @Tags Applications
// @Accept json
// @Produce json
// @Param body body services.CreateApplicationInput true "Application data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /applications [post]
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	var input services.CreateApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}
	input.EmployeeID = strings.TrimSpace(input.EmployeeID)

	app, err := h.appService.Create(c.Context(), &input)
	if err != nil {
		return h.createError(c, err)
	}

	resp, err := app.ToResponse()
	if err != nil {
		return response.InternalServerError(c, "Failed to encode application")
	}

	return response.Created(c, "Application submitted successfully", resp)
}

// FormSnapshot is the nested payload of the legacy card submission shape.
// The legacy frontend sends the environment type under the key "env".
type FormSnapshot struct {
	EnvType   string                   `json:"env" validate:"omitempty,oneof=iaas paas"`
	VM        *services.VMConfigInput  `json:"vm"`
	K8s       *services.K8sConfigInput `json:"k8s"`
	Resources *services.ResourcesInput `json:"resources"`
	OS        *services.OSInput        `json:"os"`

	FrontendItems  []models.FrontendItem  `json:"frontendItems"`
	FrontendDomain string                 `json:"frontendDomain"`
	BackendItems   []models.BackendItem   `json:"backendItems"`
	APIDomain      string                 `json:"apiDomain"`
	APIPaths       []string               `json:"apiPaths"`
	WebServerItems []models.WebServerItem `json:"webServerItems"`
	DBItems        []models.DBItem        `json:"dbItems"`
}

// SubmitCardRequest is the legacy frontend submission wrapper
type SubmitCardRequest struct {
	UserID           string       `json:"userId" validate:"required,max=20"`
	Title            string       `json:"title" validate:"required,max=200"`
	Desc             string       `json:"desc"`
	FormDataSnapshot FormSnapshot `json:"formDataSnapshot"`
}

// SubmitCard handles the card-style submission shape
// @Summary Submit provisioning request (card form)
// @Description Accepts the frontend form snapshot shape and creates an application
// @Tags Applications
// @Accept json
// @Produce json
// @Param body body SubmitCardRequest true "Card submission"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Security BearerAuth
// @Router /submit-card [post]
func (h *ApplicationHandler) SubmitCard(c *fiber.Ctx) error {
	var req SubmitCardRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&req); err != nil {
		return response.BadRequest(c, err.Error())
	}

	snap := req.FormDataSnapshot
	input := &services.CreateApplicationInput{
		EmployeeID:     strings.TrimSpace(req.UserID),
		Title:          req.Title,
		Description:    req.Desc,
		EnvType:        snap.EnvType,
		VM:             snap.VM,
		K8s:            snap.K8s,
		Resources:      snap.Resources,
		OS:             snap.OS,
		FrontendItems:  snap.FrontendItems,
		FrontendDomain: snap.FrontendDomain,
		BackendItems:   snap.BackendItems,
		APIDomain:      snap.APIDomain,
		APIPaths:       snap.APIPaths,
		WebServerItems: snap.WebServerItems,
		DBItems:        snap.DBItems,
	}

	app, err := h.appService.Create(c.Context(), input)
	if err != nil {
		return h.createError(c, err)
	}

	resp, err := app.ToResponse()
	if err != nil {
		return response.InternalServerError(c, "Failed to encode application")
	}

	return response.Created(c, "Application submitted successfully", resp)
}

func (h *ApplicationHandler) createError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicateSubmission):
		return response.Conflict(c, "An identical request was submitted moments ago")
	case errors.Is(err, domain.ErrDataEncoding):
		return response.InternalServerError(c, "Failed to store application data")
	default:
		return response.InternalServerError(c, "Failed to submit application")
	}
}

// ListByEmployee returns the requester's submission history
// @Summary List applications by employee
// @Description Returns all applications of an employee, deleted included, newest first
// @Tags Applications
// @Produce json
// @Param employeeId path string true "Employee ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /applications/employee/{employeeId} [get]
func (h *ApplicationHandler) ListByEmployee(c *fiber.Ctx) error {
	employeeID := c.Params("employeeId")

	apps, err := h.appService.GetByEmployeeID(c.Context(), employeeID)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch applications")
	}

	out, err := models.ToResponses(apps)
	if err != nil {
		return response.InternalServerError(c, "Failed to decode application data")
	}

	return response.Success(c, "Applications retrieved", out)
}

// Get returns one application
// @Summary Get application by ID
// @Tags Applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /applications/{id} [get]
func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
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

// UpdateContent patches title and/or description
// @Summary Update application content
// @Description Overwrites title and/or description for fields present in the body
// @Tags Applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param body body services.UpdateContentInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /applications/{id} [patch]
func (h *ApplicationHandler) UpdateContent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid application ID")
	}

	var input services.UpdateContentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := validation.Struct(&input); err != nil {
		return response.BadRequest(c, err.Error())
	}

	app, err := h.appService.UpdateContent(c.Context(), uint(id), &input)
	if err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			return response.NotFound(c, "Application not found")
		}
		return response.InternalServerError(c, "Failed to update application")
	}

	resp, err := app.ToResponse()
	if err != nil {
		return response.InternalServerError(c, "Failed to decode application data")
	}

	return response.Success(c, "Application updated", resp)
}

// Delete soft-deletes an application
// @Summary Delete application
// @Description Marks the application DELETED; the record stays in history
// @Tags Applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid application ID")
	}

	if err := h.appService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrApplicationNotFound) {
			return response.NotFound(c, "Application not found")
		}
		return response.InternalServerError(c, "Failed to delete application")
	}

	return response.Success(c, "Application deleted", nil)
}
