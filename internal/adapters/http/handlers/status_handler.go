package handlers

import (
	"paasta-portal/internal/core/domain"
	"paasta-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StatusHandler serves the workflow status catalog
type StatusHandler struct{}

// NewStatusHandler creates a new status handler
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{}
}

// StatusEntry is one workflow status with its display label
type StatusEntry struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// List returns the workflow statuses in lifecycle order
// @Summary List workflow statuses
// @Description Returns the ordered application lifecycle statuses
// @Tags Status
// @Produce json
// @Success 200 {object} response.Response
// @Router /status/list [get]
func (h *StatusHandler) List(c *fiber.Ctx) error {
	workflow := domain.Workflow()
	entries := make([]StatusEntry, 0, len(workflow))
	for _, s := range workflow {
		entries = append(entries, StatusEntry{
			Code:  s.String(),
			Label: s.Label(),
		})
	}

	return response.Success(c, "Statuses retrieved", entries)
}
