package handlers

import (
	"context"
	"testing"

	"paasta-portal/internal/core/domain"
	"paasta-portal/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newApplicationApp(t *testing.T, repo *stubAppRepo) *fiber.App {
	t.Helper()

	h := NewApplicationHandler(services.NewApplicationService(repo))

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Post("/applications", h.Create)
	api.Post("/submit-card", h.SubmitCard)
	api.Get("/applications/employee/:employeeId", h.ListByEmployee)
	api.Get("/applications/:id", h.Get)
	api.Patch("/applications/:id", h.UpdateContent)
	api.Delete("/applications/:id", h.Delete)
	return app
}

func TestCreateApplication_Success(t *testing.T) {
	repo := newStubAppRepo()
	app := newApplicationApp(t, repo)

	status, envelope := postJSON(t, app, "/api/v1/applications", `{
		"employeeId": "87654321",
		"title": "order service",
		"envType": "paas",
		"k8s": {"type": "eks", "namespace": "orders", "node": "3"},
		"dbItems": [{"type": "mysql", "name": "orders", "version": "8.0", "size": "20Gi"}]
	}`)

	require.Equal(t, fiber.StatusCreated, status)
	require.True(t, envelope.Success)

	data := envelope.Data.(map[string]interface{})
	require.Equal(t, "RECEIVED", data["status"])
	require.Equal(t, "eks", data["k8s_type"])
}

func TestCreateApplication_DuplicateReturnsConflict(t *testing.T) {
	repo := newStubAppRepo()
	app := newApplicationApp(t, repo)

	body := `{"employeeId": "87654321", "title": "order service"}`

	status, _ := postJSON(t, app, "/api/v1/applications", body)
	require.Equal(t, fiber.StatusCreated, status)

	status, envelope := postJSON(t, app, "/api/v1/applications", body)
	require.Equal(t, fiber.StatusConflict, status)
	require.False(t, envelope.Success)
}

func TestCreateApplication_ValidationErrors(t *testing.T) {
	repo := newStubAppRepo()
	app := newApplicationApp(t, repo)

	// Missing title.
	status, _ := postJSON(t, app, "/api/v1/applications", `{"employeeId": "87654321"}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	// Unknown env type.
	status, _ = postJSON(t, app, "/api/v1/applications",
		`{"employeeId": "87654321", "title": "x", "envType": "bare-metal"}`)
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestSubmitCard_MapsSnapshotToApplication(t *testing.T) {
	repo := newStubAppRepo()
	app := newApplicationApp(t, repo)

	// The legacy frontend shape: environment under "env", not "envType".
	status, envelope := postJSON(t, app, "/api/v1/submit-card", `{
		"userId": "user0002",
		"title": "legacy card submission",
		"desc": "from the card form",
		"formDataSnapshot": {
			"env": "iaas",
			"vm": {"hostname": "web-01", "username": "deploy", "ec2Type": "t3.large"},
			"frontendItems": [{"framework": "react", "version": "18"}],
			"frontendDomain": "shop.example.com"
		}
	}`)

	require.Equal(t, fiber.StatusCreated, status)
	data := envelope.Data.(map[string]interface{})
	require.Equal(t, "user0002", data["employee_id"])
	require.Equal(t, "from the card form", data["description"])
	require.Equal(t, "iaas", data["env_type"])
	require.Equal(t, "web-01", data["vm_hostname"])
	require.Equal(t, "deploy", data["vm_username"])
	require.Equal(t, "t3.large", data["vm_ec2_type"])
	require.Equal(t, "shop.example.com", data["frontend_domain"])
}

func TestSubmitCard_PaaSSnapshot(t *testing.T) {
	repo := newStubAppRepo()
	app := newApplicationApp(t, repo)

	status, envelope := postJSON(t, app, "/api/v1/submit-card", `{
		"userId": "user0002",
		"title": "k8s card submission",
		"formDataSnapshot": {
			"env": "paas",
			"k8s": {"type": "eks", "namespace": "orders", "node": "3"},
			"vm": {"hostname": "ignored", "ec2Type": "m5.xlarge"}
		}
	}`)

	require.Equal(t, fiber.StatusCreated, status)
	data := envelope.Data.(map[string]interface{})
	require.Equal(t, "paas", data["env_type"])
	require.Equal(t, "eks", data["k8s_type"])
	require.Equal(t, "m5.xlarge", data["vm_ec2_type"])
	// Hostname is IaaS-only and must not survive a paas snapshot.
	require.Nil(t, data["vm_hostname"])
}

func TestDeleteApplication_SoftDelete(t *testing.T) {
	repo := newStubAppRepo()
	seeded := seedApplication(t, repo)
	app := newApplicationApp(t, repo)

	status, _ := doJSON(t, app, "DELETE", "/api/v1/applications/1", "")
	require.Equal(t, fiber.StatusOK, status)

	stored, err := repo.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusDeleted, stored.Status)

	// History still returns it.
	statusCode, envelope := doJSON(t, app, "GET", "/api/v1/applications/employee/87654321", "")
	require.Equal(t, fiber.StatusOK, statusCode)
	require.Len(t, envelope.Data.([]interface{}), 1)
}

func TestPatchApplication_UpdatesTitleOnly(t *testing.T) {
	repo := newStubAppRepo()
	seeded := seedApplication(t, repo)
	seeded.Description = "keep me"
	require.NoError(t, repo.Update(context.Background(), seeded))

	app := newApplicationApp(t, repo)

	status, _ := doJSON(t, app, "PATCH", "/api/v1/applications/1", `{"title": "renamed"}`)
	require.Equal(t, fiber.StatusOK, status)

	stored, err := repo.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.Equal(t, "renamed", stored.Title)
	require.Equal(t, "keep me", stored.Description)
}

func TestGetApplication_NotFound(t *testing.T) {
	repo := newStubAppRepo()
	app := newApplicationApp(t, repo)

	status, _ := doJSON(t, app, "GET", "/api/v1/applications/42", "")
	require.Equal(t, fiber.StatusNotFound, status)
}
