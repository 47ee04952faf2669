package handlers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"paasta-portal/internal/adapters/persistence/models"
	"paasta-portal/internal/core/domain"
	"paasta-portal/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubAppRepo is an in-memory application repository for handler tests
type stubAppRepo struct {
	apps map[uint]*models.Application
}

func newStubAppRepo() *stubAppRepo {
	return &stubAppRepo{apps: make(map[uint]*models.Application)}
}

func (s *stubAppRepo) Create(_ context.Context, app *models.Application) error {
	app.ID = uint(len(s.apps) + 1)
	app.CreatedAt = time.Now()
	cp := *app
	s.apps[app.ID] = &cp
	return nil
}

func (s *stubAppRepo) GetByID(_ context.Context, id uint) (*models.Application, error) {
	app, ok := s.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *app
	return &cp, nil
}

func (s *stubAppRepo) Update(_ context.Context, app *models.Application) error {
	if _, ok := s.apps[app.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *app
	s.apps[app.ID] = &cp
	return nil
}

func (s *stubAppRepo) FindByEmployeeID(_ context.Context, employeeID string) ([]*models.Application, error) {
	var out []*models.Application
	for _, a := range s.apps {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubAppRepo) FindAllActive(_ context.Context) ([]*models.Application, error) {
	var out []*models.Application
	for _, a := range s.apps {
		if a.Status != domain.StatusDeleted {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubAppRepo) FindAll(_ context.Context) ([]*models.Application, error) {
	var out []*models.Application
	for _, a := range s.apps {
		out = append(out, a)
	}
	return out, nil
}

func (s *stubAppRepo) FindByStatus(_ context.Context, status domain.Status) ([]*models.Application, error) {
	var out []*models.Application
	for _, a := range s.apps {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubAppRepo) FindRecentByTitle(_ context.Context, employeeID, title string, after time.Time) ([]*models.Application, error) {
	var out []*models.Application
	for _, a := range s.apps {
		if a.EmployeeID == employeeID && a.Title == title && a.CreatedAt.After(after) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubAppRepo) CountByStatus(_ context.Context, status domain.Status) (int64, error) {
	var count int64
	for _, a := range s.apps {
		if a.Status == status {
			count++
		}
	}
	return count, nil
}

func newAdminApp(t *testing.T, repo *stubAppRepo) *fiber.App {
	t.Helper()

	h := NewAdminHandler(services.NewApplicationService(repo))

	app := fiber.New()
	admin := app.Group("/api/v1/admin")
	admin.Get("/applications", h.ListAll)
	admin.Get("/applications/status/:status", h.ListByStatus)
	admin.Get("/applications/:id", h.Get)
	admin.Put("/applications/:id/status", h.UpdateStatus)
	return app
}

func seedApplication(t *testing.T, repo *stubAppRepo) *models.Application {
	t.Helper()

	app := &models.Application{
		EmployeeID: "87654321",
		Title:      "order service",
		Status:     domain.StatusReceived,
	}
	require.NoError(t, repo.Create(context.Background(), app))
	return app
}

func TestAdminUpdateStatus_ApprovedStampsApprovedAt(t *testing.T) {
	repo := newStubAppRepo()
	seeded := seedApplication(t, repo)
	app := newAdminApp(t, repo)

	status, envelope := putJSON(t, app, "/api/v1/admin/applications/1/status",
		`{"status":"approved","comments":"looks good","approverEmployeeId":"12345678"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.True(t, envelope.Success)

	stored, err := repo.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, stored.Status)
	require.NotNil(t, stored.ApprovedAt)
	require.Equal(t, "12345678", stored.ApprovedBy)
	require.Equal(t, "looks good", stored.Comments)
}

func TestAdminUpdateStatus_NonApprovedDoesNotStamp(t *testing.T) {
	repo := newStubAppRepo()
	seeded := seedApplication(t, repo)
	app := newAdminApp(t, repo)

	status, _ := putJSON(t, app, "/api/v1/admin/applications/1/status",
		`{"status":"building","approverEmployeeId":"12345678"}`)
	require.Equal(t, fiber.StatusOK, status)

	stored, err := repo.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusBuilding, stored.Status)
	require.Nil(t, stored.ApprovedAt)
}

func TestAdminUpdateStatus_Errors(t *testing.T) {
	repo := newStubAppRepo()
	seedApplication(t, repo)
	app := newAdminApp(t, repo)

	status, _ := putJSON(t, app, "/api/v1/admin/applications/1/status", `{"status":"shipped"}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	status, _ = putJSON(t, app, "/api/v1/admin/applications/999/status", `{"status":"approved"}`)
	require.Equal(t, fiber.StatusNotFound, status)
}

func TestAdminListByStatus_Unknown(t *testing.T) {
	repo := newStubAppRepo()
	app := newAdminApp(t, repo)

	req := newRequest(t, "GET", "/api/v1/admin/applications/status/nonsense", "")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdminListAll_IncludesDeleted(t *testing.T) {
	repo := newStubAppRepo()
	seeded := seedApplication(t, repo)
	seeded.Status = domain.StatusDeleted
	require.NoError(t, repo.Update(context.Background(), seeded))

	app := newAdminApp(t, repo)

	req := newRequest(t, "GET", "/api/v1/admin/applications", "")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Len(t, envelope.Data, 1)
}
