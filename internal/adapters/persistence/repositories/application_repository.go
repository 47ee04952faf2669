package repositories

import (
	"context"
	"time"

	"paasta-portal/internal/adapters/persistence/models"
	"paasta-portal/internal/core/domain"

	"gorm.io/gorm"
)

// applicationRepository implements ApplicationRepository interface
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create creates a new application
func (r *applicationRepository) Create(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

// GetByID gets an application by ID
func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Update updates an application
func (r *applicationRepository) Update(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Save(app).Error
}

// FindByEmployeeID finds applications by requester, soft-deleted included
func (r *applicationRepository) FindByEmployeeID(ctx context.Context, employeeID string) ([]*models.Application, error) {
	var apps []*models.Application
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

// FindAllActive finds all applications excluding soft-deleted ones
func (r *applicationRepository) FindAllActive(ctx context.Context) ([]*models.Application, error) {
	var apps []*models.Application
	err := r.db.WithContext(ctx).
		Where("status <> ?", domain.StatusDeleted).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

// FindAll finds all applications including soft-deleted ones
func (r *applicationRepository) FindAll(ctx context.Context) ([]*models.Application, error) {
	var apps []*models.Application
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

// FindByStatus finds applications by status
func (r *applicationRepository) FindByStatus(ctx context.Context, status domain.Status) ([]*models.Application, error) {
	var apps []*models.Application
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

// FindRecentByTitle finds applications by requester and title created after
// the given instant. Used for the duplicate submission window.
func (r *applicationRepository) FindRecentByTitle(ctx context.Context, employeeID, title string, after time.Time) ([]*models.Application, error) {
	var apps []*models.Application
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND title = ? AND created_at > ?", employeeID, title, after).
		Find(&apps).Error
	return apps, err
}

// CountByStatus counts applications in a given status
func (r *applicationRepository) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
