package repositories

import (
	"context"
	"time"

	"paasta-portal/internal/adapters/persistence/models"
	"paasta-portal/internal/core/domain"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmployeeID(ctx context.Context, employeeID string) (*models.User, error)
	ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error)
	List(ctx context.Context) ([]*models.User, error)
}

// ApplicationRepository defines application repository interface
type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	Update(ctx context.Context, app *models.Application) error
	// FindByEmployeeID returns the requester's applications, soft-deleted
	// ones included, newest first.
	FindByEmployeeID(ctx context.Context, employeeID string) ([]*models.Application, error)
	// FindAllActive returns non-deleted applications, newest first.
	FindAllActive(ctx context.Context) ([]*models.Application, error)
	// FindAll returns every application including soft-deleted ones,
	// newest first.
	FindAll(ctx context.Context) ([]*models.Application, error)
	FindByStatus(ctx context.Context, status domain.Status) ([]*models.Application, error)
	// FindRecentByTitle returns applications by the same requester with an
	// identical title created after the given instant (duplicate window).
	FindRecentByTitle(ctx context.Context, employeeID, title string, after time.Time) ([]*models.Application, error)
	CountByStatus(ctx context.Context, status domain.Status) (int64, error)
}
