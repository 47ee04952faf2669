package services

import (
	"context"
	"errors"
	"log"

	"paasta-portal/internal/adapters/persistence/models"
	"paasta-portal/internal/adapters/persistence/repositories"
	"paasta-portal/internal/core/domain"
	"paasta-portal/internal/pkg/password"

	"gorm.io/gorm"
)

// UserService handles employee account business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser creates an employee account with the USER role. The stored
// credential is a bcrypt hash, never the raw password.
func (s *UserService) CreateUser(ctx context.Context, employeeID, rawPassword, department, userName string) (*models.User, error) {
	return s.create(ctx, employeeID, rawPassword, department, userName, domain.RoleUser)
}

// CreateAdmin creates an employee account with the ADMIN role
func (s *UserService) CreateAdmin(ctx context.Context, employeeID, rawPassword, department, userName string) (*models.User, error) {
	return s.create(ctx, employeeID, rawPassword, department, userName, domain.RoleAdmin)
}

func (s *UserService) create(ctx context.Context, employeeID, rawPassword, department, userName string, role domain.Role) (*models.User, error) {
	exists, err := s.userRepo.ExistsByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hashed, err := password.Hash(rawPassword)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		EmployeeID: employeeID,
		Password:   hashed,
		Department: department,
		UserName:   userName,
		Role:       string(role),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User created: employeeID=%s, name=%s, role=%s", user.EmployeeID, user.UserName, user.Role)
	return user, nil
}

// FindByEmployeeID returns the user or nil when absent. Absence is a valid
// outcome, not an error.
func (s *UserService) FindByEmployeeID(ctx context.Context, employeeID string) (*models.User, error) {
	user, err := s.userRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// ExistsByEmployeeID checks if an employee id is registered
func (s *UserService) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	return s.userRepo.ExistsByEmployeeID(ctx, employeeID)
}

// ValidateLogin returns the user only when the employee exists and the
// password verifies against the stored hash. Any mismatch returns nil, nil.
func (s *UserService) ValidateLogin(ctx context.Context, employeeID, rawPassword string) (*models.User, error) {
	user, err := s.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !password.Verify(rawPassword, user.Password) {
		return nil, nil
	}
	return user, nil
}

// GetAllUsers returns all registered users
func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.List(ctx)
}
