package config

import (
	"log"

	"paasta-portal/internal/adapters/persistence/models"
	"paasta-portal/internal/core/domain"
	"paasta-portal/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db   *gorm.DB
	seed SeedConfig
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, seed SeedConfig) *Seeder {
	return &Seeder{db: db, seed: seed}
}

// Run executes all seeders. Each account is seeded only when its password is
// configured, so production deployments can leave them unset.
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	accounts := []struct {
		employeeID string
		rawPass    string
		department string
		userName   string
		role       domain.Role
	}{
		{s.seed.AdminEmployeeID, s.seed.AdminPassword, "Platform Operations", "Portal Admin", domain.RoleAdmin},
		{s.seed.UserEmployeeID, s.seed.UserPassword, "Development", "Test User", domain.RoleUser},
		{s.seed.User2EmployeeID, s.seed.User2Password, "Development", "Test User 2", domain.RoleUser},
	}

	for _, a := range accounts {
		if a.rawPass == "" {
			log.Printf("⚠️ Seed skipped for %s: no password configured", a.employeeID)
			continue
		}
		if err := s.seedUser(a.employeeID, a.rawPass, a.department, a.userName, a.role); err != nil {
			return err
		}
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedUser creates the account if it does not exist yet
func (s *Seeder) seedUser(employeeID, rawPass, department, userName string, role domain.Role) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("employee_id = ?", employeeID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Already seeded
	}

	hashedPassword, err := password.Hash(rawPass)
	if err != nil {
		return err
	}

	user := &models.User{
		EmployeeID: employeeID,
		Password:   hashedPassword,
		Department: department,
		UserName:   userName,
		Role:       string(role),
	}

	if err := s.db.Create(user).Error; err != nil {
		return err
	}

	log.Printf("✅ Seed user created: %s (%s)", user.EmployeeID, user.Role)
	return nil
}
