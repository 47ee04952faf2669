package models

import (
	"time"

	"paasta-portal/internal/core/domain"

	"gorm.io/gorm"
)

// User represents the users table. Accounts are created once (registration or
// seeding) and never updated or removed afterwards.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID string    `gorm:"uniqueIndex;size:20;not null" json:"employee_id"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	Department string    `gorm:"size:100" json:"department"`
	UserName   string    `gorm:"size:100;not null" json:"user_name"`
	Role       string    `gorm:"size:20;default:'USER'" json:"role"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	EmployeeID string    `json:"employee_id"`
	Department string    `json:"department"`
	UserName   string    `json:"user_name"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		EmployeeID: u.EmployeeID,
		Department: u.Department,
		UserName:   u.UserName,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
	}
}

// Application represents a provisioning request. The stack descriptor lists
// are stored as JSON text columns; use the Set*/List accessors so the
// serialized form never leaks past this package.
type Application struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	EmployeeID  string        `gorm:"size:20;not null;index" json:"employee_id"`
	Title       string        `gorm:"size:200;not null" json:"title"`
	Description string        `gorm:"type:text" json:"description"`
	Status      domain.Status `gorm:"size:30;not null;default:'RECEIVED'" json:"status"`
	EnvType     string        `gorm:"size:10" json:"env_type"`

	// VM config (IaaS). EC2/EBS type fields are shared with cloud K8s
	// deployments; hostname/username/environment are IaaS-only.
	VMHostname    string `gorm:"size:100" json:"vm_hostname"`
	VMUsername    string `gorm:"size:100" json:"vm_username"`
	VMEnvironment string `gorm:"size:50" json:"vm_environment"`
	VMEC2Type     string `gorm:"size:50" json:"vm_ec2_type"`
	VMEBSType     string `gorm:"size:50" json:"vm_ebs_type"`
	VMEBSSize     string `gorm:"size:50" json:"vm_ebs_size"`

	// Kubernetes config (PaaS)
	K8sType      string `gorm:"size:50" json:"k8s_type"`
	K8sNamespace string `gorm:"size:100" json:"k8s_namespace"`
	K8sNodeCount string `gorm:"size:20" json:"k8s_node_count"`

	// Resource sizing
	ResourceCPU  string `gorm:"size:50" json:"resource_cpu"`
	ResourceRAM  string `gorm:"size:50" json:"resource_ram"`
	ResourceDisk string `gorm:"size:50" json:"resource_disk"`

	// OS
	OSName    string `gorm:"size:50" json:"os_name"`
	OSVersion string `gorm:"size:50" json:"os_version"`

	// Stack descriptors, serialized JSON text
	FrontendItems  string `gorm:"type:text" json:"-"`
	FrontendDomain string `gorm:"size:200" json:"frontend_domain"`
	BackendItems   string `gorm:"type:text" json:"-"`
	APIDomain      string `gorm:"size:200" json:"api_domain"`
	APIPaths       string `gorm:"type:text" json:"-"`
	WebServerItems string `gorm:"type:text" json:"-"`
	DBItems        string `gorm:"type:text" json:"-"`

	// Administrative fields
	ApprovedBy string     `gorm:"size:20" json:"approved_by"`
	ApprovedAt *time.Time `json:"approved_at"`
	Comments   string     `gorm:"type:text" json:"comments"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string {
	return "applications"
}

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Application{},
	)
}
