package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"paasta-portal/internal/adapters/persistence/models"
	"paasta-portal/internal/adapters/persistence/repositories"
	"paasta-portal/internal/core/domain"

	"gorm.io/gorm"
)

// DuplicateWindow is the lookback used to suppress accidental resubmission of
// an identical title by the same requester.
const DuplicateWindow = 5 * time.Minute

// ApplicationService handles provisioning request business logic
type ApplicationService struct {
	appRepo repositories.ApplicationRepository
}

// NewApplicationService creates a new application service
func NewApplicationService(appRepo repositories.ApplicationRepository) *ApplicationService {
	return &ApplicationService{appRepo: appRepo}
}

// VMConfigInput holds the VM configuration for IaaS requests
type VMConfigInput struct {
	Hostname    string `json:"hostname"`
	Username    string `json:"username"`
	Environment string `json:"environment"`
	EC2Type     string `json:"ec2Type"`
	EBSType     string `json:"ebsType"`
	EBSSize     string `json:"ebsSize"`
}

// K8sConfigInput holds the Kubernetes configuration for PaaS requests
type K8sConfigInput struct {
	Type      string `json:"type"`
	Namespace string `json:"namespace"`
	NodeCount string `json:"node"`
}

// ResourcesInput holds the resource sizing
type ResourcesInput struct {
	CPU  string `json:"cpu"`
	RAM  string `json:"ram"`
	Disk string `json:"disk"`
}

// OSInput holds the operating system selection
type OSInput struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// CreateApplicationInput represents a typed provisioning request submission
type CreateApplicationInput struct {
	EmployeeID  string `json:"employeeId" validate:"required"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	EnvType     string `json:"envType" validate:"omitempty,oneof=iaas paas"`

	VM        *VMConfigInput  `json:"vm"`
	K8s       *K8sConfigInput `json:"k8s"`
	Resources *ResourcesInput `json:"resources"`
	OS        *OSInput        `json:"os"`

	FrontendItems  []models.FrontendItem  `json:"frontendItems"`
	FrontendDomain string                 `json:"frontendDomain"`
	BackendItems   []models.BackendItem   `json:"backendItems"`
	APIDomain      string                 `json:"apiDomain"`
	APIPaths       []string               `json:"apiPaths"`
	WebServerItems []models.WebServerItem `json:"webServerItems"`
	DBItems        []models.DBItem        `json:"dbItems"`
}

// Create creates a new provisioning application. Submissions with the same
// requester and title inside the duplicate window are rejected; the check is
// a best-effort read before write, not a transactional lock.
func (s *ApplicationService) Create(ctx context.Context, input *CreateApplicationInput) (*models.Application, error) {
	recent, err := s.appRepo.FindRecentByTitle(ctx, input.EmployeeID, input.Title, time.Now().Add(-DuplicateWindow))
	if err != nil {
		return nil, err
	}
	if len(recent) > 0 {
		log.Printf("⚠️ Duplicate submission detected: employeeID=%s, title=%s", input.EmployeeID, input.Title)
		return nil, domain.ErrDuplicateSubmission
	}

	app := &models.Application{
		EmployeeID:  input.EmployeeID,
		Title:       input.Title,
		Description: input.Description,
		EnvType:     input.EnvType,
		Status:      domain.StatusReceived,
	}

	// Hostname/username/environment are IaaS-only; the EC2/EBS type fields
	// are shared with cloud Kubernetes deployments and copied whenever a VM
	// config is present.
	if input.VM != nil {
		if input.EnvType == domain.EnvTypeIaaS {
			app.VMHostname = input.VM.Hostname
			app.VMUsername = input.VM.Username
			app.VMEnvironment = input.VM.Environment
		}
		app.VMEC2Type = input.VM.EC2Type
		app.VMEBSType = input.VM.EBSType
		app.VMEBSSize = input.VM.EBSSize
	}

	if input.K8s != nil && input.EnvType == domain.EnvTypePaaS {
		app.K8sType = input.K8s.Type
		app.K8sNamespace = input.K8s.Namespace
		app.K8sNodeCount = input.K8s.NodeCount
	}

	if input.Resources != nil {
		app.ResourceCPU = input.Resources.CPU
		app.ResourceRAM = input.Resources.RAM
		app.ResourceDisk = input.Resources.Disk
	}

	if input.OS != nil {
		app.OSName = input.OS.Name
		app.OSVersion = input.OS.Version
	}

	if err := s.encodeStacks(app, input); err != nil {
		return nil, err
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	log.Printf("✅ Application created: ID=%d, employeeID=%s, title=%s", app.ID, app.EmployeeID, app.Title)
	return app, nil
}

// encodeStacks serializes each stack descriptor list independently. A failure
// on any one field aborts the whole create before anything is written.
func (s *ApplicationService) encodeStacks(app *models.Application, input *CreateApplicationInput) error {
	if input.FrontendItems != nil {
		if err := app.SetFrontendItems(input.FrontendItems); err != nil {
			return fmt.Errorf("%w: frontend items: %v", domain.ErrDataEncoding, err)
		}
		app.FrontendDomain = input.FrontendDomain
	}

	if input.BackendItems != nil {
		if err := app.SetBackendItems(input.BackendItems); err != nil {
			return fmt.Errorf("%w: backend items: %v", domain.ErrDataEncoding, err)
		}
		app.APIDomain = input.APIDomain
		if input.APIPaths != nil {
			if err := app.SetAPIPaths(input.APIPaths); err != nil {
				return fmt.Errorf("%w: api paths: %v", domain.ErrDataEncoding, err)
			}
		}
	}

	if input.WebServerItems != nil {
		if err := app.SetWebServerItems(input.WebServerItems); err != nil {
			return fmt.Errorf("%w: webserver items: %v", domain.ErrDataEncoding, err)
		}
	}

	if input.DBItems != nil {
		if err := app.SetDBItems(input.DBItems); err != nil {
			return fmt.Errorf("%w: db items: %v", domain.ErrDataEncoding, err)
		}
	}

	return nil
}

// GetByEmployeeID returns the requester's applications including soft-deleted
// ones, newest first.
func (s *ApplicationService) GetByEmployeeID(ctx context.Context, employeeID string) ([]*models.Application, error) {
	return s.appRepo.FindByEmployeeID(ctx, employeeID)
}

// GetAll returns all non-deleted applications, newest first
func (s *ApplicationService) GetAll(ctx context.Context) ([]*models.Application, error) {
	return s.appRepo.FindAllActive(ctx)
}

// GetAllIncludingDeleted returns every application, soft-deleted included
func (s *ApplicationService) GetAllIncludingDeleted(ctx context.Context) ([]*models.Application, error) {
	return s.appRepo.FindAll(ctx)
}

// GetByStatus parses the status case-insensitively and returns matching
// applications, newest first.
func (s *ApplicationService) GetByStatus(ctx context.Context, rawStatus string) ([]*models.Application, error) {
	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	return s.appRepo.FindByStatus(ctx, status)
}

// GetByID returns an application by id
func (s *ApplicationService) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

// UpdateStatus sets the application status. There is no transition table: the
// admin may set any status from any prior status. ApprovedAt is stamped only
// when the new status is APPROVED; approving again re-stamps it and moving
// away from APPROVED does not clear it.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id uint, rawStatus, comments, approverEmployeeID string) (*models.Application, error) {
	app, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	app.Status = status
	app.Comments = comments
	app.ApprovedBy = approverEmployeeID

	if status == domain.StatusApproved {
		now := time.Now()
		app.ApprovedAt = &now
	}

	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	log.Printf("✅ Application status updated: ID=%d, status=%s, approver=%s", app.ID, status, approverEmployeeID)
	return app, nil
}

// Delete soft-deletes an application by setting its status to DELETED. The
// record is never physically removed.
func (s *ApplicationService) Delete(ctx context.Context, id uint) error {
	app, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	app.Status = domain.StatusDeleted
	if err := s.appRepo.Update(ctx, app); err != nil {
		return err
	}

	log.Printf("✅ Application soft-deleted: ID=%d, employeeID=%s", app.ID, app.EmployeeID)
	return nil
}

// UpdateContentInput represents a partial content edit
type UpdateContentInput struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
}

// UpdateContent overwrites title and/or description for fields present in the
// request; everything else is untouched.
func (s *ApplicationService) UpdateContent(ctx context.Context, id uint, input *UpdateContentInput) (*models.Application, error) {
	app, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		app.Title = *input.Title
	}
	if input.Description != nil {
		app.Description = *input.Description
	}

	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	return app, nil
}
