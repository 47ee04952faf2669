package models

import (
	"encoding/json"
	"time"
)

// Stack descriptor item types. These are the in-memory representation of the
// JSON text columns on Application; array order is preserved across the
// encode/decode round trip.

// FrontendItem describes one frontend framework entry
type FrontendItem struct {
	ID        uint   `json:"id,omitempty"`
	Framework string `json:"framework"`
	Version   string `json:"version"`
}

// BackendItem describes one backend language/framework entry
type BackendItem struct {
	ID               uint   `json:"id,omitempty"`
	Language         string `json:"language"`
	LanguageVersion  string `json:"languageVersion"`
	Framework        string `json:"framework"`
	FrameworkVersion string `json:"frameworkVersion"`
}

// WebServerItem describes one web server entry
type WebServerItem struct {
	ID      uint   `json:"id,omitempty"`
	Server  string `json:"server"`
	Version string `json:"version"`
}

// DBItem describes one database entry
type DBItem struct {
	ID      uint   `json:"id,omitempty"`
	Type    string `json:"type"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Size    string `json:"size"`
}

// encodeColumn serializes a list into its text column. A nil list leaves the
// column empty rather than storing "null".
func encodeColumn(v interface{}) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeColumn(col string, out interface{}) error {
	if col == "" {
		return nil
	}
	return json.Unmarshal([]byte(col), out)
}

// SetFrontendItems serializes frontend items into the text column.
func (a *Application) SetFrontendItems(items []FrontendItem) error {
	if items == nil {
		return nil
	}
	col, err := encodeColumn(items)
	if err != nil {
		return err
	}
	a.FrontendItems = col
	return nil
}

// FrontendItemList decodes the frontend items column.
func (a *Application) FrontendItemList() ([]FrontendItem, error) {
	var items []FrontendItem
	if err := decodeColumn(a.FrontendItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetBackendItems serializes backend items into the text column.
func (a *Application) SetBackendItems(items []BackendItem) error {
	if items == nil {
		return nil
	}
	col, err := encodeColumn(items)
	if err != nil {
		return err
	}
	a.BackendItems = col
	return nil
}

// BackendItemList decodes the backend items column.
func (a *Application) BackendItemList() ([]BackendItem, error) {
	var items []BackendItem
	if err := decodeColumn(a.BackendItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetAPIPaths serializes API paths into the text column.
func (a *Application) SetAPIPaths(paths []string) error {
	if paths == nil {
		return nil
	}
	col, err := encodeColumn(paths)
	if err != nil {
		return err
	}
	a.APIPaths = col
	return nil
}

// APIPathList decodes the API paths column.
func (a *Application) APIPathList() ([]string, error) {
	var paths []string
	if err := decodeColumn(a.APIPaths, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}

// SetWebServerItems serializes web server items into the text column.
func (a *Application) SetWebServerItems(items []WebServerItem) error {
	if items == nil {
		return nil
	}
	col, err := encodeColumn(items)
	if err != nil {
		return err
	}
	a.WebServerItems = col
	return nil
}

// WebServerItemList decodes the web server items column.
func (a *Application) WebServerItemList() ([]WebServerItem, error) {
	var items []WebServerItem
	if err := decodeColumn(a.WebServerItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetDBItems serializes database items into the text column.
func (a *Application) SetDBItems(items []DBItem) error {
	if items == nil {
		return nil
	}
	col, err := encodeColumn(items)
	if err != nil {
		return err
	}
	a.DBItems = col
	return nil
}

// DBItemList decodes the database items column.
func (a *Application) DBItemList() ([]DBItem, error) {
	var items []DBItem
	if err := decodeColumn(a.DBItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ApplicationResponse DTO with the stack descriptor columns decoded back into
// typed lists.
type ApplicationResponse struct {
	ID          uint   `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	EnvType     string `json:"env_type"`

	VMHostname    string `json:"vm_hostname,omitempty"`
	VMUsername    string `json:"vm_username,omitempty"`
	VMEnvironment string `json:"vm_environment,omitempty"`
	VMEC2Type     string `json:"vm_ec2_type,omitempty"`
	VMEBSType     string `json:"vm_ebs_type,omitempty"`
	VMEBSSize     string `json:"vm_ebs_size,omitempty"`

	K8sType      string `json:"k8s_type,omitempty"`
	K8sNamespace string `json:"k8s_namespace,omitempty"`
	K8sNodeCount string `json:"k8s_node_count,omitempty"`

	ResourceCPU  string `json:"resource_cpu,omitempty"`
	ResourceRAM  string `json:"resource_ram,omitempty"`
	ResourceDisk string `json:"resource_disk,omitempty"`

	OSName    string `json:"os_name,omitempty"`
	OSVersion string `json:"os_version,omitempty"`

	FrontendItems  []FrontendItem  `json:"frontend_items,omitempty"`
	FrontendDomain string          `json:"frontend_domain,omitempty"`
	BackendItems   []BackendItem   `json:"backend_items,omitempty"`
	APIDomain      string          `json:"api_domain,omitempty"`
	APIPaths       []string        `json:"api_paths,omitempty"`
	WebServerItems []WebServerItem `json:"webserver_items,omitempty"`
	DBItems        []DBItem        `json:"db_items,omitempty"`

	ApprovedBy string     `json:"approved_by,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	Comments   string     `json:"comments,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ToResponse decodes the serialized columns into a typed response. Decode
// failures are reported, never swallowed.
func (a *Application) ToResponse() (*ApplicationResponse, error) {
	resp := &ApplicationResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		Title:          a.Title,
		Description:    a.Description,
		Status:         a.Status.String(),
		StatusLabel:    a.Status.Label(),
		EnvType:        a.EnvType,
		VMHostname:     a.VMHostname,
		VMUsername:     a.VMUsername,
		VMEnvironment:  a.VMEnvironment,
		VMEC2Type:      a.VMEC2Type,
		VMEBSType:      a.VMEBSType,
		VMEBSSize:      a.VMEBSSize,
		K8sType:        a.K8sType,
		K8sNamespace:   a.K8sNamespace,
		K8sNodeCount:   a.K8sNodeCount,
		ResourceCPU:    a.ResourceCPU,
		ResourceRAM:    a.ResourceRAM,
		ResourceDisk:   a.ResourceDisk,
		OSName:         a.OSName,
		OSVersion:      a.OSVersion,
		FrontendDomain: a.FrontendDomain,
		APIDomain:      a.APIDomain,
		ApprovedBy:     a.ApprovedBy,
		ApprovedAt:     a.ApprovedAt,
		Comments:       a.Comments,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}

	var err error
	if resp.FrontendItems, err = a.FrontendItemList(); err != nil {
		return nil, err
	}
	if resp.BackendItems, err = a.BackendItemList(); err != nil {
		return nil, err
	}
	if resp.APIPaths, err = a.APIPathList(); err != nil {
		return nil, err
	}
	if resp.WebServerItems, err = a.WebServerItemList(); err != nil {
		return nil, err
	}
	if resp.DBItems, err = a.DBItemList(); err != nil {
		return nil, err
	}

	return resp, nil
}

// ToResponses converts a slice of applications, stopping at the first decode
// failure.
func ToResponses(apps []*Application) ([]*ApplicationResponse, error) {
	responses := make([]*ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		resp, err := app.ToResponse()
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
