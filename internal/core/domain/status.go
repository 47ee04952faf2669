package domain

import "strings"

// Status represents the lifecycle state of a provisioning application.
type Status string

const (
	StatusReceived         Status = "RECEIVED"
	StatusReceivedComplete Status = "RECEIVED_COMPLETE"
	StatusApprovalPending  Status = "APPROVAL_PENDING"
	StatusApproved         Status = "APPROVED"
	StatusBuilding         Status = "BUILDING"
	StatusCompleted        Status = "COMPLETED"
	StatusDeleted          Status = "DELETED"
)

// statusLabels maps each status to its display name.
var statusLabels = map[Status]string{
	StatusReceived:         "Received",
	StatusReceivedComplete: "Receipt Complete",
	StatusApprovalPending:  "Approval Pending",
	StatusApproved:         "Approved",
	StatusBuilding:         "Building",
	StatusCompleted:        "Completed",
	StatusDeleted:          "Deleted",
}

// Workflow returns the ordered workflow statuses. DELETED is a soft-delete
// marker, not a workflow step, and is excluded.
func Workflow() []Status {
	return []Status{
		StatusReceived,
		StatusReceivedComplete,
		StatusApprovalPending,
		StatusApproved,
		StatusBuilding,
		StatusCompleted,
	}
}

// ParseStatus parses a status string case-insensitively.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := statusLabels[status]; !ok {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// String returns the canonical status code.
func (s Status) String() string {
	return string(s)
}

// Label returns the display name for the status.
func (s Status) Label() string {
	return statusLabels[s]
}

// IsDeleted reports whether the status is the soft-delete marker.
func (s Status) IsDeleted() bool {
	return s == StatusDeleted
}
