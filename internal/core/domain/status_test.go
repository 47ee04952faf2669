package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatus_CaseInsensitive(t *testing.T) {
	for _, raw := range []string{"received", "RECEIVED", "Received", "  received  "} {
		status, err := ParseStatus(raw)
		require.NoError(t, err, "raw=%q", raw)
		require.Equal(t, StatusReceived, status)
	}
}

func TestParseStatus_Unknown(t *testing.T) {
	_, err := ParseStatus("bogus")
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = ParseStatus("")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestWorkflow_OrderAndExclusions(t *testing.T) {
	workflow := Workflow()

	want := []Status{
		StatusReceived,
		StatusReceivedComplete,
		StatusApprovalPending,
		StatusApproved,
		StatusBuilding,
		StatusCompleted,
	}
	require.Equal(t, want, workflow)
	require.NotContains(t, workflow, StatusDeleted)
}

func TestStatusLabels(t *testing.T) {
	require.Equal(t, "Approval Pending", StatusApprovalPending.Label())
	require.Equal(t, "Receipt Complete", StatusReceivedComplete.Label())
	require.Equal(t, "APPROVED", StatusApproved.String())
}

func TestIsDeleted(t *testing.T) {
	require.True(t, StatusDeleted.IsDeleted())
	require.False(t, StatusCompleted.IsDeleted())
}
