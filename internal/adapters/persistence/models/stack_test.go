package models

import (
	"testing"

	"paasta-portal/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestStackColumns_RoundTrip(t *testing.T) {
	app := &Application{}

	frontend := []FrontendItem{
		{Framework: "react", Version: "18"},
		{Framework: "vue", Version: "3"},
	}
	backend := []BackendItem{
		{Language: "java", LanguageVersion: "17", Framework: "spring-boot", FrameworkVersion: "3.2"},
	}
	webservers := []WebServerItem{{Server: "nginx", Version: "1.25"}}
	dbs := []DBItem{{Type: "mysql", Name: "appdb", Version: "8.0", Size: "20Gi"}}
	paths := []string{"/api/orders", "/api/users"}

	require.NoError(t, app.SetFrontendItems(frontend))
	require.NoError(t, app.SetBackendItems(backend))
	require.NoError(t, app.SetWebServerItems(webservers))
	require.NoError(t, app.SetDBItems(dbs))
	require.NoError(t, app.SetAPIPaths(paths))

	gotFrontend, err := app.FrontendItemList()
	require.NoError(t, err)
	require.Equal(t, frontend, gotFrontend)

	gotBackend, err := app.BackendItemList()
	require.NoError(t, err)
	require.Equal(t, backend, gotBackend)

	gotWebservers, err := app.WebServerItemList()
	require.NoError(t, err)
	require.Equal(t, webservers, gotWebservers)

	gotDBs, err := app.DBItemList()
	require.NoError(t, err)
	require.Equal(t, dbs, gotDBs)

	gotPaths, err := app.APIPathList()
	require.NoError(t, err)
	require.Equal(t, paths, gotPaths)
}

func TestStackColumns_EmptyDecodesToNil(t *testing.T) {
	app := &Application{}

	items, err := app.FrontendItemList()
	require.NoError(t, err)
	require.Nil(t, items)

	paths, err := app.APIPathList()
	require.NoError(t, err)
	require.Nil(t, paths)
}

func TestStackColumns_NilSetLeavesColumnEmpty(t *testing.T) {
	app := &Application{}

	require.NoError(t, app.SetFrontendItems(nil))
	require.Empty(t, app.FrontendItems)
}

func TestApplicationToResponse(t *testing.T) {
	app := &Application{
		ID:         7,
		EmployeeID: "87654321",
		Title:      "order service",
		Status:     domain.StatusApprovalPending,
		EnvType:    domain.EnvTypePaaS,
	}
	require.NoError(t, app.SetDBItems([]DBItem{{Type: "mysql", Name: "orders"}}))

	resp, err := app.ToResponse()
	require.NoError(t, err)
	require.Equal(t, "APPROVAL_PENDING", resp.Status)
	require.Equal(t, "Approval Pending", resp.StatusLabel)
	require.Len(t, resp.DBItems, 1)
	require.Nil(t, resp.FrontendItems)
}

func TestApplicationToResponse_CorruptColumn(t *testing.T) {
	app := &Application{DBItems: "{not json"}

	_, err := app.ToResponse()
	require.Error(t, err)
}
