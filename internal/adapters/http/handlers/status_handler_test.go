package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"paasta-portal/internal/adapters/http/middleware"
	"paasta-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestStatusList(t *testing.T) {
	app := fiber.New()
	h := NewStatusHandler()
	app.Get("/api/v1/status/list", middleware.CacheControl(time.Hour), h.List)

	req := httptest.NewRequest("GET", "/api/v1/status/list", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "public, max-age=3600", resp.Header.Get("Cache-Control"))

	var envelope response.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)

	var entries []StatusEntry
	require.NoError(t, json.Unmarshal(raw, &entries))
	require.Len(t, entries, 6)

	require.Equal(t, "RECEIVED", entries[0].Code)
	require.Equal(t, "COMPLETED", entries[5].Code)
	require.Equal(t, "Approval Pending", entries[2].Label)

	for _, e := range entries {
		require.NotEqual(t, "DELETED", e.Code)
	}
}
