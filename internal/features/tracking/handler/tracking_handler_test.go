package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"frenet-gateway/internal/core/config"
	"frenet-gateway/internal/features/tracking/domain"
	"frenet-gateway/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockServiceFinder is a mock ServiceFinder for handler tests.
type mockServiceFinder struct {
	codes map[string]string
}

// FindByTrackingNumber implements ports.ServiceFinder.
func (m *mockServiceFinder) FindByTrackingNumber(_ context.Context, trackingNumber string) (string, error) {
	return m.codes[trackingNumber], nil
}

// mockTrackingProvider is a mock TrackingProvider for handler tests.
type mockTrackingProvider struct {
	infos map[string]*domain.TrackingInfo
	err   error
}

// Track implements ports.TrackingProvider.
func (m *mockTrackingProvider) Track(_ context.Context, trackingNumber, _ string) (*domain.TrackingInfo, error) {
	if m.err != nil {
		return nil, m.err
	}
	if info, ok := m.infos[trackingNumber]; ok {
		return info, nil
	}
	return &domain.TrackingInfo{}, nil
}

func newTestApp(provider *mockTrackingProvider) *fiber.App {
	svc := service.NewTrackingService(
		&mockServiceFinder{codes: map[string]string{}},
		provider,
		config.CarrierConfig{Title: "Frenet"},
		zap.NewNop(),
	)
	h := NewTrackingHandler(svc)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	app.Get("/tracking/:numbers", h.GetTracking)

	return app
}

// TestTrackingHandler_GetTracking_Success verifies a single number yields
// one status record.
func TestTrackingHandler_GetTracking_Success(t *testing.T) {
	provider := &mockTrackingProvider{
		infos: map[string]*domain.TrackingInfo{
			"PN123": {
				ServiceDescription: "SEDEX",
				Events:             []domain.TrackingEvent{{Description: "Delivered", Location: "Campinas / SP"}},
			},
		},
	}
	app := newTestApp(provider)

	req := httptest.NewRequest("GET", "/tracking/PN123", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result TrackingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Statuses, 1)
	assert.Equal(t, "PN123", result.Statuses[0].Tracking)
	require.NotNil(t, result.Statuses[0].Summary)
	assert.Equal(t, "Delivered", result.Statuses[0].Summary.Status)
}

// TestTrackingHandler_GetTracking_MultipleNumbers verifies comma-separated
// numbers produce one status each.
func TestTrackingHandler_GetTracking_MultipleNumbers(t *testing.T) {
	provider := &mockTrackingProvider{
		infos: map[string]*domain.TrackingInfo{
			"A": {Events: []domain.TrackingEvent{{Description: "Posted"}}},
		},
	}
	app := newTestApp(provider)

	req := httptest.NewRequest("GET", "/tracking/A,B", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result TrackingResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Statuses, 2)
	assert.NotNil(t, result.Statuses[0].Summary)
	assert.Nil(t, result.Statuses[1].Summary)
}

// TestTrackingHandler_GetTracking_ProviderError verifies provider failures
// map to a 500 with the ray id.
func TestTrackingHandler_GetTracking_ProviderError(t *testing.T) {
	provider := &mockTrackingProvider{err: errors.New("timeout")}
	app := newTestApp(provider)

	req := httptest.NewRequest("GET", "/tracking/PN123", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var result ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "test-ray-id", result.RayID)
}
