package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"frenet-gateway/internal/core/config"
	"frenet-gateway/internal/core/httpclient"
	"frenet-gateway/internal/core/logger"
	"frenet-gateway/internal/features/tracking/domain"

	"go.uber.org/zap"
)

// eventDateLayout is the datetime format used by the Frenet tracking API.
const eventDateLayout = "02/01/2006 15:04"

// FrenetTracking implements ports.TrackingProvider against the Frenet
// tracking API.
type FrenetTracking struct {
	client *http.Client
	cfg    config.FrenetConfig
	logger *zap.Logger
}

// NewFrenetTracking creates a FrenetTracking provider.
func NewFrenetTracking(cfg config.FrenetConfig) *FrenetTracking {
	return &FrenetTracking{
		client: httpclient.NewClient(15 * time.Second),
		cfg:    cfg,
		logger: logger.Get(),
	}
}

// frenetTrackingRequest is the tracking/trackinginfo request payload.
type frenetTrackingRequest struct {
	TrackingNumber      string `json:"TrackingNumber"`
	ShippingServiceCode string `json:"ShippingServiceCode,omitempty"`
}

// frenetTrackingResponse is the tracking/trackinginfo response payload.
type frenetTrackingResponse struct {
	ServiceDescription string `json:"ServiceDescription"`
	TrackingEvents     []struct {
		EventDateTime    string `json:"EventDateTime"`
		EventLocation    string `json:"EventLocation"`
		EventDescription string `json:"EventDescription"`
	} `json:"TrackingEvents"`
}

// Track retrieves the event history for the tracking number, preserving
// provider order.
func (t *FrenetTracking) Track(ctx context.Context, trackingNumber, serviceCode string) (*domain.TrackingInfo, error) {
	payload := frenetTrackingRequest{
		TrackingNumber:      trackingNumber,
		ShippingServiceCode: serviceCode,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.cfg.APIURL+"/tracking/trackinginfo", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("token", t.cfg.Token)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("frenet API returned status: %d", resp.StatusCode)
	}

	var response frenetTrackingResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	info := &domain.TrackingInfo{
		ServiceDescription: response.ServiceDescription,
		Events:             make([]domain.TrackingEvent, 0, len(response.TrackingEvents)),
	}

	for _, event := range response.TrackingEvents {
		date, err := time.Parse(eventDateLayout, event.EventDateTime)
		if err != nil {
			// An unparseable timestamp must not drop the event.
			t.logger.Debug("Unparseable event datetime",
				zap.String("tracking_number", trackingNumber),
				zap.String("event_datetime", event.EventDateTime),
			)
			date = time.Time{}
		}

		info.Events = append(info.Events, domain.TrackingEvent{
			Description: event.EventDescription,
			Location:    event.EventLocation,
			Date:        date,
		})
	}

	return info, nil
}
