package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"frenet-gateway/internal/core/config"
	"frenet-gateway/internal/core/httpclient"
	"frenet-gateway/internal/core/logger"

	"go.uber.org/zap"
)

// StoreServiceFinder implements ports.ServiceFinder by searching the
// store's order API (WooCommerce REST shape) for the shipment that carries
// the tracking number and reading the shipping service code from its
// metadata.
type StoreServiceFinder struct {
	client *http.Client
	config config.StoreConfig
}

// NewStoreServiceFinder creates a new StoreServiceFinder.
func NewStoreServiceFinder(cfg config.StoreConfig) *StoreServiceFinder {
	return &StoreServiceFinder{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// storeOrder is the subset of the order payload needed for the lookup.
type storeOrder struct {
	ID            int             `json:"id"`
	MetaData      []storeMeta     `json:"meta_data"`
	ShippingLines []storeShipLine `json:"shipping_lines"`
}

type storeShipLine struct {
	MethodID string      `json:"method_id"`
	MetaData []storeMeta `json:"meta_data"`
}

type storeMeta struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// FindByTrackingNumber returns the shipping service code recorded on the
// order that carries the tracking number. An unknown number yields an
// empty code with no error.
func (f *StoreServiceFinder) FindByTrackingNumber(ctx context.Context, trackingNumber string) (string, error) {
	if f.config.URL == "" {
		// No store configured; tracking proceeds with an unknown service.
		return "", nil
	}

	endpoint := fmt.Sprintf("%s/wp-json/wc/v3/orders?search=%s", f.config.URL, url.QueryEscape(trackingNumber))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	authVal := make([]byte, 0, len(f.config.ConsumerKey)+len(f.config.ConsumerSecret)+1)
	authVal = fmt.Appendf(authVal, "%s:%s", f.config.ConsumerKey, f.config.ConsumerSecret)
	encoded := base64.StdEncoding.EncodeToString(authVal)
	req.Header.Add("Authorization", "Basic "+encoded)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("store API returned status: %d", resp.StatusCode)
	}

	var orders []storeOrder
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	for _, order := range orders {
		if code := extractServiceCode(order, trackingNumber); code != "" {
			logger.Get().Debug("Resolved shipping service for tracking number",
				zap.String("tracking_number", trackingNumber),
				zap.String("service_code", code),
				zap.Int("order_id", order.ID),
			)
			return code, nil
		}
	}

	return "", nil
}

// extractServiceCode scans the shipping lines whose metadata mentions the
// tracking number and returns the recorded service code.
func extractServiceCode(order storeOrder, trackingNumber string) string {
	for _, line := range order.ShippingLines {
		matched := false
		code := ""

		for _, meta := range line.MetaData {
			switch meta.Key {
			case "tracking_number", "_tracking_number", "Tracking Number":
				if val, ok := meta.Value.(string); ok && val == trackingNumber {
					matched = true
				}
			case "shipping_service_code", "_shipping_service_code", "frenet_service_code":
				if val, ok := meta.Value.(string); ok && val != "" {
					code = val
				}
			}
		}

		if matched && code != "" {
			return code
		}
	}

	// Legacy orders record the service code at the order level.
	numberMatches := false
	code := ""
	for _, meta := range order.MetaData {
		switch meta.Key {
		case "tracking_number", "_tracking_number":
			if val, ok := meta.Value.(string); ok && val == trackingNumber {
				numberMatches = true
			}
		case "shipping_service_code", "_shipping_service_code":
			if val, ok := meta.Value.(string); ok && val != "" {
				code = val
			}
		}
	}

	if numberMatches {
		return code
	}
	return ""
}
