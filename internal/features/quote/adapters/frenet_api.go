package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"frenet-gateway/internal/core/config"
	"frenet-gateway/internal/core/httpclient"
	"frenet-gateway/internal/core/logger"
	"frenet-gateway/internal/features/quote/domain"

	"go.uber.org/zap"
)

// FrenetAPI implements ports.QuoteProvider against the Frenet REST API.
type FrenetAPI struct {
	client         *http.Client
	cfg            config.FrenetConfig
	originPostcode string
	logger         *zap.Logger
}

// NewFrenetAPI creates a FrenetAPI quote provider shipping from the given
// origin postcode.
func NewFrenetAPI(cfg config.FrenetConfig, originPostcode string) *FrenetAPI {
	return &FrenetAPI{
		client:         httpclient.NewClient(15 * time.Second),
		cfg:            cfg,
		originPostcode: originPostcode,
		logger:         logger.Get(),
	}
}

// frenetQuoteRequest is the shipping/quote request payload.
type frenetQuoteRequest struct {
	SellerCEP         string            `json:"SellerCEP"`
	RecipientCEP      string            `json:"RecipientCEP"`
	RecipientCountry  string            `json:"RecipientCountry"`
	ShippingItemArray []frenetQuoteItem `json:"ShippingItemArray"`
}

// frenetQuoteItem is one line of the quote payload.
type frenetQuoteItem struct {
	SKU      string  `json:"SKU,omitempty"`
	Weight   float64 `json:"Weight"`
	Quantity int     `json:"Quantity"`
}

// frenetQuoteResponse is the shipping/quote response payload. Numeric
// fields arrive as strings; "ShippingSevicesArray" is the field name as the
// API returns it.
type frenetQuoteResponse struct {
	ShippingServices []frenetQuoteService `json:"ShippingSevicesArray"`
}

type frenetQuoteService struct {
	Carrier            string `json:"Carrier"`
	CarrierCode        string `json:"CarrierCode"`
	ServiceCode        string `json:"ServiceCode"`
	ServiceDescription string `json:"ServiceDescription"`
	DeliveryTime       string `json:"DeliveryTime"`
	ShippingPrice      string `json:"ShippingPrice"`
	Error              bool   `json:"Error"`
	Msg                string `json:"Msg"`
}

// Calculate requests offers for the rate request and maps them to domain
// quoted services.
func (a *FrenetAPI) Calculate(ctx context.Context, request domain.RateRequest) ([]domain.QuotedService, error) {
	payload := frenetQuoteRequest{
		SellerCEP:        domain.NormalizePostcode(a.originPostcode),
		RecipientCEP:     request.DestPostcode,
		RecipientCountry: request.DestCountry,
	}

	for _, item := range request.Items {
		payload.ShippingItemArray = append(payload.ShippingItemArray, frenetQuoteItem{
			SKU:      item.SKU,
			Weight:   item.UnitWeight,
			Quantity: item.Qty,
		})
	}

	var response frenetQuoteResponse
	if err := a.post(ctx, "/shipping/quote", payload, &response); err != nil {
		return nil, err
	}

	services := make([]domain.QuotedService, 0, len(response.ShippingServices))
	for _, svc := range response.ShippingServices {
		services = append(services, domain.QuotedService{
			Carrier:            svc.Carrier,
			CarrierCode:        svc.CarrierCode,
			ServiceCode:        svc.ServiceCode,
			ServiceDescription: svc.ServiceDescription,
			DeliveryTime:       parseInt(svc.DeliveryTime),
			ShippingPrice:      parseFloat(svc.ShippingPrice),
			Error:              svc.Error,
			Message:            svc.Msg,
		})
	}

	a.logger.Debug("Frenet quote completed",
		zap.String("recipient_cep", request.DestPostcode),
		zap.Int("services", len(services)),
	)

	return services, nil
}

func (a *FrenetAPI) post(ctx context.Context, path string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.APIURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("token", a.cfg.Token)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("frenet API returned status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// parseInt converts the API's string-typed integers; malformed values map
// to zero rather than failing the whole quote.
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
