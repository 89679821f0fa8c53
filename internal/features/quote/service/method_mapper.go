package service

import (
	"strconv"
	"strings"

	"frenet-gateway/internal/core/config"
	"frenet-gateway/internal/features/quote/domain"
)

// titleSeparator joins the carrier name, service description and forecast
// in a method title.
const titleSeparator = " - "

// forecastPlaceholder is replaced by the effective delivery time in the
// configured forecast template.
const forecastPlaceholder = "{{d}}"

// MethodMapper converts quoted services into checkout-facing shipping
// methods, applying the configured lead time and title formatting.
type MethodMapper struct {
	cfg config.CarrierConfig
}

// NewMethodMapper creates a MethodMapper.
func NewMethodMapper(cfg config.CarrierConfig) *MethodMapper {
	return &MethodMapper{cfg: cfg}
}

// Map converts the offers into shipping methods. Offers flagged as errored
// are dropped; input order is preserved.
func (m *MethodMapper) Map(services []domain.QuotedService) []domain.ShippingMethod {
	methods := make([]domain.ShippingMethod, 0, len(services))

	for _, service := range services {
		if service.IsError() {
			continue
		}

		deliveryDays := service.DeliveryTime + m.cfg.AdditionalLeadTime

		methods = append(methods, domain.ShippingMethod{
			Carrier:           config.CarrierCode,
			CarrierTitle:      m.cfg.Title,
			Method:            m.methodTitle(service.Carrier, service.ServiceDescription, deliveryDays),
			MethodTitle:       service.ServiceDescription,
			MethodDescription: service.ServiceCode,
			DeliveryDays:      deliveryDays,
			Price:             service.ShippingPrice,
			Cost:              service.ShippingPrice,
		})
	}

	return methods
}

func (m *MethodMapper) methodTitle(carrier, description string, deliveryDays int) string {
	title := carrier + titleSeparator + description

	if m.cfg.ShowShippingForecast {
		forecast := strings.ReplaceAll(m.cfg.ShippingForecast, forecastPlaceholder, strconv.Itoa(deliveryDays))
		title += titleSeparator + forecast
	}

	return title
}
