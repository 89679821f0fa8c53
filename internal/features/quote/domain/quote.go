package domain

import "strings"

// QuotedService is one shipping-service offer returned by the quoting
// provider. Instances are normalized exactly once by the calculator and are
// never mutated after being read from cache.
type QuotedService struct {
	// Carrier is the carrier name as reported by the provider (e.g., Correios).
	Carrier string `json:"carrier"`
	// CarrierCode is the provider-specific carrier identifier.
	CarrierCode string `json:"carrier_code,omitempty"`
	// ServiceCode identifies the shipping service (e.g., 04014 for SEDEX).
	ServiceCode string `json:"service_code"`
	// ServiceDescription is the human-readable service description. The
	// provider encodes multi-line text with '|' separators.
	ServiceDescription string `json:"service_description"`
	// DeliveryTime is the quoted delivery estimate in days.
	DeliveryTime int `json:"delivery_time"`
	// ShippingPrice is the quoted price for this service.
	ShippingPrice float64 `json:"shipping_price"`
	// Error flags a service-level failure, distinct from a transport failure.
	Error bool `json:"error"`
	// Message carries the provider's message for errored services.
	Message string `json:"message,omitempty"`
}

// IsError reports whether this offer failed at the service level.
func (s QuotedService) IsError() bool {
	return s.Error
}

// NormalizeDescription returns a copy of the offer with the pipe-encoded
// multi-line description expanded to real newlines.
func (s QuotedService) NormalizeDescription() QuotedService {
	s.ServiceDescription = strings.ReplaceAll(s.ServiceDescription, "|", "\n")
	return s
}

// ShippingMethod is the checkout-facing normalized shipping offer.
type ShippingMethod struct {
	// Carrier is the fixed carrier code of this gateway.
	Carrier string `json:"carrier"`
	// CarrierTitle is the configured carrier display title.
	CarrierTitle string `json:"carrier_title"`
	// Method is the display title: carrier name, service description and
	// optionally the delivery forecast.
	Method string `json:"method"`
	// MethodTitle is the quoted service description.
	MethodTitle string `json:"method_title"`
	// MethodDescription is the quoted service code.
	MethodDescription string `json:"method_description"`
	// DeliveryDays is the delivery estimate after the configured lead time.
	DeliveryDays int `json:"delivery_days"`
	// Price is the price charged at checkout.
	Price float64 `json:"price"`
	// Cost equals Price; the gateway applies no markup.
	Cost float64 `json:"cost"`
}

// RateError is the structured validation error returned to the checkout
// when a rate request is malformed. Message joins every accumulated
// validation message with ", ".
type RateError struct {
	Carrier      string `json:"carrier"`
	CarrierTitle string `json:"carrier_title"`
	Message      string `json:"error_message"`
}

// Error implements the error interface.
func (e *RateError) Error() string {
	return e.Message
}
