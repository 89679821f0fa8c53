package service

import (
	"context"
	"errors"
	"strings"

	"frenet-gateway/internal/core/config"
	"frenet-gateway/internal/features/quote/domain"

	"go.uber.org/zap"
)

// ErrCarrierUnavailable is returned when the carrier is disabled or not
// fully configured. This is a silent refusal: the checkout simply shows no
// rates, no error message is produced.
var ErrCarrierUnavailable = errors.New("carrier is unavailable")

// Carrier exposes the rate collection surface consumed by the host
// checkout: configuration gating, quoting and method mapping.
type Carrier struct {
	carrierCfg config.CarrierConfig
	frenetCfg  config.FrenetConfig
	calculator *Calculator
	mapper     *MethodMapper
	logger     *zap.Logger
}

// NewCarrier creates a Carrier.
func NewCarrier(carrierCfg config.CarrierConfig, frenetCfg config.FrenetConfig, calculator *Calculator, logger *zap.Logger) *Carrier {
	return &Carrier{
		carrierCfg: carrierCfg,
		frenetCfg:  frenetCfg,
		calculator: calculator,
		mapper:     NewMethodMapper(carrierCfg),
		logger:     logger,
	}
}

// CollectRates validates the request, obtains quotes and maps them into
// shipping methods.
//
// Carrier-level misconfiguration short-circuits with ErrCarrierUnavailable
// and no message. Request-level problems are accumulated so the caller sees
// every issue at once, returned as a single *domain.RateError.
func (c *Carrier) CollectRates(ctx context.Context, request domain.RateRequest) ([]domain.ShippingMethod, error) {
	if !c.canCollectRates() {
		return nil, ErrCarrierUnavailable
	}

	if err := c.validateRequest(request); err != nil {
		return nil, err
	}

	services, err := c.calculator.GetQuote(ctx, request)
	if err != nil {
		return nil, err
	}

	return c.mapper.Map(services), nil
}

// GetAllowedMethods returns the carrier code to label mapping registered
// with the host checkout.
func (c *Carrier) GetAllowedMethods() map[string]string {
	return map[string]string{
		config.CarrierCode: c.carrierCfg.Name,
	}
}

func (c *Carrier) canCollectRates() bool {
	if !c.carrierCfg.Active {
		c.logger.Debug("Carrier is disabled")
		return false
	}

	if c.carrierCfg.OriginPostcode == "" {
		c.logger.Debug("Origin postcode is not configured")
		return false
	}

	if c.frenetCfg.Token == "" {
		c.logger.Debug("API token is not configured")
		return false
	}

	return true
}

func (c *Carrier) validateRequest(request domain.RateRequest) error {
	var messages []string

	if len(request.Items) == 0 {
		messages = append(messages, "There is no items in this order")
	}

	if request.DestPostcode == "" {
		messages = append(messages, "Please inform the destination postcode")
	}

	if domain.PostcodeIsEmpty(domain.NormalizePostcode(request.DestPostcode)) {
		messages = append(messages, "Please inform a valid postcode")
	}

	if len(messages) == 0 {
		return nil
	}

	rateErr := &domain.RateError{
		Carrier:      config.CarrierCode,
		CarrierTitle: c.carrierCfg.Title,
		Message:      strings.Join(messages, ", "),
	}

	c.logger.Debug("Rate request rejected", zap.String("error", rateErr.Message))

	return rateErr
}
