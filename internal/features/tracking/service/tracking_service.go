package service

import (
	"context"
	"fmt"

	"frenet-gateway/internal/core/config"
	"frenet-gateway/internal/features/tracking/domain"
	"frenet-gateway/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// TrackingService resolves tracking numbers into display-ready shipment
// statuses. Numbers are processed sequentially, one provider call each.
type TrackingService struct {
	finder     ports.ServiceFinder
	provider   ports.TrackingProvider
	carrierCfg config.CarrierConfig
	logger     *zap.Logger
}

// NewTrackingService creates a TrackingService.
func NewTrackingService(finder ports.ServiceFinder, provider ports.TrackingProvider, carrierCfg config.CarrierConfig, logger *zap.Logger) *TrackingService {
	return &TrackingService{
		finder:     finder,
		provider:   provider,
		carrierCfg: carrierCfg,
		logger:     logger,
	}
}

// Track returns one status record per tracking number. A failed service
// code lookup is non-fatal; tracking proceeds with an unknown service. A
// provider failure propagates.
func (s *TrackingService) Track(ctx context.Context, trackingNumbers []string) ([]domain.TrackingStatus, error) {
	statuses := make([]domain.TrackingStatus, 0, len(trackingNumbers))

	for _, number := range trackingNumbers {
		status, err := s.trackOne(ctx, number)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

func (s *TrackingService) trackOne(ctx context.Context, number string) (domain.TrackingStatus, error) {
	serviceCode, err := s.finder.FindByTrackingNumber(ctx, number)
	if err != nil {
		s.logger.Warn("Service code lookup failed, tracking with unknown service",
			zap.String("tracking_number", number),
			zap.Error(err),
		)
		serviceCode = ""
	}

	status := domain.TrackingStatus{
		Carrier:      config.CarrierCode,
		CarrierTitle: s.carrierCfg.Title,
		Tracking:     number,
		Popup:        true,
	}

	info, err := s.provider.Track(ctx, number, serviceCode)
	if err != nil {
		return domain.TrackingStatus{}, fmt.Errorf("failed to track %s: %w", number, err)
	}

	if len(info.Events) == 0 {
		return status, nil
	}

	latest := info.Events[len(info.Events)-1]
	status.Summary = &domain.TrackingSummary{
		Status:             latest.Description,
		DeliveryLocation:   latest.Location,
		ShippedDate:        latest.Date,
		ServiceDescription: info.ServiceDescription,
	}

	return status, nil
}
