package ports

import (
	"context"

	"frenet-gateway/internal/features/tracking/domain"
)

// TrackingProvider retrieves shipment histories from the carrier.
// This is a Secondary Port (Driven Port); the production implementation
// calls the Frenet tracking API.
type TrackingProvider interface {
	// Track returns the event history for the tracking number. The service
	// code may be empty when unknown. Zero events is a valid result.
	Track(ctx context.Context, trackingNumber, serviceCode string) (*domain.TrackingInfo, error)
}

// ServiceFinder resolves the shipping service code a tracking number was
// shipped with.
type ServiceFinder interface {
	// FindByTrackingNumber returns the service code for the number, or an
	// empty string when the number is unknown.
	FindByTrackingNumber(ctx context.Context, trackingNumber string) (string, error)
}
