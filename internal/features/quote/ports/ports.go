package ports

import (
	"context"

	"frenet-gateway/internal/features/quote/domain"
)

// QuoteProvider obtains shipping-service offers for a rate request.
// This is a Secondary Port (Driven Port); the production implementation
// calls the Frenet quote API.
type QuoteProvider interface {
	// Calculate returns zero or more offers for the request. An empty slice
	// is a valid terminal state, not an error.
	Calculate(ctx context.Context, request domain.RateRequest) ([]domain.QuotedService, error)
}

// QuoteCache stores computed offer lists keyed by the request fingerprint.
type QuoteCache interface {
	// Load returns the cached offers for the fingerprint, or (nil, nil)
	// on a cache miss.
	Load(ctx context.Context, fingerprint string) ([]domain.QuotedService, error)
	// Save stores the offers under the fingerprint.
	Save(ctx context.Context, fingerprint string, services []domain.QuotedService) error
}

// DimensionsExtractor resolves the unit weight of a cart item.
type DimensionsExtractor interface {
	// UnitWeight returns the per-unit weight in kg for the item.
	UnitWeight(item domain.CartItem) float64
}

// ItemBuilder produces the normalized purchase data for one product type.
// Implementations are pure: they return a new value instead of mutating
// shared state.
type ItemBuilder interface {
	// Build resolves the type-specific purchase data for the product.
	Build(product domain.Product, qty int, options map[string]interface{}) domain.ItemRequest
}
