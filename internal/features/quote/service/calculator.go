package service

import (
	"context"
	"fmt"

	"frenet-gateway/internal/features/quote/domain"
	"frenet-gateway/internal/features/quote/ports"

	"go.uber.org/zap"
)

// Calculator orchestrates the quote pipeline: cache lookup, provider call,
// description normalization and cache write-back.
type Calculator struct {
	cache    ports.QuoteCache
	provider ports.QuoteProvider
	logger   *zap.Logger
}

// NewCalculator creates a Calculator.
func NewCalculator(cache ports.QuoteCache, provider ports.QuoteProvider, logger *zap.Logger) *Calculator {
	return &Calculator{
		cache:    cache,
		provider: provider,
		logger:   logger,
	}
}

// GetQuote returns the offers for the request. Cached results are returned
// verbatim without re-normalization. Zero offers yield an empty slice, not
// an error; only transport failures from the provider propagate.
func (c *Calculator) GetQuote(ctx context.Context, request domain.RateRequest) ([]domain.QuotedService, error) {
	fingerprint := request.Fingerprint()

	cached, err := c.cache.Load(ctx, fingerprint)
	if err != nil {
		// A broken cache backend must not take quoting down with it.
		c.logger.Warn("Quote cache load failed",
			zap.String("fingerprint", fingerprint),
			zap.Error(err),
		)
	}
	if cached != nil {
		c.logger.Debug("Quote cache hit", zap.String("fingerprint", fingerprint))
		return cached, nil
	}

	services, err := c.provider.Calculate(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("quote provider failed: %w", err)
	}

	for i, service := range services {
		services[i] = service.NormalizeDescription()
	}

	if len(services) == 0 {
		// Transient empty responses are not cached; the next call asks the
		// provider again.
		return []domain.QuotedService{}, nil
	}

	if err := c.cache.Save(ctx, fingerprint, services); err != nil {
		c.logger.Warn("Quote cache save failed",
			zap.String("fingerprint", fingerprint),
			zap.Error(err),
		)
	}

	return services, nil
}
