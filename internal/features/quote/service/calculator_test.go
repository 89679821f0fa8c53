package service

import (
	"context"
	"errors"
	"testing"

	"frenet-gateway/internal/features/quote/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockQuoteCache is a mock QuoteCache backed by a map.
type mockQuoteCache struct {
	entries   map[string][]domain.QuotedService
	loadErr   error
	saveErr   error
	saveCalls int
}

func newMockQuoteCache() *mockQuoteCache {
	return &mockQuoteCache{entries: map[string][]domain.QuotedService{}}
}

// Load implements ports.QuoteCache.
func (m *mockQuoteCache) Load(_ context.Context, fingerprint string) ([]domain.QuotedService, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.entries[fingerprint], nil
}

// Save implements ports.QuoteCache.
func (m *mockQuoteCache) Save(_ context.Context, fingerprint string, services []domain.QuotedService) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries[fingerprint] = services
	return nil
}

// mockQuoteProvider is a mock QuoteProvider.
type mockQuoteProvider struct {
	services []domain.QuotedService
	err      error
	calls    int
}

// Calculate implements ports.QuoteProvider.
func (m *mockQuoteProvider) Calculate(_ context.Context, _ domain.RateRequest) ([]domain.QuotedService, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.services, nil
}

func testRateRequest() domain.RateRequest {
	return domain.RateRequest{
		DestPostcode:  "01310100",
		DestCountry:   domain.DestCountryBR,
		PackageWeight: 1.0,
		Items:         []domain.RateRequestItem{{ID: "1", SKU: "A", Qty: 2, UnitWeight: 0.5, RowWeight: 1.0}},
	}
}

// TestCalculator_GetQuote_MissThenSave verifies a miss calls the provider,
// normalizes descriptions and stores the result.
func TestCalculator_GetQuote_MissThenSave(t *testing.T) {
	cache := newMockQuoteCache()
	provider := &mockQuoteProvider{
		services: []domain.QuotedService{
			{ServiceCode: "04014", ServiceDescription: "Economic|3-5 business days", ShippingPrice: 12.5},
		},
	}
	calc := NewCalculator(cache, provider, zap.NewNop())

	request := testRateRequest()
	services, err := calc.GetQuote(context.Background(), request)

	require.NoError(t, err)
	require.Len(t, services, 1)
	assert.Equal(t, "Economic\n3-5 business days", services[0].ServiceDescription)
	assert.Equal(t, 1, cache.saveCalls)
	assert.Equal(t, services, cache.entries[request.Fingerprint()])
}

// TestCalculator_GetQuote_HitSkipsProvider verifies a cache hit returns the
// cached sequence verbatim without calling the provider.
func TestCalculator_GetQuote_HitSkipsProvider(t *testing.T) {
	cache := newMockQuoteCache()
	cached := []domain.QuotedService{{ServiceCode: "04510", ShippingPrice: 9.9}}

	request := testRateRequest()
	cache.entries[request.Fingerprint()] = cached

	provider := &mockQuoteProvider{}
	calc := NewCalculator(cache, provider, zap.NewNop())

	services, err := calc.GetQuote(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, cached, services)
	assert.Zero(t, provider.calls)
	assert.Zero(t, cache.saveCalls)
}

// TestCalculator_GetQuote_EmptyResultNotCached verifies zero offers return
// an empty slice and leave the cache untouched, so the next call asks the
// provider again.
func TestCalculator_GetQuote_EmptyResultNotCached(t *testing.T) {
	cache := newMockQuoteCache()
	provider := &mockQuoteProvider{services: []domain.QuotedService{}}
	calc := NewCalculator(cache, provider, zap.NewNop())

	request := testRateRequest()

	services, err := calc.GetQuote(context.Background(), request)
	require.NoError(t, err)
	assert.Empty(t, services)
	assert.Zero(t, cache.saveCalls)

	// A subsequent call still misses.
	_, err = calc.GetQuote(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, 2, provider.calls)
}

// TestCalculator_GetQuote_ProviderErrorPropagates verifies transport
// failures surface to the caller.
func TestCalculator_GetQuote_ProviderErrorPropagates(t *testing.T) {
	cache := newMockQuoteCache()
	provider := &mockQuoteProvider{err: errors.New("connection refused")}
	calc := NewCalculator(cache, provider, zap.NewNop())

	_, err := calc.GetQuote(context.Background(), testRateRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quote provider failed")
}

// TestCalculator_GetQuote_CacheLoadFailureIsAMiss verifies a broken cache
// backend degrades to a miss instead of failing the quote.
func TestCalculator_GetQuote_CacheLoadFailureIsAMiss(t *testing.T) {
	cache := newMockQuoteCache()
	cache.loadErr = errors.New("redis down")
	provider := &mockQuoteProvider{
		services: []domain.QuotedService{{ServiceCode: "04014"}},
	}
	calc := NewCalculator(cache, provider, zap.NewNop())

	services, err := calc.GetQuote(context.Background(), testRateRequest())

	require.NoError(t, err)
	assert.Len(t, services, 1)
	assert.Equal(t, 1, provider.calls)
}

// TestCalculator_GetQuote_SaveFailureStillReturns verifies a failed cache
// write does not lose the computed quote.
func TestCalculator_GetQuote_SaveFailureStillReturns(t *testing.T) {
	cache := newMockQuoteCache()
	cache.saveErr = errors.New("redis down")
	provider := &mockQuoteProvider{
		services: []domain.QuotedService{{ServiceCode: "04014"}},
	}
	calc := NewCalculator(cache, provider, zap.NewNop())

	services, err := calc.GetQuote(context.Background(), testRateRequest())

	require.NoError(t, err)
	assert.Len(t, services, 1)
}
