package service

import (
	"errors"
	"fmt"

	"frenet-gateway/internal/features/quote/domain"
	"frenet-gateway/internal/features/quote/ports"
)

var (
	// ErrPostcodeRequired is returned when a rate request is built without
	// a destination postcode.
	ErrPostcodeRequired = errors.New("destination postcode is required")
	// ErrInvalidQuantity is returned when a rate request is built with a
	// non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)

// DefaultBuilderKey is the item builder used when no builder is registered
// for a product type.
const DefaultBuilderKey = "default"

// RateRequestBuilder assembles normalized rate requests from products or
// carts. Item builders are resolved by product type with a mandatory
// default fallback.
type RateRequestBuilder struct {
	builders  map[string]ports.ItemBuilder
	extractor ports.DimensionsExtractor
}

// NewRateRequestBuilder creates a RateRequestBuilder. The builders map must
// contain a "default" entry.
func NewRateRequestBuilder(builders map[string]ports.ItemBuilder, extractor ports.DimensionsExtractor) (*RateRequestBuilder, error) {
	if _, ok := builders[DefaultBuilderKey]; !ok {
		return nil, fmt.Errorf("item builder registry must contain a %q entry", DefaultBuilderKey)
	}
	return &RateRequestBuilder{
		builders:  builders,
		extractor: extractor,
	}, nil
}

// Build assembles a rate request for a single product, as quoted from a
// product page.
func (b *RateRequestBuilder) Build(product domain.Product, postcode string, qty int, options map[string]interface{}) (domain.RateRequest, error) {
	return b.BuildFromCart([]domain.CartItem{{
		Product: product,
		Qty:     qty,
		Options: options,
	}}, postcode)
}

// BuildFromCart assembles a rate request for a full cart. The package
// weight is the sum of unit weight times quantity over all lines, fixed at
// assembly time.
func (b *RateRequestBuilder) BuildFromCart(items []domain.CartItem, postcode string) (domain.RateRequest, error) {
	if postcode == "" {
		return domain.RateRequest{}, ErrPostcodeRequired
	}

	request := domain.RateRequest{
		DestPostcode: domain.NormalizePostcode(postcode),
		DestCountry:  domain.DestCountryBR,
		Items:        make([]domain.RateRequestItem, 0, len(items)),
	}

	for _, item := range items {
		if item.Qty <= 0 {
			return domain.RateRequest{}, ErrInvalidQuantity
		}

		line, err := b.buildItem(item)
		if err != nil {
			return domain.RateRequest{}, err
		}

		request.Items = append(request.Items, line)
		request.PackageWeight += line.RowWeight
	}

	return request, nil
}

func (b *RateRequestBuilder) buildItem(item domain.CartItem) (domain.RateRequestItem, error) {
	itemRequest := b.builderFor(item.Product.TypeID).Build(item.Product, item.Qty, item.Options)

	// Historical workaround kept from the original integration: a nested
	// "options" entry replaces the resolved options wholesale.
	if item.Options != nil {
		if nested, ok := item.Options["options"].(map[string]interface{}); ok {
			itemRequest.Options = nested
		}
	}

	unitWeight := 0.0
	if !itemRequest.Weightless {
		unitWeight = b.extractor.UnitWeight(item)
	}

	// Identical products added separately must stay distinguishable, so
	// every line carries a stable identifier.
	id := item.ItemID
	if id == "" {
		id = item.Product.ID
	}

	return domain.RateRequestItem{
		ID:         id,
		SKU:        item.Product.SKU,
		Qty:        itemRequest.Qty,
		UnitWeight: unitWeight,
		RowWeight:  unitWeight * float64(itemRequest.Qty),
		Options:    itemRequest.Options,
	}, nil
}

func (b *RateRequestBuilder) builderFor(typeID string) ports.ItemBuilder {
	if builder, ok := b.builders[typeID]; ok {
		return builder
	}
	return b.builders[DefaultBuilderKey]
}

// DefaultItemBuilder handles every product type without special purchase
// semantics.
type DefaultItemBuilder struct{}

// Build implements ports.ItemBuilder.
func (DefaultItemBuilder) Build(_ domain.Product, qty int, options map[string]interface{}) domain.ItemRequest {
	return domain.ItemRequest{
		Qty:     qty,
		Options: options,
	}
}

// VirtualItemBuilder handles virtual and downloadable products, which never
// contribute to the package weight.
type VirtualItemBuilder struct{}

// Build implements ports.ItemBuilder.
func (VirtualItemBuilder) Build(_ domain.Product, qty int, options map[string]interface{}) domain.ItemRequest {
	return domain.ItemRequest{
		Qty:        qty,
		Options:    options,
		Weightless: true,
	}
}

// DefaultBuilders returns the standard item builder registry.
func DefaultBuilders() map[string]ports.ItemBuilder {
	return map[string]ports.ItemBuilder{
		DefaultBuilderKey: DefaultItemBuilder{},
		"virtual":         VirtualItemBuilder{},
		"downloadable":    VirtualItemBuilder{},
	}
}
