package adapters

import "frenet-gateway/internal/features/quote/domain"

// AttributeExtractor implements ports.DimensionsExtractor from the weight
// attribute declared on the catalog product, with a configured fallback for
// products missing the attribute.
type AttributeExtractor struct {
	defaultWeight float64
}

// NewAttributeExtractor creates an AttributeExtractor with the given
// fallback unit weight in kg.
func NewAttributeExtractor(defaultWeight float64) *AttributeExtractor {
	return &AttributeExtractor{defaultWeight: defaultWeight}
}

// UnitWeight returns the product's declared weight, or the fallback when
// the attribute is unset.
func (e *AttributeExtractor) UnitWeight(item domain.CartItem) float64 {
	if item.Product.Weight > 0 {
		return item.Product.Weight
	}
	return e.defaultWeight
}
