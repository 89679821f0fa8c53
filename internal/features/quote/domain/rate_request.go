package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Product is the projection of a store product needed to build a rate request.
type Product struct {
	// ID is the product identifier in the store catalog.
	ID string `json:"id"`
	// SKU is the Stock Keeping Unit identifier.
	SKU string `json:"sku"`
	// TypeID is the product type tag (e.g., simple, virtual). An unknown
	// type falls back to the default item builder.
	TypeID string `json:"type_id"`
	// Weight is the unit weight in kg as declared in the catalog.
	// Zero means the attribute is unset.
	Weight float64 `json:"weight"`
}

// CartItem is one line of the checkout cart handed to the rate request builder.
type CartItem struct {
	// ItemID is the cart line identifier. May be empty; the builder then
	// falls back to the product ID.
	ItemID string `json:"item_id"`
	// Product is the product being shipped.
	Product Product `json:"product"`
	// Qty is the number of units on this line.
	Qty int `json:"qty"`
	// Options carries per-line purchase options.
	Options map[string]interface{} `json:"options,omitempty"`
}

// ItemRequest is the resolved purchase data for one product, produced by a
// type-specific item builder before the line item is assembled.
type ItemRequest struct {
	// Qty is the number of units requested.
	Qty int
	// Options carries the purchase options for the line.
	Options map[string]interface{}
	// Weightless marks products that do not contribute to package weight.
	Weightless bool
}

// RateRequestItem is one normalized line item of a RateRequest.
type RateRequestItem struct {
	// ID is the stable line identifier.
	ID string `json:"id"`
	// SKU is the product SKU.
	SKU string `json:"sku"`
	// Qty is the number of units.
	Qty int `json:"qty"`
	// UnitWeight is the per-unit weight in kg at assembly time.
	UnitWeight float64 `json:"unit_weight"`
	// RowWeight is UnitWeight multiplied by Qty, fixed at assembly time.
	RowWeight float64 `json:"row_weight"`
	// Options carries the resolved purchase options for this line.
	Options map[string]interface{} `json:"options,omitempty"`
}

// RateRequest is the normalized description of what is being shipped and to
// where. It is built once per quote attempt and not mutated afterwards.
type RateRequest struct {
	// DestPostcode is the destination CEP, digits only, zero-padded to 8.
	DestPostcode string `json:"dest_postcode"`
	// DestCountry is the destination country code.
	DestCountry string `json:"dest_country"`
	// PackageWeight is the sum of the item row weights in kg.
	PackageWeight float64 `json:"package_weight"`
	// Items are the normalized line items.
	Items []RateRequestItem `json:"items"`
}

// DestCountryBR is the only destination country served by the Frenet API.
const DestCountryBR = "BR"

// Fingerprint derives the cache key for this request: a content hash over
// destination, package weight and line composition. Two requests with the
// same fingerprint are cache-equivalent.
func (r RateRequest) Fingerprint() string {
	var b strings.Builder
	b.WriteString(r.DestPostcode)
	b.WriteByte('|')
	b.WriteString(r.DestCountry)
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(r.PackageWeight, 'f', -1, 64))
	for _, item := range r.Items {
		fmt.Fprintf(&b, "|%s:%s:%d:%s", item.ID, item.SKU, item.Qty,
			strconv.FormatFloat(item.RowWeight, 'f', -1, 64))
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// NormalizePostcode strips every non-digit character and left-pads the
// result with zeros to 8 characters. Already-normalized input is returned
// unchanged; an empty string becomes "00000000".
func NormalizePostcode(postcode string) string {
	var digits strings.Builder
	for _, r := range postcode {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	normalized := digits.String()
	if len(normalized) < 8 {
		normalized = strings.Repeat("0", 8-len(normalized)) + normalized
	}
	return normalized
}

// PostcodeIsEmpty reports whether a normalized postcode carries no
// information, i.e. parses to integer zero.
func PostcodeIsEmpty(normalized string) bool {
	n, err := strconv.Atoi(normalized)
	return err != nil || n == 0
}
