package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizePostcode_StripsAndPads verifies non-digits are removed and
// the result is zero-padded to 8 characters.
func TestNormalizePostcode_StripsAndPads(t *testing.T) {
	assert.Equal(t, "01310100", NormalizePostcode("01310-100"))
	assert.Equal(t, "01310100", NormalizePostcode("1310100"))
	assert.Equal(t, "00000123", NormalizePostcode("1-2.3"))
}

// TestNormalizePostcode_Idempotent verifies an already-normalized postcode
// is returned unchanged.
func TestNormalizePostcode_Idempotent(t *testing.T) {
	normalized := NormalizePostcode("01310-100")
	assert.Equal(t, normalized, NormalizePostcode(normalized))
}

// TestNormalizePostcode_Empty verifies an empty postcode becomes all zeros,
// which the validation treats as missing.
func TestNormalizePostcode_Empty(t *testing.T) {
	normalized := NormalizePostcode("")
	assert.Equal(t, "00000000", normalized)
	assert.True(t, PostcodeIsEmpty(normalized))
}

// TestPostcodeIsEmpty verifies a real postcode is not considered empty.
func TestPostcodeIsEmpty(t *testing.T) {
	assert.False(t, PostcodeIsEmpty("01310100"))
	assert.True(t, PostcodeIsEmpty("00000000"))
}

// TestRateRequest_Fingerprint_Stable verifies equal requests share a
// fingerprint.
func TestRateRequest_Fingerprint_Stable(t *testing.T) {
	a := RateRequest{
		DestPostcode:  "01310100",
		DestCountry:   DestCountryBR,
		PackageWeight: 1.5,
		Items: []RateRequestItem{
			{ID: "10", SKU: "SKU-1", Qty: 3, RowWeight: 1.5},
		},
	}
	b := RateRequest{
		DestPostcode:  "01310100",
		DestCountry:   DestCountryBR,
		PackageWeight: 1.5,
		Items: []RateRequestItem{
			{ID: "10", SKU: "SKU-1", Qty: 3, RowWeight: 1.5},
		},
	}

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

// TestRateRequest_Fingerprint_SensitiveToComposition verifies the
// fingerprint changes with destination, weight and line composition.
func TestRateRequest_Fingerprint_SensitiveToComposition(t *testing.T) {
	base := RateRequest{
		DestPostcode:  "01310100",
		DestCountry:   DestCountryBR,
		PackageWeight: 1.0,
		Items: []RateRequestItem{
			{ID: "10", SKU: "SKU-1", Qty: 2, RowWeight: 1.0},
		},
	}

	otherPostcode := base
	otherPostcode.DestPostcode = "04538133"
	assert.NotEqual(t, base.Fingerprint(), otherPostcode.Fingerprint())

	otherQty := base
	otherQty.Items = []RateRequestItem{{ID: "10", SKU: "SKU-1", Qty: 3, RowWeight: 1.5}}
	assert.NotEqual(t, base.Fingerprint(), otherQty.Fingerprint())
}
