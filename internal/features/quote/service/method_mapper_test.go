package service

import (
	"testing"

	"frenet-gateway/internal/core/config"
	"frenet-gateway/internal/features/quote/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCarrierConfig() config.CarrierConfig {
	return config.CarrierConfig{
		Active:               true,
		Title:                "Frenet",
		Name:                 "Frenet Shipping",
		OriginPostcode:       "04538133",
		AdditionalLeadTime:   2,
		ShowShippingForecast: true,
		ShippingForecast:     "Delivery in up to {{d}} business day(s)",
	}
}

// TestMethodMapper_Map verifies the full field mapping of one offer.
func TestMethodMapper_Map(t *testing.T) {
	mapper := NewMethodMapper(testCarrierConfig())

	methods := mapper.Map([]domain.QuotedService{
		{
			Carrier:            "Correios",
			ServiceCode:        "04014",
			ServiceDescription: "SEDEX",
			DeliveryTime:       3,
			ShippingPrice:      27.9,
		},
	})

	require.Len(t, methods, 1)
	method := methods[0]
	assert.Equal(t, config.CarrierCode, method.Carrier)
	assert.Equal(t, "Frenet", method.CarrierTitle)
	assert.Equal(t, "Correios - SEDEX - Delivery in up to 5 business day(s)", method.Method)
	assert.Equal(t, "SEDEX", method.MethodTitle)
	assert.Equal(t, "04014", method.MethodDescription)
	assert.Equal(t, 5, method.DeliveryDays)
	assert.InDelta(t, 27.9, method.Price, 1e-9)
	assert.InDelta(t, 27.9, method.Cost, 1e-9)
}

// TestMethodMapper_Map_DropsErroredServices verifies errored offers are
// silently filtered: N inputs with K errors yield N-K methods.
func TestMethodMapper_Map_DropsErroredServices(t *testing.T) {
	mapper := NewMethodMapper(testCarrierConfig())

	methods := mapper.Map([]domain.QuotedService{
		{Carrier: "Correios", ServiceCode: "04014", ServiceDescription: "SEDEX"},
		{Carrier: "Correios", ServiceCode: "04510", Error: true, Message: "service unavailable"},
		{Carrier: "Jadlog", ServiceCode: "JAD-1", ServiceDescription: "Package"},
	})

	require.Len(t, methods, 2)
	assert.Equal(t, "04014", methods[0].MethodDescription)
	assert.Equal(t, "JAD-1", methods[1].MethodDescription)
}

// TestMethodMapper_Map_LeadTimeIsAdditive verifies the effective delivery
// time is never below the quoted one.
func TestMethodMapper_Map_LeadTimeIsAdditive(t *testing.T) {
	cfg := testCarrierConfig()
	cfg.AdditionalLeadTime = 4
	mapper := NewMethodMapper(cfg)

	methods := mapper.Map([]domain.QuotedService{
		{Carrier: "Correios", ServiceCode: "04014", DeliveryTime: 3},
	})

	require.Len(t, methods, 1)
	assert.Equal(t, 7, methods[0].DeliveryDays)
	assert.GreaterOrEqual(t, methods[0].DeliveryDays, 3)
}

// TestMethodMapper_Map_ForecastDisabled verifies no forecast suffix is
// appended when the toggle is off.
func TestMethodMapper_Map_ForecastDisabled(t *testing.T) {
	cfg := testCarrierConfig()
	cfg.ShowShippingForecast = false
	mapper := NewMethodMapper(cfg)

	methods := mapper.Map([]domain.QuotedService{
		{Carrier: "Correios", ServiceCode: "04014", ServiceDescription: "SEDEX", DeliveryTime: 3},
	})

	require.Len(t, methods, 1)
	assert.Equal(t, "Correios - SEDEX", methods[0].Method)
}

// TestMethodMapper_Map_PreservesOrder verifies output order matches input
// order.
func TestMethodMapper_Map_PreservesOrder(t *testing.T) {
	mapper := NewMethodMapper(testCarrierConfig())

	methods := mapper.Map([]domain.QuotedService{
		{Carrier: "A", ServiceCode: "1"},
		{Carrier: "B", ServiceCode: "2"},
		{Carrier: "C", ServiceCode: "3"},
	})

	require.Len(t, methods, 3)
	assert.Equal(t, "1", methods[0].MethodDescription)
	assert.Equal(t, "2", methods[1].MethodDescription)
	assert.Equal(t, "3", methods[2].MethodDescription)
}
