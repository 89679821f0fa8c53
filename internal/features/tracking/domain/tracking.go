package domain

import "time"

// TrackingEvent is one status point in a shipment's history, in the order
// the provider returned it.
type TrackingEvent struct {
	// Description is the event description.
	Description string `json:"description"`
	// Location is where the event occurred.
	Location string `json:"location"`
	// Date is when the event occurred. Zero when the provider's timestamp
	// could not be parsed.
	Date time.Time `json:"date"`
}

// TrackingInfo is the provider-returned history for one tracking number.
// "Most recent" is the last event in provider order; events are never
// re-sorted.
type TrackingInfo struct {
	// ServiceDescription names the shipping service that carried the package.
	ServiceDescription string `json:"service_description"`
	// Events is the ordered event history.
	Events []TrackingEvent `json:"events"`
}

// TrackingSummary is the display status derived from the most recent event.
type TrackingSummary struct {
	// Status is the description of the most recent event.
	Status string `json:"status"`
	// DeliveryLocation is the location of the most recent event.
	DeliveryLocation string `json:"delivery_location"`
	// ShippedDate is the timestamp of the most recent event.
	ShippedDate time.Time `json:"shipped_date"`
	// ServiceDescription names the shipping service.
	ServiceDescription string `json:"service_description"`
}

// TrackingStatus is the per-number status record returned to the host.
// Carrier identity, tracking number and the popup flag are always set;
// Summary is nil when the provider returned no events.
type TrackingStatus struct {
	// Carrier is the fixed carrier code of this gateway.
	Carrier string `json:"carrier"`
	// CarrierTitle is the configured carrier display title.
	CarrierTitle string `json:"carrier_title"`
	// Tracking is the tracking number this status describes.
	Tracking string `json:"tracking"`
	// Popup enables the tracking popup in the host UI.
	Popup bool `json:"popup"`
	// Summary is the current shipment status, nil when no events exist yet.
	Summary *TrackingSummary `json:"summary,omitempty"`
}
