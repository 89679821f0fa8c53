package handler

import (
	"strings"

	"frenet-gateway/internal/features/tracking/domain"
	"frenet-gateway/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
)

// TrackingHandler handles HTTP requests for shipment tracking.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// TrackingResponse is the list of per-number status records.
type TrackingResponse struct {
	// Statuses holds one record per requested tracking number, in request order.
	Statuses []domain.TrackingStatus `json:"statuses"`
}

// GetTracking godoc
// @Summary Get shipment status for one or more tracking numbers
// @Description Resolves each tracking number to its current shipment status; multiple numbers are comma-separated
// @Tags tracking
// @Produce json
// @Param numbers path string true "Tracking number(s), comma-separated"
// @Success 200 {object} TrackingResponse
// @Failure 400 {object} ErrorResponse
// @Router /tracking/{numbers} [get]
func (h *TrackingHandler) GetTracking(c *fiber.Ctx) error {
	raw := c.Params("numbers")
	if raw == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "tracking number is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	var numbers []string
	for _, number := range strings.Split(raw, ",") {
		if number = strings.TrimSpace(number); number != "" {
			numbers = append(numbers, number)
		}
	}

	if len(numbers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "tracking number is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	statuses, err := h.trackingService.Track(c.UserContext(), numbers)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(TrackingResponse{Statuses: statuses})
}
