package handler

import (
	"errors"

	"frenet-gateway/internal/features/quote/domain"
	"frenet-gateway/internal/features/quote/service"

	"github.com/gofiber/fiber/v2"
)

// QuoteHandler handles HTTP requests for rate collection.
type QuoteHandler struct {
	builder *service.RateRequestBuilder
	carrier *service.Carrier
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(builder *service.RateRequestBuilder, carrier *service.Carrier) *QuoteHandler {
	return &QuoteHandler{
		builder: builder,
		carrier: carrier,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// CartRateRequest is the payload for collecting rates for a full cart.
type CartRateRequest struct {
	// Postcode is the destination postal code.
	Postcode string `json:"postcode"`
	// Items are the cart lines to be shipped.
	Items []domain.CartItem `json:"items"`
}

// ProductRateRequest is the payload for quoting a single product, as done
// from a product page.
type ProductRateRequest struct {
	// Postcode is the destination postal code.
	Postcode string `json:"postcode"`
	// Product is the product to quote.
	Product domain.Product `json:"product"`
	// Qty is the number of units; defaults to 1.
	Qty int `json:"qty"`
	// Options carries per-product purchase options.
	Options map[string]interface{} `json:"options,omitempty"`
}

// RatesResponse is the list of shipping methods available for a request.
type RatesResponse struct {
	// Methods are the checkout-displayable shipping methods.
	Methods []domain.ShippingMethod `json:"methods"`
}

// CollectRates godoc
// @Summary Collect shipping rates for a cart
// @Description Builds a rate request from the cart, obtains quotes from the carrier and returns checkout-displayable shipping methods
// @Tags rates
// @Accept json
// @Produce json
// @Param request body CartRateRequest true "Cart rate request"
// @Success 200 {object} RatesResponse
// @Failure 400 {object} domain.RateError
// @Router /rates [post]
func (h *QuoteHandler) CollectRates(c *fiber.Ctx) error {
	var payload CartRateRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	request, err := h.builder.BuildFromCart(payload.Items, payload.Postcode)
	if err != nil {
		return h.respondBuildError(c, err)
	}

	return h.respondRates(c, request)
}

// CollectProductRates godoc
// @Summary Collect shipping rates for a single product
// @Description Quotes shipping for one product and destination, as shown on a product page
// @Tags rates
// @Accept json
// @Produce json
// @Param request body ProductRateRequest true "Product rate request"
// @Success 200 {object} RatesResponse
// @Failure 400 {object} domain.RateError
// @Router /rates/product [post]
func (h *QuoteHandler) CollectProductRates(c *fiber.Ctx) error {
	var payload ProductRateRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	if payload.Qty == 0 {
		payload.Qty = 1
	}

	request, err := h.builder.Build(payload.Product, payload.Postcode, payload.Qty, payload.Options)
	if err != nil {
		return h.respondBuildError(c, err)
	}

	return h.respondRates(c, request)
}

// GetAllowedMethods godoc
// @Summary List allowed shipping methods
// @Description Returns the carrier code to label mapping exposed to the host checkout
// @Tags rates
// @Produce json
// @Success 200 {object} map[string]string
// @Router /methods [get]
func (h *QuoteHandler) GetAllowedMethods(c *fiber.Ctx) error {
	return c.JSON(h.carrier.GetAllowedMethods())
}

func (h *QuoteHandler) respondRates(c *fiber.Ctx, request domain.RateRequest) error {
	methods, err := h.carrier.CollectRates(c.UserContext(), request)
	if err != nil {
		if errors.Is(err, service.ErrCarrierUnavailable) {
			// Misconfiguration is not the shopper's problem: the carrier
			// just offers no rates.
			return c.JSON(RatesResponse{Methods: []domain.ShippingMethod{}})
		}

		var rateErr *domain.RateError
		if errors.As(err, &rateErr) {
			return c.Status(fiber.StatusBadRequest).JSON(rateErr)
		}

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(RatesResponse{Methods: methods})
}

func (h *QuoteHandler) respondBuildError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrPostcodeRequired) || errors.Is(err, service.ErrInvalidQuantity) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Message: err.Error(),
		RayID:   c.Locals("requestid").(string),
	})
}
