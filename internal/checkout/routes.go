package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type RouteHandler struct {
	usecase *CheckoutUseCase
}

func NewRouteHandler(usecase *CheckoutUseCase) *RouteHandler {
	return &RouteHandler{usecase: usecase}
}

// Begin serves the checkout page summary.
func (h *RouteHandler) Begin(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"items": h.usecase.Begin(),
	})
}

// Shipping validates the shipping step as the shopper fills it in.
func (h *RouteHandler) Shipping(c *fiber.Ctx) error {
	var form ShippingForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid shipping payload")
	}

	return c.JSON(fiber.Map{
		"valid": h.usecase.SubmitShipping(form),
	})
}

// Payment validates the payment step as the shopper fills it in.
func (h *RouteHandler) Payment(c *fiber.Ctx) error {
	var form PaymentForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payment payload")
	}

	return c.JSON(fiber.Map{
		"valid": h.usecase.SubmitPayment(form),
	})
}

// Complete finalizes the order and returns it for the redirect to the
// confirmation page.
func (h *RouteHandler) Complete(c *fiber.Ctx) error {
	var body struct {
		Shipping ShippingForm `json:"shipping"`
		Payment  PaymentForm  `json:"payment"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid order payload")
	}

	order, err := h.usecase.Complete(c.Context(), body.Shipping, body.Payment)
	switch {
	case errors.Is(err, ErrShippingIncomplete), errors.Is(err, ErrPaymentIncomplete), errors.Is(err, ErrEmptyCart):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case err != nil:
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// Confirmation serves the thank-you page from the stored order.
func (h *RouteHandler) Confirmation(c *fiber.Ctx) error {
	order, err := h.usecase.Confirmation(c.Context())
	if errors.Is(err, ErrNoOrder) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		return err
	}

	return c.JSON(order)
}
