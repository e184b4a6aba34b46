package cart

import (
	"strconv"

	"shopdemo/internal/analytics"
	"shopdemo/internal/catalog"

	"github.com/gofiber/fiber/v2"
)

type RouteHandler struct {
	cart         *Cart
	catalog      *catalog.Catalog
	emitter      *analytics.Emitter
	shippingCost float64
}

func NewRouteHandler(cart *Cart, cat *catalog.Catalog, emitter *analytics.Emitter, shippingCost float64) *RouteHandler {
	return &RouteHandler{
		cart:         cart,
		catalog:      cat,
		emitter:      emitter,
		shippingCost: shippingCost,
	}
}

type cartView struct {
	Items    []Line  `json:"items"`
	Count    int     `json:"count"`
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

func (h *RouteHandler) view() cartView {
	subtotal := h.cart.Subtotal()
	shipping := 0.0
	if subtotal > 0 {
		shipping = h.shippingCost
	}

	return cartView{
		Items:    h.cart.Items(),
		Count:    h.cart.Count(),
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    h.cart.Total(h.shippingCost),
	}
}

// View serves the cart page and emits view_cart.
func (h *RouteHandler) View(c *fiber.Ctx) error {
	h.emitter.ViewCart()
	return c.JSON(h.view())
}

// Add puts a product into the cart and emits add_to_cart.
func (h *RouteHandler) Add(c *fiber.Ctx) error {
	product, err := h.productParam(c)
	if err != nil {
		return err
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	_ = c.BodyParser(&body)
	if body.Quantity < 1 {
		body.Quantity = 1
	}

	line := Line{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  body.Quantity,
		Image:     product.Image,
		Category:  product.Category,
	}
	if err := h.cart.Add(c.Context(), line); err != nil {
		return err
	}

	src := product.Source()
	h.emitter.AddToCart(&src, body.Quantity)
	return c.JSON(h.view())
}

// UpdateQuantity sets a line's quantity; zero or less removes the line
// and emits remove_from_cart.
func (h *RouteHandler) UpdateQuantity(c *fiber.Ctx) error {
	product, err := h.productParam(c)
	if err != nil {
		return err
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid quantity payload")
	}

	line, removed, err := h.cart.UpdateQuantity(c.Context(), product.ID, body.Quantity)
	if err != nil {
		return err
	}
	if removed {
		src := product.Source()
		h.emitter.RemoveFromCart(&src, line.Quantity)
	}

	return c.JSON(h.view())
}

// Remove deletes a line and emits remove_from_cart with the quantity that
// was in the cart.
func (h *RouteHandler) Remove(c *fiber.Ctx) error {
	product, err := h.productParam(c)
	if err != nil {
		return err
	}

	line, removed, err := h.cart.Remove(c.Context(), product.ID)
	if err != nil {
		return err
	}
	if removed {
		src := product.Source()
		h.emitter.RemoveFromCart(&src, line.Quantity)
	}

	return c.JSON(h.view())
}

// Recommendations serves cart-driven product suggestions.
func (h *RouteHandler) Recommendations(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Recommended(h.cart.ProductIDs(), 4))
}

func (h *RouteHandler) productParam(c *fiber.Ctx) (catalog.Product, error) {
	id, err := strconv.Atoi(c.Params("productID"))
	if err != nil {
		h.emitter.Exception("bad_request", "invalid product id", c.Path())
		return catalog.Product{}, fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	product, ok := h.catalog.Get(id)
	if !ok {
		return catalog.Product{}, fiber.NewError(fiber.StatusNotFound, "product not found")
	}
	return product, nil
}
