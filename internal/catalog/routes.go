package catalog

import (
	"strconv"

	"shopdemo/internal/analytics"

	"github.com/gofiber/fiber/v2"
)

type RouteHandler struct {
	catalog *Catalog
	emitter *analytics.Emitter
}

func NewRouteHandler(catalog *Catalog, emitter *analytics.Emitter) *RouteHandler {
	return &RouteHandler{
		catalog: catalog,
		emitter: emitter,
	}
}

// List serves the products page. Optional category and sort query
// parameters narrow and order the listing; every render emits
// view_item_list.
func (h *RouteHandler) List(c *fiber.Ctx) error {
	products := h.catalog.All()
	listName := c.Query("list_name")
	listID := c.Query("list_id")

	if category := c.Query("category"); category != "" {
		products = h.catalog.FilterByCategory(category)
		h.emitter.CategoryView(category, len(products))
		h.emitter.FilterApplied("category", category)
	}
	if sortBy := c.Query("sort"); sortBy != "" {
		products = SortProducts(products, sortBy)
		h.emitter.SortApplied(sortBy)
	}

	h.emitter.ViewItemList(Sources(products), listName, listID)
	return c.JSON(products)
}

// Featured serves the homepage product selection.
func (h *RouteHandler) Featured(c *fiber.Ctx) error {
	products := h.catalog.Featured()
	h.emitter.ViewItemList(Sources(products), "Featured Products", "featured_products")
	return c.JSON(products)
}

// Detail serves a product detail page and emits view_item.
func (h *RouteHandler) Detail(c *fiber.Ctx) error {
	product, err := h.productParam(c)
	if err != nil {
		return err
	}

	src := product.Source()
	h.emitter.ViewItem(&src)
	return c.JSON(product)
}

// Related serves the detail page's related-products strip.
func (h *RouteHandler) Related(c *fiber.Ctx) error {
	product, err := h.productParam(c)
	if err != nil {
		return err
	}

	return c.JSON(h.catalog.Related(product.ID, 3))
}

// Select records a product being clicked from a list.
func (h *RouteHandler) Select(c *fiber.Ctx) error {
	product, err := h.productParam(c)
	if err != nil {
		return err
	}

	var body struct {
		ListName string `json:"list_name"`
		ListID   string `json:"list_id"`
	}
	_ = c.BodyParser(&body)

	src := product.Source()
	h.emitter.SelectItem(&src, body.ListName, body.ListID)
	return c.JSON(product)
}

// RecommendationClick records a recommended product being clicked.
func (h *RouteHandler) RecommendationClick(c *fiber.Ctx) error {
	product, err := h.productParam(c)
	if err != nil {
		return err
	}

	var body struct {
		Type string `json:"type"`
	}
	_ = c.BodyParser(&body)
	if body.Type == "" {
		body.Type = "related"
	}

	src := product.Source()
	h.emitter.RecommendationClick(&src, body.Type)
	return c.JSON(product)
}

// Search serves product search and emits the search event with the
// result count.
func (h *RouteHandler) Search(c *fiber.Ctx) error {
	term := c.Query("q")
	results := h.catalog.Search(term)
	h.emitter.Search(term, len(results))
	return c.JSON(results)
}

// Categories lists the available product categories.
func (h *RouteHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(h.catalog.Categories())
}

func (h *RouteHandler) productParam(c *fiber.Ctx) (Product, error) {
	id, err := strconv.Atoi(c.Params("productID"))
	if err != nil {
		h.emitter.Exception("bad_request", "invalid product id", c.Path())
		return Product{}, fiber.NewError(fiber.StatusBadRequest, "invalid product id")
	}

	product, ok := h.catalog.Get(id)
	if !ok {
		return Product{}, fiber.NewError(fiber.StatusNotFound, "product not found")
	}
	return product, nil
}
