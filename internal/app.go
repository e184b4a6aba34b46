package internal

import (
	"context"

	"shopdemo/internal/analytics"
	"shopdemo/internal/cart"
	"shopdemo/internal/catalog"
	"shopdemo/internal/checkout"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewApi assembles the storefront: catalog, cart, checkout, the analytics
// queue and the handlers that drive emissions. One process serves one
// shopper session.
func NewApi(ctx context.Context, cfg Config, log *zap.Logger) (*fiber.App, error) {
	queue := analytics.NewQueue()
	cat := catalog.Load(cfg.ProductsFile)

	cartRepo, err := cartRepository(cfg)
	if err != nil {
		return nil, err
	}

	shopCart, err := cart.Open(ctx, cartRepo)
	if err != nil {
		// A broken restore must not take the storefront down; the shopper
		// just starts with an empty cart.
		log.Warn("cart restore failed, starting empty", zap.Error(err))
	}

	emitter := analytics.NewEmitter(shopCart, queue, log,
		analytics.WithShippingCost(cfg.ShippingCost))
	watcher := analytics.NewWatcher(emitter, shopCart,
		analytics.WithDelay(cfg.AbandonDelay))

	orders, err := orderRepository(ctx, cfg)
	if err != nil {
		return nil, err
	}
	usecase := checkout.NewCheckoutUseCase(shopCart, orders, emitter, cfg.ShippingCost)

	app := fiber.New()

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(healthcheck.New(healthcheck.Config{
		LivenessProbe: func(c *fiber.Ctx) bool {
			return true
		},
		LivenessEndpoint: "/livez",
		ReadinessProbe: func(c *fiber.Ctx) bool {
			return true
		},
		ReadinessEndpoint: "/readyz",
	}))
	app.Use(logger.New())

	catalogHandler := catalog.NewRouteHandler(cat, emitter)
	app.Get("/products", catalogHandler.List)
	app.Get("/products/featured", catalogHandler.Featured)
	app.Get("/products/categories", catalogHandler.Categories)
	app.Get("/products/:productID", catalogHandler.Detail)
	app.Get("/products/:productID/related", catalogHandler.Related)
	app.Post("/products/:productID/select", catalogHandler.Select)
	app.Post("/products/:productID/recommendation", catalogHandler.RecommendationClick)
	app.Get("/search", catalogHandler.Search)

	cartHandler := cart.NewRouteHandler(shopCart, cat, emitter, cfg.ShippingCost)
	app.Get("/cart", cartHandler.View)
	app.Get("/cart/recommendations", cartHandler.Recommendations)
	app.Post("/cart/:productID", cartHandler.Add)
	app.Post("/cart/:productID/quantity", cartHandler.UpdateQuantity)
	app.Delete("/cart/:productID", cartHandler.Remove)

	checkoutHandler := checkout.NewRouteHandler(usecase)
	app.Get("/checkout", checkoutHandler.Begin)
	app.Post("/checkout/shipping", checkoutHandler.Shipping)
	app.Post("/checkout/payment", checkoutHandler.Payment)
	app.Post("/checkout/complete", checkoutHandler.Complete)
	app.Get("/orders/last", checkoutHandler.Confirmation)

	app.Post("/newsletter", func(c *fiber.Ctx) error {
		var body struct {
			Email    string `json:"email"`
			Location string `json:"location"`
		}
		if err := c.BodyParser(&body); err != nil || body.Email == "" {
			return fiber.NewError(fiber.StatusBadRequest, "email is required")
		}
		if body.Location == "" {
			body.Location = c.Path()
		}
		emitter.SignUp(body.Email, body.Location)
		return c.SendStatus(fiber.StatusAccepted)
	})

	// Page lifecycle beacons from the storefront page drive the page_view
	// emission and the abandonment watcher.
	app.Post("/page/view", func(c *fiber.Ctx) error {
		var body struct {
			Title    string `json:"title"`
			Location string `json:"location"`
		}
		_ = c.BodyParser(&body)
		emitter.PageView(body.Title, body.Location)
		return c.SendStatus(fiber.StatusAccepted)
	})
	app.Post("/page/hidden", func(c *fiber.Ctx) error {
		watcher.Hidden()
		return c.SendStatus(fiber.StatusAccepted)
	})
	app.Post("/page/visible", func(c *fiber.Ctx) error {
		watcher.Visible()
		return c.SendStatus(fiber.StatusAccepted)
	})
	app.Post("/page/unload", func(c *fiber.Ctx) error {
		watcher.Unload()
		return c.SendStatus(fiber.StatusAccepted)
	})

	// The queue's consumer side: peek for debugging, drain for the tag
	// runner.
	app.Get("/analytics/events", func(c *fiber.Ctx) error {
		return c.JSON(queue.Entries())
	})
	app.Post("/analytics/drain", func(c *fiber.Ctx) error {
		return c.JSON(queue.Drain())
	})

	return app, nil
}

func cartRepository(cfg Config) (cart.Repository, error) {
	if cfg.RedisAddr == "" {
		return cart.NewMemoryRepository(), nil
	}

	client, err := cart.NewRedisClient(cart.RedisConfig{Addr: cfg.RedisAddr})
	if err != nil {
		return nil, err
	}
	return cart.NewRedisRepository(client, cfg.CartTTL), nil
}

func orderRepository(ctx context.Context, cfg Config) (checkout.OrderRepository, error) {
	if cfg.PGConnString == "" {
		return checkout.NewMemoryOrderRepository(), nil
	}

	pool, err := DBPool(ctx, cfg.PGConnString)
	if err != nil {
		return nil, err
	}

	repo := checkout.NewPGOrderRepository(pool)
	if err := repo.ApplyMigration(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}
