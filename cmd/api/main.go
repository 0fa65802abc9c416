package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/greenbasket/green-basket-backend/internal/cart"
	"github.com/greenbasket/green-basket-backend/internal/category"
	"github.com/greenbasket/green-basket-backend/internal/checkout"
	"github.com/greenbasket/green-basket-backend/internal/config"
	"github.com/greenbasket/green-basket-backend/internal/credential"
	"github.com/greenbasket/green-basket-backend/internal/order"
	"github.com/greenbasket/green-basket-backend/internal/product"
)

// main wires the database-free demo server: every store, credentials
// included, lives in memory.
func main() {
	cfg := config.Load()

	app := fiber.New()

	productRepo := product.NewInMemoryRepository(product.DefaultCatalog)
	cartService := cart.NewService(cart.NewInMemoryRepository())
	orderService := order.NewService(order.NewInMemoryRepository())

	product.NewHandler(product.NewService(productRepo)).RegisterPublicRoutes(app)
	category.NewHandler(category.NewService(productRepo)).RegisterPublicRoutes(app)
	cart.NewHandler(cartService, productRepo).RegisterPublicRoutes(app)
	order.NewHandler(orderService).RegisterPublicRoutes(app)
	checkout.NewHandler(checkout.NewService(cartService, orderService, cfg.PaymentDelay)).RegisterPublicRoutes(app)
	credential.NewHandler(credential.NewService(credential.NewInMemoryRepository())).RegisterPublicRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
