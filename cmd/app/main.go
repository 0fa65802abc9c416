package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/greenbasket/green-basket-backend/internal/cart"
	"github.com/greenbasket/green-basket-backend/internal/category"
	"github.com/greenbasket/green-basket-backend/internal/checkout"
	"github.com/greenbasket/green-basket-backend/internal/config"
	"github.com/greenbasket/green-basket-backend/internal/credential"
	"github.com/greenbasket/green-basket-backend/internal/order"
	"github.com/greenbasket/green-basket-backend/internal/product"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLog)

	// credentials are the only durable state; cart and orders are
	// memory-resident and reset on restart, like a page reload.
	db := mustOpenDB(cfg.DatabaseURL)
	defer db.Close()

	credentialRepo := credential.NewPostgresRepository(db)
	if err := credentialRepo.EnsureSchema(); err != nil {
		log.Fatalf("could not create credential table: %v", err)
	}
	credentialService := credential.NewService(credentialRepo)
	credentialService.Subscribe(func() {
		fmt.Printf("credential state changed, authenticated=%v\n", credentialService.IsAuthenticated())
	})

	productRepo := product.NewInMemoryRepository(product.DefaultCatalog)
	productService := product.NewService(productRepo)

	cartService := cart.NewService(cart.NewInMemoryRepository())
	orderService := order.NewService(order.NewInMemoryRepository())
	checkoutService := checkout.NewService(cartService, orderService, cfg.PaymentDelay)

	product.NewHandler(productService).RegisterPublicRoutes(app)
	category.NewHandler(category.NewService(productRepo)).RegisterPublicRoutes(app)
	cart.NewHandler(cartService, productRepo).RegisterPublicRoutes(app)
	order.NewHandler(orderService).RegisterPublicRoutes(app)
	checkout.NewHandler(checkoutService).RegisterPublicRoutes(app)
	credential.NewHandler(credentialService).RegisterPublicRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func mustOpenDB(dbURL string) *sql.DB {
	if dbURL == "" {
		panic("DATABASE_URL is not set")
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	return db
}

func requestLog(c *fiber.Ctx) error {
	start := time.Now()
	fmt.Printf("URL = %s, Method = %s, Start Time = %v\n", c.OriginalURL(), c.Method(), start)
	return c.Next()
}
