package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/caribtel/storefront-api/internal/cache"
	"github.com/caribtel/storefront-api/internal/config"
	"github.com/caribtel/storefront-api/internal/database"
	"github.com/caribtel/storefront-api/internal/handler"
	"github.com/caribtel/storefront-api/internal/middleware"
	"github.com/caribtel/storefront-api/internal/repository"
	"github.com/caribtel/storefront-api/internal/service"
	"github.com/caribtel/storefront-api/internal/sse"
	"github.com/caribtel/storefront-api/internal/worker"
	"github.com/caribtel/storefront-api/pkg/microloan"
	"github.com/caribtel/storefront-api/pkg/payment"
)

// main is the application entrypoint for the storefront API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting storefront api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 3c. Initialize cart storage
	cartStorage := cache.NewCartStorage(redisClient, cfg.Cart.TTL)

	// 4. Initialize external clients
	var microloanClient *microloan.Client
	if cfg.Microloan.Configured() {
		microloanClient = microloan.NewClient(cfg.Microloan.BaseURL, cfg.Microloan.APIKey)
		log.Info().Msg("Microloan BFF client configured")
	} else {
		log.Warn().Msg("Microloan BFF not configured - financing runs in demo mode")
	}

	var paymentClient *payment.Client
	if cfg.Payment.Configured() {
		paymentClient = payment.NewClient(cfg.Payment.BaseURL, cfg.Payment.APIKey)
		log.Info().Msg("Payment gateway client configured")
	} else {
		log.Warn().Msg("Payment gateway not configured - card checkout runs in demo mode")
	}

	// 5. Initialize repositories
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// 6. Initialize SSE hub and services
	hub := sse.NewHub()

	cartSvc := service.NewCartService(cartStorage, sse.NewHubNotifier(hub))
	catalogSvc := service.NewCatalogService(catalogRepo)
	planSvc := service.NewPlanService()
	microloanSvc := service.NewMicroloanService(microloanClient)
	checkoutSvc := service.NewCheckoutService(orderRepo, cartSvc, microloanSvc, paymentClient)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:    handler.NewHealthHandler(db, redisClient, microloanSvc.DemoMode()),
		Catalog:   handler.NewCatalogHandler(catalogSvc),
		Plan:      handler.NewPlanHandler(planSvc),
		Cart:      handler.NewCartHandler(cartSvc),
		SSE:       handler.NewSSEHandler(hub, cartSvc),
		Checkout:  handler.NewCheckoutHandler(checkoutSvc),
		Microloan: handler.NewMicroloanHandler(microloanSvc),
		Webhook:   handler.NewWebhookHandler(orderRepo, cfg.Microloan.WebhookSecret),
	}

	// 8. Initialize middleware
	financingLimiter := middleware.NewFinancingRateLimiter(10, time.Minute)

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CartSessionMiddleware())
	setupRoutes(router, handlers, financingLimiter)

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start workers
	if paymentClient != nil {
		go worker.NewPaymentStatusWorker(
			orderRepo, paymentClient,
			cfg.Worker.PaymentCheckInterval,
			cfg.Worker.PaymentCheckStaleAfter,
			cfg.Worker.PaymentCheckMaxAge,
		).Start(ctx)
	}

	// 12. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health    *handler.HealthHandler
	Catalog   *handler.CatalogHandler
	Plan      *handler.PlanHandler
	Cart      *handler.CartHandler
	SSE       *handler.SSEHandler
	Checkout  *handler.CheckoutHandler
	Microloan *handler.MicroloanHandler
	Webhook   *handler.WebhookHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, financingLimiter *middleware.FinancingRateLimiter) {
	// Financing webhook endpoint
	router.POST("/webhook/microloan", handlers.Webhook.MicroloanCallback)

	router.GET("/v1/health", handlers.Health.GetHealth)

	// Catalog
	router.GET("/v1/products", handlers.Catalog.GetProducts)
	router.GET("/v1/products/:handle", handlers.Catalog.GetProductByHandle)

	// Plans
	router.GET("/v1/plans", handlers.Plan.GetPlans)
	router.GET("/v1/plans/featured", handlers.Plan.GetFeaturedPlans)
	router.GET("/v1/plans/:id/bundle-quote", handlers.Plan.GetBundleQuote)

	// Cart
	cart := router.Group("/v1/cart")
	{
		cart.GET("", handlers.Cart.GetCart)
		cart.DELETE("", handlers.Cart.ClearCart)
		cart.POST("/items", handlers.Cart.AddItem)
		cart.PATCH("/items", handlers.Cart.UpdateQuantity)
		cart.DELETE("/items", handlers.Cart.RemoveItem)
		cart.GET("/events", handlers.SSE.Stream)
	}

	// Checkout and orders
	router.POST("/v1/checkout", handlers.Checkout.Checkout)
	router.GET("/v1/orders/:orderNumber", handlers.Checkout.GetOrder)

	// Financing (rate limited per IP)
	financing := router.Group("/v1/microloan")
	financing.Use(financingLimiter.Handle())
	{
		financing.POST("/eligibility", handlers.Microloan.CheckEligibility)
		financing.POST("/apply", handlers.Microloan.Apply)
	}
}

// setupLogger configures zerolog with pretty output in development and JSON in
// production.
func setupLogger(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// runMigrations applies pending SQL migrations from the migrations directory.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
