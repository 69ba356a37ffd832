//	@title						E-commerce Analytics API
//	@version					1.0
//	@description				Sales analytics, recommendations and inventory for an online store.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the access token.
package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/ecommerce-analytics/docs"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/api/handlers"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/config"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/health"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/logging"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/metrics"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/notify"
	repository "github.com/aaravmahajanofficial/ecommerce-analytics/internal/repositories"
	service "github.com/aaravmahajanofficial/ecommerce-analytics/internal/services"
	"github.com/aaravmahajanofficial/ecommerce-analytics/internal/tracing"
	"github.com/aaravmahajanofficial/ecommerce-analytics/pkg/sendgrid"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const version = "1.0.0"

// lowStockNotifier always logs, and also mails and publishes when those
// channels are configured.
func lowStockNotifier(cfg *config.Config) (*notify.Multi, []io.Closer) {

	multi := notify.NewMulti().Add("log", notify.NewLogNotifier())

	var closers []io.Closer

	if cfg.SendGrid.Enabled() {
		email := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
		multi.Add("email", notify.NewEmailNotifier(email, cfg.SendGrid.AlertRecipient))
	}

	if cfg.Kafka.Enabled() {
		kafkaNotifier := notify.NewKafkaNotifier(notify.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.LowStockTopic))
		multi.Add("kafka", kafkaNotifier)
		closers = append(closers, kafkaNotifier)
	}

	return multi, closers
}

func main() {

	// Load config
	cfg := config.MustLoad()

	// Logger setup
	logger := logging.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	// Tracing setup
	shutdownTracing, err := tracing.Setup(context.Background(), cfg.Otel)
	if err != nil {
		slog.Error("❌ Error setting up tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
		}
	}()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer redisClient.Close()

	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg.RateConfig)
	idempotency := repository.NewIdempotencyRepo(redisClient, cfg.Idempotency.TTL)

	notifier, closers := lowStockNotifier(cfg)
	defer func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				slog.Error("⚠️ Error closing notifier", slog.String("error", err.Error()))
			}
		}
	}()

	threshold := cfg.Inventory.LowStockThreshold

	authService := service.NewAuthService(repos.User, rateLimiter, cfg.Security)
	recommendationService := service.NewRecommendationService(repos.Recommendation, repos.Customer)
	analyticsService := service.NewAnalyticsService(repos.Sales, recommendationService, cfg.Analytics.ChurnWindow)
	reportService := service.NewReportService(repos.Sales)
	inventoryService := service.NewInventoryService(repos.Inventory, notifier, threshold)
	customerService := service.NewCustomerService(repos.Customer)
	catalogService := service.NewCatalogService(repos.Catalog)
	orderService := service.NewOrderService(repos.Order, repos.Customer, idempotency, notifier, threshold)

	authHandler := handlers.NewAuthHandler(authService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, reportService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))

	healthHandler, err := health.NewHealthHandler(cfg, version)
	if err != nil {
		slog.Error("❌ Error setting up health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", version), slog.Int("notifiers", notifier.Len()))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /token/", authHandler.IssueToken())
	routerMux.HandleFunc("POST /token/refresh/", authHandler.RefreshToken())
	routerMux.HandleFunc("GET /sales-data/", authMiddleware.Authenticate(analyticsHandler.SalesData()))
	routerMux.HandleFunc("GET /analytics-overview/", authMiddleware.Authenticate(analyticsHandler.Overview()))
	routerMux.HandleFunc("GET /generate-monthly-sales-report/{year}/{month}/", authMiddleware.Authenticate(analyticsHandler.MonthlySalesReport()))
	routerMux.HandleFunc("GET /inventory/{id}/", authMiddleware.Authenticate(inventoryHandler.GetInventory()))
	routerMux.HandleFunc("PUT /inventory-update/{id}/", authMiddleware.Authenticate(inventoryHandler.UpdateInventory()))
	routerMux.HandleFunc("GET /customers/", authMiddleware.Authenticate(customerHandler.ListCustomers()))
	routerMux.HandleFunc("POST /customers/", authMiddleware.Authenticate(customerHandler.CreateCustomer()))
	routerMux.HandleFunc("GET /customers/{id}/", authMiddleware.Authenticate(customerHandler.GetCustomer()))
	routerMux.HandleFunc("POST /categories/", authMiddleware.Authenticate(catalogHandler.CreateCategory()))
	routerMux.HandleFunc("POST /products/", authMiddleware.Authenticate(catalogHandler.CreateProduct()))
	routerMux.HandleFunc("GET /products/", authMiddleware.Authenticate(catalogHandler.ListProducts()))
	routerMux.HandleFunc("POST /orders/", authMiddleware.Authenticate(orderHandler.PlaceOrder()))
	routerMux.HandleFunc("GET /orders/{id}/", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("PATCH /orders/{id}/status/", authMiddleware.Authenticate(orderHandler.UpdateOrderStatus()))
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "ecommerce-analytics")

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}
}
