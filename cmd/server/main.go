package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	clientapp "github.com/rentals/backend/internal/application/client"
	paymentapp "github.com/rentals/backend/internal/application/payment"
	propertyapp "github.com/rentals/backend/internal/application/property"
	reservationapp "github.com/rentals/backend/internal/application/reservation"
	valuationapp "github.com/rentals/backend/internal/application/valuation"
	"github.com/rentals/backend/internal/infrastructure/cache"
	"github.com/rentals/backend/internal/infrastructure/config"
	"github.com/rentals/backend/internal/infrastructure/logger"
	"github.com/rentals/backend/internal/infrastructure/persistence"
	"github.com/rentals/backend/internal/infrastructure/telemetry"
	"github.com/rentals/backend/internal/interfaces/http/handler"
	"github.com/rentals/backend/internal/interfaces/http/middleware"
	"github.com/rentals/backend/internal/interfaces/http/router"
	"go.uber.org/zap"

	_ "github.com/rentals/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Rentals Backend API
//	@version		1.0
//	@description	Vacation rental reservations: clients, properties, reservations, payments and valuations.

//	@contact.name	Rentals API Support

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@externalDocs.description	OpenAPI
//	@externalDocs.url			https://swagger.io/resources/open-api/

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	// Telemetry first so the bridged logger carries trace context everywhere
	providers, err := telemetry.Setup(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		ServiceName:       cfg.Telemetry.ServiceName,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		Insecure:          cfg.Telemetry.Insecure,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		MetricsInterval:   cfg.Telemetry.MetricsInterval,
		LogsEnabled:       cfg.Telemetry.LogsEnabled,
		Profiling: telemetry.ProfilerConfig{
			Enabled:       cfg.Telemetry.Profiling.Enabled,
			ServerAddress: cfg.Telemetry.Profiling.ServerAddress,
		},
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	log = providers.BridgeLogger(log)
	meter := providers.Meter("github.com/rentals/backend")

	log.Info("Starting rentals backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.Bool("telemetry", providers.Enabled()),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Database.SlowThreshold))

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTracing {
		if err := telemetry.InstrumentDB(db.DB, telemetry.DBTracingConfig{
			DBName:             cfg.Database.Name(),
			SlowQueryThreshold: cfg.Database.SlowThreshold,
		}, log); err != nil {
			log.Fatal("Failed to instrument database", zap.Error(err))
		}
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		if err := telemetry.RegisterDBPoolMetrics(meter, sqlDB); err != nil {
			log.Warn("Failed to register connection pool metrics", zap.Error(err))
		}
	}

	// Initialize repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	propertyRepo := persistence.NewGormPropertyRepository(db.DB)
	reservationRepo := persistence.NewGormReservationRepository(db.DB)
	valuationRepo := persistence.NewGormValuationRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB,
		persistence.WithReferenceMaxAttempts(cfg.Payment.ReferenceMaxAttempts),
		persistence.WithPaymentLogger(log),
		persistence.WithPaymentMeter(meter),
	)

	// Initialize application services
	clientService := clientapp.NewClientService(clientRepo)
	propertyService := propertyapp.NewPropertyService(propertyRepo)
	reservationService := reservationapp.NewReservationService(reservationRepo, clientRepo, propertyRepo, log)
	paymentService := paymentapp.NewPaymentService(paymentRepo, reservationRepo, log)
	valuationService := valuationapp.NewValuationService(valuationRepo, reservationRepo)

	handlers := router.Handlers{
		System:       handler.NewSystemHandler(cfg.App.Name, telemetry.ServiceVersion, db),
		Clients:      handler.NewClientHandler(clientService, reservationService),
		Properties:   handler.NewPropertyHandler(propertyService, reservationService),
		Reservations: handler.NewReservationHandler(reservationService),
		Payments:     handler.NewPaymentHandler(paymentService),
		Valuations:   handler.NewValuationHandler(valuationService),
	}

	// Idempotency-Key support for payment creation
	if cfg.Idempotency.Enabled {
		store, err := cache.NewIdempotencyStoreFactory(cfg.Redis,
			cache.WithLogger(log),
			cache.WithInMemoryFallback(true),
		).CreateStore(context.Background(), cfg.Idempotency.Backend)
		if err != nil {
			log.Fatal("Failed to create idempotency store", zap.Error(err))
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Error("Error closing idempotency store", zap.Error(err))
			}
		}()
		handlers.PaymentGuard = middleware.Idempotency(middleware.IdempotencyConfig{
			Store:  store,
			TTL:    cfg.Idempotency.TTL,
			Logger: log,
		})
		log.Info("Idempotency enabled",
			zap.String("backend", cfg.Idempotency.Backend),
			zap.Duration("ttl", cfg.Idempotency.TTL),
		)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Tracing - Server span per route, then request attributes
	// 5. Metrics - Request count and latency
	// 6. Security - Add security headers
	// 7. CORS - Handle cross-origin requests
	// 8. BodyLimit - Limit request body size
	// 9. RateLimit - Apply rate limiting (if enabled)
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanAttributes())

	httpMetrics, err := middleware.HTTPMetrics(meter)
	if err != nil {
		log.Fatal("Failed to create HTTP metrics", zap.Error(err))
	}
	engine.Use(httpMetrics)
	engine.Use(middleware.Secure())

	// Configure CORS from config
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Rate limiting (if enabled)
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		defer rateLimiter.Stop()
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", handlers.System.Health)

	// Swagger documentation endpoint
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{Enabled: cfg.Swagger.Enabled}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := router.NewRouter(engine, router.WithAPIVersion("v1")).RegisterAPI(handlers)
	r.Setup()
	log.Debug("Routes mounted", zap.Int("count", len(r.Routes())))

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := providers.Shutdown(ctx); err != nil {
		log.Error("Telemetry shutdown failed", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
