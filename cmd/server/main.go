package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	apptracking "github.com/coldchain/backend/internal/application/tracking"
	"github.com/coldchain/backend/internal/infrastructure/carrier"
	"github.com/coldchain/backend/internal/infrastructure/config"
	"github.com/coldchain/backend/internal/infrastructure/logger"
	"github.com/coldchain/backend/internal/infrastructure/metrics"
	"github.com/coldchain/backend/internal/infrastructure/persistence"
	"github.com/coldchain/backend/internal/interfaces/http/handler"
	"github.com/coldchain/backend/internal/interfaces/http/middleware"
	"github.com/coldchain/backend/internal/interfaces/http/router"

	_ "github.com/coldchain/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const version = "1.0.0"

//	@title			Cold Chain Tracking API
//	@version		1.0
//	@description	Shipment tracking and sensor telemetry service for cold chain logistics

//	@contact.name	API Support
//	@contact.url	https://github.com/coldchain/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting cold chain backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}
	log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))

	// Initialize repositories
	shipmentRepo := persistence.NewGormShipmentRepository(db.DB)
	statusRepo := persistence.NewGormStatusHistoryRepository(db.DB)
	sensorRepo := persistence.NewGormSensorDataRepository(db.DB)
	alertRepo := persistence.NewGormTemperatureAlertRepository(db.DB)
	configRepo := persistence.NewGormConfigRepository(db.DB)

	// Shared infrastructure
	m := metrics.New()
	clock := clockwork.NewRealClock()

	// External provider clients
	fedexClient := carrier.NewFedExClient(cfg.Providers, log)
	onassetClient := carrier.NewOnAssetClient(cfg.Providers, log)

	// Initialize application services
	configService := apptracking.NewConfigService(configRepo)
	shipmentService := apptracking.NewShipmentService(
		shipmentRepo, statusRepo, sensorRepo, alertRepo, configService, clock, m, log,
	)
	ingestService := apptracking.NewIngestService(
		shipmentRepo, statusRepo, sensorRepo, alertRepo, configService,
		fedexClient, onassetClient, cfg.Providers, clock, m, log,
	)
	importService := apptracking.NewImportService(shipmentRepo, &http.Client{
		Timeout: cfg.Providers.RequestTimeout,
	}, log)

	// Initialize HTTP handlers
	shipmentHandler := handler.NewShipmentHandler(shipmentService)
	ingestHandler := handler.NewIngestHandler(ingestService, importService)
	configHandler := handler.NewConfigHandler(configService)
	systemHandler := handler.NewSystemHandler(db, cfg.App.Name, version)

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

	// Middleware stack: request ID first so everything downstream can log it
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.RequestLogger(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health, metrics and docs sit outside the authenticated surface so
	// probes and scrapers work without credentials
	engine.GET("/health", systemHandler.Health)
	if cfg.Metrics.Enabled {
		engine.GET("/metrics", gin.WrapH(m.Handler()))
	}
	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r := router.NewRouter(engine)

	if cfg.Auth.Enabled {
		r.Use(middleware.BearerAuth(cfg.Auth.ServiceToken))
		log.Info("Bearer authentication enabled")
	}

	// Ingestion routes
	ingestRoutes := router.NewDomainGroup("ingestion", "/")
	ingestRoutes.POST("/ingest", ingestHandler.Ingest)
	ingestRoutes.POST("/fetch-shipments", ingestHandler.FetchShipments)

	// Shipment routes
	shipmentRoutes := router.NewDomainGroup("shipments", "/shipments")
	shipmentRoutes.POST("", shipmentHandler.Create)
	shipmentRoutes.GET("/:trackingNumber", shipmentHandler.Get)
	shipmentRoutes.GET("/:trackingNumber/status", shipmentHandler.ListStatus)
	shipmentRoutes.POST("/:trackingNumber/status", shipmentHandler.AppendStatus)
	shipmentRoutes.GET("/:trackingNumber/sensor", shipmentHandler.ListSensor)
	shipmentRoutes.POST("/:trackingNumber/sensor", shipmentHandler.AppendSensor)
	shipmentRoutes.GET("/:trackingNumber/alerts", shipmentHandler.ListAlerts)

	// Configuration routes
	configRoutes := router.NewDomainGroup("config", "/config")
	configRoutes.GET("/temperature-range", configHandler.GetRange)
	configRoutes.PUT("/temperature-range", configHandler.SetRange)

	r.Register(ingestRoutes).
		Register(shipmentRoutes).
		Register(configRoutes)

	r.Setup()

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
