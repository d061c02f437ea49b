package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "rentalbilling/api/swagger" // swagger docs
	"rentalbilling/internal/config"
	"rentalbilling/internal/database"
	"rentalbilling/internal/document"
	"rentalbilling/internal/handler"
	"rentalbilling/internal/idempotency"
	"rentalbilling/internal/middleware"
	"rentalbilling/internal/observability"
	"rentalbilling/internal/repository"
	"rentalbilling/internal/service"
	"rentalbilling/internal/websocket"
)

// @title           Rental Billing API
// @version         1.0
// @description     Quotes, bills and estimates for equipment rental events.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Logger setup failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.NewConnection(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	logger.Info("connected to PostgreSQL")

	done := make(chan struct{})
	wsHub := websocket.NewHub(logger)
	go wsHub.Run(done)

	idempotencyStore := newIdempotencyStore(cfg, logger)

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	auditRepo := repository.NewAuditRepository(db)
	eventRepo := repository.NewEventRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	rateRepo := repository.NewDegressiveRateRepository(db)
	taxRepo := repository.NewTaxRepository(db)
	billRepo := repository.NewBillRepository(db)
	estimateRepo := repository.NewEstimateRepository(db)

	quoteService := service.NewQuoteService(cfg, eventRepo, catalogRepo, rateRepo, taxRepo)
	billService := service.NewBillService(cfg, eventRepo, catalogRepo, rateRepo, taxRepo,
		billRepo, auditRepo, txManager, document.NewPDFRenderer(), wsHub, logger)
	estimateService := service.NewEstimateService(cfg, eventRepo, catalogRepo, rateRepo, taxRepo,
		estimateRepo, auditRepo, txManager, wsHub, logger)
	resyncService := service.NewResyncService(cfg, eventRepo, taxRepo, auditRepo, txManager, wsHub, logger)
	rateService := service.NewDegressiveRateService(rateRepo, eventRepo, auditRepo, txManager)
	taxService := service.NewTaxService(taxRepo, eventRepo, auditRepo, txManager)
	auditService := service.NewAuditService(auditRepo)

	eventHandler := handler.NewEventHandler(quoteService, billService, estimateService, resyncService,
		idempotency.Middleware(idempotencyStore, logger))
	documentHandler := handler.NewDocumentHandler(billService, estimateService)
	rateHandler := handler.NewDegressiveRateHandler(rateService)
	taxHandler := handler.NewTaxHandler(taxService)
	auditHandler := handler.NewAuditHandler(auditService)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	router := gin.New()
	router.Use(observability.Recovery(logger), observability.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", idempotency.HeaderName}
	corsConfig.ExposeHeaders = []string{"Content-Disposition", idempotency.ReplayHeaderName}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "ws_clients": wsHub.ClientCount()})
	})

	secret := []byte(cfg.JWTSecret)
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, secret)
	})

	api := router.Group("", middleware.Identify(secret))
	eventHandler.RegisterRoutes(api)
	documentHandler.RegisterRoutes(api)
	rateHandler.RegisterRoutes(api)
	taxHandler.RegisterRoutes(api)
	auditHandler.RegisterRoutes(api)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	close(done)
}

// newIdempotencyStore prefers Redis so retries are deduplicated across instances.
func newIdempotencyStore(cfg *config.Config, logger *zap.Logger) idempotency.Store {
	if cfg.Redis.Addr == "" {
		logger.Info("REDIS_ADDR not set, idempotency keys kept in memory")
		return idempotency.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, idempotency keys kept in memory", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		_ = client.Close()
		return idempotency.NewMemoryStore()
	}
	return idempotency.NewRedisStore(client)
}
