// File: fieldtrack/main.go
package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fieldtrack/config"
	"fieldtrack/database"
	"fieldtrack/database/seed"
	"fieldtrack/handlers"
	"fieldtrack/middleware"
	"fieldtrack/models"
	"fieldtrack/routes"
	"fieldtrack/services/history"
	"fieldtrack/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, cancelRoot := context.WithCancel(context.Background())
	defer cancelRoot()

	// Document store.
	stores, err := database.OpenStores(config.AppConfig.DocumentStore)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to open document store: %v", err)
	}
	if stores.MemoryOutlets != nil {
		seedMemory(rootCtx, stores, logger)
	}

	// Cache.
	var cache history.Cache
	var cachePing utils.Pinger
	if err := utils.InitCache(); err != nil {
		logger.Warn("main: history cache disabled", zap.Error(err))
	} else if client := utils.GetCacheClient(); client != nil {
		cache = history.NewRedisCache(client)
		cachePing = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	}

	utils.StartHealthMonitor(rootCtx, 30*time.Second, stores.Reports.Ping, cachePing)

	// Services.
	fetcher := history.NewFetcher(stores.Reports, config.ReportCollections(), logger)
	historyService, err := history.NewDefaultHistoryService(fetcher, stores.Outlets, cache, config.AppConfig.HistoryCacheTTL, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	historyHandler := handlers.NewHistoryHandler(historyService, config.AppConfig.HistoryDefaultMonths, config.AppConfig.HistoryMaxMonths)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Verifier:             newVerifier(rootCtx, logger),
		HealthHandler:        handlers.HealthHandler,
		ListMetricsHandler:   handlers.ListMetricsHandler,
		GetHistoryHandler:    historyHandler.GetHistoryHandler,
		GetChartHandler:      historyHandler.GetChartHandler,
		ExportHistoryHandler: historyHandler.ExportHistoryHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (store=%s, auth=%s)...", srv.Addr, config.AppConfig.DocumentStore, config.AppConfig.AuthMode)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	cancelRoot()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// newVerifier picks the bearer token verifier for AUTH_MODE.
func newVerifier(ctx context.Context, logger *zap.Logger) middleware.TokenVerifier {
	switch config.AppConfig.AuthMode {
	case "firebase":
		return &middleware.FirebaseVerifier{Client: utils.FirebaseAuth(ctx)}
	case "jwt":
		if config.AppConfig.JWTSecret == "" {
			logger.Fatal("main: AUTH_MODE=jwt requires JWT_SECRET")
		}
		return &middleware.JWTVerifier{Secret: []byte(config.AppConfig.JWTSecret)}
	case "none":
		if config.IsProduction() {
			logger.Fatal("main: AUTH_MODE=none is not allowed in production")
		}
		logger.Warn("main: authentication disabled, every caller is treated as admin")
		return &middleware.StaticVerifier{Principal: middleware.Principal{UID: "local", Role: models.RoleAdmin}}
	default:
		logger.Fatal("main: unknown AUTH_MODE", zap.String("authMode", config.AppConfig.AuthMode))
		return nil
	}
}

// seedMemory fills the in-memory store with sample data so a local run has something to show.
func seedMemory(ctx context.Context, stores *database.Stores, logger *zap.Logger) {
	ds := seed.Generate(time.Now(), 5, 12, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err := seed.Write(ctx, stores.Writer, config.ReportCollections(), config.AppConfig.CollectionOutlets, ds); err != nil {
		logger.Sugar().Fatalf("main: failed to seed memory store: %v", err)
	}
	for _, o := range ds.Outlets {
		stores.MemoryOutlets.Save(o)
	}
	logger.Info("main: memory store seeded", zap.Int("outlets", len(ds.Outlets)), zap.Int("reports", len(ds.Reports)))
}
