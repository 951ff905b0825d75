package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"sourcing-planner/config"
	"sourcing-planner/internal/gateway/clients"
	"sourcing-planner/internal/gateway/handlers"
	"sourcing-planner/internal/gateway/middleware"
)

func main() {
	cfg := config.LoadConfig()
	logger := config.GetLogger()

	if cfg.Auth.JWTSecret == "" && !cfg.Auth.Disabled {
		logger.Fatal("JWT_SECRET is required unless AUTH_DISABLED=true")
	}
	if cfg.Auth.Disabled {
		logger.Warn("authentication disabled for /api/v1")
	}

	grpcClients, err := clients.NewGRPCClients(cfg.Gateway.PurchaseAddr)
	if err != nil {
		logger.Fatalf("Failed to create gRPC clients: %v", err)
	}
	defer grpcClients.Close()

	gin.SetMode(gin.ReleaseMode)
	r, err := setupRouter(cfg, grpcClients, logger)
	if err != nil {
		logger.Fatalf("Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              cfg.Gateway.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithField("addr", cfg.Gateway.ListenAddr).Info("gateway listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("gateway shutdown: %v", err)
	}
}

func setupRouter(cfg config.Config, grpcClients *clients.GRPCClients, logger *logrus.Logger) (*gin.Engine, error) {
	loc, err := time.LoadLocation(cfg.Gateway.DisplayTimezone)
	if err != nil {
		logger.Warnf("unknown DISPLAY_TIMEZONE %q, using UTC", cfg.Gateway.DisplayTimezone)
		loc = time.UTC
	}

	rateLimit, err := middleware.RateLimit(cfg.Gateway.IngestRate)
	if err != nil {
		return nil, err
	}

	ingestHandler := handlers.NewIngestHTTPHandler(grpcClients.Purchase)
	purchaseHandler := handlers.NewPurchaseHTTPHandler(grpcClients.Purchase, loc, cfg.Gateway.ImageBaseURL)
	imageHandler := handlers.NewImageHTTPHandler(grpcClients.Purchase, cfg.Gateway.ImageBaseURL, nil)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.Gateway.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS("/api/v1"))

	// --- Public ingestion endpoint ---
	sas := r.Group("/api/sas")
	sas.Use(middleware.AnyOrigin())
	{
		sas.OPTIONS("", ingestHandler.Preflight)
		sas.POST("", rateLimit, ingestHandler.Ingest)
	}

	// --- Protected API Group ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth([]byte(cfg.Auth.JWTSecret), cfg.Auth.Disabled))
	{
		purchases := protected.Group("/purchases")
		{
			purchases.GET("", purchaseHandler.ListPurchases)
			purchases.GET("/metrics", purchaseHandler.Metrics)
			purchases.GET("/export.xlsx", purchaseHandler.Export)
			purchases.POST("/seed", purchaseHandler.Seed)
			purchases.POST("/capture", purchaseHandler.Capture)
			purchases.POST("/delete", purchaseHandler.Delete)
			purchases.GET("/:id/thumbnail", imageHandler.PurchaseThumbnail)
		}

		protected.GET("/images/:asin", imageHandler.ASINThumbnail)
		protected.GET("/home/metrics", handlers.HomeMetrics)
	}

	r.GET("/health", healthCheckHandler(grpcClients))

	return r, nil
}

func healthCheckHandler(grpcClients *clients.GRPCClients) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		httpStatus := http.StatusOK

		purchaseStatus := "healthy"
		if !grpcClients.IsPurchaseServiceHealthy(c.Request.Context()) {
			purchaseStatus = "unavailable"
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}

		c.JSON(httpStatus, gin.H{
			"status":  status,
			"message": "Server is running",
			"services": gin.H{
				"purchase": purchaseStatus,
			},
			"timestamp": time.Now(),
		})
	}
}
