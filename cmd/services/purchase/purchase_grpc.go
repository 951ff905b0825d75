package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"sourcing-planner/config"
	"sourcing-planner/internal/database"
	"sourcing-planner/internal/purchaserpc"
	"sourcing-planner/internal/services/purchase/handler"
	"sourcing-planner/internal/services/purchase/repository"
)

func main() {
	cfg := config.LoadConfig()
	logger := config.GetLogger()

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		rc, err := config.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Warnf("status-count cache disabled: %v", err)
		} else {
			redisClient = rc
			defer redisClient.Close()
		}
	}

	db, err := database.NewConnection(cfg.DB.DSN)
	if err != nil {
		logger.Fatalf("Failed to connect to db: %v", err)
	}

	if err := database.MigratePurchaseDB(db); err != nil {
		logger.Fatalf("Failed to migrate purchase database: %v", err)
	}

	purchaseHandler := handler.NewPurchaseHandler(repository.NewPurchaseRepository(db), redisClient)

	if cfg.Purchase.SeedExampleData {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if _, err := purchaseHandler.Seed(ctx, &purchaserpc.SeedRequest{}); err != nil {
			logger.Warnf("seeding example data failed: %v", err)
		}
		cancel()
	}

	lis, err := net.Listen("tcp", cfg.Purchase.ListenAddr)
	if err != nil {
		logger.Fatalf("Failed to listen: %v", err)
	}

	s := grpc.NewServer(grpc.UnaryInterceptor(loggingInterceptor(logger)))

	purchaserpc.RegisterPurchaseServiceServer(s, purchaseHandler)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(purchaserpc.PurchaseService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, healthServer)

	reflection.Register(s)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down purchase service")
		healthServer.Shutdown()
		s.GracefulStop()
	}()

	logger.WithField("addr", cfg.Purchase.ListenAddr).Info("purchase service listening")
	if err := s.Serve(lis); err != nil {
		logger.Fatalf("Failed to serve: %v", err)
	}
}

func loggingInterceptor(logger *logrus.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		logger.WithFields(logrus.Fields{
			"method":  info.FullMethod,
			"code":    status.Code(err).String(),
			"latency": time.Since(start).String(),
		}).Debug("grpc request")
		return resp, err
	}
}
