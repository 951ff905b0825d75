package clients

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"sourcing-planner/config"
	"sourcing-planner/internal/purchaserpc"
)

type GRPCClients struct {
	Purchase       purchaserpc.PurchaseServiceClient
	purchaseHealth healthpb.HealthClient
	purchaseConn   *grpc.ClientConn
}

func NewGRPCClients(purchaseAddr string) (*GRPCClients, error) {
	purchaseConn, err := grpc.NewClient(purchaseAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("purchase service connection failed: %w", err)
	}

	config.GetLogger().WithField("addr", purchaseAddr).Info("purchase service client ready")
	return NewGRPCClientsFromConn(purchaseConn), nil
}

// NewGRPCClientsFromConn wraps an already dialed connection. The clients
// take ownership of conn.
func NewGRPCClientsFromConn(conn *grpc.ClientConn) *GRPCClients {
	return &GRPCClients{
		Purchase:       purchaserpc.NewPurchaseServiceClient(conn),
		purchaseHealth: healthpb.NewHealthClient(conn),
		purchaseConn:   conn,
	}
}

// IsPurchaseServiceHealthy asks the standard health service of the purchase
// service whether it is serving.
func (c *GRPCClients) IsPurchaseServiceHealthy(ctx context.Context) bool {
	if c == nil || c.purchaseHealth == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	resp, err := c.purchaseHealth.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return false
	}
	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
}

func (c *GRPCClients) Close() {
	if c != nil && c.purchaseConn != nil {
		c.purchaseConn.Close()
	}
}
