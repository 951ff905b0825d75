package testutil

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"sourcing-planner/internal/purchaserpc"
)

const bufSize = 1024 * 1024

// StartPurchaseServer serves srv over an in-memory listener and returns a
// connection dialed to it. Both are torn down when the test ends.
func StartPurchaseServer(t *testing.T, srv purchaserpc.PurchaseServiceServer) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	s := grpc.NewServer()
	purchaserpc.RegisterPurchaseServiceServer(s, srv)
	healthpb.RegisterHealthServer(s, health.NewServer())

	go func() {
		_ = s.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("Failed to dial bufconn: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
		s.Stop()
		lis.Close()
	})
	return conn
}
