package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"sourcing-planner/internal/gateway/handlers"
	"sourcing-planner/internal/gateway/middleware"
	"sourcing-planner/internal/purchaserpc"
	service "sourcing-planner/internal/services/purchase/handler"
	"sourcing-planner/internal/testutil"
)

type gatewayEnv struct {
	router *gin.Engine
	repo   *testutil.MemoryPurchaseRepository
	client purchaserpc.PurchaseServiceClient
}

func setupGateway(t *testing.T) *gatewayEnv {
	t.Helper()
	repo := testutil.NewMemoryPurchaseRepository()
	conn := testutil.StartPurchaseServer(t, service.NewPurchaseHandler(repo, nil))
	client := purchaserpc.NewPurchaseServiceClient(conn)

	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		berlin = time.UTC
	}

	ingest := handlers.NewIngestHTTPHandler(client)
	purchases := handlers.NewPurchaseHTTPHandler(client, berlin, "https://images.test/P")

	r := testutil.SetupRouter()
	sas := r.Group("/api/sas", middleware.AnyOrigin())
	sas.OPTIONS("", ingest.Preflight)
	sas.POST("", ingest.Ingest)

	v1 := r.Group("/api/v1")
	v1.GET("/purchases", purchases.ListPurchases)
	v1.GET("/purchases/metrics", purchases.Metrics)
	v1.GET("/purchases/export.xlsx", purchases.Export)
	v1.POST("/purchases/seed", purchases.Seed)
	v1.POST("/purchases/capture", purchases.Capture)
	v1.POST("/purchases/delete", purchases.Delete)
	v1.GET("/home/metrics", handlers.HomeMetrics)

	return &gatewayEnv{router: r, repo: repo, client: client}
}

func TestHomeMetrics(t *testing.T) {
	env := setupGateway(t)

	w := testutil.DoRequest(env.router, http.MethodGet, "/api/v1/home/metrics", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data, _ := testutil.ParseResponse(w)["data"].([]interface{})
	if len(data) != 4 {
		t.Fatalf("expected 4 period cards, got %d", len(data))
	}
	first := data[0].(map[string]interface{})
	if first["label"] != "Today" || first["value"] != "€ 81.88" {
		t.Fatalf("unexpected first card %v", first)
	}
}
