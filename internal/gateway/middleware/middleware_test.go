package middleware_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"sourcing-planner/internal/gateway/middleware"
	"sourcing-planner/internal/testutil"
	"sourcing-planner/internal/utils"
)

func ok(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func TestJWTAuth(t *testing.T) {
	r := testutil.SetupRouter()
	r.GET("/private", middleware.JWTAuth([]byte(testutil.JWTSecret), false), func(c *gin.Context) {
		claims := c.MustGet(middleware.ClaimsKey).(*utils.Claims)
		c.JSON(http.StatusOK, gin.H{"sub": claims.Subject})
	})

	w := testutil.DoRequest(r, http.MethodGet, "/private", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	w = testutil.DoRequest(r, http.MethodGet, "/private", nil, "garbage")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", w.Code)
	}

	w = testutil.DoRequest(r, http.MethodGet, "/private", nil, testutil.DefaultTestToken())
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", w.Code)
	}
	if testutil.ParseResponse(w)["sub"] != "test-user-001" {
		t.Fatalf("claims not exposed to handler: %s", w.Body.String())
	}
}

func TestJWTAuthDisabled(t *testing.T) {
	r := testutil.SetupRouter()
	r.GET("/private", middleware.JWTAuth(nil, true), ok)

	w := testutil.DoRequest(r, http.MethodGet, "/private", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with auth disabled, got %d", w.Code)
	}
}

func TestRateLimit(t *testing.T) {
	if _, err := middleware.RateLimit("lots"); err == nil {
		t.Fatalf("expected malformed rate to be rejected")
	}

	limit, err := middleware.RateLimit("2-M")
	if err != nil {
		t.Fatalf("RateLimit error: %v", err)
	}
	r := testutil.SetupRouter()
	r.POST("/ingest", middleware.AnyOrigin(), limit, ok)

	for i := 0; i < 2; i++ {
		if w := testutil.DoRequest(r, http.MethodPost, "/ingest", nil, ""); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
	w := testutil.DoRequest(r, http.MethodPost, "/ingest", nil, "")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("rejections must carry the CORS header")
	}
}

func TestCORSPreflightOnlyUnderPrefix(t *testing.T) {
	r := testutil.SetupRouter()
	r.Use(middleware.CORS("/api/v1"))
	r.GET("/api/v1/things", ok)
	r.GET("/other", ok)

	req, _ := http.NewRequest(http.MethodOptions, "/api/v1/things", nil)
	req.Header.Set("Origin", "https://dashboard.example")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := serve(r, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("expected wildcard origin, got %q", w.Header().Get("Access-Control-Allow-Origin"))
	}

	req, _ = http.NewRequest(http.MethodGet, "/other", nil)
	req.Header.Set("Origin", "https://dashboard.example")
	w = serve(r, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("routes outside the prefix must not get CORS headers")
	}
}
