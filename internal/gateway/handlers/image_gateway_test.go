package handlers_test

import (
	"bytes"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/disintegration/imaging"

	"sourcing-planner/internal/gateway/handlers"
	"sourcing-planner/internal/purchase"
	"sourcing-planner/internal/testutil"
)

func imageHost(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	var product bytes.Buffer
	src := imaging.New(300, 150, color.NRGBA{R: 200, A: 255})
	if err := imaging.Encode(&product, src, imaging.JPEG); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		switch r.URL.Path {
		case "/P/B08N5KWB9H.jpg":
			w.Header().Set("Content-Type", "image/jpeg")
			w.Write(product.Bytes())
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestThumbnailFitsAndCaches(t *testing.T) {
	env := setupGateway(t)
	var hits int32
	host := imageHost(t, &hits)

	images := handlers.NewImageHTTPHandler(env.client, host.URL+"/P", host.Client())
	env.router.GET("/api/v1/images/:asin", images.ASINThumbnail)
	env.router.GET("/api/v1/purchases/:id/thumbnail", images.PurchaseThumbnail)

	w := testutil.DoRequest(env.router, http.MethodGet, "/api/v1/images/b08n5kwb9h", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	img, _, err := image.Decode(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if b := img.Bounds(); b.Dx() != handlers.ThumbnailSize || b.Dy() > handlers.ThumbnailSize {
		t.Fatalf("thumbnail must fit in %dx%d, got %v", handlers.ThumbnailSize, handlers.ThumbnailSize, b)
	}

	stored := env.repo.Put(purchase.ExampleRecords()[0])
	w = testutil.DoRequest(env.router, http.MethodGet, handlers.ThumbnailPath(stored.ID), nil, "")
	if w.Code != http.StatusOK || w.Header().Get("X-Cache") != "HIT" {
		t.Fatalf("expected cached thumbnail, got %d %q", w.Code, w.Header().Get("X-Cache"))
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("expected one upstream fetch, got %d", hits)
	}
}

func TestThumbnailMissingImage(t *testing.T) {
	env := setupGateway(t)
	var hits int32
	host := imageHost(t, &hits)

	images := handlers.NewImageHTTPHandler(env.client, host.URL+"/P", host.Client())
	env.router.GET("/api/v1/images/:asin", images.ASINThumbnail)
	env.router.GET("/api/v1/purchases/:id/thumbnail", images.PurchaseThumbnail)

	w := testutil.DoRequest(env.router, http.MethodGet, "/api/v1/images/B000000000", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if testutil.ParseResponse(w)["message"] != handlers.NoImageMessage {
		t.Fatalf("expected placeholder message, got %s", w.Body.String())
	}

	w = testutil.DoRequest(env.router, http.MethodGet, "/api/v1/images/short", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed asin, got %d", w.Code)
	}

	w = testutil.DoRequest(env.router, http.MethodGet, "/api/v1/purchases/"+"00000000-0000-0000-0000-000000000001/thumbnail", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown purchase, got %d", w.Code)
	}
}
