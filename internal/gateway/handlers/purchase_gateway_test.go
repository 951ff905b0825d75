package handlers_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"sourcing-planner/internal/purchase"
	"sourcing-planner/internal/testutil"
)

func seedExamples(t *testing.T, env *gatewayEnv) {
	t.Helper()
	w := testutil.DoRequest(env.router, http.MethodPost, "/api/v1/purchases/seed", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("seed failed: %d %s", w.Code, w.Body.String())
	}
}

func TestSeedEndpoint(t *testing.T) {
	env := setupGateway(t)

	w := testutil.DoRequest(env.router, http.MethodPost, "/api/v1/purchases/seed", nil, "")
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["inserted"] != float64(3) {
		t.Fatalf("expected 3 inserted, got %v", data["inserted"])
	}

	w = testutil.DoRequest(env.router, http.MethodPost, "/api/v1/purchases/seed", nil, "")
	data = testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["inserted"] != float64(0) {
		t.Fatalf("expected no rows on non-empty store, got %v", data["inserted"])
	}
}

func TestListPurchasesEnrichesRows(t *testing.T) {
	env := setupGateway(t)
	seedExamples(t, env)

	w := testutil.DoRequest(env.router, http.MethodGet, "/api/v1/purchases?sort=asin&order=asc", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	rows := resp["data"].([]interface{})
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	first := rows[0].(map[string]interface{})
	if first["asin"] != "B07ZPML7NP" {
		t.Fatalf("expected asin ascending, got %v first", first["asin"])
	}
	second := rows[1].(map[string]interface{})
	display := second["display"].(map[string]interface{})
	if display["margin"] != "36.6%" || display["profit"] != "109,62 €" || display["max_ek"] != "25,20 €" {
		t.Fatalf("unexpected display for reference row %v", display)
	}
	if second["image_url"] != "https://images.test/P/B08N5KWB9H.jpg" {
		t.Fatalf("unexpected image url %v", second["image_url"])
	}
	badge := second["badge"].(map[string]interface{})
	if badge["label"] != "Drafted" {
		t.Fatalf("unexpected badge %v", badge)
	}
	meta := resp["meta"].(map[string]interface{})
	if meta["total"] != float64(3) || meta["sort"] != "asin" {
		t.Fatalf("unexpected meta %v", meta)
	}
}

func TestListPurchasesRejectsUnknownSort(t *testing.T) {
	env := setupGateway(t)

	w := testutil.DoRequest(env.router, http.MethodGet, "/api/v1/purchases?sort=picture", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	w = testutil.DoRequest(env.router, http.MethodGet, "/api/v1/purchases?order=sideways", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestListPurchasesSurfacesLoadFailure(t *testing.T) {
	env := setupGateway(t)
	env.repo.FailWith(errBoom)

	w := testutil.DoRequest(env.router, http.MethodGet, "/api/v1/purchases", nil, "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if testutil.ParseResponse(w)["success"] != false {
		t.Fatalf("expected failure payload, got %s", w.Body.String())
	}
}

func TestMetricsCards(t *testing.T) {
	env := setupGateway(t)
	seedExamples(t, env)

	w := testutil.DoRequest(env.router, http.MethodGet, "/api/v1/purchases/metrics", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	counts := data["counts"].(map[string]interface{})
	if counts["draft"] != float64(1) || counts["total"] != float64(3) {
		t.Fatalf("unexpected counts %v", counts)
	}
	cards := data["cards"].([]interface{})
	first := cards[0].(map[string]interface{})
	if first["percentage"] != "50.0%" || first["fraction"] != "1/2" {
		t.Fatalf("unexpected draft-to-purchase card %v", first)
	}
}

func TestCaptureAndDeleteEndpoints(t *testing.T) {
	env := setupGateway(t)
	examples := purchase.ExampleRecords()
	draft := env.repo.Put(examples[0])
	shipped := env.repo.Put(examples[2])

	body := map[string]interface{}{"ids": []string{draft.ID.String(), shipped.ID.String(), uuid.NewString()}}
	w := testutil.DoRequest(env.router, http.MethodPost, "/api/v1/purchases/capture", body, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	counts := testutil.ParseResponse(w)["data"].(map[string]interface{})["counts"].(map[string]interface{})
	if counts["updated"] != float64(1) || counts["skipped"] != float64(1) || counts["not_found"] != float64(1) {
		t.Fatalf("unexpected capture counts %v", counts)
	}

	body = map[string]interface{}{"ids": []string{draft.ID.String()}}
	w = testutil.DoRequest(env.router, http.MethodPost, "/api/v1/purchases/delete", body, "")
	counts = testutil.ParseResponse(w)["data"].(map[string]interface{})["counts"].(map[string]interface{})
	if counts["deleted"] != float64(1) {
		t.Fatalf("unexpected delete counts %v", counts)
	}
	if _, ok := env.repo.Lookup(draft.ID); ok {
		t.Fatalf("record must be deleted")
	}
}

func TestBulkActionValidation(t *testing.T) {
	env := setupGateway(t)

	for _, body := range []interface{}{
		map[string]interface{}{"ids": []string{}},
		map[string]interface{}{"ids": []string{"not-a-uuid"}},
		"{",
	} {
		w := testutil.DoRequest(env.router, http.MethodPost, "/api/v1/purchases/delete", body, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d", body, w.Code)
		}
	}
}

func TestExportWorkbook(t *testing.T) {
	env := setupGateway(t)
	seedExamples(t, env)

	w := testutil.DoRequest(env.router, http.MethodGet, "/api/v1/purchases/export.xlsx", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); !bytes.Contains([]byte(cd), []byte(".xlsx")) {
		t.Fatalf("unexpected Content-Disposition %q", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("OpenReader error: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(purchase.ExportSheet)
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d", len(rows))
	}
}
