package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"sourcing-planner/internal/gateway/handlers"
	"sourcing-planner/internal/testutil"
)

var errBoom = errors.New("db down")

const validBody = `{"ASIN":"b08n5kwb9h","Quantity":"10","CostPrice":"15,99","SalePrice":29.99,"VAT_on_Cost":"Yes","EstimatedSales":"~300/month"}`

func TestIngestInsertsDraft(t *testing.T) {
	env := setupGateway(t)

	w := testutil.DoRequest(env.router, http.MethodPost, "/api/sas", validBody, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing CORS header")
	}

	data, ok := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected data object, got %s", w.Body.String())
	}
	if data["id"] == "" || data["created_at"] == nil {
		t.Fatalf("expected generated id and created_at, got %v", data)
	}
	if data["asin"] != "B08N5KWB9H" || data["status"] != "draft" || data["vat_on_cost"] != true {
		t.Fatalf("unexpected row %v", data)
	}
	if data["cost_price"] != "15.99" {
		t.Fatalf("expected decimal comma to be accepted, got %v", data["cost_price"])
	}
}

func TestIngestDuplicateIsBenign(t *testing.T) {
	env := setupGateway(t)

	testutil.DoRequest(env.router, http.MethodPost, "/api/sas", validBody, "")
	w := testutil.DoRequest(env.router, http.MethodPost, "/api/sas", validBody, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for duplicate, got %d", w.Code)
	}
	if msg := testutil.ParseResponse(w)["message"]; msg != handlers.DuplicateASINMessage {
		t.Fatalf("unexpected duplicate message %v", msg)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing CORS header on duplicate")
	}
}

func TestIngestRejectsMalformedInput(t *testing.T) {
	env := setupGateway(t)

	cases := map[string]string{
		"not json":       `{"ASIN":`,
		"bad number":     `{"ASIN":"B08N5KWB9H","Quantity":"abc","CostPrice":"1","SalePrice":"2"}`,
		"zero quantity":  `{"ASIN":"B08N5KWB9H","Quantity":0,"CostPrice":"1","SalePrice":"2"}`,
		"short asin":     `{"ASIN":"B08","Quantity":1,"CostPrice":"1","SalePrice":"2"}`,
		"missing prices": `{"ASIN":"B08N5KWB9H","Quantity":1}`,
	}
	for name, body := range cases {
		w := testutil.DoRequest(env.router, http.MethodPost, "/api/sas", body, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d: %s", name, w.Code, w.Body.String())
		}
		if _, ok := testutil.ParseResponse(w)["error"]; !ok {
			t.Fatalf("%s: expected error payload, got %s", name, w.Body.String())
		}
	}

	if n, _ := env.repo.Count(t.Context()); n != 0 {
		t.Fatalf("malformed input must not be stored, got %d rows", n)
	}
}

func TestIngestStoreFailureIs500(t *testing.T) {
	env := setupGateway(t)
	env.repo.FailWith(errBoom)

	w := testutil.DoRequest(env.router, http.MethodPost, "/api/sas", validBody, "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if _, ok := testutil.ParseResponse(w)["error"]; !ok {
		t.Fatalf("expected error payload, got %s", w.Body.String())
	}
}

func TestIngestPreflight(t *testing.T) {
	env := setupGateway(t)

	w := testutil.DoRequest(env.router, http.MethodOptions, "/api/sas", nil, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	h := w.Header()
	if h.Get("Access-Control-Allow-Origin") != "*" ||
		h.Get("Access-Control-Allow-Methods") != "POST, OPTIONS" ||
		h.Get("Access-Control-Allow-Headers") != "Content-Type" {
		t.Fatalf("unexpected preflight headers %v", h)
	}
}
