package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"sourcing-planner/internal/purchase"
)

// API is the part of the gateway the dashboard talks to.
type API interface {
	ListPurchases(ctx context.Context) ([]purchase.ViewRow, error)
	Metrics(ctx context.Context) (MetricsSummary, error)
	Capture(ctx context.Context, ids []uuid.UUID) (BulkSummary, error)
	Delete(ctx context.Context, ids []uuid.UUID) (BulkSummary, error)
}

type MetricsSummary struct {
	Counts purchase.StatusCounts `json:"counts"`
	Cards  []purchase.MetricCard `json:"cards"`
}

type BulkOutcome struct {
	ID      string `json:"id"`
	Outcome string `json:"outcome"`
	Reason  string `json:"reason,omitempty"`
}

type BulkSummary struct {
	Results []BulkOutcome  `json:"results"`
	Counts  map[string]int `json:"counts"`
}

// envelope mirrors the gateway's APIResponse.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// HTTPClient calls the gateway's /api/v1 endpoints with a bearer token.
type HTTPClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) ListPurchases(ctx context.Context) ([]purchase.ViewRow, error) {
	var rows []purchase.ViewRow
	err := c.do(ctx, http.MethodGet, "/api/v1/purchases", nil, &rows)
	return rows, err
}

func (c *HTTPClient) Metrics(ctx context.Context) (MetricsSummary, error) {
	var summary MetricsSummary
	err := c.do(ctx, http.MethodGet, "/api/v1/purchases/metrics", nil, &summary)
	return summary, err
}

func (c *HTTPClient) Capture(ctx context.Context, ids []uuid.UUID) (BulkSummary, error) {
	return c.bulk(ctx, "/api/v1/purchases/capture", ids)
}

func (c *HTTPClient) Delete(ctx context.Context, ids []uuid.UUID) (BulkSummary, error) {
	return c.bulk(ctx, "/api/v1/purchases/delete", ids)
}

func (c *HTTPClient) bulk(ctx context.Context, path string, ids []uuid.UUID) (BulkSummary, error) {
	var summary BulkSummary
	err := c.do(ctx, http.MethodPost, path, map[string][]uuid.UUID{"ids": ids}, &summary)
	return summary, err
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	env := envelope[json.RawMessage]{}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s: status %d, undecodable body: %w", method, path, resp.StatusCode, err)
	}
	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return fmt.Errorf("%s %s: %d %s", method, path, resp.StatusCode, msg)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%s %s: decode data: %w", method, path, err)
	}
	return nil
}
