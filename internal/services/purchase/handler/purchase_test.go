package handler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"sourcing-planner/internal/purchase"
	"sourcing-planner/internal/purchaserpc"
	"sourcing-planner/internal/services/purchase/handler"
	"sourcing-planner/internal/testutil"
)

func setup(t *testing.T) (purchaserpc.PurchaseServiceClient, *testutil.MemoryPurchaseRepository) {
	t.Helper()
	repo := testutil.NewMemoryPurchaseRepository()
	conn := testutil.StartPurchaseServer(t, handler.NewPurchaseHandler(repo, nil))
	return purchaserpc.NewPurchaseServiceClient(conn), repo
}

func ingestRequest(asin string) *purchaserpc.IngestRequest {
	sales := "~300/month"
	return &purchaserpc.IngestRequest{
		Asin:           asin,
		Quantity:       10,
		CostPrice:      "15.99",
		SalePrice:      "29.99",
		VatOnCost:      true,
		EstimatedSales: &sales,
	}
}

func TestIngestStoresDraftAndRejectsDuplicate(t *testing.T) {
	client, _ := setup(t)
	ctx := context.Background()

	resp, err := client.Ingest(ctx, ingestRequest("B08N5KWB9H"))
	if err != nil {
		t.Fatalf("Ingest error: %v", err)
	}
	p := resp.Purchase
	if p.Id == "" || p.CreatedAt == nil {
		t.Fatalf("expected generated id and created_at, got %+v", p)
	}
	if p.Status != string(purchase.StatusDraft) || p.CostPrice != "15.99" {
		t.Fatalf("unexpected stored purchase %+v", p)
	}

	_, err = client.Ingest(ctx, ingestRequest("B08N5KWB9H"))
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists for duplicate, got %v", err)
	}

	list, err := client.List(ctx, &purchaserpc.ListRequest{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list.Purchases) != 1 {
		t.Fatalf("duplicate must not add a row, got %d rows", len(list.Purchases))
	}
}

func TestIngestInvalidArgument(t *testing.T) {
	client, repo := setup(t)

	req := ingestRequest("B08N5KWB9H")
	req.Quantity = 0
	_, err := client.Ingest(context.Background(), req)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}

	req = ingestRequest("B08N5KWB9H")
	req.SalePrice = "abc"
	_, err = client.Ingest(context.Background(), req)
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}

	if n, _ := repo.Count(context.Background()); n != 0 {
		t.Fatalf("invalid input must not be stored, got %d rows", n)
	}
}

func TestIngestStoreFailureIsInternal(t *testing.T) {
	client, repo := setup(t)
	repo.FailWith(errors.New("connection refused"))

	_, err := client.Ingest(context.Background(), ingestRequest("B08N5KWB9H"))
	if status.Code(err) != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	client, _ := setup(t)
	ctx := context.Background()
	for _, asin := range []string{"B000000001", "B000000002", "B000000003"} {
		if _, err := client.Ingest(ctx, ingestRequest(asin)); err != nil {
			t.Fatalf("Ingest %s error: %v", asin, err)
		}
	}

	resp, err := client.List(ctx, &purchaserpc.ListRequest{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	records, err := purchaserpc.RecordsFromProto(resp.Purchases)
	if err != nil {
		t.Fatalf("RecordsFromProto error: %v", err)
	}
	if records[0].ASIN != "B000000003" || records[2].ASIN != "B000000001" {
		t.Fatalf("expected newest first, got %s..%s", records[0].ASIN, records[2].ASIN)
	}
}

func TestGetUnknownIsNotFound(t *testing.T) {
	client, repo := setup(t)
	stored := repo.Put(purchase.ExampleRecords()[0])

	resp, err := client.Get(context.Background(), &purchaserpc.GetRequest{Id: stored.ID.String()})
	if err != nil || resp.Purchase.Asin != stored.ASIN {
		t.Fatalf("expected stored record, got %+v / %v", resp, err)
	}

	_, err = client.Get(context.Background(), &purchaserpc.GetRequest{Id: uuid.NewString()})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
	_, err = client.Get(context.Background(), &purchaserpc.GetRequest{Id: "nope"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestSeedOnlyIntoEmptyStore(t *testing.T) {
	client, _ := setup(t)
	ctx := context.Background()

	resp, err := client.Seed(ctx, &purchaserpc.SeedRequest{})
	if err != nil {
		t.Fatalf("Seed error: %v", err)
	}
	if resp.Inserted != 3 {
		t.Fatalf("expected 3 rows seeded, got %d", resp.Inserted)
	}

	resp, err = client.Seed(ctx, &purchaserpc.SeedRequest{})
	if err != nil {
		t.Fatalf("second Seed error: %v", err)
	}
	if resp.Inserted != 0 {
		t.Fatalf("seeding a non-empty store must insert nothing, got %d", resp.Inserted)
	}
}

func TestStatusCountsAfterSeed(t *testing.T) {
	client, repo := setup(t)
	ctx := context.Background()
	if _, err := client.Seed(ctx, &purchaserpc.SeedRequest{}); err != nil {
		t.Fatalf("Seed error: %v", err)
	}
	repo.Put(purchase.Record{ASIN: "B0000ARCH1", Status: "archived"})

	resp, err := client.StatusCounts(ctx, &purchaserpc.StatusCountsRequest{})
	if err != nil {
		t.Fatalf("StatusCounts error: %v", err)
	}
	totals := resp.Totals()
	want := purchase.StatusCounts{Draft: 1, Purchased: 1, Shipped: 1, Total: 4}
	if totals != want {
		t.Fatalf("expected %+v, got %+v", want, totals)
	}
}

func TestCaptureTransitionsOnlyDrafts(t *testing.T) {
	client, repo := setup(t)
	examples := purchase.ExampleRecords()
	draft := repo.Put(examples[0])
	shipped := repo.Put(examples[2])
	missing := uuid.New()

	resp, err := client.Capture(context.Background(), &purchaserpc.BulkRequest{
		Ids: []string{draft.ID.String(), shipped.ID.String(), missing.String(), draft.ID.String()},
	})
	if err != nil {
		t.Fatalf("Capture error: %v", err)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("duplicate ids must collapse, got %d results", len(resp.Results))
	}
	outcomes := map[string]string{}
	for _, r := range resp.Results {
		outcomes[r.Id] = r.Outcome
	}
	if outcomes[draft.ID.String()] != "updated" || outcomes[shipped.ID.String()] != "skipped" || outcomes[missing.String()] != "not_found" {
		t.Fatalf("unexpected outcomes %v", outcomes)
	}
	if got, _ := repo.Lookup(draft.ID); got.Status != purchase.StatusPurchased {
		t.Fatalf("draft must become purchased, got %s", got.Status)
	}
	if got, _ := repo.Lookup(shipped.ID); got.Status != purchase.StatusShipped {
		t.Fatalf("shipped record must be untouched, got %s", got.Status)
	}
}

func TestDeleteReportsPerID(t *testing.T) {
	client, repo := setup(t)
	stored := repo.Put(purchase.ExampleRecords()[1])
	missing := uuid.New()

	resp, err := client.Delete(context.Background(), purchaserpc.BulkRequestFromIDs([]uuid.UUID{stored.ID, missing}))
	if err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if resp.Results[0].Outcome != "deleted" || resp.Results[1].Outcome != "not_found" {
		t.Fatalf("unexpected results %+v %+v", resp.Results[0], resp.Results[1])
	}
	if _, ok := repo.Lookup(stored.ID); ok {
		t.Fatalf("record must be gone")
	}
}

func TestBulkRequestValidation(t *testing.T) {
	client, _ := setup(t)

	_, err := client.Delete(context.Background(), &purchaserpc.BulkRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for empty ids, got %v", err)
	}
	_, err = client.Capture(context.Background(), &purchaserpc.BulkRequest{Ids: []string{"not-a-uuid"}})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for malformed id, got %v", err)
	}
}

func TestIngestNormalizesASINBeforeUniqueness(t *testing.T) {
	client, repo := setup(t)
	ctx := context.Background()

	resp, err := client.Ingest(ctx, ingestRequest("b08n5kwb9h"))
	if err != nil {
		t.Fatalf("Ingest error: %v", err)
	}
	if resp.Purchase.Asin != "B08N5KWB9H" {
		t.Fatalf("expected upper-cased asin, got %q", resp.Purchase.Asin)
	}

	_, err = client.Ingest(ctx, ingestRequest(" B08N5KWB9H "))
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected AlreadyExists for case variant, got %v", err)
	}
	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("expected a single stored record, got %d", n)
	}
}

func TestIngestRejectsPriceOutsideColumn(t *testing.T) {
	client, repo := setup(t)
	ctx := context.Background()

	for _, price := range []string{"1e20", "0.004", "15.999"} {
		req := ingestRequest("B08N5KWB9H")
		req.CostPrice = price
		if _, err := client.Ingest(ctx, req); status.Code(err) != codes.InvalidArgument {
			t.Fatalf("cost %s: expected InvalidArgument, got %v", price, err)
		}
	}
	if n, _ := repo.Count(ctx); n != 0 {
		t.Fatalf("expected nothing stored, got %d", n)
	}
}
