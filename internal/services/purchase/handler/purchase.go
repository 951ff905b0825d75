package handler

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"

	"sourcing-planner/config"
	"sourcing-planner/internal/purchase"
	"sourcing-planner/internal/purchaserpc"
	"sourcing-planner/internal/services/purchase/repository"
)

const (
	STATUS_COUNTS_CACHE_KEY   = "purchase:status-counts"
	STATUS_COUNTS_VERSION_KEY = "purchase:status-counts:version"
	CACHE_TTL_SHORT           = 5 * time.Minute

	// MaxBulkIDs bounds a single capture or delete request.
	MaxBulkIDs = 500

	moduleName = "purchase"
)

type PurchaseHandler struct {
	purchaserpc.UnimplementedPurchaseServiceServer
	repo   repository.PurchaseRepository
	redis  *redis.Client
	logger *logrus.Logger
}

// NewPurchaseHandler builds the service. redisClient may be nil, in which
// case status counts are always read from the store.
func NewPurchaseHandler(repo repository.PurchaseRepository, redisClient *redis.Client) *PurchaseHandler {
	return &PurchaseHandler{
		repo:   repo,
		redis:  redisClient,
		logger: config.GetLogger(),
	}
}

var errStaleStatusCounts = errors.New("status counts changed while loading")

// InvalidatePurchaseCaches bumps the status-count version and drops the
// cached counts. Every write calls it after the store has committed.
func (h *PurchaseHandler) InvalidatePurchaseCaches(ctx context.Context) {
	if h.redis == nil {
		return
	}
	_, err := h.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, STATUS_COUNTS_VERSION_KEY)
		pipe.Del(ctx, STATUS_COUNTS_CACHE_KEY)
		return nil
	})
	if err != nil {
		h.logger.WithField("key", STATUS_COUNTS_CACHE_KEY).Warnf("failed to invalidate cache: %v", err)
	}
}

func (h *PurchaseHandler) Ingest(ctx context.Context, req *purchaserpc.IngestRequest) (*purchaserpc.IngestResponse, error) {
	candidate, err := req.Candidate()
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	record, err := h.repo.Insert(ctx, candidate.Record())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateASIN) {
			return nil, status.Errorf(codes.AlreadyExists, "ASIN %s already exists", candidate.ASIN)
		}
		config.LogError(h.logger, moduleName, "Ingest", "insert purchase", candidate.ASIN, err)
		return nil, status.Errorf(codes.Internal, "failed to insert purchase: %v", err)
	}

	h.InvalidatePurchaseCaches(ctx)
	h.logger.WithFields(logrus.Fields{"asin": record.ASIN, "id": record.ID}).Info("purchase ingested")

	return &purchaserpc.IngestResponse{Purchase: purchaserpc.PurchaseToProto(record)}, nil
}

func (h *PurchaseHandler) Get(ctx context.Context, req *purchaserpc.GetRequest) (*purchaserpc.GetResponse, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid id %q", req.Id)
	}
	record, err := h.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "purchase %s not found", id)
		}
		config.LogError(h.logger, moduleName, "Get", "get purchase", req.Id, err)
		return nil, status.Errorf(codes.Internal, "failed to get purchase: %v", err)
	}
	return &purchaserpc.GetResponse{Purchase: purchaserpc.PurchaseToProto(record)}, nil
}

func (h *PurchaseHandler) List(ctx context.Context, req *purchaserpc.ListRequest) (*purchaserpc.ListResponse, error) {
	records, err := h.repo.List(ctx)
	if err != nil {
		config.LogError(h.logger, moduleName, "List", "list purchases", nil, err)
		return nil, status.Errorf(codes.Internal, "failed to list purchases: %v", err)
	}
	return &purchaserpc.ListResponse{Purchases: purchaserpc.PurchasesToProto(records)}, nil
}

func (h *PurchaseHandler) StatusCounts(ctx context.Context, req *purchaserpc.StatusCountsRequest) (*purchaserpc.StatusCountsResponse, error) {
	version, cached := h.cachedStatusCounts(ctx)
	if cached != nil {
		return cached, nil
	}

	counts, err := h.repo.CountByStatus(ctx)
	if err != nil {
		config.LogError(h.logger, moduleName, "StatusCounts", "count purchases by status", nil, err)
		return nil, status.Errorf(codes.Internal, "failed to count purchases: %v", err)
	}

	resp := &purchaserpc.StatusCountsResponse{Counts: make([]*purchaserpc.StatusCount, len(counts))}
	for i, c := range counts {
		resp.Counts[i] = &purchaserpc.StatusCount{Status: c.Status, Count: c.Count}
	}

	h.storeStatusCounts(ctx, version, resp)
	return resp, nil
}

// cachedStatusCounts returns the cache version seen before the store is
// read, plus the cached counts when present.
func (h *PurchaseHandler) cachedStatusCounts(ctx context.Context) (string, *purchaserpc.StatusCountsResponse) {
	if h.redis == nil {
		return "", nil
	}
	vals, err := h.redis.MGet(ctx, STATUS_COUNTS_VERSION_KEY, STATUS_COUNTS_CACHE_KEY).Result()
	if err != nil {
		h.logger.WithField("key", STATUS_COUNTS_CACHE_KEY).Warnf("redis error on MGET, falling back to DB: %v", err)
		return "", nil
	}
	version, _ := vals[0].(string)
	payload, ok := vals[1].(string)
	if !ok {
		return version, nil
	}
	var cached purchaserpc.StatusCountsResponse
	if err := protojson.Unmarshal([]byte(payload), &cached); err != nil {
		h.logger.WithField("key", STATUS_COUNTS_CACHE_KEY).Warnf("dropping undecodable cache entry: %v", err)
		return version, nil
	}
	return version, &cached
}

// storeStatusCounts caches resp unless a write bumped the version since
// version was read.
func (h *PurchaseHandler) storeStatusCounts(ctx context.Context, version string, resp *purchaserpc.StatusCountsResponse) {
	if h.redis == nil {
		return
	}
	payload, err := protojson.Marshal(resp)
	if err != nil {
		return
	}

	err = h.redis.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, STATUS_COUNTS_VERSION_KEY).Result()
		if err != nil && err != redis.Nil {
			return err
		}
		if current != version {
			return errStaleStatusCounts
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, STATUS_COUNTS_CACHE_KEY, payload, CACHE_TTL_SHORT)
			return nil
		})
		return err
	}, STATUS_COUNTS_VERSION_KEY)

	switch {
	case err == nil:
	case errors.Is(err, errStaleStatusCounts), errors.Is(err, redis.TxFailedErr):
		h.logger.WithField("key", STATUS_COUNTS_CACHE_KEY).Debug("status counts changed while loading, not cached")
	default:
		h.logger.WithField("key", STATUS_COUNTS_CACHE_KEY).Warnf("failed to set cache: %v", err)
	}
}

// Seed writes the example rows, but only into an empty store.
func (h *PurchaseHandler) Seed(ctx context.Context, req *purchaserpc.SeedRequest) (*purchaserpc.SeedResponse, error) {
	total, err := h.repo.Count(ctx)
	if err != nil {
		config.LogError(h.logger, moduleName, "Seed", "count purchases", nil, err)
		return nil, status.Errorf(codes.Internal, "failed to count purchases: %v", err)
	}
	if total > 0 {
		return &purchaserpc.SeedResponse{Inserted: 0}, nil
	}

	inserted, err := h.repo.InsertIgnoringDuplicates(ctx, purchase.ExampleRecords())
	if err != nil {
		config.LogError(h.logger, moduleName, "Seed", "insert example purchases", nil, err)
		return nil, status.Errorf(codes.Internal, "failed to seed purchases: %v", err)
	}
	if inserted > 0 {
		h.InvalidatePurchaseCaches(ctx)
	}
	h.logger.WithField("inserted", inserted).Info("example purchases seeded")
	return &purchaserpc.SeedResponse{Inserted: inserted}, nil
}

func (h *PurchaseHandler) Capture(ctx context.Context, req *purchaserpc.BulkRequest) (*purchaserpc.BulkResponse, error) {
	ids, err := parseIDs(req.Ids)
	if err != nil {
		return nil, err
	}
	results, err := h.repo.CaptureDrafts(ctx, ids)
	if err != nil {
		config.LogError(h.logger, moduleName, "Capture", "capture drafts", req.Ids, err)
		return nil, status.Errorf(codes.Internal, "failed to capture purchases: %v", err)
	}
	h.InvalidatePurchaseCaches(ctx)
	return bulkResponse(results), nil
}

func (h *PurchaseHandler) Delete(ctx context.Context, req *purchaserpc.BulkRequest) (*purchaserpc.BulkResponse, error) {
	ids, err := parseIDs(req.Ids)
	if err != nil {
		return nil, err
	}
	results, err := h.repo.Delete(ctx, ids)
	if err != nil {
		config.LogError(h.logger, moduleName, "Delete", "delete purchases", req.Ids, err)
		return nil, status.Errorf(codes.Internal, "failed to delete purchases: %v", err)
	}
	h.InvalidatePurchaseCaches(ctx)
	return bulkResponse(results), nil
}

// parseIDs validates and de-duplicates the ids of a bulk request, keeping
// first-seen order.
func parseIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, status.Errorf(codes.InvalidArgument, "ids are required")
	}
	if len(raw) > MaxBulkIDs {
		return nil, status.Errorf(codes.InvalidArgument, "at most %d ids per request", MaxBulkIDs)
	}
	seen := make(map[uuid.UUID]struct{}, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid id %q", s)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

func bulkResponse(results []repository.BulkResult) *purchaserpc.BulkResponse {
	resp := &purchaserpc.BulkResponse{Results: make([]*purchaserpc.BulkResult, len(results))}
	for i, r := range results {
		resp.Results[i] = &purchaserpc.BulkResult{
			Id:      r.ID.String(),
			Outcome: string(r.Outcome),
			Reason:  r.Reason,
		}
	}
	return resp
}
