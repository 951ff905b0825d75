package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"sourcing-planner/internal/purchase"
	"sourcing-planner/internal/services/purchase/repository"
)

// MemoryPurchaseRepository is an in-process Record Store. It enforces ASIN
// uniqueness like the unique index does and stamps ids and creation times
// from a monotonic fake clock.
type MemoryPurchaseRepository struct {
	mu      sync.Mutex
	records map[uuid.UUID]purchase.Record
	clock   time.Time
	err     error
}

var _ repository.PurchaseRepository = (*MemoryPurchaseRepository)(nil)

func NewMemoryPurchaseRepository() *MemoryPurchaseRepository {
	return &MemoryPurchaseRepository{
		records: map[uuid.UUID]purchase.Record{},
		clock:   time.Date(2025, 4, 23, 8, 0, 0, 0, time.UTC),
	}
}

// FailWith makes every subsequent call return err. nil restores normal
// behavior.
func (m *MemoryPurchaseRepository) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Put stores r as-is, bypassing uniqueness checks. Missing ids and
// timestamps are filled in.
func (m *MemoryPurchaseRepository) Put(r purchase.Record) purchase.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	r = m.stamp(r)
	m.records[r.ID] = r
	return r
}

func (m *MemoryPurchaseRepository) Lookup(id uuid.UUID) (purchase.Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	return r, ok
}

func (m *MemoryPurchaseRepository) stamp(r purchase.Record) purchase.Record {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		m.clock = m.clock.Add(time.Minute)
		r.CreatedAt = m.clock
	}
	if r.Status == "" {
		r.Status = purchase.StatusDraft
	}
	return r
}

func (m *MemoryPurchaseRepository) hasASIN(asin string) bool {
	for _, r := range m.records {
		if r.ASIN == asin {
			return true
		}
	}
	return false
}

func (m *MemoryPurchaseRepository) Insert(ctx context.Context, record purchase.Record) (purchase.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return purchase.Record{}, m.err
	}
	if m.hasASIN(record.ASIN) {
		return purchase.Record{}, repository.ErrDuplicateASIN
	}
	record = m.stamp(record)
	m.records[record.ID] = record
	return record, nil
}

func (m *MemoryPurchaseRepository) InsertIgnoringDuplicates(ctx context.Context, records []purchase.Record) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	var inserted int64
	for _, r := range records {
		if m.hasASIN(r.ASIN) {
			continue
		}
		r = m.stamp(r)
		m.records[r.ID] = r
		inserted++
	}
	return inserted, nil
}

func (m *MemoryPurchaseRepository) Get(ctx context.Context, id uuid.UUID) (purchase.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return purchase.Record{}, m.err
	}
	r, ok := m.records[id]
	if !ok {
		return purchase.Record{}, repository.ErrNotFound
	}
	return r, nil
}

func (m *MemoryPurchaseRepository) List(ctx context.Context) ([]purchase.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]purchase.Record, 0, len(m.records))
	for _, r := range m.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	return out, nil
}

func (m *MemoryPurchaseRepository) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.records)), nil
}

func (m *MemoryPurchaseRepository) CountByStatus(ctx context.Context) ([]repository.StatusCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	byStatus := map[string]int64{}
	for _, r := range m.records {
		byStatus[string(r.Status)]++
	}
	out := make([]repository.StatusCount, 0, len(byStatus))
	for s, n := range byStatus {
		out = append(out, repository.StatusCount{Status: s, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out, nil
}

func (m *MemoryPurchaseRepository) CaptureDrafts(ctx context.Context, ids []uuid.UUID) ([]repository.BulkResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	results := make([]repository.BulkResult, 0, len(ids))
	for _, id := range ids {
		r, ok := m.records[id]
		switch {
		case !ok:
			results = append(results, repository.BulkResult{ID: id, Outcome: repository.OutcomeNotFound})
		case r.Status != purchase.StatusDraft:
			results = append(results, repository.BulkResult{ID: id, Outcome: repository.OutcomeSkipped, Reason: "status is " + string(r.Status)})
		default:
			r.Status = purchase.StatusPurchased
			m.records[id] = r
			results = append(results, repository.BulkResult{ID: id, Outcome: repository.OutcomeUpdated})
		}
	}
	return results, nil
}

func (m *MemoryPurchaseRepository) Delete(ctx context.Context, ids []uuid.UUID) ([]repository.BulkResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	results := make([]repository.BulkResult, 0, len(ids))
	for _, id := range ids {
		if _, ok := m.records[id]; !ok {
			results = append(results, repository.BulkResult{ID: id, Outcome: repository.OutcomeNotFound})
			continue
		}
		delete(m.records, id)
		results = append(results, repository.BulkResult{ID: id, Outcome: repository.OutcomeDeleted})
	}
	return results, nil
}
