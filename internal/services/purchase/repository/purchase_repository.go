package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sourcing-planner/internal/database/models"
	"sourcing-planner/internal/purchase"
)

var (
	ErrDuplicateASIN = errors.New("asin already exists")
	ErrNotFound      = errors.New("purchase not found")
)

const uniqueViolation = "23505"

type Outcome string

const (
	OutcomeUpdated  Outcome = "updated"
	OutcomeDeleted  Outcome = "deleted"
	OutcomeNotFound Outcome = "not_found"
	OutcomeSkipped  Outcome = "skipped"
)

// BulkResult is the outcome of a bulk action for one record id.
type BulkResult struct {
	ID      uuid.UUID
	Outcome Outcome
	Reason  string
}

type StatusCount struct {
	Status string
	Count  int64
}

// PurchaseRepository is the Record Store as seen by the purchase service.
type PurchaseRepository interface {
	// Insert stores a new record and returns the row as stored. A record
	// whose asin is already present fails with ErrDuplicateASIN.
	Insert(ctx context.Context, record purchase.Record) (purchase.Record, error)
	// InsertIgnoringDuplicates stores records, silently skipping asins that
	// already exist, and reports how many rows were written.
	InsertIgnoringDuplicates(ctx context.Context, records []purchase.Record) (int64, error)
	// Get returns ErrNotFound for an unknown id.
	Get(ctx context.Context, id uuid.UUID) (purchase.Record, error)
	List(ctx context.Context) ([]purchase.Record, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	// CaptureDrafts moves draft records to purchased.
	CaptureDrafts(ctx context.Context, ids []uuid.UUID) ([]BulkResult, error)
	Delete(ctx context.Context, ids []uuid.UUID) ([]BulkResult, error)
}

// IsUniqueViolation reports whether err is the store rejecting a second row
// for a unique key.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type GormPurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *GormPurchaseRepository {
	return &GormPurchaseRepository{db: db}
}

func (r *GormPurchaseRepository) Insert(ctx context.Context, record purchase.Record) (purchase.Record, error) {
	row := models.PurchaseFromRecord(record)
	if err := r.db.WithContext(ctx).Clauses(clause.Returning{}).Create(&row).Error; err != nil {
		if IsUniqueViolation(err) {
			return purchase.Record{}, ErrDuplicateASIN
		}
		return purchase.Record{}, fmt.Errorf("insert purchase %s: %w", record.ASIN, err)
	}
	return row.ToRecord(), nil
}

func (r *GormPurchaseRepository) InsertIgnoringDuplicates(ctx context.Context, records []purchase.Record) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	rows := make([]models.Purchase, len(records))
	for i, rec := range records {
		rows[i] = models.PurchaseFromRecord(rec)
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "asin"}}, DoNothing: true}).
		Create(&rows)
	if result.Error != nil {
		return 0, fmt.Errorf("insert %d purchases: %w", len(rows), result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormPurchaseRepository) Get(ctx context.Context, id uuid.UUID) (purchase.Record, error) {
	var row models.Purchase
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return purchase.Record{}, ErrNotFound
		}
		return purchase.Record{}, fmt.Errorf("get purchase %s: %w", id, err)
	}
	return row.ToRecord(), nil
}

func (r *GormPurchaseRepository) List(ctx context.Context) ([]purchase.Record, error) {
	var rows []models.Purchase
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	records := make([]purchase.Record, len(rows))
	for i, row := range rows {
		records[i] = row.ToRecord()
	}
	return records, nil
}

func (r *GormPurchaseRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Purchase{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count purchases: %w", err)
	}
	return total, nil
}

func (r *GormPurchaseRepository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	var counts []StatusCount
	err := r.db.WithContext(ctx).Model(&models.Purchase{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("count purchases by status: %w", err)
	}
	return counts, nil
}

func (r *GormPurchaseRepository) CaptureDrafts(ctx context.Context, ids []uuid.UUID) ([]BulkResult, error) {
	var results []BulkResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := statusesByID(tx, ids)
		if err != nil {
			return err
		}

		var drafts []uuid.UUID
		results = make([]BulkResult, 0, len(ids))
		for _, id := range ids {
			status, ok := current[id]
			switch {
			case !ok:
				results = append(results, BulkResult{ID: id, Outcome: OutcomeNotFound})
			case status != string(purchase.StatusDraft):
				results = append(results, BulkResult{ID: id, Outcome: OutcomeSkipped, Reason: "status is " + status})
			default:
				drafts = append(drafts, id)
				results = append(results, BulkResult{ID: id, Outcome: OutcomeUpdated})
			}
		}

		if len(drafts) == 0 {
			return nil
		}
		return tx.Model(&models.Purchase{}).
			Where("id IN ? AND status = ?", drafts, string(purchase.StatusDraft)).
			Update("status", string(purchase.StatusPurchased)).Error
	})
	if err != nil {
		return nil, fmt.Errorf("capture purchases: %w", err)
	}
	return results, nil
}

func (r *GormPurchaseRepository) Delete(ctx context.Context, ids []uuid.UUID) ([]BulkResult, error) {
	var results []BulkResult
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := statusesByID(tx, ids)
		if err != nil {
			return err
		}

		var existing []uuid.UUID
		results = make([]BulkResult, 0, len(ids))
		for _, id := range ids {
			if _, ok := current[id]; !ok {
				results = append(results, BulkResult{ID: id, Outcome: OutcomeNotFound})
				continue
			}
			existing = append(existing, id)
			results = append(results, BulkResult{ID: id, Outcome: OutcomeDeleted})
		}

		if len(existing) == 0 {
			return nil
		}
		return tx.Where("id IN ?", existing).Delete(&models.Purchase{}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("delete purchases: %w", err)
	}
	return results, nil
}

// statusesByID locks and returns the current status of each existing id.
func statusesByID(tx *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	var rows []models.Purchase
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "status").
		Where("id IN ?", ids).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	current := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		current[row.ID] = row.Status
	}
	return current, nil
}
