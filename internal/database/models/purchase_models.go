package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sourcing-planner/internal/purchase"
)

const PurchaseTable = "amz_sas_purchase"

type Purchase struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CreatedAt      time.Time       `gorm:"autoCreateTime;index"`
	ASIN           string          `gorm:"column:asin;size:20;not null;uniqueIndex:idx_amz_sas_purchase_asin"`
	Quantity       int32           `gorm:"not null"`
	CostPrice      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SalePrice      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	VATOnCost      bool            `gorm:"column:vat_on_cost;not null;default:false"`
	EstimatedSales *string         `gorm:"type:text"`
	Status         string          `gorm:"size:20;not null;default:draft;index"`
}

func (Purchase) TableName() string {
	return PurchaseTable
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = string(purchase.StatusDraft)
	}
	return nil
}

func (p Purchase) ToRecord() purchase.Record {
	return purchase.Record{
		ID:             p.ID,
		CreatedAt:      p.CreatedAt,
		ASIN:           p.ASIN,
		Quantity:       p.Quantity,
		CostPrice:      p.CostPrice,
		SalePrice:      p.SalePrice,
		VATOnCost:      p.VATOnCost,
		EstimatedSales: p.EstimatedSales,
		Status:         purchase.Status(p.Status),
	}
}

func PurchaseFromRecord(r purchase.Record) Purchase {
	return Purchase{
		ID:             r.ID,
		CreatedAt:      r.CreatedAt,
		ASIN:           r.ASIN,
		Quantity:       r.Quantity,
		CostPrice:      r.CostPrice,
		SalePrice:      r.SalePrice,
		VATOnCost:      r.VATOnCost,
		EstimatedSales: r.EstimatedSales,
		Status:         string(r.Status),
	}
}
