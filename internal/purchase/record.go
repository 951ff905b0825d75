// Package purchase holds the sourcing-candidate domain: records, derived
// profitability metrics, status ratios, ingestion coercion, client-side
// table state (selection and sorting) and exports.
package purchase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPurchased Status = "purchased"
	StatusShipped   Status = "shipped"
	StatusReceived  Status = "received"
)

// Known reports whether s is one of the four lifecycle stages.
func (s Status) Known() bool {
	switch s {
	case StatusDraft, StatusPurchased, StatusShipped, StatusReceived:
		return true
	}
	return false
}

// rank orders statuses along the lifecycle; unknown values sort last.
func (s Status) rank() int {
	switch s {
	case StatusDraft:
		return 0
	case StatusPurchased:
		return 1
	case StatusShipped:
		return 2
	case StatusReceived:
		return 3
	}
	return 4
}

type Badge struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
}

// Badge maps a status to its visual state. Unknown values pass through as
// their own label.
func (s Status) Badge() Badge {
	switch s {
	case StatusDraft:
		return Badge{Label: "Drafted", Tone: "gray"}
	case StatusPurchased:
		return Badge{Label: "Purchased", Tone: "blue"}
	case StatusShipped:
		return Badge{Label: "Shipped", Tone: "emerald"}
	case StatusReceived:
		return Badge{Label: "Received", Tone: "amber"}
	}
	return Badge{Label: string(s), Tone: "gray"}
}

// Record is one sourcing candidate as stored in amz_sas_purchase.
type Record struct {
	ID             uuid.UUID       `json:"id"`
	CreatedAt      time.Time       `json:"created_at"`
	ASIN           string          `json:"asin"`
	Quantity       int32           `json:"quantity"`
	CostPrice      decimal.Decimal `json:"cost_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	VATOnCost      bool            `json:"vat_on_cost"`
	EstimatedSales *string         `json:"estimated_sales"`
	Status         Status          `json:"status"`
}

func (r Record) Metrics() Metrics {
	return Derive(r.CostPrice, r.SalePrice, r.Quantity, r.VATOnCost)
}

// ExampleRecords returns the three demonstration rows used by the explicit
// seed operation.
func ExampleRecords() []Record {
	return []Record{
		{
			ASIN:           "B08N5KWB9H",
			Quantity:       10,
			CostPrice:      decimal.RequireFromString("15.99"),
			SalePrice:      decimal.RequireFromString("29.99"),
			VATOnCost:      true,
			EstimatedSales: strPtr("~300/month"),
			Status:         StatusDraft,
		},
		{
			ASIN:           "B09B1XKGLZ",
			Quantity:       5,
			CostPrice:      decimal.RequireFromString("25.50"),
			SalePrice:      decimal.RequireFromString("49.99"),
			VATOnCost:      false,
			EstimatedSales: strPtr("~150/month"),
			Status:         StatusPurchased,
		},
		{
			ASIN:           "B07ZPML7NP",
			Quantity:       20,
			CostPrice:      decimal.RequireFromString("8.75"),
			SalePrice:      decimal.RequireFromString("19.99"),
			VATOnCost:      true,
			EstimatedSales: strPtr("~500/month"),
			Status:         StatusShipped,
		},
	}
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
