package purchase

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// VATFactor is the German standard VAT multiplier applied to cost prices.
	VATFactor = decimal.RequireFromString("1.19")

	hundred = decimal.NewFromInt(100)
)

// Metrics are the per-record profitability figures. Nothing here is
// persisted; intermediates keep full precision.
type Metrics struct {
	CostWithVAT      decimal.Decimal `json:"cost_with_vat"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	Profit           decimal.Decimal `json:"profit"`
	MarginPercent    decimal.Decimal `json:"margin_percent"`
	ROIPercent       decimal.Decimal `json:"roi_percent"`
	MaxBreakEvenCost decimal.Decimal `json:"max_break_even_cost"`
}

// Derive computes Metrics. Margin and ROI are zero when their denominator
// (revenue, cost) is zero.
func Derive(costPrice, salePrice decimal.Decimal, quantity int32, vatOnCost bool) Metrics {
	qty := decimal.NewFromInt32(quantity)

	costWithVAT := costPrice
	breakEvenDivisor := decimal.NewFromInt(1)
	if vatOnCost {
		costWithVAT = costPrice.Mul(VATFactor)
		breakEvenDivisor = VATFactor
	}

	m := Metrics{
		CostWithVAT:      costWithVAT,
		TotalCost:        costWithVAT.Mul(qty),
		TotalRevenue:     salePrice.Mul(qty),
		MaxBreakEvenCost: salePrice.Div(breakEvenDivisor),
	}
	m.Profit = m.TotalRevenue.Sub(m.TotalCost)
	if !m.TotalRevenue.IsZero() {
		m.MarginPercent = m.Profit.Div(m.TotalRevenue).Mul(hundred)
	}
	if !m.TotalCost.IsZero() {
		m.ROIPercent = m.Profit.Div(m.TotalCost).Mul(hundred)
	}
	return m
}

// FormatEuro renders an amount the way the dashboard shows prices:
// two decimals, decimal comma, trailing euro sign ("15,99 €").
func FormatEuro(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1) + " €"
}

// FormatPercent renders a percentage with one decimal ("36.6%").
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}
