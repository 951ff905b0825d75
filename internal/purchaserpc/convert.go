// Package purchaserpc holds the generated purchase.PurchaseService contract
// and its conversions to and from the purchase domain types.
package purchaserpc

//go:generate protoc -I ../../proto --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative purchase.proto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	"sourcing-planner/internal/purchase"
)

func PurchaseToProto(r purchase.Record) *Purchase {
	return &Purchase{
		Id:             r.ID.String(),
		CreatedAt:      timestamppb.New(r.CreatedAt),
		Asin:           r.ASIN,
		Quantity:       r.Quantity,
		CostPrice:      r.CostPrice.String(),
		SalePrice:      r.SalePrice.String(),
		VatOnCost:      r.VATOnCost,
		EstimatedSales: r.EstimatedSales,
		Status:         string(r.Status),
	}
}

func PurchasesToProto(records []purchase.Record) []*Purchase {
	out := make([]*Purchase, len(records))
	for i, r := range records {
		out[i] = PurchaseToProto(r)
	}
	return out
}

// Record decodes the wire form back into a domain record.
func (p *Purchase) Record() (purchase.Record, error) {
	if p == nil {
		return purchase.Record{}, errors.New("purchase missing from response")
	}
	id, err := uuid.Parse(p.Id)
	if err != nil {
		return purchase.Record{}, fmt.Errorf("purchase id %q: %w", p.Id, err)
	}
	cost, err := decimal.NewFromString(p.CostPrice)
	if err != nil {
		return purchase.Record{}, fmt.Errorf("purchase %s cost_price: %w", p.Id, err)
	}
	sale, err := decimal.NewFromString(p.SalePrice)
	if err != nil {
		return purchase.Record{}, fmt.Errorf("purchase %s sale_price: %w", p.Id, err)
	}
	r := purchase.Record{
		ID:             id,
		ASIN:           p.Asin,
		Quantity:       p.Quantity,
		CostPrice:      cost,
		SalePrice:      sale,
		VATOnCost:      p.VatOnCost,
		EstimatedSales: p.EstimatedSales,
		Status:         purchase.Status(p.Status),
	}
	if p.CreatedAt != nil {
		r.CreatedAt = p.CreatedAt.AsTime()
	}
	return r, nil
}

func RecordsFromProto(in []*Purchase) ([]purchase.Record, error) {
	out := make([]purchase.Record, 0, len(in))
	for _, p := range in {
		if p == nil {
			continue
		}
		r, err := p.Record()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func IngestRequestFromCandidate(c purchase.Candidate) *IngestRequest {
	return &IngestRequest{
		Asin:           c.ASIN,
		Quantity:       c.Quantity,
		CostPrice:      c.CostPrice.String(),
		SalePrice:      c.SalePrice.String(),
		VatOnCost:      c.VATOnCost,
		EstimatedSales: c.EstimatedSales,
	}
}

// Candidate decodes and validates the request. Every failure is a
// *purchase.InvalidCandidateError.
func (r *IngestRequest) Candidate() (purchase.Candidate, error) {
	c := purchase.Candidate{
		ASIN:           strings.ToUpper(strings.TrimSpace(r.Asin)),
		Quantity:       r.Quantity,
		VATOnCost:      r.VatOnCost,
		EstimatedSales: r.EstimatedSales,
	}
	problems := map[string]string{}
	var err error
	if c.CostPrice, err = decimal.NewFromString(r.CostPrice); err != nil {
		problems["CostPrice"] = fmt.Sprintf("%q is not a number", r.CostPrice)
	}
	if c.SalePrice, err = decimal.NewFromString(r.SalePrice); err != nil {
		problems["SalePrice"] = fmt.Sprintf("%q is not a number", r.SalePrice)
	}
	if len(problems) > 0 {
		return purchase.Candidate{}, &purchase.InvalidCandidateError{Fields: problems}
	}
	if err := c.Validate(); err != nil {
		return purchase.Candidate{}, err
	}
	return c, nil
}

// Totals folds per-status rows into lifecycle buckets.
func (r *StatusCountsResponse) Totals() purchase.StatusCounts {
	var c purchase.StatusCounts
	for _, sc := range r.Counts {
		if sc == nil {
			continue
		}
		c.Add(purchase.Status(sc.Status), sc.Count)
	}
	return c
}

func BulkRequestFromIDs(ids []uuid.UUID) *BulkRequest {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return &BulkRequest{Ids: out}
}
