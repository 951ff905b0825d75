package purchase

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortCreatedAt      SortKey = "created_at"
	SortQuantity       SortKey = "quantity"
	SortPricing        SortKey = "pricing"
	SortEstimatedSales SortKey = "estimated_sales"
	SortASIN           SortKey = "asin"
	SortStatus         SortKey = "status"
)

// SortKeys lists the sortable columns in table order.
var SortKeys = []SortKey{SortCreatedAt, SortQuantity, SortPricing, SortEstimatedSales, SortASIN, SortStatus}

func ParseSortKey(s string) (SortKey, bool) {
	for _, k := range SortKeys {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// Next cycles through SortKeys.
func (k SortKey) Next() SortKey {
	for i, key := range SortKeys {
		if key == k {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return SortKeys[0]
}

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

func ParseSortOrder(s string) (SortOrder, bool) {
	switch SortOrder(strings.ToLower(s)) {
	case Ascending:
		return Ascending, true
	case Descending:
		return Descending, true
	}
	return "", false
}

func (o SortOrder) Flip() SortOrder {
	if o == Ascending {
		return Descending
	}
	return Ascending
}

// compare returns <0, 0 or >0 ordering a before b by key.
func compare(a, b Record, key SortKey) int {
	switch key {
	case SortCreatedAt:
		return a.CreatedAt.Compare(b.CreatedAt)
	case SortQuantity:
		return int(a.Quantity) - int(b.Quantity)
	case SortPricing:
		if c := a.CostPrice.Cmp(b.CostPrice); c != 0 {
			return c
		}
		return a.SalePrice.Cmp(b.SalePrice)
	case SortEstimatedSales:
		switch {
		case a.EstimatedSales == nil && b.EstimatedSales == nil:
			return 0
		case a.EstimatedSales == nil:
			return -1
		case b.EstimatedSales == nil:
			return 1
		}
		return strings.Compare(*a.EstimatedSales, *b.EstimatedSales)
	case SortASIN:
		return strings.Compare(a.ASIN, b.ASIN)
	case SortStatus:
		if c := a.Status.rank() - b.Status.rank(); c != 0 {
			return c
		}
		return strings.Compare(string(a.Status), string(b.Status))
	}
	return 0
}

// SortBy stably sorts rows by the record returned from rec.
func SortBy[T any](rows []T, rec func(T) Record, key SortKey, order SortOrder) {
	sort.SliceStable(rows, func(i, j int) bool {
		c := compare(rec(rows[i]), rec(rows[j]), key)
		if order == Descending {
			return c > 0
		}
		return c < 0
	})
}

func SortRecords(records []Record, key SortKey, order SortOrder) {
	SortBy(records, func(r Record) Record { return r }, key, order)
}
