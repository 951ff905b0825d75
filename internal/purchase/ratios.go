package purchase

import "fmt"

// StatusCounts tallies records per lifecycle stage. Total includes records
// with an unrecognized status.
type StatusCounts struct {
	Draft     int64 `json:"draft"`
	Purchased int64 `json:"purchased"`
	Shipped   int64 `json:"shipped"`
	Received  int64 `json:"received"`
	Total     int64 `json:"total"`
}

// Add records n records carrying status.
func (c *StatusCounts) Add(status Status, n int64) {
	switch status {
	case StatusDraft:
		c.Draft += n
	case StatusPurchased:
		c.Purchased += n
	case StatusShipped:
		c.Shipped += n
	case StatusReceived:
		c.Received += n
	}
	c.Total += n
}

func CountStatuses(statuses []Status) StatusCounts {
	var c StatusCounts
	for _, s := range statuses {
		c.Add(s, 1)
	}
	return c
}

type Ratio struct {
	Numerator   int64   `json:"numerator"`
	Denominator int64   `json:"denominator"`
	Value       float64 `json:"value"`
}

func newRatio(numerator, denominator int64) Ratio {
	r := Ratio{Numerator: numerator, Denominator: denominator}
	if denominator != 0 {
		r.Value = float64(numerator) / float64(denominator)
	}
	return r
}

type StatusRatios struct {
	DraftToPurchase    Ratio `json:"draft_to_purchase"`
	PurchaseToReceived Ratio `json:"purchase_to_received"`
	ReceivedToShipped  Ratio `json:"received_to_shipped"`
}

func (c StatusCounts) Ratios() StatusRatios {
	return StatusRatios{
		DraftToPurchase:    newRatio(c.Purchased, c.Draft+c.Purchased),
		PurchaseToReceived: newRatio(c.Received, c.Purchased+c.Received),
		ReceivedToShipped:  newRatio(c.Received, c.Shipped+c.Received),
	}
}

// Tier is the fill level of the three-segment indicator next to a ratio.
type Tier struct {
	Bars  int    `json:"bars"`
	Color string `json:"color"`
}

func TierFor(value float64) Tier {
	switch {
	case value < 0.3:
		return Tier{Bars: 1, Color: "red"}
	case value < 0.7:
		return Tier{Bars: 2, Color: "orange"}
	default:
		return Tier{Bars: 3, Color: "emerald"}
	}
}

type MetricCard struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Percentage string  `json:"percentage"`
	Fraction   string  `json:"fraction"`
	Tier       Tier    `json:"tier"`
}

func newCard(label string, r Ratio) MetricCard {
	return MetricCard{
		Label:      label,
		Value:      r.Value,
		Percentage: fmt.Sprintf("%.1f%%", r.Value*100),
		Fraction:   fmt.Sprintf("%d/%d", r.Numerator, r.Denominator),
		Tier:       TierFor(r.Value),
	}
}

// Cards returns the three ratio indicators in display order.
func (r StatusRatios) Cards() []MetricCard {
	return []MetricCard{
		newCard("Draft-to-Purchase Ratio", r.DraftToPurchase),
		newCard("Purchase-to-Received Ratio", r.PurchaseToReceived),
		newCard("Received-to-Shipped Ratio", r.ReceivedToShipped),
	}
}
