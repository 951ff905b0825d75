package purchase

import "testing"

func TestStatusRatiosReferenceCounts(t *testing.T) {
	counts := StatusCounts{}
	counts.Add(StatusDraft, 2)
	counts.Add(StatusPurchased, 3)
	counts.Add(StatusShipped, 1)
	counts.Add(StatusReceived, 4)

	if counts.Total != 10 {
		t.Fatalf("expected total 10, got %d", counts.Total)
	}

	cards := counts.Ratios().Cards()
	expected := []struct {
		label, percentage, fraction string
		bars                        int
		color                       string
	}{
		{"Draft-to-Purchase Ratio", "60.0%", "3/5", 2, "orange"},
		{"Purchase-to-Received Ratio", "57.1%", "4/7", 2, "orange"},
		{"Received-to-Shipped Ratio", "80.0%", "4/5", 3, "emerald"},
	}
	if len(cards) != len(expected) {
		t.Fatalf("expected %d cards, got %d", len(expected), len(cards))
	}
	for i, want := range expected {
		got := cards[i]
		if got.Label != want.label || got.Percentage != want.percentage || got.Fraction != want.fraction {
			t.Fatalf("card %d: expected %s %s %s, got %s %s %s", i,
				want.label, want.percentage, want.fraction, got.Label, got.Percentage, got.Fraction)
		}
		if got.Tier.Bars != want.bars || got.Tier.Color != want.color {
			t.Fatalf("card %d: expected tier %d/%s, got %d/%s", i, want.bars, want.color, got.Tier.Bars, got.Tier.Color)
		}
	}
}

func TestStatusRatiosEmptyCollection(t *testing.T) {
	r := StatusCounts{}.Ratios()

	for _, ratio := range []Ratio{r.DraftToPurchase, r.PurchaseToReceived, r.ReceivedToShipped} {
		if ratio.Value != 0 || ratio.Denominator != 0 {
			t.Fatalf("expected zero ratio, got %+v", ratio)
		}
	}
	for _, card := range r.Cards() {
		if card.Percentage != "0.0%" || card.Fraction != "0/0" || card.Tier.Color != "red" {
			t.Fatalf("unexpected empty card %+v", card)
		}
	}
}

func TestCountStatusesIgnoresUnknownInBuckets(t *testing.T) {
	c := CountStatuses([]Status{StatusDraft, "archived", StatusReceived, StatusDraft})

	if c.Draft != 2 || c.Received != 1 || c.Purchased != 0 || c.Shipped != 0 {
		t.Fatalf("unexpected buckets %+v", c)
	}
	if c.Total != 4 {
		t.Fatalf("unknown statuses must still count toward total, got %d", c.Total)
	}
}

func TestTierBoundaries(t *testing.T) {
	cases := []struct {
		value float64
		bars  int
	}{
		{0, 1}, {0.2999, 1}, {0.3, 2}, {0.6999, 2}, {0.7, 3}, {1, 3},
	}
	for _, tc := range cases {
		if got := TierFor(tc.value).Bars; got != tc.bars {
			t.Fatalf("TierFor(%v) expected %d bars, got %d", tc.value, tc.bars, got)
		}
	}
}
