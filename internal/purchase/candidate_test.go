package purchase

import (
	"encoding/json"
	"errors"
	"testing"
)

func payload(t *testing.T, body string) IngestPayload {
	t.Helper()
	var p IngestPayload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("bad test payload: %v", err)
	}
	return p
}

func TestParseCandidateAcceptsStringsAndNumbers(t *testing.T) {
	bodies := []string{
		`{"ASIN":"B08N5KWB9H","Quantity":"10","CostPrice":"15.99","SalePrice":"29.99","VAT_on_Cost":"Yes","EstimatedSales":"~300/month"}`,
		`{"ASIN":" b08n5kwb9h ","Quantity":10,"CostPrice":15.99,"SalePrice":29.99,"VAT_on_Cost":true,"EstimatedSales":"~300/month"}`,
		`{"ASIN":"B08N5KWB9H","Quantity":" 10 ","CostPrice":"15,99","SalePrice":" 29.99 ","VAT_on_Cost":"Yes","EstimatedSales":"~300/month"}`,
	}

	for _, body := range bodies {
		c, err := ParseCandidate(payload(t, body))
		if err != nil {
			t.Fatalf("ParseCandidate(%s) error: %v", body, err)
		}
		if c.ASIN != "B08N5KWB9H" || c.Quantity != 10 {
			t.Fatalf("unexpected candidate %+v", c)
		}
		if c.CostPrice.String() != "15.99" || c.SalePrice.String() != "29.99" {
			t.Fatalf("unexpected prices %s / %s", c.CostPrice, c.SalePrice)
		}
		if !c.VATOnCost {
			t.Fatalf("expected VAT on cost for %s", body)
		}
		if c.EstimatedSales == nil || *c.EstimatedSales != "~300/month" {
			t.Fatalf("unexpected estimated sales %v", c.EstimatedSales)
		}
	}
}

func TestParseCandidateVATFlag(t *testing.T) {
	for body, want := range map[string]bool{
		`"Yes"`:   true,
		`true`:    true,
		`"yes"`:   false,
		`"No"`:    false,
		`false`:   false,
		`null`:    false,
		`"Ja"`:    false,
		`1`:       false,
	} {
		p := payload(t, `{"ASIN":"B08N5KWB9H","Quantity":1,"CostPrice":1,"SalePrice":2,"VAT_on_Cost":`+body+`}`)
		c, err := ParseCandidate(p)
		if err != nil {
			t.Fatalf("VAT %s: unexpected error %v", body, err)
		}
		if c.VATOnCost != want {
			t.Fatalf("VAT %s: expected %v, got %v", body, want, c.VATOnCost)
		}
	}
}

func TestParseCandidateRejectsMalformedFields(t *testing.T) {
	p := payload(t, `{"ASIN":"B08","Quantity":"ten","CostPrice":"abc","SalePrice":"0"}`)

	_, err := ParseCandidate(p)
	var invalid *InvalidCandidateError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidCandidateError, got %v", err)
	}

	for _, field := range []string{"ASIN", "Quantity", "CostPrice", "SalePrice"} {
		if _, ok := invalid.Fields[field]; !ok {
			t.Fatalf("expected %s to be reported, got %v", field, invalid.Fields)
		}
	}
	if invalid.Fields["SalePrice"] != "must be greater than 0" {
		t.Fatalf("unexpected SalePrice message %q", invalid.Fields["SalePrice"])
	}
}

func TestParseCandidateRejectsFractionalAndMissingQuantity(t *testing.T) {
	for _, body := range []string{
		`{"ASIN":"B08N5KWB9H","Quantity":"2.5","CostPrice":1,"SalePrice":2}`,
		`{"ASIN":"B08N5KWB9H","CostPrice":1,"SalePrice":2}`,
		`{"ASIN":"B08N5KWB9H","Quantity":-1,"CostPrice":1,"SalePrice":2}`,
	} {
		_, err := ParseCandidate(payload(t, body))
		var invalid *InvalidCandidateError
		if !errors.As(err, &invalid) {
			t.Fatalf("%s: expected InvalidCandidateError, got %v", body, err)
		}
		if _, ok := invalid.Fields["Quantity"]; !ok {
			t.Fatalf("%s: expected Quantity error, got %v", body, invalid.Fields)
		}
	}
}

func TestCandidateRecordStartsAsDraft(t *testing.T) {
	c, err := ParseCandidate(payload(t, `{"ASIN":"B09B1XKGLZ","Quantity":5,"CostPrice":"25.50","SalePrice":"49.99","VAT_on_Cost":"No","EstimatedSales":""}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := c.Record()
	if r.Status != StatusDraft {
		t.Fatalf("expected draft, got %s", r.Status)
	}
	if r.EstimatedSales != nil {
		t.Fatalf("blank estimated sales must be stored as null")
	}
}

func TestParseCandidateRejectsPricesTheColumnCannotHold(t *testing.T) {
	cases := []struct {
		cost, sale string
		field      string
	}{
		{`"15.999"`, `"29.99"`, "CostPrice"},
		{`"1e20"`, `"29.99"`, "CostPrice"},
		{`"15.99"`, `"0.004"`, "SalePrice"},
		{`"10000000000"`, `"29.99"`, "CostPrice"},
	}

	for _, tc := range cases {
		p := payload(t, `{"ASIN":"B08N5KWB9H","Quantity":1,"CostPrice":`+tc.cost+`,"SalePrice":`+tc.sale+`}`)
		_, err := ParseCandidate(p)
		var invalid *InvalidCandidateError
		if !errors.As(err, &invalid) {
			t.Fatalf("cost %s sale %s: expected InvalidCandidateError, got %v", tc.cost, tc.sale, err)
		}
		if _, ok := invalid.Fields[tc.field]; !ok {
			t.Fatalf("cost %s sale %s: expected %s to be reported, got %v", tc.cost, tc.sale, tc.field, invalid.Fields)
		}
	}
}

func TestParseCandidateAcceptsColumnLimits(t *testing.T) {
	p := payload(t, `{"ASIN":"B08N5KWB9H","Quantity":1,"CostPrice":"9999999999.99","SalePrice":"15.990"}`)
	c, err := ParseCandidate(p)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if c.SalePrice.String() != "15.99" {
		t.Fatalf("trailing zero should not count as a third decimal, got %s", c.SalePrice)
	}
}
