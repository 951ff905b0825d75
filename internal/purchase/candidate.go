package purchase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// IngestPayload is the loose body accepted by the ingestion endpoint.
// Numeric fields may arrive as JSON numbers or numeric strings.
type IngestPayload struct {
	ASIN           json.RawMessage `json:"ASIN"`
	Quantity       json.RawMessage `json:"Quantity"`
	CostPrice      json.RawMessage `json:"CostPrice"`
	SalePrice      json.RawMessage `json:"SalePrice"`
	VATOnCost      json.RawMessage `json:"VAT_on_Cost"`
	EstimatedSales json.RawMessage `json:"EstimatedSales"`
}

// Candidate is a coerced, validated ingestion payload.
type Candidate struct {
	ASIN           string          `json:"asin" validate:"required,len=10,alphanum"`
	Quantity       int32           `json:"quantity" validate:"gt=0"`
	CostPrice      decimal.Decimal `json:"cost_price" validate:"gte=0"`
	SalePrice      decimal.Decimal `json:"sale_price" validate:"gt=0"`
	VATOnCost      bool            `json:"vat_on_cost"`
	EstimatedSales *string         `json:"estimated_sales"`
}

// Record turns the candidate into a new draft record.
func (c Candidate) Record() Record {
	return Record{
		ASIN:           c.ASIN,
		Quantity:       c.Quantity,
		CostPrice:      c.CostPrice,
		SalePrice:      c.SalePrice,
		VATOnCost:      c.VATOnCost,
		EstimatedSales: c.EstimatedSales,
		Status:         StatusDraft,
	}
}

// InvalidCandidateError lists every field that failed coercion or
// validation, keyed by payload field name.
type InvalidCandidateError struct {
	Fields map[string]string
}

func (e *InvalidCandidateError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid candidate: " + strings.Join(parts, "; ")
}

// Prices are stored as numeric(12,2): at most two decimal places and ten
// integer digits.
const (
	PriceScale         = 2
	PriceIntegerDigits = 10
)

var maxPrice = decimal.New(1, PriceIntegerDigits)

// fitsPriceColumn reports whether d is stored without rounding or overflow.
func fitsPriceColumn(d decimal.Decimal) bool {
	return d.Equal(d.Round(PriceScale)) && d.Abs().LessThan(maxPrice)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		c := sl.Current().Interface().(Candidate)
		if !fitsPriceColumn(c.CostPrice) {
			sl.ReportError(c.CostPrice, "CostPrice", "CostPrice", "price", "")
		}
		if !fitsPriceColumn(c.SalePrice) {
			sl.ReportError(c.SalePrice, "SalePrice", "SalePrice", "price", "")
		}
	}, Candidate{})
	return v
}

var ruleMessages = map[string]string{
	"required": "is required",
	"len":      "must be 10 characters",
	"alphanum": "must contain only letters and digits",
	"gt":       "must be greater than 0",
	"gte":      "must not be negative",
	"price":    fmt.Sprintf("must have at most %d decimal places and %d integer digits", PriceScale, PriceIntegerDigits),
}

// ParseCandidate coerces and validates an ingestion payload.
func ParseCandidate(p IngestPayload) (Candidate, error) {
	var c Candidate
	problems := map[string]string{}

	if text, ok := rawText(p.ASIN); ok {
		c.ASIN = strings.ToUpper(strings.TrimSpace(text))
	}

	if text, ok := rawText(p.Quantity); !ok {
		problems["Quantity"] = "is required"
	} else if qty, err := parseQuantity(text); err != nil {
		problems["Quantity"] = err.Error()
	} else {
		c.Quantity = qty
	}

	if text, ok := rawText(p.CostPrice); !ok {
		problems["CostPrice"] = "is required"
	} else if d, err := parseAmount(text); err != nil {
		problems["CostPrice"] = err.Error()
	} else {
		c.CostPrice = d
	}

	if text, ok := rawText(p.SalePrice); !ok {
		problems["SalePrice"] = "is required"
	} else if d, err := parseAmount(text); err != nil {
		problems["SalePrice"] = err.Error()
	} else {
		c.SalePrice = d
	}

	c.VATOnCost = parseVATFlag(p.VATOnCost)

	if text, ok := rawText(p.EstimatedSales); ok {
		c.EstimatedSales = strPtr(strings.TrimSpace(text))
	}

	if err := collectViolations(c, problems); err != nil {
		return Candidate{}, err
	}

	if len(problems) > 0 {
		return Candidate{}, &InvalidCandidateError{Fields: problems}
	}
	return c, nil
}

// Validate checks a candidate that was built without ParseCandidate, e.g.
// one received over the service boundary.
func (c Candidate) Validate() error {
	problems := map[string]string{}
	if err := collectViolations(c, problems); err != nil {
		return err
	}
	if len(problems) > 0 {
		return &InvalidCandidateError{Fields: problems}
	}
	return nil
}

// collectViolations adds a message to problems for every field that fails
// its validate tag and has no earlier coercion problem.
func collectViolations(c Candidate, problems map[string]string) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		name := fe.Field()
		if _, already := problems[name]; already {
			continue
		}
		msg, ok := ruleMessages[fe.Tag()]
		if !ok {
			msg = "is invalid"
		}
		problems[name] = msg
	}
	return nil
}

// rawText returns the textual content of a JSON scalar. Strings are
// unquoted; numbers and booleans keep their literal form. Absent and null
// values report false.
func rawText(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	}
	if raw[0] == '{' || raw[0] == '[' {
		return "", false
	}
	return string(raw), true
}

// parseAmount accepts "15.99", " 15.99 " and the German "15,99".
func parseAmount(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	if strings.Count(text, ",") == 1 && !strings.Contains(text, ".") {
		text = strings.Replace(text, ",", ".", 1)
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%q is not a number", text)
	}
	return d, nil
}

func parseQuantity(text string) (int32, error) {
	d, err := parseAmount(text)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%q is not a whole number", strings.TrimSpace(text))
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) || d.LessThan(decimal.NewFromInt(math.MinInt32)) {
		return 0, fmt.Errorf("%q is out of range", strings.TrimSpace(text))
	}
	return int32(d.IntPart()), nil
}

func parseVATFlag(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("true")) {
		return true
	}
	text, ok := rawText(raw)
	return ok && text == "Yes"
}
