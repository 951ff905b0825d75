package purchase

import (
	"time"

	"github.com/google/uuid"
)

// Display holds the pre-formatted strings of the calculation and pricing
// columns.
type Display struct {
	Margin    string `json:"margin"`
	ROI       string `json:"roi"`
	Profit    string `json:"profit"`
	MaxEK     string `json:"max_ek"`
	CostPrice string `json:"cost_price"`
	SalePrice string `json:"sale_price"`
}

// ViewRow is a record enriched with everything the purchase table renders.
type ViewRow struct {
	Record
	CreatedDate  string  `json:"created_date"`
	CreatedTime  string  `json:"created_time"`
	ImageURL     string  `json:"image_url"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
	Metrics      Metrics `json:"metrics"`
	Display      Display `json:"display"`
	Badge        Badge   `json:"badge"`
}

type ViewOptions struct {
	Location     *time.Location
	ImageBaseURL string
	// ThumbnailURL builds the proxied thumbnail link; nil leaves it empty.
	ThumbnailURL func(id uuid.UUID) string
}

// ImageURL is the product image location on the image host.
func ImageURL(baseURL, asin string) string {
	return baseURL + "/" + asin + ".jpg"
}

func NewViewRow(r Record, opts ViewOptions) ViewRow {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	created := r.CreatedAt.In(loc)
	m := r.Metrics()

	row := ViewRow{
		Record:      r,
		CreatedDate: created.Format("02.01.2006"),
		CreatedTime: created.Format("15:04"),
		ImageURL:    ImageURL(opts.ImageBaseURL, r.ASIN),
		Metrics:     m,
		Display: Display{
			Margin:    FormatPercent(m.MarginPercent),
			ROI:       FormatPercent(m.ROIPercent),
			Profit:    FormatEuro(m.Profit),
			MaxEK:     FormatEuro(m.MaxBreakEvenCost),
			CostPrice: FormatEuro(r.CostPrice),
			SalePrice: FormatEuro(r.SalePrice),
		},
		Badge: r.Status.Badge(),
	}
	if opts.ThumbnailURL != nil {
		row.ThumbnailURL = opts.ThumbnailURL(r.ID)
	}
	return row
}

func BuildView(records []Record, opts ViewOptions) []ViewRow {
	rows := make([]ViewRow, len(records))
	for i, r := range records {
		rows[i] = NewViewRow(r, opts)
	}
	return rows
}

// RowIDs returns the ids of rows in order.
func RowIDs(rows []ViewRow) []uuid.UUID {
	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}
