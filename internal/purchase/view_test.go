package purchase

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

func viewFixture(t *testing.T) []ViewRow {
	t.Helper()
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	records := ExampleRecords()
	for i := range records {
		records[i].ID = uuid.New()
		records[i].CreatedAt = time.Date(2025, 4, 23, 8, 5, 0, 0, time.UTC)
	}
	records = append(records, Record{
		ID:        uuid.New(),
		CreatedAt: time.Date(2025, 4, 22, 23, 30, 0, 0, time.UTC),
		ASIN:      "B0000TEST1",
		Quantity:  1,
		CostPrice: dec("1"),
		SalePrice: dec("2"),
		Status:    "archived",
	})

	return BuildView(records, ViewOptions{
		Location:     berlin,
		ImageBaseURL: "https://m.media-amazon.com/images/P",
		ThumbnailURL: func(id uuid.UUID) string { return "/api/v1/purchases/" + id.String() + "/thumbnail" },
	})
}

func TestBuildView(t *testing.T) {
	rows := viewFixture(t)

	first := rows[0]
	if first.CreatedDate != "23.04.2025" || first.CreatedTime != "10:05" {
		t.Fatalf("unexpected created split %s %s", first.CreatedDate, first.CreatedTime)
	}
	if first.ImageURL != "https://m.media-amazon.com/images/P/B08N5KWB9H.jpg" {
		t.Fatalf("unexpected image url %s", first.ImageURL)
	}
	if first.ThumbnailURL != "/api/v1/purchases/"+first.ID.String()+"/thumbnail" {
		t.Fatalf("unexpected thumbnail url %s", first.ThumbnailURL)
	}
	want := Display{
		Margin:    "36.6%",
		ROI:       "57.6%",
		Profit:    "109,62 €",
		MaxEK:     "25,20 €",
		CostPrice: "15,99 €",
		SalePrice: "29,99 €",
	}
	if first.Display != want {
		t.Fatalf("expected display %+v, got %+v", want, first.Display)
	}
	if first.Badge != (Badge{Label: "Drafted", Tone: "gray"}) {
		t.Fatalf("unexpected badge %+v", first.Badge)
	}

	last := rows[len(rows)-1]
	if last.CreatedDate != "23.04.2025" || last.CreatedTime != "01:30" {
		t.Fatalf("display time zone not applied: %s %s", last.CreatedDate, last.CreatedTime)
	}
	if last.Badge.Label != "archived" {
		t.Fatalf("unknown status must pass through, got %+v", last.Badge)
	}
}

func TestWriteWorkbook(t *testing.T) {
	rows := viewFixture(t)

	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, rows); err != nil {
		t.Fatalf("WriteWorkbook error: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader error: %v", err)
	}
	defer f.Close()

	sheetRows, err := f.GetRows(ExportSheet)
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}
	if len(sheetRows) != len(rows)+1 {
		t.Fatalf("expected %d rows including header, got %d", len(rows)+1, len(sheetRows))
	}
	if sheetRows[0][1] != "ASIN" || sheetRows[1][1] != "B08N5KWB9H" {
		t.Fatalf("unexpected sheet content %v / %v", sheetRows[0], sheetRows[1])
	}
	if sheetRows[1][11] != "Drafted" {
		t.Fatalf("expected status label in last column, got %v", sheetRows[1])
	}
}
