package purchase

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const ExportSheet = "Purchases"

var exportHeader = []interface{}{
	"Created", "ASIN", "Quantity", "EK", "VK", "VAT on cost",
	"Margin %", "ROI %", "Profit", "Max EK", "Estimated sales", "Status",
}

// WriteWorkbook writes rows as an XLSX workbook with a single sheet.
func WriteWorkbook(w io.Writer, rows []ViewRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		estimated := ""
		if row.EstimatedSales != nil {
			estimated = *row.EstimatedSales
		}
		values := []interface{}{
			row.CreatedDate + " " + row.CreatedTime,
			row.ASIN,
			row.Quantity,
			row.CostPrice.Round(2).InexactFloat64(),
			row.SalePrice.Round(2).InexactFloat64(),
			row.VATOnCost,
			row.Metrics.MarginPercent.Round(1).InexactFloat64(),
			row.Metrics.ROIPercent.Round(1).InexactFloat64(),
			row.Metrics.Profit.Round(2).InexactFloat64(),
			row.Metrics.MaxBreakEvenCost.Round(2).InexactFloat64(),
			estimated,
			row.Badge.Label,
		}
		if err := f.SetSheetRow(ExportSheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SetPanes(ExportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	_, err := f.WriteTo(w)
	return err
}
