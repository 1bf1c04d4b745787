package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/dbelyakov/finbook/internal/server/models"
)

// WriteXLSX renders a workbook with one line per entry and a trailing total
// line computed by the report service.
func WriteXLSX(w io.Writer, year int, rows []Row, report *models.ProfitReport) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := fmt.Sprintf("Year %d", year)
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if index, err := f.GetSheetIndex(sheet); err == nil {
		f.SetActiveSheet(index)
	}
	// drop the default sheet
	_ = f.DeleteSheet("Sheet1")

	write := func(col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(sheet, cell, v)
	}

	headers := []string{"Date", "Category", "Revenue", "Cost", "Profit"}
	for i, h := range headers {
		if err := write(i+1, 1, h); err != nil {
			return err
		}
	}

	rowIdx := 2
	for _, r := range rows {
		values := []any{
			time.Unix(r.Date, 0).UTC().Format("2006-01-02"),
			r.Category,
			r.Revenue,
			r.Cost,
			r.Profit,
		}
		for i, v := range values {
			if err := write(i+1, rowIdx, v); err != nil {
				return err
			}
		}
		rowIdx++
	}

	totals := []any{"Total", "", report.TotalRevenue, report.TotalCost, report.Profit}
	for i, v := range totals {
		if err := write(i+1, rowIdx, v); err != nil {
			return err
		}
	}

	return f.Write(w)
}
