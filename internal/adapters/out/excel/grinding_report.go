// Package excel renders grinding run data as downloadable xlsx workbooks.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"flourmill/internal/core/application/usecases/queries"
)

// GrindingReportWriter builds the xlsx export of one order's grinding run:
// a sheet of hourly reports, a sheet of lab tests and a summary sheet.
type GrindingReportWriter struct{}

// NewGrindingReportWriter creates a report writer.
func NewGrindingReportWriter() GrindingReportWriter {
	return GrindingReportWriter{}
}

// Write renders the workbook to w.
func (GrindingReportWriter) Write(
	w io.Writer,
	order queries.OrderResponse,
	summary queries.GrindingSummaryResponse,
) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	writeHeaders := func(sheet string, headers []string) error {
		for i, h := range headers {
			cell, cellErr := excelize.CoordinatesToCellName(i+1, 1)
			if cellErr != nil {
				return cellErr
			}
			if setErr := f.SetCellValue(sheet, cell, h); setErr != nil {
				return setErr
			}
			if styleErr := f.SetCellStyle(sheet, cell, cell, headerStyle); styleErr != nil {
				return styleErr
			}
		}
		return nil
	}

	writeRow := func(sheet string, row int, values []interface{}) error {
		for i, v := range values {
			cell, cellErr := excelize.CoordinatesToCellName(i+1, row)
			if cellErr != nil {
				return cellErr
			}
			if setErr := f.SetCellValue(sheet, cell, v); setErr != nil {
				return setErr
			}
		}
		return nil
	}

	reportSheet := "Hourly Reports"
	if err = f.SetSheetName("Sheet1", reportSheet); err != nil {
		return err
	}
	if err = writeHeaders(reportSheet, []string{
		"Report #",
		"Start",
		"End",
		"Maida (t)",
		"Suji (t)",
		"Chakki Ata (t)",
		"Tandoori (t)",
		"Main Total (t)",
		"Bran (t)",
		"Grand Total (t)",
		"Maida %",
		"Suji %",
		"Chakki Ata %",
		"Tandoori %",
		"Main Total %",
		"Bran %",
	}); err != nil {
		return err
	}

	for i, r := range summary.Reports {
		if err = writeRow(reportSheet, i+2, []interface{}{
			r.ReportNumber,
			r.StartTime,
			r.EndTime,
			r.Tons.Maida,
			r.Tons.Suji,
			r.Tons.ChakkiAta,
			r.Tons.Tandoori,
			r.Tons.MainTotal(),
			r.Tons.Bran,
			r.Tons.GrandTotal(),
			r.Percents.Maida,
			r.Percents.Suji,
			r.Percents.ChakkiAta,
			r.Percents.Tandoori,
			r.Percents.MainTotal,
			r.Percents.Bran,
		}); err != nil {
			return err
		}
	}

	labSheet := "Lab Tests"
	if _, err = f.NewSheet(labSheet); err != nil {
		return err
	}
	if err = writeHeaders(labSheet, []string{
		"Start", "End", "Product", "Moisture %", "Status",
	}); err != nil {
		return err
	}
	for i, t := range summary.LabTests {
		if err = writeRow(labSheet, i+2, []interface{}{
			t.StartTime, t.EndTime, t.ProductType, t.Moisture, t.Status,
		}); err != nil {
			return err
		}
	}

	summarySheet := "Summary"
	if _, err = f.NewSheet(summarySheet); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Order", order.OrderNumber},
		{"Product", order.ProductType},
		{"Order Quantity (t)", order.Quantity},
		{"Reports", summary.Summary.ReportCount},
		{"Maida (t)", summary.Summary.Tons.Maida},
		{"Suji (t)", summary.Summary.Tons.Suji},
		{"Chakki Ata (t)", summary.Summary.Tons.ChakkiAta},
		{"Tandoori (t)", summary.Summary.Tons.Tandoori},
		{"Bran (t)", summary.Summary.Tons.Bran},
		{"Grand Total (t)", summary.Summary.Tons.GrandTotal()},
		{"Avg Maida %", summary.Summary.Percents.Maida},
		{"Avg Suji %", summary.Summary.Percents.Suji},
		{"Avg Chakki Ata %", summary.Summary.Percents.ChakkiAta},
		{"Avg Tandoori %", summary.Summary.Percents.Tandoori},
		{"Avg Bran %", summary.Summary.Percents.Bran},
	}
	for i, row := range rows {
		if err = writeRow(summarySheet, i+1, row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// Filename returns the download name for an order's grinding report.
func (GrindingReportWriter) Filename(order queries.OrderResponse) string {
	return fmt.Sprintf("grinding-report-%s.xlsx", order.OrderNumber)
}
