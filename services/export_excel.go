package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"quotationbook/store"
)

// RegisterRow is one quotation summarized for the register export.
type RegisterRow struct {
	QuotationNo string
	Date        string
	ClientName  string
	PhoneNumber string
	ItemCount   int
	Total       float64
	Advance     string
	Credit      string
}

// BuildRegisterRows flattens saved quotations into register rows, in the
// order given.
func BuildRegisterRows(quotations []store.Quotation) []RegisterRow {
	rows := make([]RegisterRow, 0, len(quotations))
	for _, q := range quotations {
		rows = append(rows, RegisterRow{
			QuotationNo: q.QuotationNo,
			Date:        q.Date,
			ClientName:  q.ClientName,
			PhoneNumber: q.PhoneNumber,
			ItemCount:   len(q.Items),
			Total:       q.Total,
			Advance:     adjustmentDisplay(q.AdvanceEnabled, q.AdvanceAmount),
			Credit:      adjustmentDisplay(q.CreditEnabled, q.CreditAmount),
		})
	}
	return rows
}

// GenerateRegisterExcel creates an Excel workbook listing every saved
// quotation and returns the file contents as a byte slice.
func GenerateRegisterExcel(rows []RegisterRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Quotations"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// Column references (A through H).
	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	lastCol := columns[len(columns)-1] // "H"

	widths := []float64{16, 12, 30, 16, 8, 16, 14, 14}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 11,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header Rows (1-2) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "OM Photography - Quotation Register")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge count: %w", err)
	}
	f.SetCellValue(sheetName, "A2", fmt.Sprintf("Quotations: %d", len(rows)))
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	// ── Row 4: Column Headers ───────────────────────────────────────────

	headers := []string{"Quotation No", "Date", "Client", "Phone", "Items", "Total", "Advance", "Credit"}
	for i, h := range headers {
		cell := fmt.Sprintf("%s4", columns[i])
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName, "A4", lastCol+"4", headerStyle)

	// ── Data Rows (starting row 5) ──────────────────────────────────────

	row := 5
	var grandTotal float64
	for _, r := range rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.QuotationNo))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Date))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.ClientName))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.PhoneNumber))
		f.SetCellValue(sheetName, "E"+rowStr, r.ItemCount)
		f.SetCellValue(sheetName, "F"+rowStr, FormatINR(r.Total))
		f.SetCellValue(sheetName, "G"+rowStr, sanitizeExcelCell(r.Advance))
		f.SetCellValue(sheetName, "H"+rowStr, sanitizeExcelCell(r.Credit))

		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, bodyStyle)

		grandTotal += r.Total
		row++
	}

	// ── Summary Row ─────────────────────────────────────────────────────

	row++
	summaryRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "E"+summaryRow, "Grand Total:")
	f.SetCellStyle(sheetName, "E"+summaryRow, "E"+summaryRow, summaryLabelStyle)
	f.SetCellValue(sheetName, "F"+summaryRow, FormatINR(grandTotal))
	f.SetCellStyle(sheetName, "F"+summaryRow, "F"+summaryRow, summaryValueStyle)

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
