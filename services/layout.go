package services

import (
	"fmt"
	"strconv"
	"strings"

	"quotationbook/store"
)

// LayoutContext selects which of the two fixed invoice formats to produce.
type LayoutContext int

const (
	// ContextForm is the interactive invoice shown and downloaded from the
	// quotation form: A4 output, body padded to 10 rows.
	ContextForm LayoutContext = iota
	// ContextReceipt is the standalone archival document: 4in x 6in output,
	// body padded to 8 rows, with the total also spelled out in words.
	ContextReceipt
)

const (
	formMinRows    = 10
	receiptMinRows = 8

	// Logical surface dimensions, in pixels before oversampling. These match
	// the fixed-width print container the layout was designed around.
	layoutWidthPx       = 700
	layoutBannerPx      = 190
	layoutClientBlockPx = 96
	layoutRowPx         = 52
	layoutFooterPx      = 170

	// Literal shown in place of a missing folder name or print number.
	blankFieldPlaceholder = "_________"
)

// InvoiceRow is one formatted body row of the invoice table.
type InvoiceRow struct {
	Sr          string
	ProductName string
	Qty         string
	Rate        string
	Amount      string
}

// InvoiceLayout is the complete, ready-to-render description of an invoice
// document. It is a pure projection of a quotation: same input, same layout.
type InvoiceLayout struct {
	Context      LayoutContext
	WidthPx      int
	BannerPx     int
	BusinessName string
	DocTitle     string

	ClientName  string
	PhoneNumber string
	QuotationNo string
	Date        string

	Rows        []InvoiceRow
	PaddingRows int

	FolderName  string
	PrintNumber string

	TotalDisplay   string
	AdvanceDisplay string
	CreditDisplay  string

	// Receipt-only extras: the grouped rupee figure and the amount in words.
	// TotalInWords stays empty when the total exceeds the words range.
	TotalGrouped string
	TotalInWords string
}

// BuildInvoiceLayout maps a quotation onto the fixed invoice format for the
// given context. No I/O, no mutation of q.
func BuildInvoiceLayout(q store.Quotation, ctx LayoutContext) InvoiceLayout {
	minRows := formMinRows
	if ctx == ContextReceipt {
		minRows = receiptMinRows
	}

	rows := make([]InvoiceRow, 0, len(q.Items))
	for _, item := range q.Items {
		rows = append(rows, InvoiceRow{
			Sr:          strconv.Itoa(item.Sr),
			ProductName: item.ProductName,
			Qty:         strconv.FormatFloat(item.Qty, 'f', -1, 64),
			Rate:        fmt.Sprintf("₹%.2f", item.Rate),
			Amount:      fmt.Sprintf("₹%.2f", item.Amount),
		})
	}

	padding := minRows - len(rows)
	if padding < 0 {
		padding = 0
	}

	layout := InvoiceLayout{
		Context:      ctx,
		WidthPx:      layoutWidthPx,
		BannerPx:     layoutBannerPx,
		BusinessName: "OM Photography",
		DocTitle:     "Quotation",

		ClientName:  q.ClientName,
		PhoneNumber: q.PhoneNumber,
		QuotationNo: q.QuotationNo,
		Date:        q.Date,

		Rows:        rows,
		PaddingRows: padding,

		FolderName:  orPlaceholder(q.FolderName),
		PrintNumber: orPlaceholder(q.PrintNumber),

		TotalDisplay:   fmt.Sprintf("%.2f", q.Total),
		AdvanceDisplay: adjustmentDisplay(q.AdvanceEnabled, q.AdvanceAmount),
		CreditDisplay:  adjustmentDisplay(q.CreditEnabled, q.CreditAmount),
	}

	if ctx == ContextReceipt {
		layout.TotalGrouped = "₹" + FormatIndianNumber(fmt.Sprintf("%.0f", q.Total)) + "/-"
		if words, err := NumberToWords(int64(q.Total)); err == nil {
			layout.TotalInWords = words
		}
	}

	return layout
}

// RowCount reports the total number of body rows, real plus padding.
func (l InvoiceLayout) RowCount() int {
	return len(l.Rows) + l.PaddingRows
}

// HeightPx reports the logical surface height implied by the layout.
func (l InvoiceLayout) HeightPx() int {
	// Header row of the table counts once on top of the body rows.
	return l.BannerPx + layoutClientBlockPx + (l.RowCount()+1)*layoutRowPx + layoutFooterPx
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return blankFieldPlaceholder
	}
	return s
}

// adjustmentDisplay renders the advance/credit footer value. The figure only
// shows when the flag is on and the stored string reads as a positive
// integer; everything else displays as a literal zero even though the stored
// value is kept as-is. This display/storage asymmetry is deliberate.
func adjustmentDisplay(enabled bool, amount string) string {
	if !enabled {
		return "0.00"
	}
	negative, digits := leadingInteger(amount)
	if negative || digits == "" || digits == "0" {
		return "0.00"
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		value, _ = strconv.ParseFloat(digits, 64)
	}
	return fmt.Sprintf("%.2f", value)
}
