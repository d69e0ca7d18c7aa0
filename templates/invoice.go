package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"quotationbook/services"
)

// InvoicePage renders the full invoice preview page for a saved quotation.
func InvoicePage(id string, layout services.InvoiceLayout) templ.Component {
	return Page("Invoice "+layout.QuotationNo, InvoiceContent(id, layout))
}

// InvoiceContent renders the on-screen invoice. The markup mirrors the PDF
// layout so what the user previews matches what downloads.
func InvoiceContent(id string, layout services.InvoiceLayout) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="invoice" class="bg-white shadow-lg mx-auto" style="width:%dpx">
<div class="text-white text-center py-8" style="background-color:#1e3a5f">
<div class="text-3xl font-bold">%s</div>
<div class="text-xl">%s</div>
</div>
<div class="flex justify-between px-4 py-3 text-sm">
<div>
<div>Name: %s</div>
<div>Phone: %s</div>
</div>
<div class="text-right">
<div>No: %s</div>
<div>Date: %s</div>
</div>
</div>
`, layout.WidthPx,
			templ.EscapeString(layout.BusinessName), templ.EscapeString(layout.DocTitle),
			templ.EscapeString(layout.ClientName), templ.EscapeString(layout.PhoneNumber),
			templ.EscapeString(layout.QuotationNo), templ.EscapeString(layout.Date)); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<table class="w-full text-sm border-collapse">
<thead>
<tr class="bg-gray-100">
<th class="border px-2 py-1 w-[10%]">Sr</th>
<th class="border px-2 py-1 w-[50%] text-left">Product</th>
<th class="border px-2 py-1 w-[10%]">Qty</th>
<th class="border px-2 py-1 w-[15%]">Rate</th>
<th class="border px-2 py-1 w-[15%]">Amount</th>
</tr>
</thead>
<tbody>
`); err != nil {
			return err
		}
		for _, row := range layout.Rows {
			if _, err := fmt.Fprintf(w, `<tr>
<td class="border px-2 py-1 text-center">%s</td>
<td class="border px-2 py-1">%s</td>
<td class="border px-2 py-1 text-center">%s</td>
<td class="border px-2 py-1 text-right">%s</td>
<td class="border px-2 py-1 text-right">%s</td>
</tr>
`, templ.EscapeString(row.Sr), templ.EscapeString(row.ProductName),
				templ.EscapeString(row.Qty), templ.EscapeString(row.Rate),
				templ.EscapeString(row.Amount)); err != nil {
				return err
			}
		}
		for i := 0; i < layout.PaddingRows; i++ {
			if _, err := io.WriteString(w, `<tr>
<td class="border px-2 py-1">&nbsp;</td><td class="border"></td><td class="border"></td><td class="border"></td><td class="border"></td>
</tr>
`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</tbody>\n</table>\n"); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, `<div class="flex justify-between px-4 py-3 text-sm">
<div>
<div>Folder: %s</div>
<div>Prints: %s</div>
</div>
<div class="text-right">
<div class="font-bold">Total: %s</div>
<div>Advance: %s</div>
<div>Credit: %s</div>
</div>
</div>
`, templ.EscapeString(layout.FolderName), templ.EscapeString(layout.PrintNumber),
			templ.EscapeString(layout.TotalDisplay), templ.EscapeString(layout.AdvanceDisplay),
			templ.EscapeString(layout.CreditDisplay)); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w, `</div>
<div class="flex justify-center gap-2 my-4 print:hidden">
<a href="/quotations/%s/export.pdf" class="btn btn-primary btn-sm">Download PDF</a>
<a href="/quotations/%s/receipt.pdf" class="btn btn-outline btn-sm">Download Receipt</a>
<a href="/quotations/%s/edit" class="btn btn-ghost btn-sm">Back to Form</a>
</div>
`, templ.EscapeString(id), templ.EscapeString(id), templ.EscapeString(id))
		return err
	})
}
