package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// QuotationListItem is one saved quotation summarized for the history table.
type QuotationListItem struct {
	ID           string
	QuotationNo  string
	ClientName   string
	Date         string
	ItemCount    int
	TotalDisplay string
}

// QuotationListData feeds the history page.
type QuotationListData struct {
	Items      []QuotationListItem
	TotalCount int
}

// QuotationListPage renders the full history page.
func QuotationListPage(data QuotationListData) templ.Component {
	return Page("Quotation History", QuotationListContent(data))
}

// QuotationListContent renders the history table fragment.
func QuotationListContent(data QuotationListData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="quotation-list" class="card bg-base-100 shadow-md">
<div class="card-body">
<h2 class="card-title">Quotation History <span class="badge badge-ghost">%d</span></h2>
`, data.TotalCount); err != nil {
			return err
		}
		if len(data.Items) == 0 {
			if _, err := io.WriteString(w, `<p class="text-base-content/60">No quotations saved yet.</p>
`); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<table class="table table-sm">
<thead>
<tr><th>No</th><th>Client</th><th>Date</th><th>Items</th><th>Total</th><th></th></tr>
</thead>
<tbody>
`); err != nil {
				return err
			}
			for _, item := range data.Items {
				if _, err := fmt.Fprintf(w, `<tr>
<td><a href="/quotations/%s/edit" class="link">%s</a></td>
<td>%s</td>
<td>%s</td>
<td>%d</td>
<td class="text-right">%s</td>
<td class="flex gap-1">
<a href="/quotations/%s/invoice" class="btn btn-xs btn-ghost">Invoice</a>
<a href="/quotations/%s/receipt.pdf" class="btn btn-xs btn-ghost">Receipt</a>
<button class="btn btn-xs btn-error btn-outline" hx-delete="/quotations/%s" hx-target="#content" hx-confirm="Delete quotation %s?">Delete</button>
</td>
</tr>
`, templ.EscapeString(item.ID), templ.EscapeString(item.QuotationNo),
					templ.EscapeString(item.ClientName), templ.EscapeString(item.Date),
					item.ItemCount, templ.EscapeString(item.TotalDisplay),
					templ.EscapeString(item.ID), templ.EscapeString(item.ID),
					templ.EscapeString(item.ID), templ.EscapeString(item.QuotationNo)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</tbody>\n</table>\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>\n</div>\n")
		return err
	})
}
