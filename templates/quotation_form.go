package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// FormItem is one editable line item row on the quotation form.
type FormItem struct {
	Sr          int
	ProductName string
	Qty         string
	Rate        string
	Amount      string
}

// CatalogOption is one product offered by the catalog datalist.
type CatalogOption struct {
	Name string
	Rate float64
}

// QuotationFormData carries everything the quotation form needs to render.
type QuotationFormData struct {
	ID          string
	QuotationNo string
	FolderName  string
	PrintNumber string
	ClientName  string
	PhoneNumber string
	Date        string

	Items        []FormItem
	TotalDisplay string

	AdvanceEnabled bool
	AdvanceAmount  string
	CreditEnabled  bool
	CreditAmount   string

	Catalog []CatalogOption
	Errors  map[string]string
}

// QuotationFormPage renders the full page around the form.
func QuotationFormPage(data QuotationFormData) templ.Component {
	title := "New Quotation"
	if data.ID != "" {
		title = "Edit Quotation " + data.QuotationNo
	}
	return Page(title, QuotationFormContent(data))
}

// QuotationFormContent renders the form fragment on its own, for HX-Request
// swaps.
func QuotationFormContent(data QuotationFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		action := "/quotations"
		if data.ID != "" {
			action = "/quotations/" + data.ID
		}
		if _, err := fmt.Fprintf(w, `<div id="quotation-form" class="card bg-base-100 shadow-md">
<form method="post" action="%s" hx-post="%s" hx-target="#content" class="card-body gap-4">
`, templ.EscapeString(action), templ.EscapeString(action)); err != nil {
			return err
		}

		if err := formHeaderFields(data).Render(ctx, w); err != nil {
			return err
		}
		if err := formItemsTable(data).Render(ctx, w); err != nil {
			return err
		}
		if err := formTotals(data).Render(ctx, w); err != nil {
			return err
		}
		if err := catalogDatalist(data.Catalog).Render(ctx, w); err != nil {
			return err
		}

		save := "Save Quotation"
		if data.ID != "" {
			save = "Update Quotation"
		}
		if _, err := fmt.Fprintf(w, `<div class="card-actions justify-end">
<button type="submit" class="btn btn-primary">%s</button>
`, templ.EscapeString(save)); err != nil {
			return err
		}
		if data.ID != "" {
			if _, err := fmt.Fprintf(w, `<a href="/quotations/%s/invoice" class="btn btn-ghost">View Invoice</a>
<a href="/quotations/%s/export.pdf" class="btn btn-ghost">Download PDF</a>
`, templ.EscapeString(data.ID), templ.EscapeString(data.ID)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</div>\n</form>\n</div>\n"); err != nil {
			return err
		}
		return nil
	})
}

func formHeaderFields(data QuotationFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fields := []struct {
			label, name, value, typ string
		}{
			{"Quotation No", "quotation_no", data.QuotationNo, "text"},
			{"Date", "date", data.Date, "text"},
			{"Client Name", "client_name", data.ClientName, "text"},
			{"Phone Number", "phone_number", data.PhoneNumber, "tel"},
			{"Folder Name", "folder_name", data.FolderName, "text"},
			{"No of Prints", "print_number", data.PrintNumber, "text"},
		}
		if _, err := io.WriteString(w, `<div class="grid grid-cols-2 gap-3">
`); err != nil {
			return err
		}
		for _, f := range fields {
			if _, err := fmt.Fprintf(w, `<label class="form-control">
<span class="label-text">%s</span>
<input type="%s" name="%s" value="%s" class="input input-bordered input-sm">
`, templ.EscapeString(f.label), f.typ, f.name, templ.EscapeString(f.value)); err != nil {
				return err
			}
			if msg, ok := data.Errors[f.name]; ok {
				if _, err := fmt.Fprintf(w, `<span class="label-text-alt text-error">%s</span>
`, templ.EscapeString(msg)); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</label>\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>\n")
		return err
	})
}

func formItemsTable(data QuotationFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<table class="table table-sm" id="items-table">
<thead>
<tr><th>Sr</th><th>Product</th><th>Qty</th><th>Rate</th><th>Amount</th><th></th></tr>
</thead>
<tbody>
`); err != nil {
			return err
		}
		for i, item := range data.Items {
			if _, err := fmt.Fprintf(w, `<tr>
<td>%d</td>
<td><input type="text" name="item_product" list="catalog-products" value="%s" class="input input-bordered input-xs w-full" onchange="fillRate(this)"></td>
<td><input type="text" name="item_qty" value="%s" class="input input-bordered input-xs w-16"></td>
<td><input type="text" name="item_rate" value="%s" class="input input-bordered input-xs w-24"></td>
<td class="text-right">%s</td>
`, item.Sr, templ.EscapeString(item.ProductName), templ.EscapeString(item.Qty), templ.EscapeString(item.Rate), templ.EscapeString(item.Amount)); err != nil {
				return err
			}
			if data.ID != "" {
				if _, err := fmt.Fprintf(w, `<td><button type="button" class="btn btn-xs btn-ghost" hx-delete="/quotations/%s/items/%d" hx-target="#content">✕</button></td>
`, templ.EscapeString(data.ID), i); err != nil {
					return err
				}
			} else {
				if _, err := io.WriteString(w, `<td><button type="button" class="btn btn-xs btn-ghost" onclick="removeRow(this)">✕</button></td>
`); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</tr>\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tbody>
</table>
`); err != nil {
			return err
		}
		if msg, ok := data.Errors["items"]; ok {
			if _, err := fmt.Fprintf(w, `<p class="text-error text-sm">%s</p>
`, templ.EscapeString(msg)); err != nil {
				return err
			}
		}
		if data.ID != "" {
			if _, err := fmt.Fprintf(w, `<button type="button" class="btn btn-sm btn-outline" hx-post="/quotations/%s/items" hx-target="#content">Add Item</button>
`, templ.EscapeString(data.ID)); err != nil {
				return err
			}
		} else {
			if _, err := io.WriteString(w, `<button type="button" class="btn btn-sm btn-outline" onclick="addRow()">Add Item</button>
<script>
function addRow() {
  var body = document.querySelector("#items-table tbody");
  var row = body.lastElementChild.cloneNode(true);
  row.querySelectorAll("input").forEach(function (i) { i.value = ""; });
  row.firstElementChild.textContent = body.children.length + 1;
  body.appendChild(row);
}
function removeRow(btn) {
  var body = document.querySelector("#items-table tbody");
  if (body.children.length > 1) { btn.closest("tr").remove(); }
  Array.from(body.children).forEach(function (tr, i) { tr.firstElementChild.textContent = i + 1; });
}
</script>
`); err != nil {
				return err
			}
		}
		return nil
	})
}

func formTotals(data QuotationFormData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		advanceChecked := ""
		if data.AdvanceEnabled {
			advanceChecked = " checked"
		}
		creditChecked := ""
		if data.CreditEnabled {
			creditChecked = " checked"
		}
		_, err := fmt.Fprintf(w, `<div class="flex flex-col items-end gap-2">
<div class="text-lg font-bold">Total: %s</div>
<label class="flex items-center gap-2">
<input type="checkbox" name="advance_checked" class="checkbox checkbox-sm"%s>
<span>Advance</span>
<input type="text" name="advance_amount" value="%s" class="input input-bordered input-xs w-24">
</label>
<label class="flex items-center gap-2">
<input type="checkbox" name="credit_checked" class="checkbox checkbox-sm"%s>
<span>Credit</span>
<input type="text" name="credit_amount" value="%s" class="input input-bordered input-xs w-24">
</label>
</div>
`, templ.EscapeString(data.TotalDisplay), advanceChecked, templ.EscapeString(data.AdvanceAmount), creditChecked, templ.EscapeString(data.CreditAmount))
		return err
	})
}

func catalogDatalist(options []CatalogOption) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<datalist id="catalog-products">
`); err != nil {
			return err
		}
		for _, opt := range options {
			if _, err := fmt.Fprintf(w, `<option value="%s" data-rate="%g"></option>
`, templ.EscapeString(opt.Name), opt.Rate); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</datalist>
<script>
function fillRate(input) {
  var opt = document.querySelector('#catalog-products option[value="' + CSS.escape(input.value) + '"]');
  if (opt) {
    input.closest("tr").querySelector('input[name="item_rate"]').value = opt.dataset.rate;
  }
}
</script>
`); err != nil {
			return err
		}
		return nil
	})
}
