package handlers

import (
	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationbook/services"
	"quotationbook/templates"
)

// HandleInvoiceView renders the on-screen invoice preview for a saved
// quotation. A missing quotation sends the client back to the history page.
func HandleInvoiceView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, ok := findQuotation(app, e)
		if !ok {
			return redirect(e, "/quotations")
		}

		layout := services.BuildInvoiceLayout(q, services.ContextForm)

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.InvoiceContent(q.ID, layout)
		} else {
			component = templates.InvoicePage(q.ID, layout)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
