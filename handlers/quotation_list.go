package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationbook/services"
	"quotationbook/store"
	"quotationbook/templates"
)

// HandleQuotationList renders the history of saved quotations, oldest first.
func HandleQuotationList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		repo := store.NewQuotations(app)
		quotations, err := repo.List()
		if err != nil {
			log.Printf("quotation_list: could not query quotations: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		items := make([]templates.QuotationListItem, 0, len(quotations))
		for _, q := range quotations {
			items = append(items, templates.QuotationListItem{
				ID:           q.ID,
				QuotationNo:  q.QuotationNo,
				ClientName:   q.ClientName,
				Date:         q.Date,
				ItemCount:    len(q.Items),
				TotalDisplay: services.FormatINR(q.Total),
			})
		}

		data := templates.QuotationListData{
			Items:      items,
			TotalCount: len(quotations),
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.QuotationListContent(data)
		} else {
			component = templates.QuotationListPage(data)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleQuotationDelete removes a saved quotation and re-renders the history.
func HandleQuotationDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing quotation ID.")
		}

		repo := store.NewQuotations(app)
		if err := repo.Delete(id); err != nil {
			log.Printf("quotation_delete: could not delete %s: %v", id, err)
			return ErrorToast(e, http.StatusNotFound, "Quotation not found.")
		}

		SetToast(e, "success", "Quotation deleted.")
		return HandleQuotationList(app)(e)
	}
}
