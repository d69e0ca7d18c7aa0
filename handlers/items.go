package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationbook/services"
	"quotationbook/store"
)

// HandleItemAdd appends a blank line item row to a saved quotation and
// re-renders the form.
func HandleItemAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, ok := findQuotation(app, e)
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Quotation not found.")
		}

		q.Items = append(q.Items, store.LineItem{})
		services.RenumberItems(q.Items)

		repo := store.NewQuotations(app)
		if err := repo.Update(q.ID, q); err != nil {
			log.Printf("item_add: could not save quotation %s: %v", q.ID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return renderForm(e, buildFormData(q, nil))
	}
}

// HandleItemRemove deletes the line item at the {index} path value,
// recomputes the totals and re-renders the form. An out-of-range index
// leaves the quotation untouched.
func HandleItemRemove(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, ok := findQuotation(app, e)
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Quotation not found.")
		}

		index, err := strconv.Atoi(e.Request.PathValue("index"))
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid item index.")
		}

		q.Items = services.RemoveItem(q.Items, index)
		q.Total = services.CalcQuotationTotal(q.Items)

		repo := store.NewQuotations(app)
		if err := repo.Update(q.ID, q); err != nil {
			log.Printf("item_remove: could not save quotation %s: %v", q.ID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		return renderForm(e, buildFormData(q, nil))
	}
}
