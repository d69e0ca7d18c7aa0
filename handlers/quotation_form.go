package handlers

import (
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationbook/services"
	"quotationbook/store"
	"quotationbook/templates"
)

var phoneDigits = regexp.MustCompile(`^[0-9]{10,15}$`)

// HandleQuotationNew renders an empty quotation form.
func HandleQuotationNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := store.Quotation{
			Date:  time.Now().Format("02/01/2006"),
			Items: []store.LineItem{{Sr: 1}},
		}
		return renderForm(e, buildFormData(q, nil))
	}
}

// HandleQuotationCreate validates the submitted form and saves a new
// quotation.
func HandleQuotationCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, err := parseQuotationForm(e.Request)
		if err != nil {
			log.Printf("quotation_create: could not parse form: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not read the submitted form.")
		}

		if errs := validateQuotation(q); len(errs) > 0 {
			SetToast(e, "error", "Please fix the highlighted fields.")
			return renderForm(e, buildFormData(q, errs))
		}

		repo := store.NewQuotations(app)
		saved, err := repo.Create(q)
		if err != nil {
			log.Printf("quotation_create: could not save quotation: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quotation "+saved.QuotationNo+" saved.")
		return redirect(e, "/quotations/"+saved.ID+"/edit")
	}
}

// HandleQuotationEdit renders the form populated from a saved quotation.
func HandleQuotationEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, ok := findQuotation(app, e)
		if !ok {
			return redirect(e, "/quotations")
		}
		return renderForm(e, buildFormData(q, nil))
	}
}

// HandleQuotationUpdate validates the submitted form and overwrites a saved
// quotation.
func HandleQuotationUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		existing, ok := findQuotation(app, e)
		if !ok {
			return redirect(e, "/quotations")
		}

		q, err := parseQuotationForm(e.Request)
		if err != nil {
			log.Printf("quotation_update: could not parse form: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "Could not read the submitted form.")
		}
		q.ID = existing.ID
		q.Date = existing.Date

		if errs := validateQuotation(q); len(errs) > 0 {
			SetToast(e, "error", "Please fix the highlighted fields.")
			return renderForm(e, buildFormData(q, errs))
		}

		repo := store.NewQuotations(app)
		if err := repo.Update(q.ID, q); err != nil {
			log.Printf("quotation_update: could not save quotation %s: %v", q.ID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, "success", "Quotation "+q.QuotationNo+" updated.")
		return renderForm(e, buildFormData(q, nil))
	}
}

// findQuotation loads the quotation referenced by the {id} path value.
func findQuotation(app *pocketbase.PocketBase, e *core.RequestEvent) (store.Quotation, bool) {
	id := e.Request.PathValue("id")
	if id == "" {
		return store.Quotation{}, false
	}
	repo := store.NewQuotations(app)
	q, err := repo.FindByID(id)
	if err != nil {
		log.Printf("quotation: could not load %s: %v", id, err)
		return store.Quotation{}, false
	}
	return q, true
}

// parseQuotationForm maps the submitted form onto a quotation, recomputing
// every derived figure server side. Unparseable qty/rate values count as
// zero.
func parseQuotationForm(r *http.Request) (store.Quotation, error) {
	if err := r.ParseForm(); err != nil {
		return store.Quotation{}, err
	}

	products := r.Form["item_product"]
	qtys := r.Form["item_qty"]
	rates := r.Form["item_rate"]

	var items []store.LineItem
	for i, product := range products {
		product = strings.TrimSpace(product)
		var qty, rate float64
		if i < len(qtys) {
			qty, _ = strconv.ParseFloat(strings.TrimSpace(qtys[i]), 64)
		}
		if i < len(rates) {
			rate, _ = strconv.ParseFloat(strings.TrimSpace(rates[i]), 64)
		}
		if product == "" && qty == 0 && rate == 0 {
			continue
		}
		items = append(items, store.LineItem{
			ProductName: product,
			Qty:         qty,
			Rate:        rate,
			Amount:      services.CalcLineAmount(qty, rate),
		})
	}
	services.RenumberItems(items)
	total := services.CalcQuotationTotal(items)

	advanceEnabled := r.FormValue("advance_checked") != ""
	creditEnabled := r.FormValue("credit_checked") != ""

	return store.Quotation{
		QuotationNo:    strings.TrimSpace(r.FormValue("quotation_no")),
		FolderName:     strings.TrimSpace(r.FormValue("folder_name")),
		PrintNumber:    strings.TrimSpace(r.FormValue("print_number")),
		ClientName:     strings.TrimSpace(r.FormValue("client_name")),
		PhoneNumber:    strings.TrimSpace(r.FormValue("phone_number")),
		Date:           strings.TrimSpace(r.FormValue("date")),
		Items:          items,
		Total:          total,
		AdvanceEnabled: advanceEnabled,
		AdvanceAmount:  services.ReconcileAdjustment(advanceEnabled, r.FormValue("advance_amount"), total),
		CreditEnabled:  creditEnabled,
		CreditAmount:   services.ReconcileAdjustment(creditEnabled, r.FormValue("credit_amount"), total),
	}, nil
}

// validateQuotation returns field name to message for everything wrong with
// the quotation, or an empty map when it is saveable.
func validateQuotation(q store.Quotation) map[string]string {
	errs := map[string]string{}
	if q.QuotationNo == "" {
		errs["quotation_no"] = "Quotation number is required."
	}
	if q.FolderName == "" {
		errs["folder_name"] = "Folder name is required."
	}
	if q.PrintNumber == "" {
		errs["print_number"] = "Print number is required."
	}
	if q.ClientName == "" {
		errs["client_name"] = "Client name is required."
	}
	if q.PhoneNumber != "" && !phoneDigits.MatchString(q.PhoneNumber) {
		errs["phone_number"] = "Phone number must be 10 to 15 digits."
	}
	if len(q.Items) == 0 {
		errs["items"] = "Add at least one item."
	}
	for _, item := range q.Items {
		if item.ProductName == "" {
			errs["items"] = "Every item needs a product name."
			break
		}
	}
	return errs
}

// buildFormData projects a quotation onto the form template's shape.
func buildFormData(q store.Quotation, errs map[string]string) templates.QuotationFormData {
	items := make([]templates.FormItem, 0, len(q.Items))
	for _, item := range q.Items {
		fi := templates.FormItem{
			Sr:          item.Sr,
			ProductName: item.ProductName,
		}
		if item.Qty != 0 {
			fi.Qty = strconv.FormatFloat(item.Qty, 'f', -1, 64)
		}
		if item.Rate != 0 {
			fi.Rate = strconv.FormatFloat(item.Rate, 'f', -1, 64)
		}
		if item.Amount != 0 {
			fi.Amount = fmt.Sprintf("₹%.2f", item.Amount)
		}
		items = append(items, fi)
	}
	if len(items) == 0 {
		items = append(items, templates.FormItem{Sr: 1})
	}

	catalog := make([]templates.CatalogOption, 0, len(services.Catalog))
	for _, entry := range services.Catalog {
		catalog = append(catalog, templates.CatalogOption{Name: entry.Name, Rate: entry.Rate})
	}

	return templates.QuotationFormData{
		ID:             q.ID,
		QuotationNo:    q.QuotationNo,
		FolderName:     q.FolderName,
		PrintNumber:    q.PrintNumber,
		ClientName:     q.ClientName,
		PhoneNumber:    q.PhoneNumber,
		Date:           q.Date,
		Items:          items,
		TotalDisplay:   services.FormatINR(q.Total),
		AdvanceEnabled: q.AdvanceEnabled,
		AdvanceAmount:  q.AdvanceAmount,
		CreditEnabled:  q.CreditEnabled,
		CreditAmount:   q.CreditAmount,
		Catalog:        catalog,
		Errors:         errs,
	}
}

// renderForm writes the form as a fragment for HTMX requests or as a full
// page otherwise.
func renderForm(e *core.RequestEvent, data templates.QuotationFormData) error {
	var component templ.Component
	if e.Request.Header.Get("HX-Request") == "true" {
		component = templates.QuotationFormContent(data)
	} else {
		component = templates.QuotationFormPage(data)
	}
	return component.Render(e.Request.Context(), e.Response)
}

// redirect sends the client to path, via HX-Redirect for HTMX requests so
// the browser performs a real navigation.
func redirect(e *core.RequestEvent, path string) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		e.Response.Header().Set("HX-Redirect", path)
		return e.String(http.StatusOK, "")
	}
	return e.Redirect(http.StatusFound, path)
}
