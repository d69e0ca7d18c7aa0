package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// newFormRequest builds a POST request carrying url-encoded form values.
func newFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// validQuotationForm returns form values that pass validation: two priced
// items, advance checked with no amount typed.
func validQuotationForm() url.Values {
	return url.Values{
		"quotation_no":    {"Q-2026-010"},
		"client_name":     {"Asha Patel"},
		"phone_number":    {"9876543210"},
		"folder_name":     {"Wedding Shoot"},
		"print_number":    {"24"},
		"date":            {"15/03/2026"},
		"item_product":    {"12x36 Album Page", "Passport Size Photos"},
		"item_qty":        {"2", "1"},
		"item_rate":       {"100", "50"},
		"advance_checked": {"on"},
		"advance_amount":  {""},
		"credit_amount":   {""},
	}
}
