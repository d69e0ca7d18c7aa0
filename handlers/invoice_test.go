package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quotationbook/testhelpers"
)

func TestHandleInvoiceView(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	saved := testhelpers.CreateTestQuotation(t, app, "Asha Patel")
	handler := HandleInvoiceView(app)

	req := httptest.NewRequest(http.MethodGet, "/quotations/"+saved.ID+"/invoice", nil)
	req.SetPathValue("id", saved.ID)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"OM Photography",
		"Asha Patel",
		"Q-2026-001",
		"12x36 Album Page",
		"₹100.00",
		"250.00", // advance shows because it is checked and positive
	)
}

func TestHandleInvoiceView_PadsToTenRows(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	saved := testhelpers.CreateTestQuotation(t, app, "Asha Patel")
	handler := HandleInvoiceView(app)

	req := httptest.NewRequest(http.MethodGet, "/quotations/"+saved.ID+"/invoice", nil)
	req.SetPathValue("id", saved.ID)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// 2 real rows plus 8 padding rows; padded cells render as &nbsp;.
	body := rec.Body.String()
	count := 0
	for i := 0; i+6 <= len(body); i++ {
		if body[i:i+6] == "&nbsp;" {
			count++
		}
	}
	if count != 8 {
		t.Errorf("padding rows = %d, want 8", count)
	}
}

func TestHandleInvoiceView_MissingRedirects(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleInvoiceView(app)

	req := httptest.NewRequest(http.MethodGet, "/quotations/nonexistent/invoice", nil)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/quotations" {
		t.Errorf("Location = %q, want /quotations", loc)
	}
}
