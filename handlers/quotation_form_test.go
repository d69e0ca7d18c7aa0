package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"quotationbook/store"
	"quotationbook/testhelpers"
)

func TestHandleQuotationNew_RendersForm(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationNew(app)

	req := httptest.NewRequest(http.MethodGet, "/quotations/new", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		`name="client_name"`,
		`name="item_product"`,
		"catalog-products",
		"Save Quotation",
	)
}

func TestHandleQuotationCreate_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationCreate(app)

	req := newFormRequest("/quotations", validQuotationForm())
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	repo := store.NewQuotations(app)
	list, err := repo.List()
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("saved quotations = %d, want 1", len(list))
	}

	q := list[0]
	if q.Total != 250 {
		t.Errorf("Total = %v, want 250", q.Total)
	}
	if q.AdvanceAmount != "250" {
		t.Errorf("AdvanceAmount = %q, want \"250\" (defaulted from total)", q.AdvanceAmount)
	}
	if q.CreditAmount != "0" {
		t.Errorf("CreditAmount = %q, want \"0\"", q.CreditAmount)
	}
	if len(q.Items) != 2 || q.Items[0].Sr != 1 || q.Items[1].Sr != 2 {
		t.Errorf("items not renumbered: %+v", q.Items)
	}

	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/quotations/"+q.ID+"/edit")
}

func TestHandleQuotationCreate_ValidationErrors(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationCreate(app)

	form := validQuotationForm()
	form.Set("client_name", "")
	form.Set("phone_number", "12345")

	req := newFormRequest("/quotations", form)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Client name is required.",
		"Phone number must be 10 to 15 digits.",
	)

	repo := store.NewQuotations(app)
	list, _ := repo.List()
	if len(list) != 0 {
		t.Errorf("invalid form saved %d quotations", len(list))
	}
}

func TestHandleQuotationCreate_SkipsBlankRows(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationCreate(app)

	form := validQuotationForm()
	form["item_product"] = append(form["item_product"], "")
	form["item_qty"] = append(form["item_qty"], "")
	form["item_rate"] = append(form["item_rate"], "")

	req := newFormRequest("/quotations", form)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	repo := store.NewQuotations(app)
	list, _ := repo.List()
	if len(list) != 1 {
		t.Fatalf("saved quotations = %d, want 1", len(list))
	}
	if len(list[0].Items) != 2 {
		t.Errorf("items = %d, want blank row dropped", len(list[0].Items))
	}
}

func TestHandleQuotationEdit_RendersSavedValues(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	saved := testhelpers.CreateTestQuotation(t, app, "Asha Patel")
	handler := HandleQuotationEdit(app)

	req := httptest.NewRequest(http.MethodGet, "/quotations/"+saved.ID+"/edit", nil)
	req.SetPathValue("id", saved.ID)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Asha Patel",
		"Q-2026-001",
		"12x36 Album Page",
		"Update Quotation",
	)
}

func TestHandleQuotationEdit_MissingRedirects(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuotationEdit(app)

	req := httptest.NewRequest(http.MethodGet, "/quotations/nonexistent/edit", nil)
	req.SetPathValue("id", "nonexistent")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/quotations")
}

func TestHandleQuotationUpdate_PreservesDate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	saved := testhelpers.CreateTestQuotation(t, app, "Asha Patel")
	handler := HandleQuotationUpdate(app)

	form := validQuotationForm()
	form.Set("client_name", "Asha P.")
	form.Set("date", "01/01/1999")

	req := newFormRequest("/quotations/"+saved.ID, form)
	req.SetPathValue("id", saved.ID)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	repo := store.NewQuotations(app)
	got, err := repo.FindByID(saved.ID)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if got.ClientName != "Asha P." {
		t.Errorf("ClientName = %q", got.ClientName)
	}
	if got.Date != saved.Date {
		t.Errorf("Date = %q, want original %q preserved", got.Date, saved.Date)
	}
}

func TestValidateQuotation(t *testing.T) {
	base := store.Quotation{
		QuotationNo: "Q-2026-010",
		FolderName:  "Wedding Shoot",
		PrintNumber: "24",
		ClientName:  "Asha Patel",
		Items:       []store.LineItem{{Sr: 1, ProductName: "Passport Size Photos", Qty: 1, Rate: 50, Amount: 50}},
	}

	t.Run("valid", func(t *testing.T) {
		if errs := validateQuotation(base); len(errs) != 0 {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("missing header fields", func(t *testing.T) {
		q := base
		q.QuotationNo = ""
		q.FolderName = ""
		q.PrintNumber = ""
		errs := validateQuotation(q)
		for _, field := range []string{"quotation_no", "folder_name", "print_number"} {
			if errs[field] == "" {
				t.Errorf("expected %s error", field)
			}
		}
	})

	t.Run("missing client", func(t *testing.T) {
		q := base
		q.ClientName = ""
		if errs := validateQuotation(q); errs["client_name"] == "" {
			t.Error("expected client_name error")
		}
	})

	t.Run("short phone", func(t *testing.T) {
		q := base
		q.PhoneNumber = "12345"
		if errs := validateQuotation(q); errs["phone_number"] == "" {
			t.Error("expected phone_number error")
		}
	})

	t.Run("no items", func(t *testing.T) {
		q := base
		q.Items = nil
		if errs := validateQuotation(q); errs["items"] == "" {
			t.Error("expected items error")
		}
	})

	t.Run("unnamed item", func(t *testing.T) {
		q := base
		q.Items = []store.LineItem{{Sr: 1, Qty: 2, Rate: 50}}
		if errs := validateQuotation(q); errs["items"] == "" {
			t.Error("expected items error")
		}
	})
}
