// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"

	"quotationbook/collections"
	"quotationbook/store"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestQuotation saves a quotation with two priced items for the given
// client and returns it with ID and defaults filled in.
func CreateTestQuotation(t *testing.T, app *pocketbase.PocketBase, clientName string) store.Quotation {
	t.Helper()

	q := store.Quotation{
		QuotationNo: "Q-2026-001",
		ClientName:  clientName,
		PhoneNumber: "9876543210",
		FolderName:  "Wedding Shoot",
		PrintNumber: "24",
		Items: []store.LineItem{
			{Sr: 1, ProductName: "12x36 Album Page", Qty: 2, Rate: 100, Amount: 200},
			{Sr: 2, ProductName: "Passport Size Photos", Qty: 1, Rate: 50, Amount: 50},
		},
		Total:          250,
		AdvanceEnabled: true,
		AdvanceAmount:  "250",
		CreditAmount:   "0",
	}

	repo := store.NewQuotations(app)
	saved, err := repo.Create(q)
	if err != nil {
		t.Fatalf("failed to save test quotation: %v", err)
	}

	return saved
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
