package collections_test

import (
	"testing"

	"quotationbook/collections"
	"quotationbook/testhelpers"
)

func TestSetup_CreatesQuotationsCollection(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("quotations collection not found: %v", err)
	}

	for _, field := range []string{
		"quotation_no", "folder_name", "print_number", "client_name",
		"phone_number", "items", "total", "advance_enabled", "advance_amount",
		"credit_enabled", "credit_amount", "date", "created", "updated",
	} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("missing field %q", field)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// NewTestApp already ran Setup once; a second run must not fail or
	// duplicate the collection.
	testhelpers.CreateTestQuotation(t, app, "Before Second Setup")

	colBefore, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("quotations collection not found: %v", err)
	}

	collections.Setup(app)

	colAfter, err := app.FindCollectionByNameOrId("quotations")
	if err != nil {
		t.Fatalf("quotations collection not found after rerun: %v", err)
	}
	if colBefore.Id != colAfter.Id {
		t.Errorf("collection id changed: %s -> %s", colBefore.Id, colAfter.Id)
	}
}
