package services

import (
	"strings"
	"testing"
)

func TestGeneratePriceListPDF(t *testing.T) {
	pdfBytes, err := GeneratePriceListPDF(Catalog)
	if err != nil {
		t.Fatalf("GeneratePriceListPDF error: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("expected non-empty PDF")
	}
	if !strings.HasPrefix(string(pdfBytes[:4]), "%PDF") {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestGeneratePriceListPDF_Empty(t *testing.T) {
	pdfBytes, err := GeneratePriceListPDF(nil)
	if err != nil {
		t.Fatalf("GeneratePriceListPDF error: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("expected non-empty PDF even with no entries")
	}
}

func TestCatalogRate(t *testing.T) {
	if len(Catalog) == 0 {
		t.Fatal("catalog should not be empty")
	}

	first := Catalog[0]
	rate, ok := CatalogRate(first.Name)
	if !ok {
		t.Fatalf("CatalogRate(%q) not found", first.Name)
	}
	if rate != first.Rate {
		t.Errorf("rate = %v, want %v", rate, first.Rate)
	}

	if _, ok := CatalogRate("No Such Product"); ok {
		t.Error("expected unknown product to report not found")
	}
}
