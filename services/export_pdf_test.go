package services

import (
	"image"
	"strings"
	"testing"
	"time"
)

func TestPaginateImage(t *testing.T) {
	a4 := A4Page()
	// A 700px wide image scales to 210mm; height scales by the same 0.3
	// factor, so page counts follow scaledHeight / 297.
	tests := []struct {
		name    string
		widthPx int
		height  int
		pages   int
	}{
		{"fits one page", 700, 900, 1},
		{"exactly one page", 700, 990, 2}, // boundary lands at zero remaining
		{"two and a bit", 700, 1500, 2},
		{"2.4 page heights", 700, 2376, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offsets := PaginateImage(tt.widthPx, tt.height, a4)
			if len(offsets) != tt.pages {
				t.Fatalf("pages = %d, want %d (offsets %v)", len(offsets), tt.pages, offsets)
			}
			for i, off := range offsets {
				want := -a4.HeightMM * float64(i)
				if off != want {
					t.Errorf("offsets[%d] = %v, want %v", i, off, want)
				}
			}
		})
	}
}

func TestPaginateImage_Empty(t *testing.T) {
	if offsets := PaginateImage(0, 100, A4Page()); offsets != nil {
		t.Errorf("expected nil offsets for zero width, got %v", offsets)
	}
	if offsets := PaginateImage(100, 0, A4Page()); offsets != nil {
		t.Errorf("expected nil offsets for zero height, got %v", offsets)
	}
}

func TestExportPDF_ProducesDocument(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 700, 2376))

	pdfBytes, err := ExportPDF(img, A4Page())
	if err != nil {
		t.Fatalf("ExportPDF error: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("expected non-empty PDF")
	}
	if !strings.HasPrefix(string(pdfBytes[:4]), "%PDF") {
		t.Errorf("output does not start with %%PDF header")
	}
}

func TestExportPDF_ReceiptGeometry(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 700, 1200))

	pdfBytes, err := ExportPDF(img, ReceiptPage())
	if err != nil {
		t.Fatalf("ExportPDF error: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("expected non-empty PDF")
	}
}

func TestExportPDF_NilImage(t *testing.T) {
	if _, err := ExportPDF(nil, A4Page()); err == nil {
		t.Error("expected error for nil image")
	}
}

func TestExportPDF_EmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if _, err := ExportPDF(img, A4Page()); err == nil {
		t.Error("expected error for empty image")
	}
}

func TestInvoiceFilename(t *testing.T) {
	now := time.UnixMilli(1766000123456)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Q-2026-001", "quotation-Q-2026-001.pdf"},
		{"strips unsafe", "Q 2026/001#", "quotation-Q2026001.pdf"},
		{"keeps underscores", "Q_001", "quotation-Q_001.pdf"},
		{"unicode stripped", "कोटेशन", "quotation-Q123456.pdf"},
		{"empty falls back", "", "quotation-Q123456.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InvoiceFilename(tt.input, now)
			if got != tt.want {
				t.Errorf("InvoiceFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
