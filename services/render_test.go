package services

import (
	"image/color"
	"testing"
)

func TestRenderInvoice_Dimensions(t *testing.T) {
	layout := BuildInvoiceLayout(sampleQuotation(), ContextForm)

	img, err := RenderInvoice(layout, 3)
	if err != nil {
		t.Fatalf("RenderInvoice error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != layout.WidthPx*3 {
		t.Errorf("width = %d, want %d", bounds.Dx(), layout.WidthPx*3)
	}
	if bounds.Dy() != layout.HeightPx()*3 {
		t.Errorf("height = %d, want %d", bounds.Dy(), layout.HeightPx()*3)
	}
}

func TestRenderInvoice_ScaleOne(t *testing.T) {
	layout := BuildInvoiceLayout(sampleQuotation(), ContextReceipt)

	img, err := RenderInvoice(layout, 1)
	if err != nil {
		t.Fatalf("RenderInvoice error: %v", err)
	}
	if img.Bounds().Dx() != layout.WidthPx {
		t.Errorf("width = %d, want %d", img.Bounds().Dx(), layout.WidthPx)
	}
}

func TestRenderInvoice_InvalidScale(t *testing.T) {
	layout := BuildInvoiceLayout(sampleQuotation(), ContextForm)
	if _, err := RenderInvoice(layout, 0); err == nil {
		t.Error("expected error for scale 0")
	}
}

func TestRenderInvoice_PaintsBanner(t *testing.T) {
	layout := BuildInvoiceLayout(sampleQuotation(), ContextForm)

	img, err := RenderInvoice(layout, 1)
	if err != nil {
		t.Fatalf("RenderInvoice error: %v", err)
	}

	// A corner pixel inside the banner band carries the banner color, and a
	// pixel below the table carries the paper color.
	if got := img.RGBAAt(2, 2); got != bannerBlue {
		t.Errorf("banner pixel = %v, want %v", got, bannerBlue)
	}
	bottom := img.Bounds().Dy() - 2
	if got := img.RGBAAt(2, bottom); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("footer pixel = %v, want white", got)
	}
}

func TestLayoutHeightGrowsWithRows(t *testing.T) {
	q := sampleQuotation()
	short := BuildInvoiceLayout(q, ContextForm)

	for i := len(q.Items); i < 20; i++ {
		q.Items = append(q.Items, sampleQuotation().Items[0])
	}
	tall := BuildInvoiceLayout(q, ContextForm)

	if tall.HeightPx() <= short.HeightPx() {
		t.Errorf("20-row layout height %d not above 10-row height %d", tall.HeightPx(), short.HeightPx())
	}
}
