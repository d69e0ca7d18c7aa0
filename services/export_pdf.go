package services

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"regexp"
	"time"

	"github.com/phpdave11/gofpdf"
)

// PageGeometry is a physical page size in millimetres.
type PageGeometry struct {
	WidthMM  float64
	HeightMM float64
}

// A4Page is the geometry used for form invoice downloads.
func A4Page() PageGeometry {
	return PageGeometry{WidthMM: 210, HeightMM: 297}
}

// ReceiptPage is the 4in x 6in geometry used for archival receipts.
func ReceiptPage() PageGeometry {
	return PageGeometry{WidthMM: 101.6, HeightMM: 152.4}
}

// PaginateImage computes the vertical offsets, in millimetres, at which the
// rendered invoice image is placed on successive pages so that each page
// shows the next slice. Offsets are zero or negative; one offset per page.
// The image is scaled to the page width, so only the height drives paging.
func PaginateImage(imgWidthPx, imgHeightPx int, page PageGeometry) []float64 {
	if imgWidthPx <= 0 || imgHeightPx <= 0 {
		return nil
	}
	scaledHeight := float64(imgHeightPx) * page.WidthMM / float64(imgWidthPx)

	var offsets []float64
	offset := 0.0
	remaining := scaledHeight
	for {
		offsets = append(offsets, offset)
		remaining -= page.HeightMM
		if remaining < 0 {
			break
		}
		offset -= page.HeightMM
	}
	return offsets
}

// ExportPDF encodes the rendered invoice image into a paginated PDF at the
// given geometry. The image is scaled to full page width and sliced across
// however many pages its height requires.
func ExportPDF(img image.Image, page PageGeometry) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("export pdf: nil image")
	}
	bounds := img.Bounds()
	imgW, imgH := bounds.Dx(), bounds.Dy()
	if imgW <= 0 || imgH <= 0 {
		return nil, fmt.Errorf("export pdf: empty image %dx%d", imgW, imgH)
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, img); err != nil {
		return nil, fmt.Errorf("export pdf: encode image: %w", err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: page.WidthMM, Ht: page.HeightMM},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	opts := gofpdf.ImageOptions{ImageType: "PNG", AllowNegativePosition: true}
	pdf.RegisterImageOptionsReader("invoice", opts, &encoded)

	scaledHeight := float64(imgH) * page.WidthMM / float64(imgW)
	for _, offset := range PaginateImage(imgW, imgH, page) {
		pdf.AddPage()
		pdf.ImageOptions("invoice", 0, offset, page.WidthMM, scaledHeight, false, opts, 0, "")
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("export pdf: write document: %w", err)
	}
	return out.Bytes(), nil
}

var filenameUnsafe = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// InvoiceFilename builds the download filename for a quotation's PDF. The
// quotation number is reduced to filename-safe characters; if nothing
// survives, a time-derived stand-in keeps the name unique enough.
func InvoiceFilename(quotationNo string, now time.Time) string {
	safe := filenameUnsafe.ReplaceAllString(quotationNo, "")
	if safe == "" {
		safe = fmt.Sprintf("Q%06d", now.UnixMilli()%1_000_000)
	}
	return "quotation-" + safe + ".pdf"
}
