package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"golang.org/x/sync/singleflight"

	"quotationbook/services"
	"quotationbook/store"
)

// Oversampling factor for rasterized invoice exports.
const exportScale = 3

// exportGroup collapses concurrent PDF exports of the same quotation and
// format into a single render.
var exportGroup singleflight.Group

// HandleInvoiceExportPDF returns a handler that renders a quotation's
// invoice as a paginated A4 PDF download.
func HandleInvoiceExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return exportPDFHandler(app, services.ContextForm, services.A4Page(), "invoice")
}

// HandleReceiptExportPDF returns a handler that renders a quotation's
// archival receipt as a 4in x 6in PDF download.
func HandleReceiptExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return exportPDFHandler(app, services.ContextReceipt, services.ReceiptPage(), "receipt")
}

func exportPDFHandler(app *pocketbase.PocketBase, layoutCtx services.LayoutContext, page services.PageGeometry, kind string) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q, ok := findQuotation(app, e)
		if !ok {
			return redirect(e, "/quotations")
		}

		result, err, _ := exportGroup.Do(q.ID+"/"+kind, func() (any, error) {
			return buildInvoicePDF(q, layoutCtx, page)
		})
		if err != nil {
			log.Printf("export_pdf: failed to generate %s for %s: %v", kind, q.ID, err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate PDF file.")
		}
		pdfBytes := result.([]byte)

		filename := services.InvoiceFilename(q.QuotationNo, time.Now())
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// buildInvoicePDF runs the full export pipeline: layout, raster, paginate.
func buildInvoicePDF(q store.Quotation, layoutCtx services.LayoutContext, page services.PageGeometry) ([]byte, error) {
	layout := services.BuildInvoiceLayout(q, layoutCtx)
	img, err := services.RenderInvoice(layout, exportScale)
	if err != nil {
		return nil, fmt.Errorf("render invoice: %w", err)
	}
	return services.ExportPDF(img, page)
}

// HandleRegisterExcel returns a handler that downloads the full quotation
// register as an Excel workbook.
func HandleRegisterExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		repo := store.NewQuotations(app)
		quotations, err := repo.List()
		if err != nil {
			log.Printf("register_excel: could not query quotations: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		xlsxBytes, err := services.GenerateRegisterExcel(services.BuildRegisterRows(quotations))
		if err != nil {
			log.Printf("register_excel: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate Excel file.")
		}

		filename := fmt.Sprintf("quotation-register-%d.xlsx", time.Now().Year())
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleCatalogPriceList returns a handler that downloads the product
// catalog as a PDF price list.
func HandleCatalogPriceList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		pdfBytes, err := services.GeneratePriceListPDF(services.Catalog)
		if err != nil {
			log.Printf("pricelist_pdf: failed to generate: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to generate PDF file.")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", `attachment; filename="price-list.pdf"`)
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleCatalogRate returns the catalog rate for the ?product= query, as
// plain text. Unknown products answer "0" so the form can clear the field.
func HandleCatalogRate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		product := e.Request.URL.Query().Get("product")
		rate, ok := services.CatalogRate(product)
		if !ok {
			return e.String(http.StatusOK, "0")
		}
		return e.String(http.StatusOK, strconv.FormatFloat(rate, 'f', -1, 64))
	}
}
