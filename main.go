package main

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"quotationbook/collections"
	"quotationbook/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Quotation form ───────────────────────────────────────
		se.Router.GET("/quotations/new", handlers.HandleQuotationNew(app))
		se.Router.POST("/quotations", handlers.HandleQuotationCreate(app))
		se.Router.GET("/quotations/{id}/edit", handlers.HandleQuotationEdit(app))
		se.Router.POST("/quotations/{id}", handlers.HandleQuotationUpdate(app))

		// ── Line items on a saved quotation ──────────────────────
		se.Router.POST("/quotations/{id}/items", handlers.HandleItemAdd(app))
		se.Router.DELETE("/quotations/{id}/items/{index}", handlers.HandleItemRemove(app))

		// ── History ──────────────────────────────────────────────
		se.Router.GET("/quotations", handlers.HandleQuotationList(app))
		se.Router.DELETE("/quotations/{id}", handlers.HandleQuotationDelete(app))

		// ── Invoice preview and exports ──────────────────────────
		se.Router.GET("/quotations/{id}/invoice", handlers.HandleInvoiceView(app))
		se.Router.GET("/quotations/{id}/export.pdf", handlers.HandleInvoiceExportPDF(app))
		se.Router.GET("/quotations/{id}/receipt.pdf", handlers.HandleReceiptExportPDF(app))
		se.Router.GET("/quotations/register.xlsx", handlers.HandleRegisterExcel(app))

		// ── Catalog ──────────────────────────────────────────────
		se.Router.GET("/catalog/rate", handlers.HandleCatalogRate(app))
		se.Router.GET("/catalog/pricelist.pdf", handlers.HandleCatalogPriceList(app))

		// Redirect home to a fresh quotation form
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quotations/new")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
