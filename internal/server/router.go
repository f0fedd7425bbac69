package server

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/probill/billing-api/internal/auth"
	"github.com/probill/billing-api/internal/handlers"
	"github.com/probill/billing-api/internal/httpx"
	"github.com/probill/billing-api/internal/services"
)

// New constructs the root http.Handler with all routes and middlewares
// applied. The store client is passed in explicitly; handlers hold it for
// the life of the process.
func New(db *gorm.DB) http.Handler {
	mux := http.NewServeMux()

	// Liveness probe, unauthenticated.
	//revive:disable-next-line:unused-parameter simple handler intentionally ignores *http.Request
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	protected := func(h http.HandlerFunc) http.Handler { return auth.RequireAuth(h) }

	ah := handlers.NewAuthHandler()
	mux.HandleFunc("POST /login", ah.Login)

	ch := handlers.NewClientHandler(db)
	mux.Handle("GET /allclients", protected(ch.List))
	mux.Handle("POST /newclient", protected(ch.Create))
	mux.Handle("PUT /updateclient/{clientId}", protected(ch.Update))
	mux.Handle("DELETE /deleteclient/{id}", protected(ch.Delete))

	ph := handlers.NewProductHandler(db)
	mux.Handle("GET /inventory/allProducts", protected(ph.List))
	mux.Handle("POST /inventory/newProduct", protected(ph.Create))
	mux.Handle("PUT /inventory/updateProduct/{id}", protected(ph.Update))
	mux.Handle("DELETE /inventory/deleteProduct/{id}", protected(ph.Delete))

	svc := services.NewDocumentService()

	ih := handlers.NewInvoiceHandler(db, svc)
	mux.Handle("GET /invoice/allInvoices", protected(ih.List))
	mux.Handle("GET /invoice/getInvoice/{id}", protected(ih.Get))
	mux.Handle("POST /invoice/newInvoice", protected(ih.Create))
	mux.Handle("PUT /invoice/updateInvoice/{id}", protected(ih.Update))
	mux.Handle("DELETE /invoice/deleteInvoice/{id}", protected(ih.Delete))
	mux.Handle("POST /invoice/shareInvoice", protected(ih.Share))

	qh := handlers.NewQuotationHandler(db, svc)
	mux.Handle("GET /quotation/allQuotations", protected(qh.List))
	mux.Handle("GET /quotation/getQuotation/{id}", protected(qh.Get))
	mux.Handle("POST /quotation/newQuotation", protected(qh.Create))
	mux.Handle("PUT /quotation/updateQuotation/{id}", protected(qh.Update))
	mux.Handle("DELETE /quotation/deleteQuotation/{id}", protected(qh.Delete))
	mux.Handle("POST /quotation/shareQuotation", protected(qh.Share))

	return Recover(mux)
}
