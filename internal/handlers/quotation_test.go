package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/gorm"

	"github.com/probill/billing-api/internal/models"
	"github.com/probill/billing-api/internal/services"
)

func TestQuotationCreateAndList(t *testing.T) {
	conn := setupTestDB(t)
	h := NewQuotationHandler(conn, services.NewDocumentService())

	payload := `{
		"quotationNumber": "QUO-001",
		"quotationDate": "2024-05-01",
		"dueDate": "2024-05-15",
		"billedBy": "Acme Corp",
		"billedTo": "Initech",
		"items": [{"name": "Audit", "quantity": 1, "rate": 500, "gstRate": 18}]
	}`
	w := httptest.NewRecorder()
	h.Create(w, jsonRequest(http.MethodPost, "/quotation/newQuotation", payload))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != "Quotation created successfully" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	quo, ok := body["quotation"].(map[string]any)
	if !ok {
		t.Fatalf("missing quotation in response: %#v", body)
	}
	if quo["quotationNumber"] != "QUO-001" || quo["quotationDate"] != "2024-05-01" {
		t.Fatalf("quotation wire keys wrong: %#v", quo)
	}
	if _, present := quo["invoiceNumber"]; present {
		t.Fatalf("invoice key leaked into quotation payload: %#v", quo)
	}
	if quo["subTotal"] != "590.00" {
		t.Fatalf("unexpected subTotal: %v", quo["subTotal"])
	}

	listW := httptest.NewRecorder()
	h.List(listW, httptest.NewRequest(http.MethodGet, "/quotation/allQuotations", nil))
	if listW.Code != http.StatusOK {
		t.Fatalf("list: expected 200 got %d", listW.Code)
	}
	var out []map[string]any
	if err := jsonUnmarshal(listW.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(out) != 1 || out[0]["quotationNumber"] != "QUO-001" {
		t.Fatalf("unexpected list: %#v", out)
	}
}

func TestQuotationCreateMissingFields(t *testing.T) {
	conn := setupTestDB(t)
	h := NewQuotationHandler(conn, services.NewDocumentService())

	w := httptest.NewRecorder()
	h.Create(w, jsonRequest(http.MethodPost, "/quotation/newQuotation", `{"items":[{"name":"Audit","quantity":1,"rate":500}]}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	errs, ok := decodeBody(t, w)["errors"].([]any)
	if !ok || len(errs) != 5 {
		t.Fatalf("expected 5 field errors, got %#v", errs)
	}
	first := errs[0].(map[string]any)
	if first["field"] != "quotationNumber" || first["message"] != "Quotation Number is required" {
		t.Fatalf("unexpected first error: %#v", first)
	}
}

func TestQuotationKindIsolation(t *testing.T) {
	conn := setupTestDB(t)
	h := NewQuotationHandler(conn, services.NewDocumentService())
	inv := seedInvoice(t, conn, "INV-X")

	// a quotation may reuse an invoice's number
	w := httptest.NewRecorder()
	h.Create(w, jsonRequest(http.MethodPost, "/quotation/newQuotation", `{"quotationNumber":"INV-X","quotationDate":"2024-05-01","dueDate":"2024-05-15","billedBy":"A","billedTo":"B","items":[{"name":"X","quantity":1,"rate":1}]}`))
	if w.Code != http.StatusCreated {
		t.Fatalf("cross-kind number reuse: expected 201 got %d body=%s", w.Code, w.Body.String())
	}

	// the invoice row is invisible through the quotation handler
	req := httptest.NewRequest(http.MethodGet, "/quotation/getQuotation/1", nil)
	req.SetPathValue("id", "1")
	w = httptest.NewRecorder()
	h.Get(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for invoice id %d got %d", inv.ID, w.Code)
	}
	if msg := decodeBody(t, w)["message"]; msg != "Quotation not found" {
		t.Fatalf("unexpected message: %v", msg)
	}

	listW := httptest.NewRecorder()
	h.List(listW, httptest.NewRequest(http.MethodGet, "/quotation/allQuotations", nil))
	var out []map[string]any
	if err := jsonUnmarshal(listW.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("quotation list should not see invoices: %#v", out)
	}
}

func TestQuotationUpdate(t *testing.T) {
	conn := setupTestDB(t)
	h := NewQuotationHandler(conn, services.NewDocumentService())
	seedQuotation(t, conn, "QUO-2")

	req := jsonRequest(http.MethodPut, "/quotation/updateQuotation/1", `{"billedTo":"Hooli","quotationDate":"2024-06-01"}`)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	h.Update(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["message"] != "Quotation updated successfully" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	quo := body["quotation"].(map[string]any)
	if quo["billedTo"] != "Hooli" || quo["quotationDate"] != "2024-06-01" || quo["quotationNumber"] != "QUO-2" {
		t.Fatalf("merge went wrong: %#v", quo)
	}
}

func TestQuotationDeleteNotFound(t *testing.T) {
	conn := setupTestDB(t)
	h := NewQuotationHandler(conn, services.NewDocumentService())

	req := httptest.NewRequest(http.MethodDelete, "/quotation/deleteQuotation/9", nil)
	req.SetPathValue("id", "9")
	w := httptest.NewRecorder()
	h.Delete(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
	if msg := decodeBody(t, w)["message"]; msg != "Quotation not found" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestQuotationShareWhatsapp(t *testing.T) {
	conn := setupTestDB(t)
	h := NewQuotationHandler(conn, services.NewDocumentService())

	w := httptest.NewRecorder()
	h.Share(w, jsonRequest(http.MethodPost, "/quotation/shareQuotation?source=whatsapp", `{"quotationId":3,"whatsappNumber":"9876543210"}`))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if msg := decodeBody(t, w)["message"]; msg != "Quotation sent successfully via - whatsapp" {
		t.Fatalf("unexpected message: %v", msg)
	}

	w = httptest.NewRecorder()
	h.Share(w, jsonRequest(http.MethodPost, "/quotation/shareQuotation?source=whatsapp", `{"quotationId":3}`))
	if msg := decodeBody(t, w)["message"]; msg != "No whatsappNumber provided for source=whatsapp" {
		t.Fatalf("unexpected message: %v", msg)
	}

	w = httptest.NewRecorder()
	h.Share(w, jsonRequest(http.MethodPost, "/quotation/shareQuotation?source=email", `{"quotationId":0,"emailId":"a@b.test"}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("zero id: expected 400 got %d", w.Code)
	}
}

func seedQuotation(t *testing.T, conn *gorm.DB, number string) *models.Document {
	t.Helper()
	doc := models.Document{
		Kind:         models.KindQuotation,
		Number:       number,
		DocumentDate: "2024-05-01",
		DueDate:      "2024-05-15",
		BilledBy:     "Acme Corp",
		BilledTo:     "Initech",
		Items:        []models.LineItem{{Name: "Seed", Quantity: 1, Rate: 10, TotalAmount: "10.00"}},
		SubTotal:     "10.00",
	}
	if err := conn.Create(&doc).Error; err != nil {
		t.Fatalf("seed quotation: %v", err)
	}
	return &doc
}
