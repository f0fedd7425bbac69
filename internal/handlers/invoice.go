package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/probill/billing-api/internal/models"
	"github.com/probill/billing-api/internal/services"
)

// NewInvoiceHandler binds the shared document handler to the invoice wire
// format.
func NewInvoiceHandler(db *gorm.DB, svc *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		DB:           db,
		Svc:          svc,
		kind:         models.KindInvoice,
		label:        "Invoice",
		decodeCreate: decodeInvoiceCreate,
		decodePatch:  decodeInvoicePatch,
		decodeShare:  decodeInvoiceShare,
	}
}

func decodeInvoiceCreate(r *http.Request) (*documentCreate, error) {
	var req struct {
		InvoiceNumber string          `json:"invoiceNumber"`
		InvoiceDate   string          `json:"invoiceDate"`
		DueDate       string          `json:"dueDate"`
		BilledBy      string          `json:"billedBy"`
		BilledTo      string          `json:"billedTo"`
		Currency      string          `json:"currency"`
		TaxType       string          `json:"taxType"`
		GSTType       string          `json:"gstType"`
		Items         []itemRequest   `json:"items"`
		SubTotal      json.RawMessage `json:"subTotal"` // ignored; recomputed
		Logo          string          `json:"logo"`
		Signature     string          `json:"signature"`
	}
	if err := decodeStrict(r, &req); err != nil {
		return nil, err
	}
	return &documentCreate{
		Number:    req.InvoiceNumber,
		Date:      req.InvoiceDate,
		DueDate:   req.DueDate,
		BilledBy:  req.BilledBy,
		BilledTo:  req.BilledTo,
		Currency:  req.Currency,
		TaxType:   req.TaxType,
		GSTType:   req.GSTType,
		Items:     req.Items,
		Logo:      req.Logo,
		Signature: req.Signature,
	}, nil
}

func decodeInvoicePatch(r *http.Request) (*documentPatch, error) {
	var req struct {
		InvoiceNumber *string         `json:"invoiceNumber"`
		InvoiceDate   *string         `json:"invoiceDate"`
		DueDate       *string         `json:"dueDate"`
		BilledBy      *string         `json:"billedBy"`
		BilledTo      *string         `json:"billedTo"`
		Currency      *string         `json:"currency"`
		TaxType       *string         `json:"taxType"`
		GSTType       *string         `json:"gstType"`
		Items         []itemRequest   `json:"items"`
		SubTotal      json.RawMessage `json:"subTotal"` // ignored; recomputed
		Logo          *string         `json:"logo"`
		Signature     *string         `json:"signature"`
	}
	if err := decodeStrict(r, &req); err != nil {
		return nil, err
	}
	return &documentPatch{
		Number:    req.InvoiceNumber,
		Date:      req.InvoiceDate,
		DueDate:   req.DueDate,
		BilledBy:  req.BilledBy,
		BilledTo:  req.BilledTo,
		Currency:  req.Currency,
		TaxType:   req.TaxType,
		GSTType:   req.GSTType,
		Items:     req.Items,
		Logo:      req.Logo,
		Signature: req.Signature,
	}, nil
}

func decodeInvoiceShare(r *http.Request) (*shareRequest, error) {
	var req struct {
		InvoiceID      *uint   `json:"invoiceId"`
		EmailID        *string `json:"emailId"`
		WhatsappNumber *string `json:"whatsappNumber"`
	}
	if err := decodeStrict(r, &req); err != nil {
		return nil, err
	}
	return &shareRequest{
		DocumentID:     req.InvoiceID,
		EmailID:        req.EmailID,
		WhatsappNumber: req.WhatsappNumber,
	}, nil
}
