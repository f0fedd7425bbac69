package handlers

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/probill/billing-api/internal/models"
	"github.com/probill/billing-api/internal/services"
)

// NewQuotationHandler binds the shared document handler to the quotation
// wire format.
func NewQuotationHandler(db *gorm.DB, svc *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		DB:           db,
		Svc:          svc,
		kind:         models.KindQuotation,
		label:        "Quotation",
		decodeCreate: decodeQuotationCreate,
		decodePatch:  decodeQuotationPatch,
		decodeShare:  decodeQuotationShare,
	}
}

func decodeQuotationCreate(r *http.Request) (*documentCreate, error) {
	var req struct {
		QuotationNumber string          `json:"quotationNumber"`
		QuotationDate   string          `json:"quotationDate"`
		DueDate         string          `json:"dueDate"`
		BilledBy        string          `json:"billedBy"`
		BilledTo        string          `json:"billedTo"`
		Currency        string          `json:"currency"`
		TaxType         string          `json:"taxType"`
		GSTType         string          `json:"gstType"`
		Items           []itemRequest   `json:"items"`
		SubTotal        json.RawMessage `json:"subTotal"` // ignored; recomputed
		Logo            string          `json:"logo"`
		Signature       string          `json:"signature"`
	}
	if err := decodeStrict(r, &req); err != nil {
		return nil, err
	}
	return &documentCreate{
		Number:    req.QuotationNumber,
		Date:      req.QuotationDate,
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

func decodeQuotationPatch(r *http.Request) (*documentPatch, error) {
	var req struct {
		QuotationNumber *string         `json:"quotationNumber"`
		QuotationDate   *string         `json:"quotationDate"`
		DueDate         *string         `json:"dueDate"`
		BilledBy        *string         `json:"billedBy"`
		BilledTo        *string         `json:"billedTo"`
		Currency        *string         `json:"currency"`
		TaxType         *string         `json:"taxType"`
		GSTType         *string         `json:"gstType"`
		Items           []itemRequest   `json:"items"`
		SubTotal        json.RawMessage `json:"subTotal"` // ignored; recomputed
		Logo            *string         `json:"logo"`
		Signature       *string         `json:"signature"`
	}
	if err := decodeStrict(r, &req); err != nil {
		return nil, err
	}
	return &documentPatch{
		Number:    req.QuotationNumber,
		Date:      req.QuotationDate,
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

func decodeQuotationShare(r *http.Request) (*shareRequest, error) {
	var req struct {
		QuotationID    *uint   `json:"quotationId"`
		EmailID        *string `json:"emailId"`
		WhatsappNumber *string `json:"whatsappNumber"`
	}
	if err := decodeStrict(r, &req); err != nil {
		return nil, err
	}
	return &shareRequest{
		DocumentID:     req.QuotationID,
		EmailID:        req.EmailID,
		WhatsappNumber: req.WhatsappNumber,
	}, nil
}
