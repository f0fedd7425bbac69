package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/probill/billing-api/internal/httpx"
	"github.com/probill/billing-api/internal/models"
	"github.com/probill/billing-api/internal/services"
	"github.com/probill/billing-api/internal/validation"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// DocumentHandler serves one document family (invoices or quotations).
// Both families share schema, validation, totals computation, and
// persistence; only the wire-level JSON key names differ, supplied by the
// kind-specific decode functions in invoice.go and quotation.go.
type DocumentHandler struct {
	DB  *gorm.DB
	Svc *services.DocumentService

	kind  string // models.KindInvoice or models.KindQuotation
	label string // "Invoice" or "Quotation"

	decodeCreate func(*http.Request) (*documentCreate, error)
	decodePatch  func(*http.Request) (*documentPatch, error)
	decodeShare  func(*http.Request) (*shareRequest, error)
}

// itemRequest is one incoming line item. Quantity and rate must decode as
// numbers or the request fails; a caller-supplied totalAmount is accepted
// but discarded, the value is always recomputed.
type itemRequest struct {
	Name        string          `json:"name"`
	Quantity    *int            `json:"quantity"`
	Rate        *float64        `json:"rate"`
	GSTRate     *float64        `json:"gstRate"`
	TotalAmount json.RawMessage `json:"totalAmount"`
}

type documentCreate struct {
	Number    string
	Date      string
	DueDate   string
	BilledBy  string
	BilledTo  string
	Currency  string
	TaxType   string
	GSTType   string
	Items     []itemRequest
	Logo      string
	Signature string
}

type documentPatch struct {
	Number    *string
	Date      *string
	DueDate   *string
	BilledBy  *string
	BilledTo  *string
	Currency  *string
	TaxType   *string
	GSTType   *string
	Items     []itemRequest // nil when absent
	Logo      *string
	Signature *string
}

func (p *documentPatch) empty() bool {
	return p.Number == nil && p.Date == nil && p.DueDate == nil &&
		p.BilledBy == nil && p.BilledTo == nil && p.Currency == nil &&
		p.TaxType == nil && p.GSTType == nil && p.Items == nil &&
		p.Logo == nil && p.Signature == nil
}

type shareRequest struct {
	DocumentID     *uint
	EmailID        *string
	WhatsappNumber *string
}

func (h *DocumentHandler) numberField() string { return h.kind + "Number" }
func (h *DocumentHandler) dateField() string   { return h.kind + "Date" }
func (h *DocumentHandler) idField() string     { return h.kind + "Id" }

// render maps a stored document onto its kind-specific wire shape.
func (h *DocumentHandler) render(d *models.Document) map[string]any {
	if d.Items == nil {
		d.Items = []models.LineItem{}
	}
	m := map[string]any{
		"id":            d.ID,
		h.numberField(): d.Number,
		h.dateField():   d.DocumentDate,
		"dueDate":       d.DueDate,
		"billedBy":      d.BilledBy,
		"billedTo":      d.BilledTo,
		"items":         d.Items,
		"subTotal":      d.SubTotal,
		"createdAt":     d.CreatedAt,
		"updatedAt":     d.UpdatedAt,
	}
	if d.Currency != "" {
		m["currency"] = d.Currency
	}
	if d.TaxType != "" {
		m["taxType"] = d.TaxType
	}
	if d.GSTType != "" {
		m["gstType"] = d.GSTType
	}
	if d.Logo != "" {
		m["logo"] = d.Logo
	}
	if d.Signature != "" {
		m["signature"] = d.Signature
	}
	return m
}

func validateItems(errs *validation.Errors, items []itemRequest) {
	for i, it := range items {
		field := func(name string) string { return fmt.Sprintf("items[%d].%s", i, name) }
		validation.Required(errs, field("name"), it.Name, "Item name is required")
		if it.Quantity == nil {
			errs.Add(field("quantity"), "Quantity must be a number")
		}
		if it.Rate == nil {
			errs.Add(field("rate"), "Rate must be a number")
		}
	}
}

func buildLineItems(items []itemRequest) []models.LineItem {
	out := make([]models.LineItem, len(items))
	for i, it := range items {
		li := models.LineItem{Name: strings.TrimSpace(it.Name)}
		if it.Quantity != nil {
			li.Quantity = *it.Quantity
		}
		if it.Rate != nil {
			li.Rate = *it.Rate
		}
		if it.GSTRate != nil {
			li.GSTRate = *it.GSTRate
		}
		out[i] = li
	}
	return out
}

// List: GET /<kind>/all<Kind>s
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	var docs []models.Document
	if err := h.DB.Preload("Items").Where("kind = ?", h.kind).Order("id").Find(&docs).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	out := make([]map[string]any, len(docs))
	for i := range docs {
		out[i] = h.render(&docs[i])
	}
	httpx.JSON(w, http.StatusOK, out)
}

// Get: GET /<kind>/get<Kind>/{id}
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		httpx.ValidationError(w, validation.Errors{{Field: "id", Message: "Invalid " + h.label + " ID"}})
		return
	}
	var doc models.Document
	if err := h.DB.Preload("Items").Where("kind = ?", h.kind).First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.Error(w, http.StatusNotFound, h.label+" not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	httpx.JSON(w, http.StatusOK, h.render(&doc))
}

// Create: POST /<kind>/new<Kind>. Item totals and the subtotal are always
// recomputed from the validated items, never trusted from the caller.
func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeCreate(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	var errs validation.Errors
	validation.Required(&errs, h.numberField(), req.Number, h.label+" Number is required")
	validation.Required(&errs, h.dateField(), req.Date, h.label+" Date is required")
	validation.Required(&errs, "dueDate", req.DueDate, "Due Date is required")
	validation.Required(&errs, "billedBy", req.BilledBy, "Billed By is required")
	validation.Required(&errs, "billedTo", req.BilledTo, "Billed To is required")
	if len(req.Items) == 0 {
		errs.Add("items", "At least one item is required")
	}
	validateItems(&errs, req.Items)
	if !errs.Empty() {
		httpx.ValidationError(w, errs)
		return
	}
	items, subTotal := h.Svc.ComputeTotals(buildLineItems(req.Items))
	doc := models.Document{
		Kind:         h.kind,
		Number:       strings.TrimSpace(req.Number),
		DocumentDate: req.Date,
		DueDate:      req.DueDate,
		BilledBy:     req.BilledBy,
		BilledTo:     req.BilledTo,
		Currency:     req.Currency,
		TaxType:      req.TaxType,
		GSTType:      req.GSTType,
		Items:        items,
		SubTotal:     subTotal,
		Logo:         req.Logo,
		Signature:    req.Signature,
	}
	if err := h.DB.Create(&doc).Error; err != nil {
		if isDuplicateErr(err) {
			httpx.Error(w, http.StatusConflict, h.label+" Number already exists")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"message": h.label + " created successfully",
		h.kind:    h.render(&doc),
	})
}

// Update: PUT /<kind>/update<Kind>/{id}. Partial merge over an enumerated
// patch; a supplied item list replaces the stored one wholesale and forces
// subtotal recomputation.
func (h *DocumentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		httpx.ValidationError(w, validation.Errors{{Field: "id", Message: "Invalid " + h.label + " ID"}})
		return
	}
	req, err := h.decodePatch(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.empty() {
		httpx.Error(w, http.StatusBadRequest, "No data provided for update")
		return
	}
	var errs validation.Errors
	if req.Number != nil {
		validation.Required(&errs, h.numberField(), *req.Number, h.label+" Number cannot be empty")
	}
	if req.Date != nil {
		validation.Required(&errs, h.dateField(), *req.Date, h.label+" Date is required")
	}
	if req.DueDate != nil {
		validation.Required(&errs, "dueDate", *req.DueDate, "Due Date is required")
	}
	if req.BilledBy != nil {
		validation.Required(&errs, "billedBy", *req.BilledBy, "Billed By is required")
	}
	if req.BilledTo != nil {
		validation.Required(&errs, "billedTo", *req.BilledTo, "Billed To is required")
	}
	if req.Items != nil {
		if len(req.Items) == 0 {
			errs.Add("items", "At least one item is required")
		}
		validateItems(&errs, req.Items)
	}
	if !errs.Empty() {
		httpx.ValidationError(w, errs)
		return
	}
	var doc models.Document
	if err := h.DB.Preload("Items").Where("kind = ?", h.kind).First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.Error(w, http.StatusNotFound, h.label+" not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if req.Number != nil {
		doc.Number = strings.TrimSpace(*req.Number)
	}
	if req.Date != nil {
		doc.DocumentDate = *req.Date
	}
	if req.DueDate != nil {
		doc.DueDate = *req.DueDate
	}
	if req.BilledBy != nil {
		doc.BilledBy = *req.BilledBy
	}
	if req.BilledTo != nil {
		doc.BilledTo = *req.BilledTo
	}
	if req.Currency != nil {
		doc.Currency = *req.Currency
	}
	if req.TaxType != nil {
		doc.TaxType = *req.TaxType
	}
	if req.GSTType != nil {
		doc.GSTType = *req.GSTType
	}
	if req.Logo != nil {
		doc.Logo = *req.Logo
	}
	if req.Signature != nil {
		doc.Signature = *req.Signature
	}
	var newItems []models.LineItem
	var subTotal string
	if req.Items != nil {
		newItems, subTotal = h.Svc.ComputeTotals(buildLineItems(req.Items))
		doc.SubTotal = subTotal
	}
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if req.Items != nil {
			if err := tx.Where("document_id = ?", doc.ID).Delete(&models.LineItem{}).Error; err != nil {
				return err
			}
			for i := range newItems {
				newItems[i].DocumentID = doc.ID
			}
			if err := tx.Create(&newItems).Error; err != nil {
				return err
			}
			doc.Items = newItems
		}
		return tx.Omit(clause.Associations).Save(&doc).Error
	})
	if err != nil {
		if isDuplicateErr(err) {
			httpx.Error(w, http.StatusConflict, h.label+" Number already exists")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"message": h.label + " updated successfully",
		h.kind:    h.render(&doc),
	})
}

// Delete: DELETE /<kind>/delete<Kind>/{id}
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		httpx.ValidationError(w, validation.Errors{{Field: "id", Message: "Invalid " + h.label + " ID"}})
		return
	}
	var doc models.Document
	if err := h.DB.Where("kind = ?", h.kind).First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.Error(w, http.StatusNotFound, h.label+" not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", doc.ID).Delete(&models.LineItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&doc).Error
	})
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": h.label + " deleted successfully"})
}

// Share: POST /<kind>/share<Kind>?source=email|whatsapp. The contract is
// validation plus a channel-specific confirmation; delivery itself is a
// deliberate no-op.
func (h *DocumentHandler) Share(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	req, err := h.decodeShare(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	var errs validation.Errors
	if source != "email" && source != "whatsapp" {
		errs.Add("source", "Source must be 'email' or 'whatsapp'")
	}
	if req.DocumentID == nil {
		errs.Add(h.idField(), h.label+" Id is required")
	} else if *req.DocumentID == 0 {
		errs.Add(h.idField(), "Invalid "+h.label+" ID")
	}
	if req.EmailID != nil {
		validation.Required(&errs, "emailId", *req.EmailID, "Email Id is required")
		validation.Email(&errs, "emailId", *req.EmailID, "Invalid email id")
	}
	if req.WhatsappNumber != nil {
		validation.Required(&errs, "whatsappNumber", *req.WhatsappNumber, "Whatsapp Number is required")
		validation.Matches(&errs, "whatsappNumber", *req.WhatsappNumber, phonePattern, "Phone number must be a 10-digit number")
	}
	if !errs.Empty() {
		httpx.ValidationError(w, errs)
		return
	}
	switch source {
	case "email":
		if req.EmailID == nil {
			httpx.JSON(w, http.StatusOK, map[string]string{"message": "No emailId provided for source=email"})
			return
		}
	case "whatsapp":
		if req.WhatsappNumber == nil {
			httpx.JSON(w, http.StatusOK, map[string]string{"message": "No whatsappNumber provided for source=whatsapp"})
			return
		}
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": h.label + " sent successfully via - " + source})
}
