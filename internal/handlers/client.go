package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/probill/billing-api/internal/httpx"
	"github.com/probill/billing-api/internal/models"
	"github.com/probill/billing-api/internal/validation"
)

type ClientHandler struct {
	DB *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler { return &ClientHandler{DB: db} }

// List: GET /allclients
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	var clients []models.Client
	if err := h.DB.Order("id").Find(&clients).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	httpx.JSON(w, http.StatusOK, clients)
}

// Create: POST /newclient
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BusinessName   string `json:"businessName"`
		ClientIndustry string `json:"clientIndustry"`
		Country        string `json:"country"`
		City           string `json:"city"`
		BusinessGSTIN  string `json:"businessGSTIN"`
		BusinessPAN    string `json:"businessPAN"`
	}
	if err := decodeStrict(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	var errs validation.Errors
	validation.Required(&errs, "businessName", req.BusinessName, "Business Name is required")
	validation.Required(&errs, "clientIndustry", req.ClientIndustry, "Client Industry is required")
	validation.Required(&errs, "country", req.Country, "Country is required")
	validation.ExactLength(&errs, "businessGSTIN", req.BusinessGSTIN, 15, "GSTIN must be 15 characters")
	validation.ExactLength(&errs, "businessPAN", req.BusinessPAN, 10, "PAN must be 10 characters")
	if !errs.Empty() {
		httpx.ValidationError(w, errs)
		return
	}
	client := models.Client{
		BusinessName:   req.BusinessName,
		ClientIndustry: req.ClientIndustry,
		Country:        req.Country,
		City:           req.City,
		BusinessGSTIN:  req.BusinessGSTIN,
		BusinessPAN:    req.BusinessPAN,
	}
	if err := h.DB.Create(&client).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"message": "Client created successfully", "client": client})
}

// Update: PUT /updateclient/{clientId}. Partial merge over an enumerated
// patch; absent fields are left untouched.
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("clientId"))
	if !ok {
		httpx.ValidationError(w, validation.Errors{{Field: "clientId", Message: "Invalid Client ID"}})
		return
	}
	var req struct {
		BusinessName   *string `json:"businessName"`
		ClientIndustry *string `json:"clientIndustry"`
		Country        *string `json:"country"`
		City           *string `json:"city"`
		BusinessGSTIN  *string `json:"businessGSTIN"`
		BusinessPAN    *string `json:"businessPAN"`
	}
	if err := decodeStrict(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.BusinessName == nil && req.ClientIndustry == nil && req.Country == nil &&
		req.City == nil && req.BusinessGSTIN == nil && req.BusinessPAN == nil {
		httpx.Error(w, http.StatusBadRequest, "No data provided for update")
		return
	}
	var errs validation.Errors
	if req.BusinessName != nil {
		validation.Required(&errs, "businessName", *req.BusinessName, "Business Name cannot be empty")
	}
	if req.ClientIndustry != nil {
		validation.Required(&errs, "clientIndustry", *req.ClientIndustry, "Client Industry cannot be empty")
	}
	if req.Country != nil {
		validation.Required(&errs, "country", *req.Country, "Country cannot be empty")
	}
	if req.BusinessGSTIN != nil {
		validation.ExactLength(&errs, "businessGSTIN", *req.BusinessGSTIN, 15, "GSTIN must be 15 characters")
	}
	if req.BusinessPAN != nil {
		validation.ExactLength(&errs, "businessPAN", *req.BusinessPAN, 10, "PAN must be 10 characters")
	}
	if !errs.Empty() {
		httpx.ValidationError(w, errs)
		return
	}
	var client models.Client
	if err := h.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.Error(w, http.StatusNotFound, "Client not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if req.BusinessName != nil {
		client.BusinessName = strings.TrimSpace(*req.BusinessName)
	}
	if req.ClientIndustry != nil {
		client.ClientIndustry = strings.TrimSpace(*req.ClientIndustry)
	}
	if req.Country != nil {
		client.Country = strings.TrimSpace(*req.Country)
	}
	if req.City != nil {
		client.City = *req.City
	}
	if req.BusinessGSTIN != nil {
		client.BusinessGSTIN = *req.BusinessGSTIN
	}
	if req.BusinessPAN != nil {
		client.BusinessPAN = *req.BusinessPAN
	}
	if err := h.DB.Save(&client).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "Client updated successfully", "client": client})
}

// Delete: DELETE /deleteclient/{id}
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		httpx.ValidationError(w, validation.Errors{{Field: "id", Message: "Invalid Client ID"}})
		return
	}
	var client models.Client
	if err := h.DB.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.Error(w, http.StatusNotFound, "Client not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if err := h.DB.Delete(&client).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Client deleted successfully"})
}
