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

var productStatuses = []string{models.StatusInStock, models.StatusOutOfStock}

type ProductHandler struct {
	DB *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler { return &ProductHandler{DB: db} }

// List: GET /inventory/allProducts
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	var products []models.Product
	if err := h.DB.Order("id").Find(&products).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

// Create: POST /inventory/newProduct
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductName string   `json:"productName"`
		SKU         string   `json:"sku"`
		HSNCode     string   `json:"hsnCode"`
		Category    string   `json:"category"`
		Quantity    *int     `json:"quantity"`
		Price       *float64 `json:"price"`
		Status      string   `json:"status"`
	}
	if err := decodeStrict(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	var errs validation.Errors
	validation.Required(&errs, "productName", req.ProductName, "Product name is required")
	validation.Required(&errs, "sku", req.SKU, "SKU is required")
	validation.Required(&errs, "hsnCode", req.HSNCode, "HSN Code is required")
	validation.Required(&errs, "category", req.Category, "Category is required")
	if req.Quantity == nil {
		errs.Add("quantity", "Quantity must be a positive integer")
	} else {
		validation.MinInt(&errs, "quantity", *req.Quantity, 0, "Quantity must be a positive integer")
	}
	if req.Price == nil {
		errs.Add("price", "Price must be a positive number")
	} else {
		validation.MinFloat(&errs, "price", *req.Price, 0, "Price must be a positive number")
	}
	validation.OneOf(&errs, "status", req.Status, productStatuses, "Status must be 'in-stock' or 'out-of-stock'")
	if !errs.Empty() {
		httpx.ValidationError(w, errs)
		return
	}
	status := req.Status
	if status == "" {
		status = models.StatusInStock
	}
	product := models.Product{
		ProductName: strings.TrimSpace(req.ProductName),
		SKU:         strings.TrimSpace(req.SKU),
		HSNCode:     strings.TrimSpace(req.HSNCode),
		Category:    strings.TrimSpace(req.Category),
		Quantity:    *req.Quantity,
		Price:       *req.Price,
		Status:      status,
	}
	if err := h.DB.Create(&product).Error; err != nil {
		if isDuplicateErr(err) {
			httpx.Error(w, http.StatusConflict, "SKU already exists")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"message": "Product created successfully", "product": product})
}

// Update: PUT /inventory/updateProduct/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		httpx.ValidationError(w, validation.Errors{{Field: "id", Message: "Invalid Product ID"}})
		return
	}
	var req struct {
		ProductName *string  `json:"productName"`
		SKU         *string  `json:"sku"`
		HSNCode     *string  `json:"hsnCode"`
		Category    *string  `json:"category"`
		Quantity    *int     `json:"quantity"`
		Price       *float64 `json:"price"`
		Status      *string  `json:"status"`
	}
	if err := decodeStrict(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProductName == nil && req.SKU == nil && req.HSNCode == nil && req.Category == nil &&
		req.Quantity == nil && req.Price == nil && req.Status == nil {
		httpx.Error(w, http.StatusBadRequest, "No data provided for update")
		return
	}
	var errs validation.Errors
	if req.ProductName != nil {
		validation.Required(&errs, "productName", *req.ProductName, "Product name cannot be empty")
	}
	if req.SKU != nil {
		validation.Required(&errs, "sku", *req.SKU, "SKU cannot be empty")
	}
	if req.HSNCode != nil {
		validation.Required(&errs, "hsnCode", *req.HSNCode, "HSN Code cannot be empty")
	}
	if req.Category != nil {
		validation.Required(&errs, "category", *req.Category, "Category cannot be empty")
	}
	if req.Quantity != nil {
		validation.MinInt(&errs, "quantity", *req.Quantity, 0, "Quantity must be a positive integer")
	}
	if req.Price != nil {
		validation.MinFloat(&errs, "price", *req.Price, 0, "Price must be a positive number")
	}
	if req.Status != nil {
		validation.OneOf(&errs, "status", *req.Status, productStatuses, "Status must be 'in-stock' or 'out-of-stock'")
	}
	if !errs.Empty() {
		httpx.ValidationError(w, errs)
		return
	}
	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if req.ProductName != nil {
		product.ProductName = strings.TrimSpace(*req.ProductName)
	}
	if req.SKU != nil {
		product.SKU = strings.TrimSpace(*req.SKU)
	}
	if req.HSNCode != nil {
		product.HSNCode = strings.TrimSpace(*req.HSNCode)
	}
	if req.Category != nil {
		product.Category = strings.TrimSpace(*req.Category)
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Status != nil {
		product.Status = *req.Status
	}
	if err := h.DB.Save(&product).Error; err != nil {
		if isDuplicateErr(err) {
			httpx.Error(w, http.StatusConflict, "SKU already exists")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"message": "Product updated successfully", "product": product})
}

// Delete: DELETE /inventory/deleteProduct/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r.PathValue("id"))
	if !ok {
		httpx.ValidationError(w, validation.Errors{{Field: "id", Message: "Invalid Product ID"}})
		return
	}
	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.Error(w, http.StatusNotFound, "Product not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if err := h.DB.Delete(&product).Error; err != nil {
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}
