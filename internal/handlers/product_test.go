package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/probill/billing-api/internal/models"
)

func TestProductCreateAndList(t *testing.T) {
	conn := setupTestDB(t)
	h := NewProductHandler(conn)

	req := jsonRequest(http.MethodPost, "/inventory/newProduct", `{"productName":"Steel Bolt","sku":"SKU-001","hsnCode":"7318","category":"Fasteners","quantity":50,"price":2.75}`)
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	product, ok := body["product"].(map[string]any)
	if !ok {
		t.Fatalf("missing product in response: %#v", body)
	}
	if product["status"] != models.StatusInStock {
		t.Fatalf("default status not applied: %v", product["status"])
	}

	listW := httptest.NewRecorder()
	h.List(listW, httptest.NewRequest(http.MethodGet, "/inventory/allProducts", nil))
	if listW.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", listW.Code)
	}
	var products []models.Product
	if err := jsonUnmarshal(listW.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(products) != 1 || products[0].SKU != "SKU-001" {
		t.Fatalf("unexpected list: %#v", products)
	}
}

func TestProductCreateValidation(t *testing.T) {
	conn := setupTestDB(t)
	h := NewProductHandler(conn)

	// missing quantity/price and a bad status
	req := jsonRequest(http.MethodPost, "/inventory/newProduct", `{"productName":"Bolt","sku":"S1","hsnCode":"7318","category":"Fasteners","status":"backordered"}`)
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	errs, ok := decodeBody(t, w)["errors"].([]any)
	if !ok || len(errs) != 3 {
		t.Fatalf("expected 3 field errors, got %#v", errs)
	}

	// negative quantity
	req = jsonRequest(http.MethodPost, "/inventory/newProduct", `{"productName":"Bolt","sku":"S1","hsnCode":"7318","category":"Fasteners","quantity":-1,"price":1}`)
	w = httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("negative quantity: expected 400 got %d", w.Code)
	}
}

func TestProductDuplicateSKU(t *testing.T) {
	conn := setupTestDB(t)
	h := NewProductHandler(conn)

	payload := `{"productName":"Bolt","sku":"DUP-1","hsnCode":"7318","category":"Fasteners","quantity":1,"price":1}`
	w := httptest.NewRecorder()
	h.Create(w, jsonRequest(http.MethodPost, "/inventory/newProduct", payload))
	if w.Code != http.StatusCreated {
		t.Fatalf("first create: expected 201 got %d", w.Code)
	}
	w = httptest.NewRecorder()
	h.Create(w, jsonRequest(http.MethodPost, "/inventory/newProduct", payload))
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate SKU: expected 409 got %d body=%s", w.Code, w.Body.String())
	}
	if msg := decodeBody(t, w)["message"]; msg != "SKU already exists" {
		t.Fatalf("unexpected message: %v", msg)
	}
}

func TestProductUpdate(t *testing.T) {
	conn := setupTestDB(t)
	h := NewProductHandler(conn)
	seed := models.Product{ProductName: "Bolt", SKU: "SKU-1", HSNCode: "7318", Category: "Fasteners", Quantity: 5, Price: 2, Status: models.StatusInStock}
	if err := conn.Create(&seed).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := jsonRequest(http.MethodPut, "/inventory/updateProduct/1", `{}`)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()
	h.Update(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty body: expected 400 got %d", w.Code)
	}

	req = jsonRequest(http.MethodPut, "/inventory/updateProduct/1", `{"quantity":0,"status":"out-of-stock"}`)
	req.SetPathValue("id", "1")
	w = httptest.NewRecorder()
	h.Update(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var got models.Product
	if err := conn.First(&got, seed.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Quantity != 0 || got.Status != models.StatusOutOfStock || got.Price != 2 {
		t.Fatalf("merge went wrong: %#v", got)
	}
}

func TestProductDeleteNotFound(t *testing.T) {
	conn := setupTestDB(t)
	h := NewProductHandler(conn)
	req := httptest.NewRequest(http.MethodDelete, "/inventory/deleteProduct/42", nil)
	req.SetPathValue("id", "42")
	w := httptest.NewRecorder()
	h.Delete(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
	if msg := decodeBody(t, w)["message"]; msg != "Product not found" {
		t.Fatalf("unexpected message: %v", msg)
	}
}
