package models

import "time"

// Inventory status values for Product.Status.
const (
	StatusInStock    = "in-stock"
	StatusOutOfStock = "out-of-stock"
)

// Product domain model. SKU is unique across the collection.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProductName string    `gorm:"not null" json:"productName"`
	SKU         string    `gorm:"size:64;not null;uniqueIndex" json:"sku"`
	HSNCode     string    `gorm:"not null" json:"hsnCode"`
	Category    string    `gorm:"not null" json:"category"`
	Quantity    int       `gorm:"not null;default:0" json:"quantity"`
	Price       float64   `gorm:"not null;default:0" json:"price"`
	Status      string    `gorm:"size:16;not null;default:'in-stock'" json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
