package models

import "time"

// Client entity
type Client struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	BusinessName   string `gorm:"not null;index" json:"businessName"`
	ClientIndustry string `gorm:"not null" json:"clientIndustry"`
	Country        string `gorm:"not null" json:"country"`
	City           string `json:"city,omitempty"`
	// Tax registration identifiers carried as opaque strings; format
	// (GSTIN 15 chars, PAN 10 chars) is enforced at the validation layer.
	BusinessGSTIN string    `json:"businessGSTIN,omitempty"`
	BusinessPAN   string    `json:"businessPAN,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
