package models

import "time"

// Document kinds. Invoices and quotations share one schema; the kind
// discriminator keeps each family in its own number namespace.
const (
	KindInvoice   = "invoice"
	KindQuotation = "quotation"
)

// Document is a billing document (invoice or quotation). Dates are carried
// as free-form text, as supplied by the caller. SubTotal is derived from the
// line items and stored as fixed two-decimal text.
type Document struct {
	ID           uint   `gorm:"primaryKey"`
	Kind         string `gorm:"size:16;not null;uniqueIndex:idx_documents_kind_number,priority:1"`
	Number       string `gorm:"size:64;not null;uniqueIndex:idx_documents_kind_number,priority:2"`
	DocumentDate string `gorm:"not null"`
	DueDate      string `gorm:"not null"`
	BilledBy     string `gorm:"not null"`
	BilledTo     string `gorm:"not null"`
	Currency     string
	TaxType      string
	GSTType      string
	Items        []LineItem `gorm:"foreignKey:DocumentID"`
	SubTotal     string     `gorm:"not null"`
	// Logo and Signature hold opaque encoded image references.
	Logo      string
	Signature string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LineItem is one billable row within a document. It is embedded in its
// parent's lifecycle and never addressed independently. TotalAmount is
// derived; caller-supplied values are discarded and recomputed.
type LineItem struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	DocumentID  uint    `gorm:"not null;index" json:"-"`
	Name        string  `gorm:"not null" json:"name"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	Rate        float64 `gorm:"not null" json:"rate"`
	GSTRate     float64 `json:"gstRate"`
	TotalAmount string  `gorm:"not null" json:"totalAmount"`
}
