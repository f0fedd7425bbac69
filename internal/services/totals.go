package services

import (
	"github.com/shopspring/decimal"

	"github.com/probill/billing-api/internal/models"
)

// DocumentService encapsulates the billing arithmetic shared by invoices
// and quotations. Keep DB access in handlers.
type DocumentService struct{}

func NewDocumentService() *DocumentService { return &DocumentService{} }

// ComputeTotals derives totalAmount for every line item and the document
// subtotal. For each item:
//
//	totalAmount = rate*quantity + rate*quantity*gstRate/100
//
// with gstRate treated as 0 when absent. The subtotal is the sum of the
// unrounded line totals; both are formatted to exactly two decimal places.
// Inputs must already be validated; the function itself is pure and never
// rejects.
func (s *DocumentService) ComputeTotals(items []models.LineItem) ([]models.LineItem, string) {
	hundred := decimal.NewFromInt(100)
	subTotal := decimal.Zero
	out := make([]models.LineItem, len(items))
	for i, it := range items {
		base := decimal.NewFromFloat(it.Rate).Mul(decimal.NewFromInt(int64(it.Quantity)))
		gst := base.Mul(decimal.NewFromFloat(it.GSTRate)).Div(hundred)
		total := base.Add(gst)
		it.TotalAmount = total.StringFixed(2)
		subTotal = subTotal.Add(total)
		out[i] = it
	}
	return out, subTotal.StringFixed(2)
}
