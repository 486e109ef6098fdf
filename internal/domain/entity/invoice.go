package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice kinds. Input invoices record stock received, sales invoices record
// stock sold.
const (
	InvoiceKindInput = "input"
	InvoiceKindSales = "sales"
)

// InvoiceLine is one product position on an invoice. ProductName is captured
// when the line is created and is never re-synced after a product rename:
// the invoice records history as it happened.
type InvoiceLine struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	Profit      decimal.Decimal `json:"profit"` // zero on input lines
	Description string          `json:"description,omitempty"`
}

// Invoice is one input or sales document. Date is the business-relevant
// Persian transaction date ("YYYY/MM/DD"); CreatedAt/UpdatedAt are system
// timestamps used for sort order and audit only.
//
// The JSON field for lines is "products", matching the persisted document
// format of existing ledgers.
type Invoice struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Lines       []InvoiceLine   `json:"products"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	TotalProfit decimal.Decimal `json:"totalProfit"` // zero on input invoices
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   *time.Time      `json:"updatedAt,omitempty"`
}
