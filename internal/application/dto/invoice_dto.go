package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/daftar-app/daftar/internal/domain/entity"
)

// InvoiceLineRequest is one line of an incoming invoice. Either ProductID
// references an existing product or NewProductName asks for one to be created
// inline; setting both is rejected.
type InvoiceLineRequest struct {
	ProductID      string          `json:"productId"`
	NewProductName string          `json:"newProductName,omitempty"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Description    string          `json:"description,omitempty"`
}

// CreateInvoiceRequest creates or replaces an invoice. The wire key for lines
// is "products" to stay compatible with the persisted document format.
type CreateInvoiceRequest struct {
	Date  string               `json:"date"`
	Lines []InvoiceLineRequest `json:"products"`
}

// InvoiceLineResponse mirrors a stored invoice line.
type InvoiceLineResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	Profit      decimal.Decimal `json:"profit"`
	Description string          `json:"description,omitempty"`
}

// InvoiceResponse is the API representation of one invoice.
type InvoiceResponse struct {
	ID          string                `json:"id"`
	Kind        string                `json:"kind"`
	Date        string                `json:"date"`
	Lines       []InvoiceLineResponse `json:"products"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
	TotalProfit decimal.Decimal       `json:"totalProfit"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   *time.Time            `json:"updatedAt,omitempty"`
}

// InvoiceListResponse wraps an invoice collection of one kind.
type InvoiceListResponse struct {
	Kind  string            `json:"kind"`
	Items []InvoiceResponse `json:"items"`
}

// NewInvoiceResponse maps an entity to its API shape.
func NewInvoiceResponse(kind string, inv *entity.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, InvoiceLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			TotalPrice:  l.TotalPrice,
			Profit:      l.Profit,
			Description: l.Description,
		})
	}
	return InvoiceResponse{
		ID:          inv.ID,
		Kind:        kind,
		Date:        inv.Date,
		Lines:       lines,
		TotalAmount: inv.TotalAmount,
		TotalProfit: inv.TotalProfit,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
}

// NewProductResponse maps an entity to its API shape.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		PurchasePrice: p.PurchasePrice,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
