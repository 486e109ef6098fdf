package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest registers a product in the catalog. PurchasePrice is
// optional; it defaults the valuation cost of inventory reports.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
}

// UpdateProductRequest patches a product. Nil fields are left untouched.
// Renames do not rewrite the name snapshots on existing invoices.
type UpdateProductRequest struct {
	Name          *string          `json:"name"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
}

// ProductResponse is the API representation of a product.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}

// ProductListResponse wraps the product collection.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
