package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry of the single-user ledger. PurchasePrice is
// optional: invoices carry their own per-line prices, the product price is
// the default cost used for stock valuation and profit estimates.
//
// Products are never physically deleted; invoices keep a denormalized name
// snapshot, so a delete would orphan history.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     *time.Time      `json:"updatedAt,omitempty"`
}
