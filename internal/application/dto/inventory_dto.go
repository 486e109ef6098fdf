package dto

import "github.com/shopspring/decimal"

// InventoryEntryResponse is one product row of the derived inventory report.
type InventoryEntryResponse struct {
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	TotalInput    int             `json:"totalInput"`
	TotalOutput   int             `json:"totalOutput"`
	CurrentStock  int             `json:"currentStock"`
	StockValue    decimal.Decimal `json:"stockValue"`
}

// InventoryReportResponse is the full derived report plus its aggregate value.
type InventoryReportResponse struct {
	Items      []InventoryEntryResponse `json:"items"`
	TotalValue decimal.Decimal          `json:"totalValue"`
}
