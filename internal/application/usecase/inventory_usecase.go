package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/daftar-app/daftar/internal/application/dto"
	"github.com/daftar-app/daftar/internal/domain/inventory"
	"github.com/daftar-app/daftar/internal/domain/repository"
)

// InventoryUseCase serves the derived stock report. Nothing is persisted; the
// report is recomputed from the invoice log on every call.
type InventoryUseCase struct {
	store repository.Ledger
}

// NewInventoryUseCase builds the use case.
func NewInventoryUseCase(store repository.Ledger) *InventoryUseCase {
	return &InventoryUseCase{store: store}
}

// Report folds the invoice log into per-product stock rows, ordered by
// Persian collation of the product name. Lines that reference a product id no
// longer in the catalog are reported too, after the named rows, so the totals
// always match the log.
func (uc *InventoryUseCase) Report() (*dto.InventoryReportResponse, error) {
	doc, err := uc.store.Snapshot()
	if err != nil {
		return nil, err
	}
	entries := inventory.Compute(doc.Products, doc.InputInvoices, doc.SalesInvoices)

	products, err := uc.store.ListProducts()
	if err != nil {
		return nil, err
	}

	items := make([]dto.InventoryEntryResponse, 0, len(entries))
	totalValue := decimal.Zero
	seen := make(map[string]bool, len(entries))

	for i := range products {
		e, ok := entries[products[i].ID]
		if !ok {
			continue
		}
		seen[products[i].ID] = true
		items = append(items, dto.InventoryEntryResponse{
			ProductID:     products[i].ID,
			ProductName:   products[i].Name,
			PurchasePrice: products[i].PurchasePrice,
			TotalInput:    e.TotalInput,
			TotalOutput:   e.TotalOutput,
			CurrentStock:  e.CurrentStock,
			StockValue:    e.StockValue,
		})
		totalValue = totalValue.Add(e.StockValue)
	}

	orphans := make([]string, 0)
	for id := range entries {
		if !seen[id] {
			orphans = append(orphans, id)
		}
	}
	sort.Strings(orphans)
	for _, id := range orphans {
		e := entries[id]
		items = append(items, dto.InventoryEntryResponse{
			ProductID:    id,
			TotalInput:   e.TotalInput,
			TotalOutput:  e.TotalOutput,
			CurrentStock: e.CurrentStock,
			StockValue:   e.StockValue,
		})
		totalValue = totalValue.Add(e.StockValue)
	}

	return &dto.InventoryReportResponse{Items: items, TotalValue: totalValue}, nil
}
