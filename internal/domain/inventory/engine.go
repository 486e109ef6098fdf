// Package inventory derives per-product stock levels and valuation by
// folding over the append-only invoice collections. Nothing here is stored:
// the result is a materialized view recomputed from scratch on every query,
// so it can never drift from the invoice log.
package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/daftar-app/daftar/internal/domain"
	"github.com/daftar-app/daftar/internal/domain/entity"
)

// Entry is the derived stock summary for one product. StockValue prices the
// current stock at the product's purchase price.
type Entry struct {
	Product      *entity.Product
	TotalInput   int
	TotalOutput  int
	CurrentStock int
	StockValue   decimal.Decimal
}

// Compute folds every line of every invoice into a sparse map keyed by
// product id. Products with zero invoice activity do not appear. The engine
// performs no clamping: CurrentStock goes negative if the log says so;
// quantity sufficiency is the invoice-creation workflow's job.
func Compute(products []entity.Product, inputInvoices, salesInvoices []entity.Invoice) map[string]*Entry {
	byID := make(map[string]*entity.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	result := make(map[string]*Entry)
	entryFor := func(productID string) *Entry {
		e, ok := result[productID]
		if !ok {
			e = &Entry{Product: byID[productID]}
			result[productID] = e
		}
		return e
	}

	for _, inv := range inputInvoices {
		for _, line := range inv.Lines {
			entryFor(line.ProductID).TotalInput += line.Quantity
		}
	}
	for _, inv := range salesInvoices {
		for _, line := range inv.Lines {
			entryFor(line.ProductID).TotalOutput += line.Quantity
		}
	}

	for _, e := range result {
		e.CurrentStock = e.TotalInput - e.TotalOutput
		if e.Product != nil {
			e.StockValue = e.Product.PurchasePrice.Mul(decimal.NewFromInt(int64(e.CurrentStock)))
		}
	}
	return result
}

// CheckSufficiency verifies that the current stock covers every requested
// line. The whole set is accepted or rejected together; a single short line
// fails the entire invoice with no partial commit.
//
// Lines for the same product accumulate: two lines of 4 against a stock of 6
// are rejected.
func CheckSufficiency(inv map[string]*Entry, lines []entity.InvoiceLine) error {
	requested := make(map[string]int, len(lines))
	for _, line := range lines {
		requested[line.ProductID] += line.Quantity
	}
	for productID, qty := range requested {
		stock := 0
		if e, ok := inv[productID]; ok {
			stock = e.CurrentStock
		}
		if stock < qty {
			return fmt.Errorf("product %s has %d in stock, %d requested: %w",
				productID, stock, qty, domain.ErrInsufficientStock)
		}
	}
	return nil
}

// LineTotals fills the derived money fields of a sales line: the line total
// and the profit against the product's purchase price.
func LineTotals(line *entity.InvoiceLine, purchasePrice decimal.Decimal) {
	qty := decimal.NewFromInt(int64(line.Quantity))
	line.TotalPrice = line.UnitPrice.Mul(qty)
	line.Profit = line.UnitPrice.Sub(purchasePrice).Mul(qty)
}
