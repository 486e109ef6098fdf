package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daftar-app/daftar/internal/domain"
	"github.com/daftar-app/daftar/internal/domain/entity"
	"github.com/daftar-app/daftar/internal/domain/inventory"
)

func product(id, name string, price int64) entity.Product {
	return entity.Product{ID: id, Name: name, PurchasePrice: decimal.NewFromInt(price)}
}

func invoice(lines ...entity.InvoiceLine) entity.Invoice {
	return entity.Invoice{Date: "1403/01/15", Lines: lines}
}

func line(productID string, qty int) entity.InvoiceLine {
	return entity.InvoiceLine{ProductID: productID, Quantity: qty}
}

func TestCompute_InputMinusOutput(t *testing.T) {
	products := []entity.Product{product("p1", "پیچ", 100)}
	inputs := []entity.Invoice{invoice(line("p1", 10))}
	sales := []entity.Invoice{invoice(line("p1", 4))}

	inv := inventory.Compute(products, inputs, sales)

	require.Len(t, inv, 1)
	e := inv["p1"]
	require.NotNil(t, e)
	assert.Equal(t, 10, e.TotalInput)
	assert.Equal(t, 4, e.TotalOutput)
	assert.Equal(t, 6, e.CurrentStock)
	assert.True(t, e.StockValue.Equal(decimal.NewFromInt(600)), "6 units at 100 each")
	require.NotNil(t, e.Product)
	assert.Equal(t, "پیچ", e.Product.Name)
}

func TestCompute_SparseMap(t *testing.T) {
	// A product with no invoice activity does not appear in the result.
	products := []entity.Product{product("p1", "پیچ", 100), product("p2", "مهره", 50)}
	inputs := []entity.Invoice{invoice(line("p1", 3))}

	inv := inventory.Compute(products, inputs, nil)

	assert.Len(t, inv, 1)
	assert.Contains(t, inv, "p1")
	assert.NotContains(t, inv, "p2")
}

func TestCompute_NegativeStockNotClamped(t *testing.T) {
	// The engine reports what the log says; it is not the place that
	// prevents over-selling.
	sales := []entity.Invoice{invoice(line("p1", 7))}

	inv := inventory.Compute(nil, nil, sales)

	e := inv["p1"]
	require.NotNil(t, e)
	assert.Equal(t, -7, e.CurrentStock)
	assert.Nil(t, e.Product, "unknown product id yields a nil product reference")
}

func TestCompute_AccumulatesAcrossInvoices(t *testing.T) {
	inputs := []entity.Invoice{
		invoice(line("p1", 5), line("p2", 2)),
		invoice(line("p1", 3)),
	}
	sales := []entity.Invoice{invoice(line("p1", 4))}

	inv := inventory.Compute(nil, inputs, sales)

	assert.Equal(t, 8, inv["p1"].TotalInput)
	assert.Equal(t, 4, inv["p1"].TotalOutput)
	assert.Equal(t, 4, inv["p1"].CurrentStock)
	assert.Equal(t, 2, inv["p2"].CurrentStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock sufficiency
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckSufficiency_RejectsOverSell(t *testing.T) {
	inputs := []entity.Invoice{invoice(line("p1", 10))}
	sales := []entity.Invoice{invoice(line("p1", 4))}
	inv := inventory.Compute(nil, inputs, sales)

	err := inventory.CheckSufficiency(inv, []entity.InvoiceLine{line("p1", 7)})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "stock is 6, 7 requested")

	err = inventory.CheckSufficiency(inv, []entity.InvoiceLine{line("p1", 6)})
	assert.NoError(t, err, "exactly the available stock is fine")
}

func TestCheckSufficiency_WholeInvoiceRejected(t *testing.T) {
	inputs := []entity.Invoice{invoice(line("p1", 10), line("p2", 1))}
	inv := inventory.Compute(nil, inputs, nil)

	// One short line fails the whole set, even though p1 alone would pass.
	err := inventory.CheckSufficiency(inv, []entity.InvoiceLine{line("p1", 2), line("p2", 5)})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCheckSufficiency_AccumulatesLinesPerProduct(t *testing.T) {
	inputs := []entity.Invoice{invoice(line("p1", 6))}
	inv := inventory.Compute(nil, inputs, nil)

	err := inventory.CheckSufficiency(inv, []entity.InvoiceLine{line("p1", 4), line("p1", 4)})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "4+4 against a stock of 6")
}

func TestCheckSufficiency_UnknownProduct(t *testing.T) {
	err := inventory.CheckSufficiency(map[string]*inventory.Entry{}, []entity.InvoiceLine{line("ghost", 1)})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "no stock entry means zero stock")
}

// ──────────────────────────────────────────────────────────────────────────────
// Line totals
// ──────────────────────────────────────────────────────────────────────────────

func TestLineTotals(t *testing.T) {
	l := entity.InvoiceLine{ProductID: "p1", Quantity: 3, UnitPrice: decimal.NewFromInt(150)}
	inventory.LineTotals(&l, decimal.NewFromInt(100))

	assert.True(t, l.TotalPrice.Equal(decimal.NewFromInt(450)))
	assert.True(t, l.Profit.Equal(decimal.NewFromInt(150)), "(150-100)*3")
}

func TestLineTotals_LossIsNegative(t *testing.T) {
	l := entity.InvoiceLine{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromInt(80)}
	inventory.LineTotals(&l, decimal.NewFromInt(100))

	assert.True(t, l.Profit.Equal(decimal.NewFromInt(-40)), "selling below cost is a loss, not an error")
}
