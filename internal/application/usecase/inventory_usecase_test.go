package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daftar-app/daftar/internal/application/dto"
	"github.com/daftar-app/daftar/internal/application/usecase"
	"github.com/daftar-app/daftar/internal/domain/entity"
	"github.com/daftar-app/daftar/internal/infrastructure/pdf"
)

func TestInventoryReport(t *testing.T) {
	store := newTestStore(t)
	products := usecase.NewProductUseCase(store)
	invoices := usecase.NewInvoiceUseCase(store, pdf.NewMarotoInvoiceGenerator())
	report := usecase.NewInventoryUseCase(store)

	screw := createProduct(t, products, "پیچ", 1000)
	wrench := createProduct(t, products, "آچار", 2500)
	createProduct(t, products, "مهره", 500) // never invoiced

	receiveStock(t, invoices, screw, 10, 1000)
	receiveStock(t, invoices, wrench, 3, 2500)
	_, err := invoices.Create(entity.InvoiceKindSales, dto.CreateInvoiceRequest{
		Date:  "1403/02/01",
		Lines: []dto.InvoiceLineRequest{{ProductID: screw, Quantity: 4, UnitPrice: price(1500)}},
	})
	require.NoError(t, err)

	resp, err := report.Report()
	require.NoError(t, err)

	require.Len(t, resp.Items, 2, "products with no invoice activity are absent")
	assert.Equal(t, "آچار", resp.Items[0].ProductName, "rows follow Persian collation")
	assert.Equal(t, "پیچ", resp.Items[1].ProductName)

	screwRow := resp.Items[1]
	assert.Equal(t, 10, screwRow.TotalInput)
	assert.Equal(t, 4, screwRow.TotalOutput)
	assert.Equal(t, 6, screwRow.CurrentStock)
	assert.True(t, screwRow.StockValue.Equal(price(6000)), "6 in stock at purchase price 1000")

	// 6*1000 + 3*2500
	assert.True(t, resp.TotalValue.Equal(price(13500)))
}

func TestInventoryReport_EmptyLedger(t *testing.T) {
	store := newTestStore(t)
	report := usecase.NewInventoryUseCase(store)

	resp, err := report.Report()
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.TotalValue.IsZero())
}
