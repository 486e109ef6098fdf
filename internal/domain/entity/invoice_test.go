package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daftar-app/daftar/internal/domain/entity"
)

func TestInvoiceJSON_DocumentFormat(t *testing.T) {
	inv := entity.Invoice{
		ID:   "i1",
		Date: "1403/02/01",
		Lines: []entity.InvoiceLine{
			{ProductID: "p1", ProductName: "پیچ", Quantity: 10, UnitPrice: decimal.NewFromInt(1000), TotalPrice: decimal.NewFromInt(10000)},
		},
		TotalAmount: decimal.NewFromInt(10000),
	}
	data, err := json.Marshal(inv)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"products":`, "lines serialize under the document key")
	// Money fields are always written, zero included; an input invoice carries
	// explicit zero profit rather than dropping the field.
	assert.Contains(t, string(data), `"profit":"0"`)
	assert.Contains(t, string(data), `"totalProfit":"0"`)
}
