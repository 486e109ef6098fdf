package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daftar-app/daftar/internal/application/dto"
	"github.com/daftar-app/daftar/internal/application/usecase"
	"github.com/daftar-app/daftar/internal/domain"
)

func TestProductCreate_TrimsAndValidates(t *testing.T) {
	products := usecase.NewProductUseCase(newTestStore(t))

	p, err := products.Create(dto.CreateProductRequest{Name: "  پیچ  ", PurchasePrice: price(1000)})
	require.NoError(t, err)
	assert.Equal(t, "پیچ", p.Name)
	assert.NotEmpty(t, p.ID)

	_, err = products.Create(dto.CreateProductRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = products.Create(dto.CreateProductRequest{Name: "مهره", PurchasePrice: price(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_PartialPatch(t *testing.T) {
	products := usecase.NewProductUseCase(newTestStore(t))
	created, err := products.Create(dto.CreateProductRequest{Name: "پیچ", PurchasePrice: price(1000)})
	require.NoError(t, err)

	name := "پیچ بزرگ"
	updated, err := products.Update(created.ID, dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.True(t, updated.PurchasePrice.Equal(price(1000)), "untouched fields survive")
	assert.NotNil(t, updated.UpdatedAt)

	missing, err := products.Update("ghost", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, missing)
}
