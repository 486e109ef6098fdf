package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daftar-app/daftar/internal/application/dto"
	"github.com/daftar-app/daftar/internal/domain"
	"github.com/daftar-app/daftar/internal/domain/entity"
	"github.com/daftar-app/daftar/internal/domain/repository"
)

// ProductUseCase covers the product catalog. There is no delete: products
// referenced from invoice history must stay resolvable forever.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create registers a new product.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.PurchasePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          name,
		PurchasePrice: in.PurchasePrice,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.CreateProduct(product); err != nil {
		return nil, err
	}
	resp := dto.NewProductResponse(product)
	return &resp, nil
}

// GetByID fetches one product. Unknown ids return (nil, nil).
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	resp := dto.NewProductResponse(product)
	return &resp, nil
}

// Update patches a product. A rename does not touch the name snapshots on
// existing invoices; they record history as it happened.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	now := time.Now()
	product.UpdatedAt = &now
	if err := uc.repo.UpdateProduct(product); err != nil {
		return nil, err
	}
	resp := dto.NewProductResponse(product)
	return &resp, nil
}

// List returns the catalog sorted by Persian collation of the product name.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListProducts()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for i := range list {
		items = append(items, dto.NewProductResponse(&list[i]))
	}
	return &dto.ProductListResponse{Items: items}, nil
}
