package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/mireles/storefront/internal/domain/model"
	"github.com/mireles/storefront/internal/domain/repository"
)

// ProductUseCase manages the product catalog. Every create or update
// re-evaluates the product's stock alerts after the write lands.
type ProductUseCase struct {
	products repository.ProductRepository
	alerts   *StockAlertUseCase
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository, alerts *StockAlertUseCase) *ProductUseCase {
	return &ProductUseCase{products: products, alerts: alerts}
}

// List returns all products.
func (u *ProductUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Get returns a product by id.
func (u *ProductUseCase) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// Create persists a product and evaluates its stock state.
func (u *ProductUseCase) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	created, err := u.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	if err := u.alerts.Evaluate(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// Update persists product changes and re-evaluates stock state.
func (u *ProductUseCase) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	updated, err := u.products.Update(ctx, product)
	if err != nil {
		return nil, err
	}
	if err := u.alerts.Evaluate(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a product.
func (u *ProductUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.products.Delete(ctx, id)
}
