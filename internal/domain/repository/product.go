package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mireles/storefront/internal/domain/model"
)

// ProductRepository describes persistence operations with catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
