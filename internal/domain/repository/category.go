package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mireles/storefront/internal/domain/model"
)

// CategoryRepository describes persistence operations with categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, category *model.Category) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
