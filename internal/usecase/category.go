package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/mireles/storefront/internal/domain/errors"
	"github.com/mireles/storefront/internal/domain/model"
	"github.com/mireles/storefront/internal/domain/repository"
)

// CategoryUseCase manages the category catalog.
type CategoryUseCase struct {
	categories repository.CategoryRepository
}

// NewCategoryUseCase constructs CategoryUseCase.
func NewCategoryUseCase(categories repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories}
}

// List returns all categories.
func (u *CategoryUseCase) List(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

// Create adds a category; duplicate names fail with ErrAlreadyExists.
func (u *CategoryUseCase) Create(ctx context.Context, name, color, icon string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.categories.Create(ctx, &model.Category{
		ID:    uuid.New(),
		Name:  name,
		Color: color,
		Icon:  icon,
	})
}

// Update renames or restyles an existing category.
func (u *CategoryUseCase) Update(ctx context.Context, id uuid.UUID, name, color, icon string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.categories.Update(ctx, &model.Category{
		ID:    id,
		Name:  name,
		Color: color,
		Icon:  icon,
	})
}

// Delete removes a category.
func (u *CategoryUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.categories.Delete(ctx, id)
}
