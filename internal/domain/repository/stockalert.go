package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mireles/storefront/internal/domain/model"
)

// StockAlertRepository describes persistence operations with stock alerts.
type StockAlertRepository interface {
	// UnresolvedByProduct returns the product's active alerts, at most one per type.
	UnresolvedByProduct(ctx context.Context, productID uuid.UUID) ([]model.StockAlert, error)
	// ResolveByTypes marks the product's unresolved alerts of the given types resolved.
	ResolveByTypes(ctx context.Context, productID uuid.UUID, types ...model.AlertType) error
	Create(ctx context.Context, alert *model.StockAlert) (*model.StockAlert, error)
	UpdateCount(ctx context.Context, alertID uuid.UUID, countInStock int) error
	List(ctx context.Context, includeResolved bool) ([]model.StockAlert, error)
}
