package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mireles/storefront/internal/domain/model"
	"github.com/mireles/storefront/internal/domain/repository"
)

// StockAlertUseCase derives alert state from product stock counts.
type StockAlertUseCase struct {
	alerts    repository.StockAlertRepository
	users     repository.UserRepository
	notifier  Notifier
	threshold int
}

// NewStockAlertUseCase constructs StockAlertUseCase. The threshold is the
// stock level at or below which a product counts as low.
func NewStockAlertUseCase(alerts repository.StockAlertRepository, users repository.UserRepository, notifier Notifier, threshold int) *StockAlertUseCase {
	return &StockAlertUseCase{alerts: alerts, users: users, notifier: notifier, threshold: threshold}
}

// stockPlan is the mutation an evaluation decided on.
type stockPlan struct {
	resolve      []model.AlertType
	create       model.AlertType
	createAlert  bool
	refreshAlert *model.StockAlert
	notify       bool
	notification model.Notification
}

// planStockAlerts is a pure function of the current count and the product's
// unresolved alerts. Re-evaluating an unchanged state yields an empty plan.
func planStockAlerts(name string, count, threshold int, low, out *model.StockAlert) stockPlan {
	var plan stockPlan

	switch {
	case count <= 0:
		if low != nil {
			plan.resolve = append(plan.resolve, model.AlertTypeLow)
		}
		if out == nil {
			plan.create = model.AlertTypeOut
			plan.createAlert = true
			plan.notify = true
			plan.notification = model.Notification{
				Title: "Out of stock",
				Body:  fmt.Sprintf("%s is out of stock.", name),
			}
		} else if out.CountInStock != count {
			plan.refreshAlert = out
		}
	case count <= threshold:
		if out != nil {
			plan.resolve = append(plan.resolve, model.AlertTypeOut)
		}
		if low == nil {
			plan.create = model.AlertTypeLow
			plan.createAlert = true
			plan.notify = true
			plan.notification = model.Notification{
				Title: "Low stock",
				Body:  fmt.Sprintf("%s is low on stock (%d).", name, count),
			}
		} else if low.CountInStock != count {
			plan.refreshAlert = low
		}
	default:
		if low != nil {
			plan.resolve = append(plan.resolve, model.AlertTypeLow)
		}
		if out != nil {
			plan.resolve = append(plan.resolve, model.AlertTypeOut)
		}
	}

	return plan
}

// Evaluate recomputes the alert state for a product after a stock change.
// Stale alerts are resolved before a new one is created, so at no point do
// both an unresolved low and out alert coexist. A failed step aborts the
// rest; a resolved-but-not-recreated state heals on the next evaluation.
func (u *StockAlertUseCase) Evaluate(ctx context.Context, product *model.Product) error {
	unresolved, err := u.alerts.UnresolvedByProduct(ctx, product.ID)
	if err != nil {
		return err
	}

	var low, out *model.StockAlert
	for i := range unresolved {
		switch unresolved[i].Type {
		case model.AlertTypeLow:
			low = &unresolved[i]
		case model.AlertTypeOut:
			out = &unresolved[i]
		}
	}

	plan := planStockAlerts(product.Name, product.CountInStock, u.threshold, low, out)

	if len(plan.resolve) > 0 {
		if err := u.alerts.ResolveByTypes(ctx, product.ID, plan.resolve...); err != nil {
			return err
		}
	}

	if plan.refreshAlert != nil {
		if err := u.alerts.UpdateCount(ctx, plan.refreshAlert.ID, product.CountInStock); err != nil {
			return err
		}
	}

	if plan.createAlert {
		_, err := u.alerts.Create(ctx, &model.StockAlert{
			ID:           uuid.New(),
			ProductID:    product.ID,
			Type:         plan.create,
			Threshold:    u.threshold,
			CountInStock: product.CountInStock,
		})
		if err != nil {
			return err
		}
	}

	if plan.notify {
		if err := broadcastToAdmins(ctx, u.users, u.notifier, plan.notification); err != nil {
			return err
		}
	}

	return nil
}

// List returns alerts, newest first, optionally including resolved ones.
func (u *StockAlertUseCase) List(ctx context.Context, includeResolved bool) ([]model.StockAlert, error) {
	return u.alerts.List(ctx, includeResolved)
}
