package usecase

import (
	"go.uber.org/fx"

	"github.com/mireles/storefront/internal/config"
	"github.com/mireles/storefront/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewUserUseCase,
	NewCategoryUseCase,
	NewProductUseCase,
	NewOrderUseCase,
	newStockAlertUseCase,
)

type stockAlertParams struct {
	fx.In

	Alerts   repository.StockAlertRepository
	Users    repository.UserRepository
	Notifier Notifier
	Config   *config.Config
}

func newStockAlertUseCase(p stockAlertParams) *StockAlertUseCase {
	return NewStockAlertUseCase(p.Alerts, p.Users, p.Notifier, p.Config.StockLowThreshold)
}
