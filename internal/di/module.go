package di

import (
	"go.uber.org/fx"

	"github.com/mireles/storefront/internal/app"
	"github.com/mireles/storefront/internal/config"
	"github.com/mireles/storefront/internal/logger"
	"github.com/mireles/storefront/internal/notify"
	"github.com/mireles/storefront/internal/pkg/auth"
	"github.com/mireles/storefront/internal/server/http/handlers"
	"github.com/mireles/storefront/internal/server/http/middleware"
	"github.com/mireles/storefront/internal/server/http/router"
	"github.com/mireles/storefront/internal/storage/postgres"
	"github.com/mireles/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		notify.Module,
		fx.Provide(func(d *notify.Dispatcher) usecase.Notifier { return d }),
		usecase.Module,
		fx.Provide(
			func(f *app.StoreFacade) handlers.StoreFacade { return f },
			func(f *app.StoreFacade) middleware.ActorResolver { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
