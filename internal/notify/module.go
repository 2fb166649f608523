package notify

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/mireles/storefront/internal/config"
)

// Module wires push transports and the async dispatcher.
var Module = fx.Options(
	fx.Provide(newDispatcher),
	fx.Invoke(registerLifecycle),
)

type dispatcherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newDispatcher(p dispatcherParams) (*Dispatcher, error) {
	expo, err := NewExpoTransport(p.Config.ExpoPushURL, p.Logger)
	if err != nil {
		return nil, err
	}
	fcm, err := NewFCMTransport(p.Config.FCMSendURL, p.Config.FCMServerKey, p.Logger)
	if err != nil {
		return nil, err
	}
	return NewDispatcher(expo, fcm, p.Config.NotifyWorkers, p.Config.NotifyQueueSize, p.Logger), nil
}

func registerLifecycle(lc fx.Lifecycle, d *Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			d.Start(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			d.Stop()
			return nil
		},
	})
}
