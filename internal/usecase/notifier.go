package usecase

import (
	"context"

	"github.com/mireles/storefront/internal/domain/model"
	"github.com/mireles/storefront/internal/domain/repository"
)

// Notifier delivers push notifications. Implementations are fire-and-forget:
// delivery failure never surfaces to the caller.
type Notifier interface {
	Notify(recipients []model.PushRecipient, n model.Notification)
}

// broadcastToAdmins resolves the current admin recipients and sends them the
// payload. Recipients are listed at dispatch time; there is no maintained
// subscriber list.
func broadcastToAdmins(ctx context.Context, users repository.UserRepository, notifier Notifier, n model.Notification) error {
	recipients, err := users.AdminRecipients(ctx)
	if err != nil {
		return err
	}
	notifier.Notify(recipients, n)
	return nil
}
