package notify

import (
	"context"

	"github.com/mireles/storefront/internal/domain/model"
)

// Transport delivers one notification to a batch of same-channel tokens.
type Transport interface {
	Push(ctx context.Context, tokens []string, n model.Notification) error
	Name() string
}
