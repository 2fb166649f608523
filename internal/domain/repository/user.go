package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mireles/storefront/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (*model.User, error)
	SetPushToken(ctx context.Context, id uuid.UUID, token, tokenType string) error
	AdminRecipients(ctx context.Context) ([]model.PushRecipient, error)
}
