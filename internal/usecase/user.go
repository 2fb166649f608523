package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/mireles/storefront/internal/domain/errors"
	"github.com/mireles/storefront/internal/domain/model"
	"github.com/mireles/storefront/internal/domain/repository"
)

// UserUseCase covers profile and push-token management.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// Get returns a user profile; only the user themselves or an admin may read it.
func (u *UserUseCase) Get(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.User, error) {
	if !actor.IsAdmin && actor.UserID != id {
		return nil, domainErrors.ErrForbidden
	}
	return u.users.GetByID(ctx, id)
}

// UpdateProfile applies partial profile changes for the acting user.
func (u *UserUseCase) UpdateProfile(ctx context.Context, userID uuid.UUID, update model.ProfileUpdate) (*model.User, error) {
	trim := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		return &v
	}
	update.Name = trim(update.Name)
	update.Phone = trim(update.Phone)
	update.DeliveryAddress1 = trim(update.DeliveryAddress1)
	update.DeliveryAddress2 = trim(update.DeliveryAddress2)
	update.DeliveryCity = trim(update.DeliveryCity)
	update.DeliveryZip = trim(update.DeliveryZip)
	update.DeliveryCountry = trim(update.DeliveryCountry)

	return u.users.UpdateProfile(ctx, userID, update)
}

// SavePushToken stores the device token, inferring the channel from the
// token prefix when the client does not name it.
func (u *UserUseCase) SavePushToken(ctx context.Context, userID uuid.UUID, token, tokenType string) error {
	if token == "" {
		return domainErrors.ErrInvalidInput
	}
	if tokenType == "" {
		if strings.HasPrefix(token, "ExponentPushToken") {
			tokenType = "expo"
		} else {
			tokenType = "fcm"
		}
	}
	return u.users.SetPushToken(ctx, userID, token, tokenType)
}
