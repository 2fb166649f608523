package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/mireles/storefront/internal/domain/errors"
	"github.com/mireles/storefront/internal/domain/model"
	"github.com/mireles/storefront/internal/domain/repository"
	pkgAuth "github.com/mireles/storefront/internal/pkg/auth"
)

// AuthUseCase handles user registration, login and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// RegisterParams carries the fields accepted at sign-up.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Phone    string
	IsAdmin  bool
}

// Register creates a new user account.
func (u *AuthUseCase) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
	name := strings.TrimSpace(params.Name)
	email := strings.ToLower(strings.TrimSpace(params.Email))
	phone := strings.TrimSpace(params.Phone)
	if name == "" || email == "" || params.Password == "" || phone == "" {
		return nil, domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(params.Password)
	if err != nil {
		return nil, err
	}

	usr, err := u.users.Create(ctx, &model.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        phone,
		IsAdmin:      params.IsAdmin,
	})
	if err != nil {
		return nil, err
	}

	return usr, nil
}

// Authenticate validates credentials and returns the user with an auth token.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Actor resolves a token into the acting identity. The admin flag is read
// from the stored user record, not the token, so role checks see fresh data.
func (u *AuthUseCase) Actor(ctx context.Context, token string) (model.Actor, error) {
	if token == "" {
		return model.Actor{}, pkgAuth.ErrInvalidToken
	}
	userID, err := u.tokens.ParseToken(token)
	if err != nil {
		return model.Actor{}, err
	}
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return model.Actor{}, pkgAuth.ErrInvalidToken
		}
		return model.Actor{}, err
	}
	return model.Actor{UserID: usr.ID, IsAdmin: usr.IsAdmin}, nil
}
