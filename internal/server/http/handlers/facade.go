package handlers

import (
	"context"

	"github.com/google/uuid"

	"github.com/mireles/storefront/internal/domain/model"
	"github.com/mireles/storefront/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, params usecase.RegisterParams) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	Actor(ctx context.Context, token string) (model.Actor, error)
}

// UserFacade covers profile and push-token endpoints.
type UserFacade interface {
	User(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update model.ProfileUpdate) (*model.User, error)
	SavePushToken(ctx context.Context, userID uuid.UUID, token, tokenType string) error
}

// CategoryFacade covers category catalog endpoints.
type CategoryFacade interface {
	Categories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name, color, icon string) (*model.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, name, color, icon string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// ProductFacade covers product catalog endpoints.
type ProductFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id uuid.UUID) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, lines []model.CartLine) (*model.Order, error)
	Orders(ctx context.Context, actor model.Actor) ([]model.Order, error)
	Order(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Order, error)
	ChangeOrderStatus(ctx context.Context, actor model.Actor, id uuid.UUID, status string) (*model.Order, error)
}

// StockAlertFacade exposes derived stock alerts.
type StockAlertFacade interface {
	StockAlerts(ctx context.Context, includeResolved bool) ([]model.StockAlert, error)
}

// StoreFacade aggregates the full set of operations used across handlers.
type StoreFacade interface {
	AuthFacade
	UserFacade
	CategoryFacade
	ProductFacade
	OrderFacade
	StockAlertFacade
}
