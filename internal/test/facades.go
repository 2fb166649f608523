package test

import (
	"context"

	"github.com/google/uuid"

	"github.com/mireles/storefront/internal/domain/model"
	"github.com/mireles/storefront/internal/usecase"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, usecase.RegisterParams) (*model.User, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ActorFn        func(context.Context, string) (model.Actor, error)
}

// Register returns the created user for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, params usecase.RegisterParams) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, params)
	}
	return &model.User{ID: uuid.New(), Name: params.Name, Email: params.Email, Phone: params.Phone}, nil
}

// Authenticate returns user and token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: uuid.New(), Email: email}, "token", nil
}

// Actor resolves tokens into a default customer identity.
func (s AuthFacadeStub) Actor(ctx context.Context, token string) (model.Actor, error) {
	if s.ActorFn != nil {
		return s.ActorFn(ctx, token)
	}
	return model.Actor{UserID: uuid.New()}, nil
}

// UserFacadeStub simulates profile endpoints.
type UserFacadeStub struct {
	UserFn          func(context.Context, model.Actor, uuid.UUID) (*model.User, error)
	UpdateProfileFn func(context.Context, uuid.UUID, model.ProfileUpdate) (*model.User, error)
	SavePushTokenFn func(context.Context, uuid.UUID, string, string) error
}

// User returns the requested profile.
func (s UserFacadeStub) User(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, actor, id)
	}
	return &model.User{ID: id}, nil
}

// UpdateProfile applies the stubbed update.
func (s UserFacadeStub) UpdateProfile(ctx context.Context, userID uuid.UUID, update model.ProfileUpdate) (*model.User, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, userID, update)
	}
	return &model.User{ID: userID}, nil
}

// SavePushToken records push tokens for the user.
func (s UserFacadeStub) SavePushToken(ctx context.Context, userID uuid.UUID, token, tokenType string) error {
	if s.SavePushTokenFn != nil {
		return s.SavePushTokenFn(ctx, userID, token, tokenType)
	}
	return nil
}

// CategoryFacadeStub simulates category catalog endpoints.
type CategoryFacadeStub struct {
	CategoriesFn     func(context.Context) ([]model.Category, error)
	CreateCategoryFn func(context.Context, string, string, string) (*model.Category, error)
	UpdateCategoryFn func(context.Context, uuid.UUID, string, string, string) (*model.Category, error)
	DeleteCategoryFn func(context.Context, uuid.UUID) error
}

func (s CategoryFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: uuid.New(), Name: "snacks"}}, nil
}

func (s CategoryFacadeStub) CreateCategory(ctx context.Context, name, color, icon string) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, name, color, icon)
	}
	return &model.Category{ID: uuid.New(), Name: name, Color: color, Icon: icon}, nil
}

func (s CategoryFacadeStub) UpdateCategory(ctx context.Context, id uuid.UUID, name, color, icon string) (*model.Category, error) {
	if s.UpdateCategoryFn != nil {
		return s.UpdateCategoryFn(ctx, id, name, color, icon)
	}
	return &model.Category{ID: id, Name: name, Color: color, Icon: icon}, nil
}

func (s CategoryFacadeStub) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

// ProductFacadeStub simulates product catalog endpoints.
type ProductFacadeStub struct {
	ProductsFn      func(context.Context) ([]model.Product, error)
	ProductFn       func(context.Context, uuid.UUID) (*model.Product, error)
	CreateProductFn func(context.Context, *model.Product) (*model.Product, error)
	UpdateProductFn func(context.Context, *model.Product) (*model.Product, error)
	DeleteProductFn func(context.Context, uuid.UUID) error
}

func (s ProductFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: uuid.New(), Name: "widget"}}, nil
}

func (s ProductFacadeStub) Product(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "widget"}, nil
}

func (s ProductFacadeStub) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return product, nil
}

func (s ProductFacadeStub) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, product)
	}
	return product, nil
}

func (s ProductFacadeStub) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceOrderFn        func(context.Context, uuid.UUID, []model.CartLine) (*model.Order, error)
	OrdersFn            func(context.Context, model.Actor) ([]model.Order, error)
	OrderFn             func(context.Context, model.Actor, uuid.UUID) (*model.Order, error)
	ChangeOrderStatusFn func(context.Context, model.Actor, uuid.UUID, string) (*model.Order, error)
}

func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID uuid.UUID, lines []model.CartLine) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, userID, lines)
	}
	return &model.Order{ID: uuid.New(), UserID: userID, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) Orders(ctx context.Context, actor model.Actor) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, actor)
	}
	return []model.Order{{ID: uuid.New(), UserID: actor.UserID, Status: model.OrderStatusPending}}, nil
}

func (s OrderFacadeStub) Order(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, actor, id)
	}
	return &model.Order{ID: id, UserID: actor.UserID, Status: model.OrderStatusPending}, nil
}

func (s OrderFacadeStub) ChangeOrderStatus(ctx context.Context, actor model.Actor, id uuid.UUID, status string) (*model.Order, error) {
	if s.ChangeOrderStatusFn != nil {
		return s.ChangeOrderStatusFn(ctx, actor, id, status)
	}
	return &model.Order{ID: id, UserID: actor.UserID, Status: model.OrderStatus(status)}, nil
}

// StockAlertFacadeStub exposes canned stock alerts.
type StockAlertFacadeStub struct {
	StockAlertsFn func(context.Context, bool) ([]model.StockAlert, error)
}

func (s StockAlertFacadeStub) StockAlerts(ctx context.Context, includeResolved bool) ([]model.StockAlert, error) {
	if s.StockAlertsFn != nil {
		return s.StockAlertsFn(ctx, includeResolved)
	}
	return []model.StockAlert{{ID: uuid.New(), Type: model.AlertTypeLow}}, nil
}

// StoreFacadeStub aggregates facade dependencies for HTTP layer tests.
type StoreFacadeStub struct {
	AuthFacadeStub
	UserFacadeStub
	CategoryFacadeStub
	ProductFacadeStub
	OrderFacadeStub
	StockAlertFacadeStub
}
