package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/mireles/storefront/internal/domain/model"
	"github.com/mireles/storefront/internal/usecase"
)

// StoreFacade aggregates the application use cases behind one surface
// consumed by the HTTP layer.
type StoreFacade struct {
	auth       *usecase.AuthUseCase
	users      *usecase.UserUseCase
	categories *usecase.CategoryUseCase
	products   *usecase.ProductUseCase
	orders     *usecase.OrderUseCase
	alerts     *usecase.StockAlertUseCase
}

// NewStoreFacade constructs StoreFacade.
func NewStoreFacade(
	auth *usecase.AuthUseCase,
	users *usecase.UserUseCase,
	categories *usecase.CategoryUseCase,
	products *usecase.ProductUseCase,
	orders *usecase.OrderUseCase,
	alerts *usecase.StockAlertUseCase,
) *StoreFacade {
	return &StoreFacade{
		auth:       auth,
		users:      users,
		categories: categories,
		products:   products,
		orders:     orders,
		alerts:     alerts,
	}
}

func (f *StoreFacade) Register(ctx context.Context, params usecase.RegisterParams) (*model.User, error) {
	return f.auth.Register(ctx, params)
}

func (f *StoreFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StoreFacade) Actor(ctx context.Context, token string) (model.Actor, error) {
	return f.auth.Actor(ctx, token)
}

func (f *StoreFacade) User(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.User, error) {
	return f.users.Get(ctx, actor, id)
}

func (f *StoreFacade) UpdateProfile(ctx context.Context, userID uuid.UUID, update model.ProfileUpdate) (*model.User, error) {
	return f.users.UpdateProfile(ctx, userID, update)
}

func (f *StoreFacade) SavePushToken(ctx context.Context, userID uuid.UUID, token, tokenType string) error {
	return f.users.SavePushToken(ctx, userID, token, tokenType)
}

func (f *StoreFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.categories.List(ctx)
}

func (f *StoreFacade) CreateCategory(ctx context.Context, name, color, icon string) (*model.Category, error) {
	return f.categories.Create(ctx, name, color, icon)
}

func (f *StoreFacade) UpdateCategory(ctx context.Context, id uuid.UUID, name, color, icon string) (*model.Category, error) {
	return f.categories.Update(ctx, id, name, color, icon)
}

func (f *StoreFacade) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return f.categories.Delete(ctx, id)
}

func (f *StoreFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.products.List(ctx)
}

func (f *StoreFacade) Product(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return f.products.Get(ctx, id)
}

func (f *StoreFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.products.Create(ctx, product)
}

func (f *StoreFacade) UpdateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.products.Update(ctx, product)
}

func (f *StoreFacade) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return f.products.Delete(ctx, id)
}

func (f *StoreFacade) PlaceOrder(ctx context.Context, userID uuid.UUID, lines []model.CartLine) (*model.Order, error) {
	return f.orders.Place(ctx, userID, lines)
}

func (f *StoreFacade) Orders(ctx context.Context, actor model.Actor) ([]model.Order, error) {
	return f.orders.List(ctx, actor)
}

func (f *StoreFacade) Order(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Order, error) {
	return f.orders.Get(ctx, actor, id)
}

func (f *StoreFacade) ChangeOrderStatus(ctx context.Context, actor model.Actor, id uuid.UUID, status string) (*model.Order, error) {
	return f.orders.ChangeStatus(ctx, actor, id, status)
}

func (f *StoreFacade) StockAlerts(ctx context.Context, includeResolved bool) ([]model.StockAlert, error) {
	return f.alerts.List(ctx, includeResolved)
}
