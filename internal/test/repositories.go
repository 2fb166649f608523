package test

import (
	"context"

	"github.com/google/uuid"

	domainErrors "github.com/mireles/storefront/internal/domain/errors"
	"github.com/mireles/storefront/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	ByEmail    map[string]*model.User
	ByID       map[uuid.UUID]*model.User
	Recipients []model.PushRecipient
	Err        error

	AdminRecipientsFn func(context.Context) ([]model.PushRecipient, error)
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		ByEmail: make(map[string]*model.User),
		ByID:    make(map[uuid.UUID]*model.User),
	}
}

// Add stores a user directly, bypassing Create bookkeeping.
func (s *UserRepositoryStub) Add(user *model.User) *model.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.ByEmail[user.Email] = user
	s.ByID[user.ID] = user
	return user
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.ByEmail == nil {
		s.ByEmail = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[uuid.UUID]*model.User)
	}
	if _, exists := s.ByEmail[user.Email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.ByEmail[user.Email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateProfile applies non-nil fields to the stored user.
func (s *UserRepositoryStub) UpdateProfile(ctx context.Context, id uuid.UUID, update model.ProfileUpdate) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.DeliveryAddress1 != nil {
		user.DeliveryAddress1 = *update.DeliveryAddress1
	}
	if update.DeliveryAddress2 != nil {
		user.DeliveryAddress2 = *update.DeliveryAddress2
	}
	if update.DeliveryCity != nil {
		user.DeliveryCity = *update.DeliveryCity
	}
	if update.DeliveryZip != nil {
		user.DeliveryZip = *update.DeliveryZip
	}
	if update.DeliveryCountry != nil {
		user.DeliveryCountry = *update.DeliveryCountry
	}
	if update.DeliveryLat != nil {
		user.DeliveryLat = update.DeliveryLat
	}
	if update.DeliveryLng != nil {
		user.DeliveryLng = update.DeliveryLng
	}
	return user, nil
}

// SetPushToken stores the token on an existing user.
func (s *UserRepositoryStub) SetPushToken(ctx context.Context, id uuid.UUID, token, tokenType string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.PushToken = token
	user.PushTokenType = tokenType
	return nil
}

// AdminRecipients returns the configured recipient list.
func (s *UserRepositoryStub) AdminRecipients(ctx context.Context) ([]model.PushRecipient, error) {
	if s.AdminRecipientsFn != nil {
		return s.AdminRecipientsFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Recipients, nil
}

// CategoryRepositoryStub allows tests to customize category behaviour.
type CategoryRepositoryStub struct {
	CreateFn  func(context.Context, *model.Category) (*model.Category, error)
	GetByIDFn func(context.Context, uuid.UUID) (*model.Category, error)
	ListFn    func(context.Context) ([]model.Category, error)
	UpdateFn  func(context.Context, *model.Category) (*model.Category, error)
	DeleteFn  func(context.Context, uuid.UUID) error

	Items []model.Category
}

func (s *CategoryRepositoryStub) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, category)
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	s.Items = append(s.Items, *category)
	return category, nil
}

func (s *CategoryRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Items, nil
}

func (s *CategoryRepositoryStub) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, category)
	}
	for i := range s.Items {
		if s.Items[i].ID == category.ID {
			s.Items[i] = *category
			return category, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *CategoryRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// ProductRepositoryStub allows tests to customize product behaviour.
type ProductRepositoryStub struct {
	CreateFn  func(context.Context, *model.Product) (*model.Product, error)
	GetByIDFn func(context.Context, uuid.UUID) (*model.Product, error)
	ListFn    func(context.Context) ([]model.Product, error)
	UpdateFn  func(context.Context, *model.Product) (*model.Product, error)
	DeleteFn  func(context.Context, uuid.UUID) error

	Items []model.Product
}

func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	s.Items = append(s.Items, *product)
	return product, nil
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Items, nil
}

func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	for i := range s.Items {
		if s.Items[i].ID == product.ID {
			s.Items[i] = *product
			return product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// StatusUpdateCall records an order status mutation.
type StatusUpdateCall struct {
	OrderID uuid.UUID
	Status  model.OrderStatus
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn      func(context.Context, uuid.UUID) (*model.Order, error)
	ListByUserFn   func(context.Context, uuid.UUID) ([]model.Order, error)
	ListAllFn      func(context.Context) ([]model.Order, error)
	UpdateStatusFn func(context.Context, uuid.UUID, model.OrderStatus) (*model.Order, error)

	Orders      []model.Order
	Created     []*model.Order
	UpdateCalls []StatusUpdateCall
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	s.Created = append(s.Created, order)
	s.Orders = append(s.Orders, *order)
	return order, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return &s.Orders[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	if s.ListByUserFn != nil {
		return s.ListByUserFn(ctx, userID)
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.ListAllFn != nil {
		return s.ListAllFn(ctx)
	}
	return s.Orders, nil
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	s.UpdateCalls = append(s.UpdateCalls, StatusUpdateCall{OrderID: id, Status: status})
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders[i].Status = status
			return &s.Orders[i], nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// StockAlertRepositoryStub tracks alert mutations in-memory.
type StockAlertRepositoryStub struct {
	UnresolvedFn  func(context.Context, uuid.UUID) ([]model.StockAlert, error)
	ResolveFn     func(context.Context, uuid.UUID, ...model.AlertType) error
	CreateFn      func(context.Context, *model.StockAlert) (*model.StockAlert, error)
	UpdateCountFn func(context.Context, uuid.UUID, int) error
	ListFn        func(context.Context, bool) ([]model.StockAlert, error)

	Alerts       []model.StockAlert
	ResolveCalls [][]model.AlertType
	CountCalls   []int
}

func (s *StockAlertRepositoryStub) UnresolvedByProduct(ctx context.Context, productID uuid.UUID) ([]model.StockAlert, error) {
	if s.UnresolvedFn != nil {
		return s.UnresolvedFn(ctx, productID)
	}
	var result []model.StockAlert
	for _, a := range s.Alerts {
		if a.ProductID == productID && !a.Resolved {
			result = append(result, a)
		}
	}
	return result, nil
}

func (s *StockAlertRepositoryStub) ResolveByTypes(ctx context.Context, productID uuid.UUID, types ...model.AlertType) error {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, productID, types...)
	}
	s.ResolveCalls = append(s.ResolveCalls, types)
	for i := range s.Alerts {
		if s.Alerts[i].ProductID != productID || s.Alerts[i].Resolved {
			continue
		}
		for _, t := range types {
			if s.Alerts[i].Type == t {
				s.Alerts[i].Resolved = true
			}
		}
	}
	return nil
}

func (s *StockAlertRepositoryStub) Create(ctx context.Context, alert *model.StockAlert) (*model.StockAlert, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, alert)
	}
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	s.Alerts = append(s.Alerts, *alert)
	return alert, nil
}

func (s *StockAlertRepositoryStub) UpdateCount(ctx context.Context, alertID uuid.UUID, countInStock int) error {
	if s.UpdateCountFn != nil {
		return s.UpdateCountFn(ctx, alertID, countInStock)
	}
	s.CountCalls = append(s.CountCalls, countInStock)
	for i := range s.Alerts {
		if s.Alerts[i].ID == alertID {
			s.Alerts[i].CountInStock = countInStock
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *StockAlertRepositoryStub) List(ctx context.Context, includeResolved bool) ([]model.StockAlert, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, includeResolved)
	}
	if includeResolved {
		return s.Alerts, nil
	}
	var result []model.StockAlert
	for _, a := range s.Alerts {
		if !a.Resolved {
			result = append(result, a)
		}
	}
	return result, nil
}
