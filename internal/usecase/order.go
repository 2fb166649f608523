package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/mireles/storefront/internal/domain/errors"
	"github.com/mireles/storefront/internal/domain/model"
	"github.com/mireles/storefront/internal/domain/repository"
)

// OrderUseCase encapsulates order creation and the status state machine.
type OrderUseCase struct {
	orders   repository.OrderRepository
	users    repository.UserRepository
	notifier Notifier
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, users repository.UserRepository, notifier Notifier) *OrderUseCase {
	return &OrderUseCase{orders: orders, users: users, notifier: notifier}
}

// Place creates an order from normalized cart lines. The total is computed
// here from the lines; a client-supplied total is never consulted. The
// placing user's delivery profile must be complete and is snapshotted into
// the order.
func (u *OrderUseCase) Place(ctx context.Context, userID uuid.UUID, lines []model.CartLine) (*model.Order, error) {
	if len(lines) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !usr.HasCompleteDeliveryProfile() {
		return nil, domainErrors.ErrIncompleteProfile
	}

	items := make([]model.OrderItem, 0, len(lines))
	for _, line := range lines {
		productID, err := uuid.Parse(line.ProductRef)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domainErrors.ErrInvalidReference, line.ProductRef)
		}
		quantity := line.Quantity
		if quantity < 1 {
			quantity = 1
		}
		price := line.Price
		if price < 0 {
			price = 0
		}
		items = append(items, model.OrderItem{
			ID:        uuid.New(),
			ProductID: productID,
			Name:      line.Name,
			Price:     price,
			Image:     line.Image,
			Quantity:  quantity,
		})
	}

	order := &model.Order{
		ID:               uuid.New(),
		UserID:           usr.ID,
		Items:            items,
		Status:           model.OrderStatusPending,
		TotalPrice:       model.TotalOf(items),
		ShippingAddress1: usr.DeliveryAddress1,
		ShippingAddress2: usr.DeliveryAddress2,
		City:             usr.DeliveryCity,
		Zip:              usr.DeliveryZip,
		Country:          usr.DeliveryCountry,
		Phone:            usr.Phone,
		DateOrdered:      time.Now(),
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	// Best effort: a broadcast failure must not fail the checkout.
	_ = broadcastToAdmins(ctx, u.users, u.notifier, model.Notification{
		Title: "New order placed",
		Body:  fmt.Sprintf("Order %s has been placed.", created.ID),
		Data:  map[string]string{"orderId": created.ID.String()},
	})

	return created, nil
}

// List returns all orders for admins and the actor's own orders otherwise,
// newest first.
func (u *OrderUseCase) List(ctx context.Context, actor model.Actor) ([]model.Order, error) {
	if actor.IsAdmin {
		return u.orders.ListAll(ctx)
	}
	return u.orders.ListByUser(ctx, actor.UserID)
}

// Get returns one order, visible to its owner and to admins.
func (u *OrderUseCase) Get(ctx context.Context, actor model.Actor, id uuid.UUID) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin && order.UserID != actor.UserID {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}

// ChangeStatus applies a status transition requested by actor. Checks run in
// a fixed order against a fresh read of the order: normalize the requested
// value, authorize the actor, reject finalized orders, treat same-status as
// a silent no-op, then consult the role transition table. On success the
// owner is notified fire-and-forget.
func (u *OrderUseCase) ChangeStatus(ctx context.Context, actor model.Actor, orderID uuid.UUID, rawStatus string) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	requested, ok := model.NormalizeStatus(rawStatus)
	if !ok {
		return nil, domainErrors.ErrInvalidStatus
	}

	isOwner := order.UserID == actor.UserID
	if !actor.IsAdmin && !isOwner {
		return nil, domainErrors.ErrForbidden
	}

	current, _ := model.NormalizeStatus(string(order.Status))

	if current.Final() {
		return nil, domainErrors.ErrOrderFinalized
	}

	if requested == current {
		return order, nil
	}

	if !model.CanTransition(current, requested, model.RoleOf(actor)) {
		return nil, domainErrors.ErrStatusNotAllowed
	}

	updated, err := u.orders.UpdateStatus(ctx, order.ID, requested)
	if err != nil {
		return nil, err
	}

	u.notifyOwner(ctx, updated)

	return updated, nil
}

func (u *OrderUseCase) notifyOwner(ctx context.Context, order *model.Order) {
	owner, err := u.users.GetByID(ctx, order.UserID)
	if err != nil {
		return
	}
	recipient, ok := owner.Recipient()
	if !ok {
		return
	}
	u.notifier.Notify([]model.PushRecipient{recipient}, model.Notification{
		Title: "Order status updated",
		Body:  fmt.Sprintf("Order %s is now %s.", order.ID, order.Status),
		Data:  map[string]string{"orderId": order.ID.String(), "status": string(order.Status)},
	})
}
