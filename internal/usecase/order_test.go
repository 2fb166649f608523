package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/mireles/storefront/internal/domain/errors"
	"github.com/mireles/storefront/internal/domain/model"
	testhelpers "github.com/mireles/storefront/internal/test"
	"github.com/mireles/storefront/internal/usecase"
)

func completeUser() *model.User {
	return &model.User{
		ID:               uuid.New(),
		Name:             "Ada",
		Email:            "ada@example.com",
		Phone:            "123456",
		DeliveryAddress1: "Main st 1",
		DeliveryCity:     "Utrecht",
		DeliveryZip:      "3511",
		DeliveryCountry:  "NL",
	}
}

func TestOrderPlaceRejectsEmptyCart(t *testing.T) {
	uc := usecase.NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, testhelpers.NewUserRepositoryStub(), &testhelpers.NotifierRecorder{})

	if _, err := uc.Place(context.Background(), uuid.New(), nil); !errors.Is(err, domainErrors.ErrEmptyOrder) {
		t.Fatalf("expected empty order error, got %v", err)
	}
}

func TestOrderPlaceRequiresCompleteProfile(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	usr := users.Add(&model.User{Email: "bare@example.com"})
	uc := usecase.NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, users, &testhelpers.NotifierRecorder{})

	lines := []model.CartLine{{ProductRef: uuid.NewString(), Quantity: 1}}
	if _, err := uc.Place(context.Background(), usr.ID, lines); !errors.Is(err, domainErrors.ErrIncompleteProfile) {
		t.Fatalf("expected incomplete profile error, got %v", err)
	}
}

func TestOrderPlaceRejectsMalformedProductReference(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	usr := users.Add(completeUser())
	orders := &testhelpers.OrderRepositoryStub{}
	uc := usecase.NewOrderUseCase(orders, users, &testhelpers.NotifierRecorder{})

	lines := []model.CartLine{{ProductRef: "not-a-uuid", Quantity: 1}}
	_, err := uc.Place(context.Background(), usr.ID, lines)
	if !errors.Is(err, domainErrors.ErrInvalidReference) {
		t.Fatalf("expected invalid reference error, got %v", err)
	}
	if len(orders.Created) != 0 {
		t.Fatal("no order must be persisted for a malformed reference")
	}
}

func TestOrderPlaceComputesTotalAndSnapshotsProfile(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	usr := users.Add(completeUser())
	users.Recipients = []model.PushRecipient{{Token: "ExponentPushToken[abc]", Type: "expo"}}
	orders := &testhelpers.OrderRepositoryStub{}
	notifier := &testhelpers.NotifierRecorder{}
	uc := usecase.NewOrderUseCase(orders, users, notifier)

	lines := []model.CartLine{
		{ProductRef: uuid.NewString(), Name: "Beans", Price: 2.5, Quantity: 4},
		{ProductRef: uuid.NewString(), Name: "Rice", Price: 3, Quantity: 0},
	}
	order, err := uc.Place(context.Background(), usr.ID, lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.Status != model.OrderStatusPending {
		t.Fatalf("new orders start pending, got %s", order.Status)
	}
	// Quantity 0 is clamped to 1, so 2.5*4 + 3*1.
	if order.TotalPrice != 13 {
		t.Fatalf("expected total 13, got %v", order.TotalPrice)
	}
	if order.Items[1].Quantity != 1 {
		t.Fatalf("expected clamped quantity 1, got %d", order.Items[1].Quantity)
	}
	if order.ShippingAddress1 != usr.DeliveryAddress1 || order.Phone != usr.Phone || order.Country != usr.DeliveryCountry {
		t.Fatal("order must snapshot the delivery profile")
	}
	if notifier.Count() != 1 {
		t.Fatalf("expected one admin broadcast, got %d", notifier.Count())
	}
	call, _ := notifier.Last()
	if call.Notification.Title != "New order placed" {
		t.Fatalf("unexpected notification title %q", call.Notification.Title)
	}
}

func TestOrderPlaceSurvivesBroadcastFailure(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	usr := users.Add(completeUser())
	users.AdminRecipientsFn = func(context.Context) ([]model.PushRecipient, error) {
		return nil, errors.New("recipients unavailable")
	}
	uc := usecase.NewOrderUseCase(&testhelpers.OrderRepositoryStub{}, users, &testhelpers.NotifierRecorder{})

	lines := []model.CartLine{{ProductRef: uuid.NewString(), Price: 1, Quantity: 1}}
	if _, err := uc.Place(context.Background(), usr.ID, lines); err != nil {
		t.Fatalf("broadcast failure must not fail checkout: %v", err)
	}
}

func TestOrderListScopesByRole(t *testing.T) {
	mine := uuid.New()
	other := uuid.New()
	orders := &testhelpers.OrderRepositoryStub{Orders: []model.Order{
		{ID: uuid.New(), UserID: mine},
		{ID: uuid.New(), UserID: other},
	}}
	uc := usecase.NewOrderUseCase(orders, testhelpers.NewUserRepositoryStub(), &testhelpers.NotifierRecorder{})

	own, err := uc.List(context.Background(), model.Actor{UserID: mine})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(own) != 1 || own[0].UserID != mine {
		t.Fatalf("customer must only see own orders, got %d", len(own))
	}

	all, err := uc.List(context.Background(), model.Actor{UserID: mine, IsAdmin: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin must see all orders, got %d", len(all))
	}
}

func TestOrderGetForbidsStrangers(t *testing.T) {
	owner := uuid.New()
	orders := &testhelpers.OrderRepositoryStub{Orders: []model.Order{{ID: uuid.New(), UserID: owner}}}
	uc := usecase.NewOrderUseCase(orders, testhelpers.NewUserRepositoryStub(), &testhelpers.NotifierRecorder{})

	id := orders.Orders[0].ID
	if _, err := uc.Get(context.Background(), model.Actor{UserID: uuid.New()}, id); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := uc.Get(context.Background(), model.Actor{UserID: owner}, id); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if _, err := uc.Get(context.Background(), model.Actor{UserID: uuid.New(), IsAdmin: true}, id); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
}

func newStatusFixture(t *testing.T, status model.OrderStatus) (*usecase.OrderUseCase, *testhelpers.OrderRepositoryStub, *testhelpers.NotifierRecorder, model.Order) {
	t.Helper()
	users := testhelpers.NewUserRepositoryStub()
	owner := users.Add(completeUser())
	owner.PushToken = "ExponentPushToken[owner]"
	owner.PushTokenType = "expo"
	orders := &testhelpers.OrderRepositoryStub{Orders: []model.Order{{ID: uuid.New(), UserID: owner.ID, Status: status}}}
	notifier := &testhelpers.NotifierRecorder{}
	return usecase.NewOrderUseCase(orders, users, notifier), orders, notifier, orders.Orders[0]
}

func TestChangeStatusRejectsUnknownValue(t *testing.T) {
	uc, _, _, order := newStatusFixture(t, model.OrderStatusPending)
	admin := model.Actor{UserID: uuid.New(), IsAdmin: true}

	if _, err := uc.ChangeStatus(context.Background(), admin, order.ID, "teleported"); !errors.Is(err, domainErrors.ErrInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
}

func TestChangeStatusForbidsStrangers(t *testing.T) {
	uc, _, _, order := newStatusFixture(t, model.OrderStatusPending)
	stranger := model.Actor{UserID: uuid.New()}

	if _, err := uc.ChangeStatus(context.Background(), stranger, order.ID, "cancelled"); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestChangeStatusFinalizedBeatsNoOp(t *testing.T) {
	uc, orders, _, order := newStatusFixture(t, model.OrderStatusDelivered)
	admin := model.Actor{UserID: uuid.New(), IsAdmin: true}

	// Re-sending the current final status is still a conflict, not a no-op.
	if _, err := uc.ChangeStatus(context.Background(), admin, order.ID, "delivered"); !errors.Is(err, domainErrors.ErrOrderFinalized) {
		t.Fatalf("expected finalized error, got %v", err)
	}
	if len(orders.UpdateCalls) != 0 {
		t.Fatal("finalized orders must never be written")
	}
}

func TestChangeStatusSameStatusIsSilentNoOp(t *testing.T) {
	uc, orders, notifier, order := newStatusFixture(t, model.OrderStatusShipped)
	admin := model.Actor{UserID: uuid.New(), IsAdmin: true}

	got, err := uc.ChangeStatus(context.Background(), admin, order.ID, "shipped")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != model.OrderStatusShipped {
		t.Fatalf("expected unchanged order, got %s", got.Status)
	}
	if len(orders.UpdateCalls) != 0 || notifier.Count() != 0 {
		t.Fatal("a no-op must neither write nor notify")
	}
}

func TestChangeStatusCustomerCannotShip(t *testing.T) {
	uc, _, _, order := newStatusFixture(t, model.OrderStatusPending)
	owner := model.Actor{UserID: order.UserID}

	if _, err := uc.ChangeStatus(context.Background(), owner, order.ID, "shipped"); !errors.Is(err, domainErrors.ErrStatusNotAllowed) {
		t.Fatalf("expected transition rejection, got %v", err)
	}
}

func TestChangeStatusAdminShipsAndOwnerIsNotified(t *testing.T) {
	uc, orders, notifier, order := newStatusFixture(t, model.OrderStatusPending)
	admin := model.Actor{UserID: uuid.New(), IsAdmin: true}

	got, err := uc.ChangeStatus(context.Background(), admin, order.ID, "shipped")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != model.OrderStatusShipped {
		t.Fatalf("expected shipped, got %s", got.Status)
	}
	if len(orders.UpdateCalls) != 1 {
		t.Fatalf("expected one status write, got %d", len(orders.UpdateCalls))
	}
	call, ok := notifier.Last()
	if !ok {
		t.Fatal("expected the owner to be notified")
	}
	if len(call.Recipients) != 1 || call.Recipients[0].Token != "ExponentPushToken[owner]" {
		t.Fatalf("unexpected recipients %+v", call.Recipients)
	}
}

func TestChangeStatusCustomerDeliversWithLegacyCode(t *testing.T) {
	uc, _, _, order := newStatusFixture(t, model.OrderStatusShipped)
	owner := model.Actor{UserID: order.UserID}

	got, err := uc.ChangeStatus(context.Background(), owner, order.ID, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != model.OrderStatusDelivered {
		t.Fatalf("legacy code 1 must deliver, got %s", got.Status)
	}
}

func TestChangeStatusAdminCannotDeliver(t *testing.T) {
	uc, _, _, order := newStatusFixture(t, model.OrderStatusShipped)
	admin := model.Actor{UserID: uuid.New(), IsAdmin: true}

	if _, err := uc.ChangeStatus(context.Background(), admin, order.ID, "delivered"); !errors.Is(err, domainErrors.ErrStatusNotAllowed) {
		t.Fatalf("only the customer confirms delivery, got %v", err)
	}
}

func TestChangeStatusMissingOrder(t *testing.T) {
	uc, _, _, _ := newStatusFixture(t, model.OrderStatusPending)
	admin := model.Actor{UserID: uuid.New(), IsAdmin: true}

	if _, err := uc.ChangeStatus(context.Background(), admin, uuid.New(), "shipped"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
