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

func TestUserGetAccessRules(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	usr := users.Add(&model.User{Email: "ada@example.com"})
	uc := usecase.NewUserUseCase(users)

	if _, err := uc.Get(context.Background(), model.Actor{UserID: usr.ID}, usr.ID); err != nil {
		t.Fatalf("self read failed: %v", err)
	}
	if _, err := uc.Get(context.Background(), model.Actor{UserID: uuid.New(), IsAdmin: true}, usr.ID); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
	if _, err := uc.Get(context.Background(), model.Actor{UserID: uuid.New()}, usr.ID); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for strangers, got %v", err)
	}
}

func TestUpdateProfileTrimsStrings(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	usr := users.Add(&model.User{Email: "ada@example.com", Phone: "old"})
	uc := usecase.NewUserUseCase(users)

	city := "  Utrecht  "
	updated, err := uc.UpdateProfile(context.Background(), usr.ID, model.ProfileUpdate{DeliveryCity: &city})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.DeliveryCity != "Utrecht" {
		t.Fatalf("expected trimmed city, got %q", updated.DeliveryCity)
	}
	if updated.Phone != "old" {
		t.Fatal("nil fields must stay untouched")
	}
}

func TestSavePushTokenValidatesAndInfersType(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	usr := users.Add(&model.User{Email: "ada@example.com"})
	uc := usecase.NewUserUseCase(users)

	if err := uc.SavePushToken(context.Background(), usr.ID, "", ""); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for empty token, got %v", err)
	}

	if err := uc.SavePushToken(context.Background(), usr.ID, "ExponentPushToken[xyz]", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.PushTokenType != "expo" {
		t.Fatalf("expected inferred expo type, got %q", usr.PushTokenType)
	}

	if err := uc.SavePushToken(context.Background(), usr.ID, "raw-device-token", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.PushTokenType != "fcm" {
		t.Fatalf("expected inferred fcm type, got %q", usr.PushTokenType)
	}

	if err := uc.SavePushToken(context.Background(), usr.ID, "some-token", "expo"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.PushTokenType != "expo" {
		t.Fatalf("explicit type must win, got %q", usr.PushTokenType)
	}
}
