package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/mireles/storefront/internal/domain/errors"
	"github.com/mireles/storefront/internal/domain/model"
	pkgAuth "github.com/mireles/storefront/internal/pkg/auth"
	testhelpers "github.com/mireles/storefront/internal/test"
	"github.com/mireles/storefront/internal/usecase"
)

func newAuthUseCase(users *testhelpers.UserRepositoryStub) *usecase.AuthUseCase {
	return usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{})
}

func TestRegisterRejectsBlankFields(t *testing.T) {
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub())

	cases := []usecase.RegisterParams{
		{Email: "a@b.c", Password: "pw", Phone: "1"},
		{Name: "Ada", Password: "pw", Phone: "1"},
		{Name: "Ada", Email: "a@b.c", Phone: "1"},
		{Name: "Ada", Email: "a@b.c", Password: "pw"},
		{Name: "  ", Email: "a@b.c", Password: "pw", Phone: "1"},
	}
	for _, params := range cases {
		if _, err := uc.Register(context.Background(), params); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("expected invalid credentials for %+v, got %v", params, err)
		}
	}
}

func TestRegisterNormalizesEmailAndHashesPassword(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	uc := newAuthUseCase(users)

	usr, err := uc.Register(context.Background(), usecase.RegisterParams{
		Name:     "Ada",
		Email:    "  Ada@Example.COM ",
		Password: "secret",
		Phone:    "123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.Email != "ada@example.com" {
		t.Fatalf("expected lowercased email, got %q", usr.Email)
	}
	if usr.PasswordHash != "hash:secret" {
		t.Fatalf("password must be stored hashed, got %q", usr.PasswordHash)
	}
	if usr.PasswordHash == "secret" {
		t.Fatal("plaintext password stored")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	users.Add(&model.User{Email: "ada@example.com"})
	uc := newAuthUseCase(users)

	_, err := uc.Register(context.Background(), usecase.RegisterParams{
		Name: "Ada", Email: "ada@example.com", Password: "pw", Phone: "1",
	})
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	users.Add(&model.User{Email: "ada@example.com", PasswordHash: "hash:secret"})
	uc := newAuthUseCase(users)

	if _, _, err := uc.Authenticate(context.Background(), "ada@example.com", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for wrong password, got %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "ghost@example.com", "secret"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("unknown users must look like bad credentials, got %v", err)
	}

	usr, token, err := uc.Authenticate(context.Background(), "ADA@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.Email != "ada@example.com" || token == "" {
		t.Fatalf("expected user with token, got %v %q", usr, token)
	}
}

func TestActorReadsAdminFlagFromStore(t *testing.T) {
	users := testhelpers.NewUserRepositoryStub()
	usr := users.Add(&model.User{Email: "ada@example.com"})
	uc := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{UserID: usr.ID})

	actor, err := uc.Actor(context.Background(), "token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if actor.IsAdmin {
		t.Fatal("expected customer actor")
	}

	// Promotion takes effect without reissuing the token.
	usr.IsAdmin = true
	actor, err = uc.Actor(context.Background(), "token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !actor.IsAdmin {
		t.Fatal("actor must reflect the stored admin flag")
	}
}

func TestActorRejectsUnknownUser(t *testing.T) {
	uc := usecase.NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{UserID: uuid.New()})

	if _, err := uc.Actor(context.Background(), "token"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestActorRejectsEmptyToken(t *testing.T) {
	uc := newAuthUseCase(testhelpers.NewUserRepositoryStub())

	if _, err := uc.Actor(context.Background(), ""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}
