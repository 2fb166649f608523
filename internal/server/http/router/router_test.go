package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mireles/storefront/internal/domain/model"
	"github.com/mireles/storefront/internal/server/http/handlers"
	testhelpers "github.com/mireles/storefront/internal/test"
)

func newEngine(facade testhelpers.StoreFacadeStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(facade, logger)
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := newEngine(testhelpers.StoreFacadeStub{})

	body, _ := json.Marshal(map[string]string{"name": "Ada", "email": "ada@example.com", "password": "pw", "phone": "1"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for public product list, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for public category list, got %d", resp.Code)
	}
}

func TestSetupRequiresAuthForOrders(t *testing.T) {
	engine := newEngine(testhelpers.StoreFacadeStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 with token, got %d", resp.Code)
	}
}

func TestSetupAdminGating(t *testing.T) {
	customer := testhelpers.StoreFacadeStub{AuthFacadeStub: testhelpers.AuthFacadeStub{
		ActorFn: func(context.Context, string) (model.Actor, error) {
			return model.Actor{UserID: uuid.New()}, nil
		},
	}}
	engine := newEngine(customer)

	body, _ := json.Marshal(map[string]string{"name": "Snacks"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for customers, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/stock-alerts", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for customer stock alerts, got %d", resp.Code)
	}

	admin := testhelpers.StoreFacadeStub{AuthFacadeStub: testhelpers.AuthFacadeStub{
		ActorFn: func(context.Context, string) (model.Actor, error) {
			return model.Actor{UserID: uuid.New(), IsAdmin: true}, nil
		},
	}}
	engine = newEngine(admin)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/stock-alerts", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for admin stock alerts, got %d", resp.Code)
	}
}

var _ handlers.StoreFacade = testhelpers.StoreFacadeStub{}
