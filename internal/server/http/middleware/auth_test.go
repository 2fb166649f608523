package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mireles/storefront/internal/domain/model"
	pkgAuth "github.com/mireles/storefront/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type resolverStub struct {
	actor model.Actor
	err   error
}

func (s resolverStub) Actor(ctx context.Context, token string) (model.Actor, error) {
	return s.actor, s.err
}

func protectedRouter(resolver ActorResolver, adminOnly bool) *gin.Engine {
	router := gin.New()
	group := router.Group("")
	group.Use(AuthRequired(resolver))
	if adminOnly {
		group.Use(AdminRequired())
	}
	group.GET("/protected", func(c *gin.Context) {
		val, _ := c.Get(ActorContextKey)
		actor := val.(model.Actor)
		c.JSON(http.StatusOK, gin.H{"user": actor.UserID.String()})
	})
	return router
}

func TestAuthRequiredMissingToken(t *testing.T) {
	router := protectedRouter(resolverStub{}, false)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	router := protectedRouter(resolverStub{err: pkgAuth.ErrInvalidToken}, false)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthRequiredResolverFailure(t *testing.T) {
	router := protectedRouter(resolverStub{err: errors.New("storage down")}, false)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestAuthRequiredBearerHeader(t *testing.T) {
	actor := model.Actor{UserID: uuid.New()}
	router := protectedRouter(resolverStub{actor: actor}, false)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAuthRequiredCookieFallback(t *testing.T) {
	actor := model.Actor{UserID: uuid.New()}
	router := protectedRouter(resolverStub{actor: actor}, false)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "storefront_token", Value: "good-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with cookie auth, got %d", w.Code)
	}
}

func TestAdminRequired(t *testing.T) {
	customer := protectedRouter(resolverStub{actor: model.Actor{UserID: uuid.New()}}, true)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	customer.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for customers, got %d", w.Code)
	}

	admin := protectedRouter(resolverStub{actor: model.Actor{UserID: uuid.New(), IsAdmin: true}}, true)
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token")
	w = httptest.NewRecorder()
	admin.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admins, got %d", w.Code)
	}
}

func TestSetAuthCookie(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	SetAuthCookie(c, "session")

	if got := w.Header().Get("Authorization"); got != "Bearer session" {
		t.Fatalf("unexpected authorization header %q", got)
	}
	cookie := w.Header().Get("Set-Cookie")
	if cookie == "" {
		t.Fatal("expected Set-Cookie header")
	}
}
