package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmorhart/inkwell/internal/handler"
	"github.com/jmorhart/inkwell/internal/repository/sqlite"
	"github.com/jmorhart/inkwell/internal/service"
)

const testSessionSecret = "test-secret-for-handler-tests"

func newTestServices(t *testing.T) (*service.AuthService, *service.PostService, *service.CommentService) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Bcrypt cost 4 for fast tests.
	return service.NewAuthService(db.Users(), testSessionSecret, 4, time.Hour),
		service.NewPostService(db.Posts(), db.Comments()),
		service.NewCommentService(db.Comments(), db.Posts(), db.Users())
}

func TestOptionalAuth_ValidToken(t *testing.T) {
	auth, _, _ := newTestServices(t)
	ctx := context.Background()

	user, token, err := auth.Register(ctx, "Valid User", "valid@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	var gotName string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u := handler.UserFromContext(r.Context()); u != nil {
			gotName = u.Name
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	w := httptest.NewRecorder()

	handler.OptionalAuth(auth, inner).ServeHTTP(w, req)

	if gotName != user.Name {
		t.Fatalf("expected user %q in context, got %q", user.Name, gotName)
	}
}

func TestOptionalAuth_NoToken(t *testing.T) {
	auth, _, _ := newTestServices(t)

	var called bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if u := handler.UserFromContext(r.Context()); u != nil {
			t.Fatalf("expected anonymous context, got user %+v", u)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.OptionalAuth(auth, inner).ServeHTTP(w, req)

	if !called {
		t.Fatal("expected inner handler to run for anonymous request")
	}
}

func TestRequireAdmin_Anonymous(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler must not run for anonymous caller")
	})

	req := httptest.NewRequest(http.MethodGet, "/new-post", nil)
	w := httptest.NewRecorder()

	// No OptionalAuth in front: context has no user at all. The gate
	// must answer 403, not panic or 500.
	handler.RequireAdmin(inner).ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for anonymous caller, got %d", w.Code)
	}
}

func TestRequireAdmin_RegularUser(t *testing.T) {
	auth, _, _ := newTestServices(t)
	ctx := context.Background()

	// First registrant is admin; the second is a regular user.
	if _, _, err := auth.Register(ctx, "Admin", "admin@example.com", "password123"); err != nil {
		t.Fatalf("Register admin: %v", err)
	}
	_, token, err := auth.Register(ctx, "Regular", "regular@example.com", "password123")
	if err != nil {
		t.Fatalf("Register regular: %v", err)
	}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler must not run for a regular user")
	})

	req := httptest.NewRequest(http.MethodGet, "/new-post", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	w := httptest.NewRecorder()

	handler.OptionalAuth(auth, handler.RequireAdmin(inner)).ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for regular user, got %d", w.Code)
	}
}

func TestRequireAdmin_Admin(t *testing.T) {
	auth, _, _ := newTestServices(t)

	_, token, err := auth.Register(context.Background(), "Admin", "admin@example.com", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	var called bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/new-post", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	w := httptest.NewRecorder()

	handler.OptionalAuth(auth, handler.RequireAdmin(inner)).ServeHTTP(w, req)

	if !called {
		t.Fatal("expected inner handler to run for admin")
	}
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.SecurityHeaders(inner).ServeHTTP(w, req)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected nosniff, got %q", got)
	}
	if got := w.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("expected DENY, got %q", got)
	}
}
