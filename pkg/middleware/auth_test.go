package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/forkful/forkful/pkg/acl"
	"github.com/forkful/forkful/pkg/middleware"
	"github.com/forkful/forkful/pkg/token"
)

func authHandler(t *testing.T) (http.Handler, *acl.Principal) {
	t.Helper()
	var seen acl.Principal
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := acl.PrincipalFromCtx(r.Context())
		if !ok {
			t.Error("handler ran without a principal in context")
		}
		seen = p
		w.WriteHeader(http.StatusOK)
	})
	return middleware.Authenticate(inner), &seen
}

func TestAuthenticateMissingToken(t *testing.T) {
	h, _ := authHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	h, _ := authHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	raw, err := token.Issue("id1", "a@b.co", "user", -time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	h, _ := authHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateValidToken(t *testing.T) {
	raw, err := token.Issue("id1", "a@b.co", "admin", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	h, seen := authHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seen.AccountID != "id1" || seen.Email != "a@b.co" || seen.Role != "admin" {
		t.Errorf("principal = %+v", *seen)
	}
}
