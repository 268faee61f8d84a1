package acl_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/forkful/forkful/pkg/acl"
)

func guardedRouter(guard func(http.Handler) http.Handler, p *acl.Principal) *chi.Mux {
	r := chi.NewRouter()
	if p != nil {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(acl.WithPrincipal(req.Context(), *p)))
			})
		})
	}
	r.With(guard).Delete("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func doDelete(t *testing.T, h http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/things/abc123", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRequireNoPrincipal(t *testing.T) {
	table := acl.DefaultTable()
	guard := acl.Require(table, acl.ActionDelete, acl.ResourceRestaurant, "id", nil)

	rec := doDelete(t, guardedRouter(guard, nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireDeniesUserCatalogWrite(t *testing.T) {
	table := acl.DefaultTable()
	guard := acl.Require(table, acl.ActionDelete, acl.ResourceRestaurant, "id", nil)
	p := acl.Principal{AccountID: "u1", Role: acl.RoleUser}

	rec := doDelete(t, guardedRouter(guard, &p))
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRequireAllowsAdminCatalogWrite(t *testing.T) {
	table := acl.DefaultTable()
	guard := acl.Require(table, acl.ActionDelete, acl.ResourceRestaurant, "id", nil)
	p := acl.Principal{AccountID: "a1", Role: acl.RoleAdmin}

	rec := doDelete(t, guardedRouter(guard, &p))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireOwnScopeForeignResource(t *testing.T) {
	table := acl.DefaultTable()
	own := func(ctx context.Context, p acl.Principal, id string) (bool, error) {
		return false, nil
	}
	guard := acl.Require(table, acl.ActionDelete, acl.ResourceAddress, "id", own)
	p := acl.Principal{AccountID: "u1", Role: acl.RoleUser}

	rec := doDelete(t, guardedRouter(guard, &p))
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestRequireOwnScopeOwnedResource(t *testing.T) {
	table := acl.DefaultTable()
	var gotID string
	own := func(ctx context.Context, p acl.Principal, id string) (bool, error) {
		gotID = id
		return true, nil
	}
	guard := acl.Require(table, acl.ActionDelete, acl.ResourceAddress, "id", own)
	p := acl.Principal{AccountID: "u1", Role: acl.RoleUser}

	rec := doDelete(t, guardedRouter(guard, &p))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if gotID != "abc123" {
		t.Errorf("predicate got id %q, want abc123", gotID)
	}
}

func TestRequireOwnScopePredicateError(t *testing.T) {
	table := acl.DefaultTable()
	own := func(ctx context.Context, p acl.Principal, id string) (bool, error) {
		return false, errors.New("store is down")
	}
	guard := acl.Require(table, acl.ActionDelete, acl.ResourceAddress, "id", own)
	p := acl.Principal{AccountID: "u1", Role: acl.RoleUser}

	rec := doDelete(t, guardedRouter(guard, &p))
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestRequireAnyScopeSkipsPredicate(t *testing.T) {
	table := acl.DefaultTable()
	called := false
	own := func(ctx context.Context, p acl.Principal, id string) (bool, error) {
		called = true
		return false, nil
	}
	// Admin deletes profiles role-wide, so the own predicate is irrelevant.
	guard := acl.Require(table, acl.ActionDelete, acl.ResourceProfile, "id", own)
	p := acl.Principal{AccountID: "a1", Role: acl.RoleAdmin}

	rec := doDelete(t, guardedRouter(guard, &p))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if called {
		t.Error("ownership predicate ran for an any-scope grant")
	}
}
