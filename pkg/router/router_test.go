package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/forkful/forkful/pkg/router"
)

func ok(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestNamedRoutes(t *testing.T) {
	r := router.New()
	r.Get("/restaurants/{id}", "restaurants.show", ok)
	r.Post("/restaurants", "restaurants.store", ok)

	path, found := r.Path("restaurants.show")
	if !found {
		t.Fatal("route name not recorded")
	}
	if path != "/restaurants/{id}" {
		t.Errorf("path = %q", path)
	}

	if got := len(r.Routes()); got != 2 {
		t.Errorf("routes = %d, want 2", got)
	}
}

func TestURLSubstitution(t *testing.T) {
	r := router.New()
	r.Get("/menus/{menuID}/items/{id}", "menu-items.show", ok)

	url, err := r.URL("menu-items.show", map[string]string{"menuID": "m1", "id": "i2"})
	if err != nil {
		t.Fatalf("URL failed: %v", err)
	}
	if url != "/menus/m1/items/i2" {
		t.Errorf("url = %q", url)
	}

	if _, err := r.URL("menu-items.show", map[string]string{"menuID": "m1"}); err == nil {
		t.Error("missing param accepted")
	}
	if _, err := r.URL("no.such.route", nil); err == nil {
		t.Error("unknown route accepted")
	}
}

func TestGroupPrefixAndMiddleware(t *testing.T) {
	r := router.New()
	var order []string

	mw := func(tag string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, req)
			})
		}
	}

	api := r.Group("/api", mw("group"))
	api.Get("/ping", "ping", ok, mw("route"))

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(order) != 2 || order[0] != "group" || order[1] != "route" {
		t.Errorf("middleware order = %v", order)
	}

	if path, _ := r.Path("ping"); path != "/api/ping" {
		t.Errorf("group path = %q", path)
	}
}

func TestMethodRouting(t *testing.T) {
	r := router.New()
	r.Put("/things/{id}", "things.update", ok)

	req := httptest.NewRequest(http.MethodGet, "/things/1", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
