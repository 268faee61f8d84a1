// Package routes wires controllers, authentication, and permission
// guards onto the named router.
package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/forkful/forkful/app/controllers"
	"github.com/forkful/forkful/app/models"
	"github.com/forkful/forkful/app/repositories"
	"github.com/forkful/forkful/app/services"
	"github.com/forkful/forkful/pkg/acl"
	"github.com/forkful/forkful/pkg/ctx"
	"github.com/forkful/forkful/pkg/database"
	"github.com/forkful/forkful/pkg/metrics"
	"github.com/forkful/forkful/pkg/middleware"
	"github.com/forkful/forkful/pkg/router"
)

// Deps carries everything the route table needs.
type Deps struct {
	Table *acl.Table

	Auth        *controllers.AuthController
	Restaurants *controllers.RestaurantController
	Menus       *controllers.MenuController
	MenuItems   *controllers.MenuItemController
	Addresses   *controllers.AddressController
	Cart        *controllers.CartController
	Payments    *controllers.PaymentController

	AddressStore repositories.AddressStore
	CartService  *services.CartService
}

// Register mounts every route. Auth endpoints are public; the rest of
// /api runs behind Authenticate plus a permission guard.
func Register(r *router.Router, d Deps) {
	r.Get("/healthz", "healthz", healthz)
	r.Get("/metrics", "metrics", metrics.Handler())

	// ownsAddress answers own-scope checks on /api/addresses/{id}.
	ownsAddress := func(c context.Context, p acl.Principal, id string) (bool, error) {
		addr, err := d.AddressStore.FindByID(c, id)
		if err != nil {
			if de, ok := models.AsError(err); ok && de.Status == http.StatusNotFound {
				return false, nil
			}
			return false, err
		}
		return addr.AccountID.Hex() == p.AccountID, nil
	}

	// ownsItem answers own-scope checks on /api/cart/items/{id}.
	ownsItem := func(c context.Context, p acl.Principal, id string) (bool, error) {
		return d.CartService.OwnsItem(c, p.AccountID, id)
	}

	// Credential endpoints are rate limited to slow stuffing attempts.
	auth := r.Group("/api/auth", middleware.RateLimit(30, time.Minute))
	auth.Post("/signup", "auth.signup", ctx.Wrap(d.Auth.Signup))
	auth.Post("/signin", "auth.signin", ctx.Wrap(d.Auth.Signin))
	auth.Post("/signout", "auth.signout", ctx.Wrap(d.Auth.Signout), middleware.Authenticate)
	auth.Get("/user", "auth.user", ctx.Wrap(d.Auth.Profile), middleware.Authenticate,
		acl.Require(d.Table, acl.ActionRead, acl.ResourceProfile, "", nil))

	api := r.Group("/api", middleware.Authenticate)

	api.Get("/restaurants", "restaurants.index", ctx.Wrap(d.Restaurants.Index),
		acl.Require(d.Table, acl.ActionRead, acl.ResourceRestaurant, "", nil))
	api.Get("/restaurants/{id}", "restaurants.show", ctx.Wrap(d.Restaurants.Show),
		acl.Require(d.Table, acl.ActionRead, acl.ResourceRestaurant, "id", nil))
	api.Post("/restaurants", "restaurants.store", ctx.Wrap(d.Restaurants.Store),
		acl.Require(d.Table, acl.ActionCreate, acl.ResourceRestaurant, "", nil))
	api.Put("/restaurants/{id}", "restaurants.update", ctx.Wrap(d.Restaurants.Update),
		acl.Require(d.Table, acl.ActionUpdate, acl.ResourceRestaurant, "id", nil))
	api.Delete("/restaurants/{id}", "restaurants.destroy", ctx.Wrap(d.Restaurants.Destroy),
		acl.Require(d.Table, acl.ActionDelete, acl.ResourceRestaurant, "id", nil))

	api.Get("/restaurants/{id}/menus", "menus.index", ctx.Wrap(d.Menus.Index),
		acl.Require(d.Table, acl.ActionRead, acl.ResourceMenu, "", nil))
	api.Get("/menus/{id}", "menus.show", ctx.Wrap(d.Menus.Show),
		acl.Require(d.Table, acl.ActionRead, acl.ResourceMenu, "id", nil))
	api.Post("/menus", "menus.store", ctx.Wrap(d.Menus.Store),
		acl.Require(d.Table, acl.ActionCreate, acl.ResourceMenu, "", nil))
	api.Put("/menus/{id}", "menus.update", ctx.Wrap(d.Menus.Update),
		acl.Require(d.Table, acl.ActionUpdate, acl.ResourceMenu, "id", nil))
	api.Delete("/menus/{id}", "menus.destroy", ctx.Wrap(d.Menus.Destroy),
		acl.Require(d.Table, acl.ActionDelete, acl.ResourceMenu, "id", nil))

	api.Get("/menus/{id}/menu-items", "menu-items.index", ctx.Wrap(d.MenuItems.Index),
		acl.Require(d.Table, acl.ActionRead, acl.ResourceMenuItem, "", nil))
	api.Get("/menu-items/{id}", "menu-items.show", ctx.Wrap(d.MenuItems.Show),
		acl.Require(d.Table, acl.ActionRead, acl.ResourceMenuItem, "id", nil))
	api.Post("/menu-items", "menu-items.store", ctx.Wrap(d.MenuItems.Store),
		acl.Require(d.Table, acl.ActionCreate, acl.ResourceMenuItem, "", nil))
	api.Put("/menu-items/{id}", "menu-items.update", ctx.Wrap(d.MenuItems.Update),
		acl.Require(d.Table, acl.ActionUpdate, acl.ResourceMenuItem, "id", nil))
	api.Post("/menu-items/{id}/image", "menu-items.image", ctx.Wrap(d.MenuItems.UploadImage),
		acl.Require(d.Table, acl.ActionUpdate, acl.ResourceMenuItem, "id", nil))
	api.Delete("/menu-items/{id}", "menu-items.destroy", ctx.Wrap(d.MenuItems.Destroy),
		acl.Require(d.Table, acl.ActionDelete, acl.ResourceMenuItem, "id", nil))
	// Image downloads stay public so menus render without a session.
	r.Get("/api/menu-items/{id}/image", "menu-items.image.download", ctx.Wrap(d.MenuItems.DownloadImage))

	api.Get("/addresses", "addresses.index", ctx.Wrap(d.Addresses.Index),
		acl.Require(d.Table, acl.ActionRead, acl.ResourceAddress, "", nil))
	api.Post("/addresses", "addresses.store", ctx.Wrap(d.Addresses.Store),
		acl.Require(d.Table, acl.ActionCreate, acl.ResourceAddress, "", nil))
	api.Get("/addresses/{id}", "addresses.show", ctx.Wrap(d.Addresses.Show),
		acl.Require(d.Table, acl.ActionRead, acl.ResourceAddress, "id", ownsAddress))
	api.Put("/addresses/{id}", "addresses.update", ctx.Wrap(d.Addresses.Update),
		acl.Require(d.Table, acl.ActionUpdate, acl.ResourceAddress, "id", ownsAddress))
	api.Delete("/addresses/{id}", "addresses.destroy", ctx.Wrap(d.Addresses.Destroy),
		acl.Require(d.Table, acl.ActionDelete, acl.ResourceAddress, "id", ownsAddress))

	api.Get("/cart", "cart.show", ctx.Wrap(d.Cart.Show),
		acl.Require(d.Table, acl.ActionRead, acl.ResourceCart, "", nil))
	api.Post("/cart/items", "cart.items.store", ctx.Wrap(d.Cart.AddItem),
		acl.Require(d.Table, acl.ActionCreate, acl.ResourceItem, "", nil))
	api.Put("/cart/items/{id}", "cart.items.update", ctx.Wrap(d.Cart.UpdateItem),
		acl.Require(d.Table, acl.ActionUpdate, acl.ResourceItem, "id", ownsItem))
	api.Delete("/cart/items/{id}", "cart.items.destroy", ctx.Wrap(d.Cart.RemoveItem),
		acl.Require(d.Table, acl.ActionDelete, acl.ResourceItem, "id", ownsItem))

	api.Post("/payments", "payments.store", ctx.Wrap(d.Payments.Store),
		acl.Require(d.Table, acl.ActionCreate, acl.ResourcePayment, "", nil))
	// History is implicitly scoped to the principal in the controller.
	api.Get("/payments", "payments.index", ctx.Wrap(d.Payments.Index))
}

func healthz(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := database.Ping(r.Context()); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write([]byte(`{"status":"` + status + `"}`)) //nolint:errcheck
}
