// Package repositories is the persistence layer over MongoDB. Interfaces
// front every store so services can be tested against in-memory fakes.
//
// IDs cross this boundary as hex strings; implementations translate to
// ObjectIDs and answer a malformed id the same way as a missing document.
package repositories

import (
	"context"

	"github.com/forkful/forkful/app/models"
)

// AccountStore persists accounts.
type AccountStore interface {
	Create(ctx context.Context, a *models.Account) error
	FindByID(ctx context.Context, id string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	Update(ctx context.Context, a *models.Account) error
	// SetToken writes the last-issued-token pointer ("" clears it).
	SetToken(ctx context.Context, id, token string) error
	Delete(ctx context.Context, id string) error
}

// AddressStore persists delivery addresses.
type AddressStore interface {
	Create(ctx context.Context, a *models.Address) error
	FindByID(ctx context.Context, id string) (*models.Address, error)
	ListByAccount(ctx context.Context, accountID string) ([]models.Address, error)
	Update(ctx context.Context, a *models.Address) error
	Delete(ctx context.Context, id string) error
}

// RestaurantStore persists restaurants.
type RestaurantStore interface {
	Create(ctx context.Context, r *models.Restaurant) error
	FindByID(ctx context.Context, id string) (*models.Restaurant, error)
	List(ctx context.Context, page, limit int) ([]models.Restaurant, int64, error)
	Update(ctx context.Context, r *models.Restaurant) error
	Delete(ctx context.Context, id string) error
}

// MenuStore persists menus.
type MenuStore interface {
	Create(ctx context.Context, m *models.Menu) error
	FindByID(ctx context.Context, id string) (*models.Menu, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Menu, error)
	Update(ctx context.Context, m *models.Menu) error
	Delete(ctx context.Context, id string) error
}

// MenuItemStore persists priced catalog entries.
type MenuItemStore interface {
	Create(ctx context.Context, mi *models.MenuItem) error
	FindByID(ctx context.Context, id string) (*models.MenuItem, error)
	ListByMenu(ctx context.Context, menuID string) ([]models.MenuItem, error)
	Update(ctx context.Context, mi *models.MenuItem) error
	SetImageKey(ctx context.Context, id, key string) error
	Delete(ctx context.Context, id string) error
}

// CartStore persists carts. PushItem/PullItem rely on the store's atomic
// array operators; concurrent pushes for the same account are serialized
// by MongoDB, not by this process.
type CartStore interface {
	Create(ctx context.Context, accountID string) (*models.Cart, error)
	FindByAccount(ctx context.Context, accountID string) (*models.Cart, error)
	PushItem(ctx context.Context, accountID, itemID string) error
	PullItem(ctx context.Context, accountID, itemID string) error
	Delete(ctx context.Context, accountID string) error
}

// ItemStore persists cart line items.
type ItemStore interface {
	Create(ctx context.Context, it *models.Item) error
	FindByID(ctx context.Context, id string) (*models.Item, error)
	Update(ctx context.Context, it *models.Item) error
	Delete(ctx context.Context, id string) error
}

// OrderStore persists order snapshots created at checkout.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	ListByAccount(ctx context.Context, accountID string) ([]models.Order, error)
}

// PaymentStore persists payment records.
type PaymentStore interface {
	Create(ctx context.Context, p *models.Payment) error
	ListByAccount(ctx context.Context, accountID string) ([]models.Payment, error)
}
