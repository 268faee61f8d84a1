// Package seed provisions database indexes and demo data for local
// development.
package seed

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/forkful/forkful/app/models"
	"github.com/forkful/forkful/app/repositories"
	"github.com/forkful/forkful/pkg/acl"
	"github.com/forkful/forkful/pkg/database"
	"github.com/forkful/forkful/pkg/logger"
	"github.com/forkful/forkful/pkg/password"
)

// Indexes creates the unique and lookup indexes every deployment needs.
// Safe to run repeatedly.
func Indexes(ctx context.Context) error {
	db := database.DB()

	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		"accounts": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "phoneNumber", Value: 1}}, Options: unique},
		},
		"restaurants": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "phoneNumber", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		"addresses": {
			{Keys: bson.D{{Key: "accountId", Value: 1}}},
		},
		"menus": {
			{Keys: bson.D{{Key: "restaurantId", Value: 1}}},
		},
		"menuItems": {
			{Keys: bson.D{{Key: "menuId", Value: 1}}},
		},
		"carts": {
			{Keys: bson.D{{Key: "accountId", Value: 1}}, Options: unique},
		},
		"payments": {
			{Keys: bson.D{{Key: "accountId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}

	for col, idx := range specs {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("seed: indexes for %s: %w", col, err)
		}
		logger.Info("seed: indexes ensured", "collection", col)
	}
	return nil
}

// Demo inserts an admin account and a small catalog. Existing documents
// with the same unique keys make the run a no-op for that document.
func Demo(ctx context.Context) error {
	db := database.DB()

	accounts := repositories.NewAccountStore(db)
	carts := repositories.NewCartStore(db)
	restaurants := repositories.NewRestaurantStore(db)
	menus := repositories.NewMenuStore(db)
	menuItems := repositories.NewMenuItemStore(db)

	if err := seedAdmin(ctx, accounts, carts); err != nil {
		return err
	}
	return seedCatalog(ctx, restaurants, menus, menuItems)
}

func seedAdmin(ctx context.Context, accounts repositories.AccountStore, carts repositories.CartStore) error {
	if _, err := accounts.FindByEmail(ctx, "admin@forkful.local"); err == nil {
		logger.Info("seed: admin account already present")
		return nil
	}

	digest, err := password.Hash("admin-change-me")
	if err != nil {
		return fmt.Errorf("seed: hash admin password: %w", err)
	}

	admin := &models.Account{
		FirstName:   "Forkful",
		LastName:    "Admin",
		Email:       "admin@forkful.local",
		PhoneNumber: "+10000000000",
		Password:    digest,
		Role:        acl.RoleAdmin,
	}
	if err := accounts.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed: admin account: %w", err)
	}
	if _, err := carts.Create(ctx, admin.ID.Hex()); err != nil {
		return fmt.Errorf("seed: admin cart: %w", err)
	}
	logger.Info("seed: admin account created", "email", admin.Email)
	return nil
}

func seedCatalog(
	ctx context.Context,
	restaurants repositories.RestaurantStore,
	menus repositories.MenuStore,
	menuItems repositories.MenuItemStore,
) error {
	rest := &models.Restaurant{
		Name:        "Trattoria Demo",
		PhoneNumber: "+10000000001",
		Email:       "kitchen@trattoria-demo.local",
		Info:        "Seeded demo restaurant",
	}
	if err := restaurants.Create(ctx, rest); err != nil {
		if de, ok := models.AsError(err); ok && de.Code == models.CodeDuplicate {
			logger.Info("seed: demo catalog already present")
			return nil
		}
		return fmt.Errorf("seed: restaurant: %w", err)
	}

	menu := &models.Menu{
		RestaurantID: rest.ID,
		Name:         "Dinner",
		Description:  "Evening menu",
	}
	if err := menus.Create(ctx, menu); err != nil {
		return fmt.Errorf("seed: menu: %w", err)
	}

	dishes := []struct {
		Name        string
		Price       int64
		Description string
	}{
		{Name: "Margherita", Price: 1250, Description: "Tomato, mozzarella, basil"},
		{Name: "Carbonara", Price: 1480, Description: "Guanciale, pecorino, egg"},
		{Name: "Tiramisu", Price: 650, Description: "House dessert"},
	}
	for _, d := range dishes {
		mi := &models.MenuItem{
			MenuID:      menu.ID,
			Name:        d.Name,
			Price:       d.Price,
			Description: d.Description,
		}
		if err := menuItems.Create(ctx, mi); err != nil {
			return fmt.Errorf("seed: menu item %s: %w", d.Name, err)
		}
	}

	logger.Info("seed: demo catalog created",
		"restaurant", rest.Name, "items", len(dishes))
	return nil
}
