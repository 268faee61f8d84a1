package services

import (
	"context"
	"fmt"
	"path"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forkful/forkful/app/models"
	"github.com/forkful/forkful/app/repositories"
	"github.com/forkful/forkful/pkg/cache"
	"github.com/forkful/forkful/pkg/metrics"
	"github.com/forkful/forkful/pkg/storage"
)

// Catalog documents change rarely, so point reads go through Redis.
const catalogCacheTTL = 5 * time.Minute

// RestaurantInput creates or updates a restaurant.
type RestaurantInput struct {
	Name        string `json:"name" validate:"required,min=1,max=128"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=6,max=24"`
	Email       string `json:"email" validate:"required,email"`
	Info        string `json:"info" validate:"nullable,max=2048"`
	AddressID   string `json:"addressId" validate:"nullable"`
}

// MenuInput creates or updates a menu.
type MenuInput struct {
	RestaurantID string `json:"restaurantId" validate:"required"`
	Name         string `json:"name" validate:"required,min=1,max=128"`
	Description  string `json:"description" validate:"nullable,max=2048"`
}

// MenuItemInput creates or updates a menu item. Price is in minor
// currency units.
type MenuItemInput struct {
	MenuID      string `json:"menuId" validate:"required"`
	Name        string `json:"name" validate:"required,min=1,max=128"`
	Price       int64  `json:"price" validate:"required,integer,gte=0"`
	Description string `json:"description" validate:"nullable,max=2048"`
}

// CatalogService manages the restaurant → menu → menu-item tree.
type CatalogService struct {
	restaurants repositories.RestaurantStore
	menus       repositories.MenuStore
	menuItems   repositories.MenuItemStore
}

func NewCatalogService(
	restaurants repositories.RestaurantStore,
	menus repositories.MenuStore,
	menuItems repositories.MenuItemStore,
) *CatalogService {
	return &CatalogService{restaurants: restaurants, menus: menus, menuItems: menuItems}
}

func restaurantKey(id string) string { return "restaurant:" + id }
func menuItemKey(id string) string   { return "menu-item:" + id }

func (s *CatalogService) CreateRestaurant(ctx context.Context, in RestaurantInput) (*models.Restaurant, error) {
	rest := &models.Restaurant{
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
		Email:       in.Email,
		Info:        in.Info,
	}
	if in.AddressID != "" {
		oid, err := primitive.ObjectIDFromHex(in.AddressID)
		if err != nil {
			return nil, models.ErrNotFound("address")
		}
		rest.AddressID = oid
	}
	if err := s.restaurants.Create(ctx, rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	var cached models.Restaurant
	if cache.Get(ctx, restaurantKey(id), &cached) {
		metrics.CacheHits.WithLabelValues("restaurant").Inc()
		return &cached, nil
	}
	metrics.CacheMisses.WithLabelValues("restaurant").Inc()

	rest, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cache.Set(ctx, restaurantKey(id), rest, catalogCacheTTL) //nolint:errcheck
	return rest, nil
}

func (s *CatalogService) ListRestaurants(ctx context.Context, page, limit int) ([]models.Restaurant, int64, error) {
	return s.restaurants.List(ctx, page, limit)
}

func (s *CatalogService) UpdateRestaurant(ctx context.Context, id string, in RestaurantInput) (*models.Restaurant, error) {
	rest, err := s.restaurants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	rest.Name = in.Name
	rest.PhoneNumber = in.PhoneNumber
	rest.Email = in.Email
	rest.Info = in.Info
	if in.AddressID != "" {
		oid, err := primitive.ObjectIDFromHex(in.AddressID)
		if err != nil {
			return nil, models.ErrNotFound("address")
		}
		rest.AddressID = oid
	}
	if err := s.restaurants.Update(ctx, rest); err != nil {
		return nil, err
	}
	cache.Del(ctx, restaurantKey(id)) //nolint:errcheck
	return rest, nil
}

func (s *CatalogService) DeleteRestaurant(ctx context.Context, id string) error {
	if err := s.restaurants.Delete(ctx, id); err != nil {
		return err
	}
	cache.Del(ctx, restaurantKey(id)) //nolint:errcheck
	return nil
}

func (s *CatalogService) CreateMenu(ctx context.Context, in MenuInput) (*models.Menu, error) {
	// Reject menus pointing at a restaurant that does not exist.
	rest, err := s.restaurants.FindByID(ctx, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	menu := &models.Menu{
		RestaurantID: rest.ID,
		Name:         in.Name,
		Description:  in.Description,
	}
	if err := s.menus.Create(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *CatalogService) GetMenu(ctx context.Context, id string) (*models.Menu, error) {
	return s.menus.FindByID(ctx, id)
}

func (s *CatalogService) ListMenus(ctx context.Context, restaurantID string) ([]models.Menu, error) {
	return s.menus.ListByRestaurant(ctx, restaurantID)
}

func (s *CatalogService) UpdateMenu(ctx context.Context, id string, in MenuInput) (*models.Menu, error) {
	menu, err := s.menus.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	menu.Name = in.Name
	menu.Description = in.Description
	if err := s.menus.Update(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *CatalogService) DeleteMenu(ctx context.Context, id string) error {
	return s.menus.Delete(ctx, id)
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, in MenuItemInput) (*models.MenuItem, error) {
	menu, err := s.menus.FindByID(ctx, in.MenuID)
	if err != nil {
		return nil, err
	}
	mi := &models.MenuItem{
		MenuID:      menu.ID,
		Name:        in.Name,
		Price:       in.Price,
		Description: in.Description,
	}
	if err := s.menuItems.Create(ctx, mi); err != nil {
		return nil, err
	}
	return mi, nil
}

func (s *CatalogService) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	var cached models.MenuItem
	if cache.Get(ctx, menuItemKey(id), &cached) {
		metrics.CacheHits.WithLabelValues("menu-item").Inc()
		return &cached, nil
	}
	metrics.CacheMisses.WithLabelValues("menu-item").Inc()

	mi, err := s.menuItems.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cache.Set(ctx, menuItemKey(id), mi, catalogCacheTTL) //nolint:errcheck
	return mi, nil
}

func (s *CatalogService) ListMenuItems(ctx context.Context, menuID string) ([]models.MenuItem, error) {
	return s.menuItems.ListByMenu(ctx, menuID)
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, id string, in MenuItemInput) (*models.MenuItem, error) {
	mi, err := s.menuItems.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	mi.Name = in.Name
	mi.Price = in.Price
	mi.Description = in.Description
	if err := s.menuItems.Update(ctx, mi); err != nil {
		return nil, err
	}
	cache.Del(ctx, menuItemKey(id)) //nolint:errcheck
	return mi, nil
}

func (s *CatalogService) DeleteMenuItem(ctx context.Context, id string) error {
	if err := s.menuItems.Delete(ctx, id); err != nil {
		return err
	}
	cache.Del(ctx, menuItemKey(id)) //nolint:errcheck
	return nil
}

// UploadMenuItemImage stores the image bytes on the configured disk and
// records the object key on the menu item.
func (s *CatalogService) UploadMenuItemImage(ctx context.Context, id, filename string, content []byte) (*models.MenuItem, error) {
	mi, err := s.menuItems.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("menu-items/%s%s", id, path.Ext(filename))
	if err := storage.Default().Put(ctx, key, content); err != nil {
		return nil, models.ErrUpstream(err)
	}
	if err := s.menuItems.SetImageKey(ctx, id, key); err != nil {
		return nil, err
	}

	mi.ImageKey = key
	cache.Del(ctx, menuItemKey(id)) //nolint:errcheck
	return mi, nil
}

// DownloadMenuItemImage reads the stored image bytes for a menu item.
// A menu item without an image answers not found.
func (s *CatalogService) DownloadMenuItemImage(ctx context.Context, id string) ([]byte, error) {
	mi, err := s.menuItems.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mi.ImageKey == "" {
		return nil, models.ErrNotFound("image")
	}
	content, err := storage.Default().Get(ctx, mi.ImageKey)
	if err != nil {
		return nil, models.ErrUpstream(err)
	}
	return content, nil
}
