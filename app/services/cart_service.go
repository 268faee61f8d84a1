package services

import (
	"context"

	"github.com/forkful/forkful/app/models"
	"github.com/forkful/forkful/app/repositories"
)

// AddItemInput adds a menu item to the cart. Discount is an absolute
// reduction in minor currency units for the whole line.
type AddItemInput struct {
	MenuItemID string `json:"menuItemId" validate:"required"`
	Quantity   int64  `json:"quantity" validate:"required,integer,gte=1,lte=100"`
	Discount   int64  `json:"discount" validate:"nullable,integer,gte=0"`
}

// UpdateItemInput changes a line's quantity or discount.
type UpdateItemInput struct {
	Quantity int64 `json:"quantity" validate:"required,integer,gte=1,lte=100"`
	Discount int64 `json:"discount" validate:"nullable,integer,gte=0"`
}

// CartService manages an account's cart lines. Line documents live in
// their own collection; the cart holds only their ids.
type CartService struct {
	carts     repositories.CartStore
	items     repositories.ItemStore
	menuItems repositories.MenuItemStore
}

func NewCartService(
	carts repositories.CartStore,
	items repositories.ItemStore,
	menuItems repositories.MenuItemStore,
) *CartService {
	return &CartService{carts: carts, items: items, menuItems: menuItems}
}

// lineTotal computes a line's contribution in minor units. The discount
// applies to the whole line and is clamped so no line goes negative.
func lineTotal(price, quantity, discount int64) int64 {
	total := price*quantity - discount
	if total < 0 {
		return 0
	}
	return total
}

// AddItem creates a line for the menu item and pushes it onto the cart.
func (s *CartService) AddItem(ctx context.Context, accountID string, in AddItemInput) (*models.Item, error) {
	mi, err := s.menuItems.FindByID(ctx, in.MenuItemID)
	if err != nil {
		return nil, err
	}

	item := &models.Item{
		MenuItemID: mi.ID,
		Quantity:   in.Quantity,
		Discount:   in.Discount,
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	if err := s.carts.PushItem(ctx, accountID, item.ID.Hex()); err != nil {
		// Orphaned line: delete it so the failed add leaves no trace.
		s.items.Delete(ctx, item.ID.Hex()) //nolint:errcheck
		return nil, err
	}
	return item, nil
}

// UpdateItem rewrites a line's quantity and discount.
func (s *CartService) UpdateItem(ctx context.Context, itemID string, in UpdateItemInput) (*models.Item, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	item.Quantity = in.Quantity
	item.Discount = in.Discount
	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem pulls the line from the cart and deletes its document.
func (s *CartService) RemoveItem(ctx context.Context, accountID, itemID string) error {
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return err
	}
	if err := s.carts.PullItem(ctx, accountID, itemID); err != nil {
		return err
	}
	return s.items.Delete(ctx, itemID)
}

// OwnsItem reports whether itemID is a line in accountID's cart. Used by
// the route guard's ownership predicate.
func (s *CartService) OwnsItem(ctx context.Context, accountID, itemID string) (bool, error) {
	cart, err := s.carts.FindByAccount(ctx, accountID)
	if err != nil {
		if de, ok := models.AsError(err); ok && de.Status == 404 {
			return false, nil
		}
		return false, err
	}
	for _, id := range cart.Items {
		if id.Hex() == itemID {
			return true, nil
		}
	}
	return false, nil
}

// View resolves the cart into lines joined with their catalog entries.
// A line whose item or menu item has vanished is skipped here; checkout
// is the strict path and fails instead.
func (s *CartService) View(ctx context.Context, accountID string) (*models.Cart, []models.CartLine, error) {
	cart, err := s.carts.FindByAccount(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	lines := []models.CartLine{}
	for _, itemID := range cart.Items {
		item, err := s.items.FindByID(ctx, itemID.Hex())
		if err != nil {
			if de, ok := models.AsError(err); ok && de.Status == 404 {
				continue
			}
			return nil, nil, err
		}
		mi, err := s.menuItems.FindByID(ctx, item.MenuItemID.Hex())
		if err != nil {
			if de, ok := models.AsError(err); ok && de.Status == 404 {
				continue
			}
			return nil, nil, err
		}
		lines = append(lines, models.CartLine{
			Item:     *item,
			MenuItem: *mi,
			Subtotal: lineTotal(mi.Price, item.Quantity, item.Discount),
		})
	}

	return cart, lines, nil
}
