package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forkful/forkful/app/models"
	"github.com/forkful/forkful/app/services"
)

type cartFixture struct {
	carts     *fakeCarts
	items     *fakeItems
	menuItems *fakeMenuItems
	svc       *services.CartService
	accountID string
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()
	f := &cartFixture{
		carts:     newFakeCarts(),
		items:     newFakeItems(),
		menuItems: newFakeMenuItems(),
		accountID: primitive.NewObjectID().Hex(),
	}
	f.svc = services.NewCartService(f.carts, f.items, f.menuItems)
	_, err := f.carts.Create(context.Background(), f.accountID)
	require.NoError(t, err)
	return f
}

func TestAddItem(t *testing.T) {
	f := newCartFixture(t)
	mi := f.menuItems.add("pizza", 1250)

	item, err := f.svc.AddItem(context.Background(), f.accountID, services.AddItemInput{
		MenuItemID: mi.ID.Hex(),
		Quantity:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, mi.ID, item.MenuItemID)

	cart, err := f.carts.FindByAccount(context.Background(), f.accountID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, item.ID, cart.Items[0])
}

func TestAddItemUnknownMenuItem(t *testing.T) {
	f := newCartFixture(t)

	_, err := f.svc.AddItem(context.Background(), f.accountID, services.AddItemInput{
		MenuItemID: primitive.NewObjectID().Hex(),
		Quantity:   1,
	})
	require.Error(t, err)

	de, ok := models.AsError(err)
	require.True(t, ok)
	assert.Equal(t, 404, de.Status)

	// Nothing half-created.
	cart, err := f.carts.FindByAccount(context.Background(), f.accountID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestUpdateItem(t *testing.T) {
	f := newCartFixture(t)
	mi := f.menuItems.add("pizza", 1250)
	item, err := f.svc.AddItem(context.Background(), f.accountID, services.AddItemInput{
		MenuItemID: mi.ID.Hex(),
		Quantity:   1,
	})
	require.NoError(t, err)

	updated, err := f.svc.UpdateItem(context.Background(), item.ID.Hex(), services.UpdateItemInput{
		Quantity: 3,
		Discount: 200,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.Quantity)
	assert.Equal(t, int64(200), updated.Discount)
}

func TestRemoveItem(t *testing.T) {
	f := newCartFixture(t)
	mi := f.menuItems.add("pizza", 1250)
	item, err := f.svc.AddItem(context.Background(), f.accountID, services.AddItemInput{
		MenuItemID: mi.ID.Hex(),
		Quantity:   1,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.RemoveItem(context.Background(), f.accountID, item.ID.Hex()))

	cart, err := f.carts.FindByAccount(context.Background(), f.accountID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = f.items.FindByID(context.Background(), item.ID.Hex())
	assert.Error(t, err, "line document survived removal")
}

func TestOwnsItem(t *testing.T) {
	f := newCartFixture(t)
	mi := f.menuItems.add("pizza", 1250)
	item, err := f.svc.AddItem(context.Background(), f.accountID, services.AddItemInput{
		MenuItemID: mi.ID.Hex(),
		Quantity:   1,
	})
	require.NoError(t, err)

	owned, err := f.svc.OwnsItem(context.Background(), f.accountID, item.ID.Hex())
	require.NoError(t, err)
	assert.True(t, owned)

	owned, err = f.svc.OwnsItem(context.Background(), f.accountID, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.False(t, owned)

	// An account without a cart owns nothing, and that is not an error.
	owned, err = f.svc.OwnsItem(context.Background(), primitive.NewObjectID().Hex(), item.ID.Hex())
	require.NoError(t, err)
	assert.False(t, owned)
}

func TestViewResolvesLines(t *testing.T) {
	f := newCartFixture(t)
	mi := f.menuItems.add("pizza", 500)
	_, err := f.svc.AddItem(context.Background(), f.accountID, services.AddItemInput{
		MenuItemID: mi.ID.Hex(),
		Quantity:   2,
		Discount:   100,
	})
	require.NoError(t, err)

	cart, lines, err := f.svc.View(context.Background(), f.accountID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Len(t, lines, 1)

	assert.Equal(t, "pizza", lines[0].MenuItem.Name)
	assert.Equal(t, int64(900), lines[0].Subtotal)
}

func TestViewSkipsDanglingLines(t *testing.T) {
	f := newCartFixture(t)
	mi := f.menuItems.add("pizza", 500)
	item, err := f.svc.AddItem(context.Background(), f.accountID, services.AddItemInput{
		MenuItemID: mi.ID.Hex(),
		Quantity:   1,
	})
	require.NoError(t, err)
	require.NoError(t, f.items.Delete(context.Background(), item.ID.Hex()))

	// The view is lenient; only checkout treats dangling lines as fatal.
	_, lines, err := f.svc.View(context.Background(), f.accountID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}
