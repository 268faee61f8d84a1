package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forkful/forkful/app/models"
	"github.com/forkful/forkful/app/services"
)

type checkoutFixture struct {
	carts     *fakeCarts
	items     *fakeItems
	menuItems *fakeMenuItems
	orders    *fakeOrders
	payments  *fakePayments
	gateway   *fakeGateway
	svc       *services.CheckoutService
	accountID string
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	f := &checkoutFixture{
		carts:     newFakeCarts(),
		items:     newFakeItems(),
		menuItems: newFakeMenuItems(),
		orders:    &fakeOrders{},
		payments:  &fakePayments{},
		gateway:   &fakeGateway{},
		accountID: primitive.NewObjectID().Hex(),
	}
	f.svc = services.NewCheckoutService(f.carts, f.items, f.menuItems, f.orders, f.payments, f.gateway)

	_, err := f.carts.Create(context.Background(), f.accountID)
	require.NoError(t, err)
	return f
}

// addLine creates an item referencing a menu item and pushes it onto the
// fixture cart.
func (f *checkoutFixture) addLine(t *testing.T, price, quantity, discount int64) *models.Item {
	t.Helper()
	mi := f.menuItems.add("dish", price)
	item := &models.Item{MenuItemID: mi.ID, Quantity: quantity, Discount: discount}
	require.NoError(t, f.items.Create(context.Background(), item))
	require.NoError(t, f.carts.PushItem(context.Background(), f.accountID, item.ID.Hex()))
	return item
}

func TestCheckoutHappyPath(t *testing.T) {
	f := newCheckoutFixture(t)
	f.addLine(t, 500, 2, 0)   // 1000
	f.addLine(t, 300, 1, 100) // 200

	result, err := f.svc.Checkout(context.Background(), f.accountID)
	require.NoError(t, err)

	assert.Equal(t, 1, f.gateway.calls)
	assert.Equal(t, []int64{1200}, f.gateway.amounts)
	assert.Equal(t, "usd", f.gateway.currency)

	require.NotNil(t, result.Intent)
	assert.Equal(t, "pi_fake", result.Intent.ID)

	require.NotNil(t, result.Payment)
	assert.Equal(t, int64(1200), result.Payment.Total)
	assert.Equal(t, models.PaymentStatusPending, result.Payment.Status)
	assert.Equal(t, "pi_fake", result.Payment.IntentID)
	require.Len(t, f.payments.created, 1)

	require.Len(t, f.orders.created, 1)
	order := f.orders.created[0]
	assert.Equal(t, models.PaymentStatusPending, order.Status)
	assert.Equal(t, order.ID, result.Payment.OrderID)
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.Checkout(context.Background(), f.accountID)
	require.Error(t, err)

	de, ok := models.AsError(err)
	require.True(t, ok)
	assert.Equal(t, models.CodeEmptyCart, de.Code)
	assert.Equal(t, 400, de.Status)
	assert.Zero(t, f.gateway.calls, "gateway called for an empty cart")
}

func TestCheckoutNoCart(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.svc.Checkout(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)

	de, ok := models.AsError(err)
	require.True(t, ok)
	assert.Equal(t, models.CodeCartNotFound, de.Code)
	assert.Zero(t, f.gateway.calls)
}

func TestCheckoutMissingItemDocument(t *testing.T) {
	f := newCheckoutFixture(t)
	item := f.addLine(t, 500, 1, 0)
	require.NoError(t, f.items.Delete(context.Background(), item.ID.Hex()))

	_, err := f.svc.Checkout(context.Background(), f.accountID)
	require.Error(t, err)

	de, ok := models.AsError(err)
	require.True(t, ok)
	assert.Equal(t, models.CodeInconsistentCart, de.Code)
	assert.Equal(t, 409, de.Status)
	assert.Contains(t, de.Message, item.ID.Hex())
	assert.Zero(t, f.gateway.calls, "gateway called for an inconsistent cart")
	assert.Empty(t, f.payments.created)
}

func TestCheckoutMissingCatalogEntry(t *testing.T) {
	f := newCheckoutFixture(t)
	item := f.addLine(t, 500, 1, 0)
	require.NoError(t, f.menuItems.Delete(context.Background(), item.MenuItemID.Hex()))

	_, err := f.svc.Checkout(context.Background(), f.accountID)
	require.Error(t, err)

	de, ok := models.AsError(err)
	require.True(t, ok)
	assert.Equal(t, models.CodeInconsistentCart, de.Code)
	assert.Contains(t, de.Message, item.MenuItemID.Hex())
	assert.Zero(t, f.gateway.calls)
}

func TestCheckoutInvalidQuantity(t *testing.T) {
	f := newCheckoutFixture(t)
	item := f.addLine(t, 500, 1, 0)

	// Corrupt the stored line under the input validation floor.
	stored, err := f.items.FindByID(context.Background(), item.ID.Hex())
	require.NoError(t, err)
	stored.Quantity = 0
	require.NoError(t, f.items.Update(context.Background(), stored))

	_, err = f.svc.Checkout(context.Background(), f.accountID)
	require.Error(t, err)

	de, ok := models.AsError(err)
	require.True(t, ok)
	assert.Equal(t, models.CodeInvalidQuantity, de.Code)
	assert.Zero(t, f.gateway.calls)
}

func TestCheckoutInvalidDiscount(t *testing.T) {
	f := newCheckoutFixture(t)
	item := f.addLine(t, 500, 1, 0)

	stored, err := f.items.FindByID(context.Background(), item.ID.Hex())
	require.NoError(t, err)
	stored.Discount = -50
	require.NoError(t, f.items.Update(context.Background(), stored))

	_, err = f.svc.Checkout(context.Background(), f.accountID)
	require.Error(t, err)

	de, ok := models.AsError(err)
	require.True(t, ok)
	assert.Equal(t, models.CodeInvalidDiscount, de.Code)
	assert.Zero(t, f.gateway.calls)
}

func TestCheckoutDiscountClampsPerLine(t *testing.T) {
	f := newCheckoutFixture(t)
	f.addLine(t, 100, 1, 500) // clamps to 0
	f.addLine(t, 400, 1, 0)   // 400

	result, err := f.svc.Checkout(context.Background(), f.accountID)
	require.NoError(t, err)

	// The over-discounted line contributes zero; it never reduces the
	// other lines.
	assert.Equal(t, int64(400), result.Payment.Total)
	assert.Equal(t, []int64{400}, f.gateway.amounts)
}

func TestCheckoutGatewayFailure(t *testing.T) {
	f := newCheckoutFixture(t)
	f.addLine(t, 500, 1, 0)
	f.gateway.err = errors.New("upstream 503")

	_, err := f.svc.Checkout(context.Background(), f.accountID)
	require.Error(t, err)

	de, ok := models.AsError(err)
	require.True(t, ok)
	assert.Equal(t, models.CodePaymentGateway, de.Code)
	assert.Equal(t, 502, de.Status)
	assert.Empty(t, f.payments.created, "payment recorded despite gateway failure")
}

func TestCheckoutOrderWriteFailure(t *testing.T) {
	f := newCheckoutFixture(t)
	f.addLine(t, 500, 1, 0)
	f.orders.failing = true

	_, err := f.svc.Checkout(context.Background(), f.accountID)
	require.Error(t, err)

	de, ok := models.AsError(err)
	require.True(t, ok)
	assert.Equal(t, models.CodeUpstream, de.Code)
	assert.Empty(t, f.payments.created, "payment recorded without its order")
}

func TestCheckoutRecordWriteFailure(t *testing.T) {
	f := newCheckoutFixture(t)
	f.addLine(t, 500, 1, 0)
	f.payments.failing = true

	_, err := f.svc.Checkout(context.Background(), f.accountID)
	require.Error(t, err)

	de, ok := models.AsError(err)
	require.True(t, ok)
	assert.Equal(t, models.CodeUpstream, de.Code)
	assert.Equal(t, 1, f.gateway.calls)
}

func TestCheckoutHistoryScopedToAccount(t *testing.T) {
	f := newCheckoutFixture(t)
	f.addLine(t, 500, 1, 0)

	_, err := f.svc.Checkout(context.Background(), f.accountID)
	require.NoError(t, err)

	mine, err := f.svc.History(context.Background(), f.accountID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	other, err := f.svc.History(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Empty(t, other)
}
