package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/forkful/forkful/app/models"
	"github.com/forkful/forkful/app/repositories"
	"github.com/forkful/forkful/config"
	"github.com/forkful/forkful/pkg/logger"
	"github.com/forkful/forkful/pkg/metrics"
	"github.com/forkful/forkful/pkg/payments"
)

// CheckoutResult is the outcome of a successful checkout: the gateway
// intent plus the pending payment record written for it.
type CheckoutResult struct {
	Intent  *payments.Intent `json:"intent"`
	Payment *models.Payment  `json:"payment"`
}

// CheckoutService turns a cart into a payment intent.
//
// The flow is strict and fail-closed: load the cart, resolve every line
// against the catalog, compute the total, and only then call the
// gateway. Any missing or invalid line aborts the whole checkout before
// money is involved; no partial total is ever charged.
type CheckoutService struct {
	carts     repositories.CartStore
	items     repositories.ItemStore
	menuItems repositories.MenuItemStore
	orders    repositories.OrderStore
	payments  repositories.PaymentStore
	gateway   payments.Gateway
}

func NewCheckoutService(
	carts repositories.CartStore,
	items repositories.ItemStore,
	menuItems repositories.MenuItemStore,
	orders repositories.OrderStore,
	paymentStore repositories.PaymentStore,
	gateway payments.Gateway,
) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		items:     items,
		menuItems: menuItems,
		orders:    orders,
		payments:  paymentStore,
		gateway:   gateway,
	}
}

// Checkout creates a payment intent for the full cart total.
func (s *CheckoutService) Checkout(ctx context.Context, accountID string) (*CheckoutResult, error) {
	cart, err := s.carts.FindByAccount(ctx, accountID)
	if err != nil {
		metrics.CheckoutTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	if len(cart.Items) == 0 {
		metrics.CheckoutTotal.WithLabelValues("empty_cart").Inc()
		return nil, models.ErrEmptyCart()
	}

	total, err := s.computeTotal(ctx, cart)
	if err != nil {
		return nil, err
	}

	intent, err := s.gateway.CreateIntent(ctx, total, config.Currency())
	if err != nil {
		metrics.CheckoutTotal.WithLabelValues("gateway_error").Inc()
		logger.WithCtx(ctx).Error("checkout: gateway call failed",
			"accountId", accountID, "total", total, "error", err)
		return nil, models.ErrPaymentGateway(err)
	}

	order := &models.Order{
		AccountID: cart.AccountID,
		CartID:    cart.ID,
		Status:    models.PaymentStatusPending,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		logger.WithCtx(ctx).Error("checkout: order write failed",
			"accountId", accountID, "intentId", intent.ID, "error", err)
		return nil, err
	}

	payment := &models.Payment{
		AccountID: cart.AccountID,
		OrderID:   order.ID,
		IntentID:  intent.ID,
		Total:     total,
		Method:    "card",
		Status:    models.PaymentStatusPending,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		// The intent exists at the gateway but the record write failed.
		// Log the intent id so reconciliation can pick it up.
		logger.WithCtx(ctx).Error("checkout: payment record write failed",
			"accountId", accountID, "intentId", intent.ID, "error", err)
		return nil, err
	}

	metrics.CheckoutTotal.WithLabelValues("ok").Inc()
	metrics.CheckoutAmount.Observe(float64(total))
	return &CheckoutResult{Intent: intent, Payment: payment}, nil
}

// computeTotal resolves every cart line and sums the clamped line totals.
// The first missing or invalid line aborts with no gateway side effects.
func (s *CheckoutService) computeTotal(ctx context.Context, cart *models.Cart) (int64, error) {
	var total int64
	for _, itemID := range cart.Items {
		line, err := s.resolveLine(ctx, itemID)
		if err != nil {
			return 0, err
		}
		total += line
	}
	return total, nil
}

func (s *CheckoutService) resolveLine(ctx context.Context, itemID primitive.ObjectID) (int64, error) {
	item, err := s.items.FindByID(ctx, itemID.Hex())
	if err != nil {
		return 0, s.inconsistent(err, itemID.Hex())
	}
	if item.Quantity < 1 {
		metrics.CheckoutTotal.WithLabelValues("invalid").Inc()
		return 0, models.ErrInvalidQuantity(itemID.Hex())
	}
	if item.Discount < 0 {
		metrics.CheckoutTotal.WithLabelValues("invalid").Inc()
		return 0, models.ErrInvalidDiscount(itemID.Hex())
	}

	mi, err := s.menuItems.FindByID(ctx, item.MenuItemID.Hex())
	if err != nil {
		return 0, s.inconsistent(err, item.MenuItemID.Hex())
	}

	return lineTotal(mi.Price, item.Quantity, item.Discount), nil
}

// inconsistent maps a missing referenced document to INCONSISTENT_CART;
// store failures pass through untouched.
func (s *CheckoutService) inconsistent(err error, refID string) error {
	if de, ok := models.AsError(err); ok && de.Status == 404 {
		metrics.CheckoutTotal.WithLabelValues("inconsistent").Inc()
		return models.ErrInconsistentCart(refID)
	}
	return err
}

// History lists an account's payment records, newest first.
func (s *CheckoutService) History(ctx context.Context, accountID string) ([]models.Payment, error) {
	return s.payments.ListByAccount(ctx, accountID)
}
