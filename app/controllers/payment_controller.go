package controllers

import (
	"github.com/forkful/forkful/app/services"
	"github.com/forkful/forkful/pkg/ctx"
)

// PaymentController serves checkout and payment history.
type PaymentController struct {
	checkout *services.CheckoutService
}

func NewPaymentController(checkout *services.CheckoutService) *PaymentController {
	return &PaymentController{checkout: checkout}
}

// Store handles POST /api/payments: the full cart-to-intent checkout.
func (h *PaymentController) Store(c *ctx.Context) {
	p, ok := c.Principal()
	if !ok {
		c.Unauthorized()
		return
	}
	result, err := h.checkout.Checkout(c.Context(), p.AccountID)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(result)
}

// Index handles GET /api/payments.
func (h *PaymentController) Index(c *ctx.Context) {
	p, ok := c.Principal()
	if !ok {
		c.Unauthorized()
		return
	}
	list, err := h.checkout.History(c.Context(), p.AccountID)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(list)
}
