package controllers

import (
	"github.com/forkful/forkful/app/services"
	"github.com/forkful/forkful/pkg/ctx"
)

// CartController serves the authenticated account's cart and its lines.
type CartController struct {
	cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{cart: cart}
}

// Show handles GET /api/cart, returning the cart with resolved lines.
func (h *CartController) Show(c *ctx.Context) {
	p, ok := c.Principal()
	if !ok {
		c.Unauthorized()
		return
	}
	cart, lines, err := h.cart.View(c.Context(), p.AccountID)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(map[string]any{
		"cart":  cart,
		"lines": lines,
	})
}

// AddItem handles POST /api/cart/items.
func (h *CartController) AddItem(c *ctx.Context) {
	p, ok := c.Principal()
	if !ok {
		c.Unauthorized()
		return
	}
	var in services.AddItemInput
	if !c.BindJSON(&in) {
		return
	}
	item, err := h.cart.AddItem(c.Context(), p.AccountID, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(item)
}

// UpdateItem handles PUT /api/cart/items/{id}.
func (h *CartController) UpdateItem(c *ctx.Context) {
	var in services.UpdateItemInput
	if !c.BindJSON(&in) {
		return
	}
	item, err := h.cart.UpdateItem(c.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(item)
}

// RemoveItem handles DELETE /api/cart/items/{id}.
func (h *CartController) RemoveItem(c *ctx.Context) {
	p, ok := c.Principal()
	if !ok {
		c.Unauthorized()
		return
	}
	if err := h.cart.RemoveItem(c.Context(), p.AccountID, c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Success(map[string]string{"message": "item removed"})
}
