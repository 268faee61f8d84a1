package controllers

import (
	"github.com/forkful/forkful/app/services"
	"github.com/forkful/forkful/pkg/ctx"
)

// AddressController serves delivery-address CRUD. Create and Index act
// on the authenticated account; Show/Update/Destroy go through the
// own-scope guard.
type AddressController struct {
	addresses *services.AddressService
}

func NewAddressController(addresses *services.AddressService) *AddressController {
	return &AddressController{addresses: addresses}
}

// Index handles GET /api/addresses.
func (h *AddressController) Index(c *ctx.Context) {
	p, ok := c.Principal()
	if !ok {
		c.Unauthorized()
		return
	}
	list, err := h.addresses.ListByAccount(c.Context(), p.AccountID)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(list)
}

// Show handles GET /api/addresses/{id}.
func (h *AddressController) Show(c *ctx.Context) {
	addr, err := h.addresses.Get(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(addr)
}

// Store handles POST /api/addresses.
func (h *AddressController) Store(c *ctx.Context) {
	p, ok := c.Principal()
	if !ok {
		c.Unauthorized()
		return
	}
	var in services.AddressInput
	if !c.BindJSON(&in) {
		return
	}
	addr, err := h.addresses.Create(c.Context(), p.AccountID, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(addr)
}

// Update handles PUT /api/addresses/{id}.
func (h *AddressController) Update(c *ctx.Context) {
	var in services.AddressInput
	if !c.BindJSON(&in) {
		return
	}
	addr, err := h.addresses.Update(c.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(addr)
}

// Destroy handles DELETE /api/addresses/{id}.
func (h *AddressController) Destroy(c *ctx.Context) {
	if err := h.addresses.Delete(c.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Success(map[string]string{"message": "address deleted"})
}
