package controllers

import (
	"github.com/forkful/forkful/app/services"
	"github.com/forkful/forkful/pkg/ctx"
)

// MenuController serves menu CRUD.
type MenuController struct {
	catalog *services.CatalogService
}

func NewMenuController(catalog *services.CatalogService) *MenuController {
	return &MenuController{catalog: catalog}
}

// Index handles GET /api/restaurants/{id}/menus.
func (h *MenuController) Index(c *ctx.Context) {
	menus, err := h.catalog.ListMenus(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(menus)
}

// Show handles GET /api/menus/{id}.
func (h *MenuController) Show(c *ctx.Context) {
	menu, err := h.catalog.GetMenu(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(menu)
}

// Store handles POST /api/menus.
func (h *MenuController) Store(c *ctx.Context) {
	var in services.MenuInput
	if !c.BindJSON(&in) {
		return
	}
	menu, err := h.catalog.CreateMenu(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(menu)
}

// Update handles PUT /api/menus/{id}.
func (h *MenuController) Update(c *ctx.Context) {
	var in services.MenuInput
	if !c.BindJSON(&in) {
		return
	}
	menu, err := h.catalog.UpdateMenu(c.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(menu)
}

// Destroy handles DELETE /api/menus/{id}.
func (h *MenuController) Destroy(c *ctx.Context) {
	if err := h.catalog.DeleteMenu(c.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Success(map[string]string{"message": "menu deleted"})
}
