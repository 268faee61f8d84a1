package controllers

import (
	"io"
	"net/http"

	"github.com/forkful/forkful/app/services"
	"github.com/forkful/forkful/config"
	"github.com/forkful/forkful/pkg/ctx"
)

// MenuItemController serves menu-item CRUD and image upload.
type MenuItemController struct {
	catalog *services.CatalogService
}

func NewMenuItemController(catalog *services.CatalogService) *MenuItemController {
	return &MenuItemController{catalog: catalog}
}

// Index handles GET /api/menus/{id}/menu-items.
func (h *MenuItemController) Index(c *ctx.Context) {
	items, err := h.catalog.ListMenuItems(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(items)
}

// Show handles GET /api/menu-items/{id}.
func (h *MenuItemController) Show(c *ctx.Context) {
	mi, err := h.catalog.GetMenuItem(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(mi)
}

// Store handles POST /api/menu-items.
func (h *MenuItemController) Store(c *ctx.Context) {
	var in services.MenuItemInput
	if !c.BindJSON(&in) {
		return
	}
	mi, err := h.catalog.CreateMenuItem(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(mi)
}

// Update handles PUT /api/menu-items/{id}.
func (h *MenuItemController) Update(c *ctx.Context) {
	var in services.MenuItemInput
	if !c.BindJSON(&in) {
		return
	}
	mi, err := h.catalog.UpdateMenuItem(c.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(mi)
}

// Destroy handles DELETE /api/menu-items/{id}.
func (h *MenuItemController) Destroy(c *ctx.Context) {
	if err := h.catalog.DeleteMenuItem(c.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Success(map[string]string{"message": "menu item deleted"})
}

// UploadImage handles POST /api/menu-items/{id}/image with a multipart
// form carrying an "image" file part.
func (h *MenuItemController) UploadImage(c *ctx.Context) {
	if err := c.R.ParseMultipartForm(config.MaxBodyBytes()); err != nil {
		c.Error(http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := c.R.FormFile("image")
	if err != nil {
		c.Error(http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, config.MaxBodyBytes()))
	if err != nil {
		c.Error(http.StatusBadRequest, "unreadable image file")
		return
	}

	mi, err := h.catalog.UploadMenuItemImage(c.Context(), c.Param("id"), header.Filename, content)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(mi)
}

// DownloadImage handles GET /api/menu-items/{id}/image. The route is
// public so clients can render menus without a session.
func (h *MenuItemController) DownloadImage(c *ctx.Context) {
	content, err := h.catalog.DownloadMenuItemImage(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.W.Header().Set("Content-Type", http.DetectContentType(content))
	c.W.WriteHeader(http.StatusOK)
	c.W.Write(content) //nolint:errcheck
}
