package controllers

import (
	"github.com/forkful/forkful/app/services"
	"github.com/forkful/forkful/pkg/ctx"
	"github.com/forkful/forkful/pkg/response"
)

// RestaurantController serves restaurant CRUD.
type RestaurantController struct {
	catalog *services.CatalogService
}

func NewRestaurantController(catalog *services.CatalogService) *RestaurantController {
	return &RestaurantController{catalog: catalog}
}

// Index handles GET /api/restaurants with ?page= and ?limit=.
func (h *RestaurantController) Index(c *ctx.Context) {
	// Same bounds the store applies, so the reported pagination matches
	// the query that actually ran.
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	restaurants, total, err := h.catalog.ListRestaurants(c.Context(), page, limit)
	if err != nil {
		fail(c, err)
		return
	}
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	response.Paginated(c.W, restaurants, response.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	})
}

// Show handles GET /api/restaurants/{id}.
func (h *RestaurantController) Show(c *ctx.Context) {
	rest, err := h.catalog.GetRestaurant(c.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(rest)
}

// Store handles POST /api/restaurants.
func (h *RestaurantController) Store(c *ctx.Context) {
	var in services.RestaurantInput
	if !c.BindJSON(&in) {
		return
	}
	rest, err := h.catalog.CreateRestaurant(c.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Created(rest)
}

// Update handles PUT /api/restaurants/{id}.
func (h *RestaurantController) Update(c *ctx.Context) {
	var in services.RestaurantInput
	if !c.BindJSON(&in) {
		return
	}
	rest, err := h.catalog.UpdateRestaurant(c.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(rest)
}

// Destroy handles DELETE /api/restaurants/{id}.
func (h *RestaurantController) Destroy(c *ctx.Context) {
	if err := h.catalog.DeleteRestaurant(c.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Success(map[string]string{"message": "restaurant deleted"})
}
