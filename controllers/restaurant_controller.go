package controllers

import (
	"context"

	"github.com/DK1uTea/food-ordering-client/entity"
	"github.com/DK1uTea/food-ordering-client/pkg/resp"
	"github.com/gin-gonic/gin"
)

type RestaurantAPI interface {
	List(ctx context.Context) ([]entity.Restaurant, error)
	Menu(ctx context.Context, restaurantID string) ([]entity.MenuItem, error)
}

type RestaurantController struct {
	Svc RestaurantAPI
}

func NewRestaurantController(svc RestaurantAPI) *RestaurantController {
	return &RestaurantController{Svc: svc}
}

// GET /restaurants
func (ctl *RestaurantController) List(c *gin.Context) {
	restaurants, err := ctl.Svc.List(c.Request.Context())
	if err != nil {
		resp.BadGateway(c, err)
		return
	}
	resp.OK(c, restaurants)
}

// GET /restaurants/:id/menus
func (ctl *RestaurantController) Menus(c *gin.Context) {
	items, err := ctl.Svc.Menu(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.BadGateway(c, err)
		return
	}
	resp.OK(c, items)
}
