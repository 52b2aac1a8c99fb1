package controllers

import (
	"context"

	"github.com/DK1uTea/food-ordering-client/entity"
	"github.com/DK1uTea/food-ordering-client/pkg/resp"
	"github.com/gin-gonic/gin"
)

type OrderHistoryAPI interface {
	History(ctx context.Context) ([]entity.Order, error)
}

type OrderController struct {
	Svc OrderHistoryAPI
}

func NewOrderController(svc OrderHistoryAPI) *OrderController {
	return &OrderController{Svc: svc}
}

// GET /orders
func (ctl *OrderController) ListForMe(c *gin.Context) {
	orders, err := ctl.Svc.History(c.Request.Context())
	if err != nil {
		resp.BadGateway(c, err)
		return
	}
	resp.OK(c, orders)
}
