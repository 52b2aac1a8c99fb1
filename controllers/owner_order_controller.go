package controllers

import (
	"context"

	"github.com/DK1uTea/food-ordering-client/entity"
	"github.com/DK1uTea/food-ordering-client/pkg/resp"
	"github.com/DK1uTea/food-ordering-client/state"
	"github.com/gin-gonic/gin"
)

type OwnerOrderAPI interface {
	Pending(ctx context.Context, restaurantID string) ([]entity.Order, error)
	Get(ctx context.Context, restaurantID, orderID string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, restaurantID, orderID, status string) (*entity.Order, error)
}

type OwnerOrderController struct {
	Auth *state.AuthStore
	Svc  OwnerOrderAPI
}

func NewOwnerOrderController(auth *state.AuthStore, svc OwnerOrderAPI) *OwnerOrderController {
	return &OwnerOrderController{Auth: auth, Svc: svc}
}

type updateOrderStatusIn struct {
	Status string `json:"status" binding:"required"`
}

// restaurantID ของ owner มาจาก session ที่ resolve ไว้ตอน login
func (ctl *OwnerOrderController) restaurantID(c *gin.Context) (string, bool) {
	s := ctl.Auth.Session()
	if s.User == nil || s.User.Restaurant == "" {
		resp.BadRequest(c, "no restaurant linked to this account")
		return "", false
	}
	return s.User.Restaurant, true
}

// GET /partner/orders/pending
func (ctl *OwnerOrderController) Pending(c *gin.Context) {
	restID, ok := ctl.restaurantID(c)
	if !ok {
		return
	}
	orders, err := ctl.Svc.Pending(c.Request.Context(), restID)
	if err != nil {
		resp.BadGateway(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /partner/orders/:orderId
func (ctl *OwnerOrderController) Detail(c *gin.Context) {
	restID, ok := ctl.restaurantID(c)
	if !ok {
		return
	}
	order, err := ctl.Svc.Get(c.Request.Context(), restID, c.Param("orderId"))
	if err != nil {
		resp.BadGateway(c, err)
		return
	}
	resp.OK(c, order)
}

// PATCH /partner/orders/:orderId/status
func (ctl *OwnerOrderController) UpdateStatus(c *gin.Context) {
	restID, ok := ctl.restaurantID(c)
	if !ok {
		return
	}

	var req updateOrderStatusIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Status != entity.OrderStatusConfirmed && req.Status != entity.OrderStatusCancelled {
		resp.BadRequest(c, "status must be CONFIRMED or CANCELLED")
		return
	}

	order, err := ctl.Svc.UpdateStatus(c.Request.Context(), restID, c.Param("orderId"), req.Status)
	if err != nil {
		resp.BadGateway(c, err)
		return
	}
	resp.OK(c, order)
}
