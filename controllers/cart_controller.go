package controllers

import (
	"context"
	"errors"

	"github.com/DK1uTea/food-ordering-client/entity"
	"github.com/DK1uTea/food-ordering-client/pkg/resp"
	"github.com/DK1uTea/food-ordering-client/services"
	"github.com/DK1uTea/food-ordering-client/state"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CheckoutAPI คือ endpoint สั่ง order ที่ checkout ใช้
type CheckoutAPI interface {
	Place(ctx context.Context, restaurantID string, items []services.OrderItemIn) (*entity.Order, error)
}

type CartController struct {
	Cart   *state.CartStore
	Orders CheckoutAPI
}

func NewCartController(cart *state.CartStore, orders CheckoutAPI) *CartController {
	return &CartController{Cart: cart, Orders: orders}
}

// ---------------- DTO ----------------

type addItemIn struct {
	ItemID       string          `json:"itemId" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Quantity     int             `json:"quantity" binding:"required,min=1"`
	RestaurantID string          `json:"restaurantId" binding:"required"`
}

type updateQtyIn struct {
	ItemID   string `json:"itemId" binding:"required"`
	Quantity int    `json:"quantity"`
}

// ---------------- Handlers ----------------

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	resp.OK(c, ctl.Cart.Cart())
}

// POST /cart/items
func (ctl *CartController) Add(c *gin.Context) {
	var req addItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := ctl.Cart.AddItem(state.CartLine{
		ItemID:       req.ItemID,
		Name:         req.Name,
		UnitPrice:    req.UnitPrice,
		Quantity:     req.Quantity,
		RestaurantID: req.RestaurantID,
	})
	if err != nil {
		if errors.Is(err, state.ErrDifferentRestaurant) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, cart)
}

// PATCH /cart/items/qty
func (ctl *CartController) UpdateQty(c *gin.Context) {
	var req updateQtyIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := ctl.Cart.UpdateQuantity(req.ItemID, req.Quantity)
	if err != nil {
		// จำนวนไม่ valid: ตะกร้าไม่ขยับ แจ้งเตือนเฉยๆ
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, cart)
}

// DELETE /cart/items/:itemId
func (ctl *CartController) Remove(c *gin.Context) {
	resp.OK(c, ctl.Cart.RemoveItem(c.Param("itemId")))
}

// POST /cart/checkout
// สั่ง order จากตะกร้าปัจจุบัน ล้างตะกร้าเมื่อ server รับ order แล้วเท่านั้น
func (ctl *CartController) Checkout(c *gin.Context) {
	cart := ctl.Cart.Cart()
	if len(cart.Lines) == 0 {
		resp.BadRequest(c, "cart is empty")
		return
	}

	items := make([]services.OrderItemIn, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		items = append(items, services.OrderItemIn{MenuItemID: l.ItemID, Quantity: l.Quantity})
	}

	order, err := ctl.Orders.Place(c.Request.Context(), cart.Lines[0].RestaurantID, items)
	if err != nil {
		resp.BadGateway(c, err)
		return
	}

	cleared := ctl.Cart.Checkout()
	resp.Created(c, gin.H{"order": order, "cart": cleared})
}
