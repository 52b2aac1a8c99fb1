package routes

import (
	"github.com/DK1uTea/food-ordering-client/controllers"
	"github.com/DK1uTea/food-ordering-client/entity"
	"github.com/DK1uTea/food-ordering-client/middlewares"
	"github.com/DK1uTea/food-ordering-client/services"
	"github.com/DK1uTea/food-ordering-client/state"
	"github.com/DK1uTea/food-ordering-client/storage"
	"github.com/gin-gonic/gin"
)

// Deps คือ state + adapter ที่ view layer ใช้ ฉีดเข้ามาทางเดียว
// ไม่มี global ให้ controller ไปหยิบเอง
type Deps struct {
	Auth        *state.AuthStore
	Cart        *state.CartStore
	Store       *storage.Store
	AuthSvc     *services.AuthService
	Restaurants *services.RestaurantService
	Orders      *services.OrderService
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RequestID())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	authCtrl := controllers.NewAuthController(d.Auth, d.Store, d.AuthSvc, d.Restaurants)
	restCtrl := controllers.NewRestaurantController(d.Restaurants)
	cartCtrl := controllers.NewCartController(d.Cart, d.Orders)
	orderCtrl := controllers.NewOrderController(d.Orders)
	ownerCtrl := controllers.NewOwnerOrderController(d.Auth, d.Orders)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", authCtrl.Logout)
		a.GET("/session", authCtrl.Session)
	}

	// Browse (public)
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id/menus", restCtrl.Menus)

	// Cart + orders (user)
	u := r.Group("/", middlewares.RequireAuth(d.Auth))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/qty", cartCtrl.UpdateQty)
		u.DELETE("/cart/items/:itemId", cartCtrl.Remove)
		u.POST("/cart/checkout", cartCtrl.Checkout)

		u.GET("/orders", orderCtrl.ListForMe)
	}

	// Partner (restaurant owner)
	partner := r.Group("/partner", middlewares.RequireAuth(d.Auth, entity.RoleRestaurantOwner))
	{
		partner.GET("/orders/pending", ownerCtrl.Pending)
		partner.GET("/orders/:orderId", ownerCtrl.Detail)
		partner.PATCH("/orders/:orderId/status", ownerCtrl.UpdateStatus)
	}
}
