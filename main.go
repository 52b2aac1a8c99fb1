package main

import (
	"log"

	"github.com/DK1uTea/food-ordering-client/configs"
	"github.com/DK1uTea/food-ordering-client/routes"
	"github.com/DK1uTea/food-ordering-client/services"
	"github.com/DK1uTea/food-ordering-client/state"
	"github.com/DK1uTea/food-ordering-client/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// local storage (token + user)
	store, err := storage.Open(cfg.SessionDB)
	if err != nil {
		log.Fatalf("open session storage: %v", err)
	}

	// bootstrap session จากข้อมูลที่ persist ไว้ พังก็เริ่ม anonymous
	session := storage.Bootstrap(store)
	if session.IsAuthenticated {
		log.Printf("restored session for %s", session.User.Email)
	}

	auth := state.NewAuthStore(session)
	cart := state.NewCartStore()

	// remote API adapters
	api := services.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, store)

	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		Auth:        auth,
		Cart:        cart,
		Store:       store,
		AuthSvc:     services.NewAuthService(api),
		Restaurants: services.NewRestaurantService(api),
		Orders:      services.NewOrderService(api),
	})

	log.Printf("client listening on :%s (api %s)", cfg.Port, cfg.APIBaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
