package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// สถานะที่ order service ฝั่ง server ใช้
const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusCancelled = "CANCELLED"
)

type OrderItem struct {
	MenuItemID string          `json:"menuItemId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

type Order struct {
	ID           string          `json:"_id"`
	RestaurantID string          `json:"restaurantId"`
	CustomerID   string          `json:"customerId"`
	Items        []OrderItem     `json:"items"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}
