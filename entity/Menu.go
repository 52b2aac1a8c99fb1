package entity

import "github.com/shopspring/decimal"

// MenuItem จาก GET /restaurants/:id/menus
// Quantity คือ stock ฝั่งร้าน ไม่ใช่จำนวนในตะกร้า
type MenuItem struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}
