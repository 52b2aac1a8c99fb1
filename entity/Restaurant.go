package entity

type Restaurant struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     Address `json:"address"`
	IsActive    bool    `json:"isActive"`
}
