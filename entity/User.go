package entity

// Roles the remote auth service issues.
const (
	RoleUser            = "user"
	RoleRestaurantOwner = "restaurant-owner"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// User คือ profile ที่ API ส่งกลับมาตอน login/register
// Restaurant จะถูกเติมทีหลังสำหรับ role restaurant-owner (ดู GET /restaurants/my)
type User struct {
	ID         string  `json:"_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Role       string  `json:"role"`
	Restaurant string  `json:"restaurant,omitempty"`
	Address    Address `json:"address"`
}

// AuthPayload คือ response ของ POST /auth/login และ /auth/register
type AuthPayload struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
