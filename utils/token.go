package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired เช็ค exp claim ของ token ที่ persist ไว้ ตอน bootstrap เท่านั้น
// ไม่ verify ลายเซ็น (server เป็นคนตัดสิน) และ token ที่ parse ไม่ได้ถือว่า
// เป็น opaque credential ใช้ต่อได้
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
