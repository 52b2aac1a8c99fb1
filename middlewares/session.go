package middlewares

import (
	"net/http"

	"github.com/DK1uTea/food-ordering-client/state"
	"github.com/gin-gonic/gin"
)

// RequireAuth อ่าน session จาก auth store และ (ถ้าระบุ) บังคับ role
// ไม่ verify token ฝั่งนี้ server ปลายทางเป็นคนบังคับสิทธิ์จริง
func RequireAuth(auth *state.AuthStore, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := auth.Session()
		if !s.IsAuthenticated || s.User == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "not logged in"})
			c.Abort()
			return
		}

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if s.User.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Set("user", s.User)
		c.Next()
	}
}
