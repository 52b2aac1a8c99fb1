package storage

import (
	"encoding/json"
	"time"

	"github.com/DK1uTea/food-ordering-client/entity"
	"github.com/DK1uTea/food-ordering-client/state"
	"github.com/DK1uTea/food-ordering-client/utils"
)

// Bootstrap อ่าน session ที่ persist ไว้ครั้งเดียวตอน start
// token+user ครบและ parse ได้ -> authenticated, นอกนั้น fallback เป็น
// anonymous เงียบๆ ข้อมูลพังไม่ใช่ hard failure
func Bootstrap(kv *Store) state.Session {
	token, ok := kv.Get(KeyToken)
	if !ok || token == "" {
		return state.Anonymous()
	}
	raw, ok := kv.Get(KeyUser)
	if !ok {
		return state.Anonymous()
	}

	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return state.Anonymous()
	}
	if utils.TokenExpired(token, time.Now()) {
		return state.Anonymous()
	}
	return state.Authenticated(&user)
}

// SaveSession persist token+user หลัง login/register สำเร็จ
func SaveSession(kv *Store, token string, user *entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := kv.Set(KeyToken, token); err != nil {
		return err
	}
	return kv.Set(KeyUser, string(raw))
}

// ClearSession ลบทั้งสอง key ตอน logout
func ClearSession(kv *Store) error {
	if err := kv.Delete(KeyToken); err != nil {
		return err
	}
	return kv.Delete(KeyUser)
}
