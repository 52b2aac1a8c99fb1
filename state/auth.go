package state

import (
	"sync"

	"github.com/DK1uTea/food-ordering-client/entity"
)

// Session คือสถานะ auth ปัจจุบันของ client
type Session struct {
	User            *entity.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsLoading       bool         `json:"isLoading"`
	Error           string       `json:"error,omitempty"`
}

func Anonymous() Session {
	return Session{}
}

func Authenticated(u *entity.User) Session {
	return Session{User: u, IsAuthenticated: true}
}

// Event ของ auth store เป็น tagged variant ปิดชุด
//
// transition table:
//
//	LoginRequest / RegisterRequest -> loading, ล้าง error เดิม
//	LoginSuccess                   -> authenticated + user, เลิก loading
//	LoginFailure / RegisterFailure -> เก็บ error, เลิก loading, flag auth คงเดิม
//	RegisterSuccess                -> เลิก loading เท่านั้น ไม่ authenticate
//	                                  (caller ต้องยิง LoginSuccess เองต่อ)
//	Logout                         -> ล้าง user + flag
//	                                  แต่ IsLoading/Error คงค่าเดิมไว้ตาม behavior
//	                                  ของระบบเดิม ยังไม่ยืนยันว่าตั้งใจ
type Event interface{ authEvent() }

type LoginRequest struct{}
type LoginSuccess struct{ User *entity.User }
type LoginFailure struct{ Message string }
type RegisterRequest struct{}
type RegisterSuccess struct{}
type RegisterFailure struct{ Message string }
type Logout struct{}

func (LoginRequest) authEvent() {}
func (LoginSuccess) authEvent() {}
func (LoginFailure) authEvent() {}
func (RegisterRequest) authEvent() {}
func (RegisterSuccess) authEvent() {}
func (RegisterFailure) authEvent() {}
func (Logout) authEvent() {}

func reduce(s Session, ev Event) Session {
	switch ev := ev.(type) {
	case LoginRequest, RegisterRequest:
		s.IsLoading = true
		s.Error = ""
	case LoginSuccess:
		s.IsLoading = false
		s.User = ev.User
		s.IsAuthenticated = true
	case LoginFailure:
		s.IsLoading = false
		s.Error = ev.Message
	case RegisterSuccess:
		s.IsLoading = false
	case RegisterFailure:
		s.IsLoading = false
		s.Error = ev.Message
	case Logout:
		s.User = nil
		s.IsAuthenticated = false
	}
	return s
}

// AuthStore ถือ Session ปัจจุบัน mutate ได้ผ่าน Dispatch เท่านั้น
type AuthStore struct {
	mu sync.Mutex
	s  Session
}

// NewAuthStore รับ session เริ่มต้นจาก storage.Bootstrap
func NewAuthStore(initial Session) *AuthStore {
	return &AuthStore{s: initial}
}

func (st *AuthStore) Session() Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s
}

func (st *AuthStore) Dispatch(ev Event) Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.s = reduce(st.s, ev)
	return st.s
}
