package controllers

import (
	"context"
	"log"

	"github.com/DK1uTea/food-ordering-client/entity"
	"github.com/DK1uTea/food-ordering-client/pkg/resp"
	"github.com/DK1uTea/food-ordering-client/services"
	"github.com/DK1uTea/food-ordering-client/state"
	"github.com/DK1uTea/food-ordering-client/storage"
	"github.com/gin-gonic/gin"
)

// AuthAPI คือส่วนของ remote API ที่ controller นี้ใช้
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*entity.AuthPayload, error)
	Register(ctx context.Context, in services.RegisterIn) (*entity.AuthPayload, error)
}

// OwnerRestaurantAPI ใช้ resolve ร้านของ owner หลัง login
type OwnerRestaurantAPI interface {
	MyRestaurant(ctx context.Context) (*entity.Restaurant, error)
}

type AuthController struct {
	Auth        *state.AuthStore
	Store       *storage.Store
	Svc         AuthAPI
	Restaurants OwnerRestaurantAPI
}

func NewAuthController(auth *state.AuthStore, store *storage.Store, svc AuthAPI, restaurants OwnerRestaurantAPI) *AuthController {
	return &AuthController{Auth: auth, Store: store, Svc: svc, Restaurants: restaurants}
}

// ---------------- DTO ----------------

type loginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type registerIn struct {
	Name            string `json:"name" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Street          string `json:"street" binding:"required"`
	City            string `json:"city" binding:"required"`
	State           string `json:"state" binding:"required"`
	ZipCode         string `json:"zipCode" binding:"required"`
	Country         string `json:"country" binding:"required"`
}

// ---------------- Handlers ----------------

// POST /auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ctl.Auth.Dispatch(state.LoginRequest{})

	payload, err := ctl.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ctl.Auth.Dispatch(state.LoginFailure{Message: err.Error()})
		resp.Unauthorized(c, err.Error())
		return
	}

	s := ctl.establishSession(c.Request.Context(), payload)
	resp.OK(c, s)
}

// POST /auth/register
func (ctl *AuthController) Register(c *gin.Context) {
	var req registerIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	// เช็คก่อนยิง network เหมือน validation ฝั่ง form
	if req.Password != req.ConfirmPassword {
		resp.BadRequest(c, "passwords do not match")
		return
	}

	ctl.Auth.Dispatch(state.RegisterRequest{})

	payload, err := ctl.Svc.Register(c.Request.Context(), services.RegisterIn{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		Address: entity.Address{
			Street:  req.Street,
			City:    req.City,
			State:   req.State,
			ZipCode: req.ZipCode,
			Country: req.Country,
		},
	})
	if err != nil {
		ctl.Auth.Dispatch(state.RegisterFailure{Message: err.Error()})
		resp.BadRequest(c, err.Error())
		return
	}

	// register สำเร็จแล้ว login ต่อเลยด้วย payload เดียวกัน
	ctl.Auth.Dispatch(state.RegisterSuccess{})
	s := ctl.establishSession(c.Request.Context(), payload)
	resp.Created(c, s)
}

// POST /auth/logout
func (ctl *AuthController) Logout(c *gin.Context) {
	if err := storage.ClearSession(ctl.Store); err != nil {
		log.Printf("clear session: %v", err)
	}
	s := ctl.Auth.Dispatch(state.Logout{})
	resp.OK(c, s)
}

// GET /auth/session
func (ctl *AuthController) Session(c *gin.Context) {
	resp.OK(c, ctl.Auth.Session())
}

// establishSession persist token+user แล้วค่อย dispatch LoginSuccess
// ลำดับสำคัญ: token ต้องอยู่ใน storage ก่อนเรียก /restaurants/my
func (ctl *AuthController) establishSession(ctx context.Context, payload *entity.AuthPayload) state.Session {
	user := payload.User

	if err := storage.SaveSession(ctl.Store, payload.Token, &user); err != nil {
		log.Printf("persist session: %v", err)
	}

	if user.Role == entity.RoleRestaurantOwner && user.Restaurant == "" {
		if r, err := ctl.Restaurants.MyRestaurant(ctx); err != nil {
			log.Printf("resolve owner restaurant: %v", err)
		} else {
			user.Restaurant = r.ID
			if err := storage.SaveSession(ctl.Store, payload.Token, &user); err != nil {
				log.Printf("persist session: %v", err)
			}
		}
	}

	return ctl.Auth.Dispatch(state.LoginSuccess{User: &user})
}
