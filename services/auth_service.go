package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DK1uTea/food-ordering-client/entity"
)

// AuthService ห่อ endpoint แลก credential ของ API
type AuthService struct {
	api *Client
}

func NewAuthService(api *Client) *AuthService {
	return &AuthService{api: api}
}

type loginIn struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterIn struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Name     string         `json:"name"`
	Phone    string         `json:"phone"`
	Address  entity.Address `json:"address"`
}

// Login แลก email+password เป็น {user, token}
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.AuthPayload, error) {
	var out entity.AuthPayload
	if err := s.api.do(ctx, http.MethodPost, "/auth/login", loginIn{Email: email, Password: password}, &out); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &out, nil
}

func (s *AuthService) Register(ctx context.Context, in RegisterIn) (*entity.AuthPayload, error) {
	var out entity.AuthPayload
	if err := s.api.do(ctx, http.MethodPost, "/auth/register", in, &out); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return &out, nil
}
