package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/DK1uTea/food-ordering-client/entity"
)

type RestaurantService struct {
	api *Client
}

func NewRestaurantService(api *Client) *RestaurantService {
	return &RestaurantService{api: api}
}

func (s *RestaurantService) List(ctx context.Context) ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	if err := s.api.do(ctx, http.MethodGet, "/restaurants", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch all restaurants: %w", err)
	}
	return out, nil
}

func (s *RestaurantService) Menu(ctx context.Context, restaurantID string) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	if err := s.api.do(ctx, http.MethodGet, "/restaurants/"+restaurantID+"/menus", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch restaurant menu: %w", err)
	}
	return out, nil
}

// MyRestaurant หา restaurant ของ owner ที่ login อยู่
// API ตอบเป็น list เอาตัวแรก
func (s *RestaurantService) MyRestaurant(ctx context.Context) (*entity.Restaurant, error) {
	var out []entity.Restaurant
	if err := s.api.do(ctx, http.MethodGet, "/restaurants/my", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch restaurant: %w", err)
	}
	if len(out) == 0 {
		return nil, errors.New("no restaurant found for this owner")
	}
	return &out[0], nil
}
