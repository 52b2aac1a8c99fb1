package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/DK1uTea/food-ordering-client/entity"
)

type OrderService struct {
	api *Client
}

func NewOrderService(api *Client) *OrderService {
	return &OrderService{api: api}
}

// OrderItemIn คือรูปแบบ item ที่ POST /orders ต้องการ
type OrderItemIn struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

type placeOrderIn struct {
	RestaurantID string        `json:"restaurantId"`
	Items        []OrderItemIn `json:"items"`
}

type updateStatusIn struct {
	Status string `json:"status"`
}

func (s *OrderService) Place(ctx context.Context, restaurantID string, items []OrderItemIn) (*entity.Order, error) {
	var out entity.Order
	in := placeOrderIn{RestaurantID: restaurantID, Items: items}
	if err := s.api.do(ctx, http.MethodPost, "/orders", in, &out); err != nil {
		return nil, fmt.Errorf("order placement failed: %w", err)
	}
	return &out, nil
}

func (s *OrderService) History(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	if err := s.api.do(ctx, http.MethodGet, "/orders/my-orders", nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch order history: %w", err)
	}
	return out, nil
}

func (s *OrderService) Pending(ctx context.Context, restaurantID string) ([]entity.Order, error) {
	var out []entity.Order
	path := "/orders/restaurant/" + restaurantID + "/pending"
	if err := s.api.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch restaurant orders: %w", err)
	}
	return out, nil
}

func (s *OrderService) Get(ctx context.Context, restaurantID, orderID string) (*entity.Order, error) {
	var out entity.Order
	path := "/orders/restaurant/" + restaurantID + "/orders/" + orderID
	if err := s.api.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch order details: %w", err)
	}
	return &out, nil
}

// UpdateStatus เปลี่ยนสถานะ order ฝั่ง owner (CONFIRMED/CANCELLED)
func (s *OrderService) UpdateStatus(ctx context.Context, restaurantID, orderID, status string) (*entity.Order, error) {
	var out entity.Order
	path := "/orders/restaurant/" + restaurantID + "/orders/" + orderID + "/status"
	if err := s.api.do(ctx, http.MethodPut, path, updateStatusIn{Status: status}, &out); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	return &out, nil
}
