package state

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
)

var (
	// ErrDifferentRestaurant: ตะกร้าล็อกร้านเดียว ห้ามข้ามร้าน
	ErrDifferentRestaurant = errors.New("cannot add items from another restaurant to the same cart")
	ErrInvalidQuantity     = errors.New("quantity must be at least 1")
)

// CartLine คือเมนูหนึ่งรายการในตะกร้า snapshot ชื่อ/ราคา ณ ตอนกดเพิ่ม
type CartLine struct {
	ItemID       string          `json:"itemId"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Quantity     int             `json:"quantity"`
	RestaurantID string          `json:"restaurantId"`
}

// Cart เป็น value ล้วน ทุก operation คืน Cart ใหม่ที่ totals ถูกคำนวณจาก
// รายการทั้งหมดเสมอ ไม่มีทางที่ totals จะหลุดจาก Lines
type Cart struct {
	Lines      []CartLine      `json:"lines"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

func emptyCart() Cart {
	return Cart{Lines: []CartLine{}, TotalItems: 0, TotalPrice: decimal.Zero}
}

func recalc(lines []CartLine) Cart {
	items := 0
	price := decimal.Zero
	for _, l := range lines {
		items += l.Quantity
		price = price.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return Cart{Lines: lines, TotalItems: items, TotalPrice: price}
}

func addItem(c Cart, line CartLine) (Cart, error) {
	if line.Quantity < 1 {
		return c, ErrInvalidQuantity
	}
	if len(c.Lines) > 0 && c.Lines[0].RestaurantID != line.RestaurantID {
		return c, ErrDifferentRestaurant
	}

	lines := make([]CartLine, len(c.Lines), len(c.Lines)+1)
	copy(lines, c.Lines)

	merged := false
	for i, l := range lines {
		if l.ItemID == line.ItemID {
			// รายการซ้ำ: บวกจำนวน ชื่อ/ราคายึดของเดิม
			lines[i].Quantity = l.Quantity + line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, line)
	}
	return recalc(lines), nil
}

func removeItem(c Cart, itemID string) Cart {
	found := false
	lines := make([]CartLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		if l.ItemID == itemID {
			found = true
			continue
		}
		lines = append(lines, l)
	}
	if !found {
		return c
	}
	return recalc(lines)
}

func updateQuantity(c Cart, itemID string, qty int) (Cart, error) {
	if qty < 1 {
		return c, ErrInvalidQuantity
	}
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	for i, l := range lines {
		if l.ItemID == itemID {
			lines[i].Quantity = qty
			break
		}
	}
	return recalc(lines), nil
}

// CartStore ถือ Cart ปัจจุบันของ session นี้ (ไม่ persist ข้าม process)
type CartStore struct {
	mu   sync.Mutex
	cart Cart
}

func NewCartStore() *CartStore {
	return &CartStore{cart: emptyCart()}
}

// Cart คืน snapshot ปัจจุบัน
func (s *CartStore) Cart() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// AddItem รวมรายการซ้ำตาม ItemID และ reject ถ้าข้ามร้าน (state ไม่เปลี่ยน)
func (s *CartStore) AddItem(line CartLine) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := addItem(s.cart, line)
	if err != nil {
		return s.cart, err
	}
	s.cart = next
	return next, nil
}

// RemoveItem ลบรายการถ้ามี ไม่มีก็เฉยๆ
func (s *CartStore) RemoveItem(itemID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = removeItem(s.cart, itemID)
	return s.cart
}

// UpdateQuantity ตั้งจำนวนใหม่ qty < 1 ถูกเมินทั้งก้อน (ไม่ clamp)
func (s *CartStore) UpdateQuantity(itemID string, qty int) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := updateQuantity(s.cart, itemID, qty)
	if err != nil {
		return s.cart, err
	}
	s.cart = next
	return next, nil
}

// Checkout ล้างตะกร้าเสมอ เรียกหลัง POST /orders สำเร็จเท่านั้น
func (s *CartStore) Checkout() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = emptyCart()
	return s.cart
}
