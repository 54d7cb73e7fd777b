package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"motomart/internal/cart"
	"motomart/internal/domain"
)

var ErrEmptyCart = errors.New("order: cart is empty")

// Order is a placed (simulated) order: a snapshot of the cart lines and
// totals at placement time. Orders live in memory for the session's
// benefit only; nothing is charged or shipped.
type Order struct {
	ID        string
	SessionID string
	PlacedAt  time.Time
	Details   domain.OrderDetails
	Lines     []cart.Line
	Subtotal  int64
	Tax       int64
	Total     int64
}

type OrderService struct {
	Cart *CartService

	mu     sync.Mutex
	orders map[string]*Order
}

func NewOrderService(cartSvc *CartService) *OrderService {
	return &OrderService{Cart: cartSvc, orders: make(map[string]*Order)}
}

// Place snapshots the session's cart into an order, clears the cart, and
// returns the order. Fails only when the cart is empty.
func (s *OrderService) Place(sid string, d domain.OrderDetails) (*Order, error) {
	cv := s.Cart.View(sid)
	if len(cv.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	o := &Order{
		ID:        uuid.NewString(),
		SessionID: sid,
		PlacedAt:  time.Now(),
		Details:   d,
		Lines:     cv.Lines,
		Subtotal:  cv.Subtotal,
		Tax:       cv.Tax,
		Total:     cv.Total,
	}

	s.mu.Lock()
	s.orders[o.ID] = o
	s.mu.Unlock()

	s.Cart.Clear(sid)
	return o, nil
}

func (s *OrderService) Get(id string) (*Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	return o, ok
}
