package services

import (
	"errors"
	"fmt"

	"motomart/internal/cart"
	"motomart/internal/feed"
)

// TaxRatePct is the GST applied to the cart subtotal, in percent.
const TaxRatePct = 18

var ErrUnknownProduct = errors.New("cart: unknown product")

type CartService struct {
	Carts *cart.Manager
	Feed  *feed.Feed
}

func NewCartService(carts *cart.Manager, f *feed.Feed) *CartService {
	return &CartService{Carts: carts, Feed: f}
}

// Add resolves the product and adds qty of it to the session's cart.
// Adding an out-of-stock product is allowed; the add control is disabled
// upstream and stock is not a cart invariant.
func (s *CartService) Add(sid, productID string, qty int) error {
	p, ok := s.Feed.Product(productID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}
	return s.Carts.Get(sid).Add(p, qty)
}

func (s *CartService) SetQuantity(sid, productID string, qty int) {
	s.Carts.Get(sid).SetQuantity(productID, qty)
}

func (s *CartService) Remove(sid, productID string) {
	s.Carts.Get(sid).Remove(productID)
}

func (s *CartService) Clear(sid string) {
	s.Carts.Get(sid).Clear()
}

// CartView is the order summary shape every cart-bearing page renders.
type CartView struct {
	Lines      []cart.Line
	TotalItems int
	Subtotal   int64
	Tax        int64
	Total      int64
}

func (s *CartService) View(sid string) CartView {
	st := s.Carts.Get(sid)
	sub := st.TotalAmount()
	tax := sub * TaxRatePct / 100
	return CartView{
		Lines:      st.Lines(),
		TotalItems: st.TotalItems(),
		Subtotal:   sub,
		Tax:        tax,
		Total:      sub + tax,
	}
}
