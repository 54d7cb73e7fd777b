package cart

import (
	"errors"
	"sync"

	"motomart/internal/domain"
)

// ErrQuantity is returned when a caller tries to add a non-positive
// quantity. Adds reject bad quantities instead of clamping so caller bugs
// surface; the HTTP input boundary clamps user input independently.
var ErrQuantity = errors.New("cart: quantity must be at least 1")

// Line pairs an immutable catalog product with a quantity >= 1.
type Line struct {
	Product *domain.Product
	Qty     int
}

func (l Line) Subtotal() int64 { return l.Product.Price * int64(l.Qty) }

// Store is the single source of truth for one session's cart. Lines keep
// insertion order and a product appears at most once. Aggregates are
// recomputed on read, never cached.
type Store struct {
	mu       sync.RWMutex
	lines    []Line
	onChange func()
}

func NewStore() *Store { return &Store{} }

// Add appends a line for p, or bumps the quantity of an existing line.
func (s *Store) Add(p *domain.Product, qty int) error {
	if qty < 1 {
		return ErrQuantity
	}
	s.mu.Lock()
	for i := range s.lines {
		if s.lines[i].Product.ID == p.ID {
			s.lines[i].Qty += qty
			s.mu.Unlock()
			s.notify()
			return nil
		}
	}
	s.lines = append(s.lines, Line{Product: p, Qty: qty})
	s.mu.Unlock()
	s.notify()
	return nil
}

// SetQuantity sets the line for productID to qty. A qty <= 0 removes the
// line; an unknown productID is a no-op.
func (s *Store) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		s.Remove(productID)
		return
	}
	s.mu.Lock()
	changed := false
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Qty = qty
			changed = true
			break
		}
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// Remove deletes the line for productID if present.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	changed := false
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			changed = true
			break
		}
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	had := len(s.lines) > 0
	s.lines = nil
	s.mu.Unlock()
	if had {
		s.notify()
	}
}

// Lines returns a copy of the line items in insertion order.
func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems is the sum of all line quantities.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, l := range s.lines {
		n += l.Qty
	}
	return n
}

// TotalAmount sums price x quantity at each product's current price.
func (s *Store) TotalAmount() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total int64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
