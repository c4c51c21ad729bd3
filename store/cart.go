package store

import (
	"github.com/junaidrashid-git/stitchlink-api/models"
	"github.com/shopspring/decimal"
)

// AddToCart appends item. Identical design/colour pairs are kept as
// separate lines.
func (s *Store) AddToCart(item models.CartItem) {
	item.Design = item.Design.Clone()

	s.mu.Lock()
	s.cart = append(s.cart, item)
	s.mu.Unlock()

	s.emit(Change{Kind: ChangeCart})
}

func (s *Store) RemoveFromCart(itemID string) error {
	s.mu.Lock()
	idx := -1
	for i, item := range s.cart {
		if item.ID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrCartItemNotFound
	}
	s.cart = append(s.cart[:idx:idx], s.cart[idx+1:]...)
	s.mu.Unlock()

	s.emit(Change{Kind: ChangeCart})
	return nil
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()

	s.emit(Change{Kind: ChangeCart})
}

func (s *Store) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCart(s.cart)
}

func (s *Store) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CartTotal(s.cart)
}
