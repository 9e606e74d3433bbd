// internal/domain/cart/service.go
package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/S-Khan786/Medicine-Mart-App/internal/catalog"
	"github.com/S-Khan786/Medicine-Mart-App/internal/infrastructure/store"
	"github.com/sirupsen/logrus"
)

// ErrNotInCart is returned when an operation names a product id with
// no entry in the cart
var ErrNotInCart = errors.New("product not in cart")

// Notifier receives the transient user-visible notifications cart
// mutations trigger (the "added to cart" toasts of the storefront)
type Notifier interface {
	Notify(title, message string)
}

// LogNotifier is the default Notifier; it writes notifications to the
// application log.
type LogNotifier struct {
	Logger *logrus.Logger
}

func (n LogNotifier) Notify(title, message string) {
	n.Logger.WithField("notification", title).Info(message)
}

// Service holds the cart aggregate: an ordered list of product
// entries, one entry per unit, so the number of entries for an id IS
// its quantity. Every mutation replaces the list wholesale and writes
// through to the preference store.
type Service struct {
	mu       sync.RWMutex
	items    []catalog.Product
	store    store.Store
	notifier Notifier
	logger   *logrus.Logger
}

// NewService creates the cart service and hydrates it from the store.
// A missing or malformed stored cart yields an empty cart; hydration
// failures are logged, never surfaced.
func NewService(st store.Store, notifier Notifier, logger *logrus.Logger) *Service {
	s := &Service{store: st, notifier: notifier, logger: logger}
	s.hydrate()
	return s
}

func (s *Service) hydrate() {
	data, ok, err := s.store.Read(store.KeyCart)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read stored cart, starting empty")
		return
	}
	if !ok {
		return
	}

	var items []catalog.Product
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.WithError(err).Warn("Malformed stored cart, starting empty")
		return
	}

	s.items = items
}

// Add appends one unit of the product. It always succeeds and fires
// the "added to cart" notification.
func (s *Service) Add(product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]catalog.Product, 0, len(s.items)+1)
	next = append(next, s.items...)
	next = append(next, product)
	s.replace(next)

	s.notifier.Notify("Added to cart", fmt.Sprintf("%s has been added to your cart.", product.Name))
}

// RemoveProduct removes ALL entries for the id in one operation, the
// "remove line" action distinct from DecreaseQuantity. Idempotent:
// removing an absent id leaves the cart unchanged and returns
// ErrNotInCart so callers can report it.
func (s *Service) RemoveProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removedName string
	next := make([]catalog.Product, 0, len(s.items))
	for _, item := range s.items {
		if item.ID == id {
			removedName = item.Name
			continue
		}
		next = append(next, item)
	}

	if removedName == "" {
		return ErrNotInCart
	}

	s.replace(next)
	s.notifier.Notify("Removed from cart", fmt.Sprintf("%s has been removed from your cart.", removedName))
	return nil
}

// IncreaseQuantity appends a duplicate of an existing entry. No-op if
// the id is not in the cart.
func (s *Service) IncreaseQuantity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			next := make([]catalog.Product, 0, len(s.items)+1)
			next = append(next, s.items...)
			next = append(next, item)
			s.replace(next)
			return
		}
	}
}

// DecreaseQuantity removes exactly one entry for the id, the first
// found. No-op if absent; removing the last entry drops the id from
// the cart entirely, so there is no "quantity 0 but still in cart".
func (s *Service) DecreaseQuantity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			next := make([]catalog.Product, 0, len(s.items)-1)
			next = append(next, s.items[:i]...)
			next = append(next, s.items[i+1:]...)
			s.replace(next)
			return
		}
	}
}

// Clear empties the cart
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replace([]catalog.Product{})
}

// Items returns a snapshot of the cart entries in order
func (s *Service) Items() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Line is the display view of a cart entry: the product with its
// quantity aggregated across duplicate entries.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Lines aggregates duplicate entries into per-product lines, in
// first-seen order
func (s *Service) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var lines []Line
	index := make(map[string]int)
	for _, item := range s.items {
		if i, ok := index[item.ID]; ok {
			lines[i].Quantity++
			continue
		}
		index[item.ID] = len(lines)
		lines = append(lines, Line{Product: item, Quantity: 1})
	}
	return lines
}

// Total sums Price over all entries. Discount and OriginalPrice are
// intentionally ignored at aggregation time; coupon discounts apply
// at checkout on top of this figure.
func (s *Service) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, item := range s.items {
		total += item.Price
	}
	return total
}

// Count returns the number of entries (units) in the cart
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Quantity returns how many units of the id are in the cart
func (s *Service) Quantity(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		if item.ID == id {
			count++
		}
	}
	return count
}

// replace swaps in the new list and writes it through to the store.
// Caller holds the write lock, so persisted state never interleaves
// between mutations.
func (s *Service) replace(next []catalog.Product) {
	s.items = next

	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.WithError(err).Error("Failed to encode cart")
		return
	}
	if err := s.store.Write(store.KeyCart, data); err != nil {
		s.logger.WithError(err).Error("Failed to persist cart")
	}
}
