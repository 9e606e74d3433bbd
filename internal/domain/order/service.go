// internal/domain/order/service.go
package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/S-Khan786/Medicine-Mart-App/internal/catalog"
	"github.com/S-Khan786/Medicine-Mart-App/internal/config"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/session"
	"github.com/S-Khan786/Medicine-Mart-App/internal/infrastructure/store"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidCoupon is returned for blank or unknown coupon codes
	ErrInvalidCoupon = errors.New("invalid coupon code")
	// ErrEmptyCart is returned when checkout is attempted with no items
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNotFound is returned when an order number does not exist
	ErrNotFound = errors.New("order not found")
)

// validCoupons maps coupon codes to their flat rupee discounts
var validCoupons = map[string]float64{
	"FIRST10":   10,
	"WELCOME20": 20,
	"FREESHIP":  50,
}

// Service handles checkout quotes and order placement
type Service struct {
	mu     sync.Mutex
	store  store.Store
	config *config.Config
	logger *logrus.Logger
}

// NewService creates a new order service
func NewService(st store.Store, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{store: st, config: cfg, logger: logger}
}

// QuoteCart prices a cart total with delivery fee and optional coupon.
// Delivery is free at or above the free-delivery threshold. An empty
// coupon code produces no discount; an unknown one is ErrInvalidCoupon.
func (s *Service) QuoteCart(subtotal float64, couponCode string) (Quote, error) {
	quote := Quote{Subtotal: subtotal}

	if subtotal < s.config.Checkout.FreeDeliveryThreshold {
		quote.DeliveryFee = s.config.Checkout.DeliveryFee
	}

	if couponCode != "" {
		discount, ok := validCoupons[strings.ToUpper(couponCode)]
		if !ok {
			return Quote{}, ErrInvalidCoupon
		}
		quote.Discount = discount
		quote.CouponCode = strings.ToUpper(couponCode)
	}

	quote.Total = quote.Subtotal + quote.DeliveryFee - quote.Discount
	return quote, nil
}

// PlaceOrder snapshots the cart entries into an order, simulates the
// payment-processing delay, and appends the order to the user's
// history in the store. The caller clears the cart on success.
func (s *Service) PlaceOrder(ctx context.Context, user session.User, items []catalog.Product, couponCode, addressID string) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Price
	}

	quote, err := s.QuoteCart(subtotal, couponCode)
	if err != nil {
		return nil, err
	}

	// Simulated processing delay; honors cancellation so an abandoned
	// checkout never records an order.
	if s.config.Checkout.ProcessingDelay > 0 {
		timer := time.NewTimer(s.config.Checkout.ProcessingDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	ord := &Order{
		OrderNumber: newOrderNumber(),
		Phone:       user.Phone,
		Name:        user.Name,
		Items:       aggregateItems(items),
		Subtotal:    quote.Subtotal,
		DeliveryFee: quote.DeliveryFee,
		Discount:    quote.Discount,
		Total:       quote.Total,
		CouponCode:  quote.CouponCode,
		AddressID:   addressID,
		Status:      StatusProcessing,
		PlacedAt:    time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.loadHistory(user.Phone)
	history = append(history, *ord)
	s.saveHistory(user.Phone, history)

	s.logger.WithFields(logrus.Fields{
		"order_number": ord.OrderNumber,
		"total":        ord.Total,
		"items":        len(ord.Items),
	}).Info("Order placed")

	return ord, nil
}

// Orders returns the user's order history, newest last
func (s *Service) Orders(user session.User) []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadHistory(user.Phone)
}

// Order looks up one order by number in the user's history
func (s *Service) Order(user session.User, orderNumber string) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ord := range s.loadHistory(user.Phone) {
		if ord.OrderNumber == orderNumber {
			return &ord, nil
		}
	}
	return nil, ErrNotFound
}

// loadHistory reads the stored history; absent or malformed values
// yield an empty history, logged only. Caller holds the lock.
func (s *Service) loadHistory(phone string) []Order {
	data, ok, err := s.store.Read(store.KeyOrderPrefix + phone)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to read order history")
		return nil
	}
	if !ok {
		return nil
	}

	var history []Order
	if err := json.Unmarshal(data, &history); err != nil {
		s.logger.WithError(err).Warn("Malformed order history, treating as empty")
		return nil
	}
	return history
}

// saveHistory persists the history. Caller holds the lock.
func (s *Service) saveHistory(phone string, history []Order) {
	data, err := json.Marshal(history)
	if err != nil {
		s.logger.WithError(err).Error("Failed to encode order history")
		return
	}
	if err := s.store.Write(store.KeyOrderPrefix+phone, data); err != nil {
		s.logger.WithError(err).Error("Failed to persist order history")
	}
}

// aggregateItems collapses duplicate cart entries into order lines
func aggregateItems(items []catalog.Product) []Item {
	var lines []Item
	index := make(map[string]int)
	for _, p := range items {
		if i, ok := index[p.ID]; ok {
			lines[i].Quantity++
			lines[i].LineTotal += p.Price
			continue
		}
		index[p.ID] = len(lines)
		lines = append(lines, Item{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  1,
			LineTotal: p.Price,
		})
	}
	return lines
}

func newOrderNumber() string {
	return fmt.Sprintf("MM-%s", strings.ToUpper(uuid.New().String()[:8]))
}
