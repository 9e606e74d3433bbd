// internal/domain/order/service_test.go
package order

import (
	"context"
	"testing"
	"time"

	"github.com/S-Khan786/Medicine-Mart-App/internal/catalog"
	"github.com/S-Khan786/Medicine-Mart-App/internal/config"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/session"
	"github.com/S-Khan786/Medicine-Mart-App/internal/infrastructure/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	cfg := &config.Config{}
	cfg.Checkout.DeliveryFee = 40
	cfg.Checkout.FreeDeliveryThreshold = 299
	cfg.Checkout.ProcessingDelay = 0

	return NewService(store.NewMemoryStore(), cfg, logger)
}

var testUser = session.User{Name: "Asha", Phone: "9876543210"}

func TestQuoteDeliveryFee(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name     string
		subtotal float64
		coupon   string
		wantFee  float64
		wantDisc float64
	}{
		{"below threshold pays delivery", 100, "", 40, 0},
		{"at threshold is free", 299, "", 0, 0},
		{"above threshold is free", 500, "", 0, 0},
		{"FIRST10 flat discount", 100, "FIRST10", 40, 10},
		{"WELCOME20 flat discount", 500, "WELCOME20", 0, 20},
		{"FREESHIP flat discount", 100, "FREESHIP", 40, 50},
		{"coupon code is case insensitive", 100, "welcome20", 40, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := svc.QuoteCart(tt.subtotal, tt.coupon)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFee, quote.DeliveryFee)
			assert.Equal(t, tt.wantDisc, quote.Discount)
			assert.Equal(t, tt.subtotal+tt.wantFee-tt.wantDisc, quote.Total)
		})
	}
}

func TestQuoteInvalidCoupon(t *testing.T) {
	svc := newTestService()

	_, err := svc.QuoteCart(100, "BOGUS")
	assert.ErrorIs(t, err, ErrInvalidCoupon)
}

func TestPlaceOrderAggregatesLines(t *testing.T) {
	svc := newTestService()

	items := []catalog.Product{
		{ID: "1", Name: "Paracetamol", Price: 50},
		{ID: "10", Name: "Ibuprofen 400", Price: 38},
		{ID: "1", Name: "Paracetamol", Price: 50},
	}

	ord, err := svc.PlaceOrder(context.Background(), testUser, items, "", "addr-1")
	require.NoError(t, err)

	assert.Equal(t, StatusProcessing, ord.Status)
	assert.Equal(t, float64(138), ord.Subtotal)
	assert.Equal(t, float64(40), ord.DeliveryFee)
	assert.Equal(t, float64(178), ord.Total)
	assert.Regexp(t, `^MM-[0-9A-F]{8}$`, ord.OrderNumber)

	require.Len(t, ord.Items, 2)
	assert.Equal(t, 2, ord.Items[0].Quantity)
	assert.Equal(t, float64(100), ord.Items[0].LineTotal)
	assert.Equal(t, 1, ord.Items[1].Quantity)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc := newTestService()

	_, err := svc.PlaceOrder(context.Background(), testUser, nil, "", "")
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderRespectsCancellation(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	cfg := &config.Config{}
	cfg.Checkout.DeliveryFee = 40
	cfg.Checkout.FreeDeliveryThreshold = 299
	cfg.Checkout.ProcessingDelay = time.Minute

	svc := NewService(store.NewMemoryStore(), cfg, logger)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.PlaceOrder(ctx, testUser, []catalog.Product{{ID: "1", Price: 50}}, "", "")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, svc.Orders(testUser))
}

func TestOrderHistoryRoundTrip(t *testing.T) {
	svc := newTestService()

	first, err := svc.PlaceOrder(context.Background(), testUser, []catalog.Product{{ID: "1", Name: "Paracetamol", Price: 50}}, "", "")
	require.NoError(t, err)

	history := svc.Orders(testUser)
	require.Len(t, history, 1)
	assert.Equal(t, first.OrderNumber, history[0].OrderNumber)

	// A different user sees an empty history.
	assert.Empty(t, svc.Orders(session.User{Phone: "0000000000"}))

	found, err := svc.Order(testUser, first.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, first.Total, found.Total)

	_, err = svc.Order(testUser, "MM-MISSING1")
	assert.ErrorIs(t, err, ErrNotFound)
}
