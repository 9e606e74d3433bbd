// internal/interfaces/http/handlers/order_test.go
package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/S-Khan786/Medicine-Mart-App/internal/catalog"
	"github.com/S-Khan786/Medicine-Mart-App/internal/config"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/order"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/session"
	"github.com/S-Khan786/Medicine-Mart-App/internal/infrastructure/store"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "MediQuick"
	cfg.Checkout.DeliveryFee = 40
	cfg.Checkout.FreeDeliveryThreshold = 299
	return cfg
}

// newOrderFixture wires a router whose /orders route runs under a stub
// of the auth middleware: it seeds the context with the given claims,
// the same keys the real middleware sets after validating a token.
func newOrderFixture(t *testing.T, claimName, claimPhone string) (*gin.Engine, *order.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	cfg := orderTestConfig()
	st := store.NewMemoryStore()
	orders := order.NewService(st, cfg, logger)
	h := NewOrderHandler(orders, nil, nil, nil, nil, cfg)

	r := gin.New()
	r.GET("/orders", func(c *gin.Context) {
		if claimPhone != "" {
			c.Set("user_name", claimName)
			c.Set("user_phone", claimPhone)
		}
		c.Next()
	}, h.GetOrders)
	return r, orders
}

func getOrders(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	r.ServeHTTP(w, req)
	return w
}

func placeTestOrder(t *testing.T, orders *order.Service, user session.User) *order.Order {
	t.Helper()
	ord, err := orders.PlaceOrder(context.Background(), user, []catalog.Product{
		{ID: "1", Name: "Paracetamol", Price: 25},
	}, "", "")
	require.NoError(t, err)
	return ord
}

func TestGetOrdersScopedToTokenHolder(t *testing.T) {
	// A token for Asha must return Asha's history even though Ravi is
	// the most recent sign-in held by the shared session.
	r, orders := newOrderFixture(t, "Asha", "9876543210")

	ashaOrder := placeTestOrder(t, orders, session.User{Name: "Asha", Phone: "9876543210"})
	raviOrder := placeTestOrder(t, orders, session.User{Name: "Ravi", Phone: "9123456780"})

	w := getOrders(r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ashaOrder.OrderNumber)
	assert.NotContains(t, w.Body.String(), raviOrder.OrderNumber)
}

func TestGetOrdersUnauthorizedWithoutClaims(t *testing.T) {
	r, _ := newOrderFixture(t, "", "")

	w := getOrders(r)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetOrdersEmptyHistory(t *testing.T) {
	r, _ := newOrderFixture(t, "Asha", "9876543210")

	w := getOrders(r)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}
