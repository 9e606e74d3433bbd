// internal/interfaces/http/handlers/order.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/S-Khan786/Medicine-Mart-App/internal/config"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/address"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/cart"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/order"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/session"
	"github.com/S-Khan786/Medicine-Mart-App/internal/interfaces/http/middleware"
	"github.com/S-Khan786/Medicine-Mart-App/internal/pkg/httpclient"
	"github.com/S-Khan786/Medicine-Mart-App/internal/pkg/pdf"
	"github.com/gin-gonic/gin"
)

// OrderHandler handles checkout and order history endpoints
type OrderHandler struct {
	orders    *order.Service
	cart      *cart.Service
	addresses *address.Service
	pdf       *pdf.Service
	client    *httpclient.Client
	config    *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(
	orders *order.Service,
	cartService *cart.Service,
	addresses *address.Service,
	pdfService *pdf.Service,
	client *httpclient.Client,
	cfg *config.Config,
) *OrderHandler {
	return &OrderHandler{
		orders:    orders,
		cart:      cartService,
		addresses: addresses,
		pdf:       pdfService,
		client:    client,
		config:    cfg,
	}
}

// userFromClaims rebuilds the caller identity from the token claims
// the auth middleware validated. Every route behind AuthMiddleware
// scopes its data to the token holder, not to whoever signed in last.
func userFromClaims(c *gin.Context) (session.User, bool) {
	phone, ok := middleware.GetUserPhoneFromContext(c)
	if !ok {
		return session.User{}, false
	}
	name, _ := middleware.GetUserNameFromContext(c)
	return session.User{Name: name, Phone: phone}, true
}

// QuoteRequest carries an optional coupon to price the current cart
type QuoteRequest struct {
	CouponCode string `json:"couponCode"`
}

// Quote handles POST /checkout/quote
func (h *OrderHandler) Quote(c *gin.Context) {
	var req QuoteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request body",
				"details": err.Error(),
			})
			return
		}
	}

	quote, err := h.orders.QuoteCart(h.cart.Total(), req.CouponCode)
	if err != nil {
		if errors.Is(err, order.ErrInvalidCoupon) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid coupon code",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to price cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Quote calculated successfully",
		"data":    quote,
	})
}

// CheckoutRequest is the place-order payload
type CheckoutRequest struct {
	CouponCode string `json:"couponCode"`
	AddressID  string `json:"addressId"`
}

// Checkout handles POST /checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	user, ok := userFromClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Sign in to place an order",
		})
		return
	}

	var req CheckoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Invalid request body",
				"details": err.Error(),
			})
			return
		}
	}

	if req.AddressID != "" {
		h.checkServiceability(c, user.Phone, req.AddressID)
	}

	placed, err := h.orders.PlaceOrder(c.Request.Context(), user, h.cart.Items(), req.CouponCode, req.AddressID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, order.ErrInvalidCoupon):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid coupon code",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to place order",
			})
		}
		return
	}

	h.cart.Clear()

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}

// GetOrders handles GET /orders
func (h *OrderHandler) GetOrders(c *gin.Context) {
	user, ok := userFromClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Sign in to view orders",
		})
		return
	}

	history := h.orders.Orders(user)
	if history == nil {
		history = []order.Order{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    history,
	})
}

// GetOrder handles GET /orders/:number
func (h *OrderHandler) GetOrder(c *gin.Context) {
	user, ok := userFromClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Sign in to view orders",
		})
		return
	}

	placed, err := h.orders.Order(user, c.Param("number"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    placed,
	})
}

// DownloadInvoice handles GET /orders/:number/invoice
func (h *OrderHandler) DownloadInvoice(c *gin.Context) {
	user, ok := userFromClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Sign in to download invoices",
		})
		return
	}

	placed, err := h.orders.Order(user, c.Param("number"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Order not found",
		})
		return
	}

	var shipTo *address.Address
	if placed.AddressID != "" {
		for _, a := range h.addresses.List(user.Phone) {
			if a.ID == placed.AddressID {
				shipTo = &a
				break
			}
		}
	}

	buf, err := h.pdf.GenerateInvoice(placed, shipTo)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate invoice",
		})
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", placed.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// checkServiceability asks the partner endpoint whether the delivery
// pincode is serviceable. The call is advisory; failures never block
// checkout.
func (h *OrderHandler) checkServiceability(c *gin.Context, phone, addressID string) {
	if h.config.Checkout.ServiceabilityURL == "" {
		return
	}

	var pincode string
	for _, a := range h.addresses.List(phone) {
		if a.ID == addressID {
			pincode = a.Pincode
			break
		}
	}
	if pincode == "" {
		return
	}

	body, _ := json.Marshal(map[string]string{"pincode": pincode})
	h.client.Request(c.Request.Context(), http.MethodPost, h.config.Checkout.ServiceabilityURL, body)
}
