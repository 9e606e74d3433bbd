// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/S-Khan786/Medicine-Mart-App/internal/catalog"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/cart"
	"github.com/gin-gonic/gin"
)

// CartHandler handles shopping cart endpoints
type CartHandler struct {
	cart    *cart.Service
	catalog *catalog.Catalog
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, cat *catalog.Catalog) *CartHandler {
	return &CartHandler{
		cart:    cartService,
		catalog: cat,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.cartSnapshot(),
	})
}

// AddItemRequest is the add-to-cart payload
type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalog.Product(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	h.cart.Add(product)

	c.JSON(http.StatusOK, gin.H{
		"message": "Product added to cart",
		"data":    h.cartSnapshot(),
	})
}

// IncreaseQuantity handles POST /cart/items/:id/increase
func (h *CartHandler) IncreaseQuantity(c *gin.Context) {
	h.cart.IncreaseQuantity(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    h.cartSnapshot(),
	})
}

// DecreaseQuantity handles POST /cart/items/:id/decrease
func (h *CartHandler) DecreaseQuantity(c *gin.Context) {
	h.cart.DecreaseQuantity(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    h.cartSnapshot(),
	})
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	if err := h.cart.RemoveProduct(c.Param("id")); err != nil {
		if errors.Is(err, cart.ErrNotInCart) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not in cart",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product removed from cart",
		"data":    h.cartSnapshot(),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.Clear()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
		"data":    h.cartSnapshot(),
	})
}

// GetCount handles GET /cart/count
func (h *CartHandler) GetCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": h.cart.Count(),
		},
	})
}

func (h *CartHandler) cartSnapshot() gin.H {
	items := h.cart.Items()
	if items == nil {
		items = []catalog.Product{}
	}
	lines := h.cart.Lines()
	if lines == nil {
		lines = []cart.Line{}
	}

	return gin.H{
		"items": items,
		"lines": lines,
		"total": h.cart.Total(),
		"count": h.cart.Count(),
	}
}
