// internal/interfaces/http/handlers/address.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/address"
	"github.com/S-Khan786/Medicine-Mart-App/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AddressHandler handles saved delivery address endpoints
type AddressHandler struct {
	addresses *address.Service
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(addresses *address.Service) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

// GetAddresses handles GET /addresses
func (h *AddressHandler) GetAddresses(c *gin.Context) {
	phone, ok := middleware.GetUserPhoneFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	book := h.addresses.List(phone)
	if book == nil {
		book = []address.Address{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Addresses retrieved successfully",
		"data":    book,
	})
}

// CreateAddress handles POST /addresses
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	phone, ok := middleware.GetUserPhoneFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	var addr address.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	created, err := h.addresses.Create(phone, addr)
	if err != nil {
		var fieldErrs address.ValidationErrors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Address validation failed",
				"fields": fieldErrs,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save address",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Address saved successfully",
		"data":    created,
	})
}

// UpdateAddress handles PUT /addresses/:id
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	phone, ok := middleware.GetUserPhoneFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	var addr address.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.addresses.Update(phone, c.Param("id"), addr)
	if err != nil {
		var fieldErrs address.ValidationErrors
		switch {
		case errors.Is(err, address.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Address not found",
			})
		case errors.As(err, &fieldErrs):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Address validation failed",
				"fields": fieldErrs,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to update address",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Address updated successfully",
		"data":    updated,
	})
}

// DeleteAddress handles DELETE /addresses/:id
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	phone, ok := middleware.GetUserPhoneFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	if err := h.addresses.Delete(phone, c.Param("id")); err != nil {
		if errors.Is(err, address.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Address not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete address",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Address deleted successfully",
	})
}
