// internal/domain/order/entity.go
package order

import "time"

// Status represents the order status
type Status string

const (
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
)

// Order represents a placed order
type Order struct {
	OrderNumber string    `json:"orderNumber"`
	Phone       string    `json:"phone"`
	Name        string    `json:"name"`
	Items       []Item    `json:"items"`
	Subtotal    float64   `json:"subtotal"`
	DeliveryFee float64   `json:"deliveryFee"`
	Discount    float64   `json:"discount"`
	Total       float64   `json:"total"`
	CouponCode  string    `json:"couponCode,omitempty"`
	AddressID   string    `json:"addressId,omitempty"`
	Status      Status    `json:"status"`
	PlacedAt    time.Time `json:"placedAt"`
}

// Item represents one product line of an order
type Item struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// Quote is the priced summary shown before an order is placed
type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
	CouponCode  string  `json:"couponCode,omitempty"`
}
