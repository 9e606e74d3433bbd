// internal/pkg/pdf/service_test.go
package pdf

import (
	"testing"
	"time"

	"github.com/S-Khan786/Medicine-Mart-App/internal/config"
	"github.com/S-Khan786/Medicine-Mart-App/internal/domain/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHTML(t *testing.T) {
	cfg := &config.Config{}
	cfg.Company.Name = "Medicine Mart"
	cfg.Company.Email = "care@medicinemart.in"
	svc := NewService(cfg)

	o := &order.Order{
		OrderNumber: "MM-1A2B3C4D",
		Name:        "Asha Rao",
		Phone:       "9876543210",
		Items: []order.Item{
			{ProductID: "1", Name: "Paracetamol 500mg", Price: 50, Quantity: 2, LineTotal: 100},
		},
		Subtotal:    100,
		DeliveryFee: 40,
		Discount:    10,
		CouponCode:  "FIRST10",
		Total:       130,
		Status:      order.StatusProcessing,
		PlacedAt:    time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC),
	}

	html, err := svc.generateHTML(InvoiceData{
		InvoiceNumber: "INV-MM-1A2B3C4D",
		InvoiceDate:   "March 5, 2025",
		Order:         o,
		Company:       CompanyInfo{Name: cfg.Company.Name, Email: cfg.Company.Email},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "INV-MM-1A2B3C4D")
	assert.Contains(t, html, "Paracetamol 500mg")
	assert.Contains(t, html, "FIRST10")
	assert.Contains(t, html, "Medicine Mart")
	assert.Contains(t, html, "130.00")
}
