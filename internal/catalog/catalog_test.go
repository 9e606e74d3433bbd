// internal/catalog/catalog_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductLookup(t *testing.T) {
	c := New()

	p, err := c.Product("1")
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol", p.Name)
	assert.Equal(t, float64(50), p.Price)
	assert.Equal(t, "Pain Relief", p.Category)
	assert.False(t, p.IsPrescriptionRequired)

	_, err = c.Product("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := New()

	first := c.Products()
	first[0].Name = "mutated"

	again := c.Products()
	assert.Equal(t, "Paracetamol", again[0].Name)
}

func TestFeaturedProductsAreBestSellers(t *testing.T) {
	c := New()

	featured := c.FeaturedProducts()
	require.NotEmpty(t, featured)
	for _, p := range featured {
		assert.True(t, p.BestSeller, "product %s", p.ID)
	}
}

func TestProductHelpers(t *testing.T) {
	p := Product{Price: 80, OriginalPrice: 100, Stock: 0, Tags: []string{"Syrup"}}

	assert.False(t, p.IsInStock())
	assert.True(t, p.HasTag("Syrup"))
	assert.False(t, p.HasTag("syrup"))
	assert.Equal(t, 20, p.DiscountPercent())

	p.Discount = 33
	assert.Equal(t, 33, p.DiscountPercent())
}
