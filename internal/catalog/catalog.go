// internal/catalog/catalog.go
package catalog

import "errors"

// ErrNotFound is returned when a catalog entity id does not exist
var ErrNotFound = errors.New("not found in catalog")

// Catalog exposes the five static collections. All accessors return
// copies so callers can never mutate the seed data.
type Catalog struct {
	products         []Product
	categories       []Category
	healthConcerns   []HealthConcern
	labTests         []LabTest
	babyCareProducts []BabyCareProduct
}

// New returns a catalog over the built-in seed data
func New() *Catalog {
	return &Catalog{
		products:         products,
		categories:       categories,
		healthConcerns:   healthConcerns,
		labTests:         labTests,
		babyCareProducts: babyCareProducts,
	}
}

// NewWith returns a catalog over caller-supplied collections. Used by tests.
func NewWith(p []Product, c []Category, h []HealthConcern, l []LabTest, b []BabyCareProduct) *Catalog {
	return &Catalog{
		products:         p,
		categories:       c,
		healthConcerns:   h,
		labTests:         l,
		babyCareProducts: b,
	}
}

// Products returns all products in declaration order
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// FeaturedProducts returns the best-seller subset in declaration order
func (c *Catalog) FeaturedProducts() []Product {
	var out []Product
	for _, p := range c.products {
		if p.BestSeller {
			out = append(out, p)
		}
	}
	return out
}

// Product looks up a product by id
func (c *Catalog) Product(id string) (Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// Categories returns all categories in declaration order
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// HealthConcerns returns all health concerns in declaration order
func (c *Catalog) HealthConcerns() []HealthConcern {
	out := make([]HealthConcern, len(c.healthConcerns))
	copy(out, c.healthConcerns)
	return out
}

// LabTests returns all lab tests in declaration order
func (c *Catalog) LabTests() []LabTest {
	out := make([]LabTest, len(c.labTests))
	copy(out, c.labTests)
	return out
}

// BabyCareProducts returns all baby-care items in declaration order
func (c *Catalog) BabyCareProducts() []BabyCareProduct {
	out := make([]BabyCareProduct, len(c.babyCareProducts))
	copy(out, c.babyCareProducts)
	return out
}
