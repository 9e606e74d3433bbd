// internal/catalog/entity.go
package catalog

// Product represents a medicine or health product in the catalog
type Product struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Composition            string   `json:"composition"`
	Price                  float64  `json:"price"` // Price in rupees
	OriginalPrice          float64  `json:"originalPrice"`
	Discount               int      `json:"discount"` // Percent off OriginalPrice
	Image                  string   `json:"image"`
	IsPrescriptionRequired bool     `json:"isPrescriptionRequired"`
	Tags                   []string `json:"tags"`
	Stock                  int      `json:"stock"`
	Category               string   `json:"category"`
	Description            string   `json:"description"`
	Dosage                 string   `json:"dosage"`
	SideEffects            []string `json:"sideEffects"`
	Usage                  string   `json:"usage"`
	BestSeller             bool     `json:"bestSeller,omitempty"`
	Rating                 float64  `json:"rating,omitempty"`
	Reviews                int      `json:"reviews,omitempty"`
}

// Category represents a shop-by-category tile
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// HealthConcern represents a shop-by-concern tile
type HealthConcern struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// LabTest represents a bookable diagnostic test
type LabTest struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	OriginalPrice  float64 `json:"originalPrice"`
	Discount       int     `json:"discount"`
	Image          string  `json:"image"`
	Category       string  `json:"category,omitempty"`
	ReportTime     string  `json:"reportTime,omitempty"`
	HomeCollection bool    `json:"homeCollection,omitempty"`
	Prerequisites  string  `json:"prerequisites,omitempty"`
}

// BabyCareProduct represents an item in the baby-care vertical
type BabyCareProduct struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Discount      int     `json:"discount"`
	Image         string  `json:"image"`
	AgeGroup      string  `json:"ageGroup"`
	Category      string  `json:"category"`
}

// Business methods for Product

func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

func (p *Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// DiscountPercent derives the discount from the price pair when the
// declared Discount field is zero.
func (p *Product) DiscountPercent() int {
	if p.Discount > 0 {
		return p.Discount
	}
	if p.OriginalPrice > 0 && p.Price < p.OriginalPrice {
		return int((p.OriginalPrice - p.Price) * 100 / p.OriginalPrice)
	}
	return 0
}
