// internal/catalog/search.go
package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ResultType discriminates the search result union
type ResultType string

const (
	ResultTypeProduct       ResultType = "product"
	ResultTypeCategory      ResultType = "category"
	ResultTypeHealthConcern ResultType = "healthConcern"
	ResultTypeLabTest       ResultType = "labTest"
	ResultTypeBabyCare      ResultType = "babyCare"
)

// FilterConfig holds the product filter state of the search box.
// A nil PrescriptionRequired means "no constraint", distinct from
// false ("must not require prescription"). Only products are
// filterable; the other four collections ignore all of this.
type FilterConfig struct {
	PriceRange           [2]float64 `json:"priceRange"`
	InStock              bool       `json:"inStock"`
	PrescriptionRequired *bool      `json:"prescriptionRequired,omitempty"`
	Category             string     `json:"category"`
	Usage                string     `json:"usage"`
	ProductForm          string     `json:"productForm"`
}

// DefaultFilters returns the filter state the search box starts with,
// and the state "clear filters" resets to.
func DefaultFilters() FilterConfig {
	return FilterConfig{PriceRange: [2]float64{0, 5000}}
}

// SearchResult is one entry of the merged result list: exactly one of
// the entity pointers is set, matching Type.
type SearchResult struct {
	Type          ResultType
	Product       *Product
	Category      *Category
	HealthConcern *HealthConcern
	LabTest       *LabTest
	BabyCare      *BabyCareProduct
}

// ID returns the id of whichever entity the result wraps
func (r SearchResult) ID() string {
	switch r.Type {
	case ResultTypeProduct:
		return r.Product.ID
	case ResultTypeCategory:
		return r.Category.ID
	case ResultTypeHealthConcern:
		return r.HealthConcern.ID
	case ResultTypeLabTest:
		return r.LabTest.ID
	case ResultTypeBabyCare:
		return r.BabyCare.ID
	}
	return ""
}

// Name returns the display name of whichever entity the result wraps
func (r SearchResult) Name() string {
	switch r.Type {
	case ResultTypeProduct:
		return r.Product.Name
	case ResultTypeCategory:
		return r.Category.Name
	case ResultTypeHealthConcern:
		return r.HealthConcern.Name
	case ResultTypeLabTest:
		return r.LabTest.Name
	case ResultTypeBabyCare:
		return r.BabyCare.Name
	}
	return ""
}

// Route builds the navigation path a click on this result leads to
func (r SearchResult) Route() string {
	switch r.Type {
	case ResultTypeProduct:
		return "/product/" + r.Product.ID
	case ResultTypeCategory:
		return "/category/" + r.Category.ID
	case ResultTypeHealthConcern:
		return "/health-concern/" + r.HealthConcern.ID
	case ResultTypeLabTest:
		return "/lab-tests"
	case ResultTypeBabyCare:
		return "/baby-care"
	}
	return "/"
}

// MarshalJSON inlines the wrapped entity's fields and injects the
// "type" discriminant, so callers see {"id":..., ..., "type":"product"}.
func (r SearchResult) MarshalJSON() ([]byte, error) {
	var entity interface{}
	switch r.Type {
	case ResultTypeProduct:
		entity = r.Product
	case ResultTypeCategory:
		entity = r.Category
	case ResultTypeHealthConcern:
		entity = r.HealthConcern
	case ResultTypeLabTest:
		entity = r.LabTest
	case ResultTypeBabyCare:
		entity = r.BabyCare
	default:
		return nil, fmt.Errorf("unknown search result type %q", r.Type)
	}

	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	fields["type"] = json.RawMessage(`"` + string(r.Type) + `"`)
	return json.Marshal(fields)
}

// Search scans the five collections for the query and returns the
// merged, tagged result list plus the "results visible" flag.
//
// Matching is lower-cased substring containment. Results keep a fixed
// source order (products, categories, health concerns, lab tests,
// baby care) with catalog declaration order inside each group; there
// is no ranking. Filters apply to products only.
func (c *Catalog) Search(query string, filters FilterConfig) ([]SearchResult, bool) {
	if strings.TrimSpace(query) == "" {
		return nil, false
	}

	lowerQuery := strings.ToLower(query)
	var results []SearchResult

	for i := range c.products {
		p := &c.products[i]
		if matchesProductQuery(p, lowerQuery) && matchesFilters(p, filters) {
			results = append(results, SearchResult{Type: ResultTypeProduct, Product: p})
		}
	}

	for i := range c.categories {
		cat := &c.categories[i]
		if containsFold(cat.Name, lowerQuery) || containsFold(cat.Description, lowerQuery) {
			results = append(results, SearchResult{Type: ResultTypeCategory, Category: cat})
		}
	}

	for i := range c.healthConcerns {
		hc := &c.healthConcerns[i]
		if containsFold(hc.Name, lowerQuery) || containsFold(hc.Description, lowerQuery) {
			results = append(results, SearchResult{Type: ResultTypeHealthConcern, HealthConcern: hc})
		}
	}

	for i := range c.labTests {
		lt := &c.labTests[i]
		if containsFold(lt.Name, lowerQuery) || containsFold(lt.Description, lowerQuery) {
			results = append(results, SearchResult{Type: ResultTypeLabTest, LabTest: lt})
		}
	}

	for i := range c.babyCareProducts {
		bc := &c.babyCareProducts[i]
		if containsFold(bc.Name, lowerQuery) || containsFold(bc.Description, lowerQuery) {
			results = append(results, SearchResult{Type: ResultTypeBabyCare, BabyCare: bc})
		}
	}

	return results, len(results) > 0
}

func matchesProductQuery(p *Product, lowerQuery string) bool {
	if containsFold(p.Name, lowerQuery) ||
		containsFold(p.Description, lowerQuery) ||
		containsFold(p.Usage, lowerQuery) {
		return true
	}
	for _, tag := range p.Tags {
		if containsFold(tag, lowerQuery) {
			return true
		}
	}
	return false
}

// matchesFilters applies every active predicate conjunctively
func matchesFilters(p *Product, f FilterConfig) bool {
	if p.Price < f.PriceRange[0] || p.Price > f.PriceRange[1] {
		return false
	}
	if f.InStock && p.Stock <= 0 {
		return false
	}
	if f.PrescriptionRequired != nil && p.IsPrescriptionRequired != *f.PrescriptionRequired {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Usage != "" && !containsFold(p.Usage, strings.ToLower(f.Usage)) {
		return false
	}
	// Product form matches the tag verbatim, unlike the query match.
	if f.ProductForm != "" && !p.HasTag(f.ProductForm) {
		return false
	}
	return true
}

func containsFold(s, lowerSubstr string) bool {
	return strings.Contains(strings.ToLower(s), lowerSubstr)
}
