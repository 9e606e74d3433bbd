// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/S-Khan786/Medicine-Mart-App/internal/catalog"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles catalog and search endpoints
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    h.catalog.Products(),
	})
}

// GetFeaturedProducts handles GET /products/featured
func (h *CatalogHandler) GetFeaturedProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Featured products retrieved successfully",
		"data":    h.catalog.FeaturedProducts(),
	})
}

// GetProduct handles GET /products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.catalog.Product(id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetCategories handles GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    h.catalog.Categories(),
	})
}

// GetHealthConcerns handles GET /health-concerns
func (h *CatalogHandler) GetHealthConcerns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Health concerns retrieved successfully",
		"data":    h.catalog.HealthConcerns(),
	})
}

// GetLabTests handles GET /lab-tests
func (h *CatalogHandler) GetLabTests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Lab tests retrieved successfully",
		"data":    h.catalog.LabTests(),
	})
}

// GetBabyCareProducts handles GET /baby-care
func (h *CatalogHandler) GetBabyCareProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Baby care products retrieved successfully",
		"data":    h.catalog.BabyCareProducts(),
	})
}

// Search handles GET /search
func (h *CatalogHandler) Search(c *gin.Context) {
	query := c.Query("q")

	filters, err := parseFilters(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid filter parameters",
			"details": err.Error(),
		})
		return
	}

	results, found := h.catalog.Search(query, filters)
	if results == nil {
		results = []catalog.SearchResult{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Search completed successfully",
		"data": gin.H{
			"results": results,
			"found":   found,
		},
	})
}

// parseFilters reads search filter query parameters, falling back to
// the defaults for anything not supplied.
func parseFilters(c *gin.Context) (catalog.FilterConfig, error) {
	filters := catalog.DefaultFilters()

	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, errors.New("minPrice must be a number")
		}
		filters.PriceRange[0] = v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, errors.New("maxPrice must be a number")
		}
		filters.PriceRange[1] = v
	}
	if raw := c.Query("inStock"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filters, errors.New("inStock must be a boolean")
		}
		filters.InStock = v
	}
	if raw := c.Query("prescriptionRequired"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filters, errors.New("prescriptionRequired must be a boolean")
		}
		filters.PrescriptionRequired = &v
	}
	filters.Category = c.Query("category")
	filters.Usage = c.Query("usage")
	filters.ProductForm = c.Query("productForm")

	return filters, nil
}
