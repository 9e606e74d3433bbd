// internal/interfaces/http/handlers/catalog_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/S-Khan786/Medicine-Mart-App/internal/catalog"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCatalogHandler(catalog.New())

	r := gin.New()
	r.GET("/products", h.GetProducts)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/search", h.Search)
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string) (int, map[string]any) {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestGetProductNotFound(t *testing.T) {
	r := newCatalogRouter()

	code, body := getJSON(t, r, "/products/does-not-exist")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Product not found", body["error"])
}

func TestGetProductByID(t *testing.T) {
	r := newCatalogRouter()

	code, body := getJSON(t, r, "/products/1")
	require.Equal(t, http.StatusOK, code)

	data := body["data"].(map[string]any)
	assert.Equal(t, "Paracetamol", data["name"])
}

func TestSearchEndpoint(t *testing.T) {
	r := newCatalogRouter()

	code, body := getJSON(t, r, "/search?q=paracetamol&minPrice=0&maxPrice=100")
	require.Equal(t, http.StatusOK, code)

	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["found"])

	results := data["results"].([]any)
	require.Len(t, results, 1)
	first := results[0].(map[string]any)
	assert.Equal(t, "product", first["type"])
}

func TestSearchEmptyQuery(t *testing.T) {
	r := newCatalogRouter()

	code, body := getJSON(t, r, "/search")
	require.Equal(t, http.StatusOK, code)

	data := body["data"].(map[string]any)
	assert.Equal(t, false, data["found"])
	assert.Empty(t, data["results"])
}

func TestSearchRejectsBadFilter(t *testing.T) {
	r := newCatalogRouter()

	code, body := getJSON(t, r, "/search?q=pain&minPrice=abc")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid filter parameters", body["error"])
}
