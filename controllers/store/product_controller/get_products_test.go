package product_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog_cache "github.com/ComputingVictor/Mercadona-Agent/cache"
	"github.com/ComputingVictor/Mercadona-Agent/models"
)

func setupStorefront(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog_cache.Set([]models.Product{
		{Category: "Lácteos", Name: "Leche Entera", Price: "1,05 €", MainImageURL: "https://img.example/leche.jpg"},
		{Category: "Frutas", Name: "banana", Price: "1,35 €", MainImageURL: "https://img.example/banana.jpg"},
		{Category: "Verduras", Name: "Zanahoria", Price: "0,89 €", MainImageURL: "https://img.example/zanahoria.jpg"},
	})

	router := gin.New()
	router.GET("/store/products", GetStorefrontProducts)
	return router
}

func fetchProducts(t *testing.T, router *gin.Engine, target string) models.ApiResponse {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Meta)
	return resp
}

func TestGetProductsMaxPriceZeroMeansNoCeiling(t *testing.T) {
	router := setupStorefront(t)

	// an empty price field often serializes as 0; that must not hide
	// every priced product
	resp := fetchProducts(t, router, "/store/products?maxPrice=0")
	assert.Equal(t, 3, resp.Meta.Total)
}

func TestGetProductsMaxPriceBounds(t *testing.T) {
	router := setupStorefront(t)

	resp := fetchProducts(t, router, "/store/products?maxPrice=1.10")
	assert.Equal(t, 2, resp.Meta.Total)

	resp = fetchProducts(t, router, "/store/products?minPrice=1.00&maxPrice=1.10")
	assert.Equal(t, 1, resp.Meta.Total)
}
