package product_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/ComputingVictor/Mercadona-Agent/cache"
	"github.com/ComputingVictor/Mercadona-Agent/middleware"
	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/services"
)

// The UI's historical default: 100 cards per page.
const (
	defaultPageSize = 100
	maxPageSize     = 500
)

// GetStorefrontProducts godoc
// @Summary Browse the catalog
// @Description Filter by free-text search, categories and price range, sort, and paginate.
// @Tags Store - Products
// @Produce json
// @Param q query string false "Search text (diacritic-insensitive, AND over tokens)"
// @Param category query []string false "Category names (repeatable)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param sortBy query string false "Sort key (name | price_asc | price_desc | popularity)" default(name)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(100)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	pageSize, requestedPage := parsePagination(c)

	criteria := models.DefaultCriteria()
	criteria.SearchText = c.Query("q")
	criteria.Categories = c.QueryArray("category")
	criteria.SortKey = models.ParseSortKey(c.DefaultQuery("sortBy", "name"))

	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			criteria.PriceMin = v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		// 0 means "no ceiling", same as an empty field in the UI
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 && !math.IsInf(v, 1) {
			criteria.PriceMax = v
		}
	}

	// Popularity ranking needs the session's favorites and view history;
	// every other sort is session-independent.
	var signals services.PopularitySignals
	if criteria.SortKey == models.SortByPopularity {
		var err error
		signals, err = services.BuildPopularitySignals(c.Request.Context(), middleware.SessionID(c))
		if err != nil {
			log.Printf("[store.products] failed to load popularity signals: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
			return
		}
	}

	results := services.Evaluate(catalog_cache.Products(), criteria, signals)
	page := services.Paginate(results, pageSize, requestedPage)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		toStorefront(page.Items),
		&models.Pagination{
			Page:       page.Number,
			Limit:      pageSize,
			Total:      len(results),
			TotalPages: page.TotalPages,
		},
	))
}

func parsePagination(c *gin.Context) (pageSize, page int) {
	pageSize = defaultPageSize
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			pageSize = v
		}
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	page = 1
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}
	return pageSize, page
}

func toStorefront(products []models.Product) []models.StorefrontProduct {
	out := make([]models.StorefrontProduct, len(products))
	for i, p := range products {
		out[i] = models.StorefrontProduct{Product: p, HasMacros: p.HasMacros()}
	}
	return out
}
