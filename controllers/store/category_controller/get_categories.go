package category_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/ComputingVictor/Mercadona-Agent/cache"
	"github.com/ComputingVictor/Mercadona-Agent/models"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description Unique catalog categories with product counts, in Spanish collation order.
// @Tags Store - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse "Categories fetched successfully"
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully",
		catalog_cache.Categories()))
}
