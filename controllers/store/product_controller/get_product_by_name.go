package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/ComputingVictor/Mercadona-Agent/cache"
	"github.com/ComputingVictor/Mercadona-Agent/middleware"
	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/services"
)

// GetProductByName godoc
// @Summary Get product details
// @Description Look a product up by its display name and record it in the session's recently-viewed history.
// @Tags Store - Products
// @Produce json
// @Param name path string true "Product name"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/{name} [get]
func GetProductByName(c *gin.Context) {
	name := c.Param("name")

	product, ok := catalog_cache.ByName(name)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	// Viewing a product feeds the recently-viewed history; a storage
	// hiccup here must not break the detail view.
	if err := services.RecordView(c.Request.Context(), middleware.SessionID(c), product.Name); err != nil {
		log.Printf("[store.product] failed to record view for %q: %v", product.Name, err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully",
		models.StorefrontProduct{Product: product, HasMacros: product.HasMacros()}))
}
