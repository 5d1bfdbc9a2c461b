package compare_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/ComputingVictor/Mercadona-Agent/cache"
	"github.com/ComputingVictor/Mercadona-Agent/middleware"
	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/services"
)

// ToggleCompare godoc
// @Summary Toggle a product in the compare set
// @Description Remove the product if already selected; otherwise add it, unless the set already holds 3 products.
// @Tags Session - Compare
// @Produce json
// @Param name path string true "Product name"
// @Success 200 {object} models.ApiResponse "Compare set updated"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 409 {object} models.ApiResponse "Compare set full"
// @Failure 500 {object} models.ApiResponse "Storage error"
// @Router /session/compare/{name}/toggle [post]
func ToggleCompare(c *gin.Context) {
	name := c.Param("name")

	product, ok := catalog_cache.ByName(name)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	inSet, err := services.ToggleCompare(c.Request.Context(), middleware.SessionID(c), product)
	if err != nil {
		if errors.Is(err, services.ErrCompareLimit) {
			c.JSON(http.StatusConflict, models.ErrorResponse(c,
				"Compare set is full: remove a product before adding another"))
			return
		}
		log.Printf("[session.compare] toggle failed for %q: %v", product.Name, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update compare set"))
		return
	}

	message := "Product removed from compare set"
	if inSet {
		message = "Product added to compare set"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message,
		models.ToggleResult{Name: product.Name, InSet: inSet}))
}
