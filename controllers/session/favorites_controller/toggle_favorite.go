package favorites_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/ComputingVictor/Mercadona-Agent/cache"
	"github.com/ComputingVictor/Mercadona-Agent/middleware"
	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/services"
)

// ToggleFavorite godoc
// @Summary Toggle a favorite
// @Description Add the product to the session's favorites if absent, remove it if present.
// @Tags Session - Favorites
// @Produce json
// @Param name path string true "Product name"
// @Success 200 {object} models.ApiResponse "Favorite toggled"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Storage error"
// @Router /session/favorites/{name}/toggle [post]
func ToggleFavorite(c *gin.Context) {
	name := c.Param("name")

	product, ok := catalog_cache.ByName(name)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	inSet, err := services.ToggleFavorite(c.Request.Context(), middleware.SessionID(c), product.Name)
	if err != nil {
		log.Printf("[session.favorites] toggle failed for %q: %v", product.Name, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update favorites"))
		return
	}

	message := "Favorite removed"
	if inSet {
		message = "Favorite added"
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, message,
		models.ToggleResult{Name: product.Name, InSet: inSet}))
}
