package recent_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/ComputingVictor/Mercadona-Agent/cache"
	"github.com/ComputingVictor/Mercadona-Agent/middleware"
	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/services"
)

// GetRecentlyViewed godoc
// @Summary Get recently viewed products
// @Description The session's view history, most recent first, capped at 5. Entries whose product left the catalog are skipped.
// @Tags Session - Recently viewed
// @Produce json
// @Success 200 {object} models.ApiResponse "Recently viewed fetched successfully"
// @Failure 500 {object} models.ApiResponse "Storage error"
// @Router /session/recently-viewed [get]
func GetRecentlyViewed(c *gin.Context) {
	names, err := services.RecentlyViewed(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		log.Printf("[session.recent] fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch recently viewed"))
		return
	}

	products := make([]models.StorefrontProduct, 0, len(names))
	for _, name := range names {
		if p, ok := catalog_cache.ByName(name); ok {
			products = append(products, models.StorefrontProduct{Product: p, HasMacros: p.HasMacros()})
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Recently viewed fetched successfully", products))
}
