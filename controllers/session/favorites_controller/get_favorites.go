package favorites_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ComputingVictor/Mercadona-Agent/middleware"
	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/services"
)

// GetFavorites godoc
// @Summary Get favorites
// @Description List the session's favorite product names.
// @Tags Session - Favorites
// @Produce json
// @Success 200 {object} models.ApiResponse "Favorites fetched successfully"
// @Failure 500 {object} models.ApiResponse "Storage error"
// @Router /session/favorites [get]
func GetFavorites(c *gin.Context) {
	favorites, err := services.Favorites(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		log.Printf("[session.favorites] fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch favorites"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Favorites fetched successfully",
		models.FavoritesView{Items: favorites}))
}
