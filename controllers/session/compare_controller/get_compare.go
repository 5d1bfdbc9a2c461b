package compare_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ComputingVictor/Mercadona-Agent/middleware"
	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/services"
)

// GetCompare godoc
// @Summary Get the compare set
// @Description The session's side-by-side comparison products, in insertion order.
// @Tags Session - Compare
// @Produce json
// @Success 200 {object} models.ApiResponse "Compare set fetched successfully"
// @Failure 500 {object} models.ApiResponse "Storage error"
// @Router /session/compare [get]
func GetCompare(c *gin.Context) {
	products, err := services.CompareProducts(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		log.Printf("[session.compare] fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch compare set"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Compare set fetched successfully", products))
}
