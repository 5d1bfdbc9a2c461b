package list_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ComputingVictor/Mercadona-Agent/middleware"
	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/services"
)

// GetShoppingList godoc
// @Summary Get the shopping list
// @Description Entries in collation order plus the running total in euros.
// @Tags Session - Shopping list
// @Produce json
// @Success 200 {object} models.ApiResponse "Shopping list fetched successfully"
// @Failure 500 {object} models.ApiResponse "Storage error"
// @Router /session/list [get]
func GetShoppingList(c *gin.Context) {
	entries, err := services.ShoppingListEntries(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		log.Printf("[session.list] fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch shopping list"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shopping list fetched successfully",
		models.ShoppingListView{Items: entries, Total: services.ShoppingListTotal(entries)}))
}
