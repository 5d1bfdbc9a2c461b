package list_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ComputingVictor/Mercadona-Agent/middleware"
	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/services"
)

// DecrementListItem godoc
// @Summary Decrement a shopping list entry
// @Description Lower the quantity by one; reaching zero deletes the entry entirely.
// @Tags Session - Shopping list
// @Produce json
// @Param name path string true "Product name"
// @Success 200 {object} models.ApiResponse "Shopping list updated"
// @Failure 500 {object} models.ApiResponse "Storage error"
// @Router /session/list/{name}/decrement [post]
func DecrementListItem(c *gin.Context) {
	name := c.Param("name")

	if err := services.DecrementListItem(c.Request.Context(), middleware.SessionID(c), name); err != nil {
		log.Printf("[session.list] decrement failed for %q: %v", name, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update shopping list"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shopping list updated", nil))
}
