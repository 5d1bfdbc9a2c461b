package list_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/ComputingVictor/Mercadona-Agent/cache"
	"github.com/ComputingVictor/Mercadona-Agent/middleware"
	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/services"
)

// AddListItem godoc
// @Summary Add a product to the shopping list
// @Description First add creates the entry with quantity 1; every further add increments the quantity.
// @Tags Session - Shopping list
// @Produce json
// @Param name path string true "Product name"
// @Success 200 {object} models.ApiResponse "Shopping list updated"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 500 {object} models.ApiResponse "Storage error"
// @Router /session/list/{name} [post]
func AddListItem(c *gin.Context) {
	name := c.Param("name")

	product, ok := catalog_cache.ByName(name)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	quantity, err := services.AddToList(c.Request.Context(), middleware.SessionID(c), product)
	if err != nil {
		log.Printf("[session.list] add failed for %q: %v", product.Name, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update shopping list"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Shopping list updated",
		models.ShoppingListEntry{Product: product, Quantity: quantity}))
}
