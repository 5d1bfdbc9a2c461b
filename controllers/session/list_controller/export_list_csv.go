package list_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ComputingVictor/Mercadona-Agent/middleware"
	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/services"
)

// ExportShoppingListCSV godoc
// @Summary Download the shopping list as CSV
// @Description Semicolon-delimited file with product, quantity, unit price and subtotal per row.
// @Tags Session - Shopping list
// @Produce text/csv
// @Success 200 "CSV file"
// @Failure 500 {object} models.ApiResponse "Storage error"
// @Router /session/list/export [get]
func ExportShoppingListCSV(c *gin.Context) {
	entries, err := services.ShoppingListEntries(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		log.Printf("[session.list.export] fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch shopping list"))
		return
	}

	data, err := services.ExportShoppingListCSV(entries)
	if err != nil {
		log.Printf("[session.list.export] csv render failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to export shopping list"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="lista-de-la-compra.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
