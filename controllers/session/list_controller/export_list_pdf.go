package list_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ComputingVictor/Mercadona-Agent/middleware"
	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/services"
)

// ExportShoppingListPDF godoc
// @Summary Download the shopping list as PDF
// @Description Printable PDF with one row per entry and the total.
// @Tags Session - Shopping list
// @Produce octet-stream
// @Success 200 "PDF file"
// @Failure 500 {object} models.ApiResponse "Storage error"
// @Router /session/list/export/pdf [get]
func ExportShoppingListPDF(c *gin.Context) {
	entries, err := services.ShoppingListEntries(c.Request.Context(), middleware.SessionID(c))
	if err != nil {
		log.Printf("[session.list.export-pdf] fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch shopping list"))
		return
	}

	pdfBuffer, err := services.ExportShoppingListPDF(entries)
	if err != nil {
		log.Printf("[session.list.export-pdf] render failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate PDF"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="lista-de-la-compra.pdf"`)
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())
}
