package assistant_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/ComputingVictor/Mercadona-Agent/cache"
	"github.com/ComputingVictor/Mercadona-Agent/models"
	"github.com/ComputingVictor/Mercadona-Agent/services"
)

// AskAssistant godoc
// @Summary Ask the product assistant
// @Description Relay a question to the assistant with the viewed product (or the catalog) as context. On upstream failure the user gets a fallback message, never an error.
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body models.AssistantRequest true "Question and optional product name"
// @Success 200 {object} models.ApiResponse "Answer"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Router /assistant/ask [post]
func AskAssistant(c *gin.Context) {
	var req models.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Question is required"))
		return
	}

	var product *models.Product
	if req.ProductName != "" {
		if p, ok := catalog_cache.ByName(req.ProductName); ok {
			product = &p
		}
	}
	contextLine := services.BuildAssistantContext(product, catalog_cache.Count())

	answer, err := services.AskAssistant(c.Request.Context(), req.Question, contextLine)
	if err != nil {
		log.Printf("[assistant.ask] query failed: %v", err)
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Assistant unavailable",
			models.AssistantAnswer{Answer: services.AssistantFallbackMessage, Fallback: true}))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Answer generated",
		models.AssistantAnswer{Answer: answer}))
}
