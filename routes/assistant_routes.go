package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ComputingVictor/Mercadona-Agent/controllers/assistant_controller"
	"github.com/ComputingVictor/Mercadona-Agent/middleware"
)

// SetupAssistantRoutes registers the assistant endpoint behind a rate
// limiter; the upstream model quota is shared by all visitors.
func SetupAssistantRoutes(router *gin.RouterGroup) {
	assistant := router.Group("/assistant")
	assistant.Use(middleware.RateLimiter(30, time.Minute))

	assistant.POST("/ask", assistant_controller.AskAssistant)
}
