package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ComputingVictor/Mercadona-Agent/controllers/session/compare_controller"
	"github.com/ComputingVictor/Mercadona-Agent/controllers/session/favorites_controller"
	"github.com/ComputingVictor/Mercadona-Agent/controllers/session/list_controller"
	"github.com/ComputingVictor/Mercadona-Agent/controllers/session/recent_controller"
)

// SetupSessionRoutes registers the per-session collections endpoints:
// favorites, recently viewed, compare set and shopping list.
func SetupSessionRoutes(router *gin.RouterGroup) {
	session := router.Group("/session")

	favorites := session.Group("/favorites")
	{
		favorites.GET("", favorites_controller.GetFavorites)
		favorites.POST("/:name/toggle", favorites_controller.ToggleFavorite)
	}

	session.GET("/recently-viewed", recent_controller.GetRecentlyViewed)

	compare := session.Group("/compare")
	{
		compare.GET("", compare_controller.GetCompare)
		compare.POST("/:name/toggle", compare_controller.ToggleCompare)
	}

	list := session.Group("/list")
	{
		list.GET("", list_controller.GetShoppingList)
		list.GET("/export", list_controller.ExportShoppingListCSV)
		list.GET("/export/pdf", list_controller.ExportShoppingListPDF)
		list.POST("/:name", list_controller.AddListItem)
		list.POST("/:name/decrement", list_controller.DecrementListItem)
		list.DELETE("/:name", list_controller.RemoveListItem)
	}
}
