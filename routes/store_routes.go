package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ComputingVictor/Mercadona-Agent/controllers/store/category_controller"
	"github.com/ComputingVictor/Mercadona-Agent/controllers/store/product_controller"
)

// SetupStoreRoutes registers the public catalog browsing endpoints.
func SetupStoreRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", product_controller.GetStorefrontProducts) // List with filters
		products.GET("/:name", product_controller.GetProductByName)
	}

	store.GET("/categories", category_controller.GetCategories)
}
