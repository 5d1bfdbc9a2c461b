// @title Mercadona Catalog API
// @version 1.0
// @description Product catalog browser backend for the Mercadona dataset
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	catalog_cache "github.com/ComputingVictor/Mercadona-Agent/cache"
	"github.com/ComputingVictor/Mercadona-Agent/config"
	"github.com/ComputingVictor/Mercadona-Agent/middleware"
	"github.com/ComputingVictor/Mercadona-Agent/routes"
	"github.com/ComputingVictor/Mercadona-Agent/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis connection (collections + rate limiter)
	config.ConnectRedis()

	// Optional Gemini assistant
	config.InitAssistant()

	// Session token signing
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Println("⚠️  SESSION_SECRET not set, using development default")
		sessionSecret = "dev-secret-key-change-in-production"
	}
	if err := services.InitSessionService(sessionSecret); err != nil {
		log.Fatalf("Failed to initialize session service: %v", err)
	}
	log.Println("✅ Session service initialized")

	// Load the catalog; a failed or empty load is terminal, the server
	// never starts with a partial catalog.
	source := config.GetEnv("CATALOG_CSV", "data/processed/products_macro.csv")
	products, err := services.LoadCatalog(source)
	if err != nil {
		log.Fatalf("❌ Failed to load catalog from %s: %v", source, err)
	}
	catalog_cache.Set(products)
	log.Printf("✅ Catalog loaded: %d products, %d categories",
		catalog_cache.Count(), len(catalog_cache.Categories()))

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes; everything runs inside a session
	api := router.Group("/api/v1")
	api.Use(middleware.Session())

	routes.SetupStoreRoutes(api)
	routes.SetupSessionRoutes(api)
	routes.SetupAssistantRoutes(api)

	port := config.GetEnv("PORT", "8080")
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}
