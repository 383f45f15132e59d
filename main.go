package main

import (
	"log"
	"os"

	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/TechnovaTech/mookala-main-sub001/controllers"
	"github.com/TechnovaTech/mookala-main-sub001/database"
	"github.com/TechnovaTech/mookala-main-sub001/helpers"
	"github.com/TechnovaTech/mookala-main-sub001/routes"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("🔍 [main] Starting application...")

	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️ [main] No .env file found, using environment")
	}

	log.Println("🔍 [main] Initializing MongoDB...")
	database.InitDB()
	log.Println("✅ [main] MongoDB initialized successfully")

	helpers.InitTokenHelper()
	controllers.InitUserController()
	controllers.InitArtistController()
	controllers.InitEventController()
	controllers.InitAdminController()

	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}

	router := gin.New()
	router.Use(gin.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	log.Println("✅ [main] Gin router initialized")

	routes.AuthRoutes(router)
	routes.UserRoutes(router)
	routes.ArtistRoutes(router)
	routes.EventRoutes(router)
	routes.AdminRoutes(router)
	log.Println("✅ [main] Routes registered")

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Println("🚀 [main] Server running on port", port)
	router.Run(":" + port)
}
