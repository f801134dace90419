package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"janawaaz-be/config"
	"janawaaz-be/controllers"
	"janawaaz-be/models"
	"janawaaz-be/realtime"
	"janawaaz-be/routes"
	"janawaaz-be/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("MongoDB connection established successfully!")

	if err := models.EnsureUserEmailIndex(db.Collection("users")); err != nil {
		log.Printf("Failed to ensure user email index: %v", err)
	}

	rdb, err := config.ConnectRedis()
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Connected to Redis")

	hub := realtime.NewHub(rdb)
	integrations := services.NewIntegrationClient()

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if origin := os.Getenv("FRONTEND_ORIGIN"); origin != "" {
		corsConfig.AllowOrigins = []string{origin}
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	routes.AuthRoutes(r, controllers.NewAuthController(db))
	routes.IssueRoutes(r, controllers.NewIssueController(db, rdb, hub), rdb)
	routes.UserRoutes(r, controllers.NewUserController(db, rdb))
	routes.StatsRoutes(r, controllers.NewStatsController(db, hub))
	routes.IntegrationRoutes(r, controllers.NewIntegrationController(integrations))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
