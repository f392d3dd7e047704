package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"dailybite/config"
	"dailybite/controllers"
	"dailybite/routes"
	"dailybite/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables directly")
	}

	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	st, err := store.ConnectMongo(cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Printf("Connected to MongoDB, using database: %s", cfg.Database.Name)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := st.EnsureIndexes(ctx); err != nil {
		cancel()
		log.Fatalf("Failed to create database indexes: %v", err)
	}
	cancel()
	log.Println("Database indexes created")

	controllers.Init(st, cfg)

	router := setupRouter()
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
	}))

	api := router.Group("/api")
	{
		api.GET("/", routes.RootRouteHandler)
		api.GET("/health", routes.HealthRouteHandler)

		api.POST("/users", routes.CreateOrUpdateUserRouteHandler)
		api.GET("/users/:userId", routes.GetUserRouteHandler)
		api.GET("/user/:userId/stats", routes.GetUserStatsRouteHandler)

		api.POST("/submit-score", routes.SubmitScoreRouteHandler)
		api.POST("/update-streak", routes.UpdateStreakRouteHandler)
		api.POST("/process-reward", routes.ProcessRewardRouteHandler)
		api.GET("/leaderboard", routes.GetLeaderboardRouteHandler)
	}

	return router
}
