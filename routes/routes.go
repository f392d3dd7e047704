package routes

import (
	"net/http"
	"time"

	"dailybite/controllers"

	"github.com/gin-gonic/gin"
)

func CreateOrUpdateUserRouteHandler(c *gin.Context) {
	controllers.CreateOrUpdateUser(c)
}

func GetUserRouteHandler(c *gin.Context) {
	controllers.GetUser(c)
}

func GetUserStatsRouteHandler(c *gin.Context) {
	controllers.GetUserStats(c)
}

func SubmitScoreRouteHandler(c *gin.Context) {
	controllers.SubmitScore(c)
}

func UpdateStreakRouteHandler(c *gin.Context) {
	controllers.UpdateStreak(c)
}

func ProcessRewardRouteHandler(c *gin.Context) {
	controllers.ProcessReward(c)
}

func GetLeaderboardRouteHandler(c *gin.Context) {
	controllers.GetLeaderboard(c)
}

func RootRouteHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Daily Bite API is running!"})
}

func HealthRouteHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   "1.0.0",
	})
}
