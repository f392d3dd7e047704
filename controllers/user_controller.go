package controllers

import (
	"context"
	"net/http"
	"time"

	"dailybite/models"
	"dailybite/utils"

	"github.com/gin-gonic/gin"
)

// CreateOrUpdateUser upserts a user profile on first and every contact.
func CreateOrUpdateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stored, created, err := userService.CreateOrUpdateUser(ctx, user)
	if err != nil {
		respondError(c, err, "Failed to create or update user")
		return
	}

	message := "User updated"
	if created {
		message = "User created"
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "user": stored})
}

// GetUser returns the profile plus today's score and puzzles solved.
func GetUser(c *gin.Context) {
	uid := c.Param("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	profile, err := userService.GetUser(ctx, uid, utils.TodayString())
	if err != nil {
		respondError(c, err, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetUserStats returns comprehensive statistics for one user.
func GetUserStats(c *gin.Context) {
	uid := c.Param("userId")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stats, err := userService.GetUserStats(ctx, uid)
	if err != nil {
		respondError(c, err, "Failed to fetch user stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}
