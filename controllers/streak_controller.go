package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"dailybite/utils"

	"github.com/gin-gonic/gin"
)

// UpdateStreakRequest carries the user and optionally the calendar date to
// credit; when the date is omitted the server uses today in UTC.
type UpdateStreakRequest struct {
	UserID string `json:"userId" binding:"required"`
	Date   string `json:"date"`
}

// UpdateStreak advances the user's daily streak.
func UpdateStreak(c *gin.Context) {
	var req UpdateStreakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if req.Date == "" {
		req.Date = utils.TodayString()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	streak, err := streakService.UpdateStreak(ctx, req.UserID, req.Date)
	if err != nil {
		respondError(c, err, "Failed to update streak")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"streak":  streak,
		"message": fmt.Sprintf("Streak updated to %d days!", streak),
	})
}
