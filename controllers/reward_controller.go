package controllers

import (
	"context"
	"net/http"
	"time"

	"dailybite/models"

	"github.com/gin-gonic/gin"
)

// ProcessReward credits an ad reward, at most once per transaction.
func ProcessReward(c *gin.Context) {
	var req models.RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := rewardService.ProcessReward(ctx, req)
	if err != nil {
		respondError(c, err, "Failed to process reward")
		return
	}

	if !res.Accepted {
		// duplicate retry, a normal outcome
		c.JSON(http.StatusOK, gin.H{"success": false, "message": res.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"message":          res.Message,
		"reward_amount":    res.RewardAmount,
		"new_total_points": res.NewTotalPoints,
	})
}
