package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"dailybite/services"
	"dailybite/utils"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard returns the ranked board for ?period=today|allTime.
func GetLeaderboard(c *gin.Context) {
	period := c.DefaultQuery("period", services.PeriodToday)

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}

	date := c.Query("date")
	if date == "" {
		date = utils.TodayString()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entries, err := leaderboardService.Leaderboard(ctx, period, date, limit)
	if err != nil {
		respondError(c, err, "Failed to fetch leaderboard")
		return
	}

	c.JSON(http.StatusOK, entries)
}
