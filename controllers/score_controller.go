package controllers

import (
	"context"
	"net/http"
	"time"

	"dailybite/models"

	"github.com/gin-gonic/gin"
)

// SubmitScore records a puzzle score for the day.
func SubmitScore(c *gin.Context) {
	var sub models.ScoreSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := scoreService.SubmitScore(ctx, sub)
	if err != nil {
		respondError(c, err, "Failed to submit score")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    res.Message,
		"new_record": res.IsNewRecord,
	})
}
