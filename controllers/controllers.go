package controllers

import (
	"errors"
	"log"
	"net/http"

	"dailybite/config"
	"dailybite/services"
	"dailybite/store"

	"github.com/gin-gonic/gin"
)

var (
	userService        *services.UserService
	scoreService       *services.ScoreService
	streakService      *services.StreakService
	rewardService      *services.RewardService
	leaderboardService *services.LeaderboardService
)

// Init wires the controllers to a store and the process configuration.
func Init(st store.Store, cfg *config.Config) {
	userService = services.NewUserService(st)
	scoreService = services.NewScoreService(st)
	streakService = services.NewStreakService(st)
	rewardService = services.NewRewardService(st, cfg.App.Secret)
	leaderboardService = services.NewLeaderboardService(st)
}

// respondError maps the service error taxonomy onto HTTP status codes.
// Anything unrecognized is a store failure: logged and answered with 500,
// retry belongs to the client.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		log.Printf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
