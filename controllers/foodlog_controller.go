package controllers

import (
	"net/http"
	"time"

	"github.com/Hariom8799/nutrisnap/apperrors"
	"github.com/Hariom8799/nutrisnap/models"
	"github.com/Hariom8799/nutrisnap/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type FoodLogController struct {
	logs     *services.FoodLogService
	profiles *services.ProfileService
	logger   logrus.FieldLogger
}

func NewFoodLogController(logs *services.FoodLogService, profiles *services.ProfileService, logger logrus.FieldLogger) *FoodLogController {
	return &FoodLogController{logs: logs, profiles: profiles, logger: logger}
}

// GET /api/food-logs?userId=123
func (fc *FoodLogController) GetFoodLogs(c *gin.Context) {
	userID, err := queryUserID(c)
	if err != nil {
		respondError(c, fc.logger, err)
		return
	}

	logs, err := fc.logs.ListByUser(userID, 0)
	if err != nil {
		respondError(c, fc.logger, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

type LogFoodInput struct {
	UserID        uint                 `json:"userId" binding:"required"`
	FoodName      string               `json:"foodName" binding:"required"`
	NutritionInfo models.NutritionInfo `json:"nutritionInfo"`
	ImageURL      string               `json:"imageUrl"`
}

// POST /api/log-food
func (fc *FoodLogController) LogFood(c *gin.Context) {
	var input LogFoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, fc.logger, apperrors.Validation(err.Error()))
		return
	}

	entry := models.FoodLog{
		UserID:        input.UserID,
		FoodName:      input.FoodName,
		NutritionInfo: input.NutritionInfo,
		ImageURL:      input.ImageURL,
		Timestamp:     time.Now(),
	}
	if err := fc.logs.Append(&entry); err != nil {
		respondError(c, fc.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "id": entry.ID})
}

// GET /api/daily-summary?userId=123&date=2024-03-01
// date defaults to today (local time).
func (fc *FoodLogController) DailySummary(c *gin.Context) {
	userID, err := queryUserID(c)
	if err != nil {
		respondError(c, fc.logger, err)
		return
	}

	day := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			respondError(c, fc.logger, apperrors.Validation("invalid date format, use YYYY-MM-DD"))
			return
		}
		day = parsed
	}

	profile, err := fc.profiles.GetByUserID(userID)
	if err != nil {
		respondError(c, fc.logger, err)
		return
	}

	summary, err := fc.logs.Summarize(userID, profile.DailyCalorieGoal, day)
	if err != nil {
		respondError(c, fc.logger, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /api/calorie-history?userId=123
// Returns calories per day for the 7 most recent logged days, ascending.
func (fc *FoodLogController) CalorieHistory(c *gin.Context) {
	userID, err := queryUserID(c)
	if err != nil {
		respondError(c, fc.logger, err)
		return
	}

	logs, err := fc.logs.ListByUser(userID, 0)
	if err != nil {
		respondError(c, fc.logger, err)
		return
	}
	c.JSON(http.StatusOK, services.CalorieHistory(logs))
}
