package services

import (
	"sort"
	"time"

	"github.com/Hariom8799/nutrisnap/apperrors"
	"github.com/Hariom8799/nutrisnap/models"
	"gorm.io/gorm"
)

// defaultLogLimit is the page size for the food-log list: newest 20 first.
const defaultLogLimit = 20

// FoodLogService owns the append-only food log and the aggregations the
// dashboard is built from.
type FoodLogService struct {
	db *gorm.DB
}

func NewFoodLogService(db *gorm.DB) *FoodLogService {
	return &FoodLogService{db: db}
}

// Append validates and persists one food event. Entries are never mutated
// or deleted afterwards.
func (s *FoodLogService) Append(entry *models.FoodLog) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	if err := entry.Validate(); err != nil {
		return err
	}
	if err := s.db.Create(entry).Error; err != nil {
		return apperrors.Internal("failed to log food", err)
	}
	return nil
}

// ListByUser returns the user's entries, newest first. limit <= 0 or above
// the page size falls back to the default of 20.
func (s *FoodLogService) ListByUser(userID uint, limit int) ([]models.FoodLog, error) {
	if limit <= 0 || limit > defaultLogLimit {
		limit = defaultLogLimit
	}
	var logs []models.FoodLog
	err := s.db.
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, apperrors.Internal("failed to fetch food logs", err)
	}
	return logs, nil
}

// DailyTotals sums calories and macros over the entries whose timestamp
// falls on the given calendar day (local time).
func DailyTotals(logs []models.FoodLog, day time.Time) models.NutritionInfo {
	y, m, d := day.Date()
	var totals models.NutritionInfo
	for _, log := range logs {
		ly, lm, ld := log.Timestamp.Date()
		if ly != y || lm != m || ld != d {
			continue
		}
		totals.Calories += log.NutritionInfo.Calories
		totals.Protein += log.NutritionInfo.Protein
		totals.Carbs += log.NutritionInfo.Carbs
		totals.Fat += log.NutritionInfo.Fat
	}
	return totals
}

// DailyCalories is one point of the calorie-history chart.
type DailyCalories struct {
	Date     string  `json:"date"` // ISO date, e.g. 2024-03-01
	Calories float64 `json:"calories"`
}

// CalorieHistory groups entries by ISO date, sums calories per day, keeps
// the 7 most recent distinct days, and returns them in ascending order.
func CalorieHistory(logs []models.FoodLog) []DailyCalories {
	byDate := make(map[string]float64)
	for _, log := range logs {
		date := log.Timestamp.Format("2006-01-02")
		byDate[date] += log.NutritionInfo.Calories
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	// ISO dates sort lexicographically in chronological order.
	sort.Strings(dates)
	if len(dates) > 7 {
		dates = dates[len(dates)-7:]
	}

	series := make([]DailyCalories, 0, len(dates))
	for _, date := range dates {
		series = append(series, DailyCalories{Date: date, Calories: byDate[date]})
	}
	return series
}

// RemainingCalories subtracts consumed from the daily goal. Negative values
// mean the goal was exceeded.
func RemainingCalories(consumed, goal float64) float64 {
	return goal - consumed
}

// Suggestion returns the tiered advice message for the remaining budget.
func Suggestion(remaining float64) string {
	switch {
	case remaining > 500:
		return "You have plenty of calories left. Consider having a nutritious meal."
	case remaining > 200:
		return "You have some calories left. A light snack might be a good idea."
	case remaining > 0:
		return "You're close to your calorie goal. Choose your next meal carefully."
	default:
		return "You've reached your calorie goal for the day. Try to avoid eating more if possible."
	}
}

// dayWindow returns the [start, end) bounds of the calendar day containing
// day, in its location. AddDate lands end on the next midnight even when a
// DST transition makes the day longer or shorter than 24 hours.
func dayWindow(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

// DailySummary is the server-side rendering of the dashboard widgets for
// one calendar day.
type DailySummary struct {
	Date       string               `json:"date"`
	Totals     models.NutritionInfo `json:"totals"`
	Goal       int                  `json:"goal"`
	Remaining  float64              `json:"remaining"`
	Suggestion string               `json:"suggestion"`
}

// Summarize builds the daily summary for the given day from the user's
// recent entries and calorie goal.
func (s *FoodLogService) Summarize(userID uint, goal int, day time.Time) (*DailySummary, error) {
	start, end := dayWindow(day)

	var logs []models.FoodLog
	err := s.db.
		Where("user_id = ? AND timestamp >= ? AND timestamp < ?", userID, start, end).
		Order("timestamp DESC").
		Find(&logs).Error
	if err != nil {
		return nil, apperrors.Internal("failed to fetch food logs", err)
	}

	totals := DailyTotals(logs, day)
	remaining := RemainingCalories(totals.Calories, float64(goal))
	return &DailySummary{
		Date:       start.Format("2006-01-02"),
		Totals:     totals,
		Goal:       goal,
		Remaining:  remaining,
		Suggestion: Suggestion(remaining),
	}, nil
}
