package models

import (
	"fmt"

	"github.com/Hariom8799/nutrisnap/apperrors"
	"gorm.io/gorm"
)

// Valid enum values for profile fields.
var (
	Genders        = []string{"male", "female", "other"}
	ActivityLevels = []string{"sedentary", "lightly active", "moderately active", "very active", "extra active"}
	Goals          = []string{"lose weight", "maintain weight", "gain weight"}
)

// UserProfile holds one user's physiological attributes and computed
// daily calorie goal. One profile per user.
type UserProfile struct {
	gorm.Model
	UserID           uint    `gorm:"uniqueIndex;not null" json:"userId"`
	Age              int     `json:"age"`
	Gender           string  `json:"gender"`
	Height           float64 `json:"height"` // cm
	Weight           float64 `json:"weight"` // kg
	ActivityLevel    string  `json:"activityLevel"`
	Goal             string  `json:"goal"`
	DailyCalorieGoal int     `json:"dailyCalorieGoal"`
}

// Validate enforces the write-time range and enum constraints.
func (p *UserProfile) Validate() error {
	if p.UserID == 0 {
		return apperrors.Validation("userId is required")
	}
	if p.Age < 13 || p.Age > 120 {
		return apperrors.Validation("age must be between 13 and 120")
	}
	if !contains(Genders, p.Gender) {
		return apperrors.Validation(fmt.Sprintf("gender must be one of %v", Genders))
	}
	if p.Height < 50 || p.Height > 300 {
		return apperrors.Validation("height must be between 50 and 300 cm")
	}
	if p.Weight < 20 || p.Weight > 500 {
		return apperrors.Validation("weight must be between 20 and 500 kg")
	}
	if !contains(ActivityLevels, p.ActivityLevel) {
		return apperrors.Validation(fmt.Sprintf("activityLevel must be one of %v", ActivityLevels))
	}
	if !contains(Goals, p.Goal) {
		return apperrors.Validation(fmt.Sprintf("goal must be one of %v", Goals))
	}
	if p.DailyCalorieGoal < 1000 || p.DailyCalorieGoal > 10000 {
		return apperrors.Validation("dailyCalorieGoal must be between 1000 and 10000")
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
