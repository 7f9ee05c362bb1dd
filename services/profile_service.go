package services

import (
	"errors"

	"github.com/Hariom8799/nutrisnap/apperrors"
	"github.com/Hariom8799/nutrisnap/models"
	"github.com/Hariom8799/nutrisnap/utils"
	"gorm.io/gorm"
)

// ProfileService owns per-user physiological profiles and their computed
// daily calorie goals.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// ProfileInput is the write shape shared by create and update.
type ProfileInput struct {
	UserID        uint    `json:"userId" binding:"required"`
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	Height        float64 `json:"height"`
	Weight        float64 `json:"weight"`
	ActivityLevel string  `json:"activityLevel"`
	Goal          string  `json:"goal"`
}

// GetByUserID returns the user's profile or NotFound.
func (s *ProfileService) GetByUserID(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("user profile not found")
	}
	if err != nil {
		return nil, apperrors.Internal("failed to fetch user profile", err)
	}
	return &profile, nil
}

// Upsert validates the input, recomputes the daily calorie goal, and writes
// the profile (one per user). UpdatedAt refreshes on every save via GORM.
func (s *ProfileService) Upsert(input ProfileInput) (*models.UserProfile, error) {
	incoming := models.UserProfile{
		UserID:        input.UserID,
		Age:           input.Age,
		Gender:        input.Gender,
		Height:        input.Height,
		Weight:        input.Weight,
		ActivityLevel: input.ActivityLevel,
		Goal:          input.Goal,
	}
	// Goal is derived, never client-supplied.
	incoming.DailyCalorieGoal = utils.CalculateDailyCalorieGoal(
		input.Weight, input.Height, input.Age, input.Gender, input.ActivityLevel, input.Goal,
	)

	if err := incoming.Validate(); err != nil {
		return nil, err
	}

	var profile models.UserProfile
	err := s.db.Where("user_id = ?", input.UserID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.db.Create(&incoming).Error; err != nil {
			return nil, apperrors.Internal("failed to create user profile", err)
		}
		return &incoming, nil
	}
	if err != nil {
		return nil, apperrors.Internal("failed to fetch user profile", err)
	}

	profile.Age = incoming.Age
	profile.Gender = incoming.Gender
	profile.Height = incoming.Height
	profile.Weight = incoming.Weight
	profile.ActivityLevel = incoming.ActivityLevel
	profile.Goal = incoming.Goal
	profile.DailyCalorieGoal = incoming.DailyCalorieGoal

	if err := s.db.Save(&profile).Error; err != nil {
		return nil, apperrors.Internal("failed to update user profile", err)
	}
	return &profile, nil
}
