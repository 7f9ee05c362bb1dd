package models

import (
	"net/url"
	"time"

	"github.com/Hariom8799/nutrisnap/apperrors"
	"gorm.io/gorm"
)

// NutritionInfo is the macro snapshot stored with each logged food.
type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// FoodLog is one logged food event. Entries are append-only: the API
// exposes no update or delete for them.
type FoodLog struct {
	gorm.Model
	UserID        uint          `gorm:"index;not null" json:"userId"`
	FoodName      string        `gorm:"not null" json:"foodName"`
	NutritionInfo NutritionInfo `gorm:"embedded;embeddedPrefix:nutrition_" json:"nutritionInfo"`
	ImageURL      string        `json:"imageUrl,omitempty"`
	Timestamp     time.Time     `gorm:"index;not null" json:"timestamp"`
}

// Validate enforces the write-time constraints before an append.
func (f *FoodLog) Validate() error {
	if f.UserID == 0 {
		return apperrors.Validation("userId is required")
	}
	if f.FoodName == "" {
		return apperrors.Validation("foodName is required")
	}
	if len(f.FoodName) > 100 {
		return apperrors.Validation("foodName cannot be more than 100 characters")
	}
	n := f.NutritionInfo
	if n.Calories < 0 || n.Protein < 0 || n.Carbs < 0 || n.Fat < 0 {
		return apperrors.Validation("nutrition values cannot be negative")
	}
	if f.ImageURL != "" {
		if u, err := url.Parse(f.ImageURL); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return apperrors.Validation("imageUrl must be a valid http(s) URL")
		}
	}
	return nil
}
