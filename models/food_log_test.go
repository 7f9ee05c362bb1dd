package models

import (
	"strings"
	"testing"
	"time"

	"github.com/Hariom8799/nutrisnap/apperrors"
)

func validFoodLog() FoodLog {
	return FoodLog{
		UserID:   1,
		FoodName: "Pizza",
		NutritionInfo: NutritionInfo{
			Calories: 285,
			Protein:  12.2,
			Carbs:    35.6,
			Fat:      10.4,
		},
		ImageURL:  "https://cdn.example.com/food-photos/abc.jpg",
		Timestamp: time.Now(),
	}
}

func TestFoodLogValidate_OK(t *testing.T) {
	f := validFoodLog()
	if err := f.Validate(); err != nil {
		t.Errorf("valid entry rejected: %v", err)
	}
}

// The image URL is optional; absent is fine.
func TestFoodLogValidate_NoImage(t *testing.T) {
	f := validFoodLog()
	f.ImageURL = ""
	if err := f.Validate(); err != nil {
		t.Errorf("entry without imageUrl rejected: %v", err)
	}
}

func TestFoodLogValidate_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		mutFn func(f *FoodLog)
	}{
		{"missing userId", func(f *FoodLog) { f.UserID = 0 }},
		{"missing foodName", func(f *FoodLog) { f.FoodName = "" }},
		{"foodName too long", func(f *FoodLog) { f.FoodName = strings.Repeat("x", 101) }},
		{"negative calories", func(f *FoodLog) { f.NutritionInfo.Calories = -1 }},
		{"negative protein", func(f *FoodLog) { f.NutritionInfo.Protein = -0.1 }},
		{"negative carbs", func(f *FoodLog) { f.NutritionInfo.Carbs = -5 }},
		{"negative fat", func(f *FoodLog) { f.NutritionInfo.Fat = -2 }},
		{"relative imageUrl", func(f *FoodLog) { f.ImageURL = "/local/path.jpg" }},
		{"non-http imageUrl", func(f *FoodLog) { f.ImageURL = "ftp://example.com/a.jpg" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := validFoodLog()
			tc.mutFn(&f)
			err := f.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if apperrors.KindOf(err) != apperrors.KindValidation {
				t.Errorf("error kind = %s, want validation", apperrors.KindOf(err))
			}
		})
	}
}

// Zero macro values are legitimate (e.g. black coffee), only negatives fail.
func TestFoodLogValidate_ZeroMacrosOK(t *testing.T) {
	f := validFoodLog()
	f.NutritionInfo = NutritionInfo{}
	if err := f.Validate(); err != nil {
		t.Errorf("zero macros rejected: %v", err)
	}
}
