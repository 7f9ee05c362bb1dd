package utils

import "math"

// activityMultipliers maps activity level strings to their TDEE multiplier.
// Single source of truth for valid levels; models.ActivityLevels mirrors it.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly active":    1.375,
	"moderately active": 1.55,
	"very active":       1.725,
	"extra active":      1.9,
}

// CalculateBMR computes basal metabolic rate (revised Harris-Benedict).
// weight in kg, height in cm.
func CalculateBMR(weightKg, heightCm float64, age int, gender string) float64 {
	if gender == "male" {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
}

// CalculateTDEE scales BMR by the activity multiplier. Unknown levels fall
// back to sedentary rather than erroring; enum validation happens upstream.
func CalculateTDEE(bmr float64, activityLevel string) float64 {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = activityMultipliers["sedentary"]
	}
	return bmr * mult
}

// CalculateDailyCalorieGoal derives the daily calorie target from the
// profile: TDEE adjusted -500 for weight loss, +500 for weight gain, then
// clamped into [1000, 10000] so the stored goal always satisfies the
// profile range constraint (the raw formula can dip below 1000 at the low
// end of the valid input ranges).
func CalculateDailyCalorieGoal(weightKg, heightCm float64, age int, gender, activityLevel, goal string) int {
	tdee := CalculateTDEE(CalculateBMR(weightKg, heightCm, age, gender), activityLevel)

	switch goal {
	case "lose weight":
		tdee -= 500
	case "gain weight":
		tdee += 500
	}

	calories := int(math.Round(tdee))
	if calories < 1000 {
		calories = 1000
	}
	if calories > 10000 {
		calories = 10000
	}
	return calories
}
