package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Hariom8799/nutrisnap/models"
)

// logAt builds a FoodLog with the given timestamp and macro values.
func logAt(ts time.Time, calories, protein, carbs, fat float64) models.FoodLog {
	return models.FoodLog{
		UserID:   1,
		FoodName: "test food",
		NutritionInfo: models.NutritionInfo{
			Calories: calories,
			Protein:  protein,
			Carbs:    carbs,
			Fat:      fat,
		},
		Timestamp: ts,
	}
}

func TestDailyTotals_FiltersByCalendarDay(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	logs := []models.FoodLog{
		logAt(day.Add(8*time.Hour), 400, 20, 40, 10),
		logAt(day.Add(20*time.Hour), 600, 30, 50, 25),
		logAt(day.AddDate(0, 0, -1).Add(12*time.Hour), 999, 99, 99, 99), // previous day, excluded
		logAt(day.AddDate(0, 0, 1), 500, 10, 10, 10),                    // next day, excluded
	}

	totals := DailyTotals(logs, day)
	if totals.Calories != 1000 || totals.Protein != 50 || totals.Carbs != 90 || totals.Fat != 35 {
		t.Errorf("totals = %+v, want {1000 50 90 35}", totals)
	}
}

// TestDailyTotals_Additive: totals over E1+E2 must equal totals(E1) plus
// totals(E2) element-wise.
func TestDailyTotals_Additive(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	e1 := logAt(day.Add(9*time.Hour), 350, 12, 30, 8)
	e2 := logAt(day.Add(13*time.Hour), 720, 41, 66, 23)

	combined := DailyTotals([]models.FoodLog{e1, e2}, day)
	t1 := DailyTotals([]models.FoodLog{e1}, day)
	t2 := DailyTotals([]models.FoodLog{e2}, day)

	if combined.Calories != t1.Calories+t2.Calories ||
		combined.Protein != t1.Protein+t2.Protein ||
		combined.Carbs != t1.Carbs+t2.Carbs ||
		combined.Fat != t1.Fat+t2.Fat {
		t.Errorf("totals not additive: combined=%+v t1=%+v t2=%+v", combined, t1, t2)
	}
}

func TestDailyTotals_EmptyDay(t *testing.T) {
	totals := DailyTotals(nil, time.Now())
	if totals != (models.NutritionInfo{}) {
		t.Errorf("totals for no logs = %+v, want zero value", totals)
	}
}

func TestCalorieHistory_GroupsByDate(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	logs := []models.FoodLog{
		logAt(base, 500, 0, 0, 0),
		logAt(base.Add(6*time.Hour), 700, 0, 0, 0), // same day
		logAt(base.AddDate(0, 0, 1), 900, 0, 0, 0),
	}

	series := CalorieHistory(logs)
	if len(series) != 2 {
		t.Fatalf("len(series) = %d, want 2", len(series))
	}
	if series[0].Date != "2024-03-01" || series[0].Calories != 1200 {
		t.Errorf("series[0] = %+v, want {2024-03-01 1200}", series[0])
	}
	if series[1].Date != "2024-03-02" || series[1].Calories != 900 {
		t.Errorf("series[1] = %+v, want {2024-03-02 900}", series[1])
	}
}

// Ten distinct days in: only the 7 most recent come out, ascending.
func TestCalorieHistory_TruncatesToSevenMostRecent(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	var logs []models.FoodLog
	for i := 0; i < 10; i++ {
		logs = append(logs, logAt(base.AddDate(0, 0, i), float64(100*(i+1)), 0, 0, 0))
	}

	series := CalorieHistory(logs)
	if len(series) != 7 {
		t.Fatalf("len(series) = %d, want 7", len(series))
	}
	// Oldest surviving day is base+3 (2024-03-04).
	if series[0].Date != "2024-03-04" {
		t.Errorf("series[0].Date = %s, want 2024-03-04", series[0].Date)
	}
	if series[6].Date != "2024-03-10" {
		t.Errorf("series[6].Date = %s, want 2024-03-10", series[6].Date)
	}
	for i := 1; i < len(series); i++ {
		if series[i-1].Date >= series[i].Date {
			t.Errorf("series not ascending at %d: %s >= %s", i, series[i-1].Date, series[i].Date)
		}
	}
}

// An appended entry must read back via ListByUser with identical foodName
// and nutritionInfo.
func TestAppendListRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodLogService(db)

	entry := models.FoodLog{
		UserID:   1,
		FoodName: "Pizza",
		NutritionInfo: models.NutritionInfo{
			Calories: 285,
			Protein:  12.2,
			Carbs:    35.6,
			Fat:      10.4,
		},
		ImageURL:  "https://cdn.example.com/food-photos/abc.jpg",
		Timestamp: time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC),
	}
	if err := svc.Append(&entry); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if entry.ID == 0 {
		t.Error("appended entry has no id")
	}

	logs, err := svc.ListByUser(1, 0)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("len(logs) = %d, want 1", len(logs))
	}
	got := logs[0]
	if got.FoodName != entry.FoodName {
		t.Errorf("foodName = %q, want %q", got.FoodName, entry.FoodName)
	}
	if got.NutritionInfo != entry.NutritionInfo {
		t.Errorf("nutritionInfo = %+v, want %+v", got.NutritionInfo, entry.NutritionInfo)
	}
}

// The list is newest-first and capped at the 20-entry page, scoped to the
// requesting user.
func TestListByUser_NewestFirstCapped(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodLogService(db)

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		entry := logAt(base.Add(time.Duration(i)*time.Hour), float64(100+i), 0, 0, 0)
		entry.FoodName = fmt.Sprintf("food %d", i)
		if err := svc.Append(&entry); err != nil {
			t.Fatalf("Append %d failed: %v", i, err)
		}
	}
	other := logAt(base.Add(100*time.Hour), 500, 0, 0, 0)
	other.UserID = 2
	if err := svc.Append(&other); err != nil {
		t.Fatalf("Append for other user failed: %v", err)
	}

	logs, err := svc.ListByUser(1, 0)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(logs) != 20 {
		t.Fatalf("len(logs) = %d, want 20", len(logs))
	}
	if logs[0].FoodName != "food 24" {
		t.Errorf("logs[0] = %q, want the newest entry 'food 24'", logs[0].FoodName)
	}
	for i := 1; i < len(logs); i++ {
		if logs[i-1].Timestamp.Before(logs[i].Timestamp) {
			t.Errorf("logs not newest-first at %d", i)
		}
	}
	for _, log := range logs {
		if log.UserID != 1 {
			t.Errorf("entry for user %d leaked into user 1's list", log.UserID)
		}
	}
}

// Invalid entries are rejected at the store boundary and never persisted.
func TestAppend_RejectsInvalid(t *testing.T) {
	db := newTestDB(t)
	svc := NewFoodLogService(db)

	entry := logAt(time.Now(), -10, 0, 0, 0) // negative calories
	if err := svc.Append(&entry); err == nil {
		t.Fatal("expected validation error, got nil")
	}

	var count int64
	if err := db.Model(&models.FoodLog{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("food_log rows = %d, want 0", count)
	}
}

// The summary window must cover the whole calendar day even when a DST
// fall-back makes it 25 hours long.
func TestDayWindow_DSTFallBack(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// Clocks fall back on 2024-11-03 in this zone.
	day := time.Date(2024, 11, 3, 12, 0, 0, 0, loc)
	start, end := dayWindow(day)

	if got := end.Sub(start); got != 25*time.Hour {
		t.Errorf("window length = %v, want 25h on the fall-back day", got)
	}
	late := time.Date(2024, 11, 3, 23, 30, 0, 0, loc)
	if !late.After(start) || !late.Before(end) {
		t.Error("23:30 local should fall inside the day window")
	}
	if next := time.Date(2024, 11, 4, 0, 0, 0, 0, loc); !end.Equal(next) {
		t.Errorf("window end = %v, want next midnight %v", end, next)
	}
}

func TestRemainingCalories(t *testing.T) {
	if got := RemainingCalories(1800, 2000); got != 200 {
		t.Errorf("RemainingCalories(1800, 2000) = %f, want 200", got)
	}
	if got := RemainingCalories(2500, 2000); got != -500 {
		t.Errorf("RemainingCalories(2500, 2000) = %f, want -500", got)
	}
}

func TestSuggestion_Tiers(t *testing.T) {
	cases := []struct {
		remaining float64
		want      string
	}{
		{800, "You have plenty of calories left. Consider having a nutritious meal."},
		{501, "You have plenty of calories left. Consider having a nutritious meal."},
		{500, "You have some calories left. A light snack might be a good idea."},
		{300, "You have some calories left. A light snack might be a good idea."},
		// consumed=1800 against goal=2000 lands here
		{200, "You're close to your calorie goal. Choose your next meal carefully."},
		{1, "You're close to your calorie goal. Choose your next meal carefully."},
		{0, "You've reached your calorie goal for the day. Try to avoid eating more if possible."},
		{-250, "You've reached your calorie goal for the day. Try to avoid eating more if possible."},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("remaining=%v", tc.remaining), func(t *testing.T) {
			if got := Suggestion(tc.remaining); got != tc.want {
				t.Errorf("Suggestion(%v) = %q, want %q", tc.remaining, got, tc.want)
			}
		})
	}
}
