package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mdivincenzo/macrocoach/internal/model"
)

// Recognized time_of_day tags. Meals without a tag still participate in
// mealtime heuristics via name matching.
var mealTimesOfDay = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

type LogMealInput struct {
	ProfileID int64
	Name      string
	Calories  int
	ProteinG  float64
	CarbsG    float64
	FatG      float64
	TimeOfDay string
	Date      string
}

type UpdateMealInput struct {
	ID        int64
	ProfileID int64
	Name      string
	Calories  int
	ProteinG  float64
	CarbsG    float64
	FatG      float64
	TimeOfDay string
}

func LogMeal(db *sql.DB, in LogMealInput) (int64, error) {
	if in.ProfileID <= 0 {
		return 0, fmt.Errorf("profile id must be > 0")
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return 0, fmt.Errorf("meal name is required")
	}
	if err := validateMealNumbers(in.Calories, in.ProteinG, in.CarbsG, in.FatG); err != nil {
		return 0, err
	}
	timeOfDay, err := normalizeTimeOfDay(in.TimeOfDay)
	if err != nil {
		return 0, err
	}
	date, err := normalizeDate(in.Date)
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(`
INSERT INTO meals(profile_id, name, calories, protein_g, carbs_g, fat_g, time_of_day, logged_date)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
`, in.ProfileID, in.Name, in.Calories, in.ProteinG, in.CarbsG, in.FatG, timeOfDay, date)
	if err != nil {
		return 0, fmt.Errorf("insert meal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted meal id: %w", err)
	}
	return id, nil
}

// MealsForDateRange returns a profile's meals with logged_date in
// [fromDate, toDate] inclusive, ordered by date then insertion.
func MealsForDateRange(db *sql.DB, profileID int64, fromDate, toDate string) ([]model.Meal, error) {
	rows, err := db.Query(`
SELECT id, profile_id, name, calories, protein_g, carbs_g, fat_g, IFNULL(time_of_day, ''), logged_date, created_at, updated_at
FROM meals
WHERE profile_id = ? AND logged_date >= ? AND logged_date <= ?
ORDER BY logged_date ASC, id ASC
`, profileID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query meals: %w", err)
	}
	defer rows.Close()

	meals := make([]model.Meal, 0)
	for rows.Next() {
		var m model.Meal
		if err := rows.Scan(&m.ID, &m.ProfileID, &m.Name, &m.Calories, &m.ProteinG, &m.CarbsG, &m.FatG, &m.TimeOfDay, &m.LoggedDate, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meals: %w", err)
	}
	return meals, nil
}

func MealsForDate(db *sql.DB, profileID int64, date string) ([]model.Meal, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	return MealsForDateRange(db, profileID, date, date)
}

func UpdateMeal(db *sql.DB, in UpdateMealInput) error {
	if in.ID <= 0 {
		return fmt.Errorf("meal id must be > 0")
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("meal name is required")
	}
	if err := validateMealNumbers(in.Calories, in.ProteinG, in.CarbsG, in.FatG); err != nil {
		return err
	}
	timeOfDay, err := normalizeTimeOfDay(in.TimeOfDay)
	if err != nil {
		return err
	}

	res, err := db.Exec(`
UPDATE meals
SET name = ?, calories = ?, protein_g = ?, carbs_g = ?, fat_g = ?, time_of_day = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND profile_id = ?
`, in.Name, in.Calories, in.ProteinG, in.CarbsG, in.FatG, timeOfDay, in.ID, in.ProfileID)
	if err != nil {
		return fmt.Errorf("update meal %d: %w", in.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve meal update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("meal %d does not exist for this profile", in.ID)
	}
	return nil
}

func DeleteMeal(db *sql.DB, profileID, id int64) error {
	res, err := db.Exec(`DELETE FROM meals WHERE id = ? AND profile_id = ?`, id, profileID)
	if err != nil {
		return fmt.Errorf("delete meal %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve meal delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("meal %d does not exist for this profile", id)
	}
	return nil
}

func validateMealNumbers(calories int, protein, carbs, fat float64) error {
	if err := validateNonNegativeInt("calories", calories); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("protein", protein); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("carbs", carbs); err != nil {
		return err
	}
	return validateNonNegativeFloat("fat", fat)
}

func normalizeTimeOfDay(timeOfDay string) (any, error) {
	timeOfDay = strings.TrimSpace(strings.ToLower(timeOfDay))
	if timeOfDay == "" {
		return nil, nil
	}
	if !mealTimesOfDay[timeOfDay] {
		return nil, fmt.Errorf("invalid time of day %q (use breakfast, lunch, dinner, or snack)", timeOfDay)
	}
	return timeOfDay, nil
}
