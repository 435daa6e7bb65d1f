package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mdivincenzo/macrocoach/internal/model"
)

type LogWorkoutInput struct {
	ProfileID      int64
	WorkoutType    string
	Exercise       string
	DurationMin    *int
	CaloriesBurned int
	Date           string
}

func LogWorkout(db *sql.DB, in LogWorkoutInput) (int64, error) {
	if in.ProfileID <= 0 {
		return 0, fmt.Errorf("profile id must be > 0")
	}
	in.WorkoutType = strings.TrimSpace(strings.ToLower(in.WorkoutType))
	if in.WorkoutType == "" {
		return 0, fmt.Errorf("workout type is required")
	}
	if in.DurationMin != nil && *in.DurationMin <= 0 {
		return 0, fmt.Errorf("duration must be > 0 minutes")
	}
	if err := validateNonNegativeInt("calories burned", in.CaloriesBurned); err != nil {
		return 0, err
	}
	date, err := normalizeDate(in.Date)
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(`
INSERT INTO workouts(profile_id, workout_type, exercise, duration_minutes, calories_burned, logged_date)
VALUES(?, ?, ?, ?, ?, ?)
`, in.ProfileID, in.WorkoutType, strings.TrimSpace(in.Exercise), in.DurationMin, in.CaloriesBurned, date)
	if err != nil {
		return 0, fmt.Errorf("insert workout: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve inserted workout id: %w", err)
	}
	return id, nil
}

func WorkoutsForDateRange(db *sql.DB, profileID int64, fromDate, toDate string) ([]model.Workout, error) {
	rows, err := db.Query(`
SELECT id, profile_id, workout_type, IFNULL(exercise, ''), duration_minutes, calories_burned, logged_date, created_at
FROM workouts
WHERE profile_id = ? AND logged_date >= ? AND logged_date <= ?
ORDER BY logged_date ASC, id ASC
`, profileID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	workouts := make([]model.Workout, 0)
	for rows.Next() {
		var w model.Workout
		if err := rows.Scan(&w.ID, &w.ProfileID, &w.WorkoutType, &w.Exercise, &w.DurationMin, &w.CaloriesBurned, &w.LoggedDate, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}
	return workouts, nil
}

func WorkoutsForDate(db *sql.DB, profileID int64, date string) ([]model.Workout, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return nil, err
	}
	return WorkoutsForDateRange(db, profileID, date, date)
}

func DeleteWorkout(db *sql.DB, profileID, id int64) error {
	res, err := db.Exec(`DELETE FROM workouts WHERE id = ? AND profile_id = ?`, id, profileID)
	if err != nil {
		return fmt.Errorf("delete workout %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve workout delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("workout %d does not exist for this profile", id)
	}
	return nil
}
