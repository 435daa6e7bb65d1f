package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/mdivincenzo/macrocoach/internal/db"
	"github.com/mdivincenzo/macrocoach/internal/model"
	"github.com/mdivincenzo/macrocoach/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "macrocoach.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

// newTestProfile creates a profile with explicit 2000 kcal / 150 g targets.
func newTestProfile(t *testing.T, sqldb *sql.DB, goal string) int64 {
	t.Helper()
	id, err := service.CreateProfile(sqldb, service.CreateProfileInput{
		Name:          "test-" + t.Name(),
		DailyCalories: intPtr(2000),
		DailyProtein:  floatPtr(150),
		Goal:          goal,
		StartDate:     "2026-01-01",
	})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	return id
}

func seedMeal(t *testing.T, sqldb *sql.DB, profileID int64, date, name string, calories int, protein float64, timeOfDay string) int64 {
	t.Helper()
	id, err := service.LogMeal(sqldb, service.LogMealInput{
		ProfileID: profileID,
		Name:      name,
		Calories:  calories,
		ProteinG:  protein,
		TimeOfDay: timeOfDay,
		Date:      date,
	})
	if err != nil {
		t.Fatalf("seed meal %s on %s: %v", name, date, err)
	}
	return id
}

// mkDay builds an in-memory snapshot for pure-function tests. A day with
// logged=false carries no meals and stands in for a missing day.
func mkDay(date string, calories int, protein float64, logged bool) service.DailySnapshot {
	var meals []model.Meal
	if logged {
		meals = []model.Meal{{
			Name:       "day total",
			Calories:   calories,
			ProteinG:   protein,
			LoggedDate: date,
		}}
	}
	return service.NewDailySnapshot(date, meals, nil, testTargets())
}

func testTargets() service.Targets {
	return service.Targets{
		Calories: 2000,
		ProteinG: 150,
		CarbsG:   200,
		FatG:     65,
	}
}
