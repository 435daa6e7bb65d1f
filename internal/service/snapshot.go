package service

import (
	"database/sql"
	"fmt"

	"github.com/mdivincenzo/macrocoach/internal/model"
)

// DailySnapshot is the derived aggregate for one (profile, date). It is
// rebuilt from logged rows on every read and never persisted; targets are
// copied from the profile at read time.
type DailySnapshot struct {
	Date           string
	Calories       int
	ProteinG       float64
	CarbsG         float64
	FatG           float64
	TargetCalories int
	TargetProteinG float64
	DayEvaluation
	Meals    []model.Meal
	Workouts []model.Workout
}

// MealsLogged reports whether any meal was logged on this date. A day with
// zero meals is an all-zero snapshot with both target booleans false.
func (s DailySnapshot) MealsLogged() bool {
	return len(s.Meals) > 0
}

// NewDailySnapshot assembles a snapshot from already-fetched rows using the
// coaching tolerance scheme for the target booleans.
func NewDailySnapshot(date string, meals []model.Meal, workouts []model.Workout, targets Targets) DailySnapshot {
	totals := DayTotals{}
	for _, m := range meals {
		totals.Calories += m.Calories
		totals.ProteinG += m.ProteinG
		totals.CarbsG += m.CarbsG
		totals.FatG += m.FatG
	}

	snap := DailySnapshot{
		Date:           date,
		Calories:       totals.Calories,
		ProteinG:       totals.ProteinG,
		CarbsG:         totals.CarbsG,
		FatG:           totals.FatG,
		TargetCalories: targets.Calories,
		TargetProteinG: targets.ProteinG,
		Meals:          meals,
		Workouts:       workouts,
	}
	if len(meals) > 0 {
		snap.DayEvaluation = EvaluateCoachingDay(totals, targets)
	}
	return snap
}

func (s DailySnapshot) totals() DayTotals {
	return DayTotals{
		Calories: s.Calories,
		ProteinG: s.ProteinG,
		CarbsG:   s.CarbsG,
		FatG:     s.FatG,
	}
}

// BuildDailySnapshot fetches a single day's rows and assembles its snapshot.
func BuildDailySnapshot(db *sql.DB, profileID int64, date string) (DailySnapshot, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return DailySnapshot{}, err
	}
	profile, err := GetProfile(db, profileID)
	if err != nil {
		return DailySnapshot{}, err
	}
	meals, err := MealsForDateRange(db, profileID, date, date)
	if err != nil {
		return DailySnapshot{}, err
	}
	workouts, err := WorkoutsForDateRange(db, profileID, date, date)
	if err != nil {
		return DailySnapshot{}, err
	}
	return NewDailySnapshot(date, meals, workouts, EffectiveTargets(profile)), nil
}

// SnapshotRange assembles one snapshot per calendar day in [from, to]
// inclusive, including all-zero snapshots for days with no rows. Both
// bounds are local YYYY-MM-DD dates.
func SnapshotRange(db *sql.DB, profileID int64, fromDate, toDate string, targets Targets) ([]DailySnapshot, error) {
	from, err := parseLocalDate(fromDate)
	if err != nil {
		return nil, err
	}
	to, err := parseLocalDate(toDate)
	if err != nil {
		return nil, err
	}
	if from.After(to) {
		return nil, fmt.Errorf("from date must be <= to date")
	}

	meals, err := MealsForDateRange(db, profileID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	workouts, err := WorkoutsForDateRange(db, profileID, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	mealsByDate := GroupMealsByDate(meals)
	workoutsByDate := GroupWorkoutsByDate(workouts)

	snapshots := make([]DailySnapshot, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		snapshots = append(snapshots, NewDailySnapshot(date, mealsByDate[date], workoutsByDate[date], targets))
	}
	return snapshots, nil
}
