package service

import "github.com/mdivincenzo/macrocoach/internal/model"

// DayTotals is the summed macro intake for one calendar date.
type DayTotals struct {
	Calories int
	ProteinG float64
	CarbsG   float64
	FatG     float64
}

// SumByDate groups meals by their logged date and sums macro fields into one
// bucket per distinct date. Pure function: input order is irrelevant and
// dates with no meals simply do not appear in the result, so callers must
// supply their own zero default for absent days.
func SumByDate(meals []model.Meal) map[string]DayTotals {
	totals := make(map[string]DayTotals)
	for _, m := range meals {
		t := totals[m.LoggedDate]
		t.Calories += m.Calories
		t.ProteinG += m.ProteinG
		t.CarbsG += m.CarbsG
		t.FatG += m.FatG
		totals[m.LoggedDate] = t
	}
	return totals
}

// GroupMealsByDate buckets meals by logged date without summing, preserving
// input order within each bucket.
func GroupMealsByDate(meals []model.Meal) map[string][]model.Meal {
	byDate := make(map[string][]model.Meal)
	for _, m := range meals {
		byDate[m.LoggedDate] = append(byDate[m.LoggedDate], m)
	}
	return byDate
}

// GroupWorkoutsByDate buckets workouts by logged date.
func GroupWorkoutsByDate(workouts []model.Workout) map[string][]model.Workout {
	byDate := make(map[string][]model.Workout)
	for _, w := range workouts {
		byDate[w.LoggedDate] = append(byDate[w.LoggedDate], w)
	}
	return byDate
}
