package service

import (
	"database/sql"
	"time"
)

// WeeklyReport summarizes the 7 trailing calendar days before a reference
// day. Today itself is fetched alongside but never counted: it is still in
// progress. Only trailing days with at least one logged meal count as
// "tracked"; averages and consistency counters run over those days with the
// coaching tolerance scheme.
type WeeklyReport struct {
	FromDate string
	ToDate   string

	Days        []DailySnapshot
	DaysTracked int

	AvgCalories float64
	AvgProteinG float64
	AvgCarbsG   float64
	AvgFatG     float64

	DaysHitCalories int
	DaysHitProtein  int
	DaysHitBoth     int

	WorkoutCount int
}

// BuildWeeklyReport fetches the 8-day window ending at today and derives
// the trailing-week report for the profile.
func BuildWeeklyReport(db *sql.DB, profileID int64, today time.Time) (WeeklyReport, error) {
	profile, err := GetProfile(db, profileID)
	if err != nil {
		return WeeklyReport{}, err
	}
	targets := EffectiveTargets(profile)

	end := beginningOfDay(today)
	from := end.AddDate(0, 0, -7).Format(dateLayout)
	window, err := SnapshotRange(db, profileID, from, end.Format(dateLayout), targets)
	if err != nil {
		return WeeklyReport{}, err
	}

	// Drop today (last element of the window) before filtering.
	trailing := window[:len(window)-1]
	return summarizeWeek(trailing, from, end.AddDate(0, 0, -1).Format(dateLayout)), nil
}

func summarizeWeek(trailing []DailySnapshot, fromDate, toDate string) WeeklyReport {
	report := WeeklyReport{
		FromDate: fromDate,
		ToDate:   toDate,
		Days:     make([]DailySnapshot, 0, len(trailing)),
	}

	for _, day := range trailing {
		report.WorkoutCount += len(day.Workouts)
		if !day.MealsLogged() {
			continue
		}
		report.Days = append(report.Days, day)
		if day.HitCalorieTarget {
			report.DaysHitCalories++
		}
		if day.HitProteinTarget {
			report.DaysHitProtein++
		}
		if day.HitBothTargets {
			report.DaysHitBoth++
		}
	}
	report.DaysTracked = len(report.Days)

	if report.DaysTracked > 0 {
		div := float64(report.DaysTracked)
		var calories int
		var protein, carbs, fat float64
		for _, day := range report.Days {
			calories += day.Calories
			protein += day.ProteinG
			carbs += day.CarbsG
			fat += day.FatG
		}
		report.AvgCalories = float64(calories) / div
		report.AvgProteinG = protein / div
		report.AvgCarbsG = carbs / div
		report.AvgFatG = fat / div
	}
	return report
}
