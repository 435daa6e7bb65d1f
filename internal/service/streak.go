package service

import (
	"database/sql"
	"time"

	"github.com/mdivincenzo/macrocoach/internal/model"
)

// StreakState is derived on every read; nothing about streaks is stored.
type StreakState struct {
	CurrentStreak int
	BestStreak    int
}

// ComputeStreaks walks a contiguous chronological run of daily snapshots
// (one per calendar day, all-zero snapshots standing in for missing days)
// and returns the current and best consecutive-success runs under the
// streak tolerance scheme.
//
// A day succeeds only when it has logged meals and passes both targets. For
// the current streak the most recent day is skipped when it has no meals
// yet: an empty today is "not started", not a break. A day that has data
// but fails ends the current streak at 0.
func ComputeStreaks(days []DailySnapshot, targets Targets, goal model.Goal) StreakState {
	if targets.Calories <= 0 || targets.ProteinG <= 0 {
		return StreakState{}
	}

	succeeds := func(d DailySnapshot) bool {
		if !d.MealsLogged() {
			return false
		}
		return EvaluateStreakDay(d.totals(), targets, goal).HitBothTargets
	}

	state := StreakState{}
	run := 0
	for i := range days {
		if succeeds(days[i]) {
			run++
			if run > state.BestStreak {
				state.BestStreak = run
			}
			continue
		}
		run = 0
	}

	start := len(days) - 1
	if start >= 0 && !days[start].MealsLogged() {
		start--
	}
	for i := start; i >= 0; i-- {
		if !succeeds(days[i]) {
			break
		}
		state.CurrentStreak++
	}
	return state
}

// StreakForProfile loads the profile's full logged history and computes its
// streaks. Streaks are a best-effort coaching value: profiles without
// explicit calorie and protein targets, and any storage failure, yield a
// zero state rather than an error.
func StreakForProfile(db *sql.DB, profileID int64) StreakState {
	profile, err := GetProfile(db, profileID)
	if err != nil {
		return StreakState{}
	}
	if !HasExplicitTargets(profile) {
		return StreakState{}
	}

	var firstDate sql.NullString
	if err := db.QueryRow(`SELECT MIN(logged_date) FROM meals WHERE profile_id = ?`, profileID).Scan(&firstDate); err != nil {
		return StreakState{}
	}
	today := localDateString(time.Now())
	if !firstDate.Valid || firstDate.String == "" {
		return StreakState{}
	}
	from := firstDate.String
	if profile.StartDate != "" && profile.StartDate > from {
		from = profile.StartDate
	}
	if from > today {
		return StreakState{}
	}

	days, err := SnapshotRange(db, profileID, from, today, EffectiveTargets(profile))
	if err != nil {
		return StreakState{}
	}
	return ComputeStreaks(days, EffectiveTargets(profile), EffectiveGoal(profile))
}
